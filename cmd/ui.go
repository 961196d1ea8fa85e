package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/logging"
	"github.com/danielolaszy/flowcmd/internal/tui"
)

// uiCmd opens the full-screen form with live command generation.
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive workflow UI",
	Long: `Open a full-screen UI with the form, the generated commands and the
workflow diagram. Copying a command marks its step complete; editing any field
clears the progress.

Flags pre-fill the form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}

		logging.Debug("starting ui", "use_ssh", form.UseSSHTransport)

		p := tea.NewProgram(tui.New(form, clipboardWriter), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("ui failed: %w", err)
		}
		return nil
	},
}

func init() {
	addFormFlags(uiCmd)
}
