package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/clipboard"
	"github.com/danielolaszy/flowcmd/internal/generator"
	"github.com/danielolaszy/flowcmd/internal/logging"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// clipboardWriter is swapped out in tests.
var clipboardWriter clipboard.Writer = clipboard.System{}

// generateCmd prints the workflow commands for the given form values.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Print the git commands for working on an issue",
	Long: `Print the git commands for a branch-per-issue workflow.

The branch is named <type>/<number>-<slug> when the issue title contains a
#<number> reference and <type>/<slug> otherwise. The commit message is
"<type>: <slug>".

Missing values are not an error: the commands are printed with empty segments
and a warning lists the fields still to fill in.

Example:
  flowcmd generate -r User/Repo -f Repo -t feat -i "Fix chapter 1 #89"
  flowcmd generate --ssh -a work -r https://github.com/User/Repo.git --copy 1
  flowcmd generate --interactive -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}

		interactive, err := cmd.Flags().GetBool("interactive")
		if err != nil {
			return err
		}
		if interactive {
			form, err = promptForm(form)
			if errors.Is(err, errFormCancelled) {
				logging.Info("form cancelled, nothing generated")
				return nil
			}
			if err != nil {
				return err
			}
		}

		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		withSteps, err := cmd.Flags().GetBool("steps")
		if err != nil {
			return err
		}
		copyIndex, err := cmd.Flags().GetInt("copy")
		if err != nil {
			return err
		}

		if missing := form.MissingFields(); len(missing) > 0 {
			logging.Warn("form is incomplete, commands contain empty values", "missing", missing)
		}

		commands := generator.Generate(form)
		logging.Debug("generated commands",
			"count", len(commands),
			"use_ssh", form.UseSSHTransport)

		if copyIndex != 0 {
			if copyIndex < 1 || copyIndex > len(commands) {
				return fmt.Errorf("--copy must be between 1 and %d", len(commands))
			}
			// A failed copy does not stop the output.
			if err := clipboard.Copy(clipboardWriter, commands[copyIndex-1].CommandText); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: command %d was not copied: %v\n", copyIndex, err)
			}
		}

		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, commands)
		}
		return writeCommands(out, commands, withSteps)
	},
}

func init() {
	addFormFlags(generateCmd)
	addOutputFlag(generateCmd)
	generateCmd.Flags().Bool("steps", false, "Prefix each command with its workflow step")
	generateCmd.Flags().Int("copy", 0, "Copy the Nth command (1-based) to the clipboard")
	generateCmd.Flags().Bool("interactive", false, "Fill in the values with an interactive form")
}

func writeCommands(w io.Writer, commands []models.GeneratedCommand, withSteps bool) error {
	for _, c := range commands {
		var err error
		if withSteps {
			_, err = fmt.Fprintf(w, "%-9s %s\n", c.StepID, c.CommandText)
		} else {
			_, err = fmt.Fprintln(w, c.CommandText)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
