package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/generator"
	"github.com/danielolaszy/flowcmd/internal/workflow"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

var (
	stepColumn   = lipgloss.NewStyle().Width(10)
	labelColumn  = lipgloss.NewStyle().Width(12)
	statusColumn = lipgloss.NewStyle().Width(11)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	statusStyles = map[models.StepStatus]lipgloss.Style{
		models.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		models.StatusActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		models.StatusPending:   lipgloss.NewStyle().Faint(true),
	}
)

// stepsCmd shows the workflow progress for a form and a set of completed steps.
var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show the status of each workflow step",
	Long: `Show the status of each workflow step.

A step is completed when listed in --completed, active when every value its
commands need is set, and pending otherwise. The pr step has no commands and is
only completed when listed.

Example:
  flowcmd steps -r User/Repo -f Repo -t fix -i "Fix login #12" --completed clone,checkout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}
		completed, err := cmd.Flags().GetStringSlice("completed")
		if err != nil {
			return err
		}

		tracker := workflow.NewTracker(form)
		for _, id := range completed {
			if err := tracker.MarkComplete(models.StepID(id)); err != nil {
				return err
			}
		}

		steps := tracker.Steps()
		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, steps)
		}
		return writeSteps(out, steps, tracker.Commands())
	},
}

func init() {
	addFormFlags(stepsCmd)
	addOutputFlag(stepsCmd)
	stepsCmd.Flags().StringSlice("completed", nil, "Step ids already done (clone, checkout, pull, branch, code, commit, push, pr)")
}

// writeSteps prints one row per step with the commands that belong to it.
func writeSteps(w io.Writer, steps []models.WorkflowStep, commands []models.GeneratedCommand) error {
	header := stepColumn.Render("STEP") + labelColumn.Render("LABEL") + statusColumn.Render("STATUS") + "COMMANDS"
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}
	for _, s := range steps {
		var texts []string
		for _, c := range generator.CommandsFor(commands, s.StepID) {
			texts = append(texts, c.CommandText)
		}
		line := stepColumn.Render(string(s.StepID)) +
			labelColumn.Render(s.Label) +
			statusColumn.Render(statusStyles[s.Status].Render(string(s.Status))) +
			strings.Join(texts, " && ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
