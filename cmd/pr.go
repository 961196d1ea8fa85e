package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/generator"
)

// prCmd prints the suggested pull request title and body.
var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Print the suggested pull request title and body",
	Long: `Print the suggested pull request title and body for after the branch is pushed.

The title is the commit message. The body closes the issue when the title has a
#<number> reference.

Example:
  flowcmd pr -t fix -i "Fix chapter 1 #89"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formFromFlags(cmd)
		if err != nil {
			return err
		}
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		guidance := generator.PullRequestGuidance(form.CommitCategory, form.IssueTitle)

		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, guidance)
		}
		_, err = fmt.Fprintf(out, "Title: %s\nBody:  %s\n", guidance.Title, guidance.Body)
		return err
	},
}

func init() {
	prCmd.Flags().StringP("type", "t", "", "Commit type: feat, fix, docs, style, refactor, test, chore or perf")
	prCmd.Flags().StringP("issue", "i", "", "Issue title, optionally with a #<number> reference")
	addOutputFlag(prCmd)
}
