package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

// addFormFlags registers one flag per form field on cmd.
func addFormFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("repository", "r", "", "Repository location: HTTPS URL, SSH remote or owner/repo")
	f.StringP("folder", "f", "", "Local folder to cd into after cloning")
	f.StringP("type", "t", "", "Commit type: feat, fix, docs, style, refactor, test, chore or perf")
	f.StringP("issue", "i", "", "Issue title, optionally with a #<number> reference")
	f.StringP("base", "b", "", "Branch to check out before pulling")
	f.StringP("pull", "p", "", "Branch to pull from origin before branching")
	f.StringP("ssh-account", "a", "", "SSH account alias, e.g. 'work' for git@github.com-work")
	f.Bool("ssh", false, "Use SSH remotes instead of HTTPS")
}

// formFromFlags starts from the configured defaults and applies every flag
// that was set explicitly.
func formFromFlags(cmd *cobra.Command) (models.FormState, error) {
	var form models.FormState
	if cfg != nil {
		form = cfg.FormDefaults()
	}

	f := cmd.Flags()
	stringFields := []struct {
		flag   string
		target *string
	}{
		{"repository", &form.RepositoryLocation},
		{"folder", &form.LocalFolderName},
		{"issue", &form.IssueTitle},
		{"base", &form.BaseBranch},
		{"pull", &form.PullSourceBranch},
		{"ssh-account", &form.SSHAccountAlias},
	}
	for _, field := range stringFields {
		if !f.Changed(field.flag) {
			continue
		}
		value, err := f.GetString(field.flag)
		if err != nil {
			return form, err
		}
		*field.target = value
	}

	if f.Changed("type") {
		value, err := f.GetString("type")
		if err != nil {
			return form, err
		}
		category, err := models.ParseCommitCategory(value)
		if err != nil {
			return form, fmt.Errorf("invalid --type: %w", err)
		}
		form.CommitCategory = category
	}

	if f.Changed("ssh") {
		useSSH, err := f.GetBool("ssh")
		if err != nil {
			return form, err
		}
		form.UseSSHTransport = useSSH
	}

	return form, nil
}
