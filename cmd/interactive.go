package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

// errFormCancelled is returned when the user aborts the interactive form.
var errFormCancelled = errors.New("form cancelled")

// promptForm asks for every field in an interactive terminal form, starting
// from the values in form.
func promptForm(form models.FormState) (models.FormState, error) {
	var (
		useSSH     = form.UseSSHTransport
		sshAccount = form.SSHAccountAlias
		repository = form.RepositoryLocation
		folder     = form.LocalFolderName
		commitType = string(form.CommitCategory)
		issueTitle = form.IssueTitle
		baseBranch = form.BaseBranch
		pullBranch = form.PullSourceBranch
	)

	typeOptions := make([]huh.Option[string], 0, len(models.CommitCategories()))
	for _, c := range models.CommitCategories() {
		typeOptions = append(typeOptions, huh.NewOption(c.Label(), string(c)))
	}

	required := func(name string) func(string) error {
		return func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", name)
			}
			return nil
		}
	}

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use SSH mode?").
				Affirmative("SSH").
				Negative("HTTPS").
				Value(&useSSH),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("SSH Account Name").
				Description("Host alias suffix from ~/.ssh/config (optional)").
				Placeholder("e.g., personal").
				Value(&sshAccount),
		).WithHideFunc(func() bool { return !useSSH }),

		huh.NewGroup(
			huh.NewInput().
				Title("Repository").
				Description("HTTPS URL, SSH remote or owner/repo").
				Placeholder("e.g., https://github.com/User/Repo.git").
				Value(&repository).
				Validate(required("repository")),

			huh.NewInput().
				Title("Repository Folder Name").
				Placeholder("e.g., my-project").
				Value(&folder).
				Validate(required("folder name")),

			huh.NewSelect[string]().
				Title("Commit Type").
				Options(typeOptions...).
				Value(&commitType),

			huh.NewInput().
				Title("Issue Title").
				Placeholder("e.g., Fix chapter 1 #89").
				Value(&issueTitle).
				Validate(required("issue title")),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Base Branch").
				Placeholder("e.g., main, develop").
				Value(&baseBranch).
				Validate(required("base branch")),

			huh.NewInput().
				Title("Branch to Pull").
				Placeholder("e.g., main, develop").
				Value(&pullBranch).
				Validate(required("pull branch")),
		),
	).WithTheme(huh.ThemeCharm())

	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return form, errFormCancelled
		}
		return form, fmt.Errorf("form error: %w", err)
	}

	return models.FormState{
		SSHAccountAlias:    sshAccount,
		RepositoryLocation: repository,
		LocalFolderName:    folder,
		CommitCategory:     models.CommitCategory(commitType),
		IssueTitle:         issueTitle,
		BaseBranch:         baseBranch,
		PullSourceBranch:   pullBranch,
		UseSSHTransport:    useSSH,
	}, nil
}
