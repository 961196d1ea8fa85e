package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

func sampleForm() models.FormState {
	return models.FormState{
		RepositoryLocation: "https://github.com/User/Repo.git",
		LocalFolderName:    "Repo",
		CommitCategory:     models.CategoryFeat,
		IssueTitle:         "Fix chapter 1 #89",
		BaseBranch:         "develop",
		PullSourceBranch:   "main",
	}
}

func TestGenerate(t *testing.T) {
	got := Generate(sampleForm())

	expected := []models.GeneratedCommand{
		{CommandText: "git clone https://github.com/User/Repo.git", StepID: models.StepClone},
		{CommandText: "cd Repo", StepID: models.StepClone},
		{CommandText: "git checkout develop", StepID: models.StepCheckout},
		{CommandText: "git pull origin main", StepID: models.StepPull},
		{CommandText: "git checkout -b feat/89-fix-chapter-1", StepID: models.StepBranch},
		{CommandText: "[Develop your code...]", StepID: models.StepCode},
		{CommandText: "git add .", StepID: models.StepCommit},
		{CommandText: `git commit -m "feat: fix-chapter-1"`, StepID: models.StepCommit},
		{CommandText: "git push -u origin feat/89-fix-chapter-1", StepID: models.StepPush},
	}
	assert.Equal(t, expected, got)
}

func TestGenerateStepOrder(t *testing.T) {
	forms := map[string]models.FormState{
		"complete form": sampleForm(),
		"empty form":    {},
		"ssh form":      {UseSSHTransport: true, SSHAccountAlias: "work", RepositoryLocation: "git@github.com:a/b.git"},
	}

	want := []models.StepID{
		models.StepClone, models.StepClone, models.StepCheckout, models.StepPull,
		models.StepBranch, models.StepCode, models.StepCommit, models.StepCommit, models.StepPush,
	}

	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			got := Generate(form)
			require.Len(t, got, 9)
			ids := make([]models.StepID, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.StepID)
			}
			assert.Equal(t, want, ids)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	form := sampleForm()
	assert.Equal(t, Generate(form), Generate(form))
}

func TestGenerateDegradesOnEmptyFields(t *testing.T) {
	got := Generate(models.FormState{})

	assert.Equal(t, "git clone https://github.com/.git", got[0].CommandText)
	assert.Equal(t, "cd ", got[1].CommandText)
	assert.Equal(t, "git checkout ", got[2].CommandText)
	assert.Equal(t, "git pull origin ", got[3].CommandText)
	assert.Equal(t, "git checkout -b /", got[4].CommandText)
	assert.Equal(t, `git commit -m ": "`, got[7].CommandText)
}

func TestBranchName(t *testing.T) {
	tests := []struct {
		name     string
		parsed   models.ParsedIssue
		expected string
	}{
		{
			name:     "With issue number",
			parsed:   models.ParsedIssue{IssueNumber: "89", IssueSlug: "fix-chapter-1"},
			expected: "feat/89-fix-chapter-1",
		},
		{
			name:     "Without issue number",
			parsed:   models.ParsedIssue{IssueSlug: "fix-chapter-1"},
			expected: "feat/fix-chapter-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BranchName(models.CategoryFeat, tt.parsed))
		})
	}
}

func TestBranchCommandWithoutIssueNumber(t *testing.T) {
	form := sampleForm()
	form.IssueTitle = "Fix chapter 1"

	branch := CommandsFor(Generate(form), models.StepBranch)
	require.Len(t, branch, 1)
	assert.Equal(t, "git checkout -b feat/fix-chapter-1", branch[0].CommandText)
}

func TestCommitMessage(t *testing.T) {
	msg := CommitMessage(models.CategoryDocs, models.ParsedIssue{IssueNumber: "3", IssueSlug: "update-readme"})
	assert.Equal(t, "docs: update-readme", msg)
}

func TestCommandsFor(t *testing.T) {
	generated := Generate(sampleForm())

	assert.Len(t, CommandsFor(generated, models.StepClone), 2)
	assert.Len(t, CommandsFor(generated, models.StepCommit), 2)
	assert.Len(t, CommandsFor(generated, models.StepPush), 1)
	assert.Empty(t, CommandsFor(generated, models.StepPR))
}

func TestPullRequestGuidance(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected models.PullRequestGuidance
	}{
		{
			name:  "Issue reference closes the issue",
			title: "Fix chapter 1 #89",
			expected: models.PullRequestGuidance{
				Title: "fix: fix-chapter-1",
				Body:  "Closes #89",
			},
		},
		{
			name:  "No reference falls back to a description prompt",
			title: "Fix chapter 1",
			expected: models.PullRequestGuidance{
				Title: "fix: fix-chapter-1",
				Body:  DefaultPullRequestBody,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PullRequestGuidance(models.CategoryFix, tt.title))
		})
	}
}
