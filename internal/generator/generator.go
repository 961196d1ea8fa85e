// Package generator turns a form snapshot into the ordered git commands of a
// branch-per-issue workflow.
package generator

import (
	"fmt"

	"github.com/danielolaszy/flowcmd/internal/issue"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// CodePlaceholder is the inert entry emitted for the code step. It is not a
// command and is never meant to be run.
const CodePlaceholder = "[Develop your code...]"

// Generate returns the nine workflow commands for form. It never fails:
// missing fields leave empty segments in the command text.
func Generate(form models.FormState) []models.GeneratedCommand {
	parsed := issue.ParseTitle(form.IssueTitle)
	branch := BranchName(form.CommitCategory, parsed)
	message := CommitMessage(form.CommitCategory, parsed)
	cloneURL := NormalizeRepositoryLocation(form)

	return []models.GeneratedCommand{
		{CommandText: "git clone " + cloneURL, StepID: models.StepClone},
		{CommandText: "cd " + form.LocalFolderName, StepID: models.StepClone},
		{CommandText: "git checkout " + form.BaseBranch, StepID: models.StepCheckout},
		{CommandText: "git pull origin " + form.PullSourceBranch, StepID: models.StepPull},
		{CommandText: "git checkout -b " + branch, StepID: models.StepBranch},
		{CommandText: CodePlaceholder, StepID: models.StepCode},
		{CommandText: "git add .", StepID: models.StepCommit},
		{CommandText: `git commit -m "` + message + `"`, StepID: models.StepCommit},
		{CommandText: "git push -u origin " + branch, StepID: models.StepPush},
	}
}

// BranchName returns <category>/<number>-<slug>, or <category>/<slug> when
// the title carried no issue number.
func BranchName(category models.CommitCategory, parsed models.ParsedIssue) string {
	if parsed.HasNumber() {
		return fmt.Sprintf("%s/%s-%s", category, parsed.IssueNumber, parsed.IssueSlug)
	}
	return fmt.Sprintf("%s/%s", category, parsed.IssueSlug)
}

// CommitMessage returns "<category>: <slug>".
func CommitMessage(category models.CommitCategory, parsed models.ParsedIssue) string {
	return fmt.Sprintf("%s: %s", category, parsed.IssueSlug)
}

// CommandsFor returns the commands of generated that belong to step, in order.
func CommandsFor(generated []models.GeneratedCommand, step models.StepID) []models.GeneratedCommand {
	var out []models.GeneratedCommand
	for _, c := range generated {
		if c.StepID == step {
			out = append(out, c)
		}
	}
	return out
}
