package generator

import (
	"github.com/danielolaszy/flowcmd/internal/issue"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// DefaultPullRequestBody is suggested when the issue title has no reference.
const DefaultPullRequestBody = "Brief description of changes with screenshots if relevant"

// PullRequestGuidance suggests the title and body of the pull request opened
// after pushing. The title mirrors the commit message; the body closes the
// referenced issue when there is one.
func PullRequestGuidance(category models.CommitCategory, issueTitle string) models.PullRequestGuidance {
	parsed := issue.ParseTitle(issueTitle)

	body := DefaultPullRequestBody
	if parsed.HasNumber() {
		body = "Closes #" + parsed.IssueNumber
	}

	return models.PullRequestGuidance{
		Title: CommitMessage(category, parsed),
		Body:  body,
	}
}
