// Package models defines data structures shared across the application.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommitCategory is returned when a commit category is not one of the
// conventional commit tags.
var ErrUnknownCommitCategory = errors.New("unknown commit category")

// CommitCategory is a conventional-commit style tag (e.g. "feat", "fix").
type CommitCategory string

const (
	CategoryFeat     CommitCategory = "feat"
	CategoryFix      CommitCategory = "fix"
	CategoryDocs     CommitCategory = "docs"
	CategoryStyle    CommitCategory = "style"
	CategoryRefactor CommitCategory = "refactor"
	CategoryTest     CommitCategory = "test"
	CategoryChore    CommitCategory = "chore"
	CategoryPerf     CommitCategory = "perf"
)

var categoryDescriptions = map[CommitCategory]string{
	CategoryFeat:     "New feature",
	CategoryFix:      "Bug fix",
	CategoryDocs:     "Documentation",
	CategoryStyle:    "Formatting",
	CategoryRefactor: "Code restructuring",
	CategoryTest:     "Tests",
	CategoryChore:    "Build/maintenance",
	CategoryPerf:     "Performance improvements",
}

// CommitCategories returns every known commit category in display order.
func CommitCategories() []CommitCategory {
	return []CommitCategory{
		CategoryFeat,
		CategoryFix,
		CategoryDocs,
		CategoryStyle,
		CategoryRefactor,
		CategoryTest,
		CategoryChore,
		CategoryPerf,
	}
}

// Label returns the category with its description, e.g. "feat - New feature".
func (c CommitCategory) Label() string {
	desc, ok := categoryDescriptions[c]
	if !ok {
		return string(c)
	}
	return fmt.Sprintf("%s - %s", c, desc)
}

// Valid reports whether c is one of the known categories.
func (c CommitCategory) Valid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// ParseCommitCategory converts a user supplied string into a CommitCategory.
// An empty string is accepted and yields an empty category.
func ParseCommitCategory(s string) (CommitCategory, error) {
	c := CommitCategory(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommitCategory, s)
}

// FormState is an immutable snapshot of the user's inputs.
type FormState struct {
	// SSHAccountAlias selects among several SSH identities (github.com-<alias>)
	SSHAccountAlias string `json:"sshAccountAlias" yaml:"ssh_account_alias"`

	// RepositoryLocation is either an HTTPS URL or an SSH remote address
	RepositoryLocation string `json:"repositoryLocation" yaml:"repository_location"`

	// LocalFolderName is the directory entered after clone
	LocalFolderName string `json:"localFolderName" yaml:"local_folder_name"`

	CommitCategory CommitCategory `json:"commitCategory" yaml:"commit_category"`

	// IssueTitle is free text, optionally containing a #<digits> reference
	IssueTitle string `json:"issueTitle" yaml:"issue_title"`

	// BaseBranch is checked out before pulling
	BaseBranch string `json:"baseBranch" yaml:"base_branch"`

	// PullSourceBranch is pulled from origin before branching
	PullSourceBranch string `json:"pullSourceBranch" yaml:"pull_source_branch"`

	UseSSHTransport bool `json:"useSshTransport" yaml:"use_ssh_transport"`
}

// MissingFields returns the names of the required fields that are empty.
// The SSH account alias is optional and never reported.
func (f FormState) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"repository", f.RepositoryLocation},
		{"folder", f.LocalFolderName},
		{"type", string(f.CommitCategory)},
		{"issue", f.IssueTitle},
		{"base", f.BaseBranch},
		{"pull", f.PullSourceBranch},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// Complete reports whether every field interpolated into the commands is set.
func (f FormState) Complete() bool {
	return len(f.MissingFields()) == 0
}

// ParsedIssue holds the pieces extracted from an issue title.
type ParsedIssue struct {
	// IssueNumber is the digit run after the first '#', empty if absent
	IssueNumber string `json:"issueNumber" yaml:"issue_number"`

	// IssueSlug is the lowercase hyphenated title
	IssueSlug string `json:"issueSlug" yaml:"issue_slug"`
}

// HasNumber reports whether an issue reference was found.
func (p ParsedIssue) HasNumber() bool {
	return p.IssueNumber != ""
}

// GeneratedCommand is one shell command tied to the workflow step it belongs to.
type GeneratedCommand struct {
	CommandText string `json:"command" yaml:"command"`
	StepID      StepID `json:"stepId" yaml:"step_id"`
}

// PullRequestGuidance is the suggested title and body for the pull request
// opened after the branch has been pushed.
type PullRequestGuidance struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}
