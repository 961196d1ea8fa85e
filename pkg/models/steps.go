package models

// StepID identifies a logical phase of the workflow.
type StepID string

const (
	StepClone    StepID = "clone"
	StepCheckout StepID = "checkout"
	StepPull     StepID = "pull"
	StepBranch   StepID = "branch"
	StepCode     StepID = "code"
	StepCommit   StepID = "commit"
	StepPush     StepID = "push"

	// StepPR is tracked for display only; no command is generated for it.
	StepPR StepID = "pr"
)

// GeneratedSteps returns the step ids that carry generated commands, in order.
func GeneratedSteps() []StepID {
	return []StepID{StepClone, StepCheckout, StepPull, StepBranch, StepCode, StepCommit, StepPush}
}

// AllSteps returns every step id known to the workflow tracker, in order.
func AllSteps() []StepID {
	return append(GeneratedSteps(), StepPR)
}

// Known reports whether id belongs to the fixed step vocabulary.
func (id StepID) Known() bool {
	for _, s := range AllSteps() {
		if s == id {
			return true
		}
	}
	return false
}

// StepStatus is the display state of a workflow step.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusActive    StepStatus = "active"
	StatusCompleted StepStatus = "completed"
)

// IconKind names the glyph a renderer should use for a step.
type IconKind string

const (
	IconDownload    IconKind = "download"
	IconGitBranch   IconKind = "git-branch"
	IconCode        IconKind = "code"
	IconGitCommit   IconKind = "git-commit"
	IconUpload      IconKind = "upload"
	IconPullRequest IconKind = "git-pull-request"
)

// WorkflowStep is the derived display entity for one step.
type WorkflowStep struct {
	StepID   StepID     `json:"stepId" yaml:"step_id"`
	Label    string     `json:"label" yaml:"label"`
	IconKind IconKind   `json:"icon" yaml:"icon"`
	Status   StepStatus `json:"status" yaml:"status"`
}
