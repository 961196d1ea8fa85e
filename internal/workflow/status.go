// Package workflow tracks progress through the workflow steps as commands are copied.
package workflow

import (
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// StepSet is the set of completed step ids.
type StepSet map[models.StepID]struct{}

// NewStepSet returns a set holding ids.
func NewStepSet(ids ...models.StepID) StepSet {
	s := make(StepSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s StepSet) Has(id models.StepID) bool {
	_, ok := s[id]
	return ok
}

type stepDefinition struct {
	id    models.StepID
	label string
	icon  models.IconKind

	// ready is nil for steps that only complete through an explicit action
	ready func(models.FormState) bool
}

func categoryAndTitle(f models.FormState) bool {
	return f.CommitCategory != "" && f.IssueTitle != ""
}

var stepDefinitions = []stepDefinition{
	{
		id:    models.StepClone,
		label: "Clone",
		icon:  models.IconDownload,
		ready: func(f models.FormState) bool { return f.RepositoryLocation != "" && f.LocalFolderName != "" },
	},
	{
		id:    models.StepCheckout,
		label: "Checkout",
		icon:  models.IconGitBranch,
		ready: func(f models.FormState) bool { return f.BaseBranch != "" },
	},
	{
		id:    models.StepPull,
		label: "Pull",
		icon:  models.IconDownload,
		ready: func(f models.FormState) bool { return f.PullSourceBranch != "" },
	},
	{id: models.StepBranch, label: "New Branch", icon: models.IconGitBranch, ready: categoryAndTitle},
	{id: models.StepCode, label: "Code", icon: models.IconCode, ready: models.FormState.Complete},
	{id: models.StepCommit, label: "Commit", icon: models.IconGitCommit, ready: categoryAndTitle},
	{id: models.StepPush, label: "Push", icon: models.IconUpload, ready: categoryAndTitle},
	{id: models.StepPR, label: "PR", icon: models.IconPullRequest},
}

// DeriveStatus computes the display state of every step from the form and the
// completed set. A completed step wins; otherwise a step is active when the
// fields feeding its commands are all set, and pending when they are not.
func DeriveStatus(form models.FormState, completed StepSet) []models.WorkflowStep {
	steps := make([]models.WorkflowStep, 0, len(stepDefinitions))
	for _, def := range stepDefinitions {
		status := models.StatusPending
		switch {
		case completed.Has(def.id):
			status = models.StatusCompleted
		case def.ready != nil && def.ready(form):
			status = models.StatusActive
		}

		steps = append(steps, models.WorkflowStep{
			StepID:   def.id,
			Label:    def.label,
			IconKind: def.icon,
			Status:   status,
		})
	}
	return steps
}
