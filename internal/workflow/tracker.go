package workflow

import (
	"errors"
	"fmt"

	"github.com/danielolaszy/flowcmd/internal/generator"
	"github.com/danielolaszy/flowcmd/internal/logging"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// ErrUnknownStep is returned when marking a step id outside the workflow vocabulary.
var ErrUnknownStep = errors.New("unknown workflow step")

// Tracker owns the current form and the set of completed steps. Progress is
// scoped to a form: changing the form clears it.
//
// A Tracker is not safe for concurrent use; it belongs to a single UI loop.
type Tracker struct {
	form      models.FormState
	completed StepSet
}

// NewTracker returns a tracker for form with no completed steps.
func NewTracker(form models.FormState) *Tracker {
	return &Tracker{
		form:      form,
		completed: NewStepSet(),
	}
}

// Form returns the current form snapshot.
func (t *Tracker) Form() models.FormState {
	return t.form
}

// SetForm replaces the form. Any change clears the completed steps because
// previously copied commands may no longer match. It reports whether the form changed.
func (t *Tracker) SetForm(form models.FormState) bool {
	if form == t.form {
		return false
	}
	t.form = form
	if len(t.completed) > 0 {
		logging.Debug("form changed, clearing progress", "completed_count", len(t.completed))
	}
	t.completed = NewStepSet()
	return true
}

// MarkComplete adds id to the completed set. Marking an already completed
// step is a no-op.
func (t *Tracker) MarkComplete(id models.StepID) error {
	if !id.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownStep, id)
	}
	if t.completed.Has(id) {
		return nil
	}
	t.completed[id] = struct{}{}
	logging.Debug("marked step complete", "step", id)
	return nil
}

// IsComplete reports whether id has been marked complete.
func (t *Tracker) IsComplete(id models.StepID) bool {
	return t.completed.Has(id)
}

// Completed returns the completed step ids in workflow order.
func (t *Tracker) Completed() []models.StepID {
	var ids []models.StepID
	for _, id := range models.AllSteps() {
		if t.completed.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// AllCompleted reports whether every step, including the PR step, is complete.
func (t *Tracker) AllCompleted() bool {
	return len(t.Completed()) == len(models.AllSteps())
}

// Reset clears the completed steps without touching the form.
func (t *Tracker) Reset() {
	t.completed = NewStepSet()
}

// Steps derives the display state of every step.
func (t *Tracker) Steps() []models.WorkflowStep {
	return DeriveStatus(t.form, t.completed)
}

// Commands generates the commands for the current form.
func (t *Tracker) Commands() []models.GeneratedCommand {
	return generator.Generate(t.form)
}
