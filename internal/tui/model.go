// Package tui is the full-screen terminal UI: a form on the left, the
// generated commands below it and the workflow diagram on the right.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielolaszy/flowcmd/internal/clipboard"
	"github.com/danielolaszy/flowcmd/internal/logging"
	"github.com/danielolaszy/flowcmd/internal/workflow"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// focus

type focus int

const (
	focusSSHAccount focus = iota
	focusRepository
	focusFolder
	focusCategory
	focusIssueTitle
	focusBaseBranch
	focusPullBranch
	focusCommands
	focusCount
)

// inputIndex maps text fields to their slot in Model.inputs.
var inputIndex = map[focus]int{
	focusSSHAccount: 0,
	focusRepository: 1,
	focusFolder:     2,
	focusIssueTitle: 3,
	focusBaseBranch: 4,
	focusPullBranch: 5,
}

const defaultCopiedFor = 2 * time.Second

// messages

type copiedMsg struct {
	index int
	err   error
}

type copyExpiredMsg struct {
	seq int
}

// model

// Model is the bubbletea model. The tracker is the single owner of the form
// and the completed steps; the inputs only mirror what the user typed.
type Model struct {
	tracker *workflow.Tracker
	clip    clipboard.Writer
	keys    KeyMap
	help    help.Model

	inputs      []textinput.Model
	categoryIdx int // -1 while no category is selected
	useSSH      bool

	focus       focus
	cursor      int
	copiedIndex int
	copySeq     int
	copiedFor   time.Duration
	copyErr     error

	width  int
	height int
}

// New returns a model pre-filled with form that copies through clip.
func New(form models.FormState, clip clipboard.Writer) Model {
	placeholders := []struct {
		placeholder string
		value       string
	}{
		{"e.g., personal", form.SSHAccountAlias},
		{"e.g., https://github.com/User/Repo.git", form.RepositoryLocation},
		{"e.g., my-project", form.LocalFolderName},
		{"e.g., Fix chapter 1 #89", form.IssueTitle},
		{"e.g., main, develop", form.BaseBranch},
		{"e.g., main, develop", form.PullSourceBranch},
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p.placeholder
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.SetValue(p.value)
		inputs[i] = ti
	}

	categoryIdx := -1
	for i, c := range models.CommitCategories() {
		if c == form.CommitCategory {
			categoryIdx = i
		}
	}

	m := Model{
		tracker:     workflow.NewTracker(form),
		clip:        clip,
		keys:        defaultKeyMap,
		help:        help.New(),
		inputs:      inputs,
		categoryIdx: categoryIdx,
		useSSH:      form.UseSSHTransport,
		copiedIndex: -1,
		copiedFor:   defaultCopiedFor,
	}

	m.focus = focusRepository
	if m.useSSH {
		m.focus = focusSSHAccount
	}
	m.applyFocus()
	m.syncForm()
	return m
}

// Tracker exposes the workflow tracker backing the UI.
func (m Model) Tracker() *workflow.Tracker {
	return m.tracker
}

// Form returns the form as currently entered.
func (m Model) Form() models.FormState {
	return m.tracker.Form()
}

func (m Model) formFromInputs() models.FormState {
	var category models.CommitCategory
	if m.categoryIdx >= 0 {
		category = models.CommitCategories()[m.categoryIdx]
	}
	value := func(f focus) string { return m.inputs[inputIndex[f]].Value() }

	return models.FormState{
		SSHAccountAlias:    value(focusSSHAccount),
		RepositoryLocation: value(focusRepository),
		LocalFolderName:    value(focusFolder),
		CommitCategory:     category,
		IssueTitle:         value(focusIssueTitle),
		BaseBranch:         value(focusBaseBranch),
		PullSourceBranch:   value(focusPullBranch),
		UseSSHTransport:    m.useSSH,
	}
}

// syncForm pushes the inputs into the tracker, which clears progress when
// anything changed.
func (m *Model) syncForm() {
	if m.tracker.SetForm(m.formFromInputs()) {
		m.copiedIndex = -1
		m.copyErr = nil
	}
	if m.focus == focusCommands && !m.tracker.Form().Complete() {
		m.focus = focusPullBranch
		m.applyFocus()
	}
}

// focusable reports whether f can receive focus in the current state.
func (m Model) focusable(f focus) bool {
	switch f {
	case focusSSHAccount:
		return m.useSSH
	case focusCommands:
		return m.tracker.Form().Complete()
	}
	return true
}

func (m *Model) moveFocus(delta int) {
	next := m.focus
	for i := 0; i < int(focusCount); i++ {
		next = focus((int(next) + delta + int(focusCount)) % int(focusCount))
		if m.focusable(next) {
			break
		}
	}
	m.focus = next
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for f, idx := range inputIndex {
		if f == m.focus {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
}

// commands

func copyCmd(w clipboard.Writer, text string, index int) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{index: index, err: clipboard.Copy(w, text)}
	}
}

func expireCopiedCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

// tea.Model

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		m.copyErr = msg.err
		return m, nil

	case copyExpiredMsg:
		if msg.seq == m.copySeq {
			m.copiedIndex = -1
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInput(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.ToggleSSH):
		m.useSSH = !m.useSSH
		if !m.useSSH && m.focus == focusSSHAccount {
			m.moveFocus(1)
		}
		m.syncForm()
		return m, nil
	}

	switch m.focus {
	case focusCommands:
		return m.updateCommands(msg)
	case focusCategory:
		return m.updateCategory(msg)
	}

	if msg.Type == tea.KeyEnter {
		m.moveFocus(1)
		return m, nil
	}
	return m.updateInput(msg)
}

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(models.CommitCategories())
	switch {
	case key.Matches(msg, m.keys.CycleRight):
		m.categoryIdx = (m.categoryIdx + 1) % n
	case key.Matches(msg, m.keys.CycleLeft):
		if m.categoryIdx <= 0 {
			m.categoryIdx = n - 1
		} else {
			m.categoryIdx--
		}
	case msg.Type == tea.KeyEnter:
		m.moveFocus(1)
		return m, nil
	default:
		return m, nil
	}
	m.syncForm()
	return m, nil
}

func (m Model) updateCommands(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	commands := m.tracker.Commands()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(commands)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Copy):
		selected := commands[m.cursor]
		if err := m.tracker.MarkComplete(selected.StepID); err != nil {
			logging.Error("failed to mark step complete", "step", selected.StepID, "error", err)
		}
		m.copiedIndex = m.cursor
		m.copySeq++
		return m, tea.Batch(
			copyCmd(m.clip, selected.CommandText, m.cursor),
			expireCopiedCmd(m.copiedFor, m.copySeq),
		)
	case key.Matches(msg, m.keys.MarkPR):
		if err := m.tracker.MarkComplete(models.StepPR); err != nil {
			logging.Error("failed to mark step complete", "step", models.StepPR, "error", err)
		}
	case key.Matches(msg, m.keys.Reset):
		m.tracker.Reset()
		m.copiedIndex = -1
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateInput forwards msg to the focused text input.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx, ok := inputIndex[m.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.syncForm()
	return m, cmd
}
