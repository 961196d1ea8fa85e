package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the workflow UI.
type KeyMap struct {
	// Form navigation
	Next       key.Binding
	Prev       key.Binding
	ToggleSSH  key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	// Command list
	Up     key.Binding
	Down   key.Binding
	Copy   key.Binding
	MarkPR key.Binding
	Reset  key.Binding
	// Help and quit
	Help key.Binding
	Quit key.Binding
}

var defaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	ToggleSSH: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle ssh"),
	),
	CycleLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous type"),
	),
	CycleRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next type"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter", "c"),
		key.WithHelp("enter/c", "copy command"),
	),
	MarkPR: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pr opened"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset progress"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.ToggleSSH, k.Copy, k.MarkPR, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.ToggleSSH, k.CycleLeft, k.CycleRight},
		{k.Up, k.Down, k.Copy, k.MarkPR, k.Reset},
		{k.Help, k.Quit},
	}
}
