// Package clipboard copies generated commands to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/danielolaszy/flowcmd/internal/logging"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text with w and logs a warning on failure. Copying is
// fire-and-forget: callers continue regardless of the outcome, which is
// returned only for display.
func Copy(w Writer, text string) error {
	if err := w.WriteAll(text); err != nil {
		logging.Warn("failed to copy to clipboard", "error", err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Debug("copied to clipboard", "length", len(text))
	return nil
}

// Memory records copied text. It is useful where no system clipboard exists.
type Memory struct {
	Items []string
	Err   error
}

// WriteAll appends text, or returns m.Err when set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Items = append(m.Items, text)
	return nil
}

// Last returns the most recently copied text.
func (m *Memory) Last() string {
	if len(m.Items) == 0 {
		return ""
	}
	return m.Items[len(m.Items)-1]
}
