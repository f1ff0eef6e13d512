// Package confirm provides the dialog asked before the saved search
// history is wiped.
package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Answer is the user's choice. Any answer closes the dialog.
type Answer struct {
	Clear bool
}

// Dismisses implements popup.Outcome.
func (Answer) Dismisses() bool { return true }

// Model asks whether to delete the saved searches. Keep is focused first
// so a stray enter loses nothing.
type Model struct {
	ui.Frame
	entries  int
	clearing bool
}

// New creates the dialog for a history holding entries searches.
func New(entries int) *Model {
	return &Model{entries: entries}
}

// Clearing reports whether the Clear button has focus.
func (m *Model) Clearing() bool {
	return m.clearing
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		return m, answer(m.entries > 0)
	case "n", "N", "esc", "q":
		return m, answer(false)
	case "enter":
		return m, answer(m.clearing && m.entries > 0)
	case "left", "right", "h", "l", "tab", "shift+tab":
		m.clearing = !m.clearing && m.entries > 0
	}
	return m, nil
}

func answer(clear bool) tea.Cmd {
	return func() tea.Msg { return Answer{Clear: clear} }
}

func (m *Model) message() string {
	switch m.entries {
	case 0:
		return "The search history is already empty."
	case 1:
		return "Delete the saved search? This cannot be undone."
	default:
		return fmt.Sprintf("Delete all %d saved searches? This cannot be undone.", m.entries)
	}
}

func button(label string, focused bool) string {
	s := styles.T().S()
	if focused {
		return s.Button.Padding(0, 2).Render(label)
	}
	return s.Muted.Padding(0, 2).Render(label)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	buttons := button("Keep", !m.clearing)
	hint := "esc close"
	if m.entries > 0 {
		buttons += "  " + button("Clear", m.clearing)
		hint = "y clear · n keep · ←/→ choose · enter confirm"
	}
	return styles.Heading("Clear search history") + "\n\n" +
		s.Base.Render(m.message()) + "\n\n" +
		buttons + "\n\n" +
		s.Subtle.Render(hint)
}
