// Package helpbindings provides the popup listing the keys active where
// the user opened it.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close asks the app to hide the help popup.
type Close struct{}

// Dismisses implements popup.Outcome.
func (Close) Dismisses() bool { return true }

// chrome is the title, blank lines and footer around the bindings, plus
// the box border and padding.
const chrome = 4 + 4

// Model lists the bindings of a stack of contexts, innermost first.
type Model struct {
	ui.Frame
	contexts []keymap.Context
	body     []string
	viewport viewport.Model
}

// New creates a help popup for contexts, listed innermost first the way
// the app resolves keys.
func New(contexts ...keymap.Context) *Model {
	m := &Model{contexts: contexts, viewport: viewport.New(0, 0)}
	m.body = m.lines()
	m.viewport.SetContent(strings.Join(m.body, "\n"))
	return m
}

// Contexts returns the contexts listed.
func (m *Model) Contexts() []keymap.Context {
	return m.contexts
}

func (m *Model) lines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, c := range m.contexts {
		for _, b := range keymap.In(c) {
			keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
		}
	}

	var lines []string
	for i, c := range m.contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			s.Section.Render(c.Label()),
			render.Rule(keyWidth+16))
		for _, b := range keymap.In(c) {
			keys := strings.Join(b.Keys, ", ")
			lines = append(lines, s.Key.Render(render.PadRight(keys, keyWidth))+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	w := 0
	for _, l := range m.body {
		w = max(w, lipgloss.Width(l))
	}
	m.viewport.Width = w
	m.viewport.Height = max(min(height-chrome, len(m.body)), 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "?", "esc", "q":
			return m, func() tea.Msg { return Close{} }
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	hint := "?/esc close"
	if m.viewport.TotalLineCount() > m.viewport.Height {
		hint = "j/k scroll · " + hint
	}
	return styles.Heading("Help") + "\n\n" +
		m.viewport.View() + "\n\n" +
		styles.T().S().Subtle.Render(hint)
}
