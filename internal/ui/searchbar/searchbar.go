// Package searchbar provides the query input at the top of the screen.
package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Height is the fixed height of the search bar.
const Height = 1

// Placeholder is shown while the input is empty.
const Placeholder = "App name, artist, song, album, e-book"

// Model wraps a text input with recall of previous queries.
type Model struct {
	ui.Frame
	input   textinput.Model
	history []string // most recent first
	recall  int      // -1 when editing a fresh query
	draft   string   // text typed before recalling history
}

// New creates a focused search bar.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = icons.Search()
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		input:  ti,
		recall: -1,
	}
	m.Frame.SetFocused(true)
	return m
}

// SetSize sets the bar width.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
}

// SetFocused focuses or blurs the input.
func (m *Model) SetFocused(focused bool) {
	m.Frame.SetFocused(focused)
	if focused {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// Value returns the raw query text.
func (m Model) Value() string {
	return m.input.Value()
}

// Query returns the trimmed query text.
func (m Model) Query() string {
	return strings.TrimSpace(m.input.Value())
}

// SetValue replaces the query text and moves the cursor to the end.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.recall = -1
}

// SetHistory sets the queries ctrl+p/ctrl+n cycle through, most recent first.
func (m *Model) SetHistory(queries []string) {
	m.history = queries
	m.recall = -1
}

// Remember puts query at the front of the recall list.
func (m *Model) Remember(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	out := []string{query}
	for _, q := range m.history {
		if !strings.EqualFold(q, query) {
			out = append(out, q)
		}
	}
	m.history = out
	m.recall = -1
}

// Previous recalls the next older query. Returns false at the oldest entry.
func (m *Model) Previous() bool {
	if m.recall+1 >= len(m.history) {
		return false
	}
	if m.recall == -1 {
		m.draft = m.input.Value()
	}
	m.recall++
	m.input.SetValue(m.history[m.recall])
	m.input.CursorEnd()
	return true
}

// Next recalls the next newer query, ending at the text typed before
// recall started. Returns false when not recalling.
func (m *Model) Next() bool {
	if m.recall < 0 {
		return false
	}
	m.recall--
	if m.recall == -1 {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.recall])
	}
	m.input.CursorEnd()
	return true
}

// Init returns the cursor blink command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys to the input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.recall = -1
	}
	return m, cmd
}

// View renders the bar.
func (m Model) View() string {
	style := styles.T().S().Muted
	if m.IsFocused() {
		style = styles.T().S().Base
	}
	return style.Render(m.input.View())
}
