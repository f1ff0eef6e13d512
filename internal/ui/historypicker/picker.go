// Package historypicker provides the popup for finding and re-running a
// past search.
package historypicker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/state"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
)

var _ popup.Popup = (*Model)(nil)

// Picked asks the app to run Entry again.
type Picked struct {
	Entry state.HistoryEntry
}

// Dismisses implements popup.Outcome.
func (Picked) Dismisses() bool { return true }

// Canceled reports the picker was closed without a choice.
type Canceled struct{}

// Dismisses implements popup.Outcome.
func (Canceled) Dismisses() bool { return true }

// Model filters the search history as the user types.
type Model struct {
	ui.Frame
	entries []state.HistoryEntry
	index   index
	matches []int
	filter  []rune
	rows    scroll.Window
}

// New creates a picker over entries, most recent first.
func New(entries []state.HistoryEntry) *Model {
	queries := make([]string, len(entries))
	for i, e := range entries {
		queries[i] = e.Query
	}
	m := &Model{entries: entries, index: newIndex(queries)}
	m.refilter()
	return m
}

// Filter returns the text typed so far.
func (m *Model) Filter() string {
	return string(m.filter)
}

// Matches returns the entries shown, best match first.
func (m *Model) Matches() []state.HistoryEntry {
	out := make([]state.HistoryEntry, len(m.matches))
	for i, pos := range m.matches {
		out[i] = m.entries[pos]
	}
	return out
}

// Selected returns the highlighted entry.
func (m *Model) Selected() (state.HistoryEntry, bool) {
	if len(m.matches) == 0 {
		return state.HistoryEntry{}, false
	}
	return m.entries[m.matches[m.rows.Row()]], true
}

func (m *Model) refilter() {
	m.matches = m.index.rank(string(m.filter))
	m.rows.Reset()
	m.rows.Fit(len(m.matches), m.listHeight())
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	m.rows.Fit(len(m.matches), m.listHeight())
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup. Letters always extend the filter, so
// only arrows and control keys move the highlight.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n, h := len(m.matches), m.listHeight()
	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return Canceled{} }
	case "enter":
		e, ok := m.Selected()
		if !ok {
			return m, func() tea.Msg { return Canceled{} }
		}
		return m, func() tea.Msg { return Picked{Entry: e} }
	case "up", "ctrl+p":
		m.rows.Step(-1, n, h)
	case "down", "ctrl+n":
		m.rows.Step(1, n, h)
	case "pgup":
		m.rows.Step(-h, n, h)
	case "pgdown":
		m.rows.Step(h, n, h)
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.refilter()
		}
	case "ctrl+u":
		if len(m.filter) > 0 {
			m.filter = nil
			m.refilter()
		}
	default:
		if (key.Type == tea.KeyRunes || key.Type == tea.KeySpace) && !key.Alt {
			if key.Type == tea.KeySpace {
				m.filter = append(m.filter, ' ')
			} else {
				m.filter = append(m.filter, key.Runes...)
			}
			m.refilter()
		}
	}
	return m, nil
}
