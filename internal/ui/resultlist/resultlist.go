// Package resultlist renders search results as a one-column list.
package resultlist

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Model is the list presenter component. It holds a rendering of the
// search state, never the state itself.
type Model struct {
	ui.Frame
	rows    scroll.Window
	view    present.ListView
	spinner spinner.Model
}

// New creates an empty result list.
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.T().S().Placeholder

	return Model{
		rows:    scroll.New(ui.RowMargin),
		view:    present.List(search.NotSearchedYet()),
		spinner: s,
	}
}

// SetSize sets the panel dimensions and keeps the highlight in view.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	m.rows.Fit(len(m.view.Rows), m.bodyHeight())
}

// SetState re-renders the list from s. The cursor is clamped to the new
// row count.
func (m *Model) SetState(s search.State) {
	m.view = present.List(s)
	m.rows.Fit(len(m.view.Rows), m.bodyHeight())
}

// ResetCursor moves the cursor back to the first row.
func (m *Model) ResetCursor() {
	m.rows.Reset()
}

// SetCursor moves the cursor to row i, clamped to the rows shown.
func (m *Model) SetCursor(i int) {
	m.rows.Jump(i, len(m.view.Rows), m.bodyHeight())
}

func (m Model) bodyHeight() int {
	_, h := m.Body()
	return h
}

// ListView returns the current rendering.
func (m Model) ListView() present.ListView {
	return m.view
}

// Loading returns true while the loading row is shown.
func (m Model) Loading() bool {
	return m.view.State == search.KindLoading.String()
}

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int {
	return m.rows.Row()
}

// Selected returns the row under the cursor. Only item rows count.
func (m Model) Selected() (present.Row, bool) {
	i := m.rows.Row()
	if i >= len(m.view.Rows) || m.view.Rows[i].Kind != present.RowItem {
		return present.Row{}, false
	}
	return m.view.Rows[i], true
}

// SpinnerTick starts the loading spinner.
func (m Model) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

// Update handles navigation and spinner ticks. The returned activation
// tells the parent which result was opened or clicked, if any. Placeholder
// rows never activate.
func (m *Model) Update(msg tea.Msg) (scroll.Activation, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Loading() {
			return scroll.Nothing, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return scroll.Nothing, cmd

	case tea.KeyMsg:
		if !m.IsFocused() {
			return scroll.Nothing, nil
		}
		n := len(m.view.Rows)
		if m.rows.Key(msg.String(), n, m.bodyHeight()) {
			return scroll.Nothing, nil
		}
		if msg.String() == "enter" && m.view.Selectable {
			return scroll.Activation{Gesture: scroll.GestureOpen, Index: m.rows.Row()}, nil
		}

	case tea.MouseMsg:
		if !m.IsFocused() {
			return scroll.Nothing, nil
		}
		msg.Y -= ui.BodyTop
		act := m.rows.Mouse(msg, len(m.view.Rows), m.bodyHeight())
		if !m.view.Selectable {
			return scroll.Nothing, nil
		}
		return act, nil
	}
	return scroll.Nothing, nil
}
