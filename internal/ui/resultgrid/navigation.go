package resultgrid

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
)

// position returns the page, column and row of tile index i.
func (m Model) position(i int) (page, col, row int) {
	per := m.profile.PerPage()
	rows := m.profile.Rows
	if per <= 0 || rows <= 0 {
		return 0, 0, 0
	}
	page = i / per
	col = (i % per) / rows
	row = (i % per) % rows
	return page, col, row
}

// indexAt returns the tile index at a page position.
func (m Model) indexAt(page, col, row int) int {
	return page*m.profile.PerPage() + col*m.profile.Rows + row
}

// moveTo sets the cursor, clamped to the last tile, and reports whether
// the page changed.
func (m *Model) moveTo(i int) bool {
	n := len(m.view.Tiles)
	if n == 0 {
		return false
	}
	m.cursor = max(min(i, n-1), 0)
	page, _, _ := m.position(m.cursor)
	changed := page != m.page
	m.page = page
	return changed
}

// moveRows moves down (positive) or up within the current column.
func (m *Model) moveRows(delta int) bool {
	page, col, row := m.position(m.cursor)
	row = max(min(row+delta, m.profile.Rows-1), 0)
	return m.moveTo(m.indexAt(page, col, row))
}

// moveColumns moves right (positive) or left, wrapping onto the
// neighboring page at its edges.
func (m *Model) moveColumns(delta int) bool {
	page, col, row := m.position(m.cursor)
	col += delta
	switch {
	case col < 0:
		if page == 0 {
			return false
		}
		page--
		col = m.profile.Columns - 1
	case col >= m.profile.Columns:
		if page+1 >= m.view.Pages {
			return false
		}
		page++
		col = 0
	}
	return m.moveTo(m.indexAt(page, col, row))
}

// movePages keeps the cursor's slot and changes page.
func (m *Model) movePages(delta int) bool {
	page, col, row := m.position(m.cursor)
	page = max(min(page+delta, m.view.Pages-1), 0)
	if page == m.page {
		return false
	}
	return m.moveTo(m.indexAt(page, col, row))
}

func (m *Model) handleKey(msg tea.KeyMsg) (scroll.Activation, tea.Cmd) {
	none := scroll.Nothing

	var changed bool
	switch msg.String() {
	case "enter":
		return scroll.Activation{Gesture: scroll.GestureOpen, Index: m.cursor}, nil
	case "j", "down":
		changed = m.moveRows(1)
	case "k", "up":
		changed = m.moveRows(-1)
	case "l", "right":
		changed = m.moveColumns(1)
	case "h", "left":
		changed = m.moveColumns(-1)
	case "L", "pgdown":
		changed = m.movePages(1)
	case "H", "pgup":
		changed = m.movePages(-1)
	case "g", "home":
		changed = m.moveTo(0)
	case "G", "end":
		changed = m.moveTo(len(m.view.Tiles) - 1)
	default:
		return none, nil
	}

	if changed {
		return none, m.LoadPage()
	}
	return none, nil
}

// handleMouse expects coordinates relative to the panel's top-left corner.
func (m *Model) handleMouse(msg tea.MouseMsg) (scroll.Activation, tea.Cmd) {
	none := scroll.Nothing

	switch msg.Button { //nolint:exhaustive // Only handling specific buttons
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if m.movePages(-1) {
			return none, m.LoadPage()
		}
		return none, nil
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if m.movePages(1) {
			return none, m.LoadPage()
		}
		return none, nil
	}

	if msg.Action != tea.MouseActionPress {
		return none, nil
	}
	i, ok := m.tileAt(msg.X, msg.Y)
	if !ok {
		return none, nil
	}

	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonLeft:
		m.moveTo(i)
		return scroll.Activation{Gesture: scroll.GestureClick, Index: i}, nil
	case tea.MouseButtonMiddle:
		return scroll.Activation{Gesture: scroll.GestureStore, Index: i}, nil
	}
	return none, nil
}

// tileAt returns the tile under panel coordinates (x, y).
func (m Model) tileAt(x, y int) (int, bool) {
	iw, ih := int(m.profile.ItemWidth), int(m.profile.ItemHeight)
	if iw <= 0 || ih <= 0 {
		return 0, false
	}
	// Border on the left; border, header and separator on top
	x -= 1 + int(m.profile.MarginX)
	y -= ui.BodyTop + int(m.profile.MarginY)
	if x < 0 || y < 0 {
		return 0, false
	}
	col, row := x/iw, y/ih
	if col >= m.profile.Columns || row >= m.profile.Rows {
		return 0, false
	}
	i := m.indexAt(m.page, col, row)
	if i >= len(m.view.Tiles) {
		return 0, false
	}
	return i, true
}
