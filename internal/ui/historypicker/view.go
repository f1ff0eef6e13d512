package historypicker

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/state"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const maxRows = 20

func (m *Model) contentWidth() int {
	w := m.Width() * 60 / 100
	if w < 40 {
		w = min(40, m.Width()-8)
	}
	return max(w, 10)
}

// listHeight is the number of entries drawn: half the screen less the
// box, the title and the filter line.
func (m *Model) listHeight() int {
	return min(max(m.Height()/2-4, 1), maxRows)
}

// when is the category the query last ran in and how long ago.
func when(e state.HistoryEntry) string {
	if e.SearchedAt.IsZero() {
		return e.Category
	}
	return e.Category + " · " + humanize.Time(e.SearchedAt)
}

func (m *Model) row(e state.HistoryEntry, width int, highlighted bool) string {
	s := styles.T().S()
	mark := "  "
	if highlighted {
		mark = "> "
	}
	width -= len(mark)
	right := when(e)
	left := render.Clip(e.Query, max(width-len([]rune(right))-2, 1))
	line := mark + render.Spread(left, s.Subtle.Render(right), width)
	if highlighted {
		return s.Active.Render(line)
	}
	return s.Base.Render(line)
}

func (m *Model) placeholder() string {
	switch {
	case len(m.entries) == 0:
		return "No searches yet"
	case len(m.filter) > 0:
		return "No matches"
	default:
		return "Type to filter..."
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width := m.contentWidth()
	height := m.listHeight()

	lines := make([]string, 0, height)
	if len(m.matches) == 0 {
		lines = append(lines, s.Subtle.Render(m.placeholder()))
	}
	from, to := m.rows.Span(len(m.matches), height)
	for i := from; i < to; i++ {
		lines = append(lines, m.row(m.entries[m.matches[i]], width, i == m.rows.Row()))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	return styles.Heading("Search history") + "\n\n" +
		s.Base.Render(icons.Search()+string(m.filter)) + "\n" +
		render.Rule(width) + "\n" +
		strings.Join(lines, "\n")
}
