package resultlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Hint is shown before the first search.
const Hint = "Type a query and press Enter"

// View renders the result panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth, listHeight := m.Body()

	header := m.renderHeader(innerWidth)
	separator := render.Rule(innerWidth)
	body := m.renderRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + body

	return styles.T().S().Panel(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	left := "Results"
	right := ""
	if m.view.Selectable {
		right = fmt.Sprintf("%d/%d ", m.rows.Row()+1, len(m.view.Rows))
	}
	left = render.Fit(left, max(innerWidth-len(right), 0))
	s := styles.T().S()
	return s.Header.Render(left) + s.Muted.Render(right)
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	lines := make([]string, 0, max(listHeight, 0))

	switch {
	case len(m.view.Rows) == 0:
		lines = append(lines, styles.T().S().Placeholder.Render(render.Fit("  "+Hint, innerWidth)))
	case !m.view.Selectable:
		lines = append(lines, m.renderPlaceholder(m.view.Rows[0], innerWidth))
	default:
		start, end := m.rows.Span(len(m.view.Rows), listHeight)
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.renderItem(m.view.Rows[idx], idx, innerWidth))
		}
	}

	for len(lines) < listHeight {
		lines = append(lines, render.Blank(innerWidth))
	}
	return strings.Join(lines[:max(listHeight, 0)], "\n")
}

// renderPlaceholder renders the single Loading or Nothing Found row.
func (m Model) renderPlaceholder(row present.Row, width int) string {
	text := row.Title
	if row.Kind == present.RowLoading {
		text = m.spinner.View() + " " + text
	}
	pad := max((width-lipgloss.Width(text))/2, 0)
	return styles.T().S().Placeholder.Render(render.PadRight(strings.Repeat(" ", pad)+text, width))
}

// renderItem renders "▸ icon Title  Artist (Type)    Price".
func (m Model) renderItem(row present.Row, idx, width int) string {
	isCursor := idx == m.rows.Row() && m.IsFocused()

	prefix := "  "
	if isCursor {
		prefix = "▸ "
	}

	price := row.Result.PriceText()
	priceWidth := lipgloss.Width(price) + 1
	contentWidth := max(width-2-priceWidth, 0)

	title := icons.FormatResult(row.Result.Kind, row.Title)
	titleWidth := min(lipgloss.Width(title), contentWidth*3/5)
	title = render.Clip(title, titleWidth)
	subtitle := render.Fit("  "+row.Subtitle, contentWidth-lipgloss.Width(title))

	s := styles.T().S()
	if isCursor {
		return s.Cursor.Render(prefix + title + subtitle + " " + price)
	}
	return prefix + s.Base.Render(title) + s.Muted.Render(subtitle) + " " + s.Price.Render(price)
}
