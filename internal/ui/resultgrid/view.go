package resultgrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/artwork"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Hint is shown before the first search.
const Hint = "Type a query and press Enter"

// View renders the grid panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.PanelBorder
	height := max(m.Height()-ui.PanelChrome, 0)

	var body []string
	if len(m.view.Tiles) == 0 {
		body = []string{m.renderPlaceholder(innerWidth)}
	} else {
		body = m.renderPage(innerWidth)
	}
	for len(body) < height {
		body = append(body, render.Blank(innerWidth))
	}

	content := m.renderHeader(innerWidth) + "\n" +
		render.Rule(innerWidth) + "\n" +
		strings.Join(body[:height], "\n")

	return styles.T().S().Panel(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	right := ""
	if n := len(m.view.Tiles); n > 0 {
		right = fmt.Sprintf("page %d/%d  %d/%d ", m.page+1, m.view.Pages, m.cursor+1, n)
	}
	left := render.Fit("Results", max(innerWidth-len(right), 0))
	s := styles.T().S()
	return s.Header.Render(left) + s.Muted.Render(right)
}

func (m Model) renderPlaceholder(width int) string {
	var text string
	switch {
	case m.view.Loading:
		text = m.spinner.View() + " " + present.LoadingText
	case m.view.Placeholder != "":
		text = m.view.Placeholder
	default:
		text = Hint
	}
	pad := max((width-lipgloss.Width(text))/2, 0)
	return styles.T().S().Placeholder.Render(render.PadRight(strings.Repeat(" ", pad)+text, width))
}

func (m Model) renderPage(innerWidth int) []string {
	p := m.profile
	lines := make([]string, 0, int(p.MarginY)+p.Rows*int(p.ItemHeight))
	for range int(p.MarginY) {
		lines = append(lines, "")
	}

	margin := strings.Repeat(" ", int(p.MarginX))
	for row := range p.Rows {
		blocks := make([][]string, p.Columns)
		for col := range p.Columns {
			blocks[col] = m.renderTile(m.indexAt(m.page, col, row))
		}
		for y := range int(p.ItemHeight) {
			var sb strings.Builder
			sb.WriteString(margin)
			for col := range p.Columns {
				sb.WriteString(blocks[col][y])
			}
			lines = append(lines, sb.String())
		}
	}

	for i, line := range lines {
		line = ansi.Truncate(line, innerWidth, "")
		lines[i] = line + strings.Repeat(" ", max(innerWidth-lipgloss.Width(line), 0))
	}
	return lines
}

// renderTile returns the ItemHeight lines, each ItemWidth wide, of the
// tile at index i: the button centered in its item cell.
func (m Model) renderTile(i int) []string {
	iw, ih := int(m.profile.ItemWidth), int(m.profile.ItemHeight)
	blank := strings.Repeat(" ", iw)

	lines := make([]string, ih)
	for y := range lines {
		lines[y] = blank
	}
	if i < 0 || i >= len(m.view.Tiles) {
		return lines
	}

	t := m.view.Tiles[i]
	bw := int(m.profile.ButtonWidth)
	padX, padY := padding(m.profile)
	left := strings.Repeat(" ", padX)
	right := strings.Repeat(" ", max(iw-padX-bw, 0))

	button := append(m.renderArtwork(t), m.renderTitle(t))
	for y, line := range button {
		if padY+y < ih {
			lines[padY+y] = left + line + right
		}
	}
	return lines
}

func padding(p present.Profile) (x, y int) {
	return int(p.ItemWidth-p.ButtonWidth) / 2, int(p.ItemHeight-p.ButtonHeight) / 2
}

// renderArtwork returns the image area of a tile. Terminal images are
// drawn over blank cells; otherwise a half-block thumbnail or the kind
// icon stands in.
func (m Model) renderArtwork(t present.Tile) []string {
	w, h := imageSize(m.profile)
	lines := make([]string, h)

	if m.images.Enabled() && m.images.Has(t.ImageURL) {
		for y := range lines {
			lines[y] = strings.Repeat(" ", w)
		}
		return lines
	}

	if thumb, ok := m.thumbs[t.ImageURL]; ok && !m.images.Enabled() {
		copy(lines, strings.Split(thumb, "\n"))
		for y := range lines {
			if lines[y] == "" {
				lines[y] = strings.Repeat(" ", w)
			}
		}
		return lines
	}

	glyph := strings.TrimSpace(icons.ForKind(t.Result.Kind))
	for y := range lines {
		text := ""
		if y == h/2 {
			text = glyph
		}
		lines[y] = styles.T().S().Artwork.Width(w).Align(lipgloss.Center).Render(text)
	}
	return lines
}

func (m Model) renderTitle(t present.Tile) string {
	title := render.Fit(t.Title, int(m.profile.ButtonWidth))
	if t.Index == m.cursor && m.IsFocused() {
		return styles.T().S().Tile.Render(title)
	}
	return styles.T().S().Base.Render(title)
}

// Placements returns where the terminal images of the current page go,
// given the 1-based screen position of the panel's top-left corner.
func (m Model) Placements(originRow, originCol int) []artwork.Placement {
	if !m.images.Enabled() {
		return nil
	}

	p := m.profile
	iw, ih := int(p.ItemWidth), int(p.ItemHeight)
	bw := int(p.ButtonWidth)
	padX, padY := padding(p)
	innerWidth := m.Width() - ui.PanelBorder
	first := m.page * p.PerPage()

	var out []artwork.Placement
	for _, t := range m.view.TilesOnPage(m.page) {
		if !m.images.Has(t.ImageURL) {
			continue
		}
		x := int(p.MarginX) + t.Column*iw + padX
		if x+bw > innerWidth {
			continue
		}
		out = append(out, artwork.Placement{
			Slot: t.Index - first,
			URL:  t.ImageURL,
			Row:  originRow + ui.BodyTop + int(p.MarginY) + t.Row*ih + padY,
			Col:  originCol + 1 + x,
		})
	}
	return out
}
