package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Border and padding around a box body.
const (
	padX = 2
	padY = 1
)

// Box frames content in a rounded border and centers it on a blank
// screen-sized canvas, ready for Overlay.
func Box(content string, screenW, screenH int, size Size) string {
	w, h := boxDimensions(content, screenW, screenH, size)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(padY, padX).
		Width(w - 2).
		Height(h - 2).
		Render(content)
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Alert renders a titled message box dismissed by any key.
func Alert(title, msg string, screenW, screenH int) string {
	s := styles.T().S()
	content := s.Title.Render(title) + "\n\n" + msg + "\n\n" + s.Subtle.Render("Press any key to dismiss")
	return Box(content, screenW, screenH, Fit)
}

func boxDimensions(content string, screenW, screenH int, size Size) (width, height int) {
	if size == Large {
		return size.Content(screenW, screenH)
	}
	width = min(lipgloss.Width(content)+2*padX+2, screenW-4)
	height = min(lipgloss.Height(content)+2*padY+2, screenH-4)
	return width, height
}

// Overlay draws box over base. Blank cells of box leave base visible, so a
// centered box only replaces the columns it covers. width is the screen
// width base lines are padded to.
func Overlay(base, box string, width int) string {
	lines := strings.Split(base, "\n")
	for i, row := range strings.Split(box, "\n") {
		if i >= len(lines) {
			break
		}
		plain := ansi.Strip(row)
		text := strings.TrimRight(plain, " ")
		if text == "" {
			continue
		}
		from := len(text) - len(strings.TrimLeft(text, " "))
		to := ansi.StringWidth(text)
		lines[i] = splice(lines[i], ansi.Cut(row, from, to), from, to, width)
	}
	return strings.Join(lines, "\n")
}

// splice replaces columns [from, to) of line with cell. A wide rune cut in
// half at either edge is replaced by spaces so the columns stay aligned.
func splice(line, cell string, from, to, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	head := ansi.Cut(line, 0, from)
	if w := ansi.StringWidth(head); w < from {
		head += strings.Repeat(" ", from-w)
	}
	if to >= width {
		return head + cell
	}
	tail := ansi.Cut(line, to, width)
	want := width - to
	switch w := ansi.StringWidth(tail); {
	case w > want:
		tail = " " + ansi.Cut(tail, w-want+1, w)
	case w < want:
		tail += strings.Repeat(" ", want-w)
	}
	return head + cell + tail
}
