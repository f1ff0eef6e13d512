// Package render lays store metadata out in fixed-width terminal cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut to fit a cell.
const Ellipsis = "…"

// Clean turns store metadata into one printable line. Control characters
// and invalid bytes are dropped; tabs, newlines and no-break spaces become
// plain spaces.
func Clean(s string) string {
	if !dirty(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size == 1:
		case r == '\t', r == '\n', r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dirty(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Clip cleans s and cuts it to at most width columns, ending in Ellipsis
// when anything was cut. Wide runes are never split.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(Clean(s), width, Ellipsis)
}

// Fit clips s and pads it with spaces to exactly width columns.
func Fit(s string, width int) string {
	return PadRight(Clip(s, width), width)
}

// PadRight pads plain text with spaces up to width columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Spread puts left and right at the edges of a width-column line, keeping
// at least one space between them. Both may be styled.
func Spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Rule is a horizontal line width columns long.
func Rule(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// Blank is an empty line width columns long.
func Blank(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
