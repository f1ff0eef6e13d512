package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Heading renders a popup title in bold, shading each grapheme from the
// accent to amber.
func Heading(text string) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	t := T()
	from, to := colour(t.Accent), colour(t.Amber)
	var b strings.Builder
	for i, c := range clusters {
		style := lipgloss.NewStyle().Bold(true).Foreground(shade(from, to, i, len(clusters)))
		b.WriteString(style.Render(c))
	}
	return b.String()
}

// shade is step i of n along the HCL blend from one colour to the other.
func shade(from, to colorful.Color, i, n int) lipgloss.Color {
	if n < 2 {
		return lipgloss.Color(from.Hex())
	}
	return lipgloss.Color(from.BlendHcl(to, float64(i)/float64(n-1)).Clamped().Hex())
}

// colour parses a #rrggbb palette entry. ANSI numbers come out grey.
func colour(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
