// Package styles holds the storesearch palette and the lipgloss styles
// built from it.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette. Purple marks focus and the highlighted result,
// amber marks prices and section labels.
type Theme struct {
	Accent      lipgloss.Color
	Amber       lipgloss.Color
	Text        lipgloss.Color
	Dim         lipgloss.Color
	Faint       lipgloss.Color
	Surface     lipgloss.Color // behind missing artwork and the list cursor
	Ink         lipgloss.Color // text drawn on the accent
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Alert       lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are built once per theme.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Header      lipgloss.Style // presenter title row
	Active      lipgloss.Style
	Price       lipgloss.Style
	Cursor      lipgloss.Style // highlighted list row
	Tile        lipgloss.Style // caption of the highlighted grid tile
	Artwork     lipgloss.Style
	Placeholder lipgloss.Style // empty, loading and failed rows
	Key         lipgloss.Style
	Section     lipgloss.Style
	Button      lipgloss.Style // focused dialog button
	Error       lipgloss.Style

	panel      lipgloss.Style
	panelFocus lipgloss.Style
}

var dark = Theme{
	Accent:      "#a78bfa",
	Amber:       "#f1a208",
	Text:        "#c0c0c0",
	Dim:         "#808080",
	Faint:       "#585858",
	Surface:     "#303030",
	Ink:         "#1a1a1a",
	Border:      "#585858",
	BorderFocus: "#a78bfa",
	Alert:       "#ff5555",
}

// T returns the theme in use.
func T() *Theme {
	return &dark
}

// S returns the styles of t.
func (t *Theme) S() *Styles {
	t.once.Do(func() { t.styles = t.build() })
	return &t.styles
}

// Panel is the rounded frame of the result presenters, lit when focused.
func (s *Styles) Panel(focused bool) lipgloss.Style {
	if focused {
		return s.panelFocus
	}
	return s.panel
}

func (t *Theme) build() Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	panel := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return Styles{
		Base:        fg(t.Text),
		Muted:       fg(t.Dim),
		Subtle:      fg(t.Faint),
		Title:       fg(t.Text).Bold(true),
		Header:      fg(t.Text).Bold(true),
		Active:      fg(t.Accent).Bold(true),
		Price:       fg(t.Amber),
		Cursor:      fg(t.Text).Background(t.Surface),
		Tile:        fg(t.Ink).Background(t.Accent).Bold(true),
		Artwork:     fg(t.Dim).Background(t.Surface),
		Placeholder: fg(t.Faint).Italic(true),
		Key:         fg(t.Accent).Bold(true),
		Section:     fg(t.Amber).Bold(true),
		Button:      fg(t.Ink).Background(t.Accent).Bold(true),
		Error:       fg(t.Alert),
		panel:       panel.BorderForeground(t.Border),
		panelFocus:  panel.BorderForeground(t.BorderFocus),
	}
}
