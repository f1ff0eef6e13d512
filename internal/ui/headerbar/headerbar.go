// Package headerbar renders the category selector line under the search bar.
package headerbar

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Height is the rows the header bar takes.
const Height = 1

// State is what the header shows.
type State struct {
	Category catalog.Category
	Mode     string // mode indicator, e.g. "[grid]"
	Country  string // store front, e.g. "US"
	Status   string // e.g. "42 results"
}

// Segments renders the category selector: "1 All │ 2 Music │ ...".
func Segments(active catalog.Category) string {
	s := styles.T().S()
	parts := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		key, name := s.Muted, s.Base
		if c == active {
			key, name = s.Active, s.Active
		}
		parts[i] = key.Render(strconv.Itoa(i+1)) + " " + name.Render(c.String())
	}
	return strings.Join(parts, s.Subtle.Render(" │ "))
}

// Render returns the header bar string for the given width: the category
// selector on the left, status and store front on the right.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	left := Segments(s.Category)
	right := styles.T().S().Muted.Render(strings.Join(slices.DeleteFunc(
		[]string{s.Status, s.Mode, s.Country},
		func(v string) bool { return v == "" },
	), "  "))

	// the selector wins when both do not fit
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		return ansi.Truncate(left, width, "…")
	}
	return render.Spread(left, right, width)
}
