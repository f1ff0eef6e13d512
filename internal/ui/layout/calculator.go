// Package layout splits the terminal between the bars, the results and
// the notification panel, and decides when the grid replaces the list.
package layout

const (
	// DefaultLandscapeRatio is the columns-to-rows ratio from which the
	// terminal counts as landscape. Cells are about twice as tall as wide,
	// so 4.0 is roughly a 2:1 screen.
	DefaultLandscapeRatio = 4.0

	// MinGridHeight is the fewest result rows the grid is shown in.
	MinGridHeight = 12

	panelBorder = 2
)

// Screen is the terminal as storesearch draws it, top to bottom: Bars rows
// of search and header bar, the results, then a bordered panel holding one
// line per notification.
type Screen struct {
	Width, Height int
	Bars          int
	Notifications int
}

// Panel is the height of the notification panel, zero when empty.
func (s Screen) Panel() int {
	if s.Notifications == 0 {
		return 0
	}
	return s.Notifications + panelBorder
}

// Results is the number of rows left for the result presenter.
func (s Screen) Results() int {
	return max(s.Height-s.Bars-s.Panel(), 0)
}

// ResultsTop is the 0-based row the results start on.
func (s Screen) ResultsTop() int {
	return s.Bars
}

// Landscape reports whether the terminal is wide enough, relative to its
// height, for the grid. A non-positive ratio uses DefaultLandscapeRatio.
func (s Screen) Landscape(ratio float64) bool {
	if s.Width <= 0 || s.Height <= 0 {
		return false
	}
	if ratio <= 0 {
		ratio = DefaultLandscapeRatio
	}
	return float64(s.Width)/float64(s.Height) >= ratio
}

// UseGrid decides between grid and list. The orientation picks one and
// the manual toggle flips it. The grid is never used when the results are
// too short for a row of tiles.
func (s Screen) UseGrid(landscape, toggled bool) bool {
	if s.Results() < MinGridHeight {
		return false
	}
	return landscape != toggled
}
