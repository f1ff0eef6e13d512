package present

import "strings"

// Profile is a named grid geometry. Units are whatever the host draws in:
// points for DeviceProfiles, terminal cells for TerminalProfiles.
type Profile struct {
	Name         string  `json:"name"`
	MinWidth     float64 `json:"min_width"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	ItemWidth    float64 `json:"item_width"`
	ItemHeight   float64 `json:"item_height"`
	MarginX      float64 `json:"margin_x"`
	MarginY      float64 `json:"margin_y"`
	ButtonWidth  float64 `json:"button_width"`
	ButtonHeight float64 `json:"button_height"`
}

// PerPage returns the number of tiles on one page.
func (p Profile) PerPage() int {
	return p.Columns * p.Rows
}

// PageStride returns the horizontal distance between two pages.
func (p Profile) PageStride() float64 {
	return float64(p.Columns)*p.ItemWidth + 2*p.MarginX
}

func (p Profile) padX() float64 {
	return (p.ItemWidth - p.ButtonWidth) / 2
}

func (p Profile) padY() float64 {
	return (p.ItemHeight - p.ButtonHeight) / 2
}

// Profiles is a lookup table of geometries keyed on viewport width.
type Profiles struct {
	Default Profile
	// Entries sorted by ascending MinWidth.
	Entries []Profile
	// Exact makes Lookup match MinWidth exactly instead of as a lower bound.
	Exact bool
}

// Lookup returns the profile for width, or the default when none matches.
// Exact tables match a known width only; range tables pick the widest
// profile whose MinWidth fits.
func (ps Profiles) Lookup(width float64) Profile {
	if ps.Exact {
		for _, p := range ps.Entries {
			if p.MinWidth == width {
				return p
			}
		}
		return ps.Default
	}

	best := ps.Default
	found := false
	for _, p := range ps.Entries {
		if p.MinWidth <= width && (!found || p.MinWidth >= best.MinWidth) {
			best = p
			found = true
		}
	}
	return best
}

// ByName returns the profile with the given name (case-insensitive).
func (ps Profiles) ByName(name string) (Profile, bool) {
	for _, p := range ps.Entries {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}

const deviceButtonSize = 82

var fourInch = Profile{
	Name: "4-inch", MinWidth: 568, Columns: 6, Rows: 3,
	ItemWidth: 94, ItemHeight: 88, MarginX: 2, MarginY: 20,
	ButtonWidth: deviceButtonSize, ButtonHeight: deviceButtonSize,
}

// DeviceProfiles is the phone landscape table, in points. Widths other than
// the four known screens get the 4-inch layout.
var DeviceProfiles = Profiles{
	Default: fourInch,
	Exact:   true,
	Entries: []Profile{
		fourInch,
		{
			Name: "4.7-inch", MinWidth: 667, Columns: 7, Rows: 3,
			ItemWidth: 95, ItemHeight: 98, MarginX: 1, MarginY: 29,
			ButtonWidth: deviceButtonSize, ButtonHeight: deviceButtonSize,
		},
		{
			Name: "iPhone X", MinWidth: 724, Columns: 8, Rows: 3,
			ItemWidth: 90, ItemHeight: 98, MarginX: 2, MarginY: 29,
			ButtonWidth: deviceButtonSize, ButtonHeight: deviceButtonSize,
		},
		{
			Name: "5.5-inch", MinWidth: 736, Columns: 8, Rows: 4,
			ItemWidth: 92, ItemHeight: 88, MarginX: 0, MarginY: 20,
			ButtonWidth: deviceButtonSize, ButtonHeight: deviceButtonSize,
		},
	},
}

var terminalNarrow = Profile{
	Name: "narrow", MinWidth: 0, Columns: 4, Rows: 2,
	ItemWidth: 18, ItemHeight: 9, MarginX: 1, MarginY: 1,
	ButtonWidth: 16, ButtonHeight: 8,
}

// TerminalProfiles is the TUI table, in cells. Tiles are roughly square on
// a typical 1:2 cell aspect.
var TerminalProfiles = Profiles{
	Default: terminalNarrow,
	Entries: []Profile{
		terminalNarrow,
		{
			Name: "medium", MinWidth: 100, Columns: 5, Rows: 2,
			ItemWidth: 19, ItemHeight: 9, MarginX: 2, MarginY: 1,
			ButtonWidth: 16, ButtonHeight: 8,
		},
		{
			Name: "wide", MinWidth: 140, Columns: 7, Rows: 3,
			ItemWidth: 19, ItemHeight: 9, MarginX: 2, MarginY: 1,
			ButtonWidth: 16, ButtonHeight: 8,
		},
		{
			Name: "ultrawide", MinWidth: 200, Columns: 9, Rows: 3,
			ItemWidth: 21, ItemHeight: 10, MarginX: 4, MarginY: 1,
			ButtonWidth: 18, ButtonHeight: 9,
		},
	},
}
