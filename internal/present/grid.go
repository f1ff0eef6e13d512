package present

import (
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/search"
)

// Tile is one item button of the grid.
type Tile struct {
	Index    int     `json:"index"`
	Page     int     `json:"page"`
	Column   int     `json:"column"`
	Row      int     `json:"row"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ImageURL string  `json:"image_url,omitempty"`
	Title    string  `json:"title"`

	Result catalog.Result `json:"-"`
}

// GridView is the grid rendering of a state. Outside the Results case it
// carries no tiles and at most a placeholder.
type GridView struct {
	State       string  `json:"state"`
	Profile     Profile `json:"profile"`
	Loading     bool    `json:"loading"`
	Placeholder string  `json:"placeholder,omitempty"`
	Tiles       []Tile  `json:"tiles"`
	Pages       int     `json:"pages"`
	// ContentWidth is Pages times the viewport width.
	ContentWidth float64 `json:"content_width"`
}

// PageCount returns the number of pages needed for n tiles, at least 1.
func PageCount(n int, p Profile) int {
	per := p.PerPage()
	if per <= 0 || n <= 0 {
		return 1
	}
	return (n + per - 1) / per
}

// PageAt returns the page index shown at a horizontal scroll offset, the
// page whose center is nearest.
func PageAt(offset, pageWidth float64) int {
	if pageWidth <= 0 {
		return 0
	}
	page := int((offset + pageWidth/2) / pageWidth)
	return max(page, 0)
}

// Layout tiles n items for profile p. Tiles fill each page column by
// column, top to bottom, then move to the next page.
func Layout(n int, p Profile) []Tile {
	if n <= 0 || p.Rows <= 0 || p.Columns <= 0 {
		return nil
	}
	tiles := make([]Tile, n)
	per := p.PerPage()
	for i := range tiles {
		page := i / per
		inPage := i % per
		col := inPage / p.Rows
		row := inPage % p.Rows
		tiles[i] = Tile{
			Index:  i,
			Page:   page,
			Column: col,
			Row:    row,
			X:      p.MarginX + float64(page)*p.PageStride() + float64(col)*p.ItemWidth + p.padX(),
			Y:      p.MarginY + float64(row)*p.ItemHeight + p.padY(),
			Width:  p.ButtonWidth,
			Height: p.ButtonHeight,
		}
	}
	return tiles
}

// Grid renders s for a viewport of the given width, using the profile the
// table selects for that width.
func Grid(s search.State, width float64, profiles Profiles) GridView {
	return GridWithProfile(s, width, profiles.Lookup(width))
}

// GridWithProfile renders s with an explicit profile.
func GridWithProfile(s search.State, width float64, p Profile) GridView {
	view := GridView{
		State:   s.Kind().String(),
		Profile: p,
		Pages:   1,
	}

	switch s.Kind() {
	case search.KindNotSearchedYet:
	case search.KindLoading:
		view.Loading = true
	case search.KindNoResults:
		view.Placeholder = NothingFoundText
	case search.KindResults:
		results := s.Results()
		view.Tiles = Layout(len(results), p)
		for i := range view.Tiles {
			view.Tiles[i].Result = results[i]
			view.Tiles[i].ImageURL = results[i].ImageSmall
			view.Tiles[i].Title = results[i].Name
		}
		view.Pages = PageCount(len(results), p)
	}
	view.ContentWidth = float64(view.Pages) * width
	return view
}

// TilesOnPage returns the tiles of view that sit on page.
func (v GridView) TilesOnPage(page int) []Tile {
	var out []Tile
	for _, t := range v.Tiles {
		if t.Page == page {
			out = append(out, t)
		}
	}
	return out
}
