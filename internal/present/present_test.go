package present

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/search"
)

func results(n int) []catalog.Result {
	out := make([]catalog.Result, n)
	for i := range out {
		out[i] = catalog.Result{
			Name:       fmt.Sprintf("Item %02d", i),
			ArtistName: "Artist",
			Kind:       "song",
			ImageSmall: fmt.Sprintf("https://img/%d.jpg", i),
		}
	}
	return out
}

func TestRowCount(t *testing.T) {
	tests := []struct {
		name  string
		state search.State
		want  int
	}{
		{"not searched", search.NotSearchedYet(), 0},
		{"loading", search.Loading(), 1},
		{"no results", search.NoResults(), 1},
		{"results", search.ResultsOf(results(7)), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RowCount(tt.state))
			assert.Len(t, List(tt.state).Rows, tt.want)
		})
	}
}

func TestList_RowContent(t *testing.T) {
	loading := List(search.Loading())
	assert.Equal(t, RowLoading, loading.Rows[0].Kind)
	assert.False(t, loading.Selectable)

	empty := List(search.NoResults())
	assert.Equal(t, NothingFoundText, empty.Rows[0].Title)
	assert.False(t, empty.Selectable)

	view := List(search.ResultsOf(results(2)))
	require.Len(t, view.Rows, 2)
	assert.True(t, view.Selectable)
	assert.Equal(t, RowItem, view.Rows[1].Kind)
	assert.Equal(t, "Item 01", view.Rows[1].Title)
	assert.Equal(t, "Artist (Song)", view.Rows[1].Subtitle)
	assert.Equal(t, "results", view.State)
}

func TestList_Idempotent(t *testing.T) {
	s := search.ResultsOf(results(3))
	assert.Equal(t, List(s), List(s))
}

func TestSelect(t *testing.T) {
	s := search.ResultsOf(results(3))

	r, err := Select(s, 2)
	require.NoError(t, err)
	assert.Equal(t, "Item 02", r.Name)

	_, err = Select(s, 3)
	require.ErrorIs(t, err, search.ErrStaleIndex)
	_, err = Select(search.Loading(), 0)
	require.ErrorIs(t, err, search.ErrStaleIndex)
	_, err = Select(search.NoResults(), 0)
	require.ErrorIs(t, err, search.ErrStaleIndex)
}

func TestDeviceProfiles_Lookup(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{320, "4-inch"},
		{568, "4-inch"},
		{600, "4-inch"},
		{667, "4.7-inch"},
		{700, "4-inch"},
		{724, "iPhone X"},
		{730, "4-inch"},
		{736, "5.5-inch"},
		{1024, "4-inch"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceProfiles.Lookup(tt.width).Name)
		})
	}
}

func TestDeviceProfiles_UnknownWidthKeepsDefaultPaging(t *testing.T) {
	p := DeviceProfiles.Lookup(1024)
	assert.Equal(t, 18, p.PerPage())
	assert.Equal(t, 2, PageCount(19, p))
}

func TestTerminalProfiles_LookupIsRange(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{40, "narrow"},
		{100, "medium"},
		{139, "medium"},
		{150, "wide"},
		{320, "ultrawide"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TerminalProfiles.Lookup(tt.width).Name)
		})
	}
}

func TestDeviceProfiles_Geometry(t *testing.T) {
	p := DeviceProfiles.Lookup(736)
	assert.Equal(t, 8, p.Columns)
	assert.Equal(t, 4, p.Rows)
	assert.InDelta(t, 92, p.ItemWidth, 0)
	assert.InDelta(t, 88, p.ItemHeight, 0)
	assert.Equal(t, 32, p.PerPage())

	p = DeviceProfiles.Lookup(667)
	assert.InDelta(t, 1, p.MarginX, 0)
	assert.InDelta(t, 29, p.MarginY, 0)
}

func TestProfiles_ByName(t *testing.T) {
	p, ok := TerminalProfiles.ByName("WIDE")
	require.True(t, ok)
	assert.Equal(t, 7, p.Columns)

	_, ok = DeviceProfiles.ByName("tablet")
	assert.False(t, ok)
}

func TestPageCount(t *testing.T) {
	p := DeviceProfiles.Default // 18 per page
	assert.Equal(t, 1, PageCount(0, p))
	assert.Equal(t, 1, PageCount(1, p))
	assert.Equal(t, 1, PageCount(18, p))
	assert.Equal(t, 2, PageCount(19, p))
	assert.Equal(t, 12, PageCount(200, p))
}

func TestPageAt(t *testing.T) {
	assert.Equal(t, 0, PageAt(0, 568))
	assert.Equal(t, 0, PageAt(283, 568))
	assert.Equal(t, 1, PageAt(284, 568))
	assert.Equal(t, 1, PageAt(568, 568))
	assert.Equal(t, 2, PageAt(1200, 568))
	assert.Equal(t, 0, PageAt(100, 0))
}

func TestLayout_FourInchFirstPage(t *testing.T) {
	p := DeviceProfiles.Default
	tiles := Layout(20, p)
	require.Len(t, tiles, 20)

	// Column-major: indices 0..2 fill the first column.
	assert.Equal(t, Tile{Index: 0, X: 8, Y: 23, Width: 82, Height: 82}, tiles[0])
	assert.Equal(t, 0, tiles[2].Column)
	assert.Equal(t, 2, tiles[2].Row)
	assert.InDelta(t, 23+2*88, tiles[2].Y, 0)

	assert.Equal(t, 1, tiles[3].Column)
	assert.Equal(t, 0, tiles[3].Row)
	assert.InDelta(t, 8+94, tiles[3].X, 0)

	last := tiles[17]
	assert.Equal(t, 0, last.Page)
	assert.Equal(t, 5, last.Column)
	assert.Equal(t, 2, last.Row)

	// Next page starts one page stride to the right.
	next := tiles[18]
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, 0, next.Column)
	assert.InDelta(t, 2+568+6, next.X, 0)
	assert.InDelta(t, 23, next.Y, 0)
}

func TestLayout_FractionalPadding(t *testing.T) {
	p := DeviceProfiles.Lookup(667)
	tiles := Layout(1, p)
	require.Len(t, tiles, 1)
	assert.InDelta(t, 1+6.5, tiles[0].X, 0.001)
	assert.InDelta(t, 29+8, tiles[0].Y, 0.001)
}

func TestGrid_States(t *testing.T) {
	v := Grid(search.NotSearchedYet(), 568, DeviceProfiles)
	assert.Empty(t, v.Tiles)
	assert.Equal(t, 1, v.Pages)
	assert.False(t, v.Loading)
	assert.Empty(t, v.Placeholder)

	v = Grid(search.Loading(), 568, DeviceProfiles)
	assert.True(t, v.Loading)
	assert.Empty(t, v.Tiles)

	v = Grid(search.NoResults(), 568, DeviceProfiles)
	assert.Equal(t, NothingFoundText, v.Placeholder)
	assert.Empty(t, v.Tiles)
}

func TestGrid_Results(t *testing.T) {
	v := Grid(search.ResultsOf(results(40)), 667, DeviceProfiles)

	assert.Equal(t, "4.7-inch", v.Profile.Name)
	assert.Equal(t, 2, v.Pages) // 21 per page
	assert.InDelta(t, 2*667, v.ContentWidth, 0)
	require.Len(t, v.Tiles, 40)
	assert.Equal(t, "https://img/39.jpg", v.Tiles[39].ImageURL)
	assert.Equal(t, "Item 39", v.Tiles[39].Result.Name)
	assert.Len(t, v.TilesOnPage(0), 21)
	assert.Len(t, v.TilesOnPage(1), 19)
	assert.Empty(t, v.TilesOnPage(2))
}

// Query "abc" with two matches: the list has two rows, the grid one page.
func TestPresenters_AgreeOnSameState(t *testing.T) {
	s := search.ResultsOf([]catalog.Result{
		{Name: "abc one", ArtistName: "A", Kind: "song"},
		{Name: "abc two", ArtistName: "B", Kind: "album"},
	})

	assert.Equal(t, 2, RowCount(s))
	grid := Grid(s, 568, DeviceProfiles)
	assert.Equal(t, 1, grid.Pages)
	require.Len(t, grid.Tiles, 2)
	assert.Equal(t, List(s).Rows[1].Title, grid.Tiles[1].Title)
}
