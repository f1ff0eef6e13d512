// Package present translates search state into list and grid renderings.
// Both presenters are pure functions of the state: they never trigger a
// search and may be called any number of times.
package present

import (
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/search"
)

// Placeholder texts.
const (
	LoadingText      = "Loading..."
	NothingFoundText = "Nothing Found"
)

// RowKind identifies what a list row shows.
type RowKind int

const (
	RowLoading RowKind = iota
	RowNothingFound
	RowItem
)

func (k RowKind) String() string {
	switch k {
	case RowLoading:
		return "loading"
	case RowNothingFound:
		return "nothingFound"
	case RowItem:
		return "item"
	}
	return "unknown"
}

// Row is one row of the list rendering.
type Row struct {
	Kind     RowKind        `json:"kind"`
	Index    int            `json:"index"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Result   catalog.Result `json:"-"`
}

// ListView is the list rendering of a state.
type ListView struct {
	State      string `json:"state"`
	Rows       []Row  `json:"rows"`
	Selectable bool   `json:"selectable"`
}

// RowCount returns the number of list rows for s: 0 before any search,
// 1 while loading or when nothing was found, otherwise one per result.
func RowCount(s search.State) int {
	switch s.Kind() {
	case search.KindNotSearchedYet:
		return 0
	case search.KindLoading, search.KindNoResults:
		return 1
	case search.KindResults:
		return s.Len()
	}
	return 0
}

// List renders s as a one-column list.
func List(s search.State) ListView {
	view := ListView{
		State:      s.Kind().String(),
		Rows:       make([]Row, 0, RowCount(s)),
		Selectable: s.CanSelect(),
	}

	switch s.Kind() {
	case search.KindNotSearchedYet:
	case search.KindLoading:
		view.Rows = append(view.Rows, Row{Kind: RowLoading, Title: LoadingText})
	case search.KindNoResults:
		view.Rows = append(view.Rows, Row{Kind: RowNothingFound, Title: NothingFoundText})
	case search.KindResults:
		for i, r := range s.Results() {
			view.Rows = append(view.Rows, Row{
				Kind:     RowItem,
				Index:    i,
				Title:    r.Name,
				Subtitle: r.Subtitle(),
				Result:   r,
			})
		}
	}
	return view
}

// Select returns the result at index of the live state s, by value.
// Returns search.ErrStaleIndex when s is not showing results or index is
// out of range.
func Select(s search.State, index int) (catalog.Result, error) {
	r, ok := s.At(index)
	if !ok {
		return catalog.Result{}, search.ErrStaleIndex
	}
	return r, nil
}
