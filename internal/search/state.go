// Package search owns the search lifecycle: the four-case search state and
// the holder that issues store searches and applies their completions.
package search

import "github.com/llehouerou/storesearch/internal/catalog"

// Kind identifies which case of State holds.
type Kind int

const (
	KindNotSearchedYet Kind = iota // No query issued yet
	KindLoading                    // Request in flight
	KindNoResults                  // Completed with zero matches or failed
	KindResults                    // Completed with a non-empty list
)

// String returns the lowercase name used in logs and the HTTP API.
func (k Kind) String() string {
	switch k {
	case KindNotSearchedYet:
		return "notSearchedYet"
	case KindLoading:
		return "loading"
	case KindNoResults:
		return "noResults"
	case KindResults:
		return "results"
	}
	return "unknown"
}

// State is the current search state. The zero value is NotSearchedYet.
// A State in the Results case always carries at least one item.
type State struct {
	kind    Kind
	results []catalog.Result
}

// NotSearchedYet returns the initial state.
func NotSearchedYet() State {
	return State{kind: KindNotSearchedYet}
}

// Loading returns the in-flight state.
func Loading() State {
	return State{kind: KindLoading}
}

// NoResults returns the empty terminal state.
func NoResults() State {
	return State{kind: KindNoResults}
}

// ResultsOf returns the Results state for list, or NoResults when list is
// empty. The list is copied.
func ResultsOf(list []catalog.Result) State {
	if len(list) == 0 {
		return NoResults()
	}
	return State{kind: KindResults, results: append([]catalog.Result(nil), list...)}
}

// Kind returns the active case.
func (s State) Kind() Kind {
	return s.kind
}

// IsLoading returns true while a request is in flight.
func (s State) IsLoading() bool {
	return s.kind == KindLoading
}

// CanSelect returns true if rows or tiles may be selected.
func (s State) CanSelect() bool {
	return s.kind == KindResults
}

// Len returns the number of results (0 outside the Results case).
func (s State) Len() int {
	return len(s.results)
}

// Results returns a copy of the result list (nil outside the Results case).
func (s State) Results() []catalog.Result {
	if s.kind != KindResults {
		return nil
	}
	return append([]catalog.Result(nil), s.results...)
}

// At returns the result at index by value.
func (s State) At(index int) (catalog.Result, bool) {
	if s.kind != KindResults || index < 0 || index >= len(s.results) {
		return catalog.Result{}, false
	}
	return s.results[index], true
}

func (s State) String() string {
	return s.kind.String()
}
