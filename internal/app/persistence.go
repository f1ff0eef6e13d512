// internal/app/persistence.go
package app

import "github.com/llehouerou/storesearch/internal/state"

const (
	viewModeList = "list"
	viewModeGrid = "grid"
)

// persist saves the current query, category and presenter. The state
// manager debounces writes.
func (m *Model) persist() {
	query := m.holder.Query()
	if query == "" {
		query = m.SearchBar.Query()
	}
	mode := viewModeList
	switch {
	case !m.sized && m.restoreMode != "":
		mode = m.restoreMode
	case m.gridActive:
		mode = viewModeGrid
	}
	m.stateMgr.SaveLastSearch(state.LastSearch{
		Query:    query,
		Category: m.Category.Key(),
		ViewMode: mode,
	})
}
