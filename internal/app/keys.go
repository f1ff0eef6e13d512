package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
)

var (
	searchKeys  = keymap.Stack(keymap.Search)
	globalKeys  = keymap.Stack(keymap.Global)
	resultsKeys = keymap.Stack(keymap.Results, keymap.Global)
	gridKeys    = keymap.Stack(keymap.Grid, keymap.Results, keymap.Global)
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	if m.Focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleResultsKey(msg)
}

// handleSearchKey lets the search bar see printable keys first, so that
// typing "q" or "?" edits the query.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if cmd, ok := m.handleSearchAction(searchKeys.Action(key)); ok {
		return m, cmd
	}
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		if cmd, ok := m.handleGlobalAction(globalKeys.Action(key)); ok {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchAction(a keymap.Action) (tea.Cmd, bool) {
	switch a { //nolint:exhaustive // search bar actions only
	case keymap.ActionSubmitSearch:
		return m.submitSearch(m.SearchBar.Query()), true
	case keymap.ActionHistoryPrev:
		m.SearchBar.Previous()
		return nil, true
	case keymap.ActionHistoryNext:
		m.SearchBar.Next()
		return nil, true
	case keymap.ActionMoveDown, keymap.ActionClose:
		m.setFocus(FocusResults)
		return nil, true
	}
	return nil, false
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := resultsKeys
	if m.gridActive {
		keys = gridKeys
	}
	a := keys.Action(msg.String())

	if cmd, ok := m.handleResultsAction(a); ok {
		return m, cmd
	}
	if cmd, ok := m.handleGlobalAction(a); ok {
		return m, cmd
	}
	cmd, _ := m.handleNavigation(msg, a)
	return m, cmd
}

func (m *Model) handleResultsAction(a keymap.Action) (tea.Cmd, bool) {
	switch a { //nolint:exhaustive // result actions only
	case keymap.ActionSelect:
		return m.showDetail(m.selectedIndex()), true
	case keymap.ActionOpenStore:
		return m.openStore(m.selectedIndex()), true
	case keymap.ActionCategoryAll:
		return m.setCategory(catalog.CategoryAll), true
	case keymap.ActionCategoryMusic:
		return m.setCategory(catalog.CategoryMusic), true
	case keymap.ActionCategoryApps:
		return m.setCategory(catalog.CategorySoftware), true
	case keymap.ActionCategoryBooks:
		return m.setCategory(catalog.CategoryEBooks), true
	case keymap.ActionClearHistory:
		return m.Popups.ShowClearHistory(len(m.history)), true
	}
	return nil, false
}

func (m *Model) handleGlobalAction(a keymap.Action) (tea.Cmd, bool) {
	switch a { //nolint:exhaustive // global actions only
	case keymap.ActionQuit:
		return m.quit(), true
	case keymap.ActionHelp:
		return m.Popups.ShowHelp(m.helpContexts()), true
	case keymap.ActionFocusSearch:
		m.setFocus(FocusSearch)
		return nil, true
	case keymap.ActionNextCategory:
		return m.setCategory(m.stepCategory(1)), true
	case keymap.ActionPrevCategory:
		return m.setCategory(m.stepCategory(-1)), true
	case keymap.ActionToggleGrid:
		m.GridToggled = !m.GridToggled
		cmd := m.applyViewMode()
		m.persist()
		return cmd, true
	case keymap.ActionHistoryPicker:
		return m.Popups.ShowHistory(m.history), true
	case keymap.ActionChangeCountry:
		if m.storefront == nil {
			return m.notify("The store country is fixed"), true
		}
		return m.Popups.ShowCountryInput(m.storefront.Country()), true
	}
	return nil, false
}

// handleNavigation forwards movement keys to the active presenter.
func (m *Model) handleNavigation(msg tea.KeyMsg, a keymap.Action) (tea.Cmd, bool) {
	switch a { //nolint:exhaustive // movement actions only
	case keymap.ActionMoveUp, keymap.ActionMoveDown,
		keymap.ActionMoveLeft, keymap.ActionMoveRight,
		keymap.ActionJumpStart, keymap.ActionJumpEnd,
		keymap.ActionPageUp, keymap.ActionPageDown:
	default:
		return nil, false
	}

	var result scroll.Activation
	var cmd tea.Cmd
	if m.gridActive {
		result, cmd = m.Grid.Update(msg)
	} else {
		result, cmd = m.List.Update(msg)
	}
	if result.Gesture == scroll.GestureOpen {
		return tea.Batch(cmd, m.showDetail(result.Index)), true
	}
	return cmd, true
}

func (m *Model) helpContexts() []keymap.Context {
	switch {
	case m.Focus == FocusSearch:
		return []keymap.Context{keymap.Search, keymap.Global}
	case m.gridActive:
		return []keymap.Context{keymap.Grid, keymap.Results, keymap.Global}
	default:
		return []keymap.Context{keymap.Results, keymap.Global}
	}
}

// selectedIndex returns the cursor position of the active presenter, or
// -1 when nothing is selectable.
func (m *Model) selectedIndex() int {
	if !m.holder.State().CanSelect() {
		return -1
	}
	if m.gridActive {
		return m.Grid.SelectedIndex()
	}
	return m.List.SelectedIndex()
}

// selected resolves index against the live state. Indexes from a
// rendering that has since been replaced are rejected.
func (m *Model) selected(index int) (catalog.Result, bool) {
	item, err := m.holder.Select(index)
	if err != nil {
		logger.Get().Debug("select %d: %v", index, err)
		return catalog.Result{}, false
	}
	return item, true
}

func (m *Model) showDetail(index int) tea.Cmd {
	item, ok := m.selected(index)
	if !ok {
		return nil
	}
	return m.Popups.ShowDetail(item)
}

func (m *Model) openStore(index int) tea.Cmd {
	item, ok := m.selected(index)
	if !ok || item.StoreURL == "" {
		return nil
	}
	return openStoreCmd(m.openURL, item.StoreURL)
}

func (m *Model) stepCategory(delta int) catalog.Category {
	n := len(catalog.Categories)
	i := ((m.Category.Index()+delta)%n + n) % n
	c, _ := catalog.CategoryFromIndex(i)
	return c
}

// setCategory switches the category and re-runs the query in it.
func (m *Model) setCategory(c catalog.Category) tea.Cmd {
	if c == m.Category {
		return nil
	}
	m.Category = c
	m.persist()
	return m.rerun()
}

func (m *Model) quit() tea.Cmd {
	m.persist()
	m.holder.Close()
	m.graphics.Add(m.Grid.Teardown())
	return tea.Quit
}
