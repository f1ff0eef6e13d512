// internal/app/update.go
package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/ui/headerbar"
	"github.com/llehouerou/storesearch/internal/ui/layout"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
	"github.com/llehouerou/storesearch/internal/ui/searchbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case restoreSearchMsg:
		return m, m.submitSearch(m.restoreQuery)

	case SearchDoneMsg:
		return m.handleSearchDone(msg)

	case spinner.TickMsg:
		// Each presenter only advances its own spinner
		_, listCmd := m.List.Update(msg)
		_, gridCmd := m.Grid.Update(msg)
		return m, tea.Batch(listCmd, gridCmd)

	case art.LoadedMsg:
		_, cmd := m.Grid.Update(msg)
		return m, cmd

	case popup.Outcome:
		return m.handleOutcome(msg)

	case HistoryLoadedMsg:
		if msg.Err != nil {
			return m, m.notify(errmsg.Format(errmsg.OpHistoryLoad, msg.Err))
		}
		m.history = msg.Entries
		queries := make([]string, len(msg.Entries))
		for i, e := range msg.Entries {
			queries[i] = e.Query
		}
		m.SearchBar.SetHistory(queries)
		return m, nil

	case HistorySavedMsg:
		if msg.Err != nil {
			return m, m.notify(errmsg.Format(errmsg.OpHistorySave, msg.Err))
		}
		return m, loadHistoryCmd(m.stateMgr)

	case HistoryClearedMsg:
		if msg.Err != nil {
			return m, m.notify(errmsg.Format(errmsg.OpHistoryClear, msg.Err))
		}
		m.history = nil
		m.SearchBar.SetHistory(nil)
		return m, m.notify("Search history cleared")

	case StoreOpenedMsg:
		if msg.Err != nil {
			return m, m.notify(errmsg.FormatWith(errmsg.OpOpenStoreURL, msg.URL, msg.Err))
		}
		return m, nil

	case FailureNotifiedMsg:
		if msg.Err != nil {
			logger.Get().Debug("desktop notification: %v", msg.Err)
		}
		return m, nil

	case notificationExpiredMsg:
		m.Notifications = slices.DeleteFunc(m.Notifications, func(n Notification) bool {
			return n.ID == msg.id
		})
		return m, m.resize()
	}

	// Cursor blink and other input internals
	var cmds []tea.Cmd
	if m.Popups.HasActive() {
		cmds = append(cmds, m.Popups.HandleMsg(msg))
	}
	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	if !m.sized {
		m.sized = true
		if m.restoreMode != "" {
			m.GridToggled = (m.restoreMode == viewModeGrid) != m.landscape()
		}
	}
	return m, m.resize()
}

func (m *Model) screen() layout.Screen {
	return layout.Screen{
		Width:         m.Width,
		Height:        m.Height,
		Bars:          searchbar.Height + headerbar.Height,
		Notifications: len(m.Notifications),
	}
}

func (m *Model) landscape() bool {
	return m.cfg.AutoLandscape() && m.screen().Landscape(m.cfg.LandscapeRatio())
}

// resize lays out every component for the current terminal size and
// switches presenters when the orientation calls for it.
func (m *Model) resize() tea.Cmd {
	if m.Width == 0 || m.Height == 0 {
		return nil
	}
	h := m.screen().Results()
	m.SearchBar.SetSize(m.Width, searchbar.Height)
	m.List.SetSize(m.Width, h)
	m.Grid.SetSize(m.Width, h)
	m.Popups.SetSize(m.Width, m.Height)

	return m.applyViewMode()
}

// applyViewMode activates the presenter chosen by orientation and toggle.
// Entering the grid carries the cursor over and starts thumbnail loads;
// leaving it tears the thumbnails down.
func (m *Model) applyViewMode() tea.Cmd {
	grid := m.screen().UseGrid(m.landscape(), m.GridToggled)
	if grid == m.gridActive {
		if grid {
			return m.Grid.LoadPage()
		}
		return nil
	}
	m.gridActive = grid
	logger.Get().Debug("presenter: grid=%v (%dx%d)", grid, m.Width, m.Height)

	if grid {
		m.Grid.SetState(m.holder.State())
		return m.Grid.SetCursor(m.List.SelectedIndex())
	}

	m.graphics.Add(m.Grid.Teardown())
	m.List.SetState(m.holder.State())
	m.List.SetCursor(m.Grid.SelectedIndex())
	return nil
}

// syncResults renders the holder state into both presenters.
func (m *Model) syncResults() {
	s := m.holder.State()
	m.List.SetState(s)
	m.Grid.SetState(s)
}

func (m Model) handleSearchDone(msg SearchDoneMsg) (tea.Model, tea.Cmd) {
	applied, success := m.holder.Complete(msg.Completion)
	if !applied {
		return m, nil
	}

	m.syncResults()
	m.List.ResetCursor()
	m.Grid.ResetCursor()

	var cmds []tea.Cmd
	if m.gridActive {
		cmds = append(cmds, m.Grid.LoadPage())
	}
	if !success {
		logger.Get().Error("%s", errmsg.Format(errmsg.OpSearch, m.holder.Err()))
		m.Popups.ShowAlert(networkAlertTitle, networkAlertMessage)
		if m.cfg.Notifications && m.notifier != nil {
			cmds = append(cmds, notifyFailureCmd(m.notifier))
		}
	}
	return m, tea.Batch(cmds...)
}

// submitSearch issues a search for query in the current category. The
// presenters show the loading row before this returns.
func (m *Model) submitSearch(query string) tea.Cmd {
	req, ok := m.holder.Begin(query, m.Category)
	if !ok {
		return nil
	}

	m.Grid.CancelLoads()
	m.syncResults()
	m.List.ResetCursor()
	m.Grid.ResetCursor()
	m.SearchBar.Remember(req.Query)
	m.setFocus(FocusResults)
	m.persist()

	return tea.Batch(
		runSearchCmd(m.holder, req),
		addHistoryCmd(m.stateMgr, req.Query, req.Category.Key()),
		m.List.SpinnerTick(),
		m.Grid.SpinnerTick(),
	)
}

// rerun repeats the last query, e.g. after the category or store front
// changed. It does nothing before the first search.
func (m *Model) rerun() tea.Cmd {
	query := m.SearchBar.Query()
	if query == "" {
		query = m.holder.Query()
	}
	return m.submitSearch(query)
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.SearchBar.SetFocused(f == FocusSearch)
	m.List.SetFocused(f == FocusResults)
	m.Grid.SetFocused(f == FocusResults)
}

// notify shows a temporary message at the bottom of the screen.
func (m *Model) notify(message string) tea.Cmd {
	m.nextNotificationID++
	id := m.nextNotificationID
	m.Notifications = append(m.Notifications, Notification{ID: id, Message: message})
	return tea.Batch(m.resize(), expireNotification(id))
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.HasActive() {
		return m, nil
	}

	top := m.screen().ResultsTop()
	if msg.Y < top {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.setFocus(FocusSearch)
		}
		return m, nil
	}
	msg.Y -= top
	if msg.Action == tea.MouseActionPress {
		m.setFocus(FocusResults)
	}

	var result scroll.Activation
	var cmd tea.Cmd
	if m.gridActive {
		result, cmd = m.Grid.Update(msg)
	} else {
		result, cmd = m.List.Update(msg)
	}

	switch result.Gesture {
	case scroll.GestureOpen:
		return m, tea.Batch(cmd, m.showDetail(result.Index))
	case scroll.GestureStore:
		return m, tea.Batch(cmd, m.openStore(result.Index))
	case scroll.GestureNone, scroll.GestureClick:
	}
	return m, cmd
}
