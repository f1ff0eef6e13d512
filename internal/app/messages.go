package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/state"
)

// SearchDoneMsg carries the outcome of a search issued by the app.
type SearchDoneMsg struct {
	Completion search.Completion
}

// restoreSearchMsg re-runs the search saved by the previous session.
type restoreSearchMsg struct{}

// HistoryLoadedMsg delivers past queries for recall in the search bar.
type HistoryLoadedMsg struct {
	Entries []state.HistoryEntry
	Err     error
}

// HistorySavedMsg reports the outcome of recording a query.
type HistorySavedMsg struct {
	Err error
}

// HistoryClearedMsg reports the outcome of clearing the history.
type HistoryClearedMsg struct {
	Err error
}

// StoreOpenedMsg reports the outcome of opening a store page.
type StoreOpenedMsg struct {
	URL string
	Err error
}

// FailureNotifiedMsg reports the outcome of the desktop notification sent
// after a network failure.
type FailureNotifiedMsg struct {
	Err error
}

// Notification is a line in the panel under the results, such as the
// "Copied link" after yank. It goes away after NotificationDuration.
type Notification struct {
	ID      int64
	Message string
}

const NotificationDuration = 3 * time.Second

type notificationExpiredMsg struct {
	id int64
}

func expireNotification(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}
