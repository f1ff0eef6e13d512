// internal/app/commands.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/notify"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/state"
)

// historyLimit bounds the queries loaded for recall and the picker.
const historyLimit = 100

// runSearchCmd performs the network part of req off the update loop.
func runSearchCmd(holder *search.Holder, req search.Request) tea.Cmd {
	return func() tea.Msg {
		return SearchDoneMsg{Completion: holder.Run(req)}
	}
}

func loadHistoryCmd(mgr state.Interface) tea.Cmd {
	return func() tea.Msg {
		entries, err := mgr.History(historyLimit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

func addHistoryCmd(mgr state.Interface, query, category string) tea.Cmd {
	return func() tea.Msg {
		return HistorySavedMsg{Err: mgr.AddHistory(query, category)}
	}
}

func clearHistoryCmd(mgr state.Interface) tea.Cmd {
	return func() tea.Msg {
		return HistoryClearedMsg{Err: mgr.ClearHistory()}
	}
}

func openStoreCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return StoreOpenedMsg{URL: url, Err: open(url)}
	}
}

func notifyFailureCmd(n notify.Alerter) tea.Cmd {
	return func() tea.Msg {
		err := n.Alert(notify.Alert{Title: networkAlertTitle, Body: networkAlertMessage})
		return FailureNotifiedMsg{Err: err}
	}
}
