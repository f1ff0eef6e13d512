package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/ui/confirm"
	"github.com/llehouerou/storesearch/internal/ui/countryinput"
	"github.com/llehouerou/storesearch/internal/ui/detail"
	"github.com/llehouerou/storesearch/internal/ui/helpbindings"
	"github.com/llehouerou/storesearch/internal/ui/historypicker"
	"github.com/llehouerou/storesearch/internal/ui/popup"
)

// handleOutcome acts on what a popup reported and closes it when the
// outcome says so.
func (m Model) handleOutcome(o popup.Outcome) (tea.Model, tea.Cmd) {
	if o.Dismisses() {
		m.Popups.Dismiss()
	}

	switch o := o.(type) {
	case detail.OpenStore:
		return m, openStoreCmd(m.openURL, o.URL)

	case confirm.Answer:
		if o.Clear {
			return m, clearHistoryCmd(m.stateMgr)
		}

	case detail.Close, helpbindings.Close, countryinput.Canceled, historypicker.Canceled:

	case countryinput.Submitted:
		return m, m.changeCountry(o.Code)

	case historypicker.Picked:
		entry := o.Entry
		if c, ok := catalog.ParseCategory(entry.Category); ok {
			m.Category = c
		}
		m.SearchBar.SetValue(entry.Query)
		return m, m.submitSearch(entry.Query)

	default:
		logger.Get().Debug("popup outcome %T", o)
	}
	return m, nil
}

// changeCountry switches the store front and repeats the search there.
func (m *Model) changeCountry(code string) tea.Cmd {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !countryinput.Valid(code) {
		return m.notify("Invalid country code: " + code)
	}
	if code == m.storefront.Country() {
		return nil
	}
	m.storefront.SetCountry(code)
	logger.Get().Info("store front: %s", code)
	return tea.Batch(m.notify("Store country: "+code), m.rerun())
}
