// internal/app/app_test.go
package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/state"
	"github.com/llehouerou/storesearch/internal/ui/confirm"
	"github.com/llehouerou/storesearch/internal/ui/countryinput"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/uitest"
)

type fakeSearcher struct{}

func (fakeSearcher) Search(context.Context, string, catalog.Category) ([]catalog.Result, error) {
	return nil, nil
}

type fakeStorefront struct {
	country string
}

func (f *fakeStorefront) Country() string           { return f.country }
func (f *fakeStorefront) SetCountry(country string) { f.country = country }

func newTestModel(t *testing.T, mgr *state.Mock) Model {
	t.Helper()
	if mgr == nil {
		mgr = state.NewMock()
	}
	return New(Deps{
		Searcher:   fakeSearcher{},
		Storefront: &fakeStorefront{country: "US"},
		State:      mgr,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func items(names ...string) []catalog.Result {
	out := make([]catalog.Result, len(names))
	for i, n := range names {
		out[i] = catalog.Result{Name: n, ArtistName: "Artist", Kind: "song", StoreURL: "https://example.com/" + n}
	}
	return out
}

// searchAndComplete submits query and applies a successful completion.
func searchAndComplete(t *testing.T, m Model, query string, results []catalog.Result) Model {
	t.Helper()
	m.SearchBar.SetValue(query)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, SearchDoneMsg{Completion: search.Completion{
		Generation: m.Holder().Generation(),
		Results:    results,
	}})
	return m
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width != 120 || m.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.Width, m.Height)
	}
	if m.GridActive() {
		t.Error("120x40 is portrait, want list")
	}
	if m.View() == "" {
		t.Error("View should render once sized")
	}
}

func TestSubmit_ShowsLoadingBeforeCompletion(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = typeText(t, m, "beatles")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("enter should issue the search")
	}
	if !m.Holder().State().IsLoading() {
		t.Errorf("state = %s, want loading", m.Holder().State())
	}
	if !m.List.Loading() {
		t.Error("list should show the loading row")
	}
	if m.Focus != FocusResults {
		t.Error("focus should move to results")
	}
	last, _ := mgr.GetLastSearch()
	if last == nil || last.Query != "beatles" {
		t.Errorf("last search = %+v, want query beatles", last)
	}
}

func TestSubmit_BlankQueryIsIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeText(t, m, "   ")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Holder().Generation() != 0 {
		t.Error("blank query should not issue a search")
	}
	if m.Focus != FocusSearch {
		t.Error("focus should stay on the search bar")
	}
}

func TestSearchDone_StaleCompletionIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m.SearchBar.SetValue("first")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	firstGen := m.Holder().Generation()

	m.setFocus(FocusSearch)
	m.SearchBar.SetValue("second")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, SearchDoneMsg{Completion: search.Completion{
		Generation: firstGen,
		Results:    items("old"),
	}})
	if !m.Holder().State().IsLoading() {
		t.Fatalf("stale completion applied: state = %s", m.Holder().State())
	}

	m, _ = update(t, m, SearchDoneMsg{Completion: search.Completion{
		Generation: m.Holder().Generation(),
		Results:    items("new", "newer"),
	}})
	if got := m.Holder().State().Len(); got != 2 {
		t.Errorf("results = %d, want 2", got)
	}
	if rows := m.List.ListView().Rows; len(rows) != 2 || rows[0].Title == "" {
		t.Errorf("list rows = %+v", rows)
	}
}

func TestSearchDone_FailureAlertsOnce(t *testing.T) {
	m := newTestModel(t, nil)
	m.SearchBar.SetValue("abba")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	done := SearchDoneMsg{Completion: search.Completion{
		Generation: m.Holder().Generation(),
		Err:        errors.New("connection refused"),
	}}
	m, _ = update(t, m, done)

	if m.Holder().State().Kind() != search.KindNoResults {
		t.Errorf("state = %s, want no results", m.Holder().State())
	}
	if m.Popups.ErrorTitle() != networkAlertTitle || m.Popups.ErrorMsg() != networkAlertMessage {
		t.Errorf("alert = %q / %q", m.Popups.ErrorTitle(), m.Popups.ErrorMsg())
	}

	// Dismiss, then replay the same completion
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, done)
	if m.Popups.HasActive() {
		t.Error("a completion is applied at most once")
	}
}

func TestSelect_ShowsDetailForLiveResult(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = searchAndComplete(t, m, "abba", items("a", "b", "c"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	d := m.Popups.Detail()
	if d == nil {
		t.Fatal("detail popup not shown")
	}
	if d.Item().Name != "b" {
		t.Errorf("detail item = %q, want b", d.Item().Name)
	}
}

func TestSelect_StaleIndexIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m = searchAndComplete(t, m, "abba", items("a", "b", "c"))

	if _, ok := m.selected(7); ok {
		t.Error("index past the results should be rejected")
	}

	// A new search replaces the results while the cursor still points at them
	m.setFocus(FocusSearch)
	m.SearchBar.SetValue("queen")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := m.showDetail(1); cmd != nil || m.Popups.IsVisible(popupctl.Detail) {
		t.Error("selection during loading should be ignored")
	}
}

func TestKeys_PrintableKeysEditQuery(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeText(t, m, "q?")

	if m.SearchBar.Value() != "q?" {
		t.Errorf("query = %q, want q?", m.SearchBar.Value())
	}
	if m.Popups.HasActive() {
		t.Error("? in the search bar must not open help")
	}
}

func TestKeys_CategoryChangeRerunsQuery(t *testing.T) {
	m := newTestModel(t, nil)
	m = searchAndComplete(t, m, "abba", items("a"))
	gen := m.Holder().Generation()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	if m.Category != catalog.CategoryMusic {
		t.Errorf("category = %v, want music", m.Category)
	}
	if cmd == nil || m.Holder().Generation() != gen+1 {
		t.Error("category change should re-run the query")
	}
	if m.Holder().Category() != catalog.CategoryMusic {
		t.Errorf("search category = %v, want music", m.Holder().Category())
	}
}

func TestKeys_TabCyclesCategories(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Category != catalog.CategoryEBooks {
		t.Errorf("shift+tab from all = %v, want e-books", m.Category)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Category != catalog.CategoryAll {
		t.Errorf("tab = %v, want all", m.Category)
	}
}

func TestViewMode_LandscapeUsesGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		toggled       bool
		want          bool
	}{
		{"wide", 200, 40, false, true},
		{"portrait", 100, 40, false, false},
		{"wide toggled", 200, 40, true, false},
		{"portrait toggled", 100, 40, true, true},
		{"too short", 200, 10, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m.GridToggled = tt.toggled
			m, _ = update(t, m, tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			if m.GridActive() != tt.want {
				t.Errorf("grid = %v, want %v", m.GridActive(), tt.want)
			}
		})
	}
}

func TestViewMode_ToggleCarriesCursor(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = searchAndComplete(t, m, "abba", items("a", "b", "c", "d"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})

	if !m.GridActive() {
		t.Fatal("ctrl+g should switch to the grid")
	}
	if m.Grid.SelectedIndex() != 2 {
		t.Errorf("grid cursor = %d, want 2", m.Grid.SelectedIndex())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.GridActive() {
		t.Fatal("second ctrl+g should switch back")
	}
	if m.List.SelectedIndex() != 2 {
		t.Errorf("list cursor = %d, want 2", m.List.SelectedIndex())
	}
}

func TestRestore_LastSearch(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetLastSearch(&state.LastSearch{Query: "abba", Category: "music", ViewMode: "grid"})

	m := newTestModel(t, mgr)
	if m.Category != catalog.CategoryMusic {
		t.Errorf("category = %v, want music", m.Category)
	}
	if m.SearchBar.Value() != "abba" {
		t.Errorf("query = %q, want abba", m.SearchBar.Value())
	}

	// Portrait terminal, but the grid was in use last time
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !m.GridActive() {
		t.Error("saved grid mode should be restored")
	}

	m, _ = update(t, m, restoreSearchMsg{})
	if !m.Holder().State().IsLoading() || m.Holder().Query() != "abba" {
		t.Errorf("restored search not issued: %s %q", m.Holder().State(), m.Holder().Query())
	}
}

// press sends keys to the model and feeds back the outcome the last key
// produced, the way the runtime would.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, uitest.Key(k))
	}
	if cmd == nil {
		return m
	}
	if o, ok := cmd().(popup.Outcome); ok {
		m, _ = update(t, m, o)
	}
	return m
}

func TestCountry_ChangeRerunsSearch(t *testing.T) {
	m := newTestModel(t, nil)
	m = searchAndComplete(t, m, "abba", items("a"))
	gen := m.Holder().Generation()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.Popups.ActivePopup() != popupctl.Country {
		t.Fatal("ctrl+o should prompt for the country")
	}

	m = press(t, m, "f", "r", "enter")
	if got := m.storefront.Country(); got != "FR" {
		t.Errorf("country = %q, want FR", got)
	}
	if m.Popups.HasActive() {
		t.Error("the prompt should close once a code is submitted")
	}
	if m.Holder().Generation() != gen+1 {
		t.Error("country change should re-run the query")
	}
}

func TestCountry_PromptKeepsInvalidCode(t *testing.T) {
	m := newTestModel(t, nil)
	m.Popups.ShowCountryInput("")

	m = press(t, m, "f", "enter")
	if m.Popups.ActivePopup() != popupctl.Country {
		t.Error("a one-letter code should leave the prompt open")
	}
	if got := m.storefront.Country(); got != "US" {
		t.Errorf("country = %q, want US", got)
	}
}

func TestCountry_InvalidCodeRejected(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, countryinput.Submitted{Code: "1x"})

	if got := m.storefront.Country(); got != "US" {
		t.Errorf("country = %q, want US", got)
	}
	if len(m.Notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(m.Notifications))
	}
}

func TestHistoryPicker_RerunsPickedSearch(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, HistoryLoadedMsg{Entries: []state.HistoryEntry{
		{Query: "minecraft", Category: "software"},
		{Query: "queen", Category: "music"},
	}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.Popups.ActivePopup() != popupctl.History {
		t.Fatal("ctrl+r should open the history picker")
	}

	m = press(t, m, "q", "u", "e", "enter")
	if m.Popups.HasActive() {
		t.Error("picking should close the picker")
	}
	if m.Category != catalog.CategoryMusic {
		t.Errorf("category = %v, want music", m.Category)
	}
	if m.SearchBar.Value() != "queen" || m.Holder().Query() != "queen" {
		t.Errorf("query = %q, holder = %q, want queen", m.SearchBar.Value(), m.Holder().Query())
	}
	if !m.Holder().State().IsLoading() {
		t.Error("the picked search should be running")
	}
}

func TestClearHistory_Answer(t *testing.T) {
	mgr := state.NewMock()
	if err := mgr.AddHistory("queen", "music"); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, mgr)
	m, _ = update(t, m, HistoryLoadedMsg{Entries: []state.HistoryEntry{{Query: "queen", Category: "music"}}})

	if _, cmd := update(t, m, confirm.Answer{}); cmd != nil {
		t.Error("keeping the history should do nothing")
	}

	m, cmd := update(t, m, confirm.Answer{Clear: true})
	if cmd == nil {
		t.Fatal("a clear answer should clear the store")
	}
	m, _ = update(t, m, cmd())
	if got, _ := mgr.History(10); len(got) != 0 {
		t.Errorf("stored history = %v, want empty", got)
	}
	if len(m.history) != 0 {
		t.Errorf("model history = %v, want empty", m.history)
	}
	if len(m.Notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(m.Notifications))
	}
}

func TestNotifications_ExpireOneByOne(t *testing.T) {
	m := newTestModel(t, nil)
	m.notify("first")
	m.notify("second")
	first := m.Notifications[0].ID

	m, _ = update(t, m, notificationExpiredMsg{id: first})
	if len(m.Notifications) != 1 || m.Notifications[0].Message != "second" {
		t.Errorf("notifications = %v, want only second", m.Notifications)
	}
	m, _ = update(t, m, notificationExpiredMsg{id: first})
	if len(m.Notifications) != 1 {
		t.Errorf("expiring twice removed %v", m.Notifications)
	}
}

func TestHistory_LoadedIntoRecall(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, HistoryLoadedMsg{Entries: []state.HistoryEntry{
		{Query: "queen"}, {Query: "abba"},
	}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.SearchBar.Value() != "queen" {
		t.Errorf("recalled = %q, want queen", m.SearchBar.Value())
	}
}

func TestQuit_ClosesHolder(t *testing.T) {
	m := newTestModel(t, nil)
	m.SearchBar.SetValue("abba")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := m.Holder().Generation()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit from the results")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.Holder().Generation() == gen {
		t.Error("quit should invalidate the in-flight search")
	}
	if applied, _ := m.Holder().Complete(search.Completion{Generation: gen}); applied {
		t.Error("a search finishing after quit must be discarded")
	}
}
