package resultlist

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
)

func results(names ...string) search.State {
	out := make([]catalog.Result, len(names))
	for i, n := range names {
		out[i] = catalog.Result{Name: n, ArtistName: "Artist", Kind: "song", Price: 1.29, Currency: "USD"}
	}
	return search.ResultsOf(out)
}

func newFocused() Model {
	m := New()
	m.SetSize(80, 20)
	m.SetFocused(true)
	return m
}

func TestView_NotSearchedYetShowsHint(t *testing.T) {
	m := newFocused()

	view := ansi.Strip(m.View())
	assert.Contains(t, view, Hint)
	assert.Empty(t, m.ListView().Rows)
}

func TestView_Loading(t *testing.T) {
	m := newFocused()
	m.SetState(search.Loading())

	assert.True(t, m.Loading())
	assert.Contains(t, ansi.Strip(m.View()), present.LoadingText)
}

func TestView_NothingFound(t *testing.T) {
	m := newFocused()
	m.SetState(search.NoResults())

	assert.Contains(t, ansi.Strip(m.View()), present.NothingFoundText)
}

func TestView_Results(t *testing.T) {
	m := newFocused()
	m.SetState(results("Yesterday", "Help!"))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Yesterday")
	assert.Contains(t, view, "Artist (Song)")
	assert.Contains(t, view, "1.29 USD")
	assert.Contains(t, view, "1/2")
}

func TestUpdate_EnterOnPlaceholderIgnored(t *testing.T) {
	m := newFocused()
	m.SetState(search.NoResults())

	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, scroll.Nothing, result)

	click := tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, Y: ui.BodyTop}
	result, _ = m.Update(click)
	assert.Equal(t, scroll.Nothing, result)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestUpdate_NavigateAndEnter(t *testing.T) {
	m := newFocused()
	m.SetState(results("a", "b", "c"))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, scroll.GestureOpen, result.Gesture)
	assert.Equal(t, 2, result.Index)

	row, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", row.Title)
}

func TestSetState_ClampsCursor(t *testing.T) {
	m := newFocused()
	m.SetState(results("a", "b", "c"))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 2, m.SelectedIndex())

	m.SetState(results("only"))
	assert.Equal(t, 0, m.SelectedIndex())

	m.SetState(results("a", "b", "c"))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m.ResetCursor()
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestUpdate_SpinnerTickIgnoredWhenNotLoading(t *testing.T) {
	m := newFocused()
	m.SetState(results("a"))

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestUpdate_MouseTargetsResultUnderPointer(t *testing.T) {
	m := newFocused()
	m.SetState(results("a", "b", "c"))

	press := func(button tea.MouseButton, row int) tea.MouseMsg {
		return tea.MouseMsg{Button: button, Action: tea.MouseActionPress, Y: ui.BodyTop + row}
	}

	result, _ := m.Update(press(tea.MouseButtonLeft, 1))
	assert.Equal(t, scroll.Activation{Gesture: scroll.GestureClick, Index: 1}, result)
	assert.Equal(t, 1, m.SelectedIndex())

	result, _ = m.Update(press(tea.MouseButtonMiddle, 2))
	assert.Equal(t, scroll.Activation{Gesture: scroll.GestureStore, Index: 2}, result)
	assert.Equal(t, 1, m.SelectedIndex(), "middle click leaves the highlight")

	result, _ = m.Update(press(tea.MouseButtonLeft, 5))
	assert.Equal(t, scroll.Nothing, result)
}

func TestUpdate_IgnoresInputWhenBlurred(t *testing.T) {
	m := newFocused()
	m.SetState(results("a", "b", "c"))
	m.SetFocused(false)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	result, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, scroll.Nothing, result)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestSetCursor_CarriesGridPosition(t *testing.T) {
	m := newFocused()
	names := make([]string, 40)
	for i := range names {
		names[i] = string(rune('A' + i%26))
	}
	m.SetState(results(names...))

	m.SetCursor(30)
	assert.Equal(t, 30, m.SelectedIndex())
	row, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, names[30], row.Title)

	m.SetCursor(99)
	assert.Equal(t, 39, m.SelectedIndex())
}
