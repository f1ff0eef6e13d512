package searchbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNew_Focused(t *testing.T) {
	m := New()
	assert.True(t, m.IsFocused())
	assert.Empty(t, m.Value())
}

func TestUpdate_Typing(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  abba ")})

	assert.Equal(t, "  abba ", m.Value())
	assert.Equal(t, "abba", m.Query())
}

func TestRecall_PreviousNext(t *testing.T) {
	m := New()
	m.SetHistory([]string{"newest", "older", "oldest"})
	m.SetValue("draft")

	assert.True(t, m.Previous())
	assert.Equal(t, "newest", m.Value())
	assert.True(t, m.Previous())
	assert.True(t, m.Previous())
	assert.Equal(t, "oldest", m.Value())
	assert.False(t, m.Previous(), "no entry older than the oldest")

	assert.True(t, m.Next())
	assert.Equal(t, "older", m.Value())
	assert.True(t, m.Next())
	assert.True(t, m.Next())
	assert.Equal(t, "draft", m.Value(), "recall ends at the typed text")
	assert.False(t, m.Next())
}

func TestRecall_EmptyHistory(t *testing.T) {
	m := New()
	assert.False(t, m.Previous())
	assert.False(t, m.Next())
}

func TestRemember_MovesToFrontCaseInsensitive(t *testing.T) {
	m := New()
	m.SetHistory([]string{"stones", "Beatles"})
	m.Remember("beatles")

	assert.Equal(t, []string{"beatles", "stones"}, m.history)

	m.Remember("   ")
	assert.Len(t, m.history, 2)
}

func TestSetFocused(t *testing.T) {
	m := New()
	m.SetFocused(false)
	assert.False(t, m.IsFocused())

	// Blurred input ignores typing
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, m.Value())
}
