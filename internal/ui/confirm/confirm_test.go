package confirm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/ui/uitest"
)

func answerAfter(t *testing.T, entries int, keys ...string) Answer {
	t.Helper()
	o := uitest.Open(New(entries), 80, 24).Press(keys...).Outcome()
	require.NotNil(t, o, "no answer after %v", keys)
	a, ok := o.(Answer)
	require.True(t, ok, "outcome %T", o)
	assert.True(t, a.Dismisses())
	return a
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		clear bool
	}{
		{"y clears", []string{"y"}, true},
		{"Y clears", []string{"Y"}, true},
		{"n keeps", []string{"n"}, false},
		{"N keeps", []string{"N"}, false},
		{"esc keeps", []string{"esc"}, false},
		{"enter on the default keeps", []string{"enter"}, false},
		{"enter on clear clears", []string{"right", "enter"}, true},
		{"tab moves to clear", []string{"tab", "enter"}, true},
		{"moving back keeps", []string{"l", "h", "enter"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.clear, answerAfter(t, 12, tt.keys...).Clear)
		})
	}
}

func TestAnswer_EmptyHistoryNeverClears(t *testing.T) {
	for _, keys := range [][]string{{"y"}, {"right", "enter"}, {"enter"}} {
		assert.False(t, answerAfter(t, 0, keys...).Clear, "keys %v", keys)
	}
}

func TestUpdate_FocusMovesWithoutAnswering(t *testing.T) {
	m := uitest.Open(New(3), 80, 24)
	m.Press("right")

	assert.True(t, m.Quiet())
	d, ok := m.Popup().(*Model)
	require.True(t, ok)
	assert.True(t, d.Clearing())
}

func TestView(t *testing.T) {
	tests := []struct {
		entries int
		message string
		clear   bool
	}{
		{0, "already empty", false},
		{1, "Delete the saved search?", true},
		{42, "Delete all 42 saved searches?", true},
	}
	for _, tt := range tests {
		view := uitest.Open(New(tt.entries), 80, 24).View()
		assert.Contains(t, view, "Clear search history")
		assert.Contains(t, view, tt.message)
		assert.Contains(t, view, "Keep")
		assert.Equal(t, tt.clear, strings.Contains(view, "  Clear  "), "entries %d", tt.entries)
	}
}
