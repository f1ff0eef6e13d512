// Package uitest drives popups in tests the way the popup manager does:
// keys go in one at a time and the command a key returns is only run when
// a test asks for the outcome, so cursor blink timers never fire.
package uitest

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/storesearch/internal/ui/popup"
)

var named = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+p":    tea.KeyCtrlP,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+w":    tea.KeyCtrlW,
}

// Key returns the message for a key named the way tea.KeyMsg.String
// reports it. Unknown names are typed as runes.
func Key(name string) tea.KeyMsg {
	if t, ok := named[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Modal is an open popup under test.
type Modal struct {
	pop     popup.Popup
	last    tea.Cmd
	emitted int
}

// Open sizes p and runs its Init the way the popup manager does.
func Open(p popup.Popup, width, height int) *Modal {
	p.SetSize(width, height)
	p.Init()
	return &Modal{pop: p}
}

// Press sends each named key in turn.
func (m *Modal) Press(keys ...string) *Modal {
	for _, k := range keys {
		m.Send(Key(k))
	}
	return m
}

// Type sends text as one runes message, as a paste or fast typing does.
func (m *Modal) Type(text string) *Modal {
	return m.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// Send delivers msg and keeps the returned command.
func (m *Modal) Send(msg tea.Msg) *Modal {
	m.pop, m.last = m.pop.Update(msg)
	if m.last != nil {
		m.emitted++
	}
	return m
}

// Popup returns the popup, for type assertions.
func (m *Modal) Popup() popup.Popup {
	return m.pop
}

// View returns the popup body without styling.
func (m *Modal) View() string {
	return ansi.Strip(m.pop.View())
}

// Outcome runs the command returned by the last input and returns the
// outcome it reported, or nil when there was no command or it reported
// something else.
func (m *Modal) Outcome() popup.Outcome {
	if m.last == nil {
		return nil
	}
	o, _ := m.last().(popup.Outcome)
	return o
}

// Quiet reports whether no input so far returned a command.
func (m *Modal) Quiet() bool {
	return m.emitted == 0
}
