package scroll

import tea "github.com/charmbracelet/bubbletea"

// Gesture is what the user did to a result.
type Gesture int

const (
	GestureNone  Gesture = iota
	GestureOpen          // enter on the highlighted result
	GestureClick         // left click highlighted a result
	GestureStore         // middle click asks for the store page
)

// Activation reports a gesture and the result index it targets.
type Activation struct {
	Gesture Gesture
	Index   int
}

// Nothing is the Activation for input that did not target a result.
var Nothing = Activation{Index: -1}

// Key applies a navigation key. It returns false for keys it does not
// know. Enter is left to the caller.
func (w *Window) Key(key string, rows, height int) bool {
	page := max(height-1, 1)
	switch key {
	case "down", "j":
		w.Step(1, rows, height)
	case "up", "k":
		w.Step(-1, rows, height)
	case "pgdown", "ctrl+f":
		w.Step(page, rows, height)
	case "pgup", "ctrl+b":
		w.Step(-page, rows, height)
	case "ctrl+d":
		w.Step(height/2, rows, height)
	case "ctrl+u":
		w.Step(-height/2, rows, height)
	case "home", "g":
		w.Jump(0, rows, height)
	case "end", "G":
		w.Jump(rows-1, rows, height)
	default:
		return false
	}
	return true
}

// Mouse applies a wheel or button event whose Y is relative to the first
// drawn row.
func (w *Window) Mouse(msg tea.MouseMsg, rows, height int) Activation {
	if rows == 0 {
		return Nothing
	}
	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonWheelDown:
		w.Step(1, rows, height)
		return Nothing
	case tea.MouseButtonWheelUp:
		w.Step(-1, rows, height)
		return Nothing
	}
	if msg.Action != tea.MouseActionPress || msg.Y < 0 || msg.Y >= height {
		return Nothing
	}
	index := w.top + msg.Y
	if index >= rows {
		return Nothing
	}
	switch msg.Button { //nolint:exhaustive // other buttons are ignored
	case tea.MouseButtonLeft:
		w.Jump(index, rows, height)
		return Activation{Gesture: GestureClick, Index: index}
	case tea.MouseButtonMiddle:
		return Activation{Gesture: GestureStore, Index: index}
	}
	return Nothing
}
