// Package popup defines the modals shown over the search screen (the
// detail card, help, history picker, prompts) and draws their boxes.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Popup is a modal drawn over the search screen. It receives input only
// while it is the topmost modal.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the body only; the box and centering come from Box.
	View() string
	SetSize(width, height int)
}

// Outcome is the message a popup emits when the user is done with it or
// asks the app to act on what it shows.
type Outcome interface {
	// Dismisses reports whether the popup that emitted it should close.
	Dismisses() bool
}

// Size selects how a popup box is dimensioned on screen.
type Size int

const (
	// Fit sizes the box around its content.
	Fit Size = iota
	// Large takes a fixed share of the screen, for the detail card.
	Large
)

// Content returns the room a popup of this size may use on a screen of
// the given dimensions.
func (s Size) Content(screenW, screenH int) (width, height int) {
	if s == Large {
		return screenW * 80 / 100, screenH * 70 / 100
	}
	return screenW, screenH
}
