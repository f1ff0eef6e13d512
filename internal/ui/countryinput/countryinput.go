// Package countryinput provides the prompt for the store front country.
package countryinput

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Submitted carries a valid, upper-cased country code.
type Submitted struct {
	Code string
}

// Dismisses implements popup.Outcome.
func (Submitted) Dismisses() bool { return true }

// Canceled reports the prompt was closed without a code.
type Canceled struct{}

// Dismisses implements popup.Outcome.
func (Canceled) Dismisses() bool { return true }

// Valid reports whether code is shaped like an ISO 3166 alpha-2 code,
// which is what the store's country parameter takes.
func Valid(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Model prompts for a two-letter code. Only letters are accepted and
// they are upper-cased as typed.
type Model struct {
	ui.Frame
	input   textinput.Model
	invalid bool
}

// New creates the prompt pre-filled with the current country.
func New(current string) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "US"
	ti.CharLimit = 2
	ti.Width = 4
	ti.SetValue(current)
	ti.Focus()
	return &Model{input: ti}
}

// Value returns the code typed so far.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // everything else edits the field
		case tea.KeyEsc:
			return m, func() tea.Msg { return Canceled{} }
		case tea.KeyEnter:
			code := strings.ToUpper(strings.TrimSpace(m.input.Value()))
			if !Valid(code) {
				m.invalid = true
				return m, nil
			}
			return m, func() tea.Msg { return Submitted{Code: code} }
		case tea.KeyRunes:
			key.Runes = letters(key.Runes)
			if len(key.Runes) == 0 {
				return m, nil
			}
			msg = key
		}
		m.invalid = false
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func letters(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			out = append(out, unicode.ToUpper(r))
		}
	}
	return out
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	hint := s.Subtle.Render("enter confirm · esc cancel")
	if m.invalid {
		hint = s.Error.Render("Use a two-letter code such as US, FR or JP")
	}
	return styles.Heading("Store country") + "\n\n" +
		m.input.View() + "\n\n" +
		hint
}
