// Package detail provides the popup describing one store item.
package detail

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close asks the app to hide the detail card.
type Close struct{}

// Dismisses implements popup.Outcome.
func (Close) Dismisses() bool { return true }

// OpenStore asks the app to open the item's store page. The card stays up.
type OpenStore struct {
	URL string
}

// Dismisses implements popup.Outcome.
func (OpenStore) Dismisses() bool { return false }

const labelWidth = 10

// Model shows one item. It holds a copy of the result, so it stays valid
// whatever happens to the search that produced it.
type Model struct {
	ui.Frame
	item     catalog.Result
	viewport viewport.Model
}

// New creates a detail popup for item.
func New(item catalog.Result) *Model {
	return &Model{
		item:     item,
		viewport: viewport.New(0, 0),
	}
}

// Item returns the item shown.
func (m *Model) Item() catalog.Result {
	return m.item
}

func (m *Model) contentWidth() int {
	return max(min(m.Width()*70/100, 90), 20)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)

	w := m.contentWidth()
	// Popup border and padding, header block, separator and hint
	h := max(height*80/100-4-len(m.headerLines())-3, 3)

	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(m.description(w))
}

func (m *Model) description(width int) string {
	s := styles.T().S()
	text := strings.TrimSpace(m.item.Description)
	if text == "" {
		return s.Subtle.Render("No description.")
	}
	return s.Base.Width(width).Render(text)
}

func (m *Model) headerLines() []string {
	s := styles.T().S()
	label := s.Subtle.Width(labelWidth)
	lines := []string{
		styles.Heading(icons.FormatResult(m.item.Kind, render.Clean(m.item.Name))),
		s.Muted.Render(render.Clean(m.item.Subtitle())),
		"",
	}
	add := func(name, value string, style lipgloss.Style) {
		if value != "" {
			lines = append(lines, label.Render(name)+style.Render(value))
		}
	}
	add("Type", m.item.Type(), s.Base)
	add("Genre", render.Clean(m.item.Genre), s.Base)
	add("Price", m.item.PriceText(), s.Price)
	add("Released", m.item.ReleasedText(), s.Base)
	add("Store", m.item.StoreURL, s.Base)
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc", "enter", "q":
		return m, func() tea.Msg { return Close{} }
	case "o":
		if m.item.StoreURL == "" {
			return m, nil
		}
		url := m.item.StoreURL
		return m, func() tea.Msg { return OpenStore{URL: url} }
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	w := m.contentWidth()
	header := make([]string, 0, 8)
	for _, line := range m.headerLines() {
		header = append(header, lipgloss.NewStyle().MaxWidth(w).Render(line))
	}

	hint := "j/k scroll · o open in store · esc close"
	if !m.viewport.AtBottom() {
		hint = "↓ more · " + hint
	}

	return strings.Join(header, "\n") + "\n" +
		render.Rule(w) + "\n" +
		m.viewport.View() + "\n" +
		styles.T().S().Subtle.Render(hint)
}
