// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/ui/artwork"
	"github.com/llehouerou/storesearch/internal/ui/headerbar"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.SearchBar.View() + "\n" + headerbar.Render(m.headerState(), m.Width)

	if m.gridActive {
		view += "\n" + m.Grid.View()
	} else {
		view += "\n" + m.List.View()
	}

	if len(m.Notifications) > 0 {
		view += "\n" + m.renderNotifications()
	}

	view = m.Popups.RenderOverlay(view)

	// Ensure view is exactly terminal height (pad or truncate if needed)
	view = enforceHeight(view, m.Height)

	// Image transmissions and deletions go before any placement
	view = m.graphics.Take() + m.images.TakePending() + view

	return view + m.images.Place(m.placements())
}

// placements returns where grid thumbnails are drawn. Terminal images sit
// above the text layer, so none are drawn while a popup is open.
func (m Model) placements() []artwork.Placement {
	if !m.gridActive || m.Popups.HasActive() {
		return nil
	}
	return m.Grid.Placements(m.screen().ResultsTop()+1, 1)
}

func (m Model) headerState() headerbar.State {
	s := headerbar.State{
		Category: m.Category,
		Mode:     icons.List(),
		Status:   statusText(m.holder),
	}
	if m.gridActive {
		s.Mode = icons.Grid()
	}
	if m.storefront != nil {
		s.Country = m.storefront.Country()
	}
	return s
}

func statusText(h *search.Holder) string {
	s := h.State()
	switch s.Kind() {
	case search.KindLoading:
		return "Searching…"
	case search.KindResults:
		if s.Len() == 1 {
			return "1 result"
		}
		return fmt.Sprintf("%d results", s.Len())
	case search.KindNoResults:
		if h.Err() != nil {
			return "offline"
		}
		return "0 results"
	case search.KindNotSearchedYet:
	}
	return ""
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for i := len(lines); i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}

// renderNotifications renders all notification messages.
func (m Model) renderNotifications() string {
	s := styles.T().S()
	innerWidth := m.Width - 2 // Account for borders

	lines := make([]string, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		lines = append(lines, s.Active.Render("•")+" "+s.Base.Render(render.Fit(n.Message, innerWidth-2)))
	}

	return s.Panel(false).Width(innerWidth).Render(strings.Join(lines, "\n"))
}
