// Package resultgrid renders search results as a paged grid of artwork
// tiles.
package resultgrid

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/artwork"
	"github.com/llehouerou/storesearch/internal/ui/scroll"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// Model is the grid presenter component. Thumbnails load asynchronously
// through an artwork group; tiles without one keep their placeholder.
type Model struct {
	ui.Frame
	state   search.State
	view    present.GridView
	profile present.Profile
	cursor  int
	page    int
	spinner spinner.Model

	group  *art.Group
	images *artwork.Tiles

	// Keyed by image URL
	requested map[string]bool
	failed    map[string]bool
	thumbs    map[string]string // half-block renderings when images are off
}

// New creates an empty grid. A nil loader disables thumbnails; a nil or
// disabled images renderer falls back to half-block thumbnails.
func New(loader art.Loader, images *artwork.Tiles) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.T().S().Placeholder

	m := Model{
		state:     search.NotSearchedYet(),
		spinner:   s,
		images:    images,
		requested: make(map[string]bool),
		failed:    make(map[string]bool),
		thumbs:    make(map[string]string),
	}
	if loader != nil {
		m.group = art.NewGroup(loader)
	}
	m.relayout()
	return m
}

// SetSize sets the panel dimensions and re-tiles the current state.
func (m *Model) SetSize(width, height int) {
	m.Frame.SetSize(width, height)
	m.relayout()
}

// SetState re-renders the grid from s. The cursor is clamped to the new
// tile count and the page follows it.
func (m *Model) SetState(s search.State) {
	m.state = s
	m.relayout()
}

// ResetCursor moves back to the first tile of the first page.
func (m *Model) ResetCursor() {
	m.cursor = 0
	m.page = 0
}

func (m *Model) relayout() {
	innerWidth := max(m.Width()-ui.PanelBorder, 0)
	avail := m.Height() - ui.PanelChrome

	p := present.TerminalProfiles.Lookup(float64(innerWidth))
	if fit := (avail - int(p.MarginY)) / int(p.ItemHeight); fit < p.Rows {
		p.Rows = max(fit, 1)
	}

	tileW, tileH := imageSize(p)
	if tileW != imageWidth(m.profile) || tileH != imageHeight(m.profile) {
		// Images of the old size are dropped by the renderer; fetch again.
		m.images.SetTileSize(tileW, tileH)
		clear(m.requested)
		clear(m.thumbs)
	}

	m.profile = p
	m.view = present.GridWithProfile(m.state, float64(innerWidth), p)

	n := len(m.view.Tiles)
	m.cursor = min(m.cursor, max(n-1, 0))
	if n > 0 {
		m.page = m.view.Tiles[m.cursor].Page
	} else {
		m.page = 0
	}
}

// imageSize returns the cell size of a tile's artwork: the whole button
// minus its title line.
func imageSize(p present.Profile) (width, height int) {
	return imageWidth(p), imageHeight(p)
}

func imageWidth(p present.Profile) int {
	return int(p.ButtonWidth)
}

func imageHeight(p present.Profile) int {
	return max(int(p.ButtonHeight)-1, 0)
}

// SetCursor moves the cursor to tile i and shows its page. It returns
// the loads for the new page.
func (m *Model) SetCursor(i int) tea.Cmd {
	if len(m.view.Tiles) == 0 {
		return nil
	}
	m.moveTo(i)
	return m.LoadPage()
}

// GridView returns the current rendering.
func (m Model) GridView() present.GridView {
	return m.view
}

// Profile returns the geometry in use.
func (m Model) Profile() present.Profile {
	return m.profile
}

// Loading returns true while the loading placeholder is shown.
func (m Model) Loading() bool {
	return m.view.Loading
}

// Page returns the page shown, starting at 0.
func (m Model) Page() int {
	return m.page
}

// Pages returns the page count.
func (m Model) Pages() int {
	return m.view.Pages
}

// SelectedIndex returns the index of the tile under the cursor.
func (m Model) SelectedIndex() int {
	return m.cursor
}

// Selected returns the tile under the cursor.
func (m Model) Selected() (present.Tile, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Tiles) {
		return present.Tile{}, false
	}
	return m.view.Tiles[m.cursor], true
}

// SpinnerTick starts the loading spinner.
func (m Model) SpinnerTick() tea.Cmd {
	return m.spinner.Tick
}

// LoadPage returns the commands fetching thumbnails of the current and
// next page that are neither loaded nor in flight.
func (m *Model) LoadPage() tea.Cmd {
	if m.group == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, t := range m.view.Tiles {
		if t.Page != m.page && t.Page != m.page+1 {
			continue
		}
		if t.ImageURL == "" || m.hasThumbnail(t.ImageURL) ||
			m.requested[t.ImageURL] || m.failed[t.ImageURL] {
			continue
		}
		m.requested[t.ImageURL] = true
		cmds = append(cmds, m.group.Load(t.Index, t.ImageURL))
	}
	return tea.Batch(cmds...)
}

func (m Model) hasThumbnail(url string) bool {
	if m.images.Enabled() {
		return m.images.Has(url)
	}
	_, ok := m.thumbs[url]
	return ok
}

// CancelLoads aborts in-flight thumbnail loads. Thumbnails already
// received are kept; they are keyed by URL and stay valid.
func (m *Model) CancelLoads() {
	if m.group == nil {
		return
	}
	m.group.Cancel()
	clear(m.requested)
}

// Teardown cancels every load and drops all thumbnails. It returns the
// terminal commands deleting transmitted images.
func (m *Model) Teardown() string {
	m.CancelLoads()
	clear(m.failed)
	clear(m.thumbs)
	return m.images.Clear()
}

// Generation returns the generation of the artwork group, 0 without one.
func (m Model) Generation() uint64 {
	if m.group == nil {
		return 0
	}
	return m.group.Generation()
}

func (m *Model) handleLoaded(msg art.LoadedMsg) {
	if m.group == nil || !m.group.Accepts(msg) {
		return
	}
	delete(m.requested, msg.URL)

	if msg.Err != nil {
		logger.Get().Debug("artwork %s: %v", msg.URL, msg.Err)
		m.failed[msg.URL] = true
		return
	}

	if m.images.Enabled() {
		if err := m.images.Prepare(msg.URL, msg.Data); err != nil {
			logger.Get().Debug("artwork %s: %v", msg.URL, err)
			m.failed[msg.URL] = true
		}
		return
	}

	img, err := art.Decode(msg.Data, 0, 0)
	if err != nil {
		logger.Get().Debug("artwork %s: %v", msg.URL, err)
		m.failed[msg.URL] = true
		return
	}
	w, h := imageSize(m.profile)
	m.thumbs[msg.URL] = artwork.HalfBlocks(img, w, h)
}

// Update handles navigation, thumbnail arrivals and spinner ticks. The
// returned result tells the parent which tile was activated, if any.
func (m *Model) Update(msg tea.Msg) (scroll.Activation, tea.Cmd) {
	none := scroll.Nothing

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.Loading() {
			return none, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return none, cmd

	case art.LoadedMsg:
		m.handleLoaded(msg)
		return none, nil

	case tea.KeyMsg:
		if len(m.view.Tiles) == 0 || !m.IsFocused() {
			return none, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if len(m.view.Tiles) == 0 {
			return none, nil
		}
		return m.handleMouse(msg)
	}
	return none, nil
}
