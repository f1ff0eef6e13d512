// internal/app/app.go
package app

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/config"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/notify"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/state"
	"github.com/llehouerou/storesearch/internal/ui/artwork"
	"github.com/llehouerou/storesearch/internal/ui/resultgrid"
	"github.com/llehouerou/storesearch/internal/ui/resultlist"
	"github.com/llehouerou/storesearch/internal/ui/searchbar"
)

const (
	networkAlertTitle   = "Whoops..."
	networkAlertMessage = "There was an error accessing the iTunes Store. Please try again."
)

// Storefront is a searcher bound to a store country that can be changed
// at runtime.
type Storefront interface {
	Country() string
	SetCountry(country string)
}

// Deps are the services the application drives. Only Searcher and State
// are required.
type Deps struct {
	Config     *config.Config
	Searcher   search.Searcher
	Storefront Storefront
	State      state.Interface
	Artwork    art.Loader            // nil disables thumbnails
	Images     artwork.ImageProtocol // nil draws half-block thumbnails
	Notifier   notify.Alerter        // nil disables desktop notifications
	OpenURL    func(url string) error
}

// FocusTarget is the component receiving keys when no popup is open.
type FocusTarget int

const (
	FocusSearch FocusTarget = iota
	FocusResults
)

// Model is the root application model.
type Model struct {
	cfg        *config.Config
	holder     *search.Holder
	storefront Storefront
	stateMgr   state.Interface
	notifier   notify.Alerter
	openURL    func(string) error

	SearchBar searchbar.Model
	List      resultlist.Model
	Grid      resultgrid.Model
	Popups    *popupctl.Manager
	images    *artwork.Tiles
	graphics  *graphicsQueue

	Focus       FocusTarget
	Category    catalog.Category
	GridToggled bool
	gridActive  bool

	// restored from the last session, applied on the first resize
	restoreQuery string
	restoreMode  string
	sized        bool

	history []state.HistoryEntry // most recent first

	Notifications      []Notification
	nextNotificationID int64

	Width  int
	Height int
}

// New creates the application model. The last search, if any, is
// restored and re-run once the program starts.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	open := deps.OpenURL
	if open == nil {
		open = func(string) error { return nil }
	}

	images := artwork.NewTiles(deps.Images)

	m := Model{
		cfg:        cfg,
		holder:     search.NewHolder(deps.Searcher),
		storefront: deps.Storefront,
		stateMgr:   deps.State,
		notifier:   deps.Notifier,
		openURL:    open,
		SearchBar:  searchbar.New(),
		List:       resultlist.New(),
		Grid:       resultgrid.New(deps.Artwork, images),
		Popups:     popupctl.New(),
		images:     images,
		graphics:   &graphicsQueue{},
		Focus:      FocusSearch,
		Category:   cfg.GetDefaultCategory(),
	}

	if last, err := deps.State.GetLastSearch(); err != nil {
		logger.Get().Error("restore last search: %v", err)
	} else if last != nil {
		if c, ok := catalog.ParseCategory(last.Category); ok {
			m.Category = c
		}
		m.SearchBar.SetValue(last.Query)
		m.restoreQuery = strings.TrimSpace(last.Query)
		m.restoreMode = last.ViewMode
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.SearchBar.Init(), loadHistoryCmd(m.stateMgr)}
	if m.restoreQuery != "" {
		cmds = append(cmds, func() tea.Msg { return restoreSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Holder returns the search state holder.
func (m Model) Holder() *search.Holder {
	return m.holder
}

// GridActive returns true when results are shown as a grid.
func (m Model) GridActive() bool {
	return m.gridActive
}

// graphicsQueue collects terminal image commands produced outside View,
// such as deletions on grid teardown, until the next frame writes them.
type graphicsQueue struct {
	mu sync.Mutex
	sb strings.Builder
}

func (q *graphicsQueue) Add(s string) {
	if s == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sb.WriteString(s)
}

func (q *graphicsQueue) Take() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	s := q.sb.String()
	q.sb.Reset()
	return s
}
