package artwork

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg is sent when one artwork load of a Group finishes.
type LoadedMsg struct {
	Gen   uint64
	Index int
	URL   string
	Data  []byte
	Err   error
}

// Group is the set of artwork loads owned by one presenter. All loads
// share a context; Cancel aborts them together and invalidates any
// message they still deliver.
type Group struct {
	loader Loader

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	gen    uint64
}

// NewGroup creates a group loading through loader.
func NewGroup(loader Loader) *Group {
	g := &Group{loader: loader}
	g.ctx, g.cancel = context.WithCancel(context.Background())
	g.gen = 1
	return g
}

// Load returns a command fetching url for the tile at index.
// Returns nil for an empty url.
func (g *Group) Load(index int, url string) tea.Cmd {
	if url == "" {
		return nil
	}

	g.mu.Lock()
	ctx, gen := g.ctx, g.gen
	g.mu.Unlock()

	loader := g.loader
	return func() tea.Msg {
		data, err := loader.Fetch(ctx, url)
		return LoadedMsg{Gen: gen, Index: index, URL: url, Data: data, Err: err}
	}
}

// Cancel aborts every in-flight load. Later Loads start a new generation.
func (g *Group) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancel()
	g.ctx, g.cancel = context.WithCancel(context.Background())
	g.gen++
}

// Accepts reports whether msg belongs to the current generation.
func (g *Group) Accepts(msg LoadedMsg) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return msg.Gen == g.gen
}

// Generation returns the current generation.
func (g *Group) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen
}
