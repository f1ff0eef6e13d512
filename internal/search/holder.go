package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/logger"
)

// ErrStaleIndex is returned by Select when the index does not address an
// item of the live Results state.
var ErrStaleIndex = errors.New("index out of range for current results")

// Searcher runs a store search.
type Searcher interface {
	Search(ctx context.Context, term string, category catalog.Category) ([]catalog.Result, error)
}

// Request is one issued search. It carries the generation it was issued
// under so its completion can be matched against the live generation.
type Request struct {
	ID         string
	Generation uint64
	Query      string
	Category   catalog.Category

	ctx context.Context
}

// Context returns the request context; it is canceled when a newer search
// is issued or the holder is closed.
func (r Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Completion is the outcome of a Request.
type Completion struct {
	ID         string
	Generation uint64
	Results    []catalog.Result
	Err        error
}

// Holder owns the search state. Begin and Complete are the only writers;
// Run performs the blocking network call and may run on any goroutine.
type Holder struct {
	searcher Searcher

	mu       sync.Mutex
	state    State
	gen      uint64
	cancel   context.CancelFunc
	query    string
	category catalog.Category
	lastErr  error
}

// NewHolder creates a holder in the NotSearchedYet state.
func NewHolder(searcher Searcher) *Holder {
	return &Holder{
		searcher: searcher,
		state:    NotSearchedYet(),
	}
}

// Begin synchronously starts a new search: it invalidates any in-flight
// request and moves the state to Loading. A blank query is a no-op and
// returns false.
func (h *Holder) Begin(query string, category catalog.Category) (Request, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.gen++
	h.state = Loading()
	h.query = query
	h.category = category
	h.lastErr = nil

	req := Request{
		ID:         uuid.NewString(),
		Generation: h.gen,
		Query:      query,
		Category:   category,
		ctx:        ctx,
	}
	logger.Get().Debug("search %s: begin gen=%d query=%q category=%s",
		req.ID, req.Generation, query, category)
	return req, true
}

// Run performs the network search for req. It does not touch holder state.
func (h *Holder) Run(req Request) Completion {
	results, err := h.searcher.Search(req.Context(), req.Query, req.Category)
	return Completion{
		ID:         req.ID,
		Generation: req.Generation,
		Results:    results,
		Err:        err,
	}
}

// Complete applies a completion. Completions from a superseded generation
// are discarded and report applied=false. Otherwise the state becomes
// NoResults (error or zero matches) or Results, and success reports whether
// the request itself succeeded.
func (h *Holder) Complete(c Completion) (applied, success bool) {
	_, applied, success = h.Resolve(c)
	return applied, success
}

// Resolve is Complete that also returns the state it applied, read under
// the same lock, so callers reporting the outcome never observe a newer
// search's Loading state.
func (h *Holder) Resolve(c Completion) (st State, applied, success bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.Generation != h.gen || !h.state.IsLoading() {
		logger.Get().Debug("search %s: discard stale completion gen=%d (current %d)",
			c.ID, c.Generation, h.gen)
		return h.state, false, false
	}

	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}

	if c.Err != nil {
		logger.Get().Error("search %s: %v", c.ID, c.Err)
		h.state = NoResults()
		h.lastErr = c.Err
		return h.state, true, false
	}

	h.state = ResultsOf(c.Results)
	logger.Get().Debug("search %s: %s (%d items)", c.ID, h.state, h.state.Len())
	return h.state, true, true
}

// PerformSearch runs Begin synchronously and the rest on a new goroutine.
// completion is called with the success flag only if this search is still
// the latest one when it finishes. Returns false for a blank query.
func (h *Holder) PerformSearch(query string, category catalog.Category, completion func(success bool)) bool {
	req, ok := h.Begin(query, category)
	if !ok {
		return false
	}
	go func() {
		applied, success := h.Complete(h.Run(req))
		if applied && completion != nil {
			completion(success)
		}
	}()
	return true
}

// Close cancels any in-flight request. Its completion will be discarded.
// The state is left as it was: a holder closed mid-search keeps reporting
// Loading, since no transition leads back to NotSearchedYet.
func (h *Holder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.gen++
}

// State returns a snapshot of the current state.
func (h *Holder) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Select returns the item at index in the live state, or ErrStaleIndex.
func (h *Holder) Select(index int) (catalog.Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.state.At(index)
	if !ok {
		return catalog.Result{}, ErrStaleIndex
	}
	return r, nil
}

// Generation returns the generation of the most recently issued search.
func (h *Holder) Generation() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gen
}

// Query returns the most recently issued query.
func (h *Holder) Query() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.query
}

// Category returns the category of the most recently issued search.
func (h *Holder) Category() catalog.Category {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.category
}

// Err returns the error of the last applied completion, if it failed.
func (h *Holder) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}
