package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/catalog"
)

type reply struct {
	results []catalog.Result
	err     error
}

// gatedSearcher blocks each query until a reply is pushed for it.
type gatedSearcher struct {
	mu    sync.Mutex
	gates map[string]chan reply
}

func newGatedSearcher() *gatedSearcher {
	return &gatedSearcher{gates: make(map[string]chan reply)}
}

func (g *gatedSearcher) gate(term string) chan reply {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[term]
	if !ok {
		ch = make(chan reply, 1)
		g.gates[term] = ch
	}
	return ch
}

func (g *gatedSearcher) Search(ctx context.Context, term string, _ catalog.Category) ([]catalog.Result, error) {
	select {
	case r := <-g.gate(term):
		return r.results, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type staticSearcher struct {
	results []catalog.Result
	err     error
}

func (s staticSearcher) Search(context.Context, string, catalog.Category) ([]catalog.Result, error) {
	return s.results, s.err
}

func items(names ...string) []catalog.Result {
	out := make([]catalog.Result, len(names))
	for i, n := range names {
		out[i] = catalog.Result{Name: n, ArtistName: "Artist", Kind: "song"}
	}
	return out
}

func TestResultsOf_NeverEmpty(t *testing.T) {
	assert.Equal(t, KindNoResults, ResultsOf(nil).Kind())
	assert.Equal(t, KindNoResults, ResultsOf([]catalog.Result{}).Kind())

	s := ResultsOf(items("a", "b"))
	assert.Equal(t, KindResults, s.Kind())
	assert.Equal(t, 2, s.Len())
}

func TestResultsOf_CopiesInput(t *testing.T) {
	list := items("a")
	s := ResultsOf(list)
	list[0].Name = "changed"

	r, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", r.Name)
}

func TestState_ZeroValueIsNotSearchedYet(t *testing.T) {
	var s State
	assert.Equal(t, KindNotSearchedYet, s.Kind())
	assert.False(t, s.CanSelect())
	assert.Nil(t, s.Results())
}

func TestHolder_BlankQueryIsNoop(t *testing.T) {
	h := NewHolder(staticSearcher{})

	_, ok := h.Begin("   ", catalog.CategoryAll)
	assert.False(t, ok)
	assert.False(t, h.PerformSearch("", catalog.CategoryAll, nil))
	assert.Equal(t, KindNotSearchedYet, h.State().Kind())
	assert.Zero(t, h.Generation())
}

func TestHolder_BeginSetsLoadingSynchronously(t *testing.T) {
	h := NewHolder(newGatedSearcher())

	req, ok := h.Begin("  abc ", catalog.CategoryMusic)
	require.True(t, ok)
	assert.Equal(t, KindLoading, h.State().Kind())
	assert.Equal(t, "abc", req.Query)
	assert.Equal(t, "abc", h.Query())
	assert.Equal(t, catalog.CategoryMusic, h.Category())
	assert.Equal(t, uint64(1), req.Generation)
	assert.NotEmpty(t, req.ID)
}

func TestHolder_CompleteTransitions(t *testing.T) {
	tests := []struct {
		name        string
		searcher    staticSearcher
		wantKind    Kind
		wantSuccess bool
	}{
		{"results", staticSearcher{results: items("x", "y")}, KindResults, true},
		{"zero matches", staticSearcher{results: nil}, KindNoResults, true},
		{"network failure", staticSearcher{err: errors.New("offline")}, KindNoResults, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHolder(tt.searcher)
			req, ok := h.Begin("abc", catalog.CategoryAll)
			require.True(t, ok)

			applied, success := h.Complete(h.Run(req))
			assert.True(t, applied)
			assert.Equal(t, tt.wantSuccess, success)
			assert.Equal(t, tt.wantKind, h.State().Kind())
		})
	}
}

func TestHolder_LastIssuedSearchWins(t *testing.T) {
	g := newGatedSearcher()
	h := NewHolder(g)

	first, _ := h.Begin("first", catalog.CategoryAll)
	second, _ := h.Begin("second", catalog.CategoryAll)

	// Second completes before first
	g.gate("second") <- reply{results: items("B")}
	applied, success := h.Complete(h.Run(second))
	require.True(t, applied)
	require.True(t, success)

	g.gate("first") <- reply{results: items("A1", "A2")}
	applied, _ = h.Complete(h.Run(first))
	assert.False(t, applied)

	st := h.State()
	require.Equal(t, KindResults, st.Kind())
	require.Equal(t, 1, st.Len())
	r, _ := st.At(0)
	assert.Equal(t, "B", r.Name)
}

func TestHolder_StaleCompletionWhileLoadingIsIgnored(t *testing.T) {
	g := newGatedSearcher()
	h := NewHolder(g)

	first, _ := h.Begin("first", catalog.CategoryAll)
	_, _ = h.Begin("second", catalog.CategoryAll)

	g.gate("first") <- reply{results: items("A")}
	applied, _ := h.Complete(Completion{Generation: first.Generation, Results: items("A")})
	assert.False(t, applied)
	assert.Equal(t, KindLoading, h.State().Kind())
}

func TestHolder_BeginCancelsPreviousRequest(t *testing.T) {
	h := NewHolder(newGatedSearcher())

	first, _ := h.Begin("first", catalog.CategoryAll)
	_, _ = h.Begin("second", catalog.CategoryAll)

	select {
	case <-first.Context().Done():
	default:
		t.Fatal("first request context should be canceled")
	}

	c := h.Run(first)
	assert.ErrorIs(t, c.Err, context.Canceled)
}

func TestHolder_PerformSearchCallsCompletion(t *testing.T) {
	h := NewHolder(staticSearcher{results: items("only")})

	done := make(chan bool, 1)
	ok := h.PerformSearch("abc", catalog.CategorySoftware, func(success bool) {
		done <- success
	})
	require.True(t, ok)

	select {
	case success := <-done:
		assert.True(t, success)
	case <-time.After(2 * time.Second):
		t.Fatal("completion not called")
	}
	assert.Equal(t, KindResults, h.State().Kind())
}

func TestHolder_PerformSearchSupersededSkipsCompletion(t *testing.T) {
	g := newGatedSearcher()
	h := NewHolder(g)

	called := make(chan string, 2)
	h.PerformSearch("first", catalog.CategoryAll, func(bool) { called <- "first" })
	h.PerformSearch("second", catalog.CategoryAll, func(bool) { called <- "second" })

	g.gate("second") <- reply{results: items("B")}

	select {
	case which := <-called:
		assert.Equal(t, "second", which)
	case <-time.After(2 * time.Second):
		t.Fatal("completion not called")
	}

	// The first search was canceled by the second and must never report.
	select {
	case which := <-called:
		t.Fatalf("unexpected completion for %s", which)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHolder_Select(t *testing.T) {
	h := NewHolder(staticSearcher{results: items("a", "b")})

	_, err := h.Select(0)
	require.ErrorIs(t, err, ErrStaleIndex)

	req, _ := h.Begin("abc", catalog.CategoryAll)
	h.Complete(h.Run(req))

	r, err := h.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "b", r.Name)

	_, err = h.Select(2)
	require.ErrorIs(t, err, ErrStaleIndex)
	_, err = h.Select(-1)
	require.ErrorIs(t, err, ErrStaleIndex)
}

func TestHolder_SelectAfterNewSearchIsStale(t *testing.T) {
	h := NewHolder(newGatedSearcher())
	_, _ = h.Begin("abc", catalog.CategoryAll)
	h.Complete(Completion{Generation: 1, Results: items("a", "b", "c")})

	// A new search replaces results with loading; old indices are stale.
	_, _ = h.Begin("def", catalog.CategoryAll)
	_, err := h.Select(2)
	assert.ErrorIs(t, err, ErrStaleIndex)
}

func TestHolder_ErrRecordsFailure(t *testing.T) {
	boom := errors.New("boom")
	h := NewHolder(staticSearcher{err: boom})
	req, _ := h.Begin("abc", catalog.CategoryAll)
	h.Complete(h.Run(req))
	assert.ErrorIs(t, h.Err(), boom)

	h.searcher = staticSearcher{results: items("a")}
	req, _ = h.Begin("abc", catalog.CategoryAll)
	assert.NoError(t, h.Err())
	h.Complete(h.Run(req))
	assert.NoError(t, h.Err())
}

func TestHolder_CloseDiscardsInFlight(t *testing.T) {
	h := NewHolder(newGatedSearcher())
	req, _ := h.Begin("abc", catalog.CategoryAll)
	h.Close()

	assert.Equal(t, KindLoading, h.State().Kind())
	assert.ErrorIs(t, req.Context().Err(), context.Canceled)

	applied, _ := h.Complete(Completion{Generation: req.Generation, Results: items("a")})
	assert.False(t, applied)
	assert.Equal(t, KindLoading, h.State().Kind())
}

func TestHolder_CloseKeepsSettledState(t *testing.T) {
	h := NewHolder(staticSearcher{results: items("a", "b")})
	req, _ := h.Begin("abc", catalog.CategoryAll)
	h.Complete(h.Run(req))

	h.Close()
	assert.Equal(t, KindResults, h.State().Kind())
	assert.Equal(t, 2, h.State().Len())
}

func TestHolder_ResolveReturnsAppliedState(t *testing.T) {
	h := NewHolder(staticSearcher{results: items("a", "b")})
	req, _ := h.Begin("abc", catalog.CategoryAll)
	c := h.Run(req)

	st, applied, success := h.Resolve(c)
	require.True(t, applied)
	assert.True(t, success)
	assert.Equal(t, KindResults, st.Kind())

	// A newer search makes the live state Loading; a stale completion
	// gets the live state back with applied=false.
	h.Begin("abcd", catalog.CategoryAll)
	st, applied, _ = h.Resolve(c)
	assert.False(t, applied)
	assert.Equal(t, KindLoading, st.Kind())
}
