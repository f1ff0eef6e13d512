package cache

import (
	"context"
	"strings"
	"time"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/search"
)

// DefaultTTL is how long search responses stay cached.
const DefaultTTL = 30 * time.Minute

// Searcher decorates a search.Searcher with a response cache. Only
// successful, non-empty responses are stored.
type Searcher struct {
	next  search.Searcher
	store *Store
	ttl   time.Duration
}

var _ search.Searcher = (*Searcher)(nil)

// NewSearcher wraps next. A non-positive ttl selects DefaultTTL.
func NewSearcher(next search.Searcher, store *Store, ttl time.Duration) *Searcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Searcher{next: next, store: store, ttl: ttl}
}

// Key returns the cache key of a search.
func Key(category catalog.Category, term string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(term)), " ")
	return "search:" + category.Key() + ":" + normalized
}

// storefront is implemented by searchers bound to a store country.
type storefront interface {
	Country() string
}

// key scopes Key to the store front of the wrapped searcher, if any.
func (s *Searcher) key(category catalog.Category, term string) string {
	key := Key(category, term)
	if sf, ok := s.next.(storefront); ok {
		if country := sf.Country(); country != "" {
			key += "@" + strings.ToLower(country)
		}
	}
	return key
}

// Search implements search.Searcher.
func (s *Searcher) Search(ctx context.Context, term string, category catalog.Category) ([]catalog.Result, error) {
	key := s.key(category, term)

	var cached []catalog.Result
	found, err := s.store.Get(key, &cached)
	if err != nil {
		logger.Get().Debug("cache: get %s: %v", key, err)
	}
	if found && len(cached) > 0 {
		logger.Get().Debug("cache: hit %s (%d items)", key, len(cached))
		return cached, nil
	}

	results, err := s.next.Search(ctx, term, category)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		if err := s.store.Set(key, results, s.ttl); err != nil {
			logger.Get().Error("cache: set %s: %v", key, err)
		}
	}
	return results, nil
}
