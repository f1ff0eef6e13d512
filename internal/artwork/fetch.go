package artwork

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/llehouerou/storesearch/internal/logger"
)

// ErrNotFound is returned when an item has no artwork or the server has
// none at the URL.
var ErrNotFound = errors.New("artwork not found")

const (
	fetchTimeout = 15 * time.Second
	maxImageSize = 4 << 20
	userAgent    = "StoreSearch/1.0 (https://github.com/llehouerou/storesearch)"
)

// Loader fetches raw image bytes by URL.
type Loader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads artwork, consulting a disk cache first.
type Fetcher struct {
	httpClient *http.Client
	cache      *Cache
}

// NewFetcher creates a fetcher. cache may be nil.
func NewFetcher(cache *Cache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: fetchTimeout},
		cache:      cache,
	}
}

// Fetch returns the image bytes at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrNotFound
	}
	if data := f.cache.Get(url, Original); data != nil {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("artwork status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("read artwork: %w", err)
	}

	if err := f.cache.Put(url, Original, data); err != nil {
		logger.Get().Debug("artwork: cache put %s: %v", url, err)
	}
	return data, nil
}
