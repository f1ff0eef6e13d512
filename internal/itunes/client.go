// Package itunes provides a client for the iTunes Store Search API.
package itunes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/jsonutil"
	"github.com/llehouerou/storesearch/internal/logger"
)

// ErrNetwork wraps every failure to obtain a usable response: transport
// errors, timeouts, non-2xx statuses and undecodable bodies.
var ErrNetwork = errors.New("itunes store unreachable")

const (
	DefaultBaseURL = "https://itunes.apple.com"
	DefaultLimit   = 200
	DefaultTimeout = 10 * time.Second

	userAgent = "StoreSearch/1.0 (https://github.com/llehouerou/storesearch)"

	// Retry configuration
	maxRetries   = 2
	initialDelay = 500 * time.Millisecond
	maxDelay     = 4 * time.Second
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL string
	Country string // ISO 3166 alpha-2, e.g. "US"
	Limit   int
	Timeout time.Duration
}

// Client queries the iTunes Search API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	limit        int
	initialDelay time.Duration

	mu      sync.RWMutex
	country string
}

// NewClient creates a new iTunes Search API client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = DefaultLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient:   &http.Client{Timeout: opts.Timeout},
		baseURL:      opts.BaseURL,
		country:      strings.ToUpper(opts.Country),
		limit:        opts.Limit,
		initialDelay: initialDelay,
	}
}

// Country returns the store front searched, "" for the API default.
func (c *Client) Country() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.country
}

// SetCountry changes the store front used by later searches.
func (c *Client) SetCountry(country string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.country = strings.ToUpper(strings.TrimSpace(country))
}

// SearchURL builds the request URL for a query and category.
func (c *Client) SearchURL(term string, category catalog.Category) string {
	params := url.Values{}
	params.Set("term", term)
	params.Set("limit", strconv.Itoa(c.limit))
	if entity := category.Entity(); entity != "" {
		params.Set("entity", entity)
	}
	if country := c.Country(); country != "" {
		params.Set("country", country)
	}
	return fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
}

// Search runs a store search. An empty slice with a nil error means the
// store answered with zero matches.
func (c *Client) Search(ctx context.Context, term string, category catalog.Category) ([]catalog.Result, error) {
	reqURL := c.SearchURL(term, category)
	logger.Get().Debug("itunes: GET %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.doRequestWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: API status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := jsonutil.Decode(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrNetwork, err)
	}

	return convertResults(result.Results), nil
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry.
// Retries on 5xx errors and network errors, never after ctx is done.
func (c *Client) doRequestWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	delay := c.initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = min(delay*2, maxDelay)
			logger.Get().Debug("itunes: retry %d after %v", attempt, lastErr)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Success or client error (4xx) - don't retry
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %s", resp.Status)
	}

	return nil, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
