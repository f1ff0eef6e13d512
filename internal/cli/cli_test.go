package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/config"
	"github.com/llehouerou/storesearch/internal/itunes"
)

type fakeSearcher struct {
	results []catalog.Result
	err     error
}

func (f fakeSearcher) Search(context.Context, string, catalog.Category) ([]catalog.Result, error) {
	return f.results, f.err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "storesearch", RootCmd.Use)
	assert.NotEmpty(t, RootCmd.Short)
	assert.NotEmpty(t, RootCmd.Long)

	names := map[string]bool{}
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
		assert.NotEmpty(t, cmd.Short, cmd.Name())
	}
	assert.True(t, names["serve"], "serve command")
	assert.True(t, names["search"], "search command")
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "category", "country", "no-cache", "debug"} {
		assert.NotNil(t, RootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name        string
		opts        options
		wantErr     bool
		wantCountry string
		wantCat     catalog.Category
	}{
		{"none", options{}, false, "", catalog.CategoryAll},
		{"country", options{Country: " fr "}, false, "FR", catalog.CategoryAll},
		{"category", options{Category: "music"}, false, "", catalog.CategoryMusic},
		{"bad country", options{Country: "FRA"}, true, "", catalog.CategoryAll},
		{"bad category", options{Category: "movies"}, true, "", catalog.CategoryAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			err := applyOverrides(cfg, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCountry, cfg.Country)
			assert.Equal(t, tt.wantCat, cfg.GetDefaultCategory())
		})
	}
}

func TestSearchOnce_PrintsRows(t *testing.T) {
	searcher := fakeSearcher{results: []catalog.Result{
		{Name: "Hey Jude", ArtistName: "The Beatles", Kind: "song"},
		{Name: "Abbey Road", ArtistName: "The Beatles", Kind: "album"},
	}}

	var out bytes.Buffer
	err := searchOnce(context.Background(), searcher, "beatles", catalog.CategoryMusic, false, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"  1  Hey Jude\n     The Beatles (Song)\n"+
			"  2  Abbey Road\n     The Beatles (Album)\n",
		out.String())
}

func TestSearchOnce_NothingFound(t *testing.T) {
	var out bytes.Buffer
	err := searchOnce(context.Background(), fakeSearcher{}, "zzz", catalog.CategoryAll, false, &out)
	require.NoError(t, err)
	assert.Equal(t, "Nothing Found\n", out.String())
}

func TestSearchOnce_JSON(t *testing.T) {
	searcher := fakeSearcher{results: []catalog.Result{{Name: "Hey Jude", Kind: "song"}}}

	var out bytes.Buffer
	err := searchOnce(context.Background(), searcher, "jude", catalog.CategoryAll, true, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"state": "results"`)
	assert.Contains(t, out.String(), `"title": "Hey Jude"`)
}

func TestSearchOnce_Errors(t *testing.T) {
	var out bytes.Buffer

	err := searchOnce(context.Background(), fakeSearcher{}, "  ", catalog.CategoryAll, false, &out)
	assert.Error(t, err, "blank term")

	failing := fakeSearcher{err: itunes.ErrNetwork}
	err = searchOnce(context.Background(), failing, "abba", catalog.CategoryAll, false, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search the iTunes Store")
	assert.Empty(t, out.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocking := blockingSearcher{}
	err = searchOnce(ctx, blocking, "abba", catalog.CategoryAll, false, &out)
	assert.True(t, errors.Is(err, context.Canceled))
}

// blockingSearcher returns only when its context is canceled.
type blockingSearcher struct{}

func (blockingSearcher) Search(ctx context.Context, _ string, _ catalog.Category) ([]catalog.Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
