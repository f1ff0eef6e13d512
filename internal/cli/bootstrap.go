package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/storesearch/internal/cache"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/config"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/icons"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/search"
)

// services are the long-lived objects every command shares.
type services struct {
	cfg      *config.Config
	client   *itunes.Client
	searcher search.Searcher
	store    *cache.Store
	log      *logger.Logger
}

// bootstrap loads the configuration, applies flag overrides and builds
// the search stack. The response cache is skipped, not fatal, when it
// cannot be opened.
func bootstrap(opts options) (*services, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return nil, err
	}

	svc := &services{cfg: cfg}

	level := logger.LevelInfo
	if opts.Debug {
		level = logger.LevelDebug
	}
	if log, err := logger.NewFile("", level); err == nil {
		svc.log = log
		logger.Set(log)
	}

	icons.Init(cfg.Icons)

	itc := cfg.GetITunesConfig()
	svc.client = itunes.NewClient(itunes.Options{
		BaseURL: itc.BaseURL,
		Country: cfg.GetCountry(),
		Limit:   itc.Limit,
		Timeout: itc.Timeout(),
	})
	svc.searcher = svc.client

	if cfg.CacheEnabled() && !opts.NoCache {
		store, err := cache.Open(cfg.CacheDir())
		if err != nil {
			logger.Get().Error("%s", errmsg.Format(errmsg.OpCacheOpen, err))
		} else {
			svc.store = store
			svc.searcher = cache.NewSearcher(svc.client, store, cfg.CacheTTL())
		}
	}

	logger.Get().Info("storesearch: country=%s category=%s cache=%v",
		svc.client.Country(), cfg.GetDefaultCategory(), svc.store != nil)
	return svc, nil
}

// applyOverrides lets flags take precedence over config files.
func applyOverrides(cfg *config.Config, opts options) error {
	if opts.Country != "" {
		country := strings.ToUpper(strings.TrimSpace(opts.Country))
		if len(country) != 2 {
			return fmt.Errorf("invalid country %q: want a two-letter code", opts.Country)
		}
		cfg.Country = country
	}
	if opts.Category != "" {
		if _, ok := catalog.ParseCategory(opts.Category); !ok {
			return fmt.Errorf("invalid category %q: want all, music, software or ebooks", opts.Category)
		}
		cfg.DefaultCategory = opts.Category
	}
	return nil
}

// Close releases the cache and the log file.
func (s *services) Close() error {
	var errs []error
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	if s.log != nil {
		logger.Set(nil)
		errs = append(errs, s.log.Close())
	}
	return errors.Join(errs...)
}
