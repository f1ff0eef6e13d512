package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/storesearch/internal/catalog"
)

type Config struct {
	Country         string `koanf:"country"`          // ISO 3166 alpha-2 store front, e.g. "US"
	Icons           string `koanf:"icons"`            // "nerd", "unicode", or "none"
	DefaultCategory string `koanf:"default_category"` // "all", "music", "software", "ebooks"
	Notifications   bool   `koanf:"notifications"`    // desktop notification on network failure

	ITunes ITunesConfig `koanf:"itunes"`
	Cache  CacheConfig  `koanf:"cache"`
	Grid   GridConfig   `koanf:"grid"`
	Server ServerConfig `koanf:"server"`
}

// ITunesConfig holds Search API settings.
type ITunesConfig struct {
	BaseURL        string `koanf:"base_url"`
	Limit          int    `koanf:"limit"`           // 1-200 (default: 200)
	TimeoutSeconds int    `koanf:"timeout_seconds"` // default: 10
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	Enabled    *bool  `koanf:"enabled"`     // default: true
	TTLMinutes int    `koanf:"ttl_minutes"` // default: 30
	Dir        string `koanf:"dir"`         // default: XDG cache dir
}

// GridConfig controls when the grid replaces the list.
type GridConfig struct {
	AutoLandscape  *bool   `koanf:"auto_landscape"`  // switch on wide terminals (default: true)
	LandscapeRatio float64 `koanf:"landscape_ratio"` // columns/rows threshold (default: 4.0)
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `koanf:"addr"` // default: ":8080"
}

// Load reads the default config files, then any extra paths in order
// (last wins). Extra paths must exist.
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	for _, path := range extra {
		if path == "" {
			continue
		}
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Country = strings.ToUpper(strings.TrimSpace(cfg.Country))

	// Normalize base URL (remove trailing slash)
	cfg.ITunes.BaseURL = strings.TrimSuffix(cfg.ITunes.BaseURL, "/")

	// Expand ~ in cache dir
	if cfg.Cache.Dir != "" {
		cfg.Cache.Dir = expandPath(cfg.Cache.Dir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/storesearch/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "storesearch", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCountry returns the configured store front, else the region of LANG,
// else "US".
func (c *Config) GetCountry() string {
	if c.Country != "" {
		return c.Country
	}
	if region := regionFromLocale(os.Getenv("LANG")); region != "" {
		return region
	}
	return "US"
}

// regionFromLocale extracts "FR" from "fr_FR.UTF-8".
func regionFromLocale(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	_, region, ok := strings.Cut(locale, "_")
	if !ok || len(region) != 2 {
		return ""
	}
	return strings.ToUpper(region)
}

// GetDefaultCategory returns the category selected at startup.
func (c *Config) GetDefaultCategory() catalog.Category {
	cat, ok := catalog.ParseCategory(c.DefaultCategory)
	if !ok {
		return catalog.CategoryAll
	}
	return cat
}

// GetITunesConfig returns the Search API settings with defaults applied.
func (c *Config) GetITunesConfig() ITunesConfig {
	cfg := c.ITunes
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://itunes.apple.com"
	}
	if cfg.Limit <= 0 || cfg.Limit > 200 {
		cfg.Limit = 200
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return cfg
}

// Timeout returns the request timeout.
func (c ITunesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheEnabled returns true unless the response cache is disabled.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// CacheTTL returns how long search responses are cached.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// CacheDir returns the response cache directory.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return filepath.Join(xdg.CacheHome, "storesearch", "responses")
}

// AutoLandscape returns true if wide terminals switch to the grid.
func (c *Config) AutoLandscape() bool {
	return c.Grid.AutoLandscape == nil || *c.Grid.AutoLandscape
}

// LandscapeRatio returns the columns/rows ratio at which the terminal is
// considered landscape.
func (c *Config) LandscapeRatio() float64 {
	if c.Grid.LandscapeRatio <= 0 {
		return 4.0
	}
	return c.Grid.LandscapeRatio
}

// ServerAddr returns the HTTP API listen address.
func (c *Config) ServerAddr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}
