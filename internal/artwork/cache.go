// Package artwork downloads, caches and scales store artwork.
package artwork

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "storesearch/artwork"

	// MaxAge is how long a cached image survives without being read.
	MaxAge = 30 * 24 * time.Hour
)

// Variant names one stored form of an image: the download as served, or
// a thumbnail scaled to fit W×H pixels.
type Variant struct {
	W, H int
}

// Original is the download as served by the store.
var Original = Variant{}

// Cache keeps artwork on disk, one file per URL and variant, spread over
// subdirectories named after the first byte of the file's hash. A nil
// Cache stores nothing.
type Cache struct {
	dir string
}

// NewCache opens the cache under baseDir, or under the XDG cache directory
// when baseDir is empty, and prunes stale images in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}
	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("artwork cache: %w", err)
	}

	c := &Cache{dir: dir}
	go c.Prune(MaxAge)
	return c, nil
}

func (c *Cache) path(url string, v Variant) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s@%dx%d", url, v.W, v.H))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(c.dir, name[:2], name)
}

// Get returns the stored variant of url, or nil. A hit refreshes the
// file's age so images in use are never pruned.
func (c *Cache) Get(url string, v Variant) []byte {
	if c == nil {
		return nil
	}
	p := c.path(url, v)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(p, now, now) //nolint:errcheck // age refresh only
	return data
}

// Put stores data as the variant v of url.
func (c *Cache) Put(url string, v Variant, data []byte) error {
	if c == nil {
		return nil
	}
	p := c.path(url, v)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

// Prune removes images not read for maxAge and reports how many went.
func (c *Cache) Prune(maxAge time.Duration) int {
	if c == nil {
		return 0
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	_ = filepath.WalkDir(c.dir, func(p string, d fs.DirEntry, err error) error { //nolint:errcheck // unreadable entries are skipped
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // keep walking past unreadable entries
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil //nolint:nilerr // the entry vanished meanwhile
		}
		if os.Remove(p) == nil {
			removed++
		}
		return nil
	})
	return removed
}
