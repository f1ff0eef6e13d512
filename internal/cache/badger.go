// Package cache provides a Badger-backed TTL cache for store responses.
package cache

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/llehouerou/storesearch/internal/jsonutil"
	"github.com/llehouerou/storesearch/internal/logger"
)

const gcInterval = 5 * time.Minute

// Item is the stored envelope around a cached value.
type Item struct {
	Data      []byte `json:"data"`
	Timestamp int64  `json:"timestamp"`
	TTL       int64  `json:"ttl"` // seconds, 0 means no expiry
}

// Store is a Badger database holding JSON-encoded values with a TTL.
type Store struct {
	db     *badger.DB
	stopGC chan struct{}
	now    func() time.Time
}

// Open opens the cache in dir. An empty dir opens an in-memory store.
func Open(dir string) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
		opts = badger.DefaultOptions(dir)
		opts.ValueLogFileSize = 1 << 20 // 1MB
	}
	// Reduce logging noise
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database (another instance may hold it): %w", err)
	}

	s := &Store{
		db:     db,
		stopGC: make(chan struct{}),
		now:    time.Now,
	}
	if dir != "" {
		go s.runGC()
	}
	return s, nil
}

func (s *Store) runGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Run GC if 50% or more space can be reclaimed
			if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				logger.Get().Debug("cache: value log GC failed: %v", err)
			}
		case <-s.stopGC:
			return
		}
	}
}

// Get decodes the value stored under key into dest. Returns false on a
// miss or when the entry has expired; expired entries are deleted.
func (s *Store) Get(key string, dest any) (bool, error) {
	var found, expired bool

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger get: %w", err)
		}

		return item.Value(func(val []byte) error {
			var env Item
			if err := jsonutil.Unmarshal(val, &env); err != nil {
				return fmt.Errorf("unmarshal cache item: %w", err)
			}
			if env.TTL > 0 && s.now().Unix()-env.Timestamp >= env.TTL {
				expired = true
				return nil
			}
			if err := jsonutil.Unmarshal(env.Data, dest); err != nil {
				return fmt.Errorf("unmarshal cached value: %w", err)
			}
			found = true
			return nil
		})
	})

	if expired {
		logger.Get().Debug("cache: expired %s", key)
		_ = s.Delete(key) //nolint:errcheck // cleanup only
	}
	return found, err
}

// Set stores data under key for ttl (0 means no expiry).
func (s *Store) Set(key string, data any, ttl time.Duration) error {
	raw, err := jsonutil.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	env, err := jsonutil.Marshal(Item{
		Data:      raw,
		Timestamp: s.now().Unix(),
		TTL:       int64(ttl.Seconds()),
	})
	if err != nil {
		return fmt.Errorf("marshal cache item: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), env)
	})
	if err != nil {
		return fmt.Errorf("badger set: %w", err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badger delete: %w", err)
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return s.db.DropAll()
}

// Close stops background GC and closes the database.
func (s *Store) Close() error {
	close(s.stopGC)
	return s.db.Close()
}
