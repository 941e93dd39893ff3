// Package cache is the client's durable key-value snapshot store.
//
// Reads never fail: a missing, unreadable or corrupt entry yields the
// caller's default. Writes are best-effort: failures are logged and
// swallowed, because the in-memory state stays authoritative.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/store"
)

// Fixed cache keys.
const (
	// KeyQuote holds the models.CacheEntry of the synchronized quote.
	KeyQuote = "quote"
	// KeySession holds the guest session token.
	KeySession = "session"
)

const opTimeout = 2 * time.Second

// Cache encodes values as JSON over a [store.KeyValueRepository].
type Cache struct {
	repo   store.KeyValueRepository
	logger *logger.Logger
}

// New wraps repo. A nil log discards cache diagnostics.
func New(repo store.KeyValueRepository, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	return &Cache{repo: repo, logger: log}
}

// Get returns the value stored under key, or def when there is none or it
// cannot be decoded.
func Get[T any](c *Cache, key string, def T) T {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrCacheEntryNotFound) {
			c.logger.Warn().Err(err).Str("func", "cache.Get").Str("key", key).Msg("cache read failed, using default")
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.Warn().Err(err).Str("func", "cache.Get").Str("key", key).Msg("corrupt cache entry, using default")
		return def
	}

	return value
}

// Set stores value under key, replacing any previous value.
func Set[T any](c *Cache, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "cache.Set").Str("key", key).Msg("cache encode failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.repo.Set(ctx, key, raw); err != nil {
		c.logger.Warn().Err(err).Str("func", "cache.Set").Str("key", key).Msg("cache write failed")
	}
}

// Delete removes key, logging failures.
func (c *Cache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.repo.Delete(ctx, key); err != nil {
		c.logger.Warn().Err(err).Str("func", "cache.Delete").Str("key", key).Msg("cache delete failed")
	}
}
