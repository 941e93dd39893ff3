package store

import (
	"context"
	"slices"
	"sync"
)

// memoryCacheRepository is a process-local [KeyValueRepository]. It backs
// the cache when no durable location is wanted and in tests.
type memoryCacheRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryCacheRepository returns an empty in-memory [KeyValueRepository].
func NewMemoryCacheRepository() KeyValueRepository {
	return &memoryCacheRepository{items: make(map[string][]byte)}
}

func (r *memoryCacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[key]
	if !ok {
		return nil, ErrCacheEntryNotFound
	}
	return slices.Clone(value), nil
}

func (r *memoryCacheRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = slices.Clone(value)
	return nil
}

func (r *memoryCacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}
