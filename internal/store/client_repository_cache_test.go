package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestClientStorages(t *testing.T, dsn string) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{Cache: config.Cache{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// kvRepositories runs the same behavioural checks against every
// KeyValueRepository implementation.
func kvRepositories(t *testing.T) map[string]KeyValueRepository {
	return map[string]KeyValueRepository{
		"sqlite":  newTestClientStorages(t, sqliteInMemory).CacheRepository,
		"memory":  NewMemoryCacheRepository(),
		"on-disk": newTestClientStorages(t, filepath.Join(t.TempDir(), "nested", "cache.db")).CacheRepository,
	}
}

// ── KeyValueRepository ────────────────────────────────────────────────────────

func TestKeyValueRepository_GetMissing(t *testing.T) {
	for name, repo := range kvRepositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background(), "quote")
			assert.ErrorIs(t, err, ErrCacheEntryNotFound)
		})
	}
}

func TestKeyValueRepository_SetGetOverwrite(t *testing.T) {
	for name, repo := range kvRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Set(ctx, "quote", []byte(`{"v":1}`)))
			got, err := repo.Get(ctx, "quote")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"v":1}`), got)

			require.NoError(t, repo.Set(ctx, "quote", []byte(`{"v":2}`)))
			got, err = repo.Get(ctx, "quote")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"v":2}`), got)
		})
	}
}

func TestKeyValueRepository_KeysAreIndependent(t *testing.T) {
	for name, repo := range kvRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Set(ctx, "quote", []byte("q")))
			require.NoError(t, repo.Set(ctx, "session", []byte("s")))
			require.NoError(t, repo.Delete(ctx, "session"))

			got, err := repo.Get(ctx, "quote")
			require.NoError(t, err)
			assert.Equal(t, []byte("q"), got)

			_, err = repo.Get(ctx, "session")
			assert.ErrorIs(t, err, ErrCacheEntryNotFound)

			assert.NoError(t, repo.Delete(ctx, "never-set"))
		})
	}
}

func TestMemoryCacheRepository_CopiesValues(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()

	value := []byte("abc")
	require.NoError(t, repo.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestClientStorages_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{Cache: config.Cache{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.CacheRepository.Set(ctx, "quote", []byte("persisted")))
	require.NoError(t, first.Close())

	second := newTestClientStorages(t, path)
	got, err := second.CacheRepository.Get(ctx, "quote")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
