package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
)

// cacheRepository is the SQLite-backed [KeyValueRepository] over the
// "cache_entries" table.
type cacheRepository struct {
	db  *DB
	now func() time.Time
}

// NewCacheRepository constructs a [KeyValueRepository] backed by db.
func NewCacheRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	logger.Debug().Msg("creating cache repository")
	return &cacheRepository{db: db, now: time.Now}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildSelectCacheEntryQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cacheRepository.Get").Str("key", key).Msg("failed to read cache entry")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := buildUpsertCacheEntryQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cacheRepository.Set").Str("key", key).Msg("failed to write cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteCacheEntryQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
