package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
)

// Storages groups the server's persistence backends.
type Storages struct {
	QuoteRepository QuoteRepository
	SessionStore    SessionStore

	db    *DB
	redis *RedisSessionStore
}

// NewStorages connects to PostgreSQL (running migrations) and Redis.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sessions, err := NewRedisSessionStore(ctx, cfg.Redis.URL)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	return &Storages{
		QuoteRepository: NewQuoteRepository(db, logger),
		SessionStore:    sessions,
		db:              db,
		redis:           sessions,
	}, nil
}

// Ping checks both backends; used by the health service.
func (s *Storages) Ping(ctx context.Context) error {
	return errors.Join(s.db.PingContext(ctx), s.redis.Ping(ctx))
}

// Close releases every connection.
func (s *Storages) Close() error {
	return errors.Join(s.db.Close(), s.redis.Close())
}
