package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB with the dialect it speaks, an optional driver error
// classifier and the logger of its owner.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it once when the classifier marks the first
// failure as transient.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	if db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
		return err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.withRetry").Msg("retrying transient database error")
	return op()
}
