// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/jackc/pgerrcode"
)

// quoteRepository is the PostgreSQL-backed implementation of
// [QuoteRepository] over the "quotes" table.
type quoteRepository struct {
	db *DB
}

// NewQuoteRepository constructs a [QuoteRepository] backed by db.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{db: db}
}

// GetQuote reads the owner's quote.
func (r *quoteRepository) GetQuote(ctx context.Context, ownerID string) (models.StoredQuote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuoteQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetQuote").Msg("failed to build select query")
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var quote models.StoredQuote
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&quote.OwnerID,
			&quote.Body,
			&quote.VersionToken,
			&quote.Revision,
			&quote.CreatedAt,
			&quote.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredQuote{}, ErrQuoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.GetQuote").Str("owner_id", ownerID).Msg("failed to select quote")
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return quote, nil
}

// CreateQuote inserts the owner's first quote and returns it with the
// database timestamps filled in.
func (r *quoteRepository) CreateQuote(ctx context.Context, quote models.StoredQuote) (models.StoredQuote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuoteQuery(quote.OwnerID, quote.Body, quote.VersionToken, quote.Revision)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.CreateQuote").Msg("failed to build insert query")
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&quote.CreatedAt, &quote.UpdatedAt)
	})
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", "quoteRepository.CreateQuote").Str("owner_id", quote.OwnerID).Msg("quote already created")
			return models.StoredQuote{}, ErrQuoteAlreadyExists
		}
		log.Err(err).Str("func", "quoteRepository.CreateQuote").Str("owner_id", quote.OwnerID).Msg("failed to insert quote")
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "quoteRepository.CreateQuote").Str("owner_id", quote.OwnerID).Msg("quote created")
	return quote, nil
}

// UpdateQuote performs a compare-and-swap on the version token.
func (r *quoteRepository) UpdateQuote(ctx context.Context, quote models.StoredQuote, expectedToken string) (models.StoredQuote, error) {
	log := logger.FromContext(ctx)

	var updatedID *string
	var updatedAt *time.Time
	var currentToken *string

	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, updateQuoteIfMatch,
			quote.OwnerID,
			quote.Body,
			quote.VersionToken,
			quote.Revision,
			expectedToken,
		).Scan(&updatedID, &updatedAt, &currentToken)
	})
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.UpdateQuote").Str("owner_id", quote.OwnerID).Msg("failed to execute update query")
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// no quote: `target` is empty - both fields are NULL
	if currentToken == nil {
		log.Warn().Str("func", "quoteRepository.UpdateQuote").Str("owner_id", quote.OwnerID).Msg("quote not found")
		return models.StoredQuote{}, ErrQuoteNotFound
	}

	// quote found, but UPDATE didn't match - token mismatch
	if updatedID == nil {
		log.Warn().
			Str("func", "quoteRepository.UpdateQuote").
			Str("owner_id", quote.OwnerID).
			Str("db_token", *currentToken).
			Str("expected_token", expectedToken).
			Msg("optimistic lock failed: version token mismatch")
		return models.StoredQuote{}, ErrVersionConflict
	}

	quote.UpdatedAt = updatedAt
	log.Info().Str("func", "quoteRepository.UpdateQuote").Str("owner_id", quote.OwnerID).Msg("quote updated")
	return quote, nil
}
