package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/store"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
)

// firstRevision is the revision of a freshly created quote.
const firstRevision = 1

// quoteService is the concrete implementation of QuoteService.
type quoteService struct {
	// quotes persists quotes and performs the compare-and-swap update.
	quotes store.QuoteRepository

	// emptyBody is the stored form of a quote nobody has edited yet.
	emptyBody []byte

	logger *logger.Logger
}

// NewQuoteService constructs a QuoteService over the given repository.
func NewQuoteService(quotes store.QuoteRepository, logger *logger.Logger) QuoteService {
	emptyBody, _ := json.Marshal(models.Quote{Items: []models.QuoteItem{}}) // plain struct, never fails

	return &quoteService{
		quotes:    quotes,
		emptyBody: emptyBody,
		logger:    logger,
	}
}

// GetQuote implements [QuoteService].
//
// A guest that has never saved gets an empty quote created lazily. Two
// concurrent first reads race on the insert; the loser re-reads the
// winner's row.
func (s *quoteService) GetQuote(ctx context.Context, ownerID string) (models.StoredQuote, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.StoredQuote{}, ErrNoSession
	}

	quote, err := s.quotes.GetQuote(ctx, ownerID)
	if err == nil {
		return quote, nil
	}
	if !errors.Is(err, store.ErrQuoteNotFound) {
		log.Err(err).Str("func", "quoteService.GetQuote").Str("owner_id", ownerID).Msg("error getting quote")
		return models.StoredQuote{}, fmt.Errorf("error getting quote: %w", err)
	}

	created, err := s.createQuote(ctx, ownerID, s.emptyBody)
	if errors.Is(err, store.ErrQuoteAlreadyExists) {
		return s.quotes.GetQuote(ctx, ownerID)
	}
	if err != nil {
		log.Err(err).Str("func", "quoteService.GetQuote").Str("owner_id", ownerID).Msg("error creating empty quote")
		return models.StoredQuote{}, fmt.Errorf("error creating empty quote: %w", err)
	}

	log.Debug().Str("func", "quoteService.GetQuote").Str("owner_id", ownerID).Msg("created empty quote")
	return created, nil
}

// SaveQuote implements [QuoteService].
func (s *quoteService) SaveQuote(ctx context.Context, ownerID string, quote models.Quote, ifMatch string) (models.StoredQuote, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.StoredQuote{}, ErrNoSession
	}

	body, err := json.Marshal(quote)
	if err != nil {
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if ifMatch == "" {
		created, err := s.createQuote(ctx, ownerID, body)
		if errors.Is(err, store.ErrQuoteAlreadyExists) {
			return models.StoredQuote{}, fmt.Errorf("%w: quote exists and no version was given", store.ErrVersionConflict)
		}
		if err != nil {
			log.Err(err).Str("func", "quoteService.SaveQuote").Str("owner_id", ownerID).Msg("error creating quote")
			return models.StoredQuote{}, fmt.Errorf("error creating quote: %w", err)
		}
		return created, nil
	}

	current, err := s.quotes.GetQuote(ctx, ownerID)
	if errors.Is(err, store.ErrQuoteNotFound) {
		return models.StoredQuote{}, fmt.Errorf("%w: %w", store.ErrVersionConflict, err)
	}
	if err != nil {
		log.Err(err).Str("func", "quoteService.SaveQuote").Str("owner_id", ownerID).Msg("error getting current quote")
		return models.StoredQuote{}, fmt.Errorf("error getting current quote: %w", err)
	}
	if ifMatch == utils.AnyVersion {
		ifMatch = current.VersionToken
	}
	if current.VersionToken != ifMatch {
		log.Debug().Str("func", "quoteService.SaveQuote").
			Str("owner_id", ownerID).
			Str("if_match", ifMatch).
			Str("current", current.VersionToken).
			Msg("stale version token")
		return models.StoredQuote{}, store.ErrVersionConflict
	}

	revision := current.Revision + 1
	next := models.StoredQuote{
		OwnerID:      ownerID,
		Body:         body,
		Revision:     revision,
		VersionToken: utils.VersionToken(ownerID, revision, body),
	}

	updated, err := s.quotes.UpdateQuote(ctx, next, ifMatch)
	if errors.Is(err, store.ErrVersionConflict) || errors.Is(err, store.ErrQuoteNotFound) {
		return models.StoredQuote{}, fmt.Errorf("%w: %w", store.ErrVersionConflict, err)
	}
	if err != nil {
		log.Err(err).Str("func", "quoteService.SaveQuote").Str("owner_id", ownerID).Msg("error updating quote")
		return models.StoredQuote{}, fmt.Errorf("error updating quote: %w", err)
	}

	return updated, nil
}

func (s *quoteService) createQuote(ctx context.Context, ownerID string, body []byte) (models.StoredQuote, error) {
	return s.quotes.CreateQuote(ctx, models.StoredQuote{
		OwnerID:      ownerID,
		Body:         body,
		Revision:     firstRevision,
		VersionToken: utils.VersionToken(ownerID, firstRevision, body),
	})
}
