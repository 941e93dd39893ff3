package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/validators"
	"github.com/MKhiriev/quote-sync/models"
)

// QuoteValidationService normalizes and validates quotes before they reach
// the wrapped QuoteService.
type QuoteValidationService struct {
	inner     QuoteService
	validator *validators.QuoteValidator
}

func NewQuoteValidationService() QuoteServiceWrapper {
	return &QuoteValidationService{
		validator: validators.NewQuoteValidator(),
	}
}

func (v *QuoteValidationService) GetQuote(ctx context.Context, ownerID string) (models.StoredQuote, error) {
	return v.inner.GetQuote(ctx, ownerID)
}

func (v *QuoteValidationService) SaveQuote(ctx context.Context, ownerID string, quote models.Quote, ifMatch string) (models.StoredQuote, error) {
	normalized, err := v.validator.Normalize(quote)
	if err != nil {
		return models.StoredQuote{}, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}

	return v.inner.SaveQuote(ctx, ownerID, normalized, ifMatch)
}

func (v *QuoteValidationService) Wrap(wrapped QuoteService) QuoteService {
	v.inner = wrapped
	return v
}
