package service

import (
	"context"

	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QuoteService reads and conditionally writes a guest's quote.
type QuoteService interface {
	// GetQuote returns the owner's quote, creating an empty one on first
	// access.
	GetQuote(ctx context.Context, ownerID string) (models.StoredQuote, error)

	// SaveQuote replaces the owner's quote if ifMatch equals the stored
	// version token. An empty ifMatch only succeeds when the owner has no
	// quote yet; "*" succeeds against any existing quote. A failed
	// precondition wraps [store.ErrVersionConflict].
	SaveQuote(ctx context.Context, ownerID string, quote models.Quote, ifMatch string) (models.StoredQuote, error)
}

type SessionService interface {
	// EnsureSession keeps the guest behind existingToken if it is valid and
	// issues a new guest otherwise. The returned token is always fresh.
	EnsureSession(ctx context.Context, existingToken string) (models.Token, error)

	// ParseSession returns the guest ID of a valid, live session token.
	ParseSession(ctx context.Context, token string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// QuoteServiceWrapper defines middleware composition for QuoteService.
// Implementations wrap an existing QuoteService to add behavior such as
// validation.
type QuoteServiceWrapper interface {
	Wrap(QuoteService) QuoteService // returns a decorated QuoteService applying additional behavior
}
