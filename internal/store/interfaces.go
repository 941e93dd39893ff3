package store

import (
	"context"
	"time"

	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QuoteRepository persists one quote per owner together with its version
// token and revision.
type QuoteRepository interface {
	// GetQuote returns the owner's quote or [ErrQuoteNotFound].
	GetQuote(ctx context.Context, ownerID string) (models.StoredQuote, error)
	// CreateQuote inserts the owner's first quote. A concurrent create for
	// the same owner yields [ErrQuoteAlreadyExists].
	CreateQuote(ctx context.Context, quote models.StoredQuote) (models.StoredQuote, error)
	// UpdateQuote replaces the quote only if its stored token still equals
	// expectedToken. Returns [ErrVersionConflict] or [ErrQuoteNotFound].
	UpdateQuote(ctx context.Context, quote models.StoredQuote, expectedToken string) (models.StoredQuote, error)
}

// SessionStore keeps guest sessions with a time-to-live.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session, ttl time.Duration) error
	// GetSession returns the stored session or [ErrSessionNotFound].
	GetSession(ctx context.Context, guestID string) (models.Session, error)
	// TouchSession extends the session's lifetime by ttl from now.
	TouchSession(ctx context.Context, guestID string, ttl time.Duration) error
}
