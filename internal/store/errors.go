package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQuoteNotFound is returned when the owner has no stored quote yet.
	ErrQuoteNotFound = errors.New("quote was not found")

	// ErrQuoteAlreadyExists is returned when a create races with another
	// create for the same owner.
	ErrQuoteAlreadyExists = errors.New("quote already exists")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version token supplied by the caller does not match the one stored
	// in the database, meaning another writer has modified the quote since
	// the caller last observed it.
	ErrVersionConflict = errors.New("quote version conflict occurred")

	// ErrSessionNotFound is returned when a guest session is missing or has
	// expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCacheEntryNotFound is returned when the local cache holds no value
	// for the requested key.
	ErrCacheEntryNotFound = errors.New("cache entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
