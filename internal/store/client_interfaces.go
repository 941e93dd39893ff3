package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueRepository is the low-level local cache backend. Values are opaque
// byte slices; encoding belongs to the caller.
type KeyValueRepository interface {
	// Get returns the stored value or [ErrCacheEntryNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
