// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, version token
// hashing, HTTP response writing, ETag handling, HTTP client initialization,
// guest JWT generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// GuestIDCtxKey is the key used to store the guest session identifier in the
// context. The session middleware writes it; handlers read it back with
// [GetGuestIDFromContext].
var GuestIDCtxKey = contextKey("guestID")

// WithGuestID returns a copy of ctx carrying guestID.
func WithGuestID(ctx context.Context, guestID string) context.Context {
	return context.WithValue(ctx, GuestIDCtxKey, guestID)
}

// GetGuestIDFromContext retrieves the guest identifier from the context.
//
// Returns the guest ID and an ok flag:
//   - ok == true : a non-empty string value is present
//   - ok == false: value is missing, empty or has an unexpected type
func GetGuestIDFromContext(ctx context.Context) (string, bool) {
	guestID, ok := ctx.Value(GuestIDCtxKey).(string)
	return guestID, ok && guestID != ""
}
