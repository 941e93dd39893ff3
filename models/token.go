package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a guest session JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. SignedString holds the compact serialized form
// carried in the session cookie. GuestID is a parsed copy of the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	GuestID string `json:"-"`
}

// GetGuestID extracts the guest identifier from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetGuestID() (string, error) {
	guestID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting GuestID from token: %w", err)
	}
	if guestID == "" {
		return "", fmt.Errorf("error extracting GuestID from token: empty subject")
	}

	return guestID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
