package models

import "time"

// Session is the server-side record of a guest session.
type Session struct {
	GuestID   string    `json:"guest_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StoredQuote is the server's persisted quote together with its
// concurrency metadata.
type StoredQuote struct {
	OwnerID      string
	Body         []byte
	VersionToken string
	Revision     int64
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}
