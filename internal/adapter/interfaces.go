// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the quote-sync server.
//
// The primary abstraction is [DocumentStore], a conditional read/write
// client for a single server-side document guarded by version tokens. The
// package ships an HTTP/REST implementation ([NewHTTPDocumentStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNetwork] for connection failures, [ErrUnauthorized]
// for 401). A 304 on load and a 412 on save are expected outcomes and are
// reported through the result's Status, never as errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DocumentStore reads and writes one document of type T on the server.
// Version tokens are passed and returned unquoted.
type DocumentStore[T any] interface {
	// EnsureSession establishes or refreshes the guest session. It is
	// idempotent and safe to call on every start.
	EnsureSession(ctx context.Context) error

	// LoadDocument fetches the document. A non-empty knownToken is sent as
	// If-None-Match; when it is still current the result has Status 304
	// and no Document.
	LoadDocument(ctx context.Context, knownToken string) (models.LoadResult[T], error)

	// SaveDocument replaces the document. A non-empty knownToken is sent as
	// If-Match. A stale token yields Status 412 and a nil error.
	SaveDocument(ctx context.Context, doc T, knownToken string) (models.SaveResult, error)

	// SessionToken returns the session token currently attached to
	// requests, or an empty string.
	SessionToken() string

	// SetSessionToken restores a previously issued session token, e.g. one
	// read from the local cache after a restart.
	SetSessionToken(token string)
}
