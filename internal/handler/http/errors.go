// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware when looking for the guest
// session token. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when the request carries neither the
	// session cookie nor an "Authorization" header.
	ErrNoSessionToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoGuestInContext is returned by handlers behind the session
	// middleware when the guest ID is missing from the request context.
	ErrNoGuestInContext = errors.New("no guest id in request context")
)
