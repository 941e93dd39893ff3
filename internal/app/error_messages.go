// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// quote-sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidQuote is returned when a decoded quote fails validation.
	MsgInvalidQuote = "invalid quote"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgSessionIsExpiredOrInvalid is returned when the guest token is
	// missing, cannot be verified or its session record has expired.
	MsgSessionIsExpiredOrInvalid = "session is expired or invalid"

	// MsgVersionIsNotSpecified is returned when the server has no version
	// to report.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgQuoteNotFound is returned when a conditional update targets a
	// quote that does not exist yet.
	MsgQuoteNotFound = "quote not found"

	// MsgVersionConflict is returned when an If-Match check fails: the
	// quote was changed by another writer after the client last read it.
	MsgVersionConflict = "version conflict, reload the quote"
)
