// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and normalization for the
// quote document.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Normalize: canonicalises a document before it is stored or sent, and
//     rejects documents that stay invalid after canonicalisation.
//
// The same QuoteValidator runs on the client (as the sync controller's
// normalizer) and on the server (before accepting a write), so both sides
// agree on what a valid quote looks like.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
