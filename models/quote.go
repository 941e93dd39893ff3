// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Quote is the document kept in sync between the client and the server.
// The synchronization engine treats it as an opaque value; only the
// validators package and the TUI look inside.
type Quote struct {
	// Customer describes who the quote is prepared for.
	Customer Customer `json:"customer"`

	// Currency is an ISO 4217 code (e.g. "EUR"). Normalised to upper case.
	Currency string `json:"currency"`

	// Items are the quote's line items in display order.
	Items []QuoteItem `json:"items"`

	// Notes is free-form text attached to the quote.
	Notes string `json:"notes,omitempty"`
}

// Customer holds the contact part of a quote.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// QuoteItem is a single quote line. Prices are kept in minor units (cents)
// so that no floating point arithmetic is involved.
type QuoteItem struct {
	SKU       string `json:"sku,omitempty"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Subtotal returns Quantity * UnitPrice in minor units.
func (i QuoteItem) Subtotal() int64 {
	return i.Quantity * i.UnitPrice
}

// Total returns the sum of every item's subtotal in minor units.
func (q Quote) Total() int64 {
	var total int64
	for _, item := range q.Items {
		total += item.Subtotal()
	}
	return total
}

// Clone returns a deep copy of q so that callers can mutate the copy
// without touching a value shared with the sync engine.
func (q Quote) Clone() Quote {
	out := q
	if q.Items != nil {
		out.Items = make([]QuoteItem, len(q.Items))
		copy(out.Items, q.Items)
	}
	return out
}

// IsEmpty reports whether the quote carries no user-entered data.
func (q Quote) IsEmpty() bool {
	return len(q.Items) == 0 &&
		strings.TrimSpace(q.Customer.Name) == "" &&
		strings.TrimSpace(q.Customer.Email) == "" &&
		strings.TrimSpace(q.Notes) == ""
}
