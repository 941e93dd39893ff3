// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	errInvalidQuantity = errors.New("quantity must be a whole number")
	errInvalidPrice    = errors.New("price must look like 12.50")
)

// humanizeSyncError turns a controller error string into a short status
// line. Transport failures collapse into one offline message.
func humanizeSyncError(msg string) string {
	if msg == "" {
		return ""
	}

	s := strings.ToLower(msg)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "network error") {
		return "Offline, changes are kept locally"
	}

	return msg
}
