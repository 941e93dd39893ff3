// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"testing"
)

func TestVersionToken_Deterministic(t *testing.T) {
	body := []byte(`{"currency":"EUR"}`)

	first := VersionToken("guest", 1, body)
	second := VersionToken("guest", 1, body)

	if first != second {
		t.Fatalf("token must be deterministic: %s != %s", first, second)
	}
	if len(first) != versionTokenLength {
		t.Errorf("expected %d chars, got %d", versionTokenLength, len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Errorf("token must be hex: %v", err)
	}
}

func TestVersionToken_ChangesWithEveryInput(t *testing.T) {
	base := VersionToken("guest", 1, []byte("body"))

	variants := map[string]string{
		"owner":    VersionToken("other", 1, []byte("body")),
		"revision": VersionToken("guest", 2, []byte("body")),
		"body":     VersionToken("guest", 1, []byte("body2")),
	}

	for name, token := range variants {
		if token == base {
			t.Errorf("changing %s must change the token", name)
		}
	}
}

func TestVersionToken_SameBodyNewRevision(t *testing.T) {
	body := []byte(`{"items":[]}`)

	if VersionToken("guest", 5, body) == VersionToken("guest", 6, body) {
		t.Fatal("rewriting identical content must still produce a fresh token")
	}
}
