// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// versionTokenLength is the number of hex characters kept from the digest.
const versionTokenLength = 32

// VersionToken derives the opaque token identifying one revision of an
// owner's document.
//
// The token is the first 32 hex characters of BLAKE2b-256 over the owner ID,
// the big-endian revision number and the stored body. Including the revision
// guarantees a fresh token on every accepted write, even when the body is
// unchanged.
//
// Example usage:
//
//	token := utils.VersionToken(guestID, 3, body)
func VersionToken(ownerID string, revision int64, body []byte) string {
	h, _ := blake2b.New256(nil) // never fails without a key

	h.Write([]byte(ownerID))
	var rev [8]byte
	binary.BigEndian.PutUint64(rev[:], uint64(revision))
	h.Write(rev[:])
	h.Write(body)

	return hex.EncodeToString(h.Sum(nil))[:versionTokenLength]
}
