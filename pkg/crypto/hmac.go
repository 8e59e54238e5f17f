package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMACSHA256 computes the HMAC-SHA256 of a message using the given
// key. This backs PMKID computation, which names a PMK by a truncated
// MAC over the peer addresses.
//
// Returns the full 32-byte MAC; callers truncate as needed.
func HMACSHA256(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)
	return h.Sum(nil)
}

// HMACEqual compares two MACs for equality in constant time. Use this
// instead of bytes.Equal when comparing secret-derived material.
func HMACEqual(mac1, mac2 []byte) bool {
	return hmac.Equal(mac1, mac2)
}
