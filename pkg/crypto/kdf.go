// Package crypto provides the key-derivation and MAC primitives used
// to construct Wi-Fi Aware data-path credentials.
package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2SHA256 derives key material from a password using
// PBKDF2-HMAC-SHA256 (NIST 800-132). This backs passphrase-to-PMK
// derivation, where the salt is the published service name.
//
// Returns keyLen bytes of derived key material.
func PBKDF2SHA256(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// HKDFSHA256 derives key material using HKDF-SHA256 (RFC 5869) from
// input keying material, an optional salt and optional context info.
//
// Returns the derived key material of the requested length.
func HKDFSHA256(inputKey, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, inputKey, salt, info)
	result := make([]byte, length)
	if _, err := io.ReadFull(reader, result); err != nil {
		return nil, err
	}
	return result, nil
}
