package security

import "unicode/utf8"

// Credential format bounds. The passphrase bounds are the WPA personal
// passphrase policy; the key sizes follow the PMK/PMKID definitions in
// IEEE 802.11.
const (
	// MinPassphraseLength is the minimum PSK passphrase length in
	// characters.
	MinPassphraseLength = 8

	// MaxPassphraseLength is the maximum PSK passphrase length in
	// characters.
	MaxPassphraseLength = 63

	// PmkSize is the exact pairwise master key size in bytes.
	PmkSize = 32

	// PmkIdSize is the exact PMK identifier size in bytes.
	PmkIdSize = 16
)

// ValidatePassphrase checks that a PSK passphrase is non-empty and its
// character count is within [MinPassphraseLength, MaxPassphraseLength].
func ValidatePassphrase(passphrase string) bool {
	n := utf8.RuneCountInString(passphrase)
	return n >= MinPassphraseLength && n <= MaxPassphraseLength
}

// ValidatePmk checks that a pairwise master key is exactly PmkSize
// bytes. A nil key is invalid.
func ValidatePmk(pmk []byte) bool {
	return len(pmk) == PmkSize
}

// ValidatePmkId checks that a PMK identifier is exactly PmkIdSize
// bytes. A nil identifier is invalid.
func ValidatePmkId(pmkId []byte) bool {
	return len(pmkId) == PmkIdSize
}
