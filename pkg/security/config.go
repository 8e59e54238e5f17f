package security

import (
	"bytes"
	"fmt"
	"hash/fnv"
)

// Config is an immutable data-path security configuration: the cipher
// suite to negotiate and the credential material that suite requires.
//
// A Config constructed through the Builder is always consistent. A
// Config obtained from NewConfig or Decode may not be; callers holding
// a Config from an untrusted source should check IsValid before using
// it in a data-path request.
type Config struct {
	cipherSuite CipherSuite
	pmk         []byte
	pmkId       []byte

	// passphraseSet distinguishes an absent passphrase from a decoded
	// empty one. The validity rules treat both as empty; equality and
	// the parcel form preserve the distinction.
	passphrase    string
	passphraseSet bool
}

// NewConfig constructs a Config directly from the four fields without
// any validation. This is the deserialization-style entry point; use
// IsValid to check the result. An empty passphrase is normalized to
// absent. Byte slices are copied.
func NewConfig(cipherSuite CipherSuite, pmk, pmkId []byte, passphrase string) *Config {
	return &Config{
		cipherSuite:   cipherSuite,
		pmk:           cloneBytes(pmk),
		pmkId:         cloneBytes(pmkId),
		passphrase:    passphrase,
		passphraseSet: passphrase != "",
	}
}

// CipherSuite returns the cipher suite specified in this config.
func (c *Config) CipherSuite() CipherSuite {
	return c.cipherSuite
}

// Pmk returns a copy of the pairwise master key, or nil if unset.
func (c *Config) Pmk() []byte {
	return cloneBytes(c.pmk)
}

// PmkId returns a copy of the PMK identifier, or nil if unset.
func (c *Config) PmkId() []byte {
	return cloneBytes(c.pmkId)
}

// PskPassphrase returns the passphrase, or the empty string if unset.
func (c *Config) PskPassphrase() string {
	return c.passphrase
}

// IsValid reports whether the field combination satisfies the
// consistency rule for the chosen cipher suite:
//
//   - Shared key suites: exactly one of passphrase and PMK is present,
//     that credential passes its format check, and no PMKID is present.
//   - Public key suites: PMK and PMKID are present and pass their
//     format checks, and no passphrase is present.
//   - Any other cipher suite value: never valid.
//
// It never returns an error; malformed fields simply yield false.
func (c *Config) IsValid() bool {
	switch {
	case c.cipherSuite.IsSharedKey():
		if c.passphrase == "" && c.pmk == nil {
			return false
		}
		if c.passphrase != "" && c.pmk != nil {
			return false
		}
		if c.pmkId != nil {
			return false
		}
		if ValidatePassphrase(c.passphrase) && c.pmk == nil {
			return true
		}
		return c.passphrase == "" && ValidatePmk(c.pmk)

	case c.cipherSuite.IsPublicKey():
		if !ValidatePmk(c.pmk) || !ValidatePmkId(c.pmkId) {
			return false
		}
		return c.passphrase == ""

	default:
		return false
	}
}

// Equal reports whether two configs hold identical field values. Byte
// fields are compared element-wise, with nil and empty considered
// distinct; the passphrase comparison distinguishes absent from a
// decoded empty string.
func (c *Config) Equal(other *Config) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.cipherSuite == other.cipherSuite &&
		bytesEqual(c.pmk, other.pmk) &&
		c.passphraseSet == other.passphraseSet &&
		c.passphrase == other.passphrase &&
		bytesEqual(c.pmkId, other.pmkId)
}

// Hash returns a 64-bit hash of the config. Equal configs hash
// identically: the hash runs over the parcel encoding, which is
// injective over the field tuple.
func (c *Config) Hash() uint64 {
	h := fnv.New64a()
	h.Write(c.Encode())
	return h.Sum64()
}

// String returns a description of the config that never includes the
// credential material itself.
func (c *Config) String() string {
	return fmt.Sprintf("SecurityConfig[cipherSuite=%s, passphrase=%s, pmk=%s, pmkId=%s]",
		c.cipherSuite, presence(c.passphrase != ""), presence(c.pmk != nil), presence(c.pmkId != nil))
}

func presence(set bool) string {
	if set {
		return "<set>"
	}
	return "<unset>"
}

// cloneBytes copies a byte slice, preserving nil.
func cloneBytes(b []byte) []byte {
	return bytes.Clone(b)
}

// bytesEqual compares two byte slices element-wise, treating nil and
// empty as distinct.
func bytesEqual(a, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return bytes.Equal(a, b)
}
