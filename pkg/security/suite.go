// Package security implements the Wi-Fi Aware data-path security
// configuration.
//
// A Config selects the cipher suite used to protect a peer-to-peer
// data-path and carries the credential material that suite requires:
// either a PSK passphrase or a pre-computed pairwise master key (PMK),
// plus a PMK identifier (PMKID) for public key suites. Configs are
// immutable and are produced through a Builder, which rejects malformed
// field values immediately and checks cross-field consistency at
// Build time. A Config decoded from its parcel form bypasses the
// Builder entirely, so the full consistency rule is also available as
// the side-effect-free predicate Config.IsValid.
package security

// CipherSuite identifies the key-derivation and encryption scheme
// negotiated for a data-path.
//
// The values are bit flags so that a device capability mask can be
// expressed as their bitwise OR (see the aware package).
type CipherSuite int32

const (
	// CipherSuiteSK128 is the shared key scheme at 128-bit strength.
	// Credential: a PSK passphrase or a PMK (exactly one).
	CipherSuiteSK128 CipherSuite = 1 << 0

	// CipherSuiteSK256 is the shared key scheme at 256-bit strength.
	// Credential: a PSK passphrase or a PMK (exactly one).
	CipherSuiteSK256 CipherSuite = 1 << 1

	// CipherSuitePK128 is the public key scheme at 128-bit strength.
	// Credential: a PMK together with its PMKID.
	CipherSuitePK128 CipherSuite = 1 << 2

	// CipherSuitePK256 is the public key scheme at 256-bit strength.
	// Credential: a PMK together with its PMKID.
	CipherSuitePK256 CipherSuite = 1 << 3
)

// IsValid returns true if the cipher suite is one of the four defined
// variants.
func (c CipherSuite) IsValid() bool {
	return c.IsSharedKey() || c.IsPublicKey()
}

// IsSharedKey returns true for the shared key (SK) suites.
func (c CipherSuite) IsSharedKey() bool {
	return c == CipherSuiteSK128 || c == CipherSuiteSK256
}

// IsPublicKey returns true for the public key (PK) suites.
func (c CipherSuite) IsPublicKey() bool {
	return c == CipherSuitePK128 || c == CipherSuitePK256
}

// String returns a human-readable name for the cipher suite.
func (c CipherSuite) String() string {
	switch c {
	case CipherSuiteSK128:
		return "SK-128"
	case CipherSuiteSK256:
		return "SK-256"
	case CipherSuitePK128:
		return "PK-128"
	case CipherSuitePK256:
		return "PK-256"
	default:
		return "Unknown"
	}
}
