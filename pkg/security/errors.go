package security

import (
	"errors"
	"fmt"
)

// Error kinds. Every construction failure wraps exactly one of these,
// so callers can match on the kind with errors.Is without knowing the
// specific rule that fired.
var (
	// ErrInvalidArgument is the kind for a single field value that
	// fails its own format rule. Raised by NewBuilder and the setters.
	ErrInvalidArgument = errors.New("security: invalid argument")

	// ErrInvalidState is the kind for a field combination that violates
	// the cross-field consistency rule for the chosen cipher suite.
	// Raised only by Build.
	ErrInvalidState = errors.New("security: invalid configuration")
)

// Field format errors (ErrInvalidArgument kind).
var (
	ErrInvalidCipherSuite = fmt.Errorf("%w: unrecognized cipher suite", ErrInvalidArgument)
	ErrInvalidPassphrase  = fmt.Errorf("%w: passphrase must be %d to %d characters", ErrInvalidArgument, MinPassphraseLength, MaxPassphraseLength)
	ErrInvalidPmk         = fmt.Errorf("%w: PMK must be %d bytes", ErrInvalidArgument, PmkSize)
	ErrInvalidPmkId       = fmt.Errorf("%w: PMKID must be %d bytes", ErrInvalidArgument, PmkIdSize)

	// Derivation inputs.
	ErrInvalidServiceName = fmt.Errorf("%w: service name must be non-empty", ErrInvalidArgument)
	ErrInvalidAddress     = fmt.Errorf("%w: interface address must be %d bytes", ErrInvalidArgument, macAddrSize)
)

// Cross-field consistency errors (ErrInvalidState kind).
var (
	ErrCredentialConflict   = fmt.Errorf("%w: can only specify a passphrase or a PMK, not both", ErrInvalidState)
	ErrMissingCredential    = fmt.Errorf("%w: shared key cipher suite requires a passphrase or a PMK", ErrInvalidState)
	ErrUnexpectedPmkId      = fmt.Errorf("%w: PMKID is not used with shared key cipher suites", ErrInvalidState)
	ErrMissingKeyMaterial   = fmt.Errorf("%w: public key cipher suite requires both PMK and PMKID", ErrInvalidState)
	ErrUnexpectedPassphrase = fmt.Errorf("%w: passphrase is not used with public key cipher suites", ErrInvalidState)
)

// Parcel decoding errors.
var (
	// ErrParcelTooShort is returned when the buffer ends before the
	// encoding is complete.
	ErrParcelTooShort = errors.New("security: parcel truncated")

	// ErrInvalidLengthPrefix is returned when a field length prefix is
	// negative (other than the null marker) or exceeds the remaining
	// buffer.
	ErrInvalidLengthPrefix = errors.New("security: invalid length prefix")
)
