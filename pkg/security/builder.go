package security

// Builder accumulates the fields of a Config and validates them in two
// stages: each setter rejects a malformed value immediately
// (ErrInvalidArgument kind), and Build checks cross-field consistency
// for the chosen cipher suite (ErrInvalidState kind).
//
// A Builder is a short-lived, single-use accumulator. Calling Build
// more than once is not prevented, but reuse after Build is an
// unsupported convention, not a guaranteed behavior. A Builder must not
// be shared between goroutines.
type Builder struct {
	cipherSuite CipherSuite
	pmk         []byte
	pmkId       []byte
	passphrase  string
}

// NewBuilder creates a Builder for the given cipher suite, the only
// mandatory field. Returns ErrInvalidCipherSuite if the suite is not
// one of the four defined variants.
func NewBuilder(cipherSuite CipherSuite) (*Builder, error) {
	if !cipherSuite.IsValid() {
		return nil, ErrInvalidCipherSuite
	}
	return &Builder{cipherSuite: cipherSuite}, nil
}

// SetPskPassphrase stores the PSK passphrase, overwriting any previous
// value. For shared key cipher suites either a passphrase or a PMK must
// be set. Returns ErrInvalidPassphrase if the passphrase fails
// ValidatePassphrase.
func (b *Builder) SetPskPassphrase(passphrase string) error {
	if !ValidatePassphrase(passphrase) {
		return ErrInvalidPassphrase
	}
	b.passphrase = passphrase
	return nil
}

// SetPmk stores the pairwise master key, overwriting any previous
// value. For shared key cipher suites a PMK is the alternative to a
// passphrase; for public key cipher suites it is required together
// with a PMKID. The slice is copied. Returns ErrInvalidPmk if the key
// fails ValidatePmk.
func (b *Builder) SetPmk(pmk []byte) error {
	if !ValidatePmk(pmk) {
		return ErrInvalidPmk
	}
	b.pmk = cloneBytes(pmk)
	return nil
}

// SetPmkId stores the PMK identifier, overwriting any previous value.
// Required, together with the PMK, for public key cipher suites. The
// slice is copied. Returns ErrInvalidPmkId if the identifier fails
// ValidatePmkId.
func (b *Builder) SetPmkId(pmkId []byte) error {
	if !ValidatePmkId(pmkId) {
		return ErrInvalidPmkId
	}
	b.pmkId = cloneBytes(pmkId)
	return nil
}

// Build checks the accumulated fields against the cross-field rule for
// the chosen cipher suite and returns the immutable Config.
//
// Field formats are guaranteed by the setters, so Build only checks
// presence and combination; the resulting Config always satisfies
// IsValid.
func (b *Builder) Build() (*Config, error) {
	if b.passphrase != "" && b.pmk != nil {
		return nil, ErrCredentialConflict
	}
	if b.cipherSuite.IsSharedKey() {
		if b.passphrase == "" && b.pmk == nil {
			return nil, ErrMissingCredential
		}
		if b.pmkId != nil {
			return nil, ErrUnexpectedPmkId
		}
	} else {
		if b.pmk == nil || b.pmkId == nil {
			return nil, ErrMissingKeyMaterial
		}
		if b.passphrase != "" {
			return nil, ErrUnexpectedPassphrase
		}
	}

	return &Config{
		cipherSuite:   b.cipherSuite,
		pmk:           cloneBytes(b.pmk),
		pmkId:         cloneBytes(b.pmkId),
		passphrase:    b.passphrase,
		passphraseSet: b.passphrase != "",
	}, nil
}
