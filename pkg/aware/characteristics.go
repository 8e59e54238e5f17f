package aware

import "github.com/backkem/aware/pkg/security"

// MaxServiceNameLength is the maximum published service name length in
// bytes.
const MaxServiceNameLength = 255

// Characteristics is a snapshot of the device capabilities relevant to
// data-path setup. SupportedCipherSuites is the bitwise OR of the
// security.CipherSuite values the device can negotiate.
type Characteristics struct {
	SupportedCipherSuites security.CipherSuite
	MaxServiceNameLen     int
}

// SupportsCipherSuite reports whether the device can negotiate the
// given cipher suite. An unrecognized suite is never supported.
func (c Characteristics) SupportsCipherSuite(suite security.CipherSuite) bool {
	return suite.IsValid() && c.SupportedCipherSuites&suite == suite
}
