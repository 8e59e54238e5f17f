package aware

import (
	"testing"

	"github.com/backkem/aware/pkg/security"
)

func TestCharacteristics_SupportsCipherSuite(t *testing.T) {
	skOnly := Characteristics{
		SupportedCipherSuites: security.CipherSuiteSK128 | security.CipherSuiteSK256,
		MaxServiceNameLen:     MaxServiceNameLength,
	}
	all := Characteristics{
		SupportedCipherSuites: security.CipherSuiteSK128 | security.CipherSuiteSK256 |
			security.CipherSuitePK128 | security.CipherSuitePK256,
	}

	tests := []struct {
		name  string
		caps  Characteristics
		suite security.CipherSuite
		want  bool
	}{
		{"SK-128 on SK-only device", skOnly, security.CipherSuiteSK128, true},
		{"SK-256 on SK-only device", skOnly, security.CipherSuiteSK256, true},
		{"PK-128 on SK-only device", skOnly, security.CipherSuitePK128, false},
		{"PK-256 on full device", all, security.CipherSuitePK256, true},
		{"unrecognized suite on full device", all, security.CipherSuite(999), false},
		{"zero suite never supported", all, security.CipherSuite(0), false},
		{"no capabilities", Characteristics{}, security.CipherSuiteSK128, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.SupportsCipherSuite(tt.suite); got != tt.want {
				t.Errorf("SupportsCipherSuite(%v) = %v, want %v", tt.suite, got, tt.want)
			}
		})
	}
}
