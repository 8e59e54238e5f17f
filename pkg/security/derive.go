package security

import (
	"net"
	"strings"

	"github.com/backkem/aware/pkg/crypto"
)

// PmkIterations is the PBKDF2 iteration count used when deriving a PMK
// from a PSK passphrase.
const PmkIterations = 4096

// macAddrSize is the size of an interface MAC address in bytes.
const macAddrSize = 6

// pmkIdLabel is the fixed label mixed into the PMKID computation.
var pmkIdLabel = []byte("NAN PMK Name")

// DerivePmk derives a pairwise master key from a PSK passphrase and the
// published service name, using PBKDF2-HMAC-SHA256 with the lowercased
// service name as salt (service names match case-insensitively).
//
// Both peers deriving from the same passphrase and service name obtain
// the same PMK, suitable for Builder.SetPmk with a shared key suite.
func DerivePmk(passphrase, serviceName string) ([]byte, error) {
	if !ValidatePassphrase(passphrase) {
		return nil, ErrInvalidPassphrase
	}
	if serviceName == "" {
		return nil, ErrInvalidServiceName
	}
	salt := []byte(strings.ToLower(serviceName))
	return crypto.PBKDF2SHA256([]byte(passphrase), salt, PmkIterations, PmkSize), nil
}

// ComputePmkId computes the identifier naming a PMK between two peers:
// the first PmkIdSize bytes of HMAC-SHA256 over the PMK name label and
// the initiator and responder interface addresses, keyed with the PMK.
//
// Required, together with the PMK, for public key cipher suites.
func ComputePmkId(pmk []byte, initiator, responder net.HardwareAddr) ([]byte, error) {
	if !ValidatePmk(pmk) {
		return nil, ErrInvalidPmk
	}
	if len(initiator) != macAddrSize || len(responder) != macAddrSize {
		return nil, ErrInvalidAddress
	}

	message := make([]byte, 0, len(pmkIdLabel)+2*macAddrSize)
	message = append(message, pmkIdLabel...)
	message = append(message, initiator...)
	message = append(message, responder...)

	mac := crypto.HMACSHA256(pmk, message)
	return mac[:PmkIdSize], nil
}
