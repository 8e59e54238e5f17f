// Package aware holds the request-side values that carry a data-path
// security configuration: device characteristics and the network
// specifier handed to the negotiation layer.
package aware

// Role identifies which side of the data-path the local device takes.
// The initiator opens the data-path towards a responder that published
// the service.
type Role int

const (
	// RoleUnknown indicates an uninitialized or invalid role.
	RoleUnknown Role = iota

	// RoleInitiator indicates the device requesting the data-path.
	RoleInitiator

	// RoleResponder indicates the device that published the service
	// and accepts the data-path.
	RoleResponder
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return "Initiator"
	case RoleResponder:
		return "Responder"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the role is a defined value.
func (r Role) IsValid() bool {
	return r == RoleInitiator || r == RoleResponder
}
