package aware

import (
	"fmt"

	"github.com/backkem/aware/pkg/security"
)

// UnsetTransportProtocol is the sentinel for an unspecified transport
// protocol (0 is a valid protocol number, so zero cannot mark absence).
const UnsetTransportProtocol = -1

// NetworkSpecifier is the immutable request value handed to the
// negotiation layer to open a data-path. It fixes the local role, the
// optional service port and transport protocol published by the
// responder, and the security configuration protecting the link.
type NetworkSpecifier struct {
	role              Role
	port              int
	transportProtocol int
	securityConfig    *security.Config
}

// Role returns the local data-path role.
func (s *NetworkSpecifier) Role() Role {
	return s.role
}

// Port returns the published service port, or 0 if unspecified.
func (s *NetworkSpecifier) Port() int {
	return s.port
}

// TransportProtocol returns the published transport protocol number,
// or UnsetTransportProtocol if unspecified.
func (s *NetworkSpecifier) TransportProtocol() int {
	return s.transportProtocol
}

// SecurityConfig returns the data-path security configuration, or nil
// for an open (unencrypted) data-path.
func (s *NetworkSpecifier) SecurityConfig() *security.Config {
	return s.securityConfig
}

// String returns a description of the specifier. The security config
// renders through its own String and never exposes credentials.
func (s *NetworkSpecifier) String() string {
	return fmt.Sprintf("NetworkSpecifier[role=%s, port=%d, transportProtocol=%d, security=%v]",
		s.role, s.port, s.transportProtocol, s.securityConfig)
}

// SpecifierBuilder accumulates the fields of a NetworkSpecifier.
// Setters reject out-of-range values immediately; Build checks the
// cross-field rules. Like the security Builder, it is single-use by
// convention and not safe for concurrent use.
type SpecifierBuilder struct {
	role              Role
	port              int
	transportProtocol int
	securityConfig    *security.Config
}

// NewSpecifierBuilder creates a builder for the given role, the only
// mandatory field. Returns ErrInvalidRole for an undefined role.
func NewSpecifierBuilder(role Role) (*SpecifierBuilder, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &SpecifierBuilder{
		role:              role,
		transportProtocol: UnsetTransportProtocol,
	}, nil
}

// SetPort stores the service port the responder publishes for the
// data-path. Returns ErrInvalidPort outside 1..65535.
func (b *SpecifierBuilder) SetPort(port int) error {
	if port < 1 || port > 65535 {
		return ErrInvalidPort
	}
	b.port = port
	return nil
}

// SetTransportProtocol stores the IANA transport protocol number the
// responder publishes for the data-path. Returns
// ErrInvalidTransportProtocol outside 0..255.
func (b *SpecifierBuilder) SetTransportProtocol(protocol int) error {
	if protocol < 0 || protocol > 255 {
		return ErrInvalidTransportProtocol
	}
	b.transportProtocol = protocol
	return nil
}

// SetSecurityConfig stores the security configuration for the
// data-path. Returns ErrInvalidSecurityConfig if the config is nil or
// fails its consistency check.
func (b *SpecifierBuilder) SetSecurityConfig(config *security.Config) error {
	if config == nil || !config.IsValid() {
		return ErrInvalidSecurityConfig
	}
	b.securityConfig = config
	return nil
}

// Build checks the cross-field rules and returns the immutable
// NetworkSpecifier: a port or transport protocol requires a security
// config, and only the responder publishes them.
func (b *SpecifierBuilder) Build() (*NetworkSpecifier, error) {
	serviceInfoSet := b.port != 0 || b.transportProtocol != UnsetTransportProtocol

	if serviceInfoSet && b.securityConfig == nil {
		return nil, ErrUnsecuredPort
	}
	if serviceInfoSet && b.role != RoleResponder {
		return nil, ErrResponderOnly
	}

	return &NetworkSpecifier{
		role:              b.role,
		port:              b.port,
		transportProtocol: b.transportProtocol,
		securityConfig:    b.securityConfig,
	}, nil
}
