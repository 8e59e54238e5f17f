package aware

import (
	"fmt"

	"github.com/backkem/aware/pkg/security"
)

// Specifier construction errors. Each wraps one of the security
// package's error kinds: field format failures are
// security.ErrInvalidArgument, cross-field failures raised by Build are
// security.ErrInvalidState.
var (
	ErrInvalidRole              = fmt.Errorf("%w: unrecognized data-path role", security.ErrInvalidArgument)
	ErrInvalidPort              = fmt.Errorf("%w: port must be in 1..65535", security.ErrInvalidArgument)
	ErrInvalidTransportProtocol = fmt.Errorf("%w: transport protocol must be in 0..255", security.ErrInvalidArgument)
	ErrInvalidSecurityConfig    = fmt.Errorf("%w: security config is missing or inconsistent", security.ErrInvalidArgument)

	ErrUnsecuredPort = fmt.Errorf("%w: port and transport protocol require a security config", security.ErrInvalidState)
	ErrResponderOnly = fmt.Errorf("%w: port and transport protocol are published by the responder", security.ErrInvalidState)
)
