package types

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying provisioning and teardown failures. Handlers map
// these onto HTTP status codes; workflow steps wrap them with detail via
// fmt.Errorf("...: %w", ...) so errors.Is still matches.
var (
	// ErrValidation covers malformed or incomplete requests, rejected before
	// any provider side effect.
	ErrValidation = errors.New("validation failed")

	// ErrLaunchFailed means the provider accepted the launch request but
	// returned no usable instance.
	ErrLaunchFailed = errors.New("instance launch failed")

	// ErrAddressTimeout means the instance never obtained a public address
	// within the polling budget. The instance still exists at the provider.
	ErrAddressTimeout = errors.New("timed out waiting for public address")

	// ErrRegistryWrite means a write against the gateway connection store
	// failed. Earlier provider side effects are not rolled back.
	ErrRegistryWrite = errors.New("gateway registry write failed")
)

// ErrInvalidInput builds a validation error with detail.
func ErrInvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
