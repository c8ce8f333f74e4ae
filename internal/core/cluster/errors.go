// Package cluster contains pure functions for expanding a scalar training
// cluster configuration into a compose document.
// This is part of the Functional Core - all functions are pure with no I/O.
package cluster

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// Configuration validation errors
	ErrNegativeCount    = errors.New("instance count cannot be negative")
	ErrMissingField     = errors.New("required configuration field is missing")
	ErrUnknownField     = errors.New("unknown configuration field")
	ErrTooManyInstances = errors.New("total instance count exceeds the role port gap")

	// Internal invariant errors
	ErrDuplicateService = errors.New("duplicate service name")
	ErrDuplicatePort    = errors.New("duplicate port assignment")
)

// ValidationError wraps configuration errors with the field that failed.
// Generation never starts once one of these is returned.
type ValidationError struct {
	Field   string // e.g., "servers"
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// InvariantError reports a computed collision that slipped past the role
// table. It indicates a bug in the role configuration, not bad user input.
type InvariantError struct {
	Service string // service name being inserted when the collision surfaced
	Message string
	Err     error
}

func (e *InvariantError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
	return e.Message
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// NewInvariantError creates a new InvariantError.
func NewInvariantError(service, message string, err error) *InvariantError {
	return &InvariantError{
		Service: service,
		Message: message,
		Err:     err,
	}
}
