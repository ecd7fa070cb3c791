// Package shared contains the error taxonomy and value objects used by the
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// Contract errors
	ErrContractViolation = errors.New("contract violation")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "rational", "contact"
	Op      string // Operation that failed, e.g., "New", "Multiply"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Rational domain errors
var (
	ErrZeroDenominator = NewDomainError("rational", "New", ErrInvalidArgument, "denominator must be nonzero")
	ErrUnrepresentable = NewDomainError("rational", "New", ErrInvalidArgument, "canonical form does not fit in int64")
	ErrProductOverflow = NewDomainError("rational", "Multiply", ErrValueOutOfRange, "product does not fit in int64")
)

// Contact value object errors
var (
	ErrInvalidCallSign = NewDomainError("contact", "Validate", ErrInvalidFormat, "invalid call sign")
	ErrInvalidLogTime  = NewDomainError("contact", "Validate", ErrInvalidFormat, "invalid log time, expected HH:MM")
)

// IsInvalidArgument checks if the error is an "invalid argument" error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsContractViolation checks if a barrier law was found broken.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}
