package sqlgen

import (
	"errors"
	"fmt"
)

// CapabilityError is returned when a requested abstract operation has no
// representation, native or emulated, in the active dialect. It is never
// retryable; retries belong to the transport layer.
type CapabilityError struct {
	Dialect string // dialect name
	Feature string // missing capability
}

// Error returns the error string.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("sqlgen: %s is not supported by dialect %q", e.Feature, e.Dialect)
}

// NewCapabilityError returns a new CapabilityError naming the missing
// feature and the dialect.
func NewCapabilityError(dialect, feature string) *CapabilityError {
	return &CapabilityError{Dialect: dialect, Feature: feature}
}

// IsCapabilityError returns true if the error is a CapabilityError.
func IsCapabilityError(err error) bool {
	if err == nil {
		return false
	}
	var e *CapabilityError
	return errors.As(err, &e)
}

// MalformedInputError is returned when a value cannot be escaped as a
// literal of the requested type, or an accessor string fails the
// injection-safety scanner. No SQL text is emitted in this case.
type MalformedInputError struct {
	Reason string
	Value  any // offending value, if any
}

// Error returns the error string.
func (e *MalformedInputError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("sqlgen: malformed input: %s (%v)", e.Reason, e.Value)
	}
	return fmt.Sprintf("sqlgen: malformed input: %s", e.Reason)
}

// NewMalformedInputError returns a new MalformedInputError.
func NewMalformedInputError(reason string, value any) *MalformedInputError {
	return &MalformedInputError{Reason: reason, Value: value}
}

// IsMalformedInputError returns true if the error is a MalformedInputError.
func IsMalformedInputError(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedInputError
	return errors.As(err, &e)
}

// PreconditionError is returned when a structural precondition of an
// operation is violated, e.g. an empty attribute set for CREATE TABLE.
type PreconditionError struct {
	Op     Op
	Reason string
}

// Error returns the error string.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sqlgen: %s: %s", e.Op, e.Reason)
}

// NewPreconditionError returns a new PreconditionError for the given
// operation.
func NewPreconditionError(op Op, reason string) *PreconditionError {
	return &PreconditionError{Op: op, Reason: reason}
}

// IsPreconditionError returns true if the error is a PreconditionError.
func IsPreconditionError(err error) bool {
	if err == nil {
		return false
	}
	var e *PreconditionError
	return errors.As(err, &e)
}
