// Package quat structured error types
package quat

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Sequence input whose length is not 4
	ErrTypeInvalidLength ErrorType = iota
	// Input of a kind that cannot become a quaternion
	ErrTypeUnsupportedType
	// Division by a zero magnitude
	ErrTypeDivisionByZero
	// NaN or infinite coordinate
	ErrTypeNonFinite
	// Invalid argument errors
	ErrTypeInvalidArg
)

// QuatError represents a structured error with context
type QuatError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *QuatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quat %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("quat %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *QuatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a QuatError of the same type, so that
// errors.Is(err, ErrInvalidLength) matches any invalid length error.
func (e *QuatError) Is(target error) bool {
	t, ok := target.(*QuatError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidLength:
		return "InvalidLength"
	case ErrTypeUnsupportedType:
		return "UnsupportedType"
	case ErrTypeDivisionByZero:
		return "DivisionByZero"
	case ErrTypeNonFinite:
		return "NonFinite"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// ParseErrorType maps the name produced by ErrorType.String back to its value.
func ParseErrorType(name string) (ErrorType, bool) {
	for t := ErrTypeInvalidLength; t <= ErrTypeInvalidArg; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Common error constructors

// NewInvalidLengthError creates an error for a sequence of the wrong length
func NewInvalidLengthError(op string, length int) error {
	return &QuatError{
		Type:    ErrTypeInvalidLength,
		Op:      op,
		Message: fmt.Sprintf("expected a sequence of length 4, got %d", length),
		Context: length,
	}
}

// NewUnsupportedTypeError creates an error for a value that cannot be coerced
func NewUnsupportedTypeError(op string, value interface{}) error {
	return &QuatError{
		Type:    ErrTypeUnsupportedType,
		Op:      op,
		Message: fmt.Sprintf("expected a Quaternion, a real number or a sequence of 4 real numbers, got %T", value),
		Context: value,
	}
}

// NewDivisionByZeroError creates a division by zero error
func NewDivisionByZeroError(op string, message string) error {
	return &QuatError{
		Type:    ErrTypeDivisionByZero,
		Op:      op,
		Message: message,
	}
}

// NewNonFiniteError creates an error for NaN or infinite coordinates
func NewNonFiniteError(op string, coords [4]float64) error {
	return &QuatError{
		Type:    ErrTypeNonFinite,
		Op:      op,
		Message: fmt.Sprintf("coordinates must be finite, got %v", coords),
		Context: coords,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &QuatError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// Common pre-defined errors, usable as errors.Is targets

var (
	// ErrInvalidLength indicates a sequence whose length is not 4
	ErrInvalidLength = &QuatError{Type: ErrTypeInvalidLength, Op: "New", Message: "sequence length must be 4"}

	// ErrUnsupportedType indicates an input kind New cannot coerce
	ErrUnsupportedType = &QuatError{Type: ErrTypeUnsupportedType, Op: "New", Message: "unsupported input type"}

	// ErrDivisionByZero indicates an operation on the zero quaternion that divides by its magnitude
	ErrDivisionByZero = NewDivisionByZeroError("Inv", "zero quaternion has no inverse")

	// ErrNonFinite indicates a NaN or infinite coordinate
	ErrNonFinite = &QuatError{Type: ErrTypeNonFinite, Op: "New", Message: "coordinates must be finite"}

	// ErrInvalidArg indicates a malformed argument to the verification tooling
	ErrInvalidArg = NewInvalidArgError("Vector", "invalid argument")
)

func isType(err error, t ErrorType) bool {
	var e *QuatError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsInvalidLengthError checks if an error is an invalid length error
func IsInvalidLengthError(err error) bool {
	return isType(err, ErrTypeInvalidLength)
}

// IsUnsupportedTypeError checks if an error is an unsupported type error
func IsUnsupportedTypeError(err error) bool {
	return isType(err, ErrTypeUnsupportedType)
}

// IsDivisionByZeroError checks if an error is a division by zero error
func IsDivisionByZeroError(err error) bool {
	return isType(err, ErrTypeDivisionByZero)
}

// IsNonFiniteError checks if an error is a non-finite coordinate error
func IsNonFiniteError(err error) bool {
	return isType(err, ErrTypeNonFinite)
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	return isType(err, ErrTypeInvalidArg)
}
