// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"errors"
	"fmt"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// Decoder errors
var (
	// ErrUnexpectedEOF is returned when the decoder encounters truncated data.
	ErrUnexpectedEOF = errors.New("ber: unexpected end of data")

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned when indefinite length encoding is encountered
	// but not supported for the current operation.
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported")

	// ErrInvalidBoolean is returned when a boolean value has invalid length.
	ErrInvalidBoolean = errors.New("ber: invalid boolean encoding")

	// ErrInvalidInteger is returned when an integer value is malformed.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrInvalidNull is returned when a null value has non-zero length.
	ErrInvalidNull = errors.New("ber: invalid null encoding")

	// ErrInvalidString is returned when a UTF8String is not valid UTF-8.
	ErrInvalidString = errors.New("ber: invalid UTF-8 string")

	// ErrTagMismatch is returned when the expected tag does not match the actual tag.
	ErrTagMismatch = errors.New("ber: tag mismatch")

	// ErrUnknownEnumeration is returned when an ENUMERATED value matches no discriminant.
	ErrUnknownEnumeration = errors.New("ber: unknown enumeration value")

	// ErrUnknownChoice is returned when no CHOICE alternative accepts a tag.
	ErrUnknownChoice = errors.New("ber: unrecognized CHOICE tag")

	// ErrTrailingData is returned when a non-extensible SEQUENCE or SET has
	// elements left after its last known member.
	ErrTrailingData = errors.New("ber: unexpected trailing data")

	// ErrMaxDepth is returned when nesting exceeds the decoder's limit.
	ErrMaxDepth = errors.New("ber: maximum nesting depth exceeded")
)

// Encoder and codec errors
var (
	ErrInvalidTagClass  = errors.New("ber: invalid tag class")
	ErrInvalidTagNumber = errors.New("ber: invalid tag number")
	ErrLengthOverflow   = errors.New("ber: length value overflow")
	ErrNegativeLength   = errors.New("ber: negative length not allowed")

	// ErrUnsupportedType is returned for Go values that have no ASN.1 mapping.
	ErrUnsupportedType = errors.New("ber: unsupported type")

	// ErrConstraintViolation is matched by every *ConstraintError.
	ErrConstraintViolation = errors.New("ber: constraint violation")
)

// DecodeError provides detailed information about a decoding failure.
type DecodeError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ber: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError with the given parameters.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

// TagMismatchError provides detailed information about a tag mismatch.
type TagMismatchError struct {
	Offset      int
	Expected    types.Tag
	Actual      types.Tag
	Constructed bool
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("ber: tag mismatch at offset %d: expected %s, got %s constructed=%v",
		e.Offset, e.Expected, e.Actual, e.Constructed)
}

// Is allows TagMismatchError to match ErrTagMismatch with errors.Is.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

// ConstraintError reports a value rejected by the constraints of its type.
type ConstraintError struct {
	Offset int    // Byte offset of the value, -1 when encoding
	Type   string // Go type of the value
	Err    error  // Underlying *types.BoundError
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("ber: %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("ber: %s at offset %d: %v", e.Type, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// Is allows ConstraintError to match ErrConstraintViolation with errors.Is.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}
