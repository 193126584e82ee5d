package types

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *BoundError.
var ErrOutOfBounds = errors.New("types: value out of bounds")

// BoundError reports a value rejected by an explicit constraint check.
type BoundError struct {
	Kind   ConstraintKind // constraint that rejected the value
	Value  string         // offending value, formatted
	Bounds string         // permitted root range, formatted
}

// Error implements the error interface.
func (e *BoundError) Error() string {
	return fmt.Sprintf("types: %s %s out of bounds %s", e.Kind, e.Value, e.Bounds)
}

// Is allows BoundError to match ErrOutOfBounds with errors.Is.
func (e *BoundError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// TableError reports descriptor tables that are inconsistent with the values
// of their type. It is returned by the Validate helpers; the lookups that
// would hit such a defect at run time panic instead.
type TableError struct {
	Type    string
	Message string
}

// Error implements the error interface.
func (e *TableError) Error() string {
	return fmt.Sprintf("types: %s: %s", e.Type, e.Message)
}
