// SPDX-License-Identifier: MIT

package nested

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates operands that are not congruent at some level.
	ErrShapeMismatch = errors.New("nested: shape mismatch")

	// ErrNoOperands indicates Add (or SameShape) was called without arguments.
	ErrNoOperands = errors.New("nested: no operands")

	// ErrTrailingData indicates input left over after the first document.
	ErrTrailingData = errors.New("nested: trailing data after document")

	// ErrOverflow indicates an integer sum that does not fit in int64.
	ErrOverflow = errors.New("nested: integer overflow")

	// ErrUnsupportedType indicates a value that is neither a number nor a sequence.
	ErrUnsupportedType = errors.New("nested: unsupported type")
)

// Reason classifies a shape mismatch.
type Reason int

const (
	// ReasonKind: numbers and sequences mixed at the same level.
	ReasonKind Reason = iota
	// ReasonLength: sequences of different lengths at the same level.
	ReasonLength
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonKind:
		return "kind"
	case ReasonLength:
		return "length"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ShapeMismatchError reports where operands stopped being congruent.
// Path is the index path from the root to the offending level ([] for the
// root itself); Operand is the index of the first operand that disagrees
// with operand 0.
type ShapeMismatchError struct {
	Path    []int
	Reason  Reason
	Operand int
}

// Error implements error.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("nested: shape mismatch (%s) at %v between operand 0 and operand %d",
		e.Reason, e.Path, e.Operand)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// nestedErrorf wraps err with the operation tag, keeping errors.Is intact.
func nestedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
