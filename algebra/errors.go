// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set and typed error details.
//
// Every sentinel is prefixed with "algebra: ..." and callers match them via
// errors.Is. Typed errors (DimensionError, IndexError, GradeError,
// SpaceMismatchError) carry the expected vs. actual values and unwrap to
// their sentinel, so errors.Is keeps working and errors.As exposes detail.
//
// No operation panics on user-triggered conditions.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionTooLarge is returned when p+q+r exceeds MaxDimension.
	ErrDimensionTooLarge = errors.New("algebra: total dimension too large")

	// ErrNegativeDimension is returned when any signature component is negative.
	ErrNegativeDimension = errors.New("algebra: negative dimension")

	// ErrNullSpace marks an invalid operation on the null space sentinel.
	ErrNullSpace = errors.New("algebra: there is no basis in null space")

	// ErrSpaceMismatch signals operands that belong to different algebras.
	ErrSpaceMismatch = errors.New("algebra: operands must belong to the same algebra")

	// ErrOutOfRange indicates an index, ordinal or grade outside its valid range.
	ErrOutOfRange = errors.New("algebra: index out of range")

	// ErrDimensionMismatch indicates storage whose length or shape does not
	// match what the space requires.
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrGradeViolation signals a non-zero write into a slot a pure-grade
	// element has no storage for.
	ErrGradeViolation = errors.New("algebra: value outside the declared grade")

	// ErrNilOperand indicates that a nil space, multivector, vector or matrix was used.
	ErrNilOperand = errors.New("algebra: nil operand")

	// ErrDuplicateBasis is returned by Blade when a basis vector number repeats.
	ErrDuplicateBasis = errors.New("algebra: basis vector given multiple times")

	// ErrNotEndomorphism is returned when a square map on the vector's own
	// space is required (Vector.Transform).
	ErrNotEndomorphism = errors.New("algebra: matrix is not an endomorphism of the vector space")
)

// algebraErrorf wraps err with an operation tag.
func algebraErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// DimensionError reports a length or dimension that differs from the
// expected one. Err is the sentinel it unwraps to.
type DimensionError struct {
	Op       string
	What     string
	Expected int
	Actual   int
	Err      error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d, got %d: %v", e.Op, e.What, e.Expected, e.Actual, e.Err)
}

func (e *DimensionError) Unwrap() error { return e.Err }

// IndexError reports an index outside [0, Limit).
type IndexError struct {
	Op    string
	What  string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s %d not in [0, %d): %v", e.Op, e.What, e.Index, e.Limit, ErrOutOfRange)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// GradeError reports a non-zero value written to a blade of grade Got into a
// pure-grade element of grade Want.
type GradeError struct {
	Op    string
	Index uint32
	Got   int
	Want  int
	Value float64
}

func (e *GradeError) Error() string {
	return fmt.Sprintf("%s: cannot set blade %#b of grade %d to %g in a pure grade %d element: %v",
		e.Op, e.Index, e.Got, e.Value, e.Want, ErrGradeViolation)
}

func (e *GradeError) Unwrap() error { return ErrGradeViolation }

// SpaceMismatchError reports the two signatures that failed to match.
type SpaceMismatchError struct {
	Op          string
	Left, Right Signature
}

func (e *SpaceMismatchError) Error() string {
	return fmt.Sprintf("%s: %v vs %v: %v", e.Op, e.Left, e.Right, ErrSpaceMismatch)
}

func (e *SpaceMismatchError) Unwrap() error { return ErrSpaceMismatch }
