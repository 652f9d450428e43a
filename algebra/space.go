// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/clifford/combinatorics"
)

// MaxDimension bounds p+q+r. A Space allocates 2^dimension lookup entries and
// every Multivector 2^dimension coefficients, so the cap keeps both the
// tables and the bit arithmetic inside native integer widths.
const MaxDimension = 30

// Signature is the (positive, negative, nilpotent) triple of a quadratic form:
// how many basis vectors square to +1, to -1 and to 0, in that order.
type Signature struct {
	Positive  int
	Negative  int
	Nilpotent int
}

// Dimension returns Positive+Negative+Nilpotent.
func (s Signature) Dimension() int {
	return s.Positive + s.Negative + s.Nilpotent
}

// String renders the signature as (p,q,r).
func (s Signature) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Positive, s.Negative, s.Nilpotent)
}

// bladeCoord is the (grade, ordinal) pair of a basis blade.
type bladeCoord struct {
	grade   uint8
	ordinal uint32
}

// Space describes one Clifford algebra: its signature and the two lookup
// tables translating a basis-blade bitmask to its (grade, ordinal)
// coordinates and back.
//
// A Space is immutable once NewSpace returns and safe for concurrent reads.
// Two spaces are the same algebra iff their signatures are equal; use Equal,
// never pointer identity.
type Space struct {
	sig  Signature
	dim  int
	null bool

	bladeIndex [][]uint32   // [grade][ordinal] -> bitmask
	bladeBasis []bladeCoord // [bitmask] -> (grade, ordinal)
}

var (
	nullSpace         = &Space{sig: Signature{-1, -1, -1}, dim: -1, null: true}
	scalarSpace       = mustSpace(0, 0, 0)
	splitComplexSpace = mustSpace(1, 0, 0)
)

// NewSpace builds the algebra with the given signature.
//
// Stage 1 (Validate): every component non-negative, total ≤ MaxDimension.
// Stage 2 (Prepare): enumerate all C(n,k) combinations per grade and fill
// both lookup tables.
//
// Errors: ErrNegativeDimension, ErrDimensionTooLarge (as *DimensionError).
// Complexity: O(2^n) time and memory.
func NewSpace(positive, negative, nilpotent int) (*Space, error) {
	if positive < 0 || negative < 0 || nilpotent < 0 {
		return nil, algebraErrorf("NewSpace", fmt.Errorf("%w: %v", ErrNegativeDimension,
			Signature{positive, negative, nilpotent}))
	}
	n := positive + negative + nilpotent
	if n > MaxDimension {
		return nil, &DimensionError{
			Op: "NewSpace", What: "total dimension",
			Expected: MaxDimension, Actual: n, Err: ErrDimensionTooLarge,
		}
	}

	s := &Space{sig: Signature{positive, negative, nilpotent}, dim: n}
	s.buildTables()

	return s, nil
}

// NewSpaceFromSignature is NewSpace taking a Signature value.
func NewSpaceFromSignature(sig Signature) (*Space, error) {
	return NewSpace(sig.Positive, sig.Negative, sig.Nilpotent)
}

// mustSpace is used for the package-level predefined spaces only.
func mustSpace(p, q, r int) *Space {
	s, err := NewSpace(p, q, r)
	if err != nil {
		panic(err)
	}

	return s
}

// NullSpace returns the sentinel standing for "no algebra". Every basis
// operation on it fails with ErrNullSpace.
func NullSpace() *Space { return nullSpace }

// ScalarSpace returns the shared zero-dimensional algebra (the reals).
func ScalarSpace() *Space { return scalarSpace }

// SplitComplexSpace returns the shared algebra generated by one basis vector
// squaring to +1 (the split-complex numbers).
func SplitComplexSpace() *Space { return splitComplexSpace }

// Signature returns the (p,q,r) triple.
func (s *Space) Signature() Signature { return s.sig }

// Dimension returns p+q+r (-1 for the null space).
func (s *Space) Dimension() int { return s.dim }

// PositiveDimension returns p.
func (s *Space) PositiveDimension() int { return s.sig.Positive }

// NegativeDimension returns q.
func (s *Space) NegativeDimension() int { return s.sig.Negative }

// NilpotentDimension returns r.
func (s *Space) NilpotentDimension() int { return s.sig.Nilpotent }

// IsNull reports whether s is the null space sentinel.
func (s *Space) IsNull() bool { return s != nil && s.null }

// BladeCount returns 2^dimension, the length of a multivector.
func (s *Space) BladeCount() int {
	if s.null {
		return 0
	}

	return 1 << uint(s.dim)
}

// GradeCount returns C(dimension, grade), the length of a pure grade element.
func (s *Space) GradeCount(grade int) int {
	if s.null {
		return 0
	}

	return combinatorics.Binomial(s.dim, grade)
}

// Equal reports whether s and o describe the same algebra.
func (s *Space) Equal(o *Space) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.sig == o.sig
}

// ID is a short, stable identifier derived from the signature.
func (s *Space) ID() string {
	if s.null {
		return "null"
	}

	return fmt.Sprintf("%d.%d.%d", s.sig.Positive, s.sig.Negative, s.sig.Nilpotent)
}

// String renders the space for debugging, e.g. "Space#3.0.0".
func (s *Space) String() string {
	return "Space#" + s.ID()
}

// Zero returns a fresh zero multivector of s.
func (s *Space) Zero() (*Multivector, error) {
	return NewMultivector(s)
}
