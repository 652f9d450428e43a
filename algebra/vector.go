// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/clifford/approx"
)

// Vector is the grade-1 PureGrade: one coefficient per basis vector.
type Vector struct {
	PureGrade
}

// NewVector returns the zero vector of space.
func NewVector(space *Space) (*Vector, error) {
	p, err := newVectorGrade("NewVector", space)
	if err != nil {
		return nil, err
	}

	return &Vector{*p}, nil
}

// NewVectorFrom copies one coefficient per basis vector into a new vector.
//
// Errors: ErrNilOperand, ErrNullSpace, ErrDimensionMismatch (*DimensionError).
func NewVectorFrom(space *Space, values []float64) (*Vector, error) {
	v, err := NewVector(space)
	if err != nil {
		return nil, err
	}
	if len(values) != len(v.values) {
		return nil, &DimensionError{Op: "NewVectorFrom", What: "coefficient count",
			Expected: len(v.values), Actual: len(values), Err: ErrDimensionMismatch}
	}
	copy(v.values, values)

	return v, nil
}

// newVectorGrade accepts zero-dimensional spaces, whose vectors are empty.
func newVectorGrade(op string, space *Space) (*PureGrade, error) {
	if err := validateSpace(op, space); err != nil {
		return nil, err
	}

	return &PureGrade{space: space, grade: 1, values: make([]float64, space.dim)}, nil
}

// Dot returns Σ v[i]·o[i] over the basis vectors. The metric is not applied.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if v == nil || o == nil {
		return 0, algebraErrorf("Vector.Dot", ErrNilOperand)
	}
	if err := validateSameSpace("Vector.Dot", v.space, o.space); err != nil {
		return 0, err
	}
	var sum float64
	for i, x := range v.values {
		sum += x * o.values[i]
	}

	return sum, nil
}

// Transform replaces v with matrix·v. The matrix must map v's space to
// itself.
//
// Errors: ErrNilOperand, ErrNotEndomorphism.
func (v *Vector) Transform(matrix *Matrix) error {
	const op = "Vector.Transform"
	if v == nil || matrix == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if !matrix.source.Equal(v.space) || !matrix.target.Equal(v.space) {
		return algebraErrorf(op, fmt.Errorf("%w: %v→%v on %v", ErrNotEndomorphism,
			matrix.source.Signature(), matrix.target.Signature(), v.space.Signature()))
	}
	copy(v.values, matrix.apply(v.values))

	return nil
}

// Add performs v += o.
func (v *Vector) Add(o *Vector) error {
	if o == nil {
		return algebraErrorf("Vector.Add", ErrNilOperand)
	}

	return v.PureGrade.Add(&o.PureGrade)
}

// Subtract performs v -= o.
func (v *Vector) Subtract(o *Vector) error {
	if o == nil {
		return algebraErrorf("Vector.Subtract", ErrNilOperand)
	}

	return v.PureGrade.Subtract(&o.PureGrade)
}

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{*v.PureGrade.Clone()}
}

// Equal reports exact equality.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.PureGrade.Equal(&o.PureGrade)
}

// ApproxEqual reports componentwise approximate equality (see approx.New).
func (v *Vector) ApproxEqual(o *Vector, opts ...approx.Option) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.PureGrade.ApproxEqual(&o.PureGrade, opts...)
}
