// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"strings"

	"github.com/katalvlaran/clifford/approx"
)

// PureGrade is an element restricted to a single grade k. It stores only the
// C(n,k) coefficients of that grade, in ordinal order, and translates blade
// bitmasks through the Space tables.
//
// Reading a blade of another grade yields 0. Writing one is accepted only
// for (approximately) zero values, which are dropped.
type PureGrade struct {
	space  *Space
	grade  int
	values []float64
}

// NewPureGrade returns the zero grade-k element of space.
//
// Errors: ErrNilOperand, ErrNullSpace, ErrOutOfRange for k ∉ [0, dimension].
func NewPureGrade(space *Space, grade int) (*PureGrade, error) {
	const op = "NewPureGrade"
	if err := validateSpace(op, space); err != nil {
		return nil, err
	}
	if err := validateIndex(op, "grade", grade, space.dim+1); err != nil {
		return nil, err
	}

	return &PureGrade{space: space, grade: grade, values: make([]float64, space.GradeCount(grade))}, nil
}

// NewPureGradeFrom copies values, given in ordinal order, into a new grade-k
// element.
//
// Errors: as NewPureGrade, plus ErrDimensionMismatch (*DimensionError) when
// len(values) != C(dimension, grade).
func NewPureGradeFrom(space *Space, grade int, values []float64) (*PureGrade, error) {
	p, err := NewPureGrade(space, grade)
	if err != nil {
		return nil, err
	}
	if len(values) != len(p.values) {
		return nil, &DimensionError{Op: "NewPureGradeFrom", What: "coefficient count",
			Expected: len(p.values), Actual: len(values), Err: ErrDimensionMismatch}
	}
	copy(p.values, values)

	return p, nil
}

// Space returns the owning algebra.
func (p *PureGrade) Space() *Space { return p.space }

// Grade returns k.
func (p *PureGrade) Grade() int { return p.grade }

// Len returns C(dimension, grade).
func (p *PureGrade) Len() int { return len(p.values) }

// Values returns a copy of the coefficients in ordinal order.
func (p *PureGrade) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)

	return out
}

// Component returns the coefficient with the given ordinal.
func (p *PureGrade) Component(ordinal int) (float64, error) {
	if err := validateIndex("PureGrade.Component", "ordinal", ordinal, len(p.values)); err != nil {
		return 0, err
	}

	return p.values[ordinal], nil
}

// SetComponent assigns the coefficient with the given ordinal.
func (p *PureGrade) SetComponent(ordinal int, v float64) error {
	if err := validateIndex("PureGrade.SetComponent", "ordinal", ordinal, len(p.values)); err != nil {
		return err
	}
	p.values[ordinal] = v

	return nil
}

// At returns the coefficient of the blade with the given bitmask, 0 when the
// blade belongs to another grade.
//
// Errors: ErrOutOfRange when index ≥ 2^dimension.
func (p *PureGrade) At(index uint32) (float64, error) {
	if err := validateIndex("PureGrade.At", "blade index", int(index), p.space.BladeCount()); err != nil {
		return 0, err
	}
	if p.space.gradeOf(int(index)) != p.grade {
		return 0, nil
	}

	return p.values[p.space.ordinalOf(int(index))], nil
}

// Set assigns the coefficient of the blade with the given bitmask. For a
// blade of another grade, an approximately zero v (default policy) is a
// no-op and anything else fails.
//
// Errors: ErrOutOfRange, ErrGradeViolation (*GradeError).
func (p *PureGrade) Set(index uint32, v float64) error {
	const op = "PureGrade.Set"
	if err := validateIndex(op, "blade index", int(index), p.space.BladeCount()); err != nil {
		return err
	}
	if g := p.space.gradeOf(int(index)); g != p.grade {
		if approx.Default().Zero(v) {
			return nil
		}

		return &GradeError{Op: op, Index: index, Got: g, Want: p.grade, Value: v}
	}
	p.values[p.space.ordinalOf(int(index))] = v

	return nil
}

// Copy overwrites the coefficients with values, given in ordinal order.
//
// Errors: ErrDimensionMismatch (*DimensionError).
func (p *PureGrade) Copy(values []float64) error {
	if len(values) != len(p.values) {
		return &DimensionError{Op: "PureGrade.Copy", What: "coefficient count",
			Expected: len(p.values), Actual: len(values), Err: ErrDimensionMismatch}
	}
	copy(p.values, values)

	return nil
}

// Clone returns an independent deep copy.
func (p *PureGrade) Clone() *PureGrade {
	return &PureGrade{space: p.space, grade: p.grade, values: p.Values()}
}

// Multivector expands p into a full dense multivector.
func (p *PureGrade) Multivector() *Multivector {
	m := &Multivector{space: p.space, coeffs: make(denseCoefficients, p.space.BladeCount())}
	if len(p.values) > 0 {
		for ordinal, index := range p.space.bladeIndex[p.grade] {
			m.coeffs.Set(int(index), p.values[ordinal])
		}
	}

	return m
}

// L2Norm returns sqrt(Σ v²) over the stored coefficients.
func (p *PureGrade) L2Norm() float64 {
	var sum float64
	for _, v := range p.values {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Add performs p += o.
//
// Errors: ErrNilOperand, ErrSpaceMismatch, ErrGradeViolation.
func (p *PureGrade) Add(o *PureGrade) error {
	if err := validateGrades("PureGrade.Add", p, o); err != nil {
		return err
	}
	for i, v := range o.values {
		p.values[i] += v
	}

	return nil
}

// Subtract performs p -= o.
func (p *PureGrade) Subtract(o *PureGrade) error {
	if err := validateGrades("PureGrade.Subtract", p, o); err != nil {
		return err
	}
	for i, v := range o.values {
		p.values[i] -= v
	}

	return nil
}

// Negate flips every sign.
func (p *PureGrade) Negate() { p.Scale(-1) }

// Scale multiplies every coefficient by s.
func (p *PureGrade) Scale(s float64) {
	for i := range p.values {
		p.values[i] *= s
	}
}

// Divide divides every coefficient by s, following IEEE 754 for s == 0.
func (p *PureGrade) Divide(s float64) {
	for i := range p.values {
		p.values[i] /= s
	}
}

// Involute multiplies p by (-1)^k.
func (p *PureGrade) Involute() { p.Scale(involuteSign(p.grade)) }

// Reverse multiplies p by (-1)^(k(k-1)/2).
func (p *PureGrade) Reverse() { p.Scale(reverseSign(p.grade)) }

// Conjugate applies the Clifford conjugation sign of grade k.
func (p *PureGrade) Conjugate() { p.Scale(conjugateSign(p.grade)) }

// Equal reports exact equality of space, grade and coefficients.
func (p *PureGrade) Equal(o *PureGrade) bool {
	if p == nil || o == nil {
		return p == o
	}
	if !p.space.Equal(o.space) || p.grade != o.grade {
		return false
	}
	for i, v := range p.values {
		if v != o.values[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports componentwise approximate equality (see approx.New).
func (p *PureGrade) ApproxEqual(o *PureGrade, opts ...approx.Option) bool {
	if p == nil || o == nil {
		return p == o
	}
	if !p.space.Equal(o.space) || p.grade != o.grade {
		return false
	}
	at := func(values []float64) func(int) float64 {
		return func(i int) float64 { return values[i] }
	}

	return approxEqualSlots(len(p.values), at(p.values), at(o.values), approx.New(opts...))
}

// String renders p like a Multivector with only grade-k terms.
func (p *PureGrade) String() string {
	var sb strings.Builder
	if len(p.values) > 0 {
		for ordinal, index := range p.space.bladeIndex[p.grade] {
			writeTerm(&sb, index, p.values[ordinal])
		}
	}
	finishTerms(&sb, p.space)

	return sb.String()
}
