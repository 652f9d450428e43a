// SPDX-License-Identifier: MIT

package algebra

// GetGrade extracts the grade-k part of m.
//
// Errors: ErrOutOfRange when k ∉ [0, dimension].
// Complexity: O(C(n,k)).
func (m *Multivector) GetGrade(k int) (*PureGrade, error) {
	if err := validateIndex("Multivector.GetGrade", "grade", k, m.space.dim+1); err != nil {
		return nil, err
	}
	table := m.space.bladeIndex[k]
	values := make([]float64, len(table))
	for ordinal, index := range table {
		values[ordinal] = m.coeffs.At(int(index))
	}

	return &PureGrade{space: m.space, grade: k, values: values}, nil
}

// SetGrade writes p into the grade-p.Grade() slots of m and leaves every
// other slot untouched. An element without coefficients (the vector part of
// a zero-dimensional space) writes nothing.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
func (m *Multivector) SetGrade(p *PureGrade) error {
	const op = "Multivector.SetGrade"
	if m == nil || p == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if err := validateSameSpace(op, m.space, p.space); err != nil {
		return err
	}
	if p.grade > m.space.dim {
		return nil
	}
	for ordinal, index := range m.space.bladeIndex[p.grade] {
		m.coeffs.Set(int(index), p.values[ordinal])
	}

	return nil
}

// VectorPart returns the grade-1 part of m. A zero-dimensional space yields
// an empty vector.
func (m *Multivector) VectorPart() *Vector {
	if m.space.dim == 0 {
		return &Vector{PureGrade{space: m.space, grade: 1}}
	}
	p, _ := m.GetGrade(1)

	return &Vector{*p}
}

// Sign rules of the three antiautomorphisms, by grade.
func involuteSign(grade int) float64 {
	if grade%2 == 0 {
		return 1
	}

	return -1
}

func reverseSign(grade int) float64 {
	if (grade/2)%2 == 0 {
		return 1
	}

	return -1
}

// conjugateSign is reverseSign·involuteSign: +, -, -, + repeating.
func conjugateSign(grade int) float64 {
	if ((grade+1)/2)%2 == 0 {
		return 1
	}

	return -1
}

// applyGradeSign multiplies every coefficient by sign(grade of its blade).
func (m *Multivector) applyGradeSign(sign func(int) float64) {
	s := m.space
	m.coeffs.Update(func(i int, v float64) float64 {
		return sign(s.gradeOf(i)) * v
	})
}

// Involute applies the grade involution in place: grade k is multiplied by
// (-1)^k.
func (m *Multivector) Involute() { m.applyGradeSign(involuteSign) }

// Reverse applies the reversion in place: grade k is multiplied by
// (-1)^(k(k-1)/2).
func (m *Multivector) Reverse() { m.applyGradeSign(reverseSign) }

// Conjugate applies the Clifford conjugation in place, the composition of
// Reverse and Involute.
func (m *Multivector) Conjugate() { m.applyGradeSign(conjugateSign) }

// Involution returns the grade involution of m.
func (m *Multivector) Involution() *Multivector {
	out := m.Clone()
	out.Involute()

	return out
}

// Reversion returns the reverse of m.
func (m *Multivector) Reversion() *Multivector {
	out := m.Clone()
	out.Reverse()

	return out
}

// Conjugation returns the Clifford conjugate of m.
func (m *Multivector) Conjugation() *Multivector {
	out := m.Clone()
	out.Conjugate()

	return out
}
