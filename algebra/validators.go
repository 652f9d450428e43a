// SPDX-License-Identifier: MIT

package algebra

// validateSpace rejects nil and the null space.
func validateSpace(op string, s *Space) error {
	if s == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if s.null {
		return algebraErrorf(op, ErrNullSpace)
	}

	return nil
}

// validateSameSpace checks that two operands live in one algebra.
func validateSameSpace(op string, a, b *Space) error {
	if !a.Equal(b) {
		return &SpaceMismatchError{Op: op, Left: a.Signature(), Right: b.Signature()}
	}

	return nil
}

// validateMultivectors checks for nil operands and a shared space.
func validateMultivectors(op string, ms ...*Multivector) error {
	for _, m := range ms {
		if m == nil {
			return algebraErrorf(op, ErrNilOperand)
		}
	}
	for _, m := range ms[1:] {
		if err := validateSameSpace(op, ms[0].space, m.space); err != nil {
			return err
		}
	}

	return nil
}

// validateGrades checks for nil pure-grade operands, a shared space and
// a shared grade.
func validateGrades(op string, a, b *PureGrade) error {
	if a == nil || b == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if err := validateSameSpace(op, a.space, b.space); err != nil {
		return err
	}
	if a.grade != b.grade {
		return &DimensionError{Op: op, What: "grade", Expected: a.grade, Actual: b.grade, Err: ErrGradeViolation}
	}

	return nil
}

// validateIndex checks 0 ≤ index < limit.
func validateIndex(op, what string, index, limit int) error {
	if index < 0 || index >= limit {
		return &IndexError{Op: op, What: what, Index: index, Limit: limit}
	}

	return nil
}
