// SPDX-License-Identifier: MIT

package algebra

// Add performs m += o elementwise.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
// Complexity: O(2^n) dense, O(stored(o)) sparse.
func (m *Multivector) Add(o *Multivector) error {
	if err := validateMultivectors("Multivector.Add", m, o); err != nil {
		return err
	}
	m.accumulate(o, 1)

	return nil
}

// Subtract performs m -= o elementwise.
func (m *Multivector) Subtract(o *Multivector) error {
	if err := validateMultivectors("Multivector.Subtract", m, o); err != nil {
		return err
	}
	m.accumulate(o, -1)

	return nil
}

// accumulate adds factor·o into m. o may alias m.
func (m *Multivector) accumulate(o *Multivector, factor float64) {
	if md, ok := m.coeffs.(denseCoefficients); ok {
		if od, ok := o.coeffs.(denseCoefficients); ok {
			for i, v := range od {
				md[i] += factor * v
			}

			return
		}
	}
	if m == o {
		m.coeffs.Apply(func(v float64) float64 { return v + factor*v })

		return
	}
	o.coeffs.Range(func(i int, v float64) bool {
		m.coeffs.Set(i, m.coeffs.At(i)+factor*v)
		return true
	})
}

// Negate flips the sign of every coefficient.
func (m *Multivector) Negate() {
	m.coeffs.Apply(func(v float64) float64 { return -v })
}

// Scale multiplies every coefficient by s.
func (m *Multivector) Scale(s float64) {
	m.coeffs.Apply(func(v float64) float64 { return v * s })
}

// Divide divides every coefficient by s. Division by zero is not guarded and
// follows IEEE 754 (±Inf, NaN).
func (m *Multivector) Divide(s float64) {
	m.coeffs.Apply(func(v float64) float64 { return v / s })
}

// AddScalar adds s to the scalar part.
func (m *Multivector) AddScalar(s float64) {
	m.coeffs.Set(0, m.coeffs.At(0)+s)
}

// SubtractScalar subtracts s from the scalar part.
func (m *Multivector) SubtractScalar(s float64) {
	m.coeffs.Set(0, m.coeffs.At(0)-s)
}

// Sum returns m + o as a new multivector.
func (m *Multivector) Sum(o *Multivector) (*Multivector, error) {
	if err := validateMultivectors("Multivector.Sum", m, o); err != nil {
		return nil, err
	}
	out := m.Clone()
	out.accumulate(o, 1)

	return out, nil
}

// Difference returns m - o as a new multivector.
func (m *Multivector) Difference(o *Multivector) (*Multivector, error) {
	if err := validateMultivectors("Multivector.Difference", m, o); err != nil {
		return nil, err
	}
	out := m.Clone()
	out.accumulate(o, -1)

	return out, nil
}

// Negated returns -m.
func (m *Multivector) Negated() *Multivector {
	out := m.Clone()
	out.Negate()

	return out
}

// Scaled returns s·m.
func (m *Multivector) Scaled(s float64) *Multivector {
	out := m.Clone()
	out.Scale(s)

	return out
}

// Quotient returns m/s.
func (m *Multivector) Quotient(s float64) *Multivector {
	out := m.Clone()
	out.Divide(s)

	return out
}
