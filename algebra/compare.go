// SPDX-License-Identifier: MIT

package algebra

import "github.com/katalvlaran/clifford/approx"

// Equal reports exact componentwise equality. Multivectors of different
// spaces are never equal; the storage kind does not matter.
// NaN coefficients make the result false.
func (m *Multivector) Equal(o *Multivector) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.space.Equal(o.space) {
		return false
	}
	for i, n := 0, m.coeffs.Len(); i < n; i++ {
		if m.coeffs.At(i) != o.coeffs.At(i) {
			return false
		}
	}

	return true
}

// ApproxEqual reports componentwise approximate equality under the policy
// built from opts (approx.New). Any NaN coefficient makes the result false.
func (m *Multivector) ApproxEqual(o *Multivector, opts ...approx.Option) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.space.Equal(o.space) {
		return false
	}

	return approxEqualSlots(m.coeffs.Len(), m.coeffs.At, o.coeffs.At, approx.New(opts...))
}

// approxEqualSlots compares n slots read through at functions.
func approxEqualSlots(n int, a, b func(int) float64, policy approx.Options) bool {
	for i := 0; i < n; i++ {
		if !policy.Equal(a(i), b(i)) {
			return false
		}
	}

	return true
}

// IsZero reports whether every coefficient is approximately zero.
func (m *Multivector) IsZero(opts ...approx.Option) bool {
	policy := approx.New(opts...)
	zero := true
	m.coeffs.Range(func(_ int, v float64) bool {
		zero = policy.Zero(v)
		return zero
	})

	return zero
}
