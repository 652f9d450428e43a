// SPDX-License-Identifier: MIT

package algebra

// MultiplyInto accumulates the geometric product a*b into c:
//
//	c[e] += sign · a[i] · b[j]   for every (i, j), (e, sign) = i·j
//
// c may alias a or b; the product is then computed into a scratch buffer
// before being added.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
// Complexity: O(4^n) dense; O(stored(a)·stored(b)) sparse.
func MultiplyInto(a, b, c *Multivector) error {
	if err := validateMultivectors("MultiplyInto", a, b, c); err != nil {
		return err
	}
	productInto(a, b, c, false)

	return nil
}

// WedgeInto accumulates the exterior product a∧b into c. It is the geometric
// product restricted to pairs of blades without a common basis vector.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
// Complexity: O(4^n) dense; O(stored(a)·stored(b)) sparse.
func WedgeInto(a, b, c *Multivector) error {
	if err := validateMultivectors("WedgeInto", a, b, c); err != nil {
		return err
	}
	productInto(a, b, c, true)

	return nil
}

// productInto assumes validated operands.
func productInto(a, b, c *Multivector, wedge bool) {
	if c == a || c == b {
		tmp := c.zeroLike()
		productInto(a, b, tmp, wedge)
		c.accumulate(tmp, 1)

		return
	}

	ad, aDense := a.coeffs.(denseCoefficients)
	bd, bDense := b.coeffs.(denseCoefficients)
	cd, cDense := c.coeffs.(denseCoefficients)
	if aDense && bDense && cDense {
		denseProduct(a.space, ad, bd, cd, wedge)

		return
	}

	s := a.space
	a.coeffs.Range(func(i int, av float64) bool {
		b.coeffs.Range(func(j int, bv float64) bool {
			if wedge && i&j != 0 {
				return true
			}
			e, sign := s.multiplyBlades(uint32(i), uint32(j))
			if sign != 0 {
				c.coeffs.Set(int(e), c.coeffs.At(int(e))+float64(sign)*av*bv)
			}
			return true
		})
		return true
	})
}

// denseProduct is the flat-slice fast path. Every pair contributes, so
// non-finite operands propagate exactly as the formula implies.
func denseProduct(s *Space, a, b, c denseCoefficients, wedge bool) {
	for i, av := range a {
		for j, bv := range b {
			if wedge && i&j != 0 {
				continue
			}
			e, sign := s.multiplyBlades(uint32(i), uint32(j))
			c[e] += float64(sign) * av * bv
		}
	}
}

// Product returns the geometric product m*o.
func (m *Multivector) Product(o *Multivector) (*Multivector, error) {
	if err := validateMultivectors("Multivector.Product", m, o); err != nil {
		return nil, err
	}
	out := m.zeroLike()
	productInto(m, o, out, false)

	return out, nil
}

// WedgeProduct returns the exterior product m∧o.
func (m *Multivector) WedgeProduct(o *Multivector) (*Multivector, error) {
	if err := validateMultivectors("Multivector.WedgeProduct", m, o); err != nil {
		return nil, err
	}
	out := m.zeroLike()
	productInto(m, o, out, true)

	return out, nil
}

// Multiply replaces m with m*o.
func (m *Multivector) Multiply(o *Multivector) error {
	out, err := m.Product(o)
	if err != nil {
		return err
	}
	m.coeffs = out.coeffs

	return nil
}

// Wedge replaces m with m∧o.
func (m *Multivector) Wedge(o *Multivector) error {
	out, err := m.WedgeProduct(o)
	if err != nil {
		return err
	}
	m.coeffs = out.coeffs

	return nil
}
