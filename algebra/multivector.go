// SPDX-License-Identifier: MIT

package algebra

// Multivector is a general element of a Clifford algebra: one real
// coefficient per basis blade, indexed by blade bitmask (index 0 is the
// scalar part).
//
// A Multivector is a mutable value holder. In-place methods (Add, Multiply,
// Reverse, ...) change the receiver; their allocating twins (Sum, Product,
// Reversion, ...) leave it untouched. Not safe for concurrent mutation.
type Multivector struct {
	space  *Space
	coeffs Coefficients
}

// NewMultivector returns the zero multivector of space.
//
// Errors: ErrNilOperand, ErrNullSpace.
// Complexity: O(2^n) for dense storage, O(1) for sparse.
func NewMultivector(space *Space, opts ...MultivectorOption) (*Multivector, error) {
	if err := validateSpace("NewMultivector", space); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Multivector{space: space, coeffs: newCoefficients(o.storage, space.BladeCount())}, nil
}

// NewMultivectorFrom copies values (one per blade bitmask) into a new
// multivector of space.
//
// Errors: ErrNilOperand, ErrNullSpace, ErrDimensionMismatch (*DimensionError)
// when len(values) != 2^dimension.
func NewMultivectorFrom(space *Space, values []float64, opts ...MultivectorOption) (*Multivector, error) {
	const op = "NewMultivectorFrom"
	m, err := NewMultivector(space, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != m.coeffs.Len() {
		return nil, &DimensionError{Op: op, What: "coefficient count",
			Expected: m.coeffs.Len(), Actual: len(values), Err: ErrDimensionMismatch}
	}
	for i, v := range values {
		m.coeffs.Set(i, v)
	}

	return m, nil
}

// NewScalar returns the multivector s·1 of space.
func NewScalar(space *Space, s float64, opts ...MultivectorOption) (*Multivector, error) {
	m, err := NewMultivector(space, opts...)
	if err != nil {
		return nil, err
	}
	m.coeffs.Set(0, s)

	return m, nil
}

// NewBlade returns the multivector v·e where e is the blade with the given
// bitmask.
//
// Errors: as NewMultivector, plus ErrOutOfRange for a bitmask ≥ 2^dimension.
func NewBlade(space *Space, index uint32, v float64, opts ...MultivectorOption) (*Multivector, error) {
	m, err := NewMultivector(space, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Set(index, v); err != nil {
		return nil, err
	}

	return m, nil
}

// Space returns the owning algebra.
func (m *Multivector) Space() *Space { return m.space }

// Storage reports the coefficient container in use.
func (m *Multivector) Storage() StorageKind { return m.coeffs.Kind() }

// Len returns 2^dimension.
func (m *Multivector) Len() int { return m.coeffs.Len() }

// At returns the coefficient of the blade with the given bitmask.
func (m *Multivector) At(index uint32) (float64, error) {
	if err := validateIndex("Multivector.At", "blade index", int(index), m.coeffs.Len()); err != nil {
		return 0, err
	}

	return m.coeffs.At(int(index)), nil
}

// Set assigns the coefficient of the blade with the given bitmask.
func (m *Multivector) Set(index uint32, v float64) error {
	if err := validateIndex("Multivector.Set", "blade index", int(index), m.coeffs.Len()); err != nil {
		return err
	}
	m.coeffs.Set(int(index), v)

	return nil
}

// ScalarPart returns the grade-0 coefficient.
func (m *Multivector) ScalarPart() float64 { return m.coeffs.At(0) }

// Coefficients returns a dense copy of all 2^dimension coefficients.
func (m *Multivector) Coefficients() []float64 {
	out := make([]float64, m.coeffs.Len())
	m.coeffs.Range(func(i int, v float64) bool {
		out[i] = v
		return true
	})

	return out
}

// Copy overwrites m with the coefficients of from, keeping m's storage kind.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
func (m *Multivector) Copy(from *Multivector) error {
	if err := validateMultivectors("Multivector.Copy", m, from); err != nil {
		return err
	}
	if m == from {
		return nil
	}
	m.coeffs.Reset()
	from.coeffs.Range(func(i int, v float64) bool {
		m.coeffs.Set(i, v)
		return true
	})

	return nil
}

// Clone returns an independent deep copy sharing only the Space.
func (m *Multivector) Clone() *Multivector {
	return &Multivector{space: m.space, coeffs: m.coeffs.Clone()}
}

// Reset zeroes every coefficient.
func (m *Multivector) Reset() { m.coeffs.Reset() }

// zeroLike allocates a zero multivector with m's space and storage kind.
func (m *Multivector) zeroLike() *Multivector {
	return &Multivector{space: m.space, coeffs: newCoefficients(m.coeffs.Kind(), m.coeffs.Len())}
}
