// SPDX-License-Identifier: MIT

package algebra

import "github.com/katalvlaran/clifford/combinatorics"

// BasisVectorSquared returns the square of the basis vector with the given
// zero-based ordinal: +1 within the first p positions, -1 within the next q,
// 0 within the last r.
//
// Errors: ErrNullSpace, ErrOutOfRange when ordinal ∉ [0, dimension).
func (s *Space) BasisVectorSquared(ordinal int) (int, error) {
	const op = "BasisVectorSquared"
	if err := validateSpace(op, s); err != nil {
		return 0, err
	}
	if ordinal < 0 || ordinal >= s.dim {
		return 0, &IndexError{Op: op, What: "basis vector", Index: ordinal, Limit: s.dim}
	}

	return s.vectorSquared(ordinal), nil
}

// vectorSquared assumes 0 ≤ b < dim.
func (s *Space) vectorSquared(b int) int {
	switch {
	case b < s.sig.Positive:
		return 1
	case b < s.sig.Positive+s.sig.Negative:
		return -1
	default:
		return 0
	}
}

// BasisSquared returns the square of an arbitrary basis blade: +1, -1 or 0.
//
// Errors: ErrNullSpace, ErrOutOfRange when index ≥ 2^dimension.
func (s *Space) BasisSquared(index uint32) (int, error) {
	const op = "BasisSquared"
	if err := s.validateBlade(op, index); err != nil {
		return 0, err
	}

	return s.bladeSquared(index), nil
}

// bladeSquared computes the square of a basis blade.
//
// Squaring a blade of grade g takes g(g-1)/2 adjacent swaps, an even number
// exactly when g mod 4 ∈ {0,1}; that fixes the base sign. Each basis vector
// then contributes its own square: a nilpotent one annihilates the blade and
// a negative one flips the sign.
func (s *Space) bladeSquared(index uint32) int {
	sign := 1
	if combinatorics.CountBits(uint64(index))%4 >= 2 {
		sign = -1
	}
	for x := uint64(index); x != 0; x = combinatorics.ClearLowestBit(x) {
		switch s.vectorSquared(combinatorics.LeastSignificantBit(x)) {
		case 0:
			return 0
		case -1:
			sign = -sign
		}
	}

	return sign
}

// BasisMultiply returns the geometric product of two basis blades as the
// resulting bitmask and a sign in {-1, 0, 1}.
//
// Errors: ErrNullSpace, ErrOutOfRange when either bitmask ≥ 2^dimension.
func (s *Space) BasisMultiply(e, f uint32) (uint32, int, error) {
	const op = "BasisMultiply"
	if err := s.validateBlade(op, e); err != nil {
		return 0, 0, err
	}
	if err := s.validateBlade(op, f); err != nil {
		return 0, 0, err
	}
	index, sign := s.multiplyBlades(e, f)

	return index, sign, nil
}

// multiplyBlades moves the basis vectors of f, lowest first, into e.
//
// Every vector of e that lies strictly above the incoming vector b has to be
// passed, one sign flip each. If e already holds b the pair contracts to b's
// square (a nilpotent b zeroes the whole product); otherwise b joins e.
// All vectors of f processed so far sit below b, so the count on the running
// e is exact.
//
// Complexity: O(grade(f)).
func (s *Space) multiplyBlades(e, f uint32) (uint32, int) {
	sign := 1
	acc, rest := uint64(e), uint64(f)
	for rest != 0 {
		b := combinatorics.LeastSignificantBit(rest)
		if combinatorics.CountBits(acc>>uint(b+1))%2 != 0 {
			sign = -sign
		}
		bit := uint64(1) << uint(b)
		if acc&bit != 0 {
			sign *= s.vectorSquared(b)
			if sign == 0 {
				return 0, 0
			}
		}
		acc ^= bit
		rest = combinatorics.ClearLowestBit(rest)
	}

	return uint32(acc), sign
}

// validateBlade checks the space and that index addresses one of its blades.
func (s *Space) validateBlade(op string, index uint32) error {
	if err := validateSpace(op, s); err != nil {
		return err
	}
	if int(index) >= len(s.bladeBasis) {
		return &IndexError{Op: op, What: "blade index", Index: int(index), Limit: len(s.bladeBasis)}
	}

	return nil
}
