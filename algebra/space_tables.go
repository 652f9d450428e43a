// SPDX-License-Identifier: MIT

package algebra

import "github.com/katalvlaran/clifford/combinatorics"

// buildTables fills bladeIndex and bladeBasis.
//
// For every grade k the ascending k-subsets of basis-vector positions are
// enumerated in lexicographic order; the n-th subset gets ordinal n and the
// bitmask with exactly those bits set. The two tables are mutual inverses.
//
// Not safe for concurrent use; runs once inside NewSpace.
func (s *Space) buildTables() {
	n := s.dim
	s.bladeIndex = make([][]uint32, n+1)
	s.bladeBasis = make([]bladeCoord, 1<<uint(n))

	idx := make([]int, n) // positions of the basis vectors of the current blade
	for grade := 0; grade <= n; grade++ {
		table := make([]uint32, combinatorics.Binomial(n, grade))
		comb := idx[:grade]
		combinatorics.FirstCombination(comb)

		for ordinal := range table {
			mask := uint32(combinatorics.Mask(comb))
			table[ordinal] = mask
			s.bladeBasis[mask] = bladeCoord{grade: uint8(grade), ordinal: uint32(ordinal)}
			combinatorics.NextCombination(comb, n)
		}
		s.bladeIndex[grade] = table
	}
}

// IndexFromBladeBasis returns the bitmask of the blade with the given grade
// and ordinal.
//
// Errors: ErrNullSpace, ErrOutOfRange (*IndexError) for a bad grade or ordinal.
// Complexity: O(1).
func (s *Space) IndexFromBladeBasis(grade, ordinal int) (uint32, error) {
	const op = "IndexFromBladeBasis"
	if err := validateSpace(op, s); err != nil {
		return 0, err
	}
	if grade < 0 || grade > s.dim {
		return 0, &IndexError{Op: op, What: "grade", Index: grade, Limit: s.dim + 1}
	}
	if ordinal < 0 || ordinal >= len(s.bladeIndex[grade]) {
		return 0, &IndexError{Op: op, What: "ordinal", Index: ordinal, Limit: len(s.bladeIndex[grade])}
	}

	return s.bladeIndex[grade][ordinal], nil
}

// BladeBasisFromIndex returns the (grade, ordinal) coordinates of a bitmask.
//
// Errors: ErrNullSpace, ErrOutOfRange (*IndexError) when index ≥ 2^dimension.
// Complexity: O(1).
func (s *Space) BladeBasisFromIndex(index uint32) (grade, ordinal int, err error) {
	const op = "BladeBasisFromIndex"
	if err = validateSpace(op, s); err != nil {
		return 0, 0, err
	}
	if int(index) >= len(s.bladeBasis) {
		return 0, 0, &IndexError{Op: op, What: "blade index", Index: int(index), Limit: len(s.bladeBasis)}
	}
	c := s.bladeBasis[index]

	return int(c.grade), int(c.ordinal), nil
}

// gradeOf is the unchecked grade lookup used by hot loops.
func (s *Space) gradeOf(index int) int {
	return int(s.bladeBasis[index].grade)
}

// ordinalOf is the unchecked ordinal lookup used by hot loops.
func (s *Space) ordinalOf(index int) int {
	return int(s.bladeBasis[index].ordinal)
}
