// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/clifford/combinatorics"
)

// Basis blade bitmasks for the first six basis vectors. E13 is e1∧e3, and so on.
const (
	// Scalar is the grade-0 blade.
	Scalar uint32 = 0

	// Grade 1.
	E1 uint32 = 0b1
	E2 uint32 = 0b10
	E3 uint32 = 0b100
	E4 uint32 = 0b1000
	E5 uint32 = 0b10000
	E6 uint32 = 0b100000

	// Grade 2.
	E12 uint32 = 0b11
	E13 uint32 = 0b101
	E14 uint32 = 0b1001
	E15 uint32 = 0b10001
	E16 uint32 = 0b100001
	E23 uint32 = 0b110
	E24 uint32 = 0b1010
	E25 uint32 = 0b10010
	E26 uint32 = 0b100010
	E34 uint32 = 0b1100
	E35 uint32 = 0b10100
	E36 uint32 = 0b100100
	E45 uint32 = 0b11000
	E46 uint32 = 0b101000
	E56 uint32 = 0b110000

	// Grade 3.
	E123 uint32 = 0b111
	E124 uint32 = 0b1011
	E125 uint32 = 0b10011
	E126 uint32 = 0b100011
	E134 uint32 = 0b1101
	E135 uint32 = 0b10101
	E136 uint32 = 0b100101
	E145 uint32 = 0b11001
	E146 uint32 = 0b101001
	E156 uint32 = 0b110001
	E234 uint32 = 0b1110
	E235 uint32 = 0b10110
	E236 uint32 = 0b100110
	E245 uint32 = 0b11010
	E246 uint32 = 0b101010
	E256 uint32 = 0b110010
	E345 uint32 = 0b11100
	E346 uint32 = 0b101100
	E356 uint32 = 0b110100
	E456 uint32 = 0b111000

	// Grade 4.
	E1234 uint32 = 0b1111
	E1235 uint32 = 0b10111
	E1236 uint32 = 0b100111
	E1245 uint32 = 0b11011
	E1246 uint32 = 0b101011
	E1256 uint32 = 0b110011
	E1345 uint32 = 0b11101
	E1346 uint32 = 0b101101
	E1356 uint32 = 0b110101
	E1456 uint32 = 0b111001
	E2345 uint32 = 0b11110
	E2346 uint32 = 0b101110
	E2356 uint32 = 0b110110
	E2456 uint32 = 0b111010
	E3456 uint32 = 0b111100

	// Grade 5.
	E12345 uint32 = 0b11111
	E12346 uint32 = 0b101111
	E12356 uint32 = 0b110111
	E12456 uint32 = 0b111011
	E13456 uint32 = 0b111101
	E23456 uint32 = 0b111110

	// Grade 6.
	E123456 uint32 = 0b111111
)

// Blade returns the bitmask of the blade spanned by the given 1-based basis
// vector numbers, in any order: Blade(3, 1) == E13. With no numbers it
// returns the scalar blade.
//
// Errors: ErrOutOfRange for a number outside [1, MaxDimension],
// ErrDuplicateBasis when a number repeats.
func Blade(numbers ...int) (uint32, error) {
	var mask uint32
	for _, n := range numbers {
		if n < 1 || n > MaxDimension {
			return 0, algebraErrorf("Blade", fmt.Errorf("%w: basis vector number %d not in [1, %d]",
				ErrOutOfRange, n, MaxDimension))
		}
		bit := uint32(1) << uint(n-1)
		if mask&bit != 0 {
			return 0, algebraErrorf("Blade", fmt.Errorf("%w: e%d", ErrDuplicateBasis, n))
		}
		mask |= bit
	}

	return mask, nil
}

// Grade returns the grade of a blade bitmask.
func Grade(index uint32) int {
	return combinatorics.CountBits(uint64(index))
}
