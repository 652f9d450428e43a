// SPDX-License-Identifier: MIT

package combinatorics

import "math/bits"

// CountBits returns the number of set bits in x.
// For a basis-blade bitmask this is the grade of the blade.
func CountBits(x uint64) int {
	return bits.OnesCount64(x)
}

// LeastSignificantBit returns the zero-based position of the lowest set bit
// of x, or -1 when x == 0.
func LeastSignificantBit(x uint64) int {
	if x == 0 {
		return -1
	}

	return bits.TrailingZeros64(x)
}

// MostSignificantBit returns the zero-based position of the highest set bit
// of x, or -1 when x == 0.
func MostSignificantBit(x uint64) int {
	if x == 0 {
		return -1
	}

	return 63 - bits.LeadingZeros64(x)
}

// ClearLowestBit returns x with its lowest set bit cleared (x & (x-1)).
func ClearLowestBit(x uint64) uint64 {
	return x & (x - 1)
}
