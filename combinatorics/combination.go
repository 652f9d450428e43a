// SPDX-License-Identifier: MIT

package combinatorics

// FirstCombination fills idx with the lexicographically smallest combination
// 0, 1, ..., len(idx)-1.
func FirstCombination(idx []int) {
	for i := range idx {
		idx[i] = i
	}
}

// NextCombination advances idx, an ascending k-subset of {0, ..., n-1} with
// k = len(idx), to its lexicographic successor in place.
//
// It returns false, leaving idx unchanged, once idx already holds the last
// combination {n-k, ..., n-1}. The empty combination (k == 0) has no
// successor.
//
// Algorithm:
//  1. Scan from the rightmost position j towards the left for the first index
//     that is not yet at its ceiling n-k+j.
//  2. Increment it and reset every index to its right to the smallest
//     ascending run that follows it.
//
// Complexity: O(k).
func NextCombination(idx []int, n int) bool {
	k := len(idx)
	for j := k - 1; j >= 0; j-- {
		if idx[j] >= n-k+j {
			continue // already at its ceiling
		}
		idx[j]++
		for l := j + 1; l < k; l++ {
			idx[l] = idx[l-1] + 1
		}

		return true
	}

	return false
}

// Mask packs an ascending combination of bit positions into a bitmask.
func Mask(idx []int) uint64 {
	var m uint64
	for _, p := range idx {
		m |= 1 << uint(p)
	}

	return m
}
