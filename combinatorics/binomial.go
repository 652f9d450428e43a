// SPDX-License-Identifier: MIT

package combinatorics

import "gonum.org/v1/gonum/stat/combin"

// Binomial returns the binomial coefficient C(n, k), the number of k-element
// subsets of an n-element set.
//
// Out-of-domain arguments (n < 0, k < 0 or k > n) yield 0, which is the
// combinatorial convention and lets callers size grade storage without a
// separate guard. No overflow check is made; the algebra caps n at 30, where
// the largest coefficient C(30,15) fits comfortably in an int.
//
// Complexity: O(min(k, n-k)).
func Binomial(n, k int) int {
	// Stage 1 (Validate): outside the triangle there are no subsets.
	if n < 0 || k < 0 || k > n {
		return 0
	}

	// Stage 2 (Execute): gonum panics only on the cases excluded above.
	return combin.Binomial(n, k)
}
