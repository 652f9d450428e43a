// Package combinatorics holds the small counting and bit-twiddling primitives
// the Clifford algebra engine is built on.
//
// 🚀 What lives here?
//
//	• Binomial   — C(n,k), the number of basis blades of grade k in n dimensions
//	• CountBits  — population count, i.e. the grade of a basis-blade bitmask
//	• LeastSignificantBit / MostSignificantBit — bit positions, -1 for zero
//	• NextCombination — classic "next k-subset in lexicographic order" step
//
// All functions are pure: no state, no allocation, safe for concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/clifford/combinatorics"
//
//	n := combinatorics.Binomial(5, 2)               // 10 bivectors in 5D
//	g := combinatorics.CountBits(0b1011)            // grade 3
//	b := combinatorics.LeastSignificantBit(0b1000)  // 3
//
// Complexity:
//
//   - Binomial: O(min(k, n-k))
//   - bit primitives: O(1) (hardware intrinsics via math/bits)
//   - NextCombination: O(k)
package combinatorics
