// SPDX-License-Identifier: MIT

package approx

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether a and b are approximately equal under the policy
// built from opts (see New). It returns false whenever either input is NaN.
func Equal(a, b float64, opts ...Option) bool {
	return gatherOptions(opts...).Equal(a, b)
}

// Equal reports whether a and b pass at least one enabled test of o.
//
// Order of tests: absolute, relative, ULP. Infinities of the same sign are
// equal (a == b short-circuits inside every test).
//
// Complexity: O(1).
func (o Options) Equal(a, b float64) bool {
	// NaN never approximately equals anything.
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if o.hasDelta && scalar.EqualWithinAbs(a, b, o.delta) {
		return true
	}
	if o.hasRelDelta && scalar.EqualWithinRel(a, b, o.relDelta) {
		return true
	}
	if o.hasULPs && scalar.EqualWithinULP(a, b, uint(o.ulps)) {
		return true
	}

	return false
}

// Zero reports whether v is approximately zero under o.
func (o Options) Zero(v float64) bool {
	return o.Equal(v, 0)
}
