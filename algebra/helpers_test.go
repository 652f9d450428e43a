package algebra_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/approx"
	"github.com/stretchr/testify/require"
)

// tolerance used for products, where rounding accumulates.
var tolerance = approx.WithDelta(1e-9)

// newSpace builds a space or fails the test.
func newSpace(tb testing.TB, p, q, r int) *algebra.Space {
	tb.Helper()
	s, err := algebra.NewSpace(p, q, r)
	require.NoError(tb, err)

	return s
}

// sample returns a deterministic, mostly non-zero multivector of s.
// Different seeds give different multivectors.
func sample(tb testing.TB, s *algebra.Space, seed int, opts ...algebra.MultivectorOption) *algebra.Multivector {
	tb.Helper()
	values := make([]float64, s.BladeCount())
	for i := range values {
		values[i] = float64((i*7+seed*5+3)%11) - 5 + 0.25*float64((i+seed)%3)
	}
	m, err := algebra.NewMultivectorFrom(s, values, opts...)
	require.NoError(tb, err)

	return m
}

// sampleVector returns a deterministic vector of s.
func sampleVector(tb testing.TB, s *algebra.Space, seed int) *algebra.Vector {
	tb.Helper()
	values := make([]float64, s.Dimension())
	for i := range values {
		values[i] = float64((i*3+seed*5+1)%7) - 3 + 0.5*float64(seed%2)
	}
	v, err := algebra.NewVectorFrom(s, values)
	require.NoError(tb, err)

	return v
}

// vectorMultivector lifts a vector into a multivector.
func vectorMultivector(v *algebra.Vector) *algebra.Multivector {
	return v.Multivector()
}
