package combinatorics_test

import (
	"testing"

	"github.com/katalvlaran/clifford/combinatorics"
	"github.com/stretchr/testify/assert"
)

// TestBinomial_Table checks a handful of well-known coefficients.
func TestBinomial_Table(t *testing.T) {
	cases := []struct {
		n, k, want int
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{5, 2, 10},
		{9, 2, 36},
		{9, 4, 126},
		{30, 15, 155117520},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, combinatorics.Binomial(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
}

// TestBinomial_OutOfDomain verifies the zero convention instead of a panic.
func TestBinomial_OutOfDomain(t *testing.T) {
	assert.Equal(t, 0, combinatorics.Binomial(3, 4))
	assert.Equal(t, 0, combinatorics.Binomial(3, -1))
	assert.Equal(t, 0, combinatorics.Binomial(-1, 0))
}

// TestBinomial_RowSum verifies sum_k C(n,k) == 2^n, the multivector length.
func TestBinomial_RowSum(t *testing.T) {
	for n := 0; n <= 30; n++ {
		sum := 0
		for k := 0; k <= n; k++ {
			sum += combinatorics.Binomial(n, k)
		}
		assert.Equal(t, 1<<uint(n), sum, "row %d", n)
	}
}
