package algebra_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signatures exercised by the algebraic law tests.
var lawSignatures = []algebra.Signature{
	{Positive: 3},
	{Positive: 1, Negative: 3},
	{Positive: 2, Negative: 1, Nilpotent: 1},
	{Negative: 2},
}

func TestProduct_Associativity(t *testing.T) {
	for _, sig := range lawSignatures {
		t.Run(sig.String(), func(t *testing.T) {
			s := newSpace(t, sig.Positive, sig.Negative, sig.Nilpotent)
			a, b, c := sample(t, s, 1), sample(t, s, 2), sample(t, s, 3)

			bc, err := b.Product(c)
			require.NoError(t, err)
			left, err := a.Product(bc)
			require.NoError(t, err)

			ab, err := a.Product(b)
			require.NoError(t, err)
			right, err := ab.Product(c)
			require.NoError(t, err)

			assert.True(t, left.ApproxEqual(right, tolerance), "a(bc) = %v\n(ab)c = %v", left, right)
		})
	}
}

func TestProduct_Distributivity(t *testing.T) {
	for _, sig := range lawSignatures {
		t.Run(sig.String(), func(t *testing.T) {
			s := newSpace(t, sig.Positive, sig.Negative, sig.Nilpotent)
			a, b, c := sample(t, s, 4), sample(t, s, 5), sample(t, s, 6)

			bc, err := b.Sum(c)
			require.NoError(t, err)
			left, err := a.Product(bc)
			require.NoError(t, err)

			right, err := a.Product(b)
			require.NoError(t, err)
			require.NoError(t, algebra.MultiplyInto(a, c, right))

			assert.True(t, left.ApproxEqual(right, tolerance))
		})
	}
}

func TestProduct_Units(t *testing.T) {
	s := newSpace(t, 0, 1, 0)
	i, err := algebra.NewBlade(s, algebra.E1, 1)
	require.NoError(t, err)
	sq, err := i.Product(i)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0}, sq.Coefficients(), "complex unit squares to -1")

	d := newSpace(t, 0, 0, 1)
	eps, err := algebra.NewBlade(d, algebra.E1, 1)
	require.NoError(t, err)
	sq, err = eps.Product(eps)
	require.NoError(t, err)
	assert.True(t, sq.IsZero(), "dual unit squares to 0")

	one, err := algebra.NewScalar(s, 1)
	require.NoError(t, err)
	m := sample(t, s, 3)
	p, err := one.Product(m)
	require.NoError(t, err)
	assert.True(t, p.Equal(m))
}

func TestWedge_VectorLaws(t *testing.T) {
	for _, sig := range lawSignatures {
		t.Run(sig.String(), func(t *testing.T) {
			s := newSpace(t, sig.Positive, sig.Negative, sig.Nilpotent)
			av, bv := sampleVector(t, s, 1), sampleVector(t, s, 2)
			a, b := vectorMultivector(av), vectorMultivector(bv)

			ab, err := a.WedgeProduct(b)
			require.NoError(t, err)
			ba, err := b.WedgeProduct(a)
			require.NoError(t, err)
			assert.True(t, ab.ApproxEqual(ba.Negated(), tolerance), "a^b == -(b^a)")

			bb, err := b.WedgeProduct(b)
			require.NoError(t, err)
			assert.True(t, bb.IsZero(tolerance), "b^b == 0")
		})
	}
}

// TestProduct_VectorDecomposition checks a*b == a·b + a^b in a Euclidean
// space, where Dot matches the metric.
func TestProduct_VectorDecomposition(t *testing.T) {
	s := newSpace(t, 4, 0, 0)
	av, bv := sampleVector(t, s, 3), sampleVector(t, s, 4)
	a, b := vectorMultivector(av), vectorMultivector(bv)

	dot, err := av.Dot(bv)
	require.NoError(t, err)
	want, err := a.WedgeProduct(b)
	require.NoError(t, err)
	want.AddScalar(dot)

	got, err := a.Product(b)
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(want, tolerance), "got %v want %v", got, want)
}

func TestWedge_SkipsSharedBasisVectors(t *testing.T) {
	s := newSpace(t, 3, 0, 0)
	e12, err := algebra.NewBlade(s, algebra.E12, 2)
	require.NoError(t, err)
	e23, err := algebra.NewBlade(s, algebra.E23, 3)
	require.NoError(t, err)
	e3, err := algebra.NewBlade(s, algebra.E3, 5)
	require.NoError(t, err)

	w, err := e12.WedgeProduct(e23)
	require.NoError(t, err)
	assert.True(t, w.IsZero())

	w, err = e12.WedgeProduct(e3)
	require.NoError(t, err)
	got, err := w.At(algebra.E123)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

// TestProduct_Euclidean3DScenario covers A=(4,3,5), B=(3.5,0.14,-1/12).
func TestProduct_Euclidean3DScenario(t *testing.T) {
	s := newSpace(t, 3, 0, 0)
	A, err := algebra.NewVectorFrom(s, []float64{4, 3, 5})
	require.NoError(t, err)
	B, err := algebra.NewVectorFrom(s, []float64{3.5, 0.14, -1.0 / 12})
	require.NoError(t, err)

	sum := A.Clone()
	require.NoError(t, sum.Add(B))
	want, err := algebra.NewVectorFrom(s, []float64{7.5, 3.14, 5 - 1.0/12})
	require.NoError(t, err)
	assert.True(t, sum.ApproxEqual(want))

	dot, err := A.Dot(B)
	require.NoError(t, err)
	assert.InDelta(t, 14+0.42-5.0/12, dot, 1e-12)

	w, err := A.Multivector().WedgeProduct(B.Multivector())
	require.NoError(t, err)
	bivector, err := w.GetGrade(2)
	require.NoError(t, err)
	wantBivector, err := algebra.NewPureGradeFrom(s, 2, []float64{
		4*0.14 - 3*3.5,       // e1e2
		4*(-1.0/12) - 5*3.5,  // e1e3
		3*(-1.0/12) - 5*0.14, // e2e3
	})
	require.NoError(t, err)
	assert.True(t, bivector.ApproxEqual(wantBivector, tolerance), "got %v", bivector)
	assert.True(t, w.Involution().ApproxEqual(w, tolerance), "wedge of vectors is a pure bivector")
}

func TestMultiplyInto_Accumulates(t *testing.T) {
	s := newSpace(t, 2, 0, 0)
	a, b := sample(t, s, 1), sample(t, s, 2)
	ab, err := a.Product(b)
	require.NoError(t, err)

	acc := ab.Clone()
	require.NoError(t, algebra.MultiplyInto(a, b, acc))
	assert.True(t, acc.ApproxEqual(ab.Scaled(2), tolerance))

	wacc, err := a.WedgeProduct(b)
	require.NoError(t, err)
	require.NoError(t, algebra.WedgeInto(a, b, wacc))
	w, err := a.WedgeProduct(b)
	require.NoError(t, err)
	assert.True(t, wacc.ApproxEqual(w.Scaled(2), tolerance))
}

// TestMultiplyInto_Aliasing checks that an output aliasing an input sees
// the product of the values it held before the call.
func TestMultiplyInto_Aliasing(t *testing.T) {
	for _, kind := range []algebra.StorageKind{algebra.Dense, algebra.Sparse} {
		t.Run(kind.String(), func(t *testing.T) {
			s := newSpace(t, 3, 0, 0)
			a := sample(t, s, 1, algebra.WithStorage(kind))
			aa, err := a.Product(a)
			require.NoError(t, err)
			want, err := aa.Sum(a)
			require.NoError(t, err)

			require.NoError(t, algebra.MultiplyInto(a, a, a))
			assert.True(t, a.ApproxEqual(want, tolerance))
		})
	}
}

func TestMultiply_InPlace(t *testing.T) {
	s := newSpace(t, 1, 1, 0)
	a, b := sample(t, s, 2), sample(t, s, 3)
	want, err := a.Product(b)
	require.NoError(t, err)
	require.NoError(t, a.Multiply(b))
	assert.True(t, a.Equal(want))

	assert.ErrorIs(t, a.Multiply(nil), algebra.ErrNilOperand)
	assert.ErrorIs(t, a.Wedge(nil), algebra.ErrNilOperand)
}
