package algebra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture spaces and maps shared by the matrix tests.
func matrixFixtures(t *testing.T) (r2, r3 *algebra.Space, a2, b2, proj *algebra.Matrix) {
	t.Helper()
	r2, r3 = newSpace(t, 2, 0, 0), newSpace(t, 3, 0, 0)

	var err error
	a2, err = algebra.NewMatrixFrom(r2, r2, [][]float64{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)
	b2, err = algebra.NewMatrixFrom(r2, r2, [][]float64{
		{2, -3},
		{1, 0},
	})
	require.NoError(t, err)
	proj, err = algebra.NewMatrixFrom(r2, r3, [][]float64{
		{1, 0},
		{0, 1},
		{2, 3},
	})
	require.NoError(t, err)

	return r2, r3, a2, b2, proj
}

func TestNewMatrixFrom_Shape(t *testing.T) {
	r2, r3 := newSpace(t, 2, 0, 0), newSpace(t, 3, 0, 0)

	_, err := algebra.NewMatrixFrom(r2, r3, [][]float64{{1, 0}, {0, 1}})
	require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
	var de *algebra.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Expected)
	assert.Equal(t, 2, de.Actual)

	_, err = algebra.NewMatrixFrom(r2, r3, [][]float64{{1, 0}, {0, 1, 2}, {0, 0}})
	assert.ErrorIs(t, err, algebra.ErrDimensionMismatch)

	m, err := algebra.NewMatrix(r2, r3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.RowCount())
	assert.Equal(t, 2, m.ColumnCount())
	assert.True(t, m.Source().Equal(r2))
	assert.True(t, m.Target().Equal(r3))
}

func TestMatrix_AtSet(t *testing.T) {
	_, _, _, b2, _ := matrixFixtures(t)

	v, err := b2.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)

	require.NoError(t, b2.Set(1, 1, 5))
	v, err = b2.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	_, err = b2.At(2, 0)
	assert.ErrorIs(t, err, algebra.ErrOutOfRange)
	assert.ErrorIs(t, b2.Set(0, -1, 1), algebra.ErrOutOfRange)
}

func TestMatrix_Apply(t *testing.T) {
	r2, r3, a2, _, proj := matrixFixtures(t)
	v, err := algebra.NewVectorFrom(r2, []float64{1, 2})
	require.NoError(t, err)

	got, err := proj.Apply(v)
	require.NoError(t, err)
	assert.True(t, got.Space().Equal(r3))
	assert.Equal(t, []float64{1, 2, 8}, got.Values())

	got, err = a2.Apply(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, got.Values())

	_, err = proj.Apply(got.Clone())
	require.NoError(t, err)
	_, err = proj.Apply(sampleVector(t, r3, 1))
	assert.ErrorIs(t, err, algebra.ErrSpaceMismatch)
}

func TestMatrix_Compose(t *testing.T) {
	r2, r3, a2, b2, proj := matrixFixtures(t)

	ab, err := a2.Compose(b2)
	require.NoError(t, err)
	want, err := algebra.NewMatrixFrom(r2, r2, [][]float64{
		{1, 0},
		{2, -3},
	})
	require.NoError(t, err)
	assert.True(t, ab.Equal(want), "got\n%v", ab)

	pa, err := proj.Compose(a2)
	require.NoError(t, err)
	assert.True(t, pa.Source().Equal(r2))
	assert.True(t, pa.Target().Equal(r3))
	wantPA, err := algebra.NewMatrixFrom(r2, r3, [][]float64{
		{0, 1},
		{1, 0},
		{3, 2},
	})
	require.NoError(t, err)
	assert.True(t, pa.Equal(wantPA))

	_, err = a2.Compose(proj)
	assert.ErrorIs(t, err, algebra.ErrSpaceMismatch)

	// applying the composition equals applying one map after the other
	v := sampleVector(t, r2, 2)
	step, err := a2.Apply(v)
	require.NoError(t, err)
	step, err = proj.Apply(step)
	require.NoError(t, err)
	direct, err := pa.Apply(v)
	require.NoError(t, err)
	assert.True(t, direct.ApproxEqual(step))
}

func TestMatrix_Elementwise(t *testing.T) {
	_, _, a2, b2, proj := matrixFixtures(t)

	sum := a2.Clone()
	require.NoError(t, sum.Add(b2))
	assert.Equal(t, "[2, -2]\n[2, 0]\n", sum.String())

	require.NoError(t, sum.Subtract(b2))
	assert.True(t, sum.Equal(a2))

	sum.Negate()
	assert.Equal(t, "[-0, -1]\n[-1, -0]\n", sum.String())

	assert.ErrorIs(t, a2.Add(proj), algebra.ErrSpaceMismatch)
	assert.ErrorIs(t, a2.Subtract(nil), algebra.ErrNilOperand)

	require.NoError(t, sum.Copy(b2))
	assert.True(t, sum.ApproxEqual(b2))
	assert.False(t, sum.Equal(proj))
}

func TestMatrix_RowsAndColumns(t *testing.T) {
	r2, r3, _, _, proj := matrixFixtures(t)

	row, err := proj.Row(2)
	require.NoError(t, err)
	assert.True(t, row.Space().Equal(r2))
	assert.Equal(t, []float64{2, 3}, row.Values())

	col, err := proj.Column(1)
	require.NoError(t, err)
	assert.True(t, col.Space().Equal(r3))
	assert.Equal(t, []float64{0, 1, 3}, col.Values())

	newRow, err := algebra.NewVectorFrom(r2, []float64{7, 8})
	require.NoError(t, err)
	require.NoError(t, proj.SetRow(0, newRow))
	newCol, err := algebra.NewVectorFrom(r3, []float64{-1, -2, -3})
	require.NoError(t, err)
	require.NoError(t, proj.SetColumn(0, newCol))
	assert.Equal(t, "[-1, 8]\n[-2, 1]\n[-3, 3]\n", proj.String())

	_, err = proj.Row(3)
	assert.ErrorIs(t, err, algebra.ErrOutOfRange)
	_, err = proj.Column(2)
	assert.ErrorIs(t, err, algebra.ErrOutOfRange)
	assert.ErrorIs(t, proj.SetRow(0, newCol), algebra.ErrSpaceMismatch)
	assert.ErrorIs(t, proj.SetColumn(0, newRow), algebra.ErrSpaceMismatch)
	assert.ErrorIs(t, proj.SetRow(0, nil), algebra.ErrNilOperand)
}

func TestNewIdentity(t *testing.T) {
	r3 := newSpace(t, 3, 0, 0)
	id, err := algebra.NewIdentity(r3)
	require.NoError(t, err)

	v := sampleVector(t, r3, 1)
	got, err := id.Apply(v)
	require.NoError(t, err)
	assert.True(t, got.Equal(v))

	c := id.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	x, err := id.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}
