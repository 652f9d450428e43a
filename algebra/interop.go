// SPDX-License-Identifier: MIT

package algebra

import "gonum.org/v1/gonum/mat"

// VecDense copies v into a gonum column vector. It returns nil for a
// zero-dimensional space, which gonum cannot represent.
func (v *Vector) VecDense() *mat.VecDense {
	if len(v.values) == 0 {
		return nil
	}

	return mat.NewVecDense(len(v.values), v.Values())
}

// VectorFromVec copies a gonum vector into a vector of space.
//
// Errors: ErrNilOperand, ErrNullSpace, ErrDimensionMismatch (*DimensionError)
// when x.Len() != dimension.
func VectorFromVec(space *Space, x mat.Vector) (*Vector, error) {
	const op = "VectorFromVec"
	if x == nil {
		return nil, algebraErrorf(op, ErrNilOperand)
	}
	v, err := NewVector(space)
	if err != nil {
		return nil, err
	}
	if x.Len() != len(v.values) {
		return nil, &DimensionError{Op: op, What: "vector length",
			Expected: len(v.values), Actual: x.Len(), Err: ErrDimensionMismatch}
	}
	for i := range v.values {
		v.values[i] = x.AtVec(i)
	}

	return v, nil
}

// Dense copies m into a gonum dense matrix. It returns nil when either space
// is zero-dimensional.
func (m *Matrix) Dense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// MatrixFromDense copies a gonum matrix, shaped dim(target)×dim(source), into
// a map from source to target.
//
// Errors: ErrNilOperand, ErrNullSpace, ErrDimensionMismatch (*DimensionError).
func MatrixFromDense(source, target *Space, a mat.Matrix) (*Matrix, error) {
	const op = "MatrixFromDense"
	if a == nil {
		return nil, algebraErrorf(op, ErrNilOperand)
	}
	m, err := NewMatrix(source, target)
	if err != nil {
		return nil, err
	}
	r, c := a.Dims()
	if r != m.r {
		return nil, &DimensionError{Op: op, What: "row count", Expected: m.r, Actual: r, Err: ErrDimensionMismatch}
	}
	if c != m.c {
		return nil, &DimensionError{Op: op, What: "column count", Expected: m.c, Actual: c, Err: ErrDimensionMismatch}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}

	return m, nil
}
