// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/clifford/approx"
)

// Matrix is a linear map from the vectors of a source space to the vectors
// of a target space, stored row-major in a flat slice: rows = dim(target),
// columns = dim(source).
type Matrix struct {
	source, target *Space
	r, c           int       // rows (target dimension) and columns (source dimension)
	data           []float64 // flat backing storage, length == r*c
}

// matrixErrorf wraps err with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// NewMatrix returns the zero map from source to target.
//
// Errors: ErrNilOperand, ErrNullSpace.
// Complexity: O(r*c).
func NewMatrix(source, target *Space) (*Matrix, error) {
	if err := validateSpace("NewMatrix", source); err != nil {
		return nil, err
	}
	if err := validateSpace("NewMatrix", target); err != nil {
		return nil, err
	}

	return &Matrix{
		source: source, target: target,
		r: target.dim, c: source.dim,
		data: make([]float64, target.dim*source.dim),
	}, nil
}

// NewMatrixFrom copies rows, shaped [dim(target)][dim(source)], into a new
// map from source to target.
//
// Stage 1 (Validate): spaces, row count, every row length.
// Stage 2 (Execute): copy row by row into flat storage.
//
// Errors: as NewMatrix, plus ErrDimensionMismatch (*DimensionError).
func NewMatrixFrom(source, target *Space, rows [][]float64) (*Matrix, error) {
	const op = "NewMatrixFrom"
	m, err := NewMatrix(source, target)
	if err != nil {
		return nil, err
	}
	if len(rows) != m.r {
		return nil, &DimensionError{Op: op, What: "row count", Expected: m.r, Actual: len(rows), Err: ErrDimensionMismatch}
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, &DimensionError{Op: op, What: fmt.Sprintf("row %d length", i),
				Expected: m.c, Actual: len(row), Err: ErrDimensionMismatch}
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewIdentity returns the identity map of space.
func NewIdentity(space *Space) (*Matrix, error) {
	m, err := NewMatrix(space, space)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return m, nil
}

// Source returns the domain space.
func (m *Matrix) Source() *Space { return m.source }

// Target returns the codomain space.
func (m *Matrix) Target() *Space { return m.target }

// RowCount returns dim(target).
func (m *Matrix) RowCount() int { return m.r }

// ColumnCount returns dim(source).
func (m *Matrix) ColumnCount() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a vector of the source space.
func (m *Matrix) Row(i int) (*Vector, error) {
	if err := validateIndex("Matrix.Row", "row", i, m.r); err != nil {
		return nil, err
	}
	v, _ := NewVector(m.source)
	copy(v.values, m.data[i*m.c:(i+1)*m.c])

	return v, nil
}

// SetRow overwrites row i with a vector of the source space.
func (m *Matrix) SetRow(i int, v *Vector) error {
	const op = "Matrix.SetRow"
	if v == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if err := validateIndex(op, "row", i, m.r); err != nil {
		return err
	}
	if err := validateSameSpace(op, m.source, v.space); err != nil {
		return err
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.values)

	return nil
}

// Column returns column j as a vector of the target space.
func (m *Matrix) Column(j int) (*Vector, error) {
	if err := validateIndex("Matrix.Column", "column", j, m.c); err != nil {
		return nil, err
	}
	v, _ := NewVector(m.target)
	for i := 0; i < m.r; i++ {
		v.values[i] = m.data[i*m.c+j]
	}

	return v, nil
}

// SetColumn overwrites column j with a vector of the target space.
func (m *Matrix) SetColumn(j int, v *Vector) error {
	const op = "Matrix.SetColumn"
	if v == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if err := validateIndex(op, "column", j, m.c); err != nil {
		return err
	}
	if err := validateSameSpace(op, m.target, v.space); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v.values[i]
	}

	return nil
}

// validatePair checks that m and o map between the same two spaces.
func (m *Matrix) validatePair(op string, o *Matrix) error {
	if o == nil {
		return algebraErrorf(op, ErrNilOperand)
	}
	if err := validateSameSpace(op, m.source, o.source); err != nil {
		return err
	}

	return validateSameSpace(op, m.target, o.target)
}

// Add performs m += o elementwise.
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
func (m *Matrix) Add(o *Matrix) error {
	if err := m.validatePair("Matrix.Add", o); err != nil {
		return err
	}
	for i, v := range o.data {
		m.data[i] += v
	}

	return nil
}

// Subtract performs m -= o elementwise.
func (m *Matrix) Subtract(o *Matrix) error {
	if err := m.validatePair("Matrix.Subtract", o); err != nil {
		return err
	}
	for i, v := range o.data {
		m.data[i] -= v
	}

	return nil
}

// Negate flips the sign of every element.
func (m *Matrix) Negate() {
	for i := range m.data {
		m.data[i] = -m.data[i]
	}
}

// Apply returns m·v, a vector of the target space.
//
// Errors: ErrNilOperand, ErrSpaceMismatch when v is not in the source space.
// Complexity: O(r*c).
func (m *Matrix) Apply(v *Vector) (*Vector, error) {
	const op = "Matrix.Apply"
	if v == nil {
		return nil, algebraErrorf(op, ErrNilOperand)
	}
	if err := validateSameSpace(op, m.source, v.space); err != nil {
		return nil, err
	}
	out, _ := NewVector(m.target)
	copy(out.values, m.apply(v.values))

	return out, nil
}

// apply computes m·x for len(x) == c.
func (m *Matrix) apply(x []float64) []float64 {
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var sum float64
		for j, a := range row {
			sum += a * x[j]
		}
		y[i] = sum
	}

	return y
}

// Compose returns m·o, the map "o first, then m". Requires
// o.Target() == m.Source().
//
// Errors: ErrNilOperand, ErrSpaceMismatch.
// Complexity: O(r*c*o.c).
func (m *Matrix) Compose(o *Matrix) (*Matrix, error) {
	const op = "Matrix.Compose"
	if o == nil {
		return nil, algebraErrorf(op, ErrNilOperand)
	}
	if err := validateSameSpace(op, m.source, o.target); err != nil {
		return nil, err
	}
	out, _ := NewMatrix(o.source, m.target)
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			a := m.data[i*m.c+k]
			for j := 0; j < o.c; j++ {
				out.data[i*out.c+j] += a * o.data[k*o.c+j]
			}
		}
	}

	return out, nil
}

// Copy overwrites m with the elements of o.
func (m *Matrix) Copy(o *Matrix) error {
	if err := m.validatePair("Matrix.Copy", o); err != nil {
		return err
	}
	copy(m.data, o.data)

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{source: m.source, target: m.target, r: m.r, c: m.c, data: data}
}

// Equal reports exact equality of spaces and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.source.Equal(o.source) || !m.target.Equal(o.target) {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports elementwise approximate equality (see approx.New).
func (m *Matrix) ApproxEqual(o *Matrix, opts ...approx.Option) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !m.source.Equal(o.source) || !m.target.Equal(o.target) {
		return false
	}
	at := func(data []float64) func(int) float64 {
		return func(i int) float64 { return data[i] }
	}

	return approxEqualSlots(len(m.data), at(m.data), at(o.data), approx.New(opts...))
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
