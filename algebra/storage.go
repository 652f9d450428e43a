// SPDX-License-Identifier: MIT

package algebra

// StorageKind selects the coefficient container behind a Multivector.
type StorageKind int

const (
	// Dense stores all 2^n coefficients in one flat slice (the default).
	Dense StorageKind = iota

	// Sparse stores only the non-zero coefficients, keyed by blade bitmask.
	Sparse
)

// String implements fmt.Stringer.
func (k StorageKind) String() string {
	switch k {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// Coefficients is the storage policy of a Multivector: a fixed-length array
// of float64 indexed by basis-blade bitmask.
//
// Implementations assume indices are already validated by the caller.
type Coefficients interface {
	// Len is the logical length (2^dimension).
	Len() int
	// At returns the coefficient at index, zero for unstored slots.
	At(index int) float64
	// Set stores v at index.
	Set(index int, v float64)
	// Range calls fn for every stored slot in ascending index order until fn
	// returns false. Dense storage visits every slot.
	Range(fn func(index int, v float64) bool)
	// Apply replaces every slot v with fn(v), including unstored ones.
	Apply(fn func(v float64) float64)
	// Update replaces every stored slot v with fn(index, v). fn must map 0 to 0.
	Update(fn func(index int, v float64) float64)
	// Reset zeroes all slots.
	Reset()
	// Clone returns an independent copy of the same kind.
	Clone() Coefficients
	// Kind reports the storage policy.
	Kind() StorageKind
}

// newCoefficients allocates zeroed storage of the requested kind.
func newCoefficients(kind StorageKind, n int) Coefficients {
	if kind == Sparse {
		return newSparseCoefficients(n)
	}

	return make(denseCoefficients, n)
}

// denseCoefficients is the flat row of 2^n values.
type denseCoefficients []float64

func (d denseCoefficients) Len() int { return len(d) }

func (d denseCoefficients) At(index int) float64 { return d[index] }

func (d denseCoefficients) Set(index int, v float64) { d[index] = v }

func (d denseCoefficients) Range(fn func(index int, v float64) bool) {
	for i, v := range d {
		if !fn(i, v) {
			return
		}
	}
}

func (d denseCoefficients) Apply(fn func(v float64) float64) {
	for i, v := range d {
		d[i] = fn(v)
	}
}

func (d denseCoefficients) Update(fn func(index int, v float64) float64) {
	for i, v := range d {
		d[i] = fn(i, v)
	}
}

func (d denseCoefficients) Reset() {
	for i := range d {
		d[i] = 0
	}
}

func (d denseCoefficients) Clone() Coefficients {
	out := make(denseCoefficients, len(d))
	copy(out, d)

	return out
}

func (d denseCoefficients) Kind() StorageKind { return Dense }
