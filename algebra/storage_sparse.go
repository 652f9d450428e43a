// SPDX-License-Identifier: MIT

package algebra

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// sparseCoefficients keeps only non-zero slots. The roaring bitmap is the
// ordered set of occupied indices; values holds their coefficients.
//
// Invariant: occupied.Contains(i) ⇔ values[i] exists ⇔ values[i] != 0.
type sparseCoefficients struct {
	n        int
	values   map[uint32]float64
	occupied *roaring.Bitmap
}

func newSparseCoefficients(n int) *sparseCoefficients {
	return &sparseCoefficients{
		n:        n,
		values:   make(map[uint32]float64),
		occupied: roaring.New(),
	}
}

func (s *sparseCoefficients) Len() int { return s.n }

func (s *sparseCoefficients) At(index int) float64 {
	return s.values[uint32(index)]
}

// Set stores v, or frees the slot when v is zero.
func (s *sparseCoefficients) Set(index int, v float64) {
	key := uint32(index)
	if v == 0 {
		if s.occupied.Contains(key) {
			delete(s.values, key)
			s.occupied.Remove(key)
		}

		return
	}
	s.values[key] = v
	s.occupied.Add(key)
}

func (s *sparseCoefficients) Range(fn func(index int, v float64) bool) {
	it := s.occupied.Iterator()
	for it.HasNext() {
		key := it.Next()
		if !fn(int(key), s.values[key]) {
			return
		}
	}
}

// Apply fills unstored slots too when fn does not keep zero at zero
// (e.g. dividing by 0 turns every empty slot into NaN).
func (s *sparseCoefficients) Apply(fn func(v float64) float64) {
	keys := s.occupied.ToArray()
	filler := fn(0)
	if filler != 0 || math.IsNaN(filler) {
		for i := 0; i < s.n; i++ {
			if !s.occupied.Contains(uint32(i)) {
				s.Set(i, filler)
			}
		}
	}
	for _, key := range keys {
		s.Set(int(key), fn(s.values[key]))
	}
}

func (s *sparseCoefficients) Update(fn func(index int, v float64) float64) {
	// Snapshot first: Set may remove entries while we walk.
	for _, key := range s.occupied.ToArray() {
		s.Set(int(key), fn(int(key), s.values[key]))
	}
}

func (s *sparseCoefficients) Reset() {
	s.values = make(map[uint32]float64)
	s.occupied.Clear()
}

func (s *sparseCoefficients) Clone() Coefficients {
	values := make(map[uint32]float64, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}

	return &sparseCoefficients{n: s.n, values: values, occupied: s.occupied.Clone()}
}

func (s *sparseCoefficients) Kind() StorageKind { return Sparse }
