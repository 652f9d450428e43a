// SPDX-License-Identifier: MIT

package algebra

import (
	"strconv"
	"strings"
)

// String renders m for debugging as a sum of non-zero terms in increasing
// grade, then ordinal, followed by the owning space:
//
//	4 + 3 e1 + 2 e1e2 ∈ Space#3.0.0
//
// The zero multivector renders as "0 ∈ Space#…". Not a storage format.
func (m *Multivector) String() string {
	var sb strings.Builder
	for _, table := range m.space.bladeIndex {
		for _, index := range table {
			writeTerm(&sb, index, m.coeffs.At(int(index)))
		}
	}
	finishTerms(&sb, m.space)

	return sb.String()
}

// writeTerm appends "v e1e3" (or "v" for the scalar) unless v is zero.
func writeTerm(sb *strings.Builder, index uint32, v float64) {
	if v == 0 {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString(" + ")
	}
	sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	if index != 0 {
		sb.WriteByte(' ')
		sb.WriteString(BladeName(index))
	}
}

// finishTerms appends the "0" placeholder when nothing was written and the
// space tag.
func finishTerms(sb *strings.Builder, s *Space) {
	if sb.Len() == 0 {
		sb.WriteByte('0')
	}
	sb.WriteString(" ∈ ")
	sb.WriteString(s.String())
}

// BladeName renders a blade bitmask as its basis vectors, e.g. 0b101 → "e1e3".
// The scalar blade renders as "1".
func BladeName(index uint32) string {
	if index == 0 {
		return "1"
	}
	var sb strings.Builder
	for j := 1; index != 0; j++ {
		if index&1 != 0 {
			sb.WriteByte('e')
			sb.WriteString(strconv.Itoa(j))
		}
		index >>= 1
	}

	return sb.String()
}
