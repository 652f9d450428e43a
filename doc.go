// Package clifford is an in-memory engine for Clifford (geometric) algebras
// over the reals, with mixed signatures: basis vectors may square to +1, -1
// or 0.
//
// 🚀 What is in clifford?
//
//	• Spaces: one algebra per (p,q,r) signature with O(1) blade lookup tables
//	• Multivectors: dense or sparse coefficients, geometric and wedge products
//	• Grades: extraction, injection, involution, reversion, conjugation
//	• Vectors & matrices: dot product and linear maps between vector spaces
//	• Approximate equality by absolute, relative or ULP tolerance
//
// Everything is organized under three subpackages:
//
//	algebra/       — Space, Multivector, PureGrade, Vector, Matrix
//	approx/        — floating-point comparison policies
//	combinatorics/ — binomial coefficients, bit helpers, combination order
//
// Quick example, the plane with e1² = e2² = 1:
//
//	R2, _ := algebra.NewSpace(2, 0, 0)
//	a, _ := algebra.NewBlade(R2, algebra.E1, 1)
//	b, _ := algebra.NewBlade(R2, algebra.E2, 1)
//	ab, _ := a.Product(b) // 1 e1e2
//	ba, _ := b.Product(a) // -1 e1e2
//
// Basis blades are bitmasks: bit i stands for basis vector e(i+1), so
// algebra.E13 == 0b101. A Space is immutable and may be shared freely;
// multivectors, vectors and matrices are mutable and not synchronized.
//
//	go get github.com/katalvlaran/clifford
package clifford
