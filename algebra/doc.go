// Package algebra implements real Clifford algebras Cl(p,q,r).
//
// A Space fixes the signature: the first p basis vectors square to +1, the
// next q to -1 and the last r to 0. Basis blades are addressed by bitmask
// (bit i = basis vector e(i+1)); within a grade they are also numbered by an
// ordinal following the lexicographic order of their basis vectors. The Space
// owns the tables translating between the two, built once in NewSpace.
//
// Element types:
//
//	Multivector — 2^n coefficients, dense or sparse (WithStorage)
//	PureGrade   — the C(n,k) coefficients of one grade k
//	Vector      — PureGrade of grade 1, with Dot and Transform
//	Matrix      — linear map from one space's vectors to another's
//
// Binary operations require both operands to belong to the same algebra,
// i.e. to spaces with equal signatures, and fail with ErrSpaceMismatch
// otherwise. Errors are sentinels matched with errors.Is; typed errors
// (DimensionError, IndexError, GradeError, SpaceMismatchError) expose the
// details through errors.As. Nothing panics on bad input except option
// constructors given nonsensical values.
//
// Products cost O(4^n) on dense storage, which is why the total dimension is
// capped at MaxDimension.
package algebra
