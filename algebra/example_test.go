package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/clifford/algebra"
)

// ExampleMultivector_Product multiplies two basis vectors of the plane.
func ExampleMultivector_Product() {
	r2, _ := algebra.NewSpace(2, 0, 0)
	e1, _ := algebra.NewBlade(r2, algebra.E1, 1)
	e2, _ := algebra.NewBlade(r2, algebra.E2, 1)

	e12, _ := e1.Product(e2)
	e21, _ := e2.Product(e1)
	square, _ := e12.Product(e12)

	fmt.Println(e12)
	fmt.Println(e21)
	fmt.Println(square)
	// Output:
	// 1 e1e2 ∈ Space#2.0.0
	// -1 e1e2 ∈ Space#2.0.0
	// -1 ∈ Space#2.0.0
}

// ExampleNewSpace shows complex and dual numbers as one-dimensional algebras.
func ExampleNewSpace() {
	complexSpace, _ := algebra.NewSpace(0, 1, 0)
	dualSpace, _ := algebra.NewSpace(0, 0, 1)

	for _, s := range []*algebra.Space{complexSpace, dualSpace} {
		z, _ := algebra.NewMultivectorFrom(s, []float64{1, 2})
		sq, _ := z.Product(z)
		fmt.Println(sq)
	}
	// Output:
	// -3 + 4 e1 ∈ Space#0.1.0
	// 1 + 4 e1 ∈ Space#0.0.1
}

// ExampleMultivector_Reversion rotates a vector by 90° with a rotor.
func ExampleMultivector_Reversion() {
	r2, _ := algebra.NewSpace(2, 0, 0)
	half := 0.7071067811865476
	rotor, _ := algebra.NewMultivectorFrom(r2, []float64{half, 0, 0, -half})
	v, _ := algebra.NewBlade(r2, algebra.E1, 1)

	rv, _ := rotor.Product(v)
	rotated, _ := rv.Product(rotor.Reversion())
	y, _ := rotated.At(algebra.E2)
	fmt.Printf("%.3f\n", y)
	// Output:
	// 1.000
}

// ExampleMultivector_GetGrade splits a multivector by grade.
func ExampleMultivector_GetGrade() {
	r3, _ := algebra.NewSpace(3, 0, 0)
	m, _ := algebra.NewMultivectorFrom(r3, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	for k := 0; k <= r3.Dimension(); k++ {
		p, _ := m.GetGrade(k)
		fmt.Println(k, p.Values())
	}
	// Output:
	// 0 [1]
	// 1 [2 3 5]
	// 2 [4 6 7]
	// 3 [8]
}

// ExampleMatrix_Apply projects a plane vector into space.
func ExampleMatrix_Apply() {
	r2, _ := algebra.NewSpace(2, 0, 0)
	r3, _ := algebra.NewSpace(3, 0, 0)
	proj, _ := algebra.NewMatrixFrom(r2, r3, [][]float64{{1, 0}, {0, 1}, {2, 3}})
	v, _ := algebra.NewVectorFrom(r2, []float64{1, 2})

	w, _ := proj.Apply(v)
	fmt.Println(w)
	// Output:
	// 1 e1 + 2 e2 + 8 e3 ∈ Space#3.0.0
}
