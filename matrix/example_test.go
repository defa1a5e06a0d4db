package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixmat/matrix"
)

// ExampleMul multiplies a 3×2 by a 2×4 matrix. Swapping the operands
// would not compile, since a D4 column type cannot meet a D3 row type.
func ExampleMul() {
	a := matrix.MustNew[int, matrix.D3, matrix.D2](
		0, 1,
		2, 3,
		4, 5,
	)
	b := matrix.MustNew[int, matrix.D2, matrix.D4](
		0, 1, 2, 3,
		4, 5, 6, 7,
	)

	p := matrix.Mul(a, b)
	fmt.Println(p)

	// Output:
	// 4,5,6,7
	// 12,17,22,27
	// 20,29,38,47
}

// ExampleNew shows sequence construction and its failure mode.
func ExampleNew() {
	m, err := matrix.New[float64, matrix.D2, matrix.D2](1, 2, 3, 4)
	if err != nil {
		panic(err)
	}
	v, _ := m.At(1, 0)
	fmt.Println(v)

	_, err = matrix.New[float64, matrix.D2, matrix.D2](1, 2, 3)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	_, err = m.At(2, 0)
	fmt.Println(errors.Is(err, matrix.ErrOutOfRange))

	// Output:
	// 3
	// true
	// true
}

// ExampleFixed_Add shows that arithmetic returns new matrices.
func ExampleFixed_Add() {
	a := matrix.MustNew[int, matrix.D2, matrix.D2](1, 2, 3, 4)
	b := a.Add(a).AddScalar(1)

	fmt.Println(b)
	fmt.Println(a)

	// Output:
	// 3,5
	// 7,9
	// 1,2
	// 3,4
}

// ExampleFixed_Format renders with a custom delimiter and verb.
func ExampleFixed_Format() {
	m := matrix.MustNew[float64, matrix.D2, matrix.D3](1, 2, 3, 4, 5, 6)
	fmt.Println(m.Format(matrix.WithDelimiter(" "), matrix.WithVerb("%.1f")))

	// Output:
	// 1.0 2.0 3.0
	// 4.0 5.0 6.0
}

// ExampleFromDense converts runtime-shaped data into a Fixed matrix.
func ExampleFromDense() {
	d, _ := matrix.NewDenseFrom(2, 3, []int{1, 2, 3, 4, 5, 6})

	_, err := matrix.FromDense[int, matrix.D3, matrix.D2](d)
	fmt.Println(errors.Is(err, matrix.ErrShapeMismatch))

	m, err := matrix.FromDense[int, matrix.D2, matrix.D3](d)
	fmt.Println(err == nil, m.Rows(), m.Cols())

	// Output:
	// true
	// true 2 3
}
