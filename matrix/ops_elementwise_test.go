// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_CommutativeAndAssociative(t *testing.T) {
	t.Parallel()

	a := mustNew[int, matrix.D2, matrix.D3](t, 1, -2, 3, 4, 5, -6)
	b := mustNew[int, matrix.D2, matrix.D3](t, 10, 20, 30, 40, 50, 60)
	c := mustNew[int, matrix.D2, matrix.D3](t, 7, 7, 7, 0, 0, 1)

	require.True(t, a.Add(b).Equal(b.Add(a)))
	require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
	require.Equal(t, []int{11, 18, 33, 44, 55, 54}, a.Add(b).Values())
}

func TestSub_SelfIsZero(t *testing.T) {
	t.Parallel()

	a := mustNew[float64, matrix.D3, matrix.D3](t, 1.5, -2, 3, 4, 5e3, -6, 7, 8, 9)
	require.True(t, a.Sub(a).Equal(matrix.Zeros[float64, matrix.D3, matrix.D3]()))

	b := mustNew[float64, matrix.D3, matrix.D3](t, seq[float64](9)...)
	require.Equal(t, []float64{1.5, -3, 1, 1, 4996, -11, 1, 1, 1}, a.Sub(b).Values())
}

func TestScalarOps_Cellwise(t *testing.T) {
	t.Parallel()

	a := mustNew[int, matrix.D2, matrix.D2](t, 3, -1, 0, 8)
	const s = 5

	add, sub, mul := a.AddScalar(s), a.SubScalar(s), a.Scale(s)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v := mustAt(t, a, r, c)
			require.Equal(t, v+s, mustAt(t, add, r, c))
			require.Equal(t, v-s, mustAt(t, sub, r, c))
			require.Equal(t, v*s, mustAt(t, mul, r, c))
		}
	}
}

func TestScalarOps_Identities(t *testing.T) {
	t.Parallel()

	a := mustNew[float32, matrix.D2, matrix.D3](t, 0.5, 1, -2, 3.25, 4, 5)
	require.True(t, a.AddScalar(0).Equal(a))
	require.True(t, a.SubScalar(0).Equal(a))
	require.True(t, a.Scale(1).Equal(a))
	require.True(t, a.Scale(0).Equal(matrix.Zeros[float32, matrix.D2, matrix.D3]()))
}

func TestHadamard(t *testing.T) {
	a := mustNew[int, matrix.D1, matrix.D3](t, 1, 2, 3)
	b := mustNew[int, matrix.D1, matrix.D3](t, 4, 5, 6)
	require.Equal(t, []int{4, 10, 18}, a.Hadamard(b).Values())
}

func TestMap_PassesCoordinates(t *testing.T) {
	a := mustNew[int, matrix.D2, matrix.D2](t, 1, 1, 1, 1)
	got := a.Map(func(i, j, v int) int { return v + 10*i + j })
	require.Equal(t, []int{1, 2, 11, 12}, got.Values())
	require.Equal(t, []int{1, 1, 1, 1}, a.Values())
}

// TestArithmetic_NeverMutatesOperands runs every operation and then checks
// both inputs still hold their original values.
func TestArithmetic_NeverMutatesOperands(t *testing.T) {
	a := mustNew[int, matrix.D2, matrix.D2](t, 1, 2, 3, 4)
	b := mustNew[int, matrix.D2, matrix.D2](t, 5, 6, 7, 8)
	a0, b0 := a.Clone(), b.Clone()

	results := []*matrix.Fixed[int, matrix.D2, matrix.D2]{
		a.Add(b), a.Sub(b), a.Hadamard(b),
		a.AddScalar(3), a.SubScalar(3), a.Scale(3),
		a.Map(func(_, _ int, v int) int { return -v }),
		matrix.Mul(a, b), matrix.Transpose(a),
	}

	require.True(t, a.Equal(a0))
	require.True(t, b.Equal(b0))

	// Results own their storage: writing one does not leak into the operands.
	for _, r := range results {
		r.Fill(0)
	}
	require.True(t, a.Equal(a0))
	require.True(t, b.Equal(b0))
}

// TestAdd_SelfAliasing checks a.Add(a) with the same instance on both sides.
func TestAdd_SelfAliasing(t *testing.T) {
	a := mustNew[int, matrix.D1, matrix.D2](t, 2, 3)
	require.Equal(t, []int{4, 6}, a.Add(a).Values())
	require.Equal(t, []int{2, 3}, a.Values())
}

func TestArithmetic_Complex(t *testing.T) {
	a := mustNew[complex128, matrix.D1, matrix.D2](t, 1+2i, 3-1i)
	b := mustNew[complex128, matrix.D1, matrix.D2](t, 1i, 2)
	require.Equal(t, []complex128{1 + 3i, 5 - 1i}, a.Add(b).Values())
	require.Equal(t, []complex128{-2 + 1i, 6 - 2i}, a.Hadamard(b).Values())
}
