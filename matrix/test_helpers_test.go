// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the test files.
//   • Keep fixture shapes named by their Dim types so type errors surface here.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// D20 is a caller-defined extent, exercising Dim types outside D1..D16.
type D20 struct{}

func (D20) Extent() int { return 20 }

// badDim reports a non-positive extent; constructing with it must panic.
type badDim struct{}

func (badDim) Extent() int { return 0 }

// seq returns 0, 1, ..., n-1 as T.
func seq[T matrix.Integer | matrix.Float](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}

	return out
}

// mustNew builds a matrix or fails the test immediately.
func mustNew[T matrix.Number, R, C matrix.Dim](t *testing.T, values ...T) *matrix.Fixed[T, R, C] {
	t.Helper()
	m, err := matrix.New[T, R, C](values...)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Number, R, C matrix.Dim](t *testing.T, m *matrix.Fixed[T, R, C], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// left32 and right24 are the 3×2 and 2×4 operands of the reference product.
func left32(t *testing.T) *matrix.Fixed[int, matrix.D3, matrix.D2] {
	t.Helper()
	return mustNew[int, matrix.D3, matrix.D2](t,
		0, 1,
		2, 3,
		4, 5,
	)
}

func right24(t *testing.T) *matrix.Fixed[int, matrix.D2, matrix.D4] {
	t.Helper()
	return mustNew[int, matrix.D2, matrix.D4](t,
		0, 1, 2, 3,
		4, 5, 6, 7,
	)
}
