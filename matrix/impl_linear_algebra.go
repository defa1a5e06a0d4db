// SPDX-License-Identifier: MIT
// Package matrix provides the shape-changing linear-algebra kernels on Fixed:
// matrix product, transpose, identity and matrix-vector product.
//
// Purpose:
//   - Let the compiler check inner dimensions: Mul only accepts an R×C left
//     operand with a C×N right operand and yields R×N.
//   - Keep loops deterministic (fixed i→k→j order) over flat row-major buffers.
//
// Notes:
//   - Go methods cannot declare type parameters of their own, so operations
//     introducing a new extent (Mul's N) or swapping extents (Transpose) are
//     package functions rather than methods.

package matrix

import "fmt"

const (
	opMatVec = "MatVec"
)

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Standard row-by-column product: out(r,n) = Σ_c a(r,c) * b(c,n).
//
// Implementation:
//   - Stage 1: allocate a zeroed R×N result (every accumulator starts at T's zero).
//   - Stage 2: i→k→j loop; a(i,k) is loaded once per k and streamed across row k of b.
//
// Behavior highlights:
//   - Shape compatibility is a compile-time property: passing a b whose row
//     type differs from a's column type is a type error, not a runtime one.
//   - Neither operand is written; a and b may be the same instance for square shapes.
//
// Complexity:
//   - Time O(R*C*N), Space O(R*N).
func Mul[T Number, R, C, N Dim](a *Fixed[T, R, C], b *Fixed[T, C, N]) *Fixed[T, R, N] {
	rows, inner := shapeOf[R, C]()
	cols := extentOf[N]()
	res := make([]T, rows*cols)
	ad, bd := a.elems(), b.elems()

	var (
		i, k, j                int
		rowOffA, rowOffB, rowR int
		av                     T
	)
	for i = 0; i < rows; i++ {
		rowOffA = i * inner
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = ad[rowOffA+k]
			rowOffB = k * cols
			for j = 0; j < cols; j++ {
				res[rowR+j] += av * bd[rowOffB+j]
			}
		}
	}

	return &Fixed[T, R, N]{data: res}
}

// Transpose returns mᵀ as a new C×R matrix.
// Complexity: O(R*C).
func Transpose[T Number, R, C Dim](m *Fixed[T, R, C]) *Fixed[T, C, R] {
	r, c := shapeOf[R, C]()
	out := make([]T, r*c)
	data := m.elems()
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out[j*r+i] = data[base+j]
		}
	}

	return &Fixed[T, C, R]{data: out}
}

// Identity returns the N×N identity: ones on the diagonal, zeros elsewhere.
// It is the neutral element of Mul: Mul(Identity[T, R](), a) equals a.
func Identity[T Number, N Dim]() *Fixed[T, N, N] {
	m := Zeros[T, N, N]()
	n := extentOf[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// MatVec returns y = m·x for a plain slice x of length C.
// x is a runtime value, so its length is checked: ErrDimensionMismatch otherwise.
// Complexity: O(R*C).
func MatVec[T Number, R, C Dim](m *Fixed[T, R, C], x []T) ([]T, error) {
	r, c := shapeOf[R, C]()
	if len(x) != c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, want %d: %w", len(x), c, ErrDimensionMismatch))
	}
	y := make([]T, r)
	data := m.elems()
	for i := 0; i < r; i++ {
		var sum T
		base := i * c
		for j := 0; j < c; j++ {
			sum += data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
