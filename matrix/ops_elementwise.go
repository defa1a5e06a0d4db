// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and scalar arithmetic on Fixed matrices.
//   - Every operation returns a NEW matrix; neither the receiver nor the
//     argument is ever written.
//
// Design:
//   - Same-shape checks are done by the compiler: the other operand has the
//     receiver's exact type, so no runtime shape validation exists here.
//   - Two private kernels (ewBinary, ewUnary) hold the only loops; the public
//     methods are one-line compositions over them.
//
// Determinism & Performance:
//   - Single flat pass 0..R*C-1 over row-major buffers; one allocation (the output).

package matrix

// ewBinary computes out[k] = f(a[k], b[k]) into a fresh buffer.
// Time: O(R*C). Space: O(R*C).
func ewBinary[T Number, R, C Dim](a, b *Fixed[T, R, C], f func(x, y T) T) *Fixed[T, R, C] {
	x, y := a.elems(), b.elems()
	out := make([]T, len(x))
	for k := range out {
		out[k] = f(x[k], y[k])
	}

	return &Fixed[T, R, C]{data: out}
}

// ewUnary computes out[k] = f(a[k]) into a fresh buffer.
// Time: O(R*C). Space: O(R*C).
func ewUnary[T Number, R, C Dim](a *Fixed[T, R, C], f func(x T) T) *Fixed[T, R, C] {
	x := a.elems()
	out := make([]T, len(x))
	for k := range out {
		out[k] = f(x[k])
	}

	return &Fixed[T, R, C]{data: out}
}

// Add returns m + other, element-wise.
// Commutative and associative for every Number (modulo float rounding).
func (m *Fixed[T, R, C]) Add(other *Fixed[T, R, C]) *Fixed[T, R, C] {
	return ewBinary(m, other, func(x, y T) T { return x + y })
}

// Sub returns m − other, element-wise. m.Sub(m) is the zero matrix.
func (m *Fixed[T, R, C]) Sub(other *Fixed[T, R, C]) *Fixed[T, R, C] {
	return ewBinary(m, other, func(x, y T) T { return x - y })
}

// Hadamard returns the element-wise product m ⊙ other.
func (m *Fixed[T, R, C]) Hadamard(other *Fixed[T, R, C]) *Fixed[T, R, C] {
	return ewBinary(m, other, func(x, y T) T { return x * y })
}

// AddScalar returns a copy of m with v added to every element.
func (m *Fixed[T, R, C]) AddScalar(v T) *Fixed[T, R, C] {
	return ewUnary(m, func(x T) T { return x + v })
}

// SubScalar returns a copy of m with v subtracted from every element.
func (m *Fixed[T, R, C]) SubScalar(v T) *Fixed[T, R, C] {
	return ewUnary(m, func(x T) T { return x - v })
}

// Scale returns a copy of m with every element multiplied by v.
func (m *Fixed[T, R, C]) Scale(v T) *Fixed[T, R, C] {
	return ewUnary(m, func(x T) T { return x * v })
}

// Map returns a new matrix with out(i,j) = f(i, j, m(i,j)), visiting cells in
// row-major order. m itself is not modified; to change m in place, assign the
// result back or use Set.
func (m *Fixed[T, R, C]) Map(f func(i, j int, v T) T) *Fixed[T, R, C] {
	_, c := shapeOf[R, C]()
	data := m.elems()
	out := make([]T, len(data))
	for k, v := range data {
		out[k] = f(k/c, k%c, v)
	}

	return &Fixed[T, R, C]{data: out}
}
