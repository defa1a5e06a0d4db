// SPDX-License-Identifier: MIT

// Package matrix - Fixed storage (row-major, compile-time shape) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*C + j whose
//     shape (R, C) is part of the type, not runtime state.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: every constructor and operation allocates its own buffer,
//     no two instances ever alias storage.
//
// Complexity quicksheet:
//   - Zeros/New: O(R*C); At/Set: O(1); Clone: O(R*C); Row/Col: O(C)/O(R).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
)

// Fixed is a concrete row-major R×C matrix of T.
//   - R, C are Dim marker types; their extents are fixed for the type.
//   - data is a flat buffer of length R*C in row-major order (offset = i*C + j).
//
// A *Fixed is owned by whoever holds the pointer: copying the pointer shares
// the instance, Clone produces an independent one.
//
// The zero value is ready to use and reads as R×C zeros, exactly like Zeros():
// its buffer is allocated on the first write (Set, Fill).
//
// Read-only use from multiple goroutines is safe. Set is not synchronized.
type Fixed[T Number, R, C Dim] struct {
	data []T // contiguous row-major storage (len == R*C, or nil for the zero value)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Fixed[float64, D2, D2])(nil)

// Zeros returns a new R×C matrix with every element set to T's zero value.
// Complexity: O(R*C) zero-init.
//
// Panics only if R or C reports a non-positive extent (a broken Dim type).
func Zeros[T Number, R, C Dim]() *Fixed[T, R, C] {
	r, c := shapeOf[R, C]()

	return &Fixed[T, R, C]{data: make([]T, r*c)}
}

// New builds an R×C matrix from exactly R*C values in row-major order.
// MAIN DESCRIPTION:
//   - Sequence construction: values[i] lands at row i/C, column i%C.
//
// Implementation:
//   - Stage 1: compare len(values) with R*C; mismatch returns ErrDimensionMismatch.
//   - Stage 2: allocate a fresh buffer and copy values into it.
//
// Behavior highlights:
//   - On failure no instance is returned (nil, err); nothing is half-built.
//   - The caller's slice is copied, never retained.
//
// Errors:
//   - ErrDimensionMismatch when len(values) != R*C.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func New[T Number, R, C Dim](values ...T) (*Fixed[T, R, C], error) {
	r, c := shapeOf[R, C]()
	if len(values) != r*c {
		return nil, fmt.Errorf("%s[%dx%d]: got %d values, want %d: %w",
			ctxNew, r, c, len(values), r*c, ErrDimensionMismatch)
	}
	buf := make([]T, r*c)
	copy(buf, values)

	return &Fixed[T, R, C]{data: buf}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// fixtures and tests where the literal is known to be well-formed.
func MustNew[T Number, R, C Dim](values ...T) *Fixed[T, R, C] {
	m, err := New[T, R, C](values...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromRows builds an R×C matrix from a nested row literal.
// Fails with ErrDimensionMismatch if len(rows) != R or any len(rows[i]) != C.
// Complexity: O(R*C).
func FromRows[T Number, R, C Dim](rows [][]T) (*Fixed[T, R, C], error) {
	r, c := shapeOf[R, C]()
	if len(rows) != r {
		return nil, fmt.Errorf("%s[%dx%d]: got %d rows: %w", ctxFromRows, r, c, len(rows), ErrDimensionMismatch)
	}
	buf := make([]T, r*c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s[%dx%d]: row %d has %d values: %w",
				ctxFromRows, r, c, i, len(rows[i]), ErrDimensionMismatch)
		}
		copy(buf[i*c:(i+1)*c], rows[i])
	}

	return &Fixed[T, R, C]{data: buf}, nil
}

// Rows returns R. Complexity: O(1).
func (m *Fixed[T, R, C]) Rows() int { return extentOf[R]() }

// Cols returns C. Complexity: O(1).
func (m *Fixed[T, R, C]) Cols() int { return extentOf[C]() }

// Shape packs Rows() and Cols() into a single call.
func (m *Fixed[T, R, C]) Shape() (rows, cols int) { return shapeOf[R, C]() }

// Len returns the element count R*C.
func (m *Fixed[T, R, C]) Len() int {
	r, c := shapeOf[R, C]()

	return r * c
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap it with coordinates.
func (m *Fixed[T, R, C]) indexOf(row, col int) (int, error) {
	r, c := shapeOf[R, C]()
	if row < 0 || row >= r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= c {
		return 0, ErrOutOfRange
	}

	return row*c + col, nil
}

// elems returns the row-major buffer for reading. A zero Fixed has none yet
// and reads as R*C zeros; the returned slice must not be written.
func (m *Fixed[T, R, C]) elems() []T {
	if m.data == nil {
		r, c := shapeOf[R, C]()
		return make([]T, r*c)
	}

	return m.data
}

// storage returns the writable buffer, allocating it on first write.
func (m *Fixed[T, R, C]) storage() []T {
	if m.data == nil {
		r, c := shapeOf[R, C]()
		m.data = make([]T, r*c)
	}

	return m.data
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Fixed[T, R, C]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fixedErrorf(ctxAt, row, col, err)
	}
	if m.data == nil {
		var zero T
		return zero, nil
	}

	return m.data[off], nil
}

// Set stores v at (row, col) in place.
// On ErrOutOfRange the matrix is left untouched.
// Complexity: O(1).
func (m *Fixed[T, R, C]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fixedErrorf(ctxSet, row, col, err)
	}
	m.storage()[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Fixed[T, R, C]) Row(i int) ([]T, error) {
	r, c := shapeOf[R, C]()
	if i < 0 || i >= r {
		return nil, fixedErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, c)
	copy(out, m.elems()[i*c:(i+1)*c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Fixed[T, R, C]) Col(j int) ([]T, error) {
	r, c := shapeOf[R, C]()
	if j < 0 || j >= c {
		return nil, fixedErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, r)
	data := m.elems()
	for i := 0; i < r; i++ {
		out[i] = data[i*c+j]
	}

	return out, nil
}

// Values returns a row-major copy of all elements.
// The result can be fed back into New to rebuild an equal matrix.
func (m *Fixed[T, R, C]) Values() []T {
	data := m.elems()
	out := make([]T, len(data))
	copy(out, data)

	return out
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(R*C).
func (m *Fixed[T, R, C]) Clone() *Fixed[T, R, C] {
	data := m.elems()
	cp := make([]T, len(data))
	copy(cp, data)

	return &Fixed[T, R, C]{data: cp}
}

// Fill overwrites every element with v in place.
func (m *Fixed[T, R, C]) Fill(v T) {
	data := m.storage()
	for i := range data {
		data[i] = v
	}
}

// Do visits each element (i, j) in row-major order and calls f(i, j, v).
// Stops early when f returns false. Read-only; allocates nothing unless m is
// the zero value.
func (m *Fixed[T, R, C]) Do(f func(i, j int, v T) bool) {
	_, c := shapeOf[R, C]()
	var i, j int
	for off, v := range m.elems() {
		i, j = off/c, off%c
		if !f(i, j, v) {
			return
		}
	}
}
