// SPDX-License-Identifier: MIT

// Package matrix - Dense: runtime-shaped bridge.
//
// Purpose:
//   - Hold matrices whose shape is only known at run time (decoded input,
//     user-sized buffers) in the same row-major layout as Fixed.
//   - Convert to and from Fixed, checking the shape at the boundary.
//   - Offer AddDense/SubDense/MulDense for callers that cannot name their
//     shapes statically.
//
// Weaker guarantee:
//   - Fixed rejects incompatible shapes at compile time. Dense can only do so
//     at run time, returning ErrShapeMismatch before any element is touched.
//     Prefer Fixed whenever the shape is known when writing the code.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromDense: O(r*c).

package matrix

import "fmt"

const (
	opAddDense  = "AddDense"
	opSubDense  = "SubDense"
	opMulDense  = "MulDense"
	opFromDense = "FromDense"
)

// Dense is a row-major matrix of T with a runtime shape.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T Number] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of values in row-major order.
// Fails with ErrInvalidDimensions or ErrDimensionMismatch.
func NewDenseFrom[T Number](rows, cols int, values []T) (*Dense[T], error) {
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): got %d values: %w", rows, cols, len(values), ErrDimensionMismatch)
	}
	copy(d.data, values)

	return d, nil
}

// Rows returns the row count. Complexity: O(1).
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the column count. Complexity: O(1).
func (d *Dense[T]) Cols() int { return d.c }

// Shape packs Rows() and Cols() into a single call.
func (d *Dense[T]) Shape() (rows, cols int) { return d.r, d.c }

func (d *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}

	return row*d.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (d *Dense[T]) At(row, col int) (T, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return d.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange, leaving d unchanged.
func (d *Dense[T]) Set(row, col int, v T) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer).
func (d *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return &Dense[T]{r: d.r, c: d.c, data: cp}
}

// Format renders d with the same layout contract as Fixed.Format.
func (d *Dense[T]) Format(opts ...FormatOption) string {
	return renderRows(d.data, d.r, d.c, gatherFormatOptions(opts...))
}

// String implements fmt.Stringer with the default Format options.
func (d *Dense[T]) String() string { return d.Format() }

// Dense returns a runtime-shaped copy of m. Always succeeds.
func (m *Fixed[T, R, C]) Dense() *Dense[T] {
	r, c := shapeOf[R, C]()
	data := m.elems()
	cp := make([]T, len(data))
	copy(cp, data)

	return &Dense[T]{r: r, c: c, data: cp}
}

// FromDense copies d into a Fixed[T, R, C].
// Errors:
//   - ErrNilMatrix when d is nil.
//   - ErrShapeMismatch when d is not R×C.
func FromDense[T Number, R, C Dim](d *Dense[T]) (*Fixed[T, R, C], error) {
	if d == nil {
		return nil, matrixErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := shapeOf[R, C]()
	if d.r != r || d.c != c {
		return nil, matrixErrorf(opFromDense, fmt.Errorf("have %dx%d, want %dx%d: %w", d.r, d.c, r, c, ErrShapeMismatch))
	}
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return &Fixed[T, R, C]{data: cp}, nil
}

// validateSameShape checks nil operands, then equal (rows, cols).
func validateSameShape[T Number](tag string, a, b *Dense[T]) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return matrixErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch))
	}

	return nil
}

// AddDense returns a + b, or ErrShapeMismatch when shapes differ.
func AddDense[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(opAddDense, a, b); err != nil {
		return nil, err
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for k := range out.data {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out, nil
}

// SubDense returns a − b, or ErrShapeMismatch when shapes differ.
func SubDense[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateSameShape(opSubDense, a, b); err != nil {
		return nil, err
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for k := range out.data {
		out.data[k] = a.data[k] - b.data[k]
	}

	return out, nil
}

// MulDense returns a × b, or ErrShapeMismatch when a.Cols() != b.Rows().
// Same i→k→j kernel as Mul.
func MulDense[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulDense, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMulDense, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch))
	}
	rows, inner, cols := a.r, a.c, b.c
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var av T
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			av = a.data[i*inner+k]
			for j := 0; j < cols; j++ {
				out.data[i*cols+j] += av * b.data[k*cols+j]
			}
		}
	}

	return out, nil
}
