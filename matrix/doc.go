// Package matrix offers fixed-shape, generic two-dimensional matrices whose
// dimensions are part of the type.
//
// The matrix package provides:
//
//   - Fixed[T, R, C]: an R×C row-major matrix of any Number T. R and C are
//     Dim marker types (D1..D16 or caller-defined), so shape-incompatible
//     Add, Sub, Equal and Mul calls do not compile.
//   - Bounds-checked access (At, Set, Row, Col) returning ErrOutOfRange
//     instead of panicking.
//   - Value-semantic arithmetic: Add, Sub, Hadamard, AddScalar, SubScalar,
//     Scale, Map, Mul, Transpose all return new matrices and never write
//     their operands.
//   - Text rendering (Format, String): one line per row, delimiter-separated,
//     no trailing delimiter or line break; optional locale-aware numbers.
//   - Dense[T]: a runtime-shaped bridge for data whose shape is decided at run
//     time, converting to Fixed with ErrShapeMismatch checks at the boundary.
//
// Quick example:
//
//	a := matrix.MustNew[int, matrix.D3, matrix.D2](0, 1, 2, 3, 4, 5)
//	b := matrix.MustNew[int, matrix.D2, matrix.D4](0, 1, 2, 3, 4, 5, 6, 7)
//	p := matrix.Mul(a, b) // *Fixed[int, D3, D4]
//	// matrix.Mul(b, a) does not compile: D4 != D3.
//
// See the examples in this package for usage patterns.
package matrix
