// Package fixmat is a small library of fixed-shape, generic matrices whose
// row and column counts live in the type system.
//
// What you get:
//
//   - matrix.Fixed[T, R, C]: row-major R×C storage for any integer, float or
//     complex T, with bounds-checked At/Set.
//   - Value-semantic algebra: Add, Sub, scalar ops, Mul, Transpose. Results
//     are always new matrices; operands are never written.
//   - Compile-time shape checks: Mul(a3x2, b2x4) compiles, Mul(b2x4, a3x2)
//     does not.
//   - matrix.Dense[T]: a runtime-shaped bridge that checks shapes at run time
//     (ErrShapeMismatch) for data whose dimensions are not known statically.
//
// Everything lives in a single subpackage:
//
//	matrix/ — Fixed, Dense, dimension types, formatting, errors
//
//	go get github.com/katalvlaran/fixmat/matrix
package fixmat
