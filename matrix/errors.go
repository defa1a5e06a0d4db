// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the wrappers that
// attach call-site context to them. Callers match with errors.Is.
// No exported function panics on user-triggered error conditions; panics are
// reserved for programmer errors (invalid Dim extents, nonsensical options).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrappers add context with %w so errors.Is keeps matching the sentinel.

var (
	// ErrDimensionMismatch indicates that a construction input does not hold
	// exactly Rows*Cols values, or a vector length does not match a matrix extent.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch is returned by the runtime-shaped Dense bridge when two
	// operands (or a Dense and a Fixed target) disagree on shape. Fixed operands
	// never produce it: for them a shape mismatch does not compile.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidDimensions indicates that requested runtime dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// fixedErrorf wraps err with a uniform Fixed context and call-site indices.
func fixedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Fixed.%s(%d,%d): %w", method, row, col, err)
}

// denseErrorf wraps err with a uniform Dense context and call-site indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
