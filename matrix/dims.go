// SPDX-License-Identifier: MIT

// Package matrix - compile-time dimensions.
//
// Purpose:
//   - Carry a matrix extent in the type system so that Fixed[T, D3, D2] and
//     Fixed[T, D2, D3] are distinct types.
//   - Let the compiler reject Add/Sub/Equal between different shapes and Mul
//     when the left column count is not the right row count.
//
// A Dim is a zero-size marker type; only its method set matters. The package
// ships D1..D16. Larger or domain-named extents are declared by the caller:
//
//	type D100 struct{}
//
//	func (D100) Extent() int { return 100 }
//
// Extent must be a positive constant for the type. A non-positive extent is a
// programmer error and panics on first construction.

package matrix

import "fmt"

// panicInvalidExtent is the panic format for a Dim reporting Extent() <= 0.
const panicInvalidExtent = "matrix: dimension type %T has non-positive extent %d"

// Dim is a compile-time matrix extent.
type Dim interface {
	// Extent returns the number of rows or columns this type stands for.
	// It must be positive and must not depend on the receiver value.
	Extent() int
}

// Built-in extents.
type (
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
)

func (D1) Extent() int  { return 1 }
func (D2) Extent() int  { return 2 }
func (D3) Extent() int  { return 3 }
func (D4) Extent() int  { return 4 }
func (D5) Extent() int  { return 5 }
func (D6) Extent() int  { return 6 }
func (D7) Extent() int  { return 7 }
func (D8) Extent() int  { return 8 }
func (D9) Extent() int  { return 9 }
func (D10) Extent() int { return 10 }
func (D11) Extent() int { return 11 }
func (D12) Extent() int { return 12 }
func (D13) Extent() int { return 13 }
func (D14) Extent() int { return 14 }
func (D15) Extent() int { return 15 }
func (D16) Extent() int { return 16 }

// extentOf returns the extent of D, panicking on a non-positive value.
// Complexity: O(1).
func extentOf[D Dim]() int {
	var d D
	n := d.Extent()
	if n <= 0 {
		panic(fmt.Sprintf(panicInvalidExtent, d, n))
	}

	return n
}

// shapeOf returns (R, C) for a Fixed instantiation.
func shapeOf[R, C Dim]() (rows, cols int) {
	return extentOf[R](), extentOf[C]()
}
