// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// This file intentionally contains ONLY the type-set constraints shared by
// Fixed and Dense. Errors and options live in dedicated files.
package matrix

// Integer is the set of built-in integer kinds (and named types over them).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Number is every element type the arithmetic operators are meaningful for.
// All members are comparable, so Equal can use == directly.
//
// Overflow and rounding follow T: int8 wraps, float32 rounds. There is no
// numeric-stability policy on top of Go's own arithmetic.
type Number interface {
	Integer | Float | Complex
}
