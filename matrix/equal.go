// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether m and other hold identical values in every cell.
// Only matrices of the same T, R and C can be compared; anything else does
// not compile. Stops on the first mismatch.
//
// Two nil matrices are equal; a nil and a non-nil one are not.
// An instance is always equal to itself. Between distinct instances with
// floating-point T, NaN != NaN applies cellwise.
// Complexity: O(R*C) worst case, O(1) extra space.
func (m *Fixed[T, R, C]) Equal(other *Fixed[T, R, C]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	a, b := m.elems(), other.elems()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Fixed[T, R, C]) NotEqual(other *Fixed[T, R, C]) bool {
	return !m.Equal(other)
}
