// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for the bounds and buffer checks shared by the
//     checked (error-returning) and panicking entry points.
//   - Return plain sentinels; callers wrap with the operation tag.

package vector

// validateIndex reports ErrOutOfRange unless 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateBuffer reports ErrShortBuffer when a buffer of length have
// cannot hold need floats.
func validateBuffer(have, need int) error {
	if have < need {
		return ErrShortBuffer
	}

	return nil
}

// must panics with err wrapped by tag. Reserved for precondition
// violations (programmer errors).
func must(tag string, err error) {
	if err != nil {
		panic(vectorErrorf(tag, err))
	}
}
