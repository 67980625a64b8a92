// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical shape, bounds and buffer checks shared by every entry point.
//  - Return plain sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// validateSquare reports ErrNonSquare unless m has exactly Dim[V] columns.
func validateSquare[V vector.Vector, M Matrix[V]](m M) error {
	if len(m) != vector.Dim[V]() {
		return ErrNonSquare
	}

	return nil
}

// validateIndex reports ErrOutOfRange unless 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateBuffer reports ErrShortBuffer when have < need.
func validateBuffer(have, need int) error {
	if have < need {
		return ErrShortBuffer
	}

	return nil
}

// must panics with err wrapped by tag. Reserved for programmer errors.
func must(tag string, err error) {
	if err != nil {
		panic(matrixErrorf(tag, err))
	}
}
