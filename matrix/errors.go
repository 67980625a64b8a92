// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Precondition violations panic with an error wrapping one of these; the
// checked accessor At returns them. Callers match with errors.Is either way.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShortBuffer indicates that a flat buffer holds fewer than N² floats.
	ErrShortBuffer = errors.New("matrix: buffer too short")

	// ErrNonSquare signals a matrix type whose column count differs from the
	// column length. The named Mat1..Mat9 types can never trigger it.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
