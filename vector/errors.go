// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Panicking entry points panic with an error wrapping one of these, so a
// recovered value can be matched with errors.Is just like a returned one.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a component index is outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrShortBuffer indicates that a flat buffer holds fewer than N floats.
	ErrShortBuffer = errors.New("vector: buffer too short")

	// ErrZeroLength signals an attempt to normalize the zero vector.
	ErrZeroLength = errors.New("vector: zero-length vector")
)

// vectorErrorf wraps err with the operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
