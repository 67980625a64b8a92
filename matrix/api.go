// SPDX-License-Identifier: MIT
// Package matrix: construction, access and flattening.
//
// Layout:
//   - Column-major everywhere. Column j of an N×N matrix occupies
//     out[j*N : j*N+N] in any flat buffer read or written here.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

// Identity returns the N×N identity: column j is the unit vector e_j.
// Complexity: O(N²).
func Identity[V vector.Vector, M Matrix[V]]() M {
	var out M
	must("Identity", validateSquare[V](out))
	for j := 0; j < len(out); j++ {
		out[j] = vector.Unit[V](j)
	}

	return out
}

// Column returns a copy of column j of m.
// Panics with ErrOutOfRange unless 0 ≤ j < N.
func Column[V vector.Vector, M Matrix[V]](m M, j int) V {
	if err := validateIndex(j, len(m)); err != nil {
		panic(matrixErrorf(fmt.Sprintf("Column(%d)", j), err))
	}

	return m[j]
}

// At returns the entry at row i, column j, or a wrapped ErrOutOfRange.
// Complexity: O(1).
func At[V vector.Vector, M Matrix[V]](m M, i, j int) (float32, error) {
	n := vector.Dim[V]()
	if err := validateIndex(j, len(m)); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("At(%d,%d): column", i, j), err)
	}
	if err := validateIndex(i, n); err != nil {
		return 0, matrixErrorf(fmt.Sprintf("At(%d,%d): row", i, j), err)
	}

	return m[j][i], nil
}

// Write flattens m column-major into out[0:N²]; column j lands at
// out[j*N:]. m is not modified. Panics with ErrShortBuffer if len(out) < N².
func Write[V vector.Vector, M Matrix[V]](m M, out []float32) {
	must("Write", validateSquare[V](m))
	n := len(m)
	must("Write", validateBuffer(len(out), n*n))
	for j := 0; j < n; j++ {
		vector.Write(m[j], out[j*n:(j+1)*n])
	}
}

// Slice returns a newly allocated column-major copy of m.
func Slice[V vector.Vector, M Matrix[V]](m M) []float32 {
	n := len(m)
	out := make([]float32, n*n)
	Write[V](m, out)

	return out
}

// FromSlice rebuilds a matrix from the first N² floats of a column-major
// buffer, the inverse of Write. Panics with ErrShortBuffer if len(s) < N².
func FromSlice[V vector.Vector, M Matrix[V]](s []float32) M {
	var out M
	must("FromSlice", validateSquare[V](out))
	n := len(out)
	must("FromSlice", validateBuffer(len(s), n*n))
	for j := 0; j < n; j++ {
		out[j] = vector.FromSlice[V](s[j*n : (j+1)*n])
	}

	return out
}
