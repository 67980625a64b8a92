// SPDX-License-Identifier: MIT

package conformance

import (
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// indexVec returns (0, 1, ..., N-1).
func indexVec[V vector.Vector]() V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = float32(i)
	}

	return v
}

// sumSquares returns Σ i² for i in [0, n).
func sumSquares(n int) float32 {
	var s float32
	for i := 0; i < n; i++ {
		s += float32(i * i)
	}

	return s
}

// seqMat returns the matrix whose column-major flattening is 1..N².
func seqMat[V vector.Vector, M matrix.Matrix[V]]() M {
	var m M
	n := len(m)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m[j][i] = float32(j*n + i + 1)
		}
	}

	return m
}

// smallMat returns integer entries in [-3, 3]; triple products stay exact.
func smallMat[V vector.Vector, M matrix.Matrix[V]](salt int) M {
	var m M
	n := len(m)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m[j][i] = float32((i*3+j*5+salt)%7 - 3)
		}
	}

	return m
}
