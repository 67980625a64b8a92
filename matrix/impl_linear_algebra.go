// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Arithmetic over column-major square matrices, written once for every
//     dimension and composed only from vector operations.
//
// Determinism:
//   - Fixed column order j = 0..N-1; sums accumulate left to right, so a
//     given input always yields bit-identical output.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Add returns l + r, column by column.
// Complexity: O(N²).
func Add[V vector.Vector, M Matrix[V]](l, r M) M {
	must("Add", validateSquare[V](l))
	var out M
	for j := 0; j < len(out); j++ {
		out[j] = vector.Add(l[j], r[j])
	}

	return out
}

// Sub returns l - r, column by column.
// Complexity: O(N²).
func Sub[V vector.Vector, M Matrix[V]](l, r M) M {
	must("Sub", validateSquare[V](l))
	var out M
	for j := 0; j < len(out); j++ {
		out[j] = vector.Sub(l[j], r[j])
	}

	return out
}

// Scale returns m * s: every column scaled by s.
func Scale[V vector.Vector, M Matrix[V]](m M, s float32) M {
	must("Scale", validateSquare[V](m))
	var out M
	for j := 0; j < len(out); j++ {
		out[j] = vector.Scale(m[j], s)
	}

	return out
}

// ScaleLeft returns s * m. The result is identical to Scale(m, s).
func ScaleLeft[V vector.Vector, M Matrix[V]](s float32, m M) M {
	must("ScaleLeft", validateSquare[V](m))
	var out M
	for j := 0; j < len(out); j++ {
		out[j] = vector.ScaleLeft(s, m[j])
	}

	return out
}

// MulVec returns m·v for a column vector v: the linear combination
// Σ_j m[j]*v[j] of m's columns weighted by v's components.
// Complexity: O(N²).
func MulVec[V vector.Vector, M Matrix[V]](m M, v V) V {
	must("MulVec", validateSquare[V](m))
	out := vector.Scale(m[0], v[0])
	for j := 1; j < len(m); j++ {
		out = vector.Add(out, vector.Scale(m[j], v[j]))
	}

	return out
}

// MulVecLeft returns vᵀ·m for a row vector v: component j is Dot(v, m[j]).
// Complexity: O(N²).
func MulVecLeft[V vector.Vector, M Matrix[V]](v V, m M) V {
	must("MulVecLeft", validateSquare[V](m))
	var out V
	for j := 0; j < len(m); j++ {
		out[j] = vector.Dot(v, m[j])
	}

	return out
}

// MulMat returns l·r. Column j of the product is l applied to column j of r.
// Complexity: O(N³).
func MulMat[V vector.Vector, M Matrix[V]](l, r M) M {
	must("MulMat", validateSquare[V](l))
	var out M
	for j := 0; j < len(out); j++ {
		out[j] = MulVec[V, M](l, r[j])
	}

	return out
}

// Transpose returns mᵀ, swapping rows and columns.
// Complexity: O(N²).
func Transpose[V vector.Vector, M Matrix[V]](m M) M {
	must("Transpose", validateSquare[V](m))
	var out M
	for j := 0; j < len(m); j++ {
		for i := 0; i < len(m); i++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Equal reports whether every column of l equals the same column of r,
// using exact float comparison.
func Equal[V vector.Vector, M Matrix[V]](l, r M) bool {
	must("Equal", validateSquare[V](l))
	for j := 0; j < len(l); j++ {
		if !vector.Equal(l[j], r[j]) {
			return false
		}
	}

	return true
}

// AllClose reports whether l and r agree column by column within
// |l-r| ≤ atol + rtol*|r|. See vector.AllClose.
func AllClose[V vector.Vector, M Matrix[V]](l, r M, rtol, atol float64) bool {
	must("AllClose", validateSquare[V](l))
	for j := 0; j < len(l); j++ {
		if !vector.AllClose(l[j], r[j], rtol, atol) {
			return false
		}
	}

	return true
}
