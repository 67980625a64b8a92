// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the per-dimension suites.
//   • Keep integer-valued fixtures small enough that every product stays
//     exactly representable in float32.

package matrix_test

import (
	"fmt"
	"math/rand"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// seed pins the pseudo-random fixtures.
const seed = 20170420

// approx compares float values within max(1e-4·min(|x|,|y|), 1e-5).
var approx = cmpopts.EquateApprox(1e-4, 1e-5)

// seqMat returns the matrix whose column-major flattening is 1, 2, ..., N².
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

// smallMat returns a deterministic matrix with entries in [-3, 3].
// Products of three such matrices stay integral and below 2^24.
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

// randMat fills a matrix with values in [-1, 1) from rng.
func randMat[V vector.Vector, M matrix.Matrix[V]](rng *rand.Rand) M {
	var m M
	n := len(m)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m[j][i] = float32(rng.Float64()*2 - 1)
		}
	}

	return m
}

// randVec fills a vector with values in [-1, 1) from rng.
func randVec[V vector.Vector](rng *rand.Rand) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = float32(rng.Float64()*2 - 1)
	}

	return v
}

// toDense converts m into a gonum Dense with the same (row, column) entries.
// A column-major buffer read row-major is the transpose, hence .T().
func toDense[V vector.Vector, M matrix.Matrix[V]](m M) mat.Matrix {
	n := len(m)
	data := make([]float64, 0, n*n)
	for _, x := range matrix.Slice[V](m) {
		data = append(data, float64(x))
	}

	return mat.NewDense(n, n, data).T()
}

// rowsOf returns m as [row][col] float64 for structural diffs.
func rowsOf[V vector.Vector, M matrix.Matrix[V]](m M) [][]float64 {
	n := len(m)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = float64(m[j][i])
		}
	}

	return out
}

// rowsOfGonum returns a gonum matrix as [row][col].
func rowsOfGonum(a mat.Matrix) [][]float64 {
	r, c := a.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = a.At(i, j)
		}
	}

	return out
}

// vecOf widens a vector to float64 for structural diffs.
func vecOf[V vector.Vector](v V) []float64 {
	out := make([]float64, len(v))
	for i := 0; i < len(v); i++ {
		out[i] = float64(v[i])
	}

	return out
}

// diff is cmp.Diff with the shared tolerance.
func diff(want, got any) string {
	return cmp.Diff(want, got, approx)
}

// recoverErr runs fn and returns the error it panicked with, or nil.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()

	return nil
}
