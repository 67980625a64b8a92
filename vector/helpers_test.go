// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures for the per-dimension tests.

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

// eps is the absolute tolerance used for results that go through sqrt.
const eps = 1e-6

// indexVec returns (0, 1, ..., N-1).
func indexVec[V vector.Vector]() V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = float32(i)
	}

	return v
}

// sumSquares returns Σ i² for i in [0, n).
func sumSquares(n int) float64 {
	var s float64
	for i := 0; i < n; i++ {
		s += float64(i * i)
	}

	return s
}

// recoverErr runs fn and returns the error it panicked with, or nil.
// A panic with a non-error value is converted with fmt.Errorf.
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
