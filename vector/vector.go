// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Index returns component i of v.
// Panics with ErrOutOfRange unless 0 ≤ i < N.
func Index[V Vector](v V, i int) float32 {
	if err := validateIndex(i, len(v)); err != nil {
		panic(vectorErrorf(fmt.Sprintf("Index(%d)", i), err))
	}

	return v[i]
}

// At returns component i of v, or a wrapped ErrOutOfRange.
// Complexity: O(1).
func At[V Vector](v V, i int) (float32, error) {
	if err := validateIndex(i, len(v)); err != nil {
		return 0, vectorErrorf(fmt.Sprintf("At(%d)", i), err)
	}

	return v[i], nil
}

// Write copies the N components of v into out[0:N] in index order.
// v is not modified. Panics with ErrShortBuffer if len(out) < N.
func Write[V Vector](v V, out []float32) {
	must("Write", validateBuffer(len(out), len(v)))
	for i := 0; i < len(v); i++ {
		out[i] = v[i]
	}
}

// Slice returns a newly allocated copy of the components of v.
func Slice[V Vector](v V) []float32 {
	out := make([]float32, len(v))
	Write(v, out)

	return out
}

// FromSlice builds a V from the first N floats of s, the inverse of Write.
// Panics with ErrShortBuffer if len(s) < N.
func FromSlice[V Vector](s []float32) V {
	var v V
	must("FromSlice", validateBuffer(len(s), len(v)))
	for i := 0; i < len(v); i++ {
		v[i] = s[i]
	}

	return v
}

// Fill returns a V whose every component equals s.
func Fill[V Vector](s float32) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = s
	}

	return v
}

// Unit returns the standard basis vector e_i (1 at i, 0 elsewhere).
// Panics with ErrOutOfRange unless 0 ≤ i < N.
func Unit[V Vector](i int) V {
	var v V
	if err := validateIndex(i, len(v)); err != nil {
		panic(vectorErrorf(fmt.Sprintf("Unit(%d)", i), err))
	}
	v[i] = 1

	return v
}

// Add returns l + r, component-wise.
func Add[V Vector](l, r V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = l[i] + r[i]
	}

	return out
}

// Sub returns l - r, component-wise.
func Sub[V Vector](l, r V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = l[i] - r[i]
	}

	return out
}

// Scale returns v * s.
func Scale[V Vector](v V, s float32) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = v[i] * s
	}

	return out
}

// ScaleLeft returns s * v. The result is identical to Scale(v, s).
func ScaleLeft[V Vector](s float32, v V) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = s * v[i]
	}

	return out
}

// Dot returns Σ l[i]*r[i], accumulated in index order.
func Dot[V Vector](l, r V) float32 {
	var sum float32
	for i := 0; i < len(l); i++ {
		sum += l[i] * r[i]
	}

	return sum
}

// Length returns the Euclidean length sqrt(Dot(v, v)).
// Always ≥ 0; 0 only for the zero vector.
// Squares are summed in float64, so no finite float32 input overflows or
// underflows to a wrong length.
func Length[V Vector](v V) float32 {
	return float32(norm(v))
}

// norm is the float64 Euclidean length of v.
func norm[V Vector](v V) float64 {
	var s float64
	for i := 0; i < len(v); i++ {
		x := float64(v[i])
		s += x * x
	}

	return math.Sqrt(s)
}

// Normalize returns v / Length(v), pointing the same way with unit length.
// Panics with ErrZeroLength when v is the zero vector; use TryNormalize
// when the input is not known to be non-zero.
func Normalize[V Vector](v V) V {
	out, err := TryNormalize(v)
	if err != nil {
		panic(vectorErrorf("Normalize", err))
	}

	return out
}

// TryNormalize is Normalize with the zero-vector case reported as a
// wrapped ErrZeroLength instead of a panic.
func TryNormalize[V Vector](v V) (V, error) {
	length := norm(v)
	if length == 0 {
		var zero V
		return zero, vectorErrorf("TryNormalize", ErrZeroLength)
	}

	var out V
	for i := 0; i < len(out); i++ {
		out[i] = float32(float64(v[i]) / length)
	}

	return out, nil
}

// Equal reports whether l[i] == r[i] for every i.
// Exact float comparison: NaN never equals anything, +0 equals -0.
func Equal[V Vector](l, r V) bool {
	for i := 0; i < len(l); i++ {
		if l[i] != r[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether |l[i]-r[i]| ≤ atol + rtol*|r[i]| for every i.
// rtol and atol are expected to be non-negative. A NaN on either side
// is never close.
func AllClose[V Vector](l, r V, rtol, atol float64) bool {
	for i := 0; i < len(l); i++ {
		a, b := float64(l[i]), float64(r[i])
		if !(math.Abs(a-b) <= atol+rtol*math.Abs(b)) {
			return false
		}
	}

	return true
}
