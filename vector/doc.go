// SPDX-License-Identifier: MIT

// Package vector provides fixed-size float32 column vectors Vec1..Vec9 and
// the arithmetic defined over them.
//
// What:
//
//   - One generic definition covers every dimension: all operations are
//     written once against the Vector constraint and instantiate for
//     Vec1 through Vec9 (or any user type whose underlying type is
//     [N]float32, 1 ≤ N ≤ 9).
//   - Add, Sub, Scale/ScaleLeft, Dot, Length, Normalize, Equal.
//   - Flattening via Write (caller buffer) and Slice (owned buffer), and
//     reconstruction via FromSlice.
//
// Value semantics:
//
//	Vectors are arrays. Assignment copies all N floats; two vectors never
//	share storage. No operation allocates except Slice.
//
// Preconditions:
//
//	Out-of-range indices, short buffers and normalizing the zero vector
//	are programmer errors. The panicking forms (Index, Write, Normalize)
//	panic with an error wrapping ErrOutOfRange, ErrShortBuffer or
//	ErrZeroLength; the checked forms (At, TryNormalize) return them.
//	NaN and ±Inf are never special-cased and propagate per IEEE-754.
//
// Complexity: every operation is O(N), N ≤ 9.
//
//	v := vector.Vec3{0, 1, 2}
//	w := vector.Add(v, v)      // [0 2 4]
//	d := vector.Dot(v, v)      // 5
//	l := vector.Length(v)      // ≈ 2.236
package vector
