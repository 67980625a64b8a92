// SPDX-License-Identifier: MIT
// Package matrix: domain types.
// This file contains ONLY the matrix constraint and its named instantiations.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Matrix is the family of matrices whose columns have type V.
// Only square members (N columns of an N-vector) are valid operands;
// the named types below are square by construction.
type Matrix[V vector.Vector] interface {
	~[1]V | ~[2]V | ~[3]V |
		~[4]V | ~[5]V | ~[6]V |
		~[7]V | ~[8]V | ~[9]V
}

// Mat1 is a 1×1 matrix.
type Mat1 [1]vector.Vec1

// Mat2 is a 2×2 matrix stored as 2 columns.
type Mat2 [2]vector.Vec2

// Mat3 is a 3×3 matrix stored as 3 columns.
type Mat3 [3]vector.Vec3

// Mat4 is a 4×4 matrix stored as 4 columns.
type Mat4 [4]vector.Vec4

// Mat5 is a 5×5 matrix stored as 5 columns.
type Mat5 [5]vector.Vec5

// Mat6 is a 6×6 matrix stored as 6 columns.
type Mat6 [6]vector.Vec6

// Mat7 is a 7×7 matrix stored as 7 columns.
type Mat7 [7]vector.Vec7

// Mat8 is an 8×8 matrix stored as 8 columns.
type Mat8 [8]vector.Vec8

// Mat9 is a 9×9 matrix stored as 9 columns.
type Mat9 [9]vector.Vec9
