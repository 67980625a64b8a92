// SPDX-License-Identifier: MIT

// Package matrix provides square float32 matrices Mat1..Mat9 stored as
// column vectors, built entirely on the vector package.
//
// The matrix package provides:
//
//   - Column-major storage: m[j] is column j, m[j][i] the entry at row i.
//   - Add, Sub, Scale/ScaleLeft, Transpose and Equal/AllClose.
//   - MulVec (M·v), MulVecLeft (vᵀ·M) and MulMat (L·R), each expressed
//     through the column representation.
//   - Write/Slice flatten to a column-major buffer (column j at offset
//     j*N), the layout graphics and BLAS-style consumers expect;
//     FromSlice reverses it.
//
// Type arguments:
//
//	Every function is generic over the column type V and the matrix type
//	M. When V appears among the arguments (MulVec, MulVecLeft) both are
//	inferred; otherwise pass V explicitly and let M be inferred:
//
//	    p := matrix.MulMat[vector.Vec3](a, b)
//	    i := matrix.Identity[vector.Vec3, matrix.Mat3]()
//
// Matrices are values: assignment copies all N² floats and no operation
// allocates except Slice. Complexity is O(N²) for element-wise work and
// O(N³) for MulMat, N ≤ 9.
package matrix
