// SPDX-License-Identifier: MIT

// Package vecmat is a small, allocation-free library of fixed-size float32
// column vectors and square matrices for dimensions 1 through 9.
//
// 🚀 What is vecmat?
//
//	One generic definition per concept, instantiated for every size:
//		• vector/      — Vec1..Vec9: Add, Sub, Scale, Dot, Length, Normalize, Equal
//		• matrix/      — Mat1..Mat9, column-major: Add, Sub, Scale, MulVec,
//		                 MulVecLeft, MulMat, Transpose, Identity, Equal
//		• conformance/ — the per-dimension check battery
//		• cmd/vecmat-check — runs the battery and reports pass/fail
//
// ✨ Why vecmat?
//
//   - Value semantics – vectors and matrices are arrays; copies never alias
//   - No allocation – every operation works on the stack
//   - Interop – Write/Slice flatten matrices column-major, as graphics APIs expect
//   - Loud preconditions – bad indices and zero-vector normalization panic
//     with errors you can match via errors.Is; NaN/Inf follow IEEE-754
//
// Quick example:
//
//	v := vector.Vec3{0, 1, 2}
//	m := matrix.Identity[vector.Vec3, matrix.Mat3]()
//	w := matrix.MulVec(m, vector.Add(v, v)) // [0 2 4]
//
//	go get github.com/katalvlaran/vecmat
package vecmat
