// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported validators to matrix_test without
// widening the production API.

import "github.com/katalvlaran/vecmat/vector"

var (
	ExportedValidateIndex  = validateIndex
	ExportedValidateBuffer = validateBuffer
)

// ExportedValidateSquare3 instantiates validateSquare for 3-vectors.
func ExportedValidateSquare3[M Matrix[vector.Vec3]](m M) error {
	return validateSquare[vector.Vec3](m)
}
