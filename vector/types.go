// SPDX-License-Identifier: MIT

package vector

// Vector is the family of fixed-size float32 vectors, dimensions 1 through 9.
// Any named type whose underlying type is [N]float32 satisfies it.
type Vector interface {
	~[1]float32 | ~[2]float32 | ~[3]float32 |
		~[4]float32 | ~[5]float32 | ~[6]float32 |
		~[7]float32 | ~[8]float32 | ~[9]float32
}

// Vec1 is a 1-component vector.
type Vec1 [1]float32

// Vec2 is a 2-component vector.
type Vec2 [2]float32

// Vec3 is a 3-component vector.
type Vec3 [3]float32

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// Vec5 is a 5-component vector.
type Vec5 [5]float32

// Vec6 is a 6-component vector.
type Vec6 [6]float32

// Vec7 is a 7-component vector.
type Vec7 [7]float32

// Vec8 is an 8-component vector.
type Vec8 [8]float32

// Vec9 is a 9-component vector.
type Vec9 [9]float32

// Dim returns the number of components N of V.
// Complexity: O(1).
func Dim[V Vector]() int {
	var v V
	return len(v)
}
