// SPDX-License-Identifier: MIT

package conformance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// matrixSuites holds one builder per dimension, index N-1.
var matrixSuites = [MaxDim]func(Options) []Check{
	matrixChecks[vector.Vec1, matrix.Mat1],
	matrixChecks[vector.Vec2, matrix.Mat2],
	matrixChecks[vector.Vec3, matrix.Mat3],
	matrixChecks[vector.Vec4, matrix.Mat4],
	matrixChecks[vector.Vec5, matrix.Mat5],
	matrixChecks[vector.Vec6, matrix.Mat6],
	matrixChecks[vector.Vec7, matrix.Mat7],
	matrixChecks[vector.Vec8, matrix.Mat8],
	matrixChecks[vector.Vec9, matrix.Mat9],
}

func matrixChecks[V vector.Vector, M matrix.Matrix[V]](Options) []Check {
	n := vector.Dim[V]()
	check := func(name string, run func() error) Check {
		return Check{Group: GroupMatrix, Dim: n, Name: name, Run: run}
	}

	return []Check{
		check("creation", matCreation[V, M]),
		check("addition", matAddition[V, M]),
		check("subtraction", matSubtraction[V, M]),
		check("scaling", matScaling[V, M]),
		check("column selection", matColumnSelection[V, M]),
		check("row selection", matRowSelection[V, M]),
		check("identity", matIdentity[V, M]),
		check("associativity", matAssociativity[V, M]),
		check("transpose", matTranspose[V, M]),
		check("equality", matEquality[V, M]),
		check("round trip", matRoundTrip[V, M]),
	}
}

// eachEntry calls fn(i, j, m[j][i]) in column-major order and returns the first error.
func eachEntry[V vector.Vector, M matrix.Matrix[V]](m M, fn func(i, j int, x float32) error) error {
	for j := 0; j < len(m); j++ {
		col := matrix.Column[V](m, j)
		for i := 0; i < len(col); i++ {
			if err := fn(i, j, col[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

func matCreation[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	n := len(m)

	return eachEntry[V](m, func(i, j int, x float32) error {
		if want := float32(j*n + i + 1); x != want {
			return mismatch(fmt.Sprintf("m[%d][%d]", j, i), x, want)
		}
		return nil
	})
}

func matAddition[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	n := len(m)
	sum := matrix.Add[V](m, m)

	return eachEntry[V](sum, func(i, j int, x float32) error {
		if want := float32(2 * (j*n + i + 1)); x != want {
			return mismatch(fmt.Sprintf("(m+m)[%d][%d]", j, i), x, want)
		}
		return nil
	})
}

func matSubtraction[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	var zero M
	if d := matrix.Sub[V](m, m); !matrix.Equal[V](d, zero) {
		return failf("m-m = %v, want zero matrix", d)
	}
	a, b := smallMat[V, M](1), smallMat[V, M](4)
	if back := matrix.Add[V](matrix.Sub[V](a, b), b); !matrix.Equal[V](back, a) {
		return mismatch("(a-b)+b", back, a)
	}

	return nil
}

func matScaling[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	right, left := matrix.Scale[V](m, 2), matrix.ScaleLeft[V](2, m)
	if !matrix.Equal[V](right, left) {
		return mismatch("m*2 vs 2*m", right, left)
	}
	if sum := matrix.Add[V](m, m); !matrix.Equal[V](right, sum) {
		return mismatch("m*2", right, sum)
	}

	return nil
}

func matColumnSelection[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	for j := 0; j < len(m); j++ {
		if got := matrix.MulVec(m, vector.Unit[V](j)); !vector.Equal(got, m[j]) {
			return mismatch(fmt.Sprintf("m·e%d", j), got, m[j])
		}
	}

	return nil
}

func matRowSelection[V vector.Vector, M matrix.Matrix[V]]() error {
	m := seqMat[V, M]()
	for i := 0; i < len(m); i++ {
		row := matrix.MulVecLeft(vector.Unit[V](i), m)
		for j := 0; j < len(m); j++ {
			if row[j] != m[j][i] {
				return mismatch(fmt.Sprintf("(e%d·m)[%d]", i, j), row[j], m[j][i])
			}
		}
	}

	return nil
}

func matIdentity[V vector.Vector, M matrix.Matrix[V]]() error {
	id := matrix.Identity[V, M]()
	m := seqMat[V, M]()
	if got := matrix.MulMat[V](m, id); !matrix.Equal[V](got, m) {
		return mismatch("m·I", got, m)
	}
	if got := matrix.MulMat[V](id, m); !matrix.Equal[V](got, m) {
		return mismatch("I·m", got, m)
	}

	return nil
}

func matAssociativity[V vector.Vector, M matrix.Matrix[V]]() error {
	a, b, c := smallMat[V, M](0), smallMat[V, M](1), smallMat[V, M](2)
	lhs := matrix.MulMat[V](matrix.MulMat[V](a, b), c)
	rhs := matrix.MulMat[V](a, matrix.MulMat[V](b, c))
	if !matrix.Equal[V](lhs, rhs) {
		return mismatch("(ab)c vs a(bc)", lhs, rhs)
	}

	return nil
}

func matTranspose[V vector.Vector, M matrix.Matrix[V]]() error {
	a, b := smallMat[V, M](3), smallMat[V, M](5)
	if tt := matrix.Transpose[V](matrix.Transpose[V](a)); !matrix.Equal[V](tt, a) {
		return mismatch("(aᵀ)ᵀ", tt, a)
	}
	lhs := matrix.Transpose[V](matrix.MulMat[V](a, b))
	rhs := matrix.MulMat[V](matrix.Transpose[V](b), matrix.Transpose[V](a))
	if !matrix.Equal[V](lhs, rhs) {
		return mismatch("(ab)ᵀ vs bᵀaᵀ", lhs, rhs)
	}

	return nil
}

func matEquality[V vector.Vector, M matrix.Matrix[V]]() error {
	a, b := seqMat[V, M](), seqMat[V, M]()
	if !matrix.Equal[V](a, b) {
		return failf("%v should equal %v", a, b)
	}
	b[len(b)-1][0] = -1
	if matrix.Equal[V](a, b) {
		return failf("%v should differ from %v", a, b)
	}
	if !matrix.Equal[V](matrix.Sub[V](a, a), matrix.Sub[V](b, b)) {
		return failf("a-a should equal b-b")
	}

	return nil
}

func matRoundTrip[V vector.Vector, M matrix.Matrix[V]]() error {
	m := matrix.Scale[V](seqMat[V, M](), -0.25)
	n := len(m)
	flat := matrix.Slice[V](m)
	if err := eachEntry[V](m, func(i, j int, x float32) error {
		if flat[j*n+i] != x {
			return mismatch(fmt.Sprintf("flat[%d]", j*n+i), flat[j*n+i], x)
		}
		return nil
	}); err != nil {
		return err
	}
	back := matrix.FromSlice[V, M](flat)

	return eachEntry[V](back, func(i, j int, x float32) error {
		if math.Float32bits(x) != math.Float32bits(m[j][i]) {
			return mismatch(fmt.Sprintf("roundtrip[%d][%d]", j, i), x, m[j][i])
		}
		return nil
	})
}
