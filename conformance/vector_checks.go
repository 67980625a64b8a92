// SPDX-License-Identifier: MIT

package conformance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/vector"
)

// vectorSuites holds one builder per dimension, index N-1.
var vectorSuites = [MaxDim]func(Options) []Check{
	vectorChecks[vector.Vec1],
	vectorChecks[vector.Vec2],
	vectorChecks[vector.Vec3],
	vectorChecks[vector.Vec4],
	vectorChecks[vector.Vec5],
	vectorChecks[vector.Vec6],
	vectorChecks[vector.Vec7],
	vectorChecks[vector.Vec8],
	vectorChecks[vector.Vec9],
}

func vectorChecks[V vector.Vector](o Options) []Check {
	n := vector.Dim[V]()
	check := func(name string, run func() error) Check {
		return Check{Group: GroupVector, Dim: n, Name: name, Run: run}
	}

	return []Check{
		check("creation", vecCreation[V]),
		check("addition", vecAddition[V]),
		check("subtraction", vecSubtraction[V]),
		check("scaling", vecScaling[V]),
		check("dot product", vecDotProduct[V]),
		check("length", func() error { return vecLength[V](o.eps) }),
		check("normalization", func() error { return vecNormalize[V](o.eps) }),
		check("equality", vecEquality[V]),
		check("round trip", vecRoundTrip[V]),
	}
}

func vecCreation[V vector.Vector]() error {
	v := indexVec[V]()
	for k := 0; k < len(v); k++ {
		if got := vector.Index(v, k); got != float32(k) {
			return mismatch(fmt.Sprintf("v[%d]", k), got, k)
		}
	}

	return nil
}

func vecAddition[V vector.Vector]() error {
	v1, v2 := indexVec[V](), indexVec[V]()
	v3 := vector.Add(v1, v2)
	v5 := vector.Add(v3, vector.Fill[V](4))
	for i := 0; i < len(v3); i++ {
		if v3[i] != float32(2*i) {
			return mismatch(fmt.Sprintf("(v1+v2)[%d]", i), v3[i], 2*i)
		}
		if v5[i] != float32(2*i+4) {
			return mismatch(fmt.Sprintf("(v3+4)[%d]", i), v5[i], 2*i+4)
		}
	}

	return nil
}

func vecSubtraction[V vector.Vector]() error {
	v1, v2 := indexVec[V](), indexVec[V]()
	v3 := vector.Sub(v1, v2)
	v5 := vector.Sub(v1, vector.Fill[V](4))
	for i := 0; i < len(v3); i++ {
		if v3[i] != 0 {
			return mismatch(fmt.Sprintf("(v1-v2)[%d]", i), v3[i], 0)
		}
		if v5[i] != float32(i-4) {
			return mismatch(fmt.Sprintf("(v1-4)[%d]", i), v5[i], i-4)
		}
	}

	return nil
}

func vecScaling[V vector.Vector]() error {
	v1 := indexVec[V]()
	v2 := vector.Scale(v1, 2)
	v3 := vector.ScaleLeft(2, v1)
	for i := 0; i < len(v1); i++ {
		if v2[i] != float32(2*i) {
			return mismatch(fmt.Sprintf("(v*2)[%d]", i), v2[i], 2*i)
		}
		if v3[i] != float32(2*i) {
			return mismatch(fmt.Sprintf("(2*v)[%d]", i), v3[i], 2*i)
		}
	}

	return nil
}

func vecDotProduct[V vector.Vector]() error {
	n := vector.Dim[V]()
	v1, v2 := indexVec[V](), indexVec[V]()
	if got, want := vector.Dot(v1, v2), sumSquares(n); got != want {
		return mismatch("v1.v2", got, want)
	}
	if got, want := vector.Dot(v2, vector.Fill[V](2)), float32(n*(n-1)); got != want {
		return mismatch("v.2", got, want)
	}

	return nil
}

func vecLength[V vector.Vector](eps float64) error {
	n := vector.Dim[V]()
	cases := []struct {
		what string
		v    V
		want float64
	}{
		{"|v|", indexVec[V](), math.Sqrt(float64(sumSquares(n)))},
		{"|ones|", vector.Fill[V](1), math.Sqrt(float64(n))},
		{"|e0|", vector.Unit[V](0), 1},
	}
	for _, c := range cases {
		if got := float64(vector.Length(c.v)); math.Abs(got-c.want) > eps {
			return mismatch(c.what, got, c.want)
		}
	}

	return nil
}

func vecNormalize[V vector.Vector](eps float64) error {
	inputs := []V{vector.Fill[V](1), vector.Scale(vector.Unit[V](0), 4)}
	if v := indexVec[V](); vector.Length(v) != 0 {
		inputs = append(inputs, v)
	}
	for _, v := range inputs {
		if got := float64(vector.Length(vector.Normalize(v))); math.Abs(got-1) > eps {
			return mismatch(fmt.Sprintf("|normalize(%v)|", v), got, 1)
		}
	}
	if got := vector.Normalize(vector.Scale(vector.Unit[V](0), 4))[0]; math.Abs(float64(got)-1) > eps {
		return mismatch("normalize(4,0,...)[0]", got, 1)
	}
	if _, err := vector.TryNormalize(vector.Fill[V](0)); !errors.Is(err, vector.ErrZeroLength) {
		return mismatch("normalize(0) error", err, vector.ErrZeroLength)
	}

	return nil
}

func vecEquality[V vector.Vector]() error {
	v1, v2, v3 := indexVec[V](), indexVec[V](), vector.Fill[V](3)
	switch {
	case !vector.Equal(v1, v2):
		return failf("%v should equal %v", v1, v2)
	case vector.Equal(v1, v3):
		return failf("%v should differ from %v", v1, v3)
	case !vector.Equal(vector.Sub(v1, v2), vector.Sub(v3, v3)):
		return failf("v1-v2 should equal v3-v3")
	}

	return nil
}

func vecRoundTrip[V vector.Vector]() error {
	v := vector.Scale(indexVec[V](), -1.5)
	buf := make([]float32, len(v))
	vector.Write(v, buf)
	back := vector.FromSlice[V](buf)
	for i := 0; i < len(v); i++ {
		if math.Float32bits(back[i]) != math.Float32bits(v[i]) {
			return mismatch(fmt.Sprintf("roundtrip[%d]", i), back[i], v[i])
		}
	}

	return nil
}
