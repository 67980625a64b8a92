// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/vector"
)

// TestVector_AllDims runs the full property battery once per dimension.
func TestVector_AllDims(t *testing.T) {
	t.Parallel()

	t.Run("N=1", vectorProperties[vector.Vec1])
	t.Run("N=2", vectorProperties[vector.Vec2])
	t.Run("N=3", vectorProperties[vector.Vec3])
	t.Run("N=4", vectorProperties[vector.Vec4])
	t.Run("N=5", vectorProperties[vector.Vec5])
	t.Run("N=6", vectorProperties[vector.Vec6])
	t.Run("N=7", vectorProperties[vector.Vec7])
	t.Run("N=8", vectorProperties[vector.Vec8])
	t.Run("N=9", vectorProperties[vector.Vec9])
}

func vectorProperties[V vector.Vector](t *testing.T) {
	t.Run("Creation", testCreation[V])
	t.Run("Addition", testAddition[V])
	t.Run("Subtraction", testSubtraction[V])
	t.Run("Scaling", testScaling[V])
	t.Run("DotProduct", testDotProduct[V])
	t.Run("Length", testLength[V])
	t.Run("Normalize", testNormalize[V])
	t.Run("ExtremeMagnitudes", testExtremeMagnitudes[V])
	t.Run("Equality", testEquality[V])
	t.Run("RoundTrip", testRoundTrip[V])
	t.Run("Bounds", testBounds[V])
}

func testCreation[V vector.Vector](t *testing.T) {
	v := indexVec[V]()
	n := vector.Dim[V]()
	require.Equal(t, len(v), n)
	for k := 0; k < n; k++ {
		assert.Equal(t, float32(k), vector.Index(v, k), "component %d", k)
	}
}

func testAddition[V vector.Vector](t *testing.T) {
	v1, v2 := indexVec[V](), indexVec[V]()
	v3 := vector.Add(v1, v2)
	v5 := vector.Add(v3, vector.Fill[V](4))
	for i := 0; i < len(v1); i++ {
		assert.Equal(t, float32(2*i), v3[i], "v1+v2 at %d", i)
		assert.Equal(t, float32(2*i+4), v5[i], "v3+4 at %d", i)
	}
	// operands are values; nothing was mutated
	assert.Equal(t, indexVec[V](), v1)
}

func testSubtraction[V vector.Vector](t *testing.T) {
	v1, v2 := indexVec[V](), indexVec[V]()
	v3 := vector.Sub(v1, v2)
	v5 := vector.Sub(v1, vector.Fill[V](4))
	for i := 0; i < len(v1); i++ {
		assert.Equal(t, float32(0), v3[i], "v1-v2 at %d", i)
		assert.Equal(t, float32(i-4), v5[i], "v1-4 at %d", i)
	}
}

func testScaling[V vector.Vector](t *testing.T) {
	v1 := indexVec[V]()
	v2 := vector.Scale(v1, 2)
	v3 := vector.ScaleLeft(2, v1)
	for i := 0; i < len(v1); i++ {
		assert.Equal(t, float32(2*i), v2[i], "v*2 at %d", i)
		assert.Equal(t, float32(2*i), v3[i], "2*v at %d", i)
	}
	assert.True(t, vector.Equal(v2, v3), "scalar side must not matter")
}

func testDotProduct[V vector.Vector](t *testing.T) {
	n := vector.Dim[V]()
	v1, v2 := indexVec[V](), indexVec[V]()
	assert.Equal(t, float32(sumSquares(n)), vector.Dot(v1, v2))
	assert.Equal(t, float32(n*(n-1)), vector.Dot(v2, vector.Fill[V](2)))
}

func testLength[V vector.Vector](t *testing.T) {
	n := vector.Dim[V]()
	assert.InDelta(t, math.Sqrt(sumSquares(n)), float64(vector.Length(indexVec[V]())), eps)
	assert.InDelta(t, math.Sqrt(float64(n)), float64(vector.Length(vector.Fill[V](1))), eps)
	assert.InDelta(t, 1.0, float64(vector.Length(vector.Unit[V](0))), eps)
	assert.Equal(t, float32(0), vector.Length(vector.Fill[V](0)))
	assert.GreaterOrEqual(t, vector.Length(vector.Fill[V](-3)), float32(0))
}

func testNormalize[V vector.Vector](t *testing.T) {
	inputs := []V{vector.Fill[V](1), vector.Scale(vector.Unit[V](0), 4), vector.Fill[V](-7.5)}
	if vector.Length(indexVec[V]()) != 0 {
		inputs = append(inputs, indexVec[V]())
	}
	for _, v := range inputs {
		u := vector.Normalize(v)
		assert.InDelta(t, 1.0, float64(vector.Length(u)), eps, "normalize(%v)", v)
	}

	four := vector.Normalize(vector.Scale(vector.Unit[V](0), 4))
	assert.InDelta(t, 1.0, float64(four[0]), eps)

	err := recoverErr(func() { vector.Normalize(vector.Fill[V](0)) })
	require.ErrorIs(t, err, vector.ErrZeroLength)

	_, err = vector.TryNormalize(vector.Fill[V](0))
	require.ErrorIs(t, err, vector.ErrZeroLength)

	got, err := vector.TryNormalize(vector.Fill[V](1))
	require.NoError(t, err)
	assert.Equal(t, vector.Normalize(vector.Fill[V](1)), got)
}

func testExtremeMagnitudes[V vector.Vector](t *testing.T) {
	n := vector.Dim[V]()

	huge := vector.Fill[V](3e20)
	l := vector.Length(huge)
	require.False(t, math.IsInf(float64(l), 0), "length overflowed")
	assert.InEpsilon(t, 3e20*math.Sqrt(float64(n)), float64(l), 1e-6)
	u, err := vector.TryNormalize(huge)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(vector.Length(u)), eps)
	assert.InDelta(t, 1/math.Sqrt(float64(n)), float64(u[0]), eps)

	tiny := vector.Scale(vector.Unit[V](0), 1e-30)
	l = vector.Length(tiny)
	require.NotZero(t, l, "length underflowed")
	assert.InEpsilon(t, 1e-30, float64(l), 1e-6)
	u, err = vector.TryNormalize(tiny)
	require.NoError(t, err)
	assert.Equal(t, vector.Unit[V](0), u)
}

func testEquality[V vector.Vector](t *testing.T) {
	v1, v2, v3 := indexVec[V](), indexVec[V](), vector.Fill[V](3)
	assert.True(t, vector.Equal(v1, v2))
	assert.False(t, vector.Equal(v1, v3))
	assert.False(t, vector.Equal(v3, v1))
	assert.True(t, vector.Equal(vector.Sub(v1, v2), vector.Sub(v3, v3)))
}

func testRoundTrip[V vector.Vector](t *testing.T) {
	v := indexVec[V]()
	v[0] = float32(math.Copysign(0, -1))
	if last := len(v) - 1; last > 0 {
		v[last] = float32(math.NaN())
	}

	buf := make([]float32, len(v)+2)
	buf[len(v)] = 42
	vector.Write(v, buf)
	assert.Equal(t, float32(42), buf[len(v)], "Write must not touch out[N:]")

	back := vector.FromSlice[V](buf)
	for i := 0; i < len(v); i++ {
		assert.Equal(t, math.Float32bits(v[i]), math.Float32bits(back[i]), "bits at %d", i)
	}

	owned := vector.Slice(v)
	require.Len(t, owned, len(v))
	owned[0] = 99
	assert.NotEqual(t, float32(99), v[0], "Slice must copy")
}

func testBounds[V vector.Vector](t *testing.T) {
	v := indexVec[V]()
	n := len(v)

	_, err := vector.At(v, n)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = vector.At(v, -1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	x, err := vector.At(v, n-1)
	require.NoError(t, err)
	assert.Equal(t, float32(n-1), x)

	assert.ErrorIs(t, recoverErr(func() { vector.Index(v, n) }), vector.ErrOutOfRange)
	assert.ErrorIs(t, recoverErr(func() { vector.Unit[V](n) }), vector.ErrOutOfRange)
	assert.ErrorIs(t, recoverErr(func() { vector.Write(v, make([]float32, n-1)) }), vector.ErrShortBuffer)
	assert.ErrorIs(t, recoverErr(func() { vector.FromSlice[V](nil) }), vector.ErrShortBuffer)
}

// TestVector_ConcreteN3 pins the worked example for N=3.
func TestVector_ConcreteN3(t *testing.T) {
	t.Parallel()

	v1 := vector.Vec3{0, 1, 2}
	v2 := vector.Vec3{0, 1, 2}
	require.Equal(t, vector.Vec3{0, 2, 4}, vector.Add(v1, v2))
	require.Equal(t, float32(5), vector.Dot(v1, v2))
	require.InDelta(t, 2.2360679, float64(vector.Length(v1)), eps)
}

// TestVector_IEEEPropagation checks that NaN and Inf flow through unchanged.
func TestVector_IEEEPropagation(t *testing.T) {
	t.Parallel()

	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	sum := vector.Add(vector.Vec2{inf, nan}, vector.Vec2{1, 1})
	assert.True(t, math.IsInf(float64(sum[0]), 1))
	assert.True(t, math.IsNaN(float64(sum[1])))

	// NaN is never equal, not even to itself
	n := vector.Vec2{nan, 0}
	assert.False(t, vector.Equal(n, n))
	assert.True(t, vector.Equal(vector.Vec2{0, 1}, vector.Vec2{float32(math.Copysign(0, -1)), 1}))
}

func TestVector_AllClose(t *testing.T) {
	t.Parallel()

	a := vector.Vec3{1, 2, 3}
	b := vector.Vec3{1, 2, 3.0001}
	assert.True(t, vector.AllClose(a, b, 0, 1e-3))
	assert.False(t, vector.AllClose(a, b, 0, 1e-6))
	assert.True(t, vector.AllClose(a, b, 1e-4, 0))
	assert.False(t, vector.AllClose(vector.Vec3{float32(math.NaN())}, vector.Vec3{float32(math.NaN())}, 1, 1))
}

// namedVec checks that user types with an [N]float32 underlying type work.
type namedVec [4]float32

func TestVector_NamedUnderlying(t *testing.T) {
	t.Parallel()

	got := vector.Add(namedVec{1, 2, 3, 4}, namedVec{1, 1, 1, 1})
	assert.Equal(t, namedVec{2, 3, 4, 5}, got)
	assert.Equal(t, 4, vector.Dim[namedVec]())
}
