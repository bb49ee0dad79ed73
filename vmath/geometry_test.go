package vmath_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rami3l/govox/vmath"
	"github.com/stretchr/testify/assert"
)

func TestGeometryExamples(t *testing.T) {
	t.Parallel()
	x, y, z := vmath.Vec3(1.0, 0.0, 0.0), vmath.Vec3(0.0, 1.0, 0.0), vmath.Vec3(0.0, 0.0, 1.0)
	assert.Equal(t, 0.0, vmath.Dot(x, y))
	assert.Equal(t, z, vmath.Cross(x, y))
	assert.Equal(t, x, vmath.Cross(y, z))
	assert.Equal(t, y, vmath.Cross(z, x))
	assert.Equal(t, 5.0, vmath.Length(vmath.Vec2(3.0, 4.0)))
	assert.Equal(t, 25.0, vmath.LengthSquared(vmath.Vec2(3.0, 4.0)))
	assert.Equal(t, 30.0, vmath.Dot(vmath.Vec4(1.0, 2.0, 3.0, 4.0), vmath.Vec4(1.0, 2.0, 3.0, 4.0)))
	assert.Equal(t, 14, vmath.LengthSquared(vmath.Vec3(1, 2, 3)))
	assert.Equal(t, float32(13), vmath.Length(vmath.Vector2[float32]{5, 12}))
}

func TestLengthSquaredMatchesLength(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randVec3(r)
		l := vmath.Length(v)
		assert.InDelta(t, l*l, vmath.LengthSquared(v), 1e-9)

		w := vmath.Vec4(v.X, v.Y, v.Z, r.Float64())
		lw := vmath.Length(w)
		assert.InDelta(t, lw*lw, vmath.LengthSquared(w), 1e-9)
	}
}

func TestDotCommutes(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a, b := randVec3(r), randVec3(r)
		assert.Equal(t, vmath.Dot(a, b), vmath.Dot(b, a))
		a2, b2 := vmath.Vec2(a.X, a.Y), vmath.Vec2(b.X, b.Y)
		assert.Equal(t, vmath.Dot(a2, b2), vmath.Dot(b2, a2))
	}
}

func TestCrossAnticommutes(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a, b := randVec3(r), randVec3(r)
		assert.Equal(t, vmath.Cross(a, b), vmath.Cross(b, a).Neg())

		// a × b is orthogonal to both operands.
		c := vmath.Cross(a, b)
		assert.InDelta(t, 0, vmath.Dot(c, a), 1e-9)
		assert.InDelta(t, 0, vmath.Dot(c, b), 1e-9)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		v := randVec3(r)
		if vmath.LengthSquared(v) == 0 {
			continue
		}
		assert.InDelta(t, 1, vmath.Length(vmath.Normalize(v)), eps)
		assert.InDelta(t, 1, vmath.Length(vmath.NormalizeFast(v)), vmath.FastNormalizeTolerance)

		v2 := vmath.Vec2(v.X, v.Y)
		assert.InDelta(t, 1, vmath.Length(vmath.NormalizeWith(v2, vmath.Exact)), eps)
		assert.InDelta(t, 1, vmath.Length(vmath.NormalizeWith(v2, vmath.Fast)), vmath.FastNormalizeTolerance)

		v4 := vmath.Vec4(v.X, v.Y, v.Z, -v.X)
		assert.InDelta(t, 1, vmath.Length(vmath.Normalize(v4)), eps)
		assert.InDelta(t, 1, vmath.Length(vmath.NormalizeFast(v4)), vmath.FastNormalizeTolerance)
	}
}

func TestNormalizeFloat32(t *testing.T) {
	t.Parallel()
	v := vmath.Vector3[float32]{3, -4, 12}
	assert.InDelta(t, 1, float64(vmath.Length(vmath.Normalize(v))), 1e-6)
	assert.InDelta(t, 1, float64(vmath.Length(vmath.NormalizeFast(v))), vmath.FastNormalizeTolerance)
}

func TestNormalizeExtremeMagnitudes(t *testing.T) {
	t.Parallel()
	for _, v := range []vmath.Vector3[float64]{
		{1e-200, 0, 0},
		{3e-170, -4e-170, 0},
		{1e200, 1e200, -1e200},
		{math.MaxFloat64, 0, 0},
		{0, -math.MaxFloat64, math.MaxFloat64},
	} {
		assert.InDelta(t, 1, vmath.Length(vmath.Normalize(v)), eps, "%v", v)
		assert.InDelta(t, 1, vmath.Length(vmath.NormalizeFast(v)), vmath.FastNormalizeTolerance, "%v", v)
	}
	assert.Equal(t, vmath.Vector3[float64]{1, 0, 0}, vmath.Normalize(vmath.Vector3[float64]{1e-200, 0, 0}))
	assert.Equal(t, vmath.Vector2[float32]{0, -1}, vmath.Normalize(vmath.Vector2[float32]{0, -1e-30}))
}

func TestNormalizeDirection(t *testing.T) {
	t.Parallel()
	n := vmath.Normalize(vmath.Vec3(0.0, -7.5, 0.0))
	assert.Equal(t, vmath.Vec3(0.0, -1.0, 0.0), n)

	f := vmath.NormalizeFast(vmath.Vec2(3.0, 4.0))
	assert.InDelta(t, 0.6, f.X, 0.6*vmath.FastNormalizeTolerance)
	assert.InDelta(t, 0.8, f.Y, 0.8*vmath.FastNormalizeTolerance)
	assert.InDelta(t, 0, vmath.Length(vmath.Cross(vmath.Vec3(f.X, f.Y, 0), vmath.Vec3(3.0, 4.0, 0))), 1e-12)
}

func TestNormalizePolicyString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Exact", vmath.Exact.String())
	assert.Equal(t, "Fast", vmath.Fast.String())
	assert.Equal(t, "NormalizePolicy(9)", vmath.NormalizePolicy(9).String())
}
