package scalar_test

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/rami3l/govox/vmath/scalar"
	"github.com/stretchr/testify/assert"
)

func TestFloat32Path(t *testing.T) {
	t.Parallel()
	for _, x := range []float32{0, 0.5, 1, 2, 10.25} {
		assert.Equal(t, math32.Sqrt(x), scalar.Sqrt(x))
		assert.Equal(t, math32.Sin(x), scalar.Sin(x))
		assert.Equal(t, math32.Floor(x), scalar.Floor(x))
		assert.InDelta(t, math.Exp2(float64(x)), float64(scalar.Exp2(x)), 1e-3)
	}
}

func TestFract(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.25, scalar.Fract(3.25))
	assert.Equal(t, 0.75, scalar.Fract(-3.25))
	assert.Equal(t, 0.0, scalar.Fract(2.0))
}

func TestAbs(t *testing.T) {
	t.Parallel()
	negZero := math.Copysign(0, -1)
	assert.False(t, math.Signbit(scalar.Abs(negZero)))
	assert.False(t, math.Signbit(float64(scalar.Abs(float32(negZero)))))
	assert.Equal(t, 2.5, scalar.Abs(-2.5))
	assert.Equal(t, float32(2.5), scalar.Abs(float32(-2.5)))
	assert.True(t, math.IsInf(scalar.Abs(math.Inf(-1)), 1))
	assert.Equal(t, 7, scalar.Abs(-7))
	assert.Equal(t, uint8(7), scalar.Abs(uint8(7)))
}

func TestSign(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, scalar.Sign(-42))
	assert.Equal(t, 0, scalar.Sign(0))
	assert.Equal(t, 1.0, scalar.Sign(0.001))
	assert.Equal(t, uint(1), scalar.Sign(uint(7)))
}

func TestMod(t *testing.T) {
	t.Parallel()
	cases := []struct{ x, a, want float64 }{
		{5.5, 2, 1.5},
		{-1, 2, 1},
		{1, -2, -1},
		{-4, 2, 0},
		{0.75, 0.5, 0.25},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, scalar.Mod(c.x, c.a), 1e-15, "mod(%v, %v)", c.x, c.a)
	}
	assert.Equal(t, 2, scalar.Mod(-7, 3))
	assert.Equal(t, -2, scalar.Mod(7, -3))
	assert.Equal(t, 0, scalar.Mod(-9, 3))
	assert.Equal(t, uint8(1), scalar.Mod(uint8(250), uint8(3)))
}

func TestClamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, scalar.Clamp(-1, 0, 3))
	assert.Equal(t, 3, scalar.Clamp(9, 0, 3))
	assert.Equal(t, 2, scalar.Clamp(2, 0, 3))
	assert.Equal(t, -1.0, scalar.Min(-1.0, 2.0))
	assert.Equal(t, 2.0, scalar.Max(-1.0, 2.0))
}

func TestAngles(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, math.Pi, scalar.Radians(180.0), 1e-15)
	assert.InDelta(t, 90.0, scalar.Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, float64(scalar.Radians(float32(90))), 1e-6)
}

func TestFastInverseSqrt(t *testing.T) {
	t.Parallel()
	for x := 1e-6; x < 1e9; x *= 1.37 {
		want := 1 / math.Sqrt(x)
		got := scalar.FastInverseSqrt(x)
		assert.InDelta(t, 0, (got-want)/want, 1.8e-3, "x = %v", x)

		want32 := 1 / math.Sqrt(float64(float32(x)))
		got32 := float64(scalar.FastInverseSqrt(float32(x)))
		assert.InDelta(t, 0, (got32-want32)/want32, 1.8e-3, "x = %v", x)
	}
}
