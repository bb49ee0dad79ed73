// Package scalar holds the per-component functions that the vector math in
// package vmath is built from.
//
// Float functions compute float32 arguments with math32 where it has an
// equivalent, and everything else through float64.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/rami3l/govox/utils"
	"golang.org/x/exp/constraints"
)

// Scalar is any type a vector can hold.
type Scalar = utils.Number

type Float = constraints.Float

func apply[T Float](x T, f64 func(float64) float64, f32 func(float32) float32) T {
	if f32 != nil {
		if x32, ok := any(x).(float32); ok {
			return T(f32(x32))
		}
	}
	return T(f64(float64(x)))
}

func Sin[T Float](x T) T   { return apply(x, math.Sin, math32.Sin) }
func Cos[T Float](x T) T   { return apply(x, math.Cos, math32.Cos) }
func Tan[T Float](x T) T   { return apply(x, math.Tan, math32.Tan) }
func Asin[T Float](x T) T  { return apply(x, math.Asin, nil) }
func Acos[T Float](x T) T  { return apply(x, math.Acos, nil) }
func Atan[T Float](x T) T  { return apply(x, math.Atan, nil) }
func Floor[T Float](x T) T { return apply(x, math.Floor, math32.Floor) }
func Ceil[T Float](x T) T  { return apply(x, math.Ceil, math32.Ceil) }
func Trunc[T Float](x T) T { return apply(x, math.Trunc, math32.Trunc) }

// Round rounds half away from zero.
func Round[T Float](x T) T { return apply(x, math.Round, nil) }
func Sqrt[T Float](x T) T  { return apply(x, math.Sqrt, math32.Sqrt) }
func Exp[T Float](x T) T   { return apply(x, math.Exp, math32.Exp) }
func Exp2[T Float](x T) T  { return apply(x, math.Exp2, nil) }
func Log[T Float](x T) T   { return apply(x, math.Log, math32.Log) }
func Log2[T Float](x T) T  { return apply(x, math.Log2, nil) }

// Fract returns the fractional part x - Floor(x), which is always in [0, 1).
func Fract[T Float](x T) T { return x - Floor(x) }

func Radians[T Float](deg T) T { return deg * T(math.Pi/180) }
func Degrees[T Float](rad T) T { return rad * T(180/math.Pi) }

// Abs returns the absolute value of x. For floats it clears the sign bit, so
// Abs(-0) is +0.
func Abs[T Scalar](x T) T {
	if utils.IsFloat[T]() {
		if x32, ok := any(x).(float32); ok {
			return T(math32.Abs(x32))
		}
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T Scalar](x T) T {
	return utils.BoolToNum[T](x > 0) - utils.BoolToNum[T](x < 0)
}

func Min[T Scalar](x, y T) T { return min(x, y) }
func Max[T Scalar](x, y T) T { return max(x, y) }

// Clamp returns min(max(x, lo), hi).
func Clamp[T Scalar](x, lo, hi T) T { return min(max(x, lo), hi) }

// Mod returns the floored modulo x - a*floor(x/a), which takes the sign of a.
// For integers a must be non-zero.
func Mod[T Scalar](x, a T) T {
	if utils.IsFloat[T]() {
		return x - a*T(math.Floor(float64(x/a)))
	}
	r := x - (x/a)*a
	if r != 0 && (r < 0) != (a < 0) {
		r += a
	}
	return r
}
