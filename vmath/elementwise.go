package vmath

import (
	"github.com/rami3l/govox/vmath/scalar"
	"golang.org/x/exp/constraints"
)

// Elementwise lifts a scalar function to a function applied to each component of a vector.
func Elementwise[V Vector[V, T], T Scalar](f func(T) T) func(V) V {
	return func(v V) V { return v.Map(f) }
}

func Sin[V Vector[V, T], T constraints.Float](v V) V     { return v.Map(scalar.Sin[T]) }
func Cos[V Vector[V, T], T constraints.Float](v V) V     { return v.Map(scalar.Cos[T]) }
func Tan[V Vector[V, T], T constraints.Float](v V) V     { return v.Map(scalar.Tan[T]) }
func Asin[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Asin[T]) }
func Acos[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Acos[T]) }
func Atan[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Atan[T]) }
func Floor[V Vector[V, T], T constraints.Float](v V) V   { return v.Map(scalar.Floor[T]) }
func Ceil[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Ceil[T]) }
func Trunc[V Vector[V, T], T constraints.Float](v V) V   { return v.Map(scalar.Trunc[T]) }
func Round[V Vector[V, T], T constraints.Float](v V) V   { return v.Map(scalar.Round[T]) }
func Fract[V Vector[V, T], T constraints.Float](v V) V   { return v.Map(scalar.Fract[T]) }
func Radians[V Vector[V, T], T constraints.Float](v V) V { return v.Map(scalar.Radians[T]) }
func Degrees[V Vector[V, T], T constraints.Float](v V) V { return v.Map(scalar.Degrees[T]) }
func Sqrt[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Sqrt[T]) }
func Exp[V Vector[V, T], T constraints.Float](v V) V     { return v.Map(scalar.Exp[T]) }
func Exp2[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Exp2[T]) }
func Log[V Vector[V, T], T constraints.Float](v V) V     { return v.Map(scalar.Log[T]) }
func Log2[V Vector[V, T], T constraints.Float](v V) V    { return v.Map(scalar.Log2[T]) }

func Abs[V Vector[V, T], T Scalar](v V) V  { return v.Map(scalar.Abs[T]) }
func Sign[V Vector[V, T], T Scalar](v V) V { return v.Map(scalar.Sign[T]) }

// Mod returns the floored modulo of each component against a.
func Mod[V Vector[V, T], T Scalar](v V, a T) V {
	return v.Map(func(x T) T { return scalar.Mod(x, a) })
}

func Min[V Vector[V, T], T Scalar](a, b V) V { return a.Zip(b, scalar.Min[T]) }
func Max[V Vector[V, T], T Scalar](a, b V) V { return a.Zip(b, scalar.Max[T]) }

// Clamp clamps each component of v into [lo, hi].
func Clamp[V Vector[V, T], T Scalar](v V, lo, hi T) V {
	return v.Map(func(x T) T { return scalar.Clamp(x, lo, hi) })
}
