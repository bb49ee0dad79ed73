package vmath

import (
	"github.com/rami3l/govox/debug"
	"github.com/rami3l/govox/vmath/scalar"
	"golang.org/x/exp/constraints"
)

//go:generate stringer -type=NormalizePolicy
type NormalizePolicy uint8

const (
	// Exact divides by the true length.
	Exact NormalizePolicy = iota
	// Fast multiplies by scalar.FastInverseSqrt of the squared length.
	Fast
)

// FastNormalizeTolerance bounds |Length(NormalizeFast(v)) - 1|.
const FastNormalizeTolerance = 2e-3

func Dot[V Vector[V, T], T constraints.Float](a, b V) T { return a.Zip(b, mul[T]).Sum() }

func LengthSquared[V Vector[V, T], T Scalar](v V) T { return v.Zip(v, mul[T]).Sum() }

func Length[V Vector[V, T], T constraints.Float](v V) T { return scalar.Sqrt(LengthSquared[V, T](v)) }

// Cross returns the right-handed cross product a × b.
func Cross[T constraints.Float](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns v scaled to unit length.
//
// v is first divided by its largest absolute component, so vectors whose
// squared length would underflow or overflow still normalize correctly.
// v must not be the zero vector. That is asserted in debug builds; release
// builds return the zero vector unchanged.
func Normalize[V Vector[V, T], T constraints.Float](v V) V {
	u, ok := rescale[V, T](v)
	if !ok {
		return v
	}
	l := Length[V, T](u)
	return u.Map(func(x T) T { return x / l })
}

// NormalizeFast is Normalize with an approximate reciprocal square root.
// The result's length is within FastNormalizeTolerance of 1.
func NormalizeFast[V Vector[V, T], T constraints.Float](v V) V {
	u, ok := rescale[V, T](v)
	if !ok {
		return v
	}
	return u.Scale(scalar.FastInverseSqrt(LengthSquared[V, T](u)))
}

func NormalizeWith[V Vector[V, T], T constraints.Float](v V, policy NormalizePolicy) V {
	switch policy {
	case Exact:
		return Normalize[V, T](v)
	case Fast:
		return NormalizeFast[V, T](v)
	default:
		debug.Unreachable("unknown normalize policy %d", policy)
		return Normalize[V, T](v)
	}
}

// rescale divides v by its largest absolute component. The squared length of
// the result lies in [1, 4].
func rescale[V Vector[V, T], T constraints.Float](v V) (V, bool) {
	var m T
	v.Map(func(x T) T {
		m = max(m, scalar.Abs(x))
		return x
	})
	debug.Assertf(m != 0, "maxAbs(v) != 0", "cannot normalize a zero-length vector")
	if m == 0 {
		return v, false
	}
	return v.Map(func(x T) T { return x / m }), true
}
