// Package vmath implements generic 2, 3 and 4 component vectors and the usual
// vector algebra over them.
//
// Operations that only make sense for floating-point components (Dot, Length,
// Cross, Normalize and the trigonometric and rounding families) are
// constrained to constraints.Float, so using them on an integer vector is a
// compile error.
package vmath

import (
	"fmt"

	"github.com/rami3l/govox/vmath/scalar"
)

type Scalar = scalar.Scalar

// Vector is implemented by Vector2[T], Vector3[T] and Vector4[T].
// The free functions of this package are written once against it; V is the
// concrete vector type and T its component type.
type Vector[V any, T Scalar] interface {
	// Map applies f to every component.
	Map(f func(T) T) V
	// Zip combines corresponding components of the receiver and w with f.
	Zip(w V, f func(T, T) T) V
	// Sum adds up the components.
	Sum() T
	Scale(s T) V
}

type Vector2[T Scalar] struct{ X, Y T }

type Vector3[T Scalar] struct{ X, Y, Z T }

type Vector4[T Scalar] struct{ X, Y, Z, W T }

func Vec2[T Scalar](x, y T) Vector2[T]       { return Vector2[T]{x, y} }
func Vec3[T Scalar](x, y, z T) Vector3[T]    { return Vector3[T]{x, y, z} }
func Vec4[T Scalar](x, y, z, w T) Vector4[T] { return Vector4[T]{x, y, z, w} }

// SplatN returns a vector with every component set to s.
func Splat2[T Scalar](s T) Vector2[T] { return Vector2[T]{s, s} }
func Splat3[T Scalar](s T) Vector3[T] { return Vector3[T]{s, s, s} }
func Splat4[T Scalar](s T) Vector4[T] { return Vector4[T]{s, s, s, s} }

/* Vector2 */

func (v Vector2[T]) Map(f func(T) T) Vector2[T] { return Vector2[T]{f(v.X), f(v.Y)} }

func (v Vector2[T]) Zip(w Vector2[T], f func(T, T) T) Vector2[T] {
	return Vector2[T]{f(v.X, w.X), f(v.Y, w.Y)}
}

func (v Vector2[T]) Sum() T                      { return v.X + v.Y }
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] { return v.Zip(w, add[T]) }
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] { return v.Zip(w, sub[T]) }
func (v Vector2[T]) Mul(w Vector2[T]) Vector2[T] { return v.Zip(w, mul[T]) }
func (v Vector2[T]) Div(w Vector2[T]) Vector2[T] { return v.Zip(w, div[T]) }
func (v Vector2[T]) Scale(s T) Vector2[T]        { return Vector2[T]{v.X * s, v.Y * s} }
func (v Vector2[T]) Neg() Vector2[T]             { return Vector2[T]{-v.X, -v.Y} }
func (v Vector2[T]) String() string              { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

/* Vector3 */

func (v Vector3[T]) Map(f func(T) T) Vector3[T] { return Vector3[T]{f(v.X), f(v.Y), f(v.Z)} }

func (v Vector3[T]) Zip(w Vector3[T], f func(T, T) T) Vector3[T] {
	return Vector3[T]{f(v.X, w.X), f(v.Y, w.Y), f(v.Z, w.Z)}
}

func (v Vector3[T]) Sum() T                      { return v.X + v.Y + v.Z }
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] { return v.Zip(w, add[T]) }
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] { return v.Zip(w, sub[T]) }
func (v Vector3[T]) Mul(w Vector3[T]) Vector3[T] { return v.Zip(w, mul[T]) }
func (v Vector3[T]) Div(w Vector3[T]) Vector3[T] { return v.Zip(w, div[T]) }
func (v Vector3[T]) Scale(s T) Vector3[T]        { return Vector3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3[T]) Neg() Vector3[T]             { return Vector3[T]{-v.X, -v.Y, -v.Z} }

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

/* Vector4 */

func (v Vector4[T]) Map(f func(T) T) Vector4[T] {
	return Vector4[T]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func (v Vector4[T]) Zip(w Vector4[T], f func(T, T) T) Vector4[T] {
	return Vector4[T]{f(v.X, w.X), f(v.Y, w.Y), f(v.Z, w.Z), f(v.W, w.W)}
}

func (v Vector4[T]) Sum() T                      { return v.X + v.Y + v.Z + v.W }
func (v Vector4[T]) Add(w Vector4[T]) Vector4[T] { return v.Zip(w, add[T]) }
func (v Vector4[T]) Sub(w Vector4[T]) Vector4[T] { return v.Zip(w, sub[T]) }
func (v Vector4[T]) Mul(w Vector4[T]) Vector4[T] { return v.Zip(w, mul[T]) }
func (v Vector4[T]) Div(w Vector4[T]) Vector4[T] { return v.Zip(w, div[T]) }
func (v Vector4[T]) Scale(s T) Vector4[T]        { return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vector4[T]) Neg() Vector4[T]             { return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

func add[T Scalar](x, y T) T { return x + y }
func sub[T Scalar](x, y T) T { return x - y }
func mul[T Scalar](x, y T) T { return x * y }
func div[T Scalar](x, y T) T { return x / y }
