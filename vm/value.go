package vm

import (
	"fmt"

	"github.com/rami3l/govox/vmath"
)

type (
	vec2 = vmath.Vector2[float64]
	vec3 = vmath.Vector3[float64]
	vec4 = vmath.Vector4[float64]
)

type Value interface{ isValue() }

type VNum float64

func (_ VNum) isValue()       {}
func (v VNum) String() string { return fmt.Sprintf("%g", float64(v)) }

type VVec2 vec2

func (_ VVec2) isValue() {}
func (v VVec2) String() string {
	return fmt.Sprintf("vec2(%g, %g)", v.X, v.Y)
}

type VVec3 vec3

func (_ VVec3) isValue() {}
func (v VVec3) String() string {
	return fmt.Sprintf("vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}

type VVec4 vec4

func (_ VVec4) isValue() {}
func (v VVec4) String() string {
	return fmt.Sprintf("vec4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// VIdent is the name of a global, stored in the constant table.
type VIdent string

func (_ VIdent) isValue()       {}
func (v VIdent) String() string { return string(v) }

func typeName(v Value) string {
	switch v.(type) {
	case VNum:
		return "number"
	case VVec2:
		return "vec2"
	case VVec3:
		return "vec3"
	case VVec4:
		return "vec4"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// arith applies op to numbers, componentwise to vectors of the same size,
// and broadcasts a number against a vector.
func arith(v, w Value, op func(x, y float64) float64) (res Value, ok bool) {
	switch v := v.(type) {
	case VNum:
		x := float64(v)
		lhs := func(y float64) float64 { return op(x, y) }
		switch w := w.(type) {
		case VNum:
			return VNum(op(x, float64(w))), true
		case VVec2:
			return VVec2(vec2(w).Map(lhs)), true
		case VVec3:
			return VVec3(vec3(w).Map(lhs)), true
		case VVec4:
			return VVec4(vec4(w).Map(lhs)), true
		}
	case VVec2:
		switch w := w.(type) {
		case VNum:
			return VVec2(vec2(v).Map(rhs(op, w))), true
		case VVec2:
			return VVec2(vec2(v).Zip(vec2(w), op)), true
		}
	case VVec3:
		switch w := w.(type) {
		case VNum:
			return VVec3(vec3(v).Map(rhs(op, w))), true
		case VVec3:
			return VVec3(vec3(v).Zip(vec3(w), op)), true
		}
	case VVec4:
		switch w := w.(type) {
		case VNum:
			return VVec4(vec4(v).Map(rhs(op, w))), true
		case VVec4:
			return VVec4(vec4(v).Zip(vec4(w), op)), true
		}
	}
	return nil, false
}

func rhs(op func(x, y float64) float64, y VNum) func(float64) float64 {
	return func(x float64) float64 { return op(x, float64(y)) }
}

func VAdd(v, w Value) (Value, bool) {
	return arith(v, w, func(x, y float64) float64 { return x + y })
}

func VSub(v, w Value) (Value, bool) {
	return arith(v, w, func(x, y float64) float64 { return x - y })
}

func VMul(v, w Value) (Value, bool) {
	return arith(v, w, func(x, y float64) float64 { return x * y })
}

func VDiv(v, w Value) (Value, bool) {
	return arith(v, w, func(x, y float64) float64 { return x / y })
}

func VNeg(v Value) (res Value, ok bool) {
	switch v := v.(type) {
	case VNum:
		return -v, true
	case VVec2:
		return VVec2(vec2(v).Neg()), true
	case VVec3:
		return VVec3(vec3(v).Neg()), true
	case VVec4:
		return VVec4(vec4(v).Neg()), true
	}
	return nil, false
}

// VField returns the idx-th component (x, y, z, w) of a vector.
func VField(v Value, idx int) (res Value, ok bool) {
	var comps []float64
	switch v := v.(type) {
	case VVec2:
		comps = []float64{v.X, v.Y}
	case VVec3:
		comps = []float64{v.X, v.Y, v.Z}
	case VVec4:
		comps = []float64{v.X, v.Y, v.Z, v.W}
	}
	if idx >= len(comps) {
		return nil, false
	}
	return VNum(comps[idx]), true
}
