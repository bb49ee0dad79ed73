package vm

import (
	"fmt"
	"strings"

	e "github.com/rami3l/govox/errors"
	"github.com/rami3l/govox/vmath"
	"github.com/rami3l/govox/vmath/scalar"
)

type nativeFn = func(vm *VM, args []Value) (Value, error)

type builtin struct {
	name string
	// Accepted argument counts.
	arities []int
	fn      nativeFn
}

func (b *builtin) accepts(argc int) bool {
	for _, n := range b.arities {
		if n == argc {
			return true
		}
	}
	return false
}

func (b *builtin) signature() string {
	counts := make([]string, len(b.arities))
	for i, n := range b.arities {
		counts[i] = fmt.Sprint(n)
	}
	plural := "s"
	if len(b.arities) == 1 && b.arities[0] == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s expects %s argument%s", b.name, strings.Join(counts, " or "), plural)
}

var (
	builtins     []builtin
	builtinIndex map[string]int
)

func init() {
	builtins = []builtin{
		{"vec2", []int{1, 2}, construct(2)},
		{"vec3", []int{1, 3}, construct(3)},
		{"vec4", []int{1, 4}, construct(4)},
		{"dot", []int{2}, dot},
		{"cross", []int{2}, cross},
		{"length", []int{1}, length},
		{"length2", []int{1}, lengthSquared},
		{"normalize", []int{1}, normalize},
		elementwise("sin", scalar.Sin[float64], vmath.Sin[vec2, float64], vmath.Sin[vec3, float64], vmath.Sin[vec4, float64]),
		elementwise("cos", scalar.Cos[float64], vmath.Cos[vec2, float64], vmath.Cos[vec3, float64], vmath.Cos[vec4, float64]),
		elementwise("tan", scalar.Tan[float64], vmath.Tan[vec2, float64], vmath.Tan[vec3, float64], vmath.Tan[vec4, float64]),
		elementwise("asin", scalar.Asin[float64], vmath.Asin[vec2, float64], vmath.Asin[vec3, float64], vmath.Asin[vec4, float64]),
		elementwise("acos", scalar.Acos[float64], vmath.Acos[vec2, float64], vmath.Acos[vec3, float64], vmath.Acos[vec4, float64]),
		elementwise("atan", scalar.Atan[float64], vmath.Atan[vec2, float64], vmath.Atan[vec3, float64], vmath.Atan[vec4, float64]),
		elementwise("abs", scalar.Abs[float64], vmath.Abs[vec2, float64], vmath.Abs[vec3, float64], vmath.Abs[vec4, float64]),
		elementwise("floor", scalar.Floor[float64], vmath.Floor[vec2, float64], vmath.Floor[vec3, float64], vmath.Floor[vec4, float64]),
		elementwise("ceil", scalar.Ceil[float64], vmath.Ceil[vec2, float64], vmath.Ceil[vec3, float64], vmath.Ceil[vec4, float64]),
		elementwise("trunc", scalar.Trunc[float64], vmath.Trunc[vec2, float64], vmath.Trunc[vec3, float64], vmath.Trunc[vec4, float64]),
		elementwise("round", scalar.Round[float64], vmath.Round[vec2, float64], vmath.Round[vec3, float64], vmath.Round[vec4, float64]),
		elementwise("fract", scalar.Fract[float64], vmath.Fract[vec2, float64], vmath.Fract[vec3, float64], vmath.Fract[vec4, float64]),
		elementwise("sign", scalar.Sign[float64], vmath.Sign[vec2, float64], vmath.Sign[vec3, float64], vmath.Sign[vec4, float64]),
		elementwise("radians", scalar.Radians[float64], vmath.Radians[vec2, float64], vmath.Radians[vec3, float64], vmath.Radians[vec4, float64]),
		elementwise("degrees", scalar.Degrees[float64], vmath.Degrees[vec2, float64], vmath.Degrees[vec3, float64], vmath.Degrees[vec4, float64]),
		elementwise("sqrt", scalar.Sqrt[float64], vmath.Sqrt[vec2, float64], vmath.Sqrt[vec3, float64], vmath.Sqrt[vec4, float64]),
		elementwise("exp", scalar.Exp[float64], vmath.Exp[vec2, float64], vmath.Exp[vec3, float64], vmath.Exp[vec4, float64]),
		elementwise("exp2", scalar.Exp2[float64], vmath.Exp2[vec2, float64], vmath.Exp2[vec3, float64], vmath.Exp2[vec4, float64]),
		elementwise("log", scalar.Log[float64], vmath.Log[vec2, float64], vmath.Log[vec3, float64], vmath.Log[vec4, float64]),
		elementwise("log2", scalar.Log2[float64], vmath.Log2[vec2, float64], vmath.Log2[vec3, float64], vmath.Log2[vec4, float64]),
		{"mod", []int{2}, mod},
		{"min", []int{2}, minMax(scalar.Min[float64], vmath.Min[vec2, float64], vmath.Min[vec3, float64], vmath.Min[vec4, float64])},
		{"max", []int{2}, minMax(scalar.Max[float64], vmath.Max[vec2, float64], vmath.Max[vec3, float64], vmath.Max[vec4, float64])},
		{"clamp", []int{3}, clamp},
	}

	builtinIndex = make(map[string]int, len(builtins))
	for i, b := range builtins {
		builtinIndex[b.name] = i
	}
}

func argError(name, want string) error {
	return fmt.Errorf("%s expects %s", name, want)
}

// construct builds a vector of the given size from either one component per
// axis or a single number that is copied to every axis.
func construct(size int) nativeFn {
	return func(_ *VM, args []Value) (Value, error) {
		xs := make([]float64, size)
		for i := range xs {
			arg := args[0]
			if len(args) > 1 {
				arg = args[i]
			}
			x, ok := arg.(VNum)
			if !ok {
				return nil, fmt.Errorf("vector components must be numbers, got %s", typeName(arg))
			}
			xs[i] = float64(x)
		}

		switch size {
		case 2:
			return VVec2(vmath.Vec2(xs[0], xs[1])), nil
		case 3:
			return VVec3(vmath.Vec3(xs[0], xs[1], xs[2])), nil
		case 4:
			return VVec4(vmath.Vec4(xs[0], xs[1], xs[2], xs[3])), nil
		default:
			panic(e.Unreachable)
		}
	}
}

func dot(_ *VM, args []Value) (Value, error) {
	switch a := args[0].(type) {
	case VVec2:
		if b, ok := args[1].(VVec2); ok {
			return VNum(vmath.Dot(vec2(a), vec2(b))), nil
		}
	case VVec3:
		if b, ok := args[1].(VVec3); ok {
			return VNum(vmath.Dot(vec3(a), vec3(b))), nil
		}
	case VVec4:
		if b, ok := args[1].(VVec4); ok {
			return VNum(vmath.Dot(vec4(a), vec4(b))), nil
		}
	}
	return nil, argError("dot", "two vectors of the same size")
}

func cross(_ *VM, args []Value) (Value, error) {
	a, okA := args[0].(VVec3)
	b, okB := args[1].(VVec3)
	if !okA || !okB {
		return nil, argError("cross", "two vec3")
	}
	return VVec3(vmath.Cross(vec3(a), vec3(b))), nil
}

func length(_ *VM, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case VVec2:
		return VNum(vmath.Length(vec2(v))), nil
	case VVec3:
		return VNum(vmath.Length(vec3(v))), nil
	case VVec4:
		return VNum(vmath.Length(vec4(v))), nil
	}
	return nil, argError("length", "a vector")
}

func lengthSquared(_ *VM, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case VVec2:
		return VNum(vmath.LengthSquared(vec2(v))), nil
	case VVec3:
		return VNum(vmath.LengthSquared(vec3(v))), nil
	case VVec4:
		return VNum(vmath.LengthSquared(vec4(v))), nil
	}
	return nil, argError("length2", "a vector")
}

func normalize(vm *VM, args []Value) (Value, error) {
	switch v := args[0].(type) {
	case VVec2:
		if v != (VVec2{}) {
			return VVec2(vmath.NormalizeWith(vec2(v), vm.policy)), nil
		}
	case VVec3:
		if v != (VVec3{}) {
			return VVec3(vmath.NormalizeWith(vec3(v), vm.policy)), nil
		}
	case VVec4:
		if v != (VVec4{}) {
			return VVec4(vmath.NormalizeWith(vec4(v), vm.policy)), nil
		}
	default:
		return nil, argError("normalize", "a vector")
	}
	return nil, fmt.Errorf("cannot normalize a zero-length vector")
}

// mapValue applies the function matching v's shape.
func mapValue(
	v Value,
	f func(float64) float64,
	f2 func(vec2) vec2,
	f3 func(vec3) vec3,
	f4 func(vec4) vec4,
) (Value, bool) {
	switch v := v.(type) {
	case VNum:
		return VNum(f(float64(v))), true
	case VVec2:
		return VVec2(f2(vec2(v))), true
	case VVec3:
		return VVec3(f3(vec3(v))), true
	case VVec4:
		return VVec4(f4(vec4(v))), true
	}
	return nil, false
}

func elementwise(
	name string,
	f func(float64) float64,
	f2 func(vec2) vec2,
	f3 func(vec3) vec3,
	f4 func(vec4) vec4,
) builtin {
	return builtin{name, []int{1}, func(_ *VM, args []Value) (Value, error) {
		if res, ok := mapValue(args[0], f, f2, f3, f4); ok {
			return res, nil
		}
		return nil, argError(name, "a number or a vector")
	}}
}

func mod(_ *VM, args []Value) (Value, error) {
	a, ok := args[1].(VNum)
	if !ok {
		return nil, argError("mod", "a number as its second argument")
	}
	m := float64(a)
	res, ok := mapValue(
		args[0],
		func(x float64) float64 { return scalar.Mod(x, m) },
		func(v vec2) vec2 { return vmath.Mod(v, m) },
		func(v vec3) vec3 { return vmath.Mod(v, m) },
		func(v vec4) vec4 { return vmath.Mod(v, m) },
	)
	if !ok {
		return nil, argError("mod", "a number or a vector as its first argument")
	}
	return res, nil
}

func clamp(_ *VM, args []Value) (Value, error) {
	lo, okLo := args[1].(VNum)
	hi, okHi := args[2].(VNum)
	if !okLo || !okHi {
		return nil, argError("clamp", "numbers as bounds")
	}
	l, h := float64(lo), float64(hi)
	res, ok := mapValue(
		args[0],
		func(x float64) float64 { return scalar.Clamp(x, l, h) },
		func(v vec2) vec2 { return vmath.Clamp(v, l, h) },
		func(v vec3) vec3 { return vmath.Clamp(v, l, h) },
		func(v vec4) vec4 { return vmath.Clamp(v, l, h) },
	)
	if !ok {
		return nil, argError("clamp", "a number or a vector as its first argument")
	}
	return res, nil
}

func minMax(
	f func(x, y float64) float64,
	f2 func(a, b vec2) vec2,
	f3 func(a, b vec3) vec3,
	f4 func(a, b vec4) vec4,
) nativeFn {
	return func(_ *VM, args []Value) (Value, error) {
		switch a := args[0].(type) {
		case VNum:
			if b, ok := args[1].(VNum); ok {
				return VNum(f(float64(a), float64(b))), nil
			}
		case VVec2:
			if b, ok := args[1].(VVec2); ok {
				return VVec2(f2(vec2(a), vec2(b))), nil
			}
		case VVec3:
			if b, ok := args[1].(VVec3); ok {
				return VVec3(f3(vec3(a), vec3(b))), nil
			}
		case VVec4:
			if b, ok := args[1].(VVec4); ok {
				return VVec4(f4(vec4(a), vec4(b))), nil
			}
		}
		return nil, fmt.Errorf("operands must be two numbers or two vectors of the same size")
	}
}
