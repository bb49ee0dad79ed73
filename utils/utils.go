package utils

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func BoolToNum[N Number](b bool) N {
	if b {
		return 1
	}
	return 0
}

// IsFloat reports whether N has a fractional part, i.e. is a floating-point type.
func IsFloat[N Number]() bool {
	var half N = 1
	half /= 2
	return half != 0
}
