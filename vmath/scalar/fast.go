package scalar

import "math"

const (
	invSqrtMagic32 = 0x5f3759df
	invSqrtMagic64 = 0x5fe6eb50c7b537a9
)

// FastInverseSqrt approximates 1/Sqrt(x) for x > 0 with a bit-level initial
// guess refined by one Newton step. The relative error stays below 1.8e-3.
func FastInverseSqrt[T Float](x T) T {
	if x32, ok := any(x).(float32); ok {
		y := math.Float32frombits(invSqrtMagic32 - math.Float32bits(x32)>>1)
		y *= 1.5 - 0.5*x32*y*y
		return T(y)
	}
	x64 := float64(x)
	y := math.Float64frombits(invSqrtMagic64 - math.Float64bits(x64)>>1)
	y *= 1.5 - 0.5*x64*y*y
	return T(y)
}
