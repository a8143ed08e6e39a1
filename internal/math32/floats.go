// Package math32 provides scalar float32 math helpers for angle
// classification. This is an internal package - external users should use
// the scoring package.
package math32

import "math"

// HalfPi is the strict acute-angle threshold. The literal sits one ulp
// below float32(π/2), so an angle that computes to exactly π/2 never
// classifies as acute.
const HalfPi = float32(1.5707963)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Acos returns the arccosine of x in radians.
// x must already be clamped to [-1, 1]; out-of-range input yields NaN.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
