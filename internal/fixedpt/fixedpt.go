// Package fixedpt provides the 12-bit fixed-point arithmetic shared by every
// texture operation.
//
// Intensities live on a 0..4096 scale where 4096 represents 1.0. Angles use
// the same scale for one full turn, so 1024 is a quarter turn.
package fixedpt

import "golang.org/x/image/math/fixed"

const (
	// Shift is the number of fractional bits.
	Shift = 12

	// One is 1.0 in fixed point.
	One = 1 << Shift

	// Half is 0.5 in fixed point.
	Half = One / 2

	// Mask extracts the fractional part of a fixed-point value.
	Mask = One - 1
)

// Mul multiplies two fixed-point values, truncating toward negative infinity.
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> Shift)
}

// Div divides a by b. Division by zero saturates to One (or -One for a
// negative numerator, 0 for a zero numerator) instead of faulting.
func Div(a, b int32) int32 {
	if b == 0 {
		switch {
		case a > 0:
			return One
		case a < 0:
			return -One
		default:
			return 0
		}
	}
	return int32((int64(a) << Shift) / int64(b))
}

// Lerp interpolates from a to b by t, where t = One yields b.
func Lerp(a, b, t int32) int32 {
	return a + int32((int64(b-a)*int64(t))>>Shift)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUnit restricts v to [0, One].
func ClampUnit(v int32) int32 {
	return Clamp(v, 0, One)
}

// Abs returns the absolute value of v.
func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns floor(sqrt(v)) for v >= 0 and 0 otherwise.
func Sqrt(v int64) int32 {
	if v <= 0 {
		return 0
	}
	// Newton iteration from a power-of-two upper bound.
	x := int64(1)
	for x*x <= v && x < 1<<31 {
		x <<= 1
	}
	for {
		y := (x + v/x) >> 1
		if y >= x {
			break
		}
		x = y
	}
	for x*x > v {
		x--
	}
	return int32(x)
}

// Hypot returns the fixed-point length of the vector (dx, dy).
func Hypot(dx, dy int32) int32 {
	return Sqrt(int64(dx)*int64(dx) + int64(dy)*int64(dy))
}

// ToQ converts a 4096-scale value to the 52.12 representation used where
// intermediate values exceed the int32 range.
func ToQ(v int32) fixed.Int52_12 {
	return fixed.Int52_12(v)
}

// Scale maps a 4096-scale coordinate onto an axis of n pixels.
func Scale(v int32, n int) int {
	return int((int64(v) * int64(n)) >> Shift)
}
