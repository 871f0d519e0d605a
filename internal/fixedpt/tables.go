package fixedpt

import (
	"math"
	"sync"
)

// tableSize is the number of steps in one full turn.
const tableSize = One

// sineTable holds sin(2*pi*i/4096) on the 4096 scale. Built on first use and
// shared read-only afterwards.
var sineTable = sync.OnceValue(func() *[tableSize]int32 {
	var t [tableSize]int32
	for i := range t {
		t[i] = int32(math.Round(math.Sin(2*math.Pi*float64(i)/tableSize) * One))
	}
	return &t
})

// fadeTable holds the quintic smoothstep 6t^5 - 15t^4 + 10t^3 for t in [0, One].
var fadeTable = sync.OnceValue(func() *[One + 1]int32 {
	var t [One + 1]int32
	for i := range t {
		x := float64(i) / One
		t[i] = int32(math.Round(x * x * x * (x*(x*6-15) + 10) * One))
	}
	return &t
})

// cosineTable holds (1 - cos(pi*t)) / 2 for t in [0, One], the easing used by
// cosine interpolation.
var cosineTable = sync.OnceValue(func() *[One + 1]int32 {
	var t [One + 1]int32
	for i := range t {
		t[i] = int32(math.Round((1 - math.Cos(math.Pi*float64(i)/One)) / 2 * One))
	}
	return &t
})

// Sin returns the sine of angle (4096 = full turn) on the 4096 scale.
func Sin(angle int32) int32 {
	return sineTable()[angle&(tableSize-1)]
}

// Cos returns the cosine of angle (4096 = full turn) on the 4096 scale.
func Cos(angle int32) int32 {
	return sineTable()[(angle+tableSize/4)&(tableSize-1)]
}

// Fade applies the quintic smoothstep to t, clamped to [0, One].
func Fade(t int32) int32 {
	return fadeTable()[ClampUnit(t)]
}

// CosineEase applies the half-cosine easing curve to t, clamped to [0, One].
func CosineEase(t int32) int32 {
	return cosineTable()[ClampUnit(t)]
}
