package color

import (
	"math"

	"github.com/gogpu/proctex/internal/cache"
)

// BrightnessTable maps an 8-bit channel through the brightness exponent:
// t[i] = min(255, round(255 * (i/255)^brightness)).
type BrightnessTable [256]uint8

// brightnessTables memoises tables by exponent; renders tend to reuse a
// handful of brightness settings.
var brightnessTables = cache.New[float64, *BrightnessTable](32)

// Brightness returns the shared, read-only table for the exponent b.
// Non-positive or non-finite exponents fall back to the identity table.
func Brightness(b float64) *BrightnessTable {
	if b <= 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		b = 1
	}
	return brightnessTables.GetOrCreate(b, func() *BrightnessTable {
		return newBrightnessTable(b)
	})
}

// newBrightnessTable builds the table for exponent b.
func newBrightnessTable(b float64) *BrightnessTable {
	var t BrightnessTable
	for i := range t {
		v := math.Round(255 * math.Pow(float64(i)/255, b))
		if v > 255 {
			v = 255
		}
		t[i] = uint8(v)
	}
	return &t
}
