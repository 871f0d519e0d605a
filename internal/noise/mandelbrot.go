package noise

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/proctex/internal/fixedpt"
)

// escapeRadius2 is the squared escape radius, 4.0 in 52.12.
const escapeRadius2 = fixed.Int52_12(4 << fixedpt.Shift)

// Mandelbrot iterates z = z^2 + c from z = 0 and returns the escape
// iteration scaled to [0, 4096). Points that have not escaped after
// maxIter iterations return 4096.
func Mandelbrot(cx, cy fixed.Int52_12, maxIter int) int32 {
	if maxIter <= 0 {
		return fixedpt.One
	}
	var x, y fixed.Int52_12
	for i := 0; i < maxIter; i++ {
		x2 := x.Mul(x)
		y2 := y.Mul(y)
		if x2+y2 > escapeRadius2 {
			return int32(i * fixedpt.One / maxIter)
		}
		y = 2*x.Mul(y) + cy
		x = x2 - y2 + cx
	}
	return fixedpt.One
}
