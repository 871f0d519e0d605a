package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/fixedpt"
)

// blendMode selects how arithmetic combines its two inputs.
type blendMode uint8

const (
	blendAdd blendMode = iota
	blendSubtract
	blendMultiply
	blendDivide
	blendScreen
	blendOverlay
	blendDodge
	blendBurn
	blendMin
	blendMax
	blendDifference
	blendAverage
	blendModeCount
)

func (m blendMode) apply(a, b int32) int32 {
	const one = fixedpt.One
	switch m {
	case blendAdd:
		return a + b
	case blendSubtract:
		return a - b
	case blendMultiply:
		return fixedpt.Mul(a, b)
	case blendDivide:
		if b == 0 {
			return one
		}
		return fixedpt.Div(a, b)
	case blendScreen:
		return one - fixedpt.Mul(one-a, one-b)
	case blendOverlay:
		if a < fixedpt.Half {
			return 2 * fixedpt.Mul(a, b)
		}
		return one - 2*fixedpt.Mul(one-a, one-b)
	case blendDodge:
		if b >= one {
			return one
		}
		return min(fixedpt.Div(a, one-b), one)
	case blendBurn:
		if b <= 0 {
			return 0
		}
		return max(one-fixedpt.Div(one-a, b), 0)
	case blendMin:
		return min(a, b)
	case blendMax:
		return max(a, b)
	case blendDifference:
		return fixedpt.Abs(a - b)
	case blendAverage:
		return (a + b) >> 1
	}
	return a
}

// arithmetic combines two inputs value by value.
type arithmetic struct {
	mode
	noTables
	blend blendMode
}

func (arithmetic) arity() int { return 2 }

func (o *arithmetic) decodeField(f uint8, s *cryptobyte.String) error {
	switch f {
	case 0:
		return o.decodeMode(s)
	case 1:
		v, err := readU8(s)
		if err == nil && v >= int(blendModeCount) {
			err = errInvalid("blend mode", v)
		}
		o.blend = blendMode(v)
		return err
	}
	return errUnknownField(f)
}

func (o *arithmetic) combine(dst, b []int32) {
	for x, v := range b {
		dst[x] = o.blend.apply(dst[x], v)
	}
}

func (o *arithmetic) monoRow(e *evaluator, n *node, y int, out []int32) {
	copy(out, e.input(n, 0, y))
	o.combine(out, e.input(n, 1, y))
}

func (o *arithmetic) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	a := e.inputColour(n, 0, y)
	for ch := range out {
		copy(out[ch], a[ch])
	}
	b := e.inputColour(n, 1, y)
	for ch := range out {
		o.combine(out[ch], b[ch])
	}
}

// mixer interpolates between inputs A and B by a weight input: 4096 yields
// A and 0 yields B.
type mixer struct {
	mode
	noTables
}

func (mixer) arity() int { return 3 }

func (o *mixer) decodeField(f uint8, s *cryptobyte.String) error {
	if f != 0 {
		return errUnknownField(f)
	}
	return o.decodeMode(s)
}

func mix(dst, b, w []int32) {
	for x, a := range dst {
		dst[x] = fixedpt.Lerp(b[x], a, w[x])
	}
}

func (o *mixer) monoRow(e *evaluator, n *node, y int, out []int32) {
	w := e.scratchRows(n, 1)[0]
	copy(w, e.input(n, 2, y))
	copy(out, e.input(n, 0, y))
	mix(out, e.input(n, 1, y), w)
}

func (o *mixer) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	w := e.scratchRows(n, 1)[0]
	copy(w, e.input(n, 2, y))
	a := e.inputColour(n, 0, y)
	for ch := range out {
		copy(out[ch], a[ch])
	}
	b := e.inputColour(n, 1, y)
	for ch := range out {
		mix(out[ch], b[ch], w)
	}
}
