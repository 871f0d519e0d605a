package color

import "github.com/gogpu/proctex/internal/fixedpt"

// HueTurn is one full hue revolution in HSL.H units. Hue is kept at six
// times the channel scale so every primary and secondary sits on an integer.
const HueTurn = 6 * fixedpt.One

// HSL is a colour in hue, saturation, lightness form.
// H is in [0, HueTurn); S and L are on the 4096 scale.
type HSL struct {
	H, S, L int32
}

// ToHSL converts 4096-scale RGB channels to HSL.
// Channels outside [0, 4096] are clamped first.
func ToHSL(r, g, b int32) HSL {
	r, g, b = fixedpt.ClampUnit(r), fixedpt.ClampUnit(g), fixedpt.ClampUnit(b)
	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) >> 1
	if hi == lo {
		return HSL{L: l}
	}

	d := hi - lo
	var s int32
	if l > fixedpt.Half {
		s = int32((int64(d) << fixedpt.Shift) / int64(2*fixedpt.One-hi-lo))
	} else {
		s = int32((int64(d) << fixedpt.Shift) / int64(hi+lo))
	}

	var h int32
	switch hi {
	case r:
		h = int32((int64(g-b) << fixedpt.Shift) / int64(d))
		if h < 0 {
			h += HueTurn
		}
	case g:
		h = int32((int64(b-r)<<fixedpt.Shift)/int64(d)) + 2*fixedpt.One
	default:
		h = int32((int64(r-g)<<fixedpt.Shift)/int64(d)) + 4*fixedpt.One
	}
	return HSL{H: h, S: fixedpt.ClampUnit(s), L: l}
}

// RGB converts c back to 4096-scale channels.
func (c HSL) RGB() (r, g, b int32) {
	if c.S == 0 {
		return c.L, c.L, c.L
	}
	var q int32
	if c.L < fixedpt.Half {
		q = fixedpt.Mul(c.L, fixedpt.One+c.S)
	} else {
		q = c.L + c.S - fixedpt.Mul(c.L, c.S)
	}
	p := 2*c.L - q
	return hueChannel(p, q, c.H+2*fixedpt.One), hueChannel(p, q, c.H), hueChannel(p, q, c.H-2*fixedpt.One)
}

// Adjust shifts hue by dh (4096 = full turn) and adds ds and dl to
// saturation and lightness, clamping both to [0, 4096].
func (c HSL) Adjust(dh, ds, dl int32) HSL {
	h := (c.H + dh*6) % HueTurn
	if h < 0 {
		h += HueTurn
	}
	return HSL{
		H: h,
		S: fixedpt.ClampUnit(c.S + ds),
		L: fixedpt.ClampUnit(c.L + dl),
	}
}

// hueChannel evaluates one channel of the HSL to RGB piecewise ramp.
func hueChannel(p, q, t int32) int32 {
	t %= HueTurn
	if t < 0 {
		t += HueTurn
	}
	switch {
	case t < fixedpt.One:
		return p + int32((int64(q-p)*int64(t))>>fixedpt.Shift)
	case t < 3*fixedpt.One:
		return q
	case t < 4*fixedpt.One:
		return p + int32((int64(q-p)*int64(4*fixedpt.One-t))>>fixedpt.Shift)
	default:
		return p
	}
}
