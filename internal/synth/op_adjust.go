package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/color"
	"github.com/gogpu/proctex/internal/fixedpt"
	"github.com/gogpu/proctex/internal/gradient"
)

// pointwise is embedded by flexible single-input kinds that map every
// value independently. apply is called with the input already copied into
// out.
type pointwise struct {
	mode
	unary
}

func (p *pointwise) run(e *evaluator, n *node, y int, out []int32, apply func([]int32)) {
	copy(out, e.input(n, 0, y))
	apply(out)
}

func (p *pointwise) runColour(e *evaluator, n *node, y int, out [3][]int32, apply func([]int32)) {
	in := e.inputColour(n, 0, y)
	for ch := range out {
		copy(out[ch], in[ch])
		apply(out[ch])
	}
}

// decodeBounds decodes the fields shared by clamp and range.
func decodeBounds(m *mode, lo, hi *int32, f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = m.decodeMode(s)
	case 1:
		*lo, err = readU16(s)
	case 2:
		*hi, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

// clampOp limits values to [lo, hi].
type clampOp struct {
	pointwise
	lo, hi int32
}

func (o *clampOp) decodeField(f uint8, s *cryptobyte.String) error {
	return decodeBounds(&o.mode, &o.lo, &o.hi, f, s)
}

func (o *clampOp) init() error {
	if o.lo > o.hi {
		return errInvalid("clamp bounds", [2]int32{o.lo, o.hi})
	}
	return nil
}

func (o *clampOp) apply(row []int32) {
	for i, v := range row {
		row[i] = fixedpt.Clamp(v, o.lo, o.hi)
	}
}

func (o *clampOp) monoRow(e *evaluator, n *node, y int, out []int32) {
	o.run(e, n, y, out, o.apply)
}

func (o *clampOp) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	o.runColour(e, n, y, out, o.apply)
}

// rangeOp linearly remaps [0, 4096] onto [lo, hi].
type rangeOp struct {
	pointwise
	lo, hi int32
}

func (o *rangeOp) decodeField(f uint8, s *cryptobyte.String) error {
	return decodeBounds(&o.mode, &o.lo, &o.hi, f, s)
}

func (o *rangeOp) init() error {
	if o.lo > o.hi {
		return errInvalid("range bounds", [2]int32{o.lo, o.hi})
	}
	return nil
}

func (o *rangeOp) apply(row []int32) {
	for i, v := range row {
		row[i] = fixedpt.Lerp(o.lo, o.hi, fixedpt.ClampUnit(v))
	}
}

func (o *rangeOp) monoRow(e *evaluator, n *node, y int, out []int32) {
	o.run(e, n, y, out, o.apply)
}

func (o *rangeOp) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	o.runColour(e, n, y, out, o.apply)
}

// invert maps v to 4096 - v.
type invert struct {
	pointwise
	noTables
}

func (o *invert) decodeField(f uint8, s *cryptobyte.String) error {
	if f != 0 {
		return errUnknownField(f)
	}
	return o.decodeMode(s)
}

func invertRow(row []int32) {
	for i, v := range row {
		row[i] = fixedpt.One - v
	}
}

func (o *invert) monoRow(e *evaluator, n *node, y int, out []int32) {
	o.run(e, n, y, out, invertRow)
}

func (o *invert) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	o.runColour(e, n, y, out, invertRow)
}

// threshold outputs 4096 inside [lo, hi] and 0 elsewhere.
type threshold struct {
	unary
	monoOutput
	noTables
	lo, hi int32
}

func (o *threshold) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.lo, err = readU16(s)
	case 1:
		o.hi, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *threshold) monoRow(e *evaluator, n *node, y int, out []int32) {
	in := e.input(n, 0, y)
	for x, v := range in {
		if v >= o.lo && v <= o.hi {
			out[x] = fixedpt.One
		} else {
			out[x] = 0
		}
	}
}

func decodeInterpolation(s *cryptobyte.String) (gradient.Interpolation, error) {
	v, err := readU8(s)
	if err == nil && v > int(gradient.Cubic) {
		err = errInvalid("interpolation", v)
	}
	return gradient.Interpolation(v), err
}

// curve remaps values through a lookup table built from control points.
type curve struct {
	unary
	monoOutput
	interp gradient.Interpolation
	points []gradient.Point

	table *gradient.Table
}

func (o *curve) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.interp, err = decodeInterpolation(s)
	case 1:
		var n int
		if n, err = readCount(s, 4); err != nil {
			return err
		}
		o.points = make([]gradient.Point, n)
		for i := range o.points {
			if o.points[i].X, err = readU16(s); err != nil {
				return err
			}
			if o.points[i].Y, err = readU16(s); err != nil {
				return err
			}
		}
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *curve) init() error {
	o.table = gradient.NewCurve(o.points, o.interp)
	return nil
}

func (o *curve) monoRow(e *evaluator, n *node, y int, out []int32) {
	in := e.input(n, 0, y)
	for x, v := range in {
		out[x] = o.table.At(v)
	}
}

// gradientMap colours a monochrome input through a colour gradient.
type gradientMap struct {
	unary
	colourOutput
	interp gradient.Interpolation
	preset gradient.Preset
	stops  []gradient.Stop

	table *gradient.ColourTable
}

func (o *gradientMap) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.interp, err = decodeInterpolation(s)
	case 1:
		var v int
		v, err = readU8(s)
		o.preset = gradient.Preset(v)
		if _, ok := gradient.Presets[o.preset]; err == nil && !ok && o.preset != gradient.Custom {
			err = errInvalid("gradient preset", v)
		}
	case 2:
		var n int
		if n, err = readCount(s, 5); err != nil {
			return err
		}
		o.stops = make([]gradient.Stop, n)
		for i := range o.stops {
			if o.stops[i].Pos, err = readU16(s); err != nil {
				return err
			}
			if o.stops[i].RGB, err = readU24(s); err != nil {
				return err
			}
		}
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *gradientMap) init() error {
	stops := o.stops
	if o.preset != gradient.Custom {
		stops = gradient.Presets[o.preset]
	}
	o.table = gradient.NewColour(stops, o.interp)
	return nil
}

func (o *gradientMap) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	in := e.input(n, 0, y)
	for x, v := range in {
		out[0][x], out[1][x], out[2][x] = o.table.At(v)
	}
}

// colourize tints a monochrome input: every channel is the input scaled by
// the matching channel of the tint.
type colourize struct {
	unary
	colourOutput
	rgb int32

	tint [3]int32
}

func (o *colourize) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.rgb, err = readU24(s)
	return err
}

func (o *colourize) init() error {
	for ch := range o.tint {
		c := o.rgb >> (16 - 8*ch) & 0xff
		o.tint[ch] = c << fixedpt.Shift / 0xff
	}
	return nil
}

func (o *colourize) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	in := e.input(n, 0, y)
	for ch, t := range o.tint {
		for x, v := range in {
			out[ch][x] = fixedpt.Mul(v, t)
		}
	}
}

// hslAdjust shifts hue, saturation and lightness of a colour input.
type hslAdjust struct {
	unary
	colourOutput
	noTables
	hue, saturation, lightness int32
}

func (o *hslAdjust) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.hue, err = readS16(s)
	case 1:
		o.saturation, err = readS16(s)
	case 2:
		o.lightness, err = readS16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *hslAdjust) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	in := e.inputColour(n, 0, y)
	for x := range out[0] {
		c := color.ToHSL(in[0][x], in[1][x], in[2][x]).Adjust(o.hue, o.saturation, o.lightness)
		out[0][x], out[1][x], out[2][x] = c.RGB()
	}
}

// colourDelta adds or subtracts a constant on selected channels.
type colourDelta struct {
	unary
	colourOutput
	noTables
	delta [3]int32
}

// Layout of the packed delta field.
const (
	deltaNegative  = 1 << 15
	deltaMaskShift = 12
	deltaMagnitude = 0xfff
)

func (o *colourDelta) decodeField(f uint8, s *cryptobyte.String) error {
	if f != 0 {
		return errUnknownField(f)
	}
	v, err := readU16(s)
	if err != nil {
		return err
	}
	d := v & deltaMagnitude
	if v&deltaNegative != 0 {
		d = -d
	}
	mask := v >> deltaMaskShift & 7
	for ch := range o.delta {
		// R is the high bit of the mask.
		if mask&(4>>ch) != 0 {
			o.delta[ch] = d
		} else {
			o.delta[ch] = 0
		}
	}
	return nil
}

func (o *colourDelta) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	in := e.inputColour(n, 0, y)
	for ch, d := range o.delta {
		for x, v := range in[ch] {
			out[ch][x] = v + d
		}
	}
}
