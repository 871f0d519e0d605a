package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/filter"
	"github.com/gogpu/proctex/internal/fixedpt"
)

// boxBlur averages a (2rx+1) x (2ry+1) window, wrapping at the edges.
type boxBlur struct {
	mode
	unary
	noTables
	radiusX, radiusY int
}

func (o *boxBlur) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = o.decodeMode(s)
	case 1:
		o.radiusX, err = readU8(s)
	case 2:
		o.radiusY, err = readU8(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *boxBlur) divisor() int32 {
	return int32((2*o.radiusX + 1) * (2*o.radiusY + 1))
}

func (o *boxBlur) monoRow(e *evaluator, n *node, y int, out []int32) {
	sum := e.scratchRows(n, 1)[0]
	fill(sum, 0)
	for k := -o.radiusY; k <= o.radiusY; k++ {
		filter.Accumulate(sum, e.input(n, 0, y+k))
	}
	filter.BoxRow(out, sum, o.radiusX, o.divisor())
}

func (o *boxBlur) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	sums := e.scratchRows(n, 3)
	for _, s := range sums {
		fill(s, 0)
	}
	for k := -o.radiusY; k <= o.radiusY; k++ {
		in := e.inputColour(n, 0, y+k)
		for ch := range sums {
			filter.Accumulate(sums[ch], in[ch])
		}
	}
	for ch := range out {
		filter.BoxRow(out[ch], sums[ch], o.radiusX, o.divisor())
	}
}

// mirror flips its input horizontally, vertically or both.
type mirror struct {
	mode
	unary
	noTables
	horizontal, vertical bool
}

func (o *mirror) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = o.decodeMode(s)
	case 1:
		o.horizontal, err = readBool(s)
	case 2:
		o.vertical, err = readBool(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *mirror) sourceRow(e *evaluator, y int) int {
	if o.vertical {
		return e.height - 1 - y
	}
	return y
}

func (o *mirror) copyRow(dst, src []int32) {
	if !o.horizontal {
		copy(dst, src)
		return
	}
	last := len(src) - 1
	for x := range dst {
		dst[x] = src[last-x]
	}
}

func (o *mirror) monoRow(e *evaluator, n *node, y int, out []int32) {
	o.copyRow(out, e.input(n, 0, o.sourceRow(e, y)))
}

func (o *mirror) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	in := e.inputColour(n, 0, o.sourceRow(e, y))
	for ch := range out {
		o.copyRow(out[ch], in[ch])
	}
}

// tiling repeats the top-left tilesX x tilesY fraction of its input, so
// output(x, y) = input(x mod (W/tilesX), y mod (H/tilesY)).
type tiling struct {
	mode
	unary
	tilesX, tilesY int
}

func (o *tiling) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = o.decodeMode(s)
	case 1:
		o.tilesX, err = readU8(s)
	case 2:
		o.tilesY, err = readU8(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *tiling) init() error {
	if o.tilesX == 0 || o.tilesY == 0 {
		return errInvalid("tile counts", [2]int{o.tilesX, o.tilesY})
	}
	return nil
}

func (o *tiling) periods(e *evaluator) (int, int) {
	return max(e.width/o.tilesX, 1), max(e.height/o.tilesY, 1)
}

func tileRow(dst, src []int32, period int) {
	for x := range dst {
		dst[x] = src[x%period]
	}
}

func (o *tiling) monoRow(e *evaluator, n *node, y int, out []int32) {
	pw, ph := o.periods(e)
	tileRow(out, e.input(n, 0, y%ph), pw)
}

func (o *tiling) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	pw, ph := o.periods(e)
	in := e.inputColour(n, 0, y%ph)
	for ch := range out {
		tileRow(out[ch], in[ch], pw)
	}
}

// gather fills out from arbitrary input pixels. sx and sy hold the source
// coordinates of every output pixel and sy is consumed: each input row is
// fetched once and fully read before the next one is requested.
func gather(e *evaluator, n *node, sx, sy []int32, out []int32) {
	for x := range out {
		row := sy[x]
		if row < 0 {
			continue
		}
		in := e.input(n, 0, int(row))
		for k := x; k < len(out); k++ {
			if sy[k] == row {
				out[k] = in[sx[k]]
				sy[k] = -1
			}
		}
	}
}

func gatherColour(e *evaluator, n *node, sx, sy []int32, out [3][]int32) {
	for x := range out[0] {
		row := sy[x]
		if row < 0 {
			continue
		}
		in := e.inputColour(n, 0, int(row))
		for k := x; k < len(out[0]); k++ {
			if sy[k] == row {
				s := sx[k]
				out[0][k], out[1][k], out[2][k] = in[0][s], in[1][s], in[2][s]
				sy[k] = -1
			}
		}
	}
}

// kaleidoscope folds every tile onto one octant of its input, giving
// eight-way mirror symmetry about each tile centre.
type kaleidoscope struct {
	mode
	unary
	tiles int32
}

func (o *kaleidoscope) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = o.decodeMode(s)
	case 1:
		var v int
		v, err = readU8(s)
		o.tiles = int32(v)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *kaleidoscope) init() error {
	if o.tiles == 0 {
		return errInvalid("tile count", 0)
	}
	return nil
}

// fold maps a texture coordinate into the source octant.
func (o *kaleidoscope) fold(u, v int32) (int32, int32) {
	dx := fixedpt.Abs((u*o.tiles)&fixedpt.Mask - fixedpt.Half)
	dy := fixedpt.Abs((v*o.tiles)&fixedpt.Mask - fixedpt.Half)
	if dy > dx {
		dx, dy = dy, dx
	}
	return fixedpt.Half + dx, fixedpt.Half + dy
}

func (o *kaleidoscope) coords(e *evaluator, n *node, y int) (sx, sy []int32) {
	rows := e.scratchRows(n, 2)
	sx, sy = rows[0], rows[1]
	v := e.y.ramp[y]
	for x := range sx {
		fu, fv := o.fold(e.x.ramp[x], v)
		sx[x] = int32(e.x.wrap(fixedpt.Scale(fu, e.width)))
		sy[x] = int32(e.y.wrap(fixedpt.Scale(fv, e.height)))
	}
	return sx, sy
}

func (o *kaleidoscope) monoRow(e *evaluator, n *node, y int, out []int32) {
	sx, sy := o.coords(e, n, y)
	gather(e, n, sx, sy, out)
}

func (o *kaleidoscope) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	sx, sy := o.coords(e, n, y)
	gatherColour(e, n, sx, sy, out)
}

// trigWarp displaces its input by sine waves: x by a wave along y and y by
// a wave along x.
type trigWarp struct {
	mode
	unary
	noTables
	amplitude int32
	waves     int32
}

func (o *trigWarp) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		err = o.decodeMode(s)
	case 1:
		o.amplitude, err = readU16(s)
	case 2:
		var v int
		v, err = readU8(s)
		o.waves = int32(v)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *trigWarp) offset(t int32) int32 {
	return fixedpt.Mul(o.amplitude, fixedpt.Sin(t*o.waves))
}

func (o *trigWarp) coords(e *evaluator, n *node, y int) (sx, sy []int32) {
	rows := e.scratchRows(n, 2)
	sx, sy = rows[0], rows[1]
	dx := fixedpt.Scale(o.offset(e.y.ramp[y]), e.width)
	for x := range sx {
		dy := fixedpt.Scale(o.offset(e.x.ramp[x]), e.height)
		sx[x] = int32(e.x.wrap(x + dx))
		sy[x] = int32(e.y.wrap(y + dy))
	}
	return sx, sy
}

func (o *trigWarp) monoRow(e *evaluator, n *node, y int, out []int32) {
	sx, sy := o.coords(e, n, y)
	gather(e, n, sx, sy, out)
}

func (o *trigWarp) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	sx, sy := o.coords(e, n, y)
	gatherColour(e, n, sx, sy, out)
}
