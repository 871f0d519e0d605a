package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/fixedpt"
	"github.com/gogpu/proctex/internal/noise"
)

// bricks is a running-bond brick wall. Mortar is 0; each brick carries its
// own shade.
type bricks struct {
	source
	monoOutput
	columns, rows int
	stagger       int32
	mortar        int32
	seed          uint32
	variance      int32
	jitter        int32

	offsets []int32 // per row, fraction of a brick width
	shades  []int32 // per brick
}

func (o *bricks) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.columns, err = readU8(s)
	case 1:
		o.rows, err = readU8(s)
	case 2:
		o.stagger, err = readU16(s)
	case 3:
		o.mortar, err = readU16(s)
	case 4:
		var v int32
		v, err = readU16(s)
		o.seed = uint32(v)
	case 5:
		o.variance, err = readU16(s)
	case 6:
		o.jitter, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *bricks) init() error {
	if o.columns == 0 || o.rows == 0 {
		return errInvalid("brick grid", [2]int{o.columns, o.rows})
	}
	rng := noise.Source(o.seed)
	o.offsets = make([]int32, o.rows)
	for r := range o.offsets {
		off := int32(r) * o.stagger
		if o.jitter > 0 {
			off += rng.Int32N(o.jitter + 1)
		}
		o.offsets[r] = off & fixedpt.Mask
	}
	o.shades = make([]int32, o.rows*o.columns)
	for i := range o.shades {
		o.shades[i] = fixedpt.One
		if o.variance > 0 {
			o.shades[i] -= rng.Int32N(o.variance + 1)
		}
	}
	return nil
}

func (o *bricks) monoRow(e *evaluator, _ *node, y int, out []int32) {
	v := e.y.ramp[y] * int32(o.rows)
	row := int(v >> fixedpt.Shift)
	fy := v & fixedpt.Mask

	// Mortar is measured in brick heights; horizontally it is rescaled so
	// joints are equally thick in both directions.
	half := o.mortar / 2
	halfX := half * int32(o.columns) / int32(o.rows)
	if fy < half || fy >= fixedpt.One-half {
		fill(out, 0)
		return
	}

	for x := range out {
		u := e.x.ramp[x]*int32(o.columns) + o.offsets[row]
		col := int(u>>fixedpt.Shift) % o.columns
		fx := u & fixedpt.Mask
		if fx < halfX || fx >= fixedpt.One-halfX {
			out[x] = 0
			continue
		}
		out[x] = o.shades[row*o.columns+col]
	}
}

// irregularBricks is a wall of rows with random heights, each split into a
// random number of bricks of random widths.
type irregularBricks struct {
	source
	monoOutput
	seed                   uint32
	rows                   int
	minColumns, maxColumns int
	mortar                 int32
	heightVariance         int32
	variance               int32

	rowEdges []int32   // rows+1 edges on the 4096 scale
	colEdges [][]int32 // per row, columns+1 edges
	shifts   []int32   // per row horizontal offset
	shades   [][]int32 // per row, per brick
}

func (o *irregularBricks) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		var v int32
		v, err = readU16(s)
		o.seed = uint32(v)
	case 1:
		o.rows, err = readU8(s)
	case 2:
		o.minColumns, err = readU8(s)
	case 3:
		o.maxColumns, err = readU8(s)
	case 4:
		o.mortar, err = readU16(s)
	case 5:
		o.heightVariance, err = readU16(s)
	case 6:
		o.variance, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

// randomEdges splits [0, 4096] into n spans whose relative sizes vary by up
// to variance.
func randomEdges(rng interface{ Int32N(int32) int32 }, n int, variance int32) []int32 {
	variance = min(variance, fixedpt.One)
	sizes := make([]int64, n)
	var total int64
	for i := range sizes {
		sizes[i] = fixedpt.One
		if variance > 0 {
			sizes[i] += int64(rng.Int32N(variance+1)) - int64(variance/2)
		}
		total += sizes[i]
	}
	edges := make([]int32, n+1)
	var acc int64
	for i, sz := range sizes {
		acc += sz
		edges[i+1] = int32(acc * fixedpt.One / total)
	}
	edges[n] = fixedpt.One
	return edges
}

func (o *irregularBricks) init() error {
	if o.rows == 0 || o.minColumns == 0 || o.maxColumns < o.minColumns {
		return errInvalid("irregular brick layout", [3]int{o.rows, o.minColumns, o.maxColumns})
	}
	rng := noise.Source(o.seed)
	o.rowEdges = randomEdges(rng, o.rows, o.heightVariance)
	o.colEdges = make([][]int32, o.rows)
	o.shifts = make([]int32, o.rows)
	o.shades = make([][]int32, o.rows)
	for r := range o.rows {
		cols := o.minColumns + rng.IntN(o.maxColumns-o.minColumns+1)
		o.colEdges[r] = randomEdges(rng, cols, fixedpt.One)
		o.shifts[r] = rng.Int32N(fixedpt.One)
		o.shades[r] = make([]int32, cols)
		for c := range o.shades[r] {
			o.shades[r][c] = fixedpt.One
			if o.variance > 0 {
				o.shades[r][c] -= rng.Int32N(o.variance + 1)
			}
		}
	}
	return nil
}

// span returns the index of the span of edges containing v, and the
// distance from v to the nearer edge of that span.
func span(edges []int32, v int32) (int, int32) {
	i := 0
	for i < len(edges)-2 && v >= edges[i+1] {
		i++
	}
	return i, min(v-edges[i], edges[i+1]-v)
}

func (o *irregularBricks) monoRow(e *evaluator, _ *node, y int, out []int32) {
	half := o.mortar / 2
	row, dy := span(o.rowEdges, e.y.ramp[y])
	if dy < half {
		fill(out, 0)
		return
	}
	edges, shades, shift := o.colEdges[row], o.shades[row], o.shifts[row]
	for x := range out {
		col, dx := span(edges, (e.x.ramp[x]+shift)&fixedpt.Mask)
		if dx < half {
			out[x] = 0
			continue
		}
		out[x] = shades[col]
	}
}

// herringbone lays bricks of ratio:1 proportions in alternating horizontal
// and vertical runs. The pattern repeats every 2*ratio cells, so an even
// brick count tiles seamlessly.
type herringbone struct {
	source
	monoOutput
	noTables
	bricks int
	ratio  int
	mortar int32
}

func (o *herringbone) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.bricks, err = readU8(s)
		if err == nil && o.bricks == 0 {
			err = errInvalid("brick count", 0)
		}
	case 1:
		o.ratio, err = readU8(s)
		if err == nil && o.ratio == 0 {
			err = errInvalid("ratio", 0)
		}
	case 2:
		o.mortar, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

// Shades of the two brick orientations.
const (
	herringboneHorizontal = fixedpt.One
	herringboneVertical   = 3 * fixedpt.One / 4
)

func (o *herringbone) monoRow(e *evaluator, _ *node, y int, out []int32) {
	cells := int32(o.bricks * o.ratio)
	period := 2 * o.ratio
	cv := e.y.ramp[y] * cells
	j := int(cv >> fixedpt.Shift)
	fv := cv & fixedpt.Mask

	for x := range out {
		cu := e.x.ramp[x] * cells
		i := int(cu >> fixedpt.Shift)
		fu := cu & fixedpt.Mask

		d := ((i-j)%period + period) % period
		if d < o.ratio {
			// Horizontal brick: joins along its top edge and at its left end.
			if fv < o.mortar || (d == 0 && fu < o.mortar) {
				out[x] = 0
			} else {
				out[x] = herringboneHorizontal
			}
			continue
		}
		// Vertical brick: joins along its left edge and at its top end.
		if fu < o.mortar || (d == o.ratio && fv < o.mortar) {
			out[x] = 0
		} else {
			out[x] = herringboneVertical
		}
	}
}

// weave is a plain over-under weave of rounded threads.
type weave struct {
	source
	monoOutput
	noTables
	threads int
	gap     int32
}

func (o *weave) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.threads, err = readU8(s)
		if err == nil && o.threads == 0 {
			err = errInvalid("thread count", 0)
		}
	case 1:
		o.gap, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

// profile is the cross-section of a thread at offset f across its width,
// rising from 0 at the edges to 4096 at the centre.
func (o *weave) profile(f int32) int32 {
	half := o.gap / 2
	if f < half || f >= fixedpt.One-half {
		return -1
	}
	return fixedpt.Sin(f >> 1)
}

func (o *weave) monoRow(e *evaluator, _ *node, y int, out []int32) {
	threads := int32(o.threads)
	cv := e.y.ramp[y] * threads
	j := int(cv >> fixedpt.Shift)
	fv := cv & fixedpt.Mask

	for x := range out {
		cu := e.x.ramp[x] * threads
		i := int(cu >> fixedpt.Shift)
		fu := cu & fixedpt.Mask

		// Across a horizontal thread the profile follows v; across a
		// vertical one it follows u.
		top, under := o.profile(fv), o.profile(fu)
		if (i+j)&1 != 0 {
			top, under = under, top
		}
		switch {
		case top >= 0:
			out[x] = fixedpt.One/4 + top*3/4
		case under >= 0:
			out[x] = under / 2
		default:
			out[x] = 0
		}
	}
}

// squareWave alternates full and empty bands along one axis.
type squareWave struct {
	source
	monoOutput
	noTables
	periods  int32
	duty     int32
	vertical bool
}

func (o *squareWave) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		var v int
		v, err = readU8(s)
		o.periods = int32(v)
	case 1:
		o.duty, err = readU16(s)
	case 2:
		o.vertical, err = readBool(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *squareWave) level(coord int32) int32 {
	if (coord*o.periods)&fixedpt.Mask < o.duty {
		return fixedpt.One
	}
	return 0
}

func (o *squareWave) monoRow(e *evaluator, _ *node, y int, out []int32) {
	if o.vertical {
		fill(out, o.level(e.y.ramp[y]))
		return
	}
	for x := range out {
		out[x] = o.level(e.x.ramp[x])
	}
}
