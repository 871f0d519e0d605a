// Package gradient builds the 257-entry lookup tables behind the curve and
// gradient-map operations.
//
// A table samples its control points every 16 units across [0, 4096], so
// lookups reduce to a shift and an index. Tables are built once when a
// texture definition is decoded and are read-only afterwards.
package gradient

import (
	"slices"

	"github.com/gogpu/proctex/internal/color"
	"github.com/gogpu/proctex/internal/fixedpt"
)

// Size is the number of entries in a lookup table.
const Size = fixedpt.One>>4 + 1

// Interpolation selects how values between control points are computed.
type Interpolation uint8

const (
	// Linear interpolates along straight segments.
	Linear Interpolation = iota
	// Cosine eases in and out of every control point.
	Cosine
	// Cubic fits a Catmull-Rom spline through the points, clamped to
	// the range of the control values.
	Cubic
)

// Point is a control point: the value Y at input X, both on the 4096 scale.
type Point struct {
	X, Y int32
}

// Table maps a 4096-scale input to an output value.
type Table [Size]int32

// At returns the table value for v, clamping v to [0, 4096].
func (t *Table) At(v int32) int32 {
	return t[fixedpt.ClampUnit(v)>>4]
}

// NewCurve builds a table through points. No points yields the identity
// curve; a single point yields a constant.
func NewCurve(points []Point, interp Interpolation) *Table {
	pts := slices.Clone(points)
	slices.SortStableFunc(pts, func(a, b Point) int { return int(a.X - b.X) })
	pts = slices.CompactFunc(pts, func(a, b Point) bool { return a.X == b.X })
	if len(pts) == 0 {
		pts = []Point{{0, 0}, {fixedpt.One, fixedpt.One}}
	}

	lo, hi := pts[0].Y, pts[0].Y
	for _, p := range pts {
		lo = min(lo, p.Y)
		hi = max(hi, p.Y)
	}

	var t Table
	k := 0
	for i := range t {
		x := int32(i << 4)
		for k+1 < len(pts) && pts[k+1].X <= x {
			k++
		}
		switch {
		case x < pts[0].X:
			t[i] = pts[0].Y
		case k == len(pts)-1:
			t[i] = pts[k].Y
		default:
			t[i] = fixedpt.Clamp(segment(pts, k, x, interp), lo, hi)
		}
	}
	return &t
}

// segment evaluates the curve between pts[k] and pts[k+1] at x.
func segment(pts []Point, k int, x int32, interp Interpolation) int32 {
	p0, p1 := pts[k], pts[k+1]
	t := int32((int64(x-p0.X) << fixedpt.Shift) / int64(p1.X-p0.X))

	switch interp {
	case Cosine:
		return fixedpt.Lerp(p0.Y, p1.Y, fixedpt.CosineEase(t))
	case Cubic:
		prev := pts[max(k-1, 0)].Y
		next := pts[min(k+2, len(pts)-1)].Y
		return catmullRom(prev, p0.Y, p1.Y, next, t)
	default:
		return fixedpt.Lerp(p0.Y, p1.Y, t)
	}
}

// catmullRom evaluates the uniform Catmull-Rom spline through y1..y2 at t.
func catmullRom(y0, y1, y2, y3, t int32) int32 {
	t1 := int64(t)
	t2 := t1 * t1 >> fixedpt.Shift
	t3 := t2 * t1 >> fixedpt.Shift

	a := int64(2 * y1)
	b := int64(y2-y0) * t1
	c := int64(2*y0-5*y1+4*y2-y3) * t2
	d := int64(-y0+3*y1-3*y2+y3) * t3
	return int32((a<<fixedpt.Shift + b + c + d) >> (fixedpt.Shift + 1))
}

// Stop is a colour stop of a gradient: packed 0xRRGGBB at position Pos.
type Stop struct {
	Pos int32
	RGB int32
}

// ColourTable maps a 4096-scale input to three channels.
type ColourTable struct {
	R, G, B Table
}

// At returns the channels for v.
func (c *ColourTable) At(v int32) (r, g, b int32) {
	i := fixedpt.ClampUnit(v) >> 4
	return c.R[i], c.G[i], c.B[i]
}

// NewColour builds a colour table through stops.
func NewColour(stops []Stop, interp Interpolation) *ColourTable {
	if len(stops) == 0 {
		stops = Presets[Greyscale]
	}
	rs := make([]Point, len(stops))
	gs := make([]Point, len(stops))
	bs := make([]Point, len(stops))
	for i, s := range stops {
		r, g, b := color.Unpack(s.RGB)
		rs[i] = Point{s.Pos, r}
		gs[i] = Point{s.Pos, g}
		bs[i] = Point{s.Pos, b}
	}
	return &ColourTable{
		R: *NewCurve(rs, interp),
		G: *NewCurve(gs, interp),
		B: *NewCurve(bs, interp),
	}
}
