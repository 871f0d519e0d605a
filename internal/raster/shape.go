package raster

import "github.com/gogpu/proctex/internal/fixedpt"

// Kind identifies a vector primitive.
type Kind uint8

const (
	// KindLine is a straight segment x0 y0 x1 y1.
	KindLine Kind = iota
	// KindBezier is a cubic curve x0 y0 c1x c1y c2x c2y x1 y1.
	KindBezier
	// KindRectangle is an axis-aligned box x0 y0 x1 y1.
	KindRectangle
	// KindCircle is cx cy r, with r measured along the canvas width.
	KindCircle
	// KindEllipse is cx cy rx ry.
	KindEllipse
)

// Coords returns the number of coordinates a primitive of kind k carries.
func (k Kind) Coords() int {
	switch k {
	case KindLine, KindRectangle, KindEllipse:
		return 4
	case KindBezier:
		return 8
	case KindCircle:
		return 3
	}
	return 0
}

// Valid reports whether k is a known primitive.
func (k Kind) Valid() bool {
	return k <= KindEllipse
}

// Shape is a primitive with coordinates on the 4096 scale of the canvas, so
// one shape list renders at any resolution.
type Shape struct {
	Kind   Kind
	Style  Style
	Coords [8]int32
}

// Draw scales s onto the canvas and rasterizes it. Open shapes (lines and
// curves) use only the outline; a missing outline leaves them invisible.
func (c *Canvas) Draw(s Shape) {
	sx := func(i int) int { return fixedpt.Scale(s.Coords[i], c.width) }
	sy := func(i int) int { return fixedpt.Scale(s.Coords[i], c.height) }

	switch s.Kind {
	case KindLine:
		if s.Style.HasOutline {
			c.Line(sx(0), sy(1), sx(2), sy(3), s.Style.Outline, s.Style.outlineWidth())
		}
	case KindBezier:
		if s.Style.HasOutline {
			c.Bezier(
				Point{sx(0), sy(1)}, Point{sx(2), sy(3)},
				Point{sx(4), sy(5)}, Point{sx(6), sy(7)},
				s.Style.Outline, s.Style.outlineWidth(),
			)
		}
	case KindRectangle:
		c.Rect(sx(0), sy(1), sx(2), sy(3), s.Style)
	case KindCircle:
		c.Circle(sx(0), sy(1), sx(2), s.Style)
	case KindEllipse:
		c.Ellipse(sx(0), sy(1), sx(2), sy(3), s.Style)
	}
}
