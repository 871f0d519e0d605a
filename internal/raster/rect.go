package raster

// Style describes how a closed shape is painted. Either part may be absent.
type Style struct {
	Fill       int32
	Outline    int32
	HasFill    bool
	HasOutline bool
	Thickness  int
}

// outlineWidth returns the outline thickness in pixels, at least one.
func (s Style) outlineWidth() int {
	return max(s.Thickness, 1)
}

// Rect draws the axis-aligned rectangle with corners (x0, y0) and (x1, y1),
// both inclusive. The outline is drawn inside the rectangle.
func (c *Canvas) Rect(x0, y0, x1, y1 int, s Style) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x1 < 0 || y1 < 0 || x0 >= c.width || y0 >= c.height {
		return
	}
	fill := c.spanFunc(x0, y0, x1, y1)

	if s.HasFill {
		for y := y0; y <= y1; y++ {
			fill(y, x0, x1, s.Fill)
		}
	}
	if !s.HasOutline {
		return
	}

	t := s.outlineWidth()
	for y := y0; y <= y1; y++ {
		if y < y0+t || y > y1-t {
			fill(y, x0, x1, s.Outline)
			continue
		}
		fill(y, x0, min(x0+t-1, x1), s.Outline)
		fill(y, max(x1-t+1, x0), x1, s.Outline)
	}
}
