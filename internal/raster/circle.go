package raster

// circleWidths returns the half-width of a circle of radius r on each row
// offset 0..r from its centre, traced with the midpoint algorithm over one
// octant and mirrored across the diagonal.
func circleWidths(r int) []int {
	w := make([]int, r+1)
	x, y := r, 0
	d := 1 - r
	for x >= y {
		w[y] = max(w[y], x)
		w[x] = max(w[x], y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	return w
}

// Circle draws a circle of radius r centred on (cx, cy). The outline is
// drawn inside the radius.
func (c *Canvas) Circle(cx, cy, r int, s Style) {
	if r < 0 {
		return
	}
	outer := circleWidths(r)
	var inner []int
	if s.HasOutline && r-s.outlineWidth() >= 0 {
		inner = circleWidths(r - s.outlineWidth())
	}
	c.disc(cx, cy, outer, inner, s)
}

// disc fills a centrally symmetric shape described by its half-width per
// row offset. inner, when present, describes the hole left by the outline.
func (c *Canvas) disc(cx, cy int, outer, inner []int, s Style) {
	ry := len(outer) - 1
	rx := outer[0]
	if cx+rx < 0 || cy+ry < 0 || cx-rx >= c.width || cy-ry >= c.height {
		return
	}
	fill := c.spanFunc(cx-rx, cy-ry, cx+rx, cy+ry)

	if s.HasFill {
		for dy := -ry; dy <= ry; dy++ {
			w := outer[abs(dy)]
			fill(cy+dy, cx-w, cx+w, s.Fill)
		}
	}
	if !s.HasOutline {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		w := outer[abs(dy)]
		if abs(dy) >= len(inner) {
			fill(cy+dy, cx-w, cx+w, s.Outline)
			continue
		}
		wi := inner[abs(dy)]
		fill(cy+dy, cx-w, cx-wi-1, s.Outline)
		fill(cy+dy, cx+wi+1, cx+w, s.Outline)
	}
}
