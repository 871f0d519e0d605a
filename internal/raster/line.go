package raster

// Line draws a segment from (x0, y0) to (x1, y1) with a square brush of the
// given thickness in pixels. The brush is applied across the minor axis at
// every step, so thick lines keep their width at any slope.
func (c *Canvas) Line(x0, y0, x1, y1 int, v int32, thickness int) {
	thickness = max(thickness, 1)
	lo := (thickness - 1) / 2
	hi := thickness / 2

	bx0, bx1 := min(x0, x1)-lo, max(x0, x1)+hi
	by0, by1 := min(y0, y1)-lo, max(y0, y1)+hi
	if bx1 < 0 || by1 < 0 || bx0 >= c.width || by0 >= c.height {
		return
	}
	if c.contains(bx0, by0, bx1, by1) {
		c.lineDirect(x0, y0, x1, y1, v, lo, hi)
		return
	}
	fill := c.spanClipped

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	if dx >= dy {
		// X-major octants: one brush column per step.
		c.stepLine(x0, y0, x1, y1, func(x, y int) {
			for k := y - lo; k <= y+hi; k++ {
				fill(k, x, x, v)
			}
		})
		return
	}
	// Y-major octants: one brush row per step.
	c.stepLine(x0, y0, x1, y1, func(x, y int) {
		fill(y, x-lo, x+hi, v)
	})
}

// stepLine walks the Bresenham path from (x0, y0) to (x1, y1) inclusive,
// for any octant.
func (c *Canvas) stepLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineDirect follows the stepLine path for a line whose brush box lies inside
// the canvas, writing through a running pixel index.
func (c *Canvas) lineDirect(x0, y0, x1, y1 int, v int32, lo, hi int) {
	w := c.width
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, w
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -w
	}
	// The brush runs across the minor axis.
	brush := 1
	if dx >= -dy {
		brush = w
	}

	i, end := y0*w+x0, y1*w+x1
	err := dx + dy
	for {
		for k := i - lo*brush; k <= i+hi*brush; k += brush {
			c.pix[k] = v
		}
		if i == end {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			i += sx
		}
		if e2 <= dx {
			err += dx
			i += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
