package raster

// ellipseWidths returns the half-width of an ellipse with radii rx, ry on
// each row offset 0..ry, traced with the two-region midpoint algorithm.
// Region one covers the flat top where the slope is above -1 and steps in x;
// region two covers the steep side and steps in y. Decision variables are
// kept at four times their value to stay integral.
func ellipseWidths(rx, ry int) []int {
	w := make([]int, ry+1)
	if rx == 0 || ry == 0 {
		for i := range w {
			w[i] = rx
		}
		return w
	}

	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	x, y := int64(0), int64(ry)
	dx := int64(0)
	dy := 2 * rx2 * y

	d1 := 4*ry2 - 4*rx2*y + rx2
	for dx < dy {
		w[y] = max(w[y], int(x))
		x++
		dx += 2 * ry2
		if d1 < 0 {
			d1 += 4 * (dx + ry2)
		} else {
			y--
			dy -= 2 * rx2
			d1 += 4 * (dx - dy + ry2)
		}
	}

	d2 := ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	for y >= 0 {
		w[y] = max(w[y], int(x))
		y--
		dy -= 2 * rx2
		if d2 > 0 {
			d2 += 4 * (rx2 - dy)
		} else {
			x++
			dx += 2 * ry2
			d2 += 4 * (dx - dy + rx2)
		}
	}
	return w
}

// Ellipse draws an axis-aligned ellipse with radii rx, ry centred on
// (cx, cy). Equal radii take the circle path. The outline is drawn inside
// the radii.
func (c *Canvas) Ellipse(cx, cy, rx, ry int, s Style) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == ry {
		c.Circle(cx, cy, rx, s)
		return
	}
	outer := ellipseWidths(rx, ry)
	var inner []int
	if t := s.outlineWidth(); s.HasOutline && rx-t >= 0 && ry-t >= 0 {
		inner = ellipseWidths(rx-t, ry-t)
	}
	c.disc(cx, cy, outer, inner, s)
}
