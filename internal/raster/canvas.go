// Package raster provides the integer scan converter behind the rasterizer
// and line-noise operations.
//
// Shapes are drawn into a Canvas of packed values: 0xRRGGBB colours for the
// rasterizer, 4096-scale intensities for line noise. Every primitive has two
// code paths. When a shape's bounding box lies inside the canvas it writes
// spans without bounds checks; otherwise every span is clipped. Both paths
// produce identical pixels.
package raster

// Canvas is a full-resolution grid of packed values.
type Canvas struct {
	width  int
	height int
	pix    []int32

	// forceClip routes every primitive through its clipping path.
	forceClip bool
}

// NewCanvas creates a zeroed canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]int32, width*height),
	}
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.height
}

// Row returns row y. The slice aliases the canvas.
func (c *Canvas) Row(y int) []int32 {
	return c.pix[y*c.width : (y+1)*c.width]
}

// At returns the value at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) int32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Fill sets every pixel to v.
func (c *Canvas) Fill(v int32) {
	for i := range c.pix {
		c.pix[i] = v
	}
}

// contains reports whether the box [x0, x1] × [y0, y1] lies inside the
// canvas, which selects the unclipped path.
func (c *Canvas) contains(x0, y0, x1, y1 int) bool {
	return !c.forceClip && x0 >= 0 && y0 >= 0 && x1 < c.width && y1 < c.height
}

// span fills [x0, x1] on row y without bounds checks.
func (c *Canvas) span(y, x0, x1 int, v int32) {
	row := c.pix[y*c.width:]
	for x := x0; x <= x1; x++ {
		row[x] = v
	}
}

// spanClipped fills [x0, x1] on row y, clipped to the canvas.
func (c *Canvas) spanClipped(y, x0, x1 int, v int32) {
	if y < 0 || y >= c.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.width-1)
	if x0 > x1 {
		return
	}
	c.span(y, x0, x1, v)
}

// spanner fills a horizontal run; either span or spanClipped.
type spanner func(y, x0, x1 int, v int32)

// spanFunc picks the span path for a shape with the given bounding box.
func (c *Canvas) spanFunc(x0, y0, x1, y1 int) spanner {
	if c.contains(x0, y0, x1, y1) {
		return c.span
	}
	return c.spanClipped
}
