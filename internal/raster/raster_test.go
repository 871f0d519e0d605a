package raster

import (
	"fmt"
	"math"
	"testing"
)

const (
	bg   int32 = 0x000000
	ink  int32 = 0xFF8040
	edge int32 = 0x10A0F0
)

func filled(v int32) Style {
	return Style{Fill: v, HasFill: true}
}

func TestCircleContainment(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy int
		r      int
	}{
		{"r1", 32, 32, 1},
		{"r2", 32, 32, 2},
		{"r5", 30, 33, 5},
		{"r11", 32, 32, 11},
		{"r20", 31, 29, 20},
		{"clipped", 4, 60, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(64, 64)
			c.Circle(tt.cx, tt.cy, tt.r, filled(ink))

			for y := 0; y < 64; y++ {
				for x := 0; x < 64; x++ {
					d := math.Hypot(float64(x-tt.cx), float64(y-tt.cy))
					got := c.At(x, y)
					if d <= float64(tt.r-1) && got != ink {
						t.Fatalf("(%d,%d) at distance %.2f not filled", x, y, d)
					}
					if d > float64(tt.r+1) && got != bg {
						t.Fatalf("(%d,%d) at distance %.2f touched", x, y, d)
					}
				}
			}
		})
	}
}

func TestCircleWidthsRadiusOne(t *testing.T) {
	w := circleWidths(1)
	if len(w) != 2 || w[0] != 1 || w[1] != 0 {
		t.Errorf("circleWidths(1) = %v, want [1 0]", w)
	}
}

func TestEllipseContainment(t *testing.T) {
	tests := []struct{ rx, ry int }{
		{10, 4}, {3, 12}, {20, 7}, {1, 5},
	}
	for _, tt := range tests {
		c := NewCanvas(64, 64)
		c.Ellipse(32, 32, tt.rx, tt.ry, filled(ink))

		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				fx := float64(x-32) / float64(tt.rx+1)
				fy := float64(y-32) / float64(tt.ry+1)
				if fx*fx+fy*fy > 1 && c.At(x, y) != bg {
					t.Fatalf("rx=%d ry=%d: (%d,%d) outside grown ellipse touched", tt.rx, tt.ry, x, y)
				}
				if tt.rx > 1 && tt.ry > 1 {
					gx := float64(x-32) / float64(tt.rx-1)
					gy := float64(y-32) / float64(tt.ry-1)
					if gx*gx+gy*gy <= 1 && c.At(x, y) != ink {
						t.Fatalf("rx=%d ry=%d: (%d,%d) inside shrunk ellipse not filled", tt.rx, tt.ry, x, y)
					}
				}
			}
		}
		// Extremes of both axes are reached.
		if c.At(32+tt.rx, 32) != ink || c.At(32, 32+tt.ry) != ink {
			t.Errorf("rx=%d ry=%d: axis extremes not filled", tt.rx, tt.ry)
		}
	}
}

func TestEllipseWidthsMonotonic(t *testing.T) {
	w := ellipseWidths(30, 9)
	if w[0] != 30 {
		t.Errorf("w[0] = %d, want 30", w[0])
	}
	for i := 1; i < len(w); i++ {
		if w[i] > w[i-1] {
			t.Fatalf("half-width grows at row %d: %v", i, w)
		}
	}
}

func TestLineEndpointsAndOctants(t *testing.T) {
	ends := [][4]int{
		{5, 5, 50, 20}, {50, 20, 5, 5},
		{5, 5, 20, 50}, {20, 50, 5, 5},
		{5, 50, 50, 40}, {40, 5, 30, 60},
		{10, 10, 10, 40}, {3, 30, 60, 30},
	}
	for _, e := range ends {
		c := NewCanvas(64, 64)
		c.Line(e[0], e[1], e[2], e[3], ink, 1)
		if c.At(e[0], e[1]) != ink || c.At(e[2], e[3]) != ink {
			t.Errorf("line %v: endpoints not drawn", e)
		}

		// One pixel per step along the major axis.
		count := 0
		for _, v := range c.pix {
			if v == ink {
				count++
			}
		}
		major := max(abs(e[2]-e[0]), abs(e[3]-e[1])) + 1
		if count != major {
			t.Errorf("line %v: %d pixels, want %d", e, count, major)
		}
	}
}

func TestThickLine(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Line(4, 10, 27, 10, ink, 3)
	for x := 4; x <= 27; x++ {
		for y := 9; y <= 11; y++ {
			if c.At(x, y) != ink {
				t.Fatalf("(%d,%d) not covered by thick line", x, y)
			}
		}
		if c.At(x, 8) != bg || c.At(x, 12) != bg {
			t.Fatalf("thick line wider than 3 at x=%d", x)
		}
	}
}

func TestRectOutline(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Rect(4, 6, 20, 18, Style{Fill: ink, Outline: edge, HasFill: true, HasOutline: true, Thickness: 2})

	tests := []struct {
		x, y int
		want int32
	}{
		{4, 6, edge}, {5, 7, edge}, {20, 18, edge}, {19, 12, edge},
		{6, 8, ink}, {12, 12, ink}, {18, 16, ink},
		{3, 6, bg}, {21, 12, bg}, {12, 19, bg},
	}
	for _, tt := range tests {
		if got := c.At(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %06x, want %06x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCircleOutlineRing(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Circle(32, 32, 12, Style{Outline: edge, HasOutline: true, Thickness: 3})

	if c.At(32, 32) != bg {
		t.Error("outline-only circle should leave the centre untouched")
	}
	if c.At(32+12, 32) != edge || c.At(32+10, 32) != edge {
		t.Error("ring should cover radii 10..12 on the axis")
	}
	if c.At(32+9, 32) != bg {
		t.Error("ring thicker than requested")
	}
}

func TestBezierEndpointsAndStraightCurve(t *testing.T) {
	c := NewCanvas(64, 64)
	p0, p3 := Point{4, 4}, Point{60, 50}
	c.Bezier(p0, Point{10, 60}, Point{50, 0}, p3, ink, 1)
	if c.At(p0.X, p0.Y) != ink || c.At(p3.X, p3.Y) != ink {
		t.Error("curve endpoints not drawn")
	}

	// A curve whose control points lie on the chord is the chord.
	line := NewCanvas(64, 64)
	line.Line(0, 32, 63, 32, ink, 1)
	curve := NewCanvas(64, 64)
	curve.Bezier(Point{0, 32}, Point{21, 32}, Point{42, 32}, Point{63, 32}, ink, 1)
	assertSame(t, "straight bezier", line, curve)
}

// shapes returns one instance of every primitive with both paints, placed
// around (cx, cy).
func shapes(cx, cy int) []func(c *Canvas) {
	st := Style{Fill: ink, Outline: edge, HasFill: true, HasOutline: true, Thickness: 2}
	return []func(c *Canvas){
		func(c *Canvas) { c.Line(cx-20, cy-7, cx+18, cy+11, edge, 3) },
		func(c *Canvas) { c.Line(cx+3, cy-25, cx-4, cy+22, edge, 2) },
		func(c *Canvas) {
			c.Bezier(Point{cx - 20, cy + 20}, Point{cx - 10, cy - 40}, Point{cx + 30, cy + 30}, Point{cx + 20, cy - 20}, edge, 2)
		},
		func(c *Canvas) { c.Rect(cx-15, cy-9, cx+13, cy+17, st) },
		func(c *Canvas) { c.Circle(cx, cy, 17, st) },
		func(c *Canvas) { c.Ellipse(cx, cy, 22, 9, st) },
		func(c *Canvas) { c.Ellipse(cx, cy, 6, 19, st) },
	}
}

func TestClippedPathMatchesUnclipped(t *testing.T) {
	for i, draw := range shapes(32, 32) {
		fast := NewCanvas(64, 64)
		slow := NewCanvas(64, 64)
		slow.forceClip = true

		draw(fast)
		draw(slow)
		assertSame(t, "shape "+string(rune('0'+i)), fast, slow)
	}
}

func TestLineDirectMatchesClippedInEveryOctant(t *testing.T) {
	ends := [][2]int{{20, 0}, {20, 9}, {9, 20}, {0, 20}, {-9, 20}, {-20, 9}, {-20, 0}, {-20, -9},
		{-9, -20}, {0, -20}, {9, -20}, {20, -9}, {20, 20}, {-20, -20}, {0, 0}}
	for _, end := range ends {
		for thickness := 1; thickness <= 4; thickness++ {
			fast := NewCanvas(64, 64)
			slow := NewCanvas(64, 64)
			slow.forceClip = true

			fast.Line(32, 32, 32+end[0], 32+end[1], edge, thickness)
			slow.Line(32, 32, 32+end[0], 32+end[1], edge, thickness)
			assertSame(t, fmt.Sprintf("line to %v width %d", end, thickness), fast, slow)
		}
	}
}

func TestPartialShapesClipLikeLargerCanvas(t *testing.T) {
	// Draw around a corner of a small canvas, then draw the same shapes
	// fully inside a larger one offset so the small canvas is a window.
	const off = 40
	for i := range shapes(0, 0) {
		small := NewCanvas(48, 48)
		big := NewCanvas(48+2*off, 48+2*off)
		shapes(2, 45)[i](small)
		shapes(2+off, 45+off)[i](big)

		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				if small.At(x, y) != big.At(x+off, y+off) {
					t.Fatalf("shape %d: (%d,%d) = %06x, window = %06x", i, x, y, small.At(x, y), big.At(x+off, y+off))
				}
			}
		}
	}
}

func TestShapesEntirelyOutsideAreIgnored(t *testing.T) {
	c := NewCanvas(16, 16)
	st := Style{Fill: ink, HasFill: true, Outline: edge, HasOutline: true}
	c.Circle(-40, -40, 5, st)
	c.Ellipse(100, 8, 4, 2, st)
	c.Rect(20, 20, 30, 30, st)
	c.Line(-10, -10, -2, -30, edge, 1)
	for i, v := range c.pix {
		if v != bg {
			t.Fatalf("pixel %d touched", i)
		}
	}
}

func TestDrawScalesCoordinates(t *testing.T) {
	c := NewCanvas(128, 64)
	c.Draw(Shape{
		Kind:   KindRectangle,
		Style:  filled(ink),
		Coords: [8]int32{1024, 1024, 2048, 2048},
	})
	if c.At(32, 16) != ink || c.At(64, 32) != ink {
		t.Error("rectangle corners not at scaled positions")
	}
	if c.At(31, 16) != bg || c.At(65, 32) != bg {
		t.Error("rectangle exceeds scaled bounds")
	}

	// Open shapes ignore fill.
	c2 := NewCanvas(32, 32)
	c2.Draw(Shape{Kind: KindLine, Style: filled(ink), Coords: [8]int32{0, 0, 4096, 4096}})
	for _, v := range c2.pix {
		if v != bg {
			t.Fatal("line without outline should draw nothing")
		}
	}
}

func TestKindCoords(t *testing.T) {
	want := map[Kind]int{KindLine: 4, KindBezier: 8, KindRectangle: 4, KindCircle: 3, KindEllipse: 4}
	for k, n := range want {
		if k.Coords() != n {
			t.Errorf("%d.Coords() = %d, want %d", k, k.Coords(), n)
		}
		if !k.Valid() {
			t.Errorf("%d should be valid", k)
		}
	}
	if Kind(9).Valid() {
		t.Error("Kind(9) should be invalid")
	}
}

func assertSame(t *testing.T, name string, a, b *Canvas) {
	t.Helper()
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			t.Fatalf("%s: pixel (%d,%d) differs: %06x vs %06x", name, i%a.width, i/a.width, a.pix[i], b.pix[i])
		}
	}
}
