package raster

import "golang.org/x/image/math/fixed"

// maxBezierSegments caps the subdivision of one curve.
const maxBezierSegments = 256

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Bezier draws the cubic curve p0 → p3 with control points p1 and p2 by
// subdividing it into line segments about four pixels long.
func (c *Canvas) Bezier(p0, p1, p2, p3 Point, v int32, thickness int) {
	hull := abs(p1.X-p0.X) + abs(p1.Y-p0.Y) +
		abs(p2.X-p1.X) + abs(p2.Y-p1.Y) +
		abs(p3.X-p2.X) + abs(p3.Y-p2.Y)
	n := min(max(hull/4, 4), maxBezierSegments)

	prev := p0
	for i := 1; i <= n; i++ {
		t := fixed.Int52_12((int64(i) << 12) / int64(n))
		p := bezierAt(p0, p1, p2, p3, t)
		if p != prev || i == n {
			c.Line(prev.X, prev.Y, p.X, p.Y, v, thickness)
			prev = p
		}
	}
}

// bezierAt evaluates the Bernstein form of the curve at t in [0, 1].
func bezierAt(p0, p1, p2, p3 Point, t fixed.Int52_12) Point {
	const one = fixed.Int52_12(1 << 12)
	u := one - t
	b0 := u.Mul(u).Mul(u)
	b1 := 3 * u.Mul(u).Mul(t)
	b2 := 3 * u.Mul(t).Mul(t)
	b3 := one - b0 - b1 - b2 // keeps the weights summing to exactly one

	x := b0*fixed.Int52_12(p0.X) + b1*fixed.Int52_12(p1.X) + b2*fixed.Int52_12(p2.X) + b3*fixed.Int52_12(p3.X)
	y := b0*fixed.Int52_12(p0.Y) + b1*fixed.Int52_12(p1.Y) + b2*fixed.Int52_12(p2.Y) + b3*fixed.Int52_12(p3.Y)
	return Point{X: x.Round(), Y: y.Round()}
}
