package proctex

import (
	"github.com/gogpu/proctex/internal/synth"
)

// Field is one encoded field of an operation.
type Field = synth.Field

// Op describes an operation for GraphBuilder. Cache is the row cache size
// byte: 0 or 1 keeps a single row, 255 keeps every row, anything else keeps
// that many most recently used rows.
type Op = synth.Op

// U8 encodes an unsigned byte field.
func U8(index, v uint8) Field { return synth.U8(index, v) }

// Bool encodes a flag field.
func Bool(index uint8, v bool) Field { return synth.Bool(index, v) }

// U16 encodes an unsigned 16-bit field.
func U16(index uint8, v uint16) Field { return synth.U16(index, v) }

// S16 encodes a signed 16-bit field.
func S16(index uint8, v int16) Field { return synth.S16(index, v) }

// RGB encodes a packed 0xRRGGBB field.
func RGB(index uint8, rgb uint32) Field { return synth.RGB(index, rgb) }

// CurvePoints encodes the control points of KindCurve.
func CurvePoints(index uint8, pts ...CurvePoint) Field { return synth.Points(index, pts) }

// GradientStops encodes the stops of KindGradientMap.
func GradientStops(index uint8, stops ...GradientStop) Field { return synth.Stops(index, stops) }

// Shapes encodes the shape list of KindRasterizer.
func Shapes(index uint8, shapes ...Shape) Field { return synth.Shapes(index, shapes) }

// GraphBuilder assembles texture definitions in the byte format Decode
// reads. Wiring ids are assigned in the order operations are added.
type GraphBuilder struct {
	b synth.Builder
}

// NewGraphBuilder creates an empty builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

// Add appends an operation and returns its wiring id. Inputs must name ids
// returned by earlier calls.
func (g *GraphBuilder) Add(op Op) uint8 {
	return g.b.Add(op)
}

// Len returns the number of operations added so far.
func (g *GraphBuilder) Len() int {
	return g.b.Len()
}

// Encode serialises a definition without an alpha root.
func (g *GraphBuilder) Encode(colour, mono uint8) ([]byte, error) {
	return g.b.Encode(colour, mono, false, 0)
}

// EncodeWithAlpha serialises a definition with an alpha root. Decode it
// with WithAlpha.
func (g *GraphBuilder) EncodeWithAlpha(colour, alpha, mono uint8) ([]byte, error) {
	return g.b.Encode(colour, mono, true, alpha)
}
