package synth

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/gradient"
	"github.com/gogpu/proctex/internal/raster"
)

// Field is one encoded field of an operation.
type Field struct {
	Index uint8
	add   func(*cryptobyte.Builder)
}

// U8 encodes an unsigned byte field.
func U8(index, v uint8) Field {
	return Field{index, func(b *cryptobyte.Builder) { b.AddUint8(v) }}
}

// Bool encodes a flag field as a byte.
func Bool(index uint8, v bool) Field {
	var u uint8
	if v {
		u = 1
	}
	return U8(index, u)
}

// U16 encodes an unsigned 16-bit field.
func U16(index uint8, v uint16) Field {
	return Field{index, func(b *cryptobyte.Builder) { b.AddUint16(v) }}
}

// S16 encodes a signed 16-bit field.
func S16(index uint8, v int16) Field {
	return U16(index, uint16(v))
}

// RGB encodes a packed 0xRRGGBB field.
func RGB(index uint8, rgb uint32) Field {
	return Field{index, func(b *cryptobyte.Builder) { b.AddUint24(rgb & 0xFFFFFF) }}
}

// Points encodes a curve control point list.
func Points(index uint8, pts []gradient.Point) Field {
	return Field{index, func(b *cryptobyte.Builder) {
		b.AddUint8(uint8(len(pts)))
		for _, p := range pts {
			b.AddUint16(uint16(p.X))
			b.AddUint16(uint16(p.Y))
		}
	}}
}

// Stops encodes a gradient stop list.
func Stops(index uint8, stops []gradient.Stop) Field {
	return Field{index, func(b *cryptobyte.Builder) {
		b.AddUint8(uint8(len(stops)))
		for _, s := range stops {
			b.AddUint16(uint16(s.Pos))
			b.AddUint24(uint32(s.RGB) & 0xFFFFFF)
		}
	}}
}

// Shapes encodes a rasterizer shape list.
func Shapes(index uint8, shapes []raster.Shape) Field {
	return Field{index, func(b *cryptobyte.Builder) {
		b.AddUint8(uint8(len(shapes)))
		for _, s := range shapes {
			var flags uint8
			if s.Style.HasFill {
				flags |= shapeFill
			}
			if s.Style.HasOutline {
				flags |= shapeOutline
			}
			b.AddUint8(uint8(s.Kind))
			b.AddUint8(flags)
			if s.Style.HasFill {
				b.AddUint24(uint32(s.Style.Fill) & 0xFFFFFF)
			}
			if s.Style.HasOutline {
				b.AddUint24(uint32(s.Style.Outline) & 0xFFFFFF)
				b.AddUint8(uint8(s.Style.Thickness))
			}
			for _, c := range s.Coords[:s.Kind.Coords()] {
				b.AddUint16(uint16(c))
			}
		}
	}}
}

// Op describes one operation to encode.
type Op struct {
	Kind Kind
	// Cache is the row cache size byte: 0 or 1 single slot, 255 full,
	// anything else an LRU of that many rows.
	Cache  uint8
	Inputs []uint8
	Fields []Field
}

// Builder assembles a graph byte stream. Wiring ids are assigned in the
// order operations are added.
type Builder struct {
	ops []Op
}

// Add appends op and returns its wiring id.
func (b *Builder) Add(op Op) uint8 {
	b.ops = append(b.ops, op)
	return uint8(len(b.ops) - 1)
}

// Len returns the number of operations added so far.
func (b *Builder) Len() int { return len(b.ops) }

// Encode serialises the graph. alpha is written only when withAlpha is set.
func (b *Builder) Encode(colour, mono uint8, withAlpha bool, alpha uint8) ([]byte, error) {
	if len(b.ops) > 255 {
		return nil, fmt.Errorf("%w: %d operations", ErrMalformed, len(b.ops))
	}
	var cb cryptobyte.Builder
	cb.AddUint8(uint8(len(b.ops)))
	for i, op := range b.ops {
		if len(op.Fields) > 255 {
			return nil, fmt.Errorf("%w: operation %d has %d fields", ErrMalformed, i, len(op.Fields))
		}
		cb.AddUint8(uint8(i))
		cb.AddUint8(uint8(op.Kind))
		cb.AddUint8(op.Cache)
		cb.AddUint8(uint8(len(op.Fields)))
		for _, f := range op.Fields {
			cb.AddUint8(f.Index)
			f.add(&cb)
		}
	}
	for _, op := range b.ops {
		for _, in := range op.Inputs {
			cb.AddUint8(in)
		}
	}
	cb.AddUint8(colour)
	if withAlpha {
		cb.AddUint8(alpha)
	}
	cb.AddUint8(mono)
	return cb.Bytes()
}
