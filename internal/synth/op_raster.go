package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/color"
	"github.com/gogpu/proctex/internal/raster"
)

// Shape record flags.
const (
	shapeFill    = 1 << 0
	shapeOutline = 1 << 1
)

// rasterizer paints a list of vector shapes over a background colour. The
// whole image is drawn on the first row request of a render.
type rasterizer struct {
	source
	colourOutput
	background int32
	shapes     []raster.Shape
}

func (rasterizer) wholeImage() {}

func (o *rasterizer) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.background, err = readU24(s)
	case 1:
		o.shapes, err = decodeShapes(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func decodeShapes(s *cryptobyte.String) ([]raster.Shape, error) {
	n, err := readU8(s)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errInvalid("shape count", 0)
	}
	shapes := make([]raster.Shape, n)
	for i := range shapes {
		if shapes[i], err = decodeShape(s); err != nil {
			return nil, err
		}
	}
	return shapes, nil
}

func decodeShape(s *cryptobyte.String) (raster.Shape, error) {
	var sh raster.Shape
	kind, err := readU8(s)
	if err != nil {
		return sh, err
	}
	sh.Kind = raster.Kind(kind)
	if !sh.Kind.Valid() {
		return sh, errInvalid("shape kind", kind)
	}
	flags, err := readU8(s)
	if err != nil {
		return sh, err
	}
	if flags&^(shapeFill|shapeOutline) != 0 {
		return sh, errInvalid("shape flags", flags)
	}
	if flags&shapeFill != 0 {
		sh.Style.HasFill = true
		if sh.Style.Fill, err = readU24(s); err != nil {
			return sh, err
		}
	}
	if flags&shapeOutline != 0 {
		sh.Style.HasOutline = true
		if sh.Style.Outline, err = readU24(s); err != nil {
			return sh, err
		}
		if sh.Style.Thickness, err = readU8(s); err != nil {
			return sh, err
		}
	}
	for i := range sh.Kind.Coords() {
		if sh.Coords[i], err = readU16(s); err != nil {
			return sh, err
		}
	}
	return sh, nil
}

func (o *rasterizer) init() error {
	if len(o.shapes) == 0 {
		return errInvalid("shape list", "empty")
	}
	return nil
}

func (o *rasterizer) draw(w, h int) *raster.Canvas {
	c := raster.NewCanvas(w, h)
	c.Fill(o.background)
	for _, s := range o.shapes {
		c.Draw(s)
	}
	return c
}

func (o *rasterizer) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	c := e.stateOf(n, func() any { return o.draw(e.width, e.height) }).(*raster.Canvas)
	for x, p := range c.Row(y) {
		out[0][x], out[1][x], out[2][x] = color.Unpack(p)
	}
}
