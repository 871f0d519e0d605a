package synth

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/color"
)

type monoFill struct {
	source
	monoOutput
	noTables
	value int32
}

func (o *monoFill) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.value, err = readU16(s)
	return err
}

func (o *monoFill) monoRow(_ *evaluator, _ *node, _ int, out []int32) {
	for x := range out {
		out[x] = o.value
	}
}

type colourFill struct {
	source
	colourOutput
	noTables
	rgb int32
}

func (o *colourFill) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.rgb, err = readU24(s)
	return err
}

func (o *colourFill) colourRow(_ *evaluator, _ *node, _ int, out [3][]int32) {
	r, g, b := color.Unpack(o.rgb)
	fill(out[0], r)
	fill(out[1], g)
	fill(out[2], b)
}

func fill(row []int32, v int32) {
	for i := range row {
		row[i] = v
	}
}

type horizontalGradient struct {
	source
	monoOutput
	noTables
	noFields
}

func (horizontalGradient) monoRow(e *evaluator, _ *node, _ int, out []int32) {
	copy(out, e.x.ramp)
}

type verticalGradient struct {
	source
	monoOutput
	noTables
	noFields
}

func (verticalGradient) monoRow(e *evaluator, _ *node, y int, out []int32) {
	fill(out, e.y.ramp[y])
}

// sampler resamples an external image to the render size with nearest
// neighbour lookup.
type sampler struct {
	source
	colourOutput
	noTables
	id int
}

func (o *sampler) decodeField(f uint8, s *cryptobyte.String) error {
	if f != 0 {
		return errUnknownField(f)
	}
	v, err := readU16(s)
	o.id = int(v)
	return err
}

func (o *sampler) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	p, _ := e.state[n.index].(Pixels)
	if p.Width <= 0 || p.Height <= 0 || len(p.Pix) < p.Width*p.Height {
		for ch := range out {
			fill(out[ch], 0)
		}
		return
	}
	sy := y * p.Height / e.height
	row := p.Pix[sy*p.Width : (sy+1)*p.Width]
	for x := range out[0] {
		out[0][x], out[1][x], out[2][x] = color.Unpack(row[x*p.Width/e.width])
	}
}

type spriteSampler struct{ sampler }

func (o *spriteSampler) prepare(e *evaluator, n *node) error {
	if e.sprites == nil {
		return fmt.Errorf("%w: sprite %d requested without a sprite source", ErrMissingSource, o.id)
	}
	p, err := e.sprites.Sprite(o.id)
	if err != nil {
		return fmt.Errorf("%w: sprite %d: %w", ErrMissingSource, o.id, err)
	}
	e.setState(n, p)
	return nil
}

type textureSampler struct{ sampler }

func (o *textureSampler) prepare(e *evaluator, n *node) error {
	if e.textures == nil {
		return fmt.Errorf("%w: texture %d requested without a texture source", ErrMissingSource, o.id)
	}
	p, small, err := e.textures.Texture(o.id)
	if err != nil {
		return fmt.Errorf("%w: texture %d: %w", ErrMissingSource, o.id, err)
	}
	slogger().Debug("proctex: sampling texture", "node", n.String(), "id", o.id, "small", small)
	e.setState(n, p)
	return nil
}
