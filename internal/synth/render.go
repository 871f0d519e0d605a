package synth

import (
	"fmt"

	"github.com/gogpu/proctex/internal/color"
)

// MaxDimension bounds the width and height of a render.
const MaxDimension = 1 << 14

// Format selects the packed pixel layout of a render.
type Format uint8

const (
	// FormatRGB packs pixels as 0xRRGGBB.
	FormatRGB Format = iota
	// FormatARGB packs pixels as 0xAARRGGBB.
	FormatARGB
)

// Root selects which designated output a render reads.
type Root uint8

const (
	// RootColour renders the colour root.
	RootColour Root = iota
	// RootMonochrome renders the monochrome root as grey.
	RootMonochrome
)

// Pixels is a packed 0xRRGGBB image supplied by a sprite or texture source.
type Pixels struct {
	Width, Height int
	Pix           []int32
}

// SpriteSource resolves sprite ids to images.
type SpriteSource interface {
	Sprite(id int) (Pixels, error)
}

// TextureSource resolves texture ids to rendered images. small reports that
// the texture was rendered at reduced size.
type TextureSource interface {
	Texture(id int) (p Pixels, small bool, err error)
}

// Request describes one render.
type Request struct {
	Width, Height int
	FlipH, FlipV  bool
	Brightness    float64
	Format        Format
	Root          Root
	// Uncached recomputes every row request. Output is identical to a
	// cached render.
	Uncached bool
	Sprites  SpriteSource
	Textures TextureSource
}

// Result is a rendered image.
type Result struct {
	Width, Height int
	Pix           []uint32
	// Transparent is set when any pixel came out fully transparent
	// (ARGB) or black (RGB).
	Transparent bool
}

// Render evaluates the graph at the requested size.
func (g *Graph) Render(req Request) (*Result, error) {
	if req.Width <= 0 || req.Height <= 0 || req.Width > MaxDimension || req.Height > MaxDimension {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidRequest, req.Width, req.Height)
	}

	root := g.colour
	if req.Root == RootMonochrome {
		root = g.mono
	}
	var alpha *node
	if req.Format == FormatARGB && req.Root == RootColour {
		alpha = g.alpha
	}

	e := newEvaluator(g, &req)
	defer e.release()
	if err := e.prepare(root, alpha); err != nil {
		return nil, err
	}

	lut := color.Brightness(req.Brightness)
	res := &Result{
		Width:  req.Width,
		Height: req.Height,
		Pix:    make([]uint32, req.Width*req.Height),
	}
	w := req.Width
	for y := range req.Height {
		src := y
		if req.FlipV {
			src = req.Height - 1 - y
		}
		out := res.Pix[y*w : (y+1)*w]

		rgb := e.colour(root, src)
		for x := range out {
			sx := x
			if req.FlipH {
				sx = w - 1 - x
			}
			r := uint32(lut[color.ToByte(rgb[0][sx])])
			gr := uint32(lut[color.ToByte(rgb[1][sx])])
			b := uint32(lut[color.ToByte(rgb[2][sx])])
			out[x] = r<<16 | gr<<8 | b
		}

		// The alpha root may share upstream nodes with the colour root, so
		// it is read only after the colour row has been consumed.
		switch {
		case req.Format == FormatRGB:
			for _, p := range out {
				if p == 0 {
					res.Transparent = true
					break
				}
			}
		case alpha != nil:
			a := e.mono(alpha, src)
			for x := range out {
				sx := x
				if req.FlipH {
					sx = w - 1 - x
				}
				av := uint32(color.ToByte(a[sx]))
				if av < 0xFF {
					res.Transparent = true
				}
				out[x] |= av << 24
			}
		default:
			for x, p := range out {
				if p == 0 {
					res.Transparent = true
					continue
				}
				out[x] = p | 0xFF000000
			}
		}
	}

	return res, nil
}
