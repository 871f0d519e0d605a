package proctex

import (
	"github.com/gogpu/proctex/internal/synth"
)

// MaxDimension is the largest width or height a render accepts.
const MaxDimension = synth.MaxDimension

// Pixels is a packed 0xRRGGBB image supplied to sprite and texture
// operations.
type Pixels = synth.Pixels

// SpriteSource resolves the sprite ids sampled by KindSprite operations.
type SpriteSource = synth.SpriteSource

// TextureSource resolves the texture ids sampled by KindTexture operations.
// small reports that the texture was rendered at reduced size.
type TextureSource = synth.TextureSource

// Root selects which designated output of a definition is rendered.
type Root = synth.Root

// Roots.
const (
	RootColour     = synth.RootColour
	RootMonochrome = synth.RootMonochrome
)

// Definition is a decoded texture graph. It is immutable and safe for
// concurrent use.
type Definition struct {
	g *synth.Graph
}

// Decode parses a texture definition. Decoding is all or nothing: on error
// no definition is returned.
func Decode(data []byte, opts ...DecodeOption) (*Definition, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	g, err := synth.Decode(data, o.alpha)
	if err != nil {
		return nil, err
	}
	return &Definition{g: g}, nil
}

// Len returns the number of operations in the definition.
func (d *Definition) Len() int { return d.g.Len() }

// Kinds returns the kind of every operation in decode order.
func (d *Definition) Kinds() []Kind { return d.g.Kinds() }

// HasAlpha reports whether the definition was decoded with an alpha root.
func (d *Definition) HasAlpha() bool { return d.g.HasAlpha() }

// SpriteIDs returns the distinct sprite ids the definition samples.
func (d *Definition) SpriteIDs() []int { return d.g.SpriteIDs() }

// TextureIDs returns the distinct texture ids the definition samples.
func (d *Definition) TextureIDs() []int { return d.g.TextureIDs() }

// Request describes a render in full.
type Request struct {
	Width, Height int
	FlipH, FlipV  bool
	// Brightness is the exponent of the output curve; 1 leaves values
	// unchanged.
	Brightness float64
	Format     Format
	Root       Root
}

// Render evaluates the definition as described by req.
func (d *Definition) Render(req Request, opts ...RenderOption) (*Image, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	res, err := d.g.Render(synth.Request{
		Width:      req.Width,
		Height:     req.Height,
		FlipH:      req.FlipH,
		FlipV:      req.FlipV,
		Brightness: req.Brightness,
		Format:     req.Format,
		Root:       req.Root,
		Uncached:   o.uncached,
		Sprites:    o.sprites,
		Textures:   o.textures,
	})
	if err != nil {
		return nil, err
	}
	return newImage(res, req.Format), nil
}

// PixelsRGB renders the colour root as packed 0xRRGGBB pixels.
func (d *Definition) PixelsRGB(width, height int, flipH bool, brightness float64, opts ...RenderOption) (*Image, error) {
	return d.Render(Request{
		Width:      width,
		Height:     height,
		FlipH:      flipH,
		Brightness: brightness,
		Format:     FormatRGB,
	}, opts...)
}

// PixelsARGB renders the colour root as packed 0xAARRGGBB pixels. Alpha
// comes from the alpha root when the definition has one; otherwise black
// pixels are fully transparent and all others opaque.
func (d *Definition) PixelsARGB(width, height int, flipH bool, brightness float64, opts ...RenderOption) (*Image, error) {
	return d.Render(Request{
		Width:      width,
		Height:     height,
		FlipH:      flipH,
		Brightness: brightness,
		Format:     FormatARGB,
	}, opts...)
}
