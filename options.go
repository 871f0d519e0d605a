package proctex

// DecodeOption configures Decode.
//
// Example:
//
//	def, err := proctex.Decode(data, proctex.WithAlpha())
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional configuration for Decode.
type decodeOptions struct {
	alpha bool
}

// WithAlpha decodes a definition that carries an alpha root between its
// colour and monochrome roots.
func WithAlpha() DecodeOption {
	return func(o *decodeOptions) {
		o.alpha = true
	}
}

// RenderOption configures a single render.
//
// Example:
//
//	img, err := def.PixelsRGB(128, 128, false, 1.0, proctex.WithSprites(sprites))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render.
type renderOptions struct {
	sprites  SpriteSource
	textures TextureSource
	uncached bool
}

// WithSprites supplies the images sampled by sprite operations.
func WithSprites(s SpriteSource) RenderOption {
	return func(o *renderOptions) {
		o.sprites = s
	}
}

// WithTextures supplies the images sampled by texture operations.
// A *Library is a TextureSource.
func WithTextures(t TextureSource) RenderOption {
	return func(o *renderOptions) {
		o.textures = t
	}
}

// WithoutRowCache recomputes every row an operation is asked for instead of
// memoising it. The output is identical; only speed changes.
func WithoutRowCache() RenderOption {
	return func(o *renderOptions) {
		o.uncached = true
	}
}
