package synth

import "fmt"

// Kind is an operation type tag as it appears in the graph byte stream.
// The catalogue is closed; tags are part of the format contract.
type Kind uint8

// Operation kinds.
const (
	KindMonoFill Kind = iota
	KindColourFill
	KindHorizontalGradient
	KindVerticalGradient
	KindBricks
	KindBoxBlur
	KindClamp
	KindArithmetic
	KindCurve
	KindMirror
	KindGradientMap
	KindColourize
	KindTrigWarp
	KindHashNoise
	KindWeave
	KindVoronoi
	KindHerringbone
	KindHSL
	KindTiling
	KindMixer
	KindInvert
	KindKaleidoscope
	KindEdgeDetect
	KindNormalEdge
	KindEmboss
	KindPerlin
	KindThreshold
	KindRasterizer
	KindRange
	KindMandelbrot
	KindSquareWave
	KindIrregularBricks
	KindLineNoise
	KindTexture
	KindSprite
	KindColourDelta

	kindCount
)

var kindNames = [kindCount]string{
	"mono-fill", "colour-fill", "horizontal-gradient", "vertical-gradient",
	"bricks", "box-blur", "clamp", "arithmetic", "curve", "mirror",
	"gradient-map", "colourize", "trig-warp", "hash-noise", "weave",
	"voronoi", "herringbone", "hsl-adjust", "tiling", "mixer", "invert",
	"kaleidoscope", "edge-detect", "normal-edge", "emboss", "perlin",
	"threshold", "rasterizer", "range", "mandelbrot", "square-wave",
	"irregular-bricks", "line-noise", "texture", "sprite", "colour-delta",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

var monoPointwise = pointwise{mode: mode{mono: true}}

// newOperation returns a freshly defaulted operation of kind k.
func newOperation(k Kind) (operation, error) {
	switch k {
	case KindMonoFill:
		return &monoFill{value: 2048}, nil
	case KindColourFill:
		return &colourFill{}, nil
	case KindHorizontalGradient:
		return &horizontalGradient{}, nil
	case KindVerticalGradient:
		return &verticalGradient{}, nil
	case KindBricks:
		return &bricks{columns: 4, rows: 8, stagger: 2048, mortar: 256, variance: 1024}, nil
	case KindBoxBlur:
		return &boxBlur{mode: mode{mono: true}, radiusX: 1, radiusY: 1}, nil
	case KindClamp:
		return &clampOp{pointwise: monoPointwise, hi: 4096}, nil
	case KindArithmetic:
		return &arithmetic{mode: mode{mono: true}}, nil
	case KindCurve:
		return &curve{}, nil
	case KindMirror:
		return &mirror{}, nil
	case KindGradientMap:
		return &gradientMap{}, nil
	case KindColourize:
		return &colourize{rgb: 0xFFFFFF}, nil
	case KindTrigWarp:
		return &trigWarp{amplitude: 256, waves: 2}, nil
	case KindHashNoise:
		return &hashNoise{}, nil
	case KindWeave:
		return &weave{threads: 8, gap: 512}, nil
	case KindVoronoi:
		return &voronoi{cellsX: 4, cellsY: 4, jitter: 4096}, nil
	case KindHerringbone:
		return &herringbone{bricks: 4, ratio: 2, mortar: 256}, nil
	case KindHSL:
		return &hslAdjust{}, nil
	case KindTiling:
		return &tiling{tilesX: 2, tilesY: 2}, nil
	case KindMixer:
		return &mixer{}, nil
	case KindInvert:
		return &invert{pointwise: monoPointwise}, nil
	case KindKaleidoscope:
		return &kaleidoscope{tiles: 1}, nil
	case KindEdgeDetect:
		return &edgeDetect{gradientField: gradientField{strength: 4096}}, nil
	case KindNormalEdge:
		return &normalEdge{gradientField: gradientField{strength: 4096}}, nil
	case KindEmboss:
		return &emboss{gradientField: gradientField{strength: 4096}, azimuth: 512, elevation: 512}, nil
	case KindPerlin:
		return &perlin{octaves: 4, frequency: 4, persistence: 2048, lacunarity: 2}, nil
	case KindThreshold:
		return &threshold{lo: 2048, hi: 4096}, nil
	case KindRasterizer:
		return &rasterizer{}, nil
	case KindRange:
		return &rangeOp{pointwise: monoPointwise, hi: 4096}, nil
	case KindMandelbrot:
		return &mandelbrot{iterations: 32, centreX: -2048, span: 12288}, nil
	case KindSquareWave:
		return &squareWave{periods: 4, duty: 2048}, nil
	case KindIrregularBricks:
		return &irregularBricks{rows: 6, minColumns: 2, maxColumns: 5, mortar: 128, heightVariance: 2048, variance: 1024}, nil
	case KindLineNoise:
		return &lineNoise{count: 64, minLength: 256, maxLength: 1024}, nil
	case KindTexture:
		return &textureSampler{}, nil
	case KindSprite:
		return &spriteSampler{}, nil
	case KindColourDelta:
		return &colourDelta{}, nil
	}
	return nil, fmt.Errorf("%w: tag %d", ErrUnknownKind, uint8(k))
}
