package proctex

import (
	"github.com/gogpu/proctex/internal/gradient"
	"github.com/gogpu/proctex/internal/raster"
	"github.com/gogpu/proctex/internal/synth"
)

// Kind is an operation type tag.
type Kind = synth.Kind

// Operation kinds. The numbering is part of the byte format.
const (
	KindMonoFill           = synth.KindMonoFill
	KindColourFill         = synth.KindColourFill
	KindHorizontalGradient = synth.KindHorizontalGradient
	KindVerticalGradient   = synth.KindVerticalGradient
	KindBricks             = synth.KindBricks
	KindBoxBlur            = synth.KindBoxBlur
	KindClamp              = synth.KindClamp
	KindArithmetic         = synth.KindArithmetic
	KindCurve              = synth.KindCurve
	KindMirror             = synth.KindMirror
	KindGradientMap        = synth.KindGradientMap
	KindColourize          = synth.KindColourize
	KindTrigWarp           = synth.KindTrigWarp
	KindHashNoise          = synth.KindHashNoise
	KindWeave              = synth.KindWeave
	KindVoronoi            = synth.KindVoronoi
	KindHerringbone        = synth.KindHerringbone
	KindHSL                = synth.KindHSL
	KindTiling             = synth.KindTiling
	KindMixer              = synth.KindMixer
	KindInvert             = synth.KindInvert
	KindKaleidoscope       = synth.KindKaleidoscope
	KindEdgeDetect         = synth.KindEdgeDetect
	KindNormalEdge         = synth.KindNormalEdge
	KindEmboss             = synth.KindEmboss
	KindPerlin             = synth.KindPerlin
	KindThreshold          = synth.KindThreshold
	KindRasterizer         = synth.KindRasterizer
	KindRange              = synth.KindRange
	KindMandelbrot         = synth.KindMandelbrot
	KindSquareWave         = synth.KindSquareWave
	KindIrregularBricks    = synth.KindIrregularBricks
	KindLineNoise          = synth.KindLineNoise
	KindTexture            = synth.KindTexture
	KindSprite             = synth.KindSprite
	KindColourDelta        = synth.KindColourDelta
)

// Blend modes of KindArithmetic, field 1.
const (
	BlendAdd uint8 = iota
	BlendSubtract
	BlendMultiply
	BlendDivide
	BlendScreen
	BlendOverlay
	BlendDodge
	BlendBurn
	BlendMin
	BlendMax
	BlendDifference
	BlendAverage
)

// Interpolation selects how curve and gradient tables blend between points.
type Interpolation = gradient.Interpolation

// Interpolation modes.
const (
	InterpolateLinear = gradient.Linear
	InterpolateCosine = gradient.Cosine
	InterpolateCubic  = gradient.Cubic
)

// Preset is a built-in gradient of KindGradientMap, field 1.
type Preset = gradient.Preset

// Gradient presets.
const (
	PresetCustom    = gradient.Custom
	PresetGreyscale = gradient.Greyscale
	PresetFire      = gradient.Fire
	PresetIce       = gradient.Ice
	PresetEarth     = gradient.Earth
	PresetRainbow   = gradient.Rainbow
	PresetSepia     = gradient.Sepia
	PresetGrass     = gradient.Grass
)

// CurvePoint is a control point of KindCurve on the 4096 scale.
type CurvePoint = gradient.Point

// GradientStop is a colour stop of KindGradientMap.
type GradientStop = gradient.Stop

// Shape is a vector primitive drawn by KindRasterizer. Coordinates are on
// the 4096 scale of the output size.
type Shape = raster.Shape

// ShapeStyle holds the fill and outline of a shape.
type ShapeStyle = raster.Style

// ShapeKind identifies a vector primitive.
type ShapeKind = raster.Kind

// Vector primitives.
const (
	ShapeLine      = raster.KindLine
	ShapeBezier    = raster.KindBezier
	ShapeRectangle = raster.KindRectangle
	ShapeCircle    = raster.KindCircle
	ShapeEllipse   = raster.KindEllipse
)
