// Package proctex renders procedural textures from compact binary graph
// definitions.
//
// # Overview
//
// A texture definition is a small dataflow graph of image operations:
// noise, patterns, colour mapping, blurs, warps and vector shapes. The graph
// is decoded once into an immutable [Definition] and can then be rendered at
// any size, scanline by scanline, into packed RGB or ARGB pixels. Every
// operation works in 12-bit fixed point (4096 = 1.0) so renders are exact
// and repeatable on every platform.
//
// # Quick Start
//
//	import "github.com/gogpu/proctex"
//
//	b := proctex.NewGraphBuilder()
//	n := b.Add(proctex.Op{Kind: proctex.KindPerlin, Fields: []proctex.Field{proctex.U16(0, 42)}})
//	c := b.Add(proctex.Op{Kind: proctex.KindGradientMap, Inputs: []uint8{n},
//	    Fields: []proctex.Field{proctex.U8(1, uint8(proctex.PresetEarth))}})
//	data, _ := b.Encode(c, n)
//
//	def, err := proctex.Decode(data)
//	if err != nil {
//	    return err
//	}
//	img, err := def.PixelsRGB(128, 128, false, 1.0)
//
// # Concurrency
//
// A Definition holds no render state. Row caches and scratch buffers belong
// to a single render call, so one Definition may be rendered from many
// goroutines at once. [Library] renders batches of textures on a worker pool.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Decode, Definition, Image, GraphBuilder, Library
//   - Internal: synth (decoder and evaluator), raster (vector shapes),
//     noise, gradient, color, filter, fixedpt, cache, parallel
package proctex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// FormatVersion is the graph byte format understood by Decode.
	FormatVersion = 1
)
