package main

import (
	"github.com/gogpu/proctex"
)

// sampleGraph builds a marble-like brick wall: perlin noise tinted by a
// gradient, multiplied by a brick mask and lit by an emboss of the same
// mask.
func sampleGraph() ([]byte, error) {
	b := proctex.NewGraphBuilder()

	noise := b.Add(proctex.Op{
		Kind:   proctex.KindPerlin,
		Fields: []proctex.Field{proctex.U16(0, 1234), proctex.U8(1, 5), proctex.U8(2, 4)},
	})
	warp := b.Add(proctex.Op{
		Kind:   proctex.KindTrigWarp,
		Cache:  255,
		Inputs: []uint8{noise},
	})
	stone := b.Add(proctex.Op{
		Kind:   proctex.KindGradientMap,
		Inputs: []uint8{warp},
		Fields: []proctex.Field{proctex.GradientStops(2,
			proctex.GradientStop{Pos: 0, RGB: 0x2A2520},
			proctex.GradientStop{Pos: 2048, RGB: 0x8C7B6A},
			proctex.GradientStop{Pos: 4096, RGB: 0xD8CFC0},
		)},
	})
	bricks := b.Add(proctex.Op{
		Kind:  proctex.KindBricks,
		Cache: 3,
	})
	relief := b.Add(proctex.Op{
		Kind:   proctex.KindEmboss,
		Inputs: []uint8{bricks},
	})
	wall := b.Add(proctex.Op{
		Kind:   proctex.KindArithmetic,
		Inputs: []uint8{stone, bricks},
		Fields: []proctex.Field{proctex.Bool(0, false), proctex.U8(1, proctex.BlendMultiply)},
	})
	lit := b.Add(proctex.Op{
		Kind:   proctex.KindArithmetic,
		Inputs: []uint8{wall, relief},
		Fields: []proctex.Field{proctex.Bool(0, false), proctex.U8(1, proctex.BlendOverlay)},
	})

	return b.Encode(lit, bricks)
}
