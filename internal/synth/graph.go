// Package synth decodes texture graphs and evaluates them scanline by
// scanline.
//
// A Graph is immutable once decoded. Every render builds an evaluator that
// owns the row caches, scratch rows and coordinate ramps for that render, so
// one Graph can be rendered from many goroutines at once.
package synth

import "slices"

// Graph is a decoded, wired texture definition.
type Graph struct {
	nodes    []*node
	colour   *node
	alpha    *node
	mono     *node
	sprites  []int
	textures []int
}

// Len returns the number of operations in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Kinds returns the kind of every operation in decode order.
func (g *Graph) Kinds() []Kind {
	kinds := make([]Kind, len(g.nodes))
	for i, n := range g.nodes {
		kinds[i] = n.kind
	}
	return kinds
}

// HasAlpha reports whether the graph was decoded with an alpha root.
func (g *Graph) HasAlpha() bool { return g.alpha != nil }

// SpriteIDs returns the distinct sprite ids the graph samples, ascending.
func (g *Graph) SpriteIDs() []int { return slices.Clone(g.sprites) }

// TextureIDs returns the distinct texture ids the graph samples, ascending.
func (g *Graph) TextureIDs() []int { return slices.Clone(g.textures) }
