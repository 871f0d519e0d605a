package synth

import (
	"fmt"

	"github.com/gogpu/proctex/internal/cache"
	"github.com/gogpu/proctex/internal/fixedpt"
)

// axis maps coordinates along one image dimension.
type axis struct {
	size int
	mask int // size-1 when size is a power of two, else -1
	ramp []int32
}

func newAxis(size int) axis {
	a := axis{size: size, mask: -1, ramp: make([]int32, size)}
	if size&(size-1) == 0 {
		a.mask = size - 1
	}
	for i := range a.ramp {
		a.ramp[i] = int32((i << fixedpt.Shift) / size)
	}
	return a
}

// wrap reduces i into [0, size).
func (a axis) wrap(i int) int {
	if a.mask >= 0 {
		return i & a.mask
	}
	i %= a.size
	if i < 0 {
		i += a.size
	}
	return i
}

// rowCache holds the memoised rows of one node for one render.
type rowCache struct {
	rows   *cache.Rows
	mono   [][]int32
	colour [][3][]int32
}

// evaluator is the per-render state: image size, coordinate ramps, row
// caches, scratch rows and per-node materialised data. A graph never holds
// render state, so any number of evaluators may share one graph.
type evaluator struct {
	g        *Graph
	width    int
	height   int
	x, y     axis
	uncached bool

	caches  []rowCache
	scratch [][][]int32
	state   []any

	sprites  SpriteSource
	textures TextureSource
}

func newEvaluator(g *Graph, req *Request) *evaluator {
	e := &evaluator{
		g:        g,
		width:    req.Width,
		height:   req.Height,
		x:        newAxis(req.Width),
		y:        newAxis(req.Height),
		uncached: req.Uncached,
		caches:   make([]rowCache, len(g.nodes)),
		scratch:  make([][][]int32, len(g.nodes)),
		state:    make([]any, len(g.nodes)),
		sprites:  req.Sprites,
		textures: req.Textures,
	}
	for _, n := range g.nodes {
		e.initCache(n)
	}
	return e
}

// initCache allocates the row cache of n for this render's size.
func (e *evaluator) initCache(n *node) {
	var rows *cache.Rows
	switch {
	case e.uncached:
		rows = cache.NewUncachedRows()
	case n.policy == fullPolicy:
		rows = cache.NewRows(e.height, e.height)
	default:
		rows = cache.NewRows(int(n.policy), e.height)
	}

	c := rowCache{rows: rows}
	if n.op.monochrome() {
		buf := make([]int32, rows.Slots()*e.width)
		c.mono = make([][]int32, rows.Slots())
		for i := range c.mono {
			c.mono[i] = buf[i*e.width : (i+1)*e.width : (i+1)*e.width]
		}
	} else {
		buf := make([]int32, 3*rows.Slots()*e.width)
		c.colour = make([][3][]int32, rows.Slots())
		for i := range c.colour {
			for ch := range 3 {
				off := (3*i + ch) * e.width
				c.colour[i][ch] = buf[off : off+e.width : off+e.width]
			}
		}
	}
	e.caches[n.index] = c
}

// release drops every cache; later row requests panic.
func (e *evaluator) release() {
	e.caches = nil
	e.scratch = nil
	e.state = nil
}

// prepare lets every operation reachable from roots fetch external data.
func (e *evaluator) prepare(roots ...*node) error {
	seen := make([]bool, len(e.g.nodes))
	var visit func(n *node) error
	visit = func(n *node) error {
		if n == nil || seen[n.index] {
			return nil
		}
		seen[n.index] = true
		for _, in := range n.inputs {
			if err := visit(in); err != nil {
				return err
			}
		}
		if p, ok := n.op.(preparer); ok {
			if err := p.prepare(e, n); err != nil {
				return fmt.Errorf("%s: %w", n, err)
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}

func (e *evaluator) cacheOf(n *node) *rowCache {
	if e.caches == nil || e.caches[n.index].rows == nil {
		panic(fmt.Sprintf("synth: row cache not initialised for node %d", n.id))
	}
	return &e.caches[n.index]
}

// mono returns row y of n as a single channel. Colour nodes answer with
// their green channel. The slice belongs to n's cache and must be consumed
// before n is asked for another row.
func (e *evaluator) mono(n *node, y int) []int32 {
	if !n.op.monochrome() {
		return e.colour(n, y)[1]
	}
	c := e.cacheOf(n)
	slot, dirty := c.rows.Slot(y)
	out := c.mono[slot]
	if dirty {
		n.op.monoRow(e, n, y, out)
	}
	return out
}

// colour returns row y of n as three channels. Monochrome nodes answer with
// the same slice in every channel.
func (e *evaluator) colour(n *node, y int) [3][]int32 {
	if n.op.monochrome() {
		m := e.mono(n, y)
		return [3][]int32{m, m, m}
	}
	c := e.cacheOf(n)
	slot, dirty := c.rows.Slot(y)
	out := c.colour[slot]
	if dirty {
		n.op.colourRow(e, n, y, out)
	}
	return out
}

// input returns row y of n's i-th input as a single channel.
func (e *evaluator) input(n *node, i, y int) []int32 {
	return e.mono(n.inputs[i], e.y.wrap(y))
}

// inputColour returns row y of n's i-th input as three channels.
func (e *evaluator) inputColour(n *node, i, y int) [3][]int32 {
	return e.colour(n.inputs[i], e.y.wrap(y))
}

// scratchRows returns k rows of working space private to n for this render.
func (e *evaluator) scratchRows(n *node, k int) [][]int32 {
	rows := e.scratch[n.index]
	if len(rows) < k {
		buf := make([]int32, k*e.width)
		rows = make([][]int32, k)
		for i := range rows {
			rows[i] = buf[i*e.width : (i+1)*e.width : (i+1)*e.width]
		}
		e.scratch[n.index] = rows
	}
	return rows[:k]
}

// stateOf returns the per-render data of n, building it on first use.
func (e *evaluator) stateOf(n *node, build func() any) any {
	s := e.state[n.index]
	if s == nil {
		s = build()
		e.state[n.index] = s
	}
	return s
}

// setState records per-render data of n.
func (e *evaluator) setState(n *node, s any) {
	e.state[n.index] = s
}
