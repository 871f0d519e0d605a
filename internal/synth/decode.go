package synth

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/cryptobyte"
)

// Decode parses and wires a graph. When alpha is set the stream carries an
// alpha root between the colour and monochrome roots.
//
// Decoding is all or nothing: any error leaves no partial graph behind.
func Decode(data []byte, alpha bool) (*Graph, error) {
	s := cryptobyte.String(data)

	count, err := readU8(&s)
	if err != nil {
		return nil, err
	}

	g := &Graph{nodes: make([]*node, count)}
	byID := make(map[uint8]*node, count)

	for i := range count {
		n, err := decodeNode(&s, i)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		if _, dup := byID[n.id]; dup {
			return nil, fmt.Errorf("%w: duplicate wiring id %d", ErrMalformed, n.id)
		}
		byID[n.id] = n
		g.nodes[i] = n
	}

	// Inputs must name operations decoded earlier, which keeps the graph
	// acyclic without a separate check.
	for _, n := range g.nodes {
		n.inputs = make([]*node, n.op.arity())
		for k := range n.inputs {
			id, err := readU8(&s)
			if err != nil {
				return nil, err
			}
			in, ok := byID[uint8(id)]
			if !ok || in.index >= n.index {
				return nil, fmt.Errorf("%w: %s input %d references id %d", ErrMalformed, n, k, id)
			}
			n.inputs[k] = in
		}
	}

	root := func(name string) (*node, error) {
		id, err := readU8(&s)
		if err != nil {
			return nil, err
		}
		n, ok := byID[uint8(id)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s root id %d", ErrMalformed, name, id)
		}
		return n, nil
	}
	if g.colour, err = root("colour"); err != nil {
		return nil, err
	}
	if alpha {
		if g.alpha, err = root("alpha"); err != nil {
			return nil, err
		}
	}
	if g.mono, err = root("monochrome"); err != nil {
		return nil, err
	}
	if !s.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(s))
	}

	for _, n := range g.nodes {
		if err := n.op.init(); err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		switch op := n.op.(type) {
		case *spriteSampler:
			g.sprites = append(g.sprites, op.id)
		case *textureSampler:
			g.textures = append(g.textures, op.id)
		}
	}
	slices.Sort(g.sprites)
	g.sprites = slices.Compact(g.sprites)
	slices.Sort(g.textures)
	g.textures = slices.Compact(g.textures)

	slogger().Debug("proctex: decoded graph",
		"operations", len(g.nodes),
		"alpha", alpha,
		"sprites", len(g.sprites),
		"textures", len(g.textures))

	return g, nil
}

func decodeNode(s *cryptobyte.String, index int) (*node, error) {
	var id, tag, policy, fields uint8
	if !s.ReadUint8(&id) || !s.ReadUint8(&tag) || !s.ReadUint8(&policy) || !s.ReadUint8(&fields) {
		return nil, errTruncated
	}

	op, err := newOperation(Kind(tag))
	if err != nil {
		return nil, err
	}
	n := &node{index: index, id: id, kind: Kind(tag), policy: policy, op: op}

	for range fields {
		var f uint8
		if !s.ReadUint8(&f) {
			return nil, errTruncated
		}
		if err := op.decodeField(f, s); err != nil {
			return nil, fmt.Errorf("%s field %d: %w", n, f, err)
		}
	}

	if _, ok := op.(wholeImage); ok && policy != fullPolicy {
		slogger().Debug("proctex: forcing full row cache", "node", n.String(), "policy", policy)
		n.policy = fullPolicy
	}
	return n, nil
}
