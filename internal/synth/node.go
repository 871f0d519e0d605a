package synth

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// node is one decoded operation in a graph. Nodes are immutable once the
// graph is wired and initialised.
type node struct {
	index  int
	id     uint8
	kind   Kind
	policy uint8
	op     operation
	inputs []*node
}

func (n *node) String() string {
	return fmt.Sprintf("%s#%d", n.kind, n.id)
}

// fullPolicy is the cache size byte meaning one slot per row.
const fullPolicy = 255

// operation is the behaviour of one kind.
//
// monoRow and colourRow fill out with row y of the operation's output. out is
// the node's own cache slot and stays valid until the node is asked for
// another row. Only the method matching monochrome() is ever called.
type operation interface {
	// decodeField consumes the value of field f.
	decodeField(f uint8, s *cryptobyte.String) error
	// arity is the number of inputs wired to the operation.
	arity() int
	// monochrome reports the output channel mode.
	monochrome() bool
	// init builds input-independent tables once the fields are known.
	init() error

	monoRow(e *evaluator, n *node, y int, out []int32)
	colourRow(e *evaluator, n *node, y int, out [3][]int32)
}

// wholeImage is implemented by operations that materialise every row before
// answering any one; they always get the full cache policy.
type wholeImage interface {
	wholeImage()
}

// preparer is implemented by operations that fetch external data before a
// render starts.
type preparer interface {
	prepare(e *evaluator, n *node) error
}

// mode carries the channel mode of flexible kinds, decoded from field 0.
type mode struct {
	mono bool
}

func (m *mode) monochrome() bool { return m.mono }

func (m *mode) decodeMode(s *cryptobyte.String) error {
	v, err := readBool(s)
	m.mono = v
	return err
}

// monoOutput is embedded by kinds that only produce monochrome rows.
type monoOutput struct{}

func (monoOutput) monochrome() bool { return true }

func (monoOutput) colourRow(_ *evaluator, n *node, _ int, _ [3][]int32) {
	panic(fmt.Sprintf("synth: colour row requested from monochrome %s", n))
}

// colourOutput is embedded by kinds that only produce colour rows.
type colourOutput struct{}

func (colourOutput) monochrome() bool { return false }

func (colourOutput) monoRow(_ *evaluator, n *node, _ int, _ []int32) {
	panic(fmt.Sprintf("synth: monochrome row requested from colour %s", n))
}

// source is embedded by kinds without inputs.
type source struct{}

func (source) arity() int { return 0 }

// unary is embedded by kinds with a single input.
type unary struct{}

func (unary) arity() int { return 1 }

// noTables is embedded by kinds with nothing to precompute.
type noTables struct{}

func (noTables) init() error { return nil }

// noFields is embedded by kinds that take no fields.
type noFields struct{}

func (noFields) decodeField(f uint8, _ *cryptobyte.String) error {
	return errUnknownField(f)
}

func errUnknownField(f uint8) error {
	return fmt.Errorf("%w: unknown field %d", ErrMalformed, f)
}

func errInvalid(what string, v any) error {
	return fmt.Errorf("%w: invalid %s %v", ErrMalformed, what, v)
}

var errTruncated = fmt.Errorf("%w: truncated", ErrMalformed)

func readU8(s *cryptobyte.String) (int, error) {
	var v uint8
	if !s.ReadUint8(&v) {
		return 0, errTruncated
	}
	return int(v), nil
}

func readBool(s *cryptobyte.String) (bool, error) {
	v, err := readU8(s)
	return v != 0, err
}

func readU16(s *cryptobyte.String) (int32, error) {
	var v uint16
	if !s.ReadUint16(&v) {
		return 0, errTruncated
	}
	return int32(v), nil
}

func readS16(s *cryptobyte.String) (int32, error) {
	v, err := readU16(s)
	return int32(int16(v)), err
}

func readU24(s *cryptobyte.String) (int32, error) {
	var v uint32
	if !s.ReadUint24(&v) {
		return 0, errTruncated
	}
	return int32(v), nil
}

// readCount reads a u8 element count and checks that each element of size
// bytes is present.
func readCount(s *cryptobyte.String, size int) (int, error) {
	n, err := readU8(s)
	if err != nil {
		return 0, err
	}
	if len(*s) < n*size {
		return 0, errTruncated
	}
	return n, nil
}
