package synth

import "errors"

// Sentinel errors. Decode and render errors wrap one of these.
var (
	// ErrMalformed reports a graph byte stream that cannot be decoded.
	ErrMalformed = errors.New("malformed texture graph")

	// ErrUnknownKind reports an operation type tag outside the catalogue.
	ErrUnknownKind = errors.New("unknown operation kind")

	// ErrMissingSource reports a sprite or texture operation rendered
	// without a provider, or whose provider failed.
	ErrMissingSource = errors.New("missing pixel source")

	// ErrInvalidRequest reports unusable render parameters.
	ErrInvalidRequest = errors.New("invalid render request")
)
