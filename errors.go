package proctex

import (
	"errors"

	"github.com/gogpu/proctex/internal/synth"
)

// Errors returned by Decode and the render methods. Returned errors wrap
// these; test with errors.Is.
var (
	// ErrMalformed reports a definition that cannot be decoded.
	ErrMalformed = synth.ErrMalformed

	// ErrUnknownKind reports an operation type tag outside the catalogue.
	ErrUnknownKind = synth.ErrUnknownKind

	// ErrMissingSource reports a sprite or texture that could not be
	// supplied to a render.
	ErrMissingSource = synth.ErrMissingSource

	// ErrInvalidSize reports a render size outside 1..MaxDimension.
	ErrInvalidSize = synth.ErrInvalidRequest

	// ErrUnavailable reports a library texture that cannot be produced:
	// its definition is missing or malformed, or it references itself.
	ErrUnavailable = errors.New("texture unavailable")
)
