package proctex

import (
	"fmt"
	"slices"

	"github.com/gogpu/proctex/internal/cache"
	"github.com/gogpu/proctex/internal/parallel"
)

// Edge lengths at which a Library renders textures referenced by other
// textures.
const (
	ReferenceSize      = 128
	SmallReferenceSize = 64
)

// GraphSource supplies encoded texture definitions by id.
type GraphSource interface {
	Definition(id int) ([]byte, error)
}

// GraphSourceFunc adapts a function to GraphSource.
type GraphSourceFunc func(id int) ([]byte, error)

// Definition calls f(id).
func (f GraphSourceFunc) Definition(id int) ([]byte, error) { return f(id) }

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	small     bool
	sprites   SpriteSource
	workers   int
	cacheSize int
}

// WithSmallTextures renders referenced textures at SmallReferenceSize
// instead of ReferenceSize.
func WithSmallTextures() LibraryOption {
	return func(o *libraryOptions) {
		o.small = true
	}
}

// WithLibrarySprites supplies sprites to every render the library performs.
func WithLibrarySprites(s SpriteSource) LibraryOption {
	return func(o *libraryOptions) {
		o.sprites = s
	}
}

// WithWorkers sets the number of goroutines RenderAll uses.
// 0 means GOMAXPROCS.
func WithWorkers(n int) LibraryOption {
	return func(o *libraryOptions) {
		o.workers = n
	}
}

// WithCacheSize bounds the number of decoded definitions and rendered
// reference textures kept in memory.
func WithCacheSize(n int) LibraryOption {
	return func(o *libraryOptions) {
		o.cacheSize = n
	}
}

// Library loads texture definitions on demand, keeps them decoded, and
// resolves texture references between them.
//
// A Library is a TextureSource: it renders referenced textures at
// ReferenceSize (or SmallReferenceSize) and memoises the result. A
// definition that is missing, malformed, or that references itself through
// a chain of textures is reported as ErrUnavailable rather than rendered
// partially.
//
// Library is safe for concurrent use. Call Close to stop its workers.
type Library struct {
	src      GraphSource
	opts     libraryOptions
	defs     *cache.Cache[int, libraryEntry]
	rendered *cache.Cache[int, Pixels]
	pool     *parallel.Pool
}

type libraryEntry struct {
	def *Definition
	err error
}

// NewLibrary creates a library over src.
func NewLibrary(src GraphSource, opts ...LibraryOption) *Library {
	o := libraryOptions{cacheSize: 256}
	for _, opt := range opts {
		opt(&o)
	}
	return &Library{
		src:      src,
		opts:     o,
		defs:     cache.New[int, libraryEntry](o.cacheSize),
		rendered: cache.New[int, Pixels](o.cacheSize),
		pool:     parallel.NewPool(o.workers),
	}
}

// Close stops the worker pool. Renders after Close still work but run on
// the calling goroutine.
func (l *Library) Close() {
	l.pool.Close()
}

// ReferenceSize returns the edge length of referenced textures.
func (l *Library) ReferenceSize() int {
	if l.opts.small {
		return SmallReferenceSize
	}
	return ReferenceSize
}

// Definition returns the decoded definition of texture id. Decode failures
// are cached; source read failures are not, so a later call retries them.
func (l *Library) Definition(id int) (*Definition, error) {
	e, ok := l.defs.Get(id)
	if !ok {
		data, err := l.src.Definition(id)
		if err != nil {
			return nil, fmt.Errorf("%w: texture %d: %w", ErrUnavailable, id, err)
		}
		def, err := Decode(data)
		e = libraryEntry{def: def, err: err}
		l.defs.Set(id, e)
	}
	if e.err != nil {
		return nil, fmt.Errorf("%w: texture %d: %w", ErrUnavailable, id, e.err)
	}
	return e.def, nil
}

// Texture implements TextureSource.
func (l *Library) Texture(id int) (Pixels, bool, error) {
	return l.texture(id, nil)
}

func (l *Library) texture(id int, chain []int) (Pixels, bool, error) {
	if slices.Contains(chain, id) {
		return Pixels{}, false, fmt.Errorf("%w: texture %d references itself via %v", ErrUnavailable, id, chain)
	}
	if p, ok := l.rendered.Get(id); ok {
		return p, l.opts.small, nil
	}

	size := l.ReferenceSize()
	img, err := l.render(id, Request{Width: size, Height: size, Brightness: 1}, append(slices.Clone(chain), id))
	if err != nil {
		Logger().Warn("proctex: texture unavailable", "id", id, "err", err)
		return Pixels{}, false, err
	}
	p := img.Pixels()
	l.rendered.Set(id, p)
	return p, l.opts.small, nil
}

// referenceChain resolves textures on behalf of one render, remembering
// which textures are already being rendered further up.
type referenceChain struct {
	l     *Library
	chain []int
}

func (c referenceChain) Texture(id int) (Pixels, bool, error) {
	return c.l.texture(id, c.chain)
}

func (l *Library) render(id int, req Request, chain []int) (*Image, error) {
	def, err := l.Definition(id)
	if err != nil {
		return nil, err
	}
	img, err := def.Render(req,
		WithTextures(referenceChain{l: l, chain: chain}),
		WithSprites(l.opts.sprites))
	if err != nil {
		return nil, fmt.Errorf("%w: texture %d: %w", ErrUnavailable, id, err)
	}
	return img, nil
}

// Render renders texture id as described by req. Referenced textures are
// resolved through the library.
func (l *Library) Render(id int, req Request) (*Image, error) {
	return l.render(id, req, []int{id})
}

// Rendered is one result of RenderAll.
type Rendered struct {
	ID    int
	Image *Image
	Err   error
}

// RenderAll renders every texture in ids concurrently and returns the
// results in the same order.
func (l *Library) RenderAll(ids []int, req Request) []Rendered {
	Logger().Info("proctex: rendering batch", "textures", len(ids), "workers", l.pool.Workers())
	return parallel.Map(l.pool, len(ids), func(i int) Rendered {
		img, err := l.Render(ids[i], req)
		return Rendered{ID: ids[i], Image: img, Err: err}
	})
}

// CacheStats reports the activity of a Library's caches.
type CacheStats struct {
	Definitions cache.Stats
	Textures    cache.Stats
}

// Stats returns a snapshot of the definition and reference texture caches.
func (l *Library) Stats() CacheStats {
	return CacheStats{Definitions: l.defs.Stats(), Textures: l.rendered.Stats()}
}
