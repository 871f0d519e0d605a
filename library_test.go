package proctex

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

// mapSource serves definitions from memory and counts loads.
type mapSource struct {
	defs  map[int][]byte
	loads atomic.Int32
}

func (m *mapSource) Definition(id int) ([]byte, error) {
	m.loads.Add(1)
	data, ok := m.defs[id]
	if !ok {
		return nil, fmt.Errorf("no texture %d", id)
	}
	return data, nil
}

func textureRef(ref uint16) func(b *GraphBuilder) (uint8, uint8) {
	return func(b *GraphBuilder) (uint8, uint8) {
		n := b.Add(Op{Kind: KindTexture, Fields: []Field{U16(0, ref)}})
		return n, n
	}
}

func newTestLibrary(t *testing.T, opts ...LibraryOption) (*Library, *mapSource) {
	t.Helper()
	src := &mapSource{defs: map[int][]byte{
		1: encodeGraph(t, solid(0x102030)),
		2: encodeGraph(t, textureRef(1)),
		3: encodeGraph(t, textureRef(4)),
		4: encodeGraph(t, textureRef(3)),
		5: encodeGraph(t, textureRef(5)),
		6: {0xFF},
		7: encodeGraph(t, textureRef(99)),
	}}
	l := NewLibrary(src, opts...)
	t.Cleanup(l.Close)
	return l, src
}

func TestLibraryTexture(t *testing.T) {
	tests := []struct {
		name string
		opts []LibraryOption
		size int
	}{
		{"reference", nil, ReferenceSize},
		{"small", []LibraryOption{WithSmallTextures()}, SmallReferenceSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLibrary(t, tt.opts...)
			if l.ReferenceSize() != tt.size {
				t.Errorf("ReferenceSize() = %d, want %d", l.ReferenceSize(), tt.size)
			}
			p, small, err := l.Texture(1)
			if err != nil {
				t.Fatalf("Texture: %v", err)
			}
			if p.Width != tt.size || p.Height != tt.size {
				t.Errorf("texture %dx%d, want %d", p.Width, p.Height, tt.size)
			}
			if small != (tt.size == SmallReferenceSize) {
				t.Errorf("small = %v", small)
			}
			if p.Pix[0] != 0x102030 {
				t.Errorf("pixel = %#06x, want 0x102030", p.Pix[0])
			}
		})
	}
}

func TestLibraryRenderReference(t *testing.T) {
	l, _ := newTestLibrary(t)
	img, err := l.Render(2, Request{Width: 32, Height: 16, Brightness: 1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, p := range img.Pix {
		if p != 0x102030 {
			t.Fatalf("pixel %d = %#06x, want 0x102030", i, p)
		}
	}
}

func TestLibraryUnavailable(t *testing.T) {
	tests := []struct {
		name string
		id   int
	}{
		{"cycle", 3},
		{"self reference", 5},
		{"malformed", 6},
		{"missing reference", 7},
		{"missing", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLibrary(t)
			img, err := l.Render(tt.id, Request{Width: 8, Height: 8, Brightness: 1})
			if img != nil {
				t.Error("Render returned an image on error")
			}
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Render error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestLibraryDefinitionCached(t *testing.T) {
	l, src := newTestLibrary(t)
	for range 3 {
		def, err := l.Definition(1)
		if err != nil {
			t.Fatal(err)
		}
		if def.Len() != 1 {
			t.Errorf("Len() = %d, want 1", def.Len())
		}
	}
	for range 2 {
		if _, err := l.Definition(6); !errors.Is(err, ErrMalformed) {
			t.Errorf("Definition(6) error = %v, want ErrMalformed", err)
		}
	}
	if got := src.loads.Load(); got != 2 {
		t.Errorf("source loaded %d times, want 2", got)
	}
}

// flakySource fails a set number of reads before serving data.
type flakySource struct {
	data  []byte
	fails atomic.Int32
}

func (f *flakySource) Definition(id int) ([]byte, error) {
	if f.fails.Add(-1) >= 0 {
		return nil, fmt.Errorf("texture %d: temporarily unreadable", id)
	}
	return f.data, nil
}

func TestLibraryRetriesSourceErrors(t *testing.T) {
	src := &flakySource{data: encodeGraph(t, solid(0x102030))}
	src.fails.Store(1)
	l := NewLibrary(src)
	t.Cleanup(l.Close)

	if _, err := l.Definition(1); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("first Definition error = %v, want ErrUnavailable", err)
	}
	def, err := l.Definition(1)
	if err != nil {
		t.Fatalf("Definition after recovery: %v", err)
	}
	if def.Len() != 1 {
		t.Errorf("Len() = %d, want 1", def.Len())
	}
	if st := l.Stats(); st.Definitions.Len != 1 {
		t.Errorf("definitions cached = %d, want 1", st.Definitions.Len)
	}
}

func TestLibraryRenderAll(t *testing.T) {
	l, _ := newTestLibrary(t, WithWorkers(3))
	ids := []int{1, 6, 2, 1, 3}
	results := l.RenderAll(ids, Request{Width: 16, Height: 16, Brightness: 1})

	if len(results) != len(ids) {
		t.Fatalf("got %d results, want %d", len(results), len(ids))
	}
	for i, r := range results {
		if r.ID != ids[i] {
			t.Errorf("result %d has id %d, want %d", i, r.ID, ids[i])
		}
		wantErr := ids[i] == 6 || ids[i] == 3
		if (r.Err != nil) != wantErr {
			t.Errorf("texture %d: err = %v", r.ID, r.Err)
			continue
		}
		if !wantErr && r.Image.Pix[0] != 0x102030 {
			t.Errorf("texture %d: pixel = %#06x", r.ID, r.Image.Pix[0])
		}
	}
}

func TestLibraryAsTextureSource(t *testing.T) {
	l, _ := newTestLibrary(t, WithSmallTextures())
	def := mustDecodeDefinition(t, encodeGraph(t, textureRef(1)))
	if ids := def.TextureIDs(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("TextureIDs() = %v, want [1]", ids)
	}

	img, err := def.PixelsRGB(8, 8, false, 1, WithTextures(l))
	if err != nil {
		t.Fatal(err)
	}
	if img.Pix[0] != 0x102030 {
		t.Errorf("pixel = %#06x, want 0x102030", img.Pix[0])
	}
}

func TestLibraryCloseStillRenders(t *testing.T) {
	l, _ := newTestLibrary(t)
	l.Close()
	results := l.RenderAll([]int{1, 2}, Request{Width: 4, Height: 4, Brightness: 1})
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("texture %d after Close: %v", r.ID, r.Err)
		}
	}
}

func TestLibraryStats(t *testing.T) {
	l, _ := newTestLibrary(t)
	for range 2 {
		if _, err := l.Render(2, Request{Width: 4, Height: 4, Brightness: 1}); err != nil {
			t.Fatal(err)
		}
	}
	st := l.Stats()
	if st.Definitions.Len != 2 {
		t.Errorf("definitions cached = %d, want 2", st.Definitions.Len)
	}
	if st.Textures.Len != 1 || st.Textures.Hits != 1 {
		t.Errorf("texture stats = %+v, want one entry hit once", st.Textures)
	}
}
