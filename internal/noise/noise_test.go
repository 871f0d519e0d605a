package noise

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestHashRangeAndDeterminism(t *testing.T) {
	seen := map[int32]bool{}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := Hash(x, y, 7)
			if v < 0 || v >= 4096 {
				t.Fatalf("Hash(%d,%d) = %d out of [0,4096)", x, y, v)
			}
			if v != Hash(x, y, 7) {
				t.Fatalf("Hash(%d,%d) not deterministic", x, y)
			}
			seen[v] = true
		}
	}
	if len(seen) < 500 {
		t.Errorf("only %d distinct values in 1024 samples", len(seen))
	}
	if Hash(3, 4, 1) == Hash(3, 4, 2) && Hash(5, 6, 1) == Hash(5, 6, 2) {
		t.Error("seed does not influence the hash")
	}
}

func TestPermutationIsPermutation(t *testing.T) {
	p := permutation()
	var seen [256]bool
	for i := 0; i < 256; i++ {
		if seen[p[i]] {
			t.Fatalf("value %d repeated", p[i])
		}
		seen[p[i]] = true
		if p[i] != p[i+256] {
			t.Fatalf("second half differs at %d", i)
		}
	}
}

func TestPerlinRangeAndTiling(t *testing.T) {
	p := NewPerlin(42, 4, 4, 2048, 2)
	var lo, hi int32 = 4096, 0
	for v := int32(0); v < 4096; v += 64 {
		for u := int32(0); u < 4096; u += 64 {
			n := p.At(u, v)
			if n < 0 || n > 4096 {
				t.Fatalf("At(%d,%d) = %d out of range", u, v, n)
			}
			lo, hi = min(lo, n), max(hi, n)
		}
	}
	if hi-lo < 512 {
		t.Errorf("noise too flat: range [%d, %d]", lo, hi)
	}

	// The lattice wraps, so both texture edges meet.
	for v := int32(0); v < 4096; v += 256 {
		if a, b := p.At(0, v), p.At(4096, v); a != b {
			t.Errorf("horizontal seam at v=%d: %d != %d", v, a, b)
		}
	}
}

func TestPerlinLatticePointsAreMidGrey(t *testing.T) {
	// Gradient noise is zero on lattice points.
	p := NewPerlin(1, 1, 4, 2048, 2)
	for _, c := range []int32{0, 1024, 2048, 3072} {
		if got := p.At(c, c); got != 2048 {
			t.Errorf("At(%d,%d) = %d, want 2048", c, c, got)
		}
	}
}

func TestPerlinSkippedOctavesKeepContrast(t *testing.T) {
	// Octaves above the frequency cap are skipped, so they must not dilute
	// the octaves that remain.
	capped := NewPerlin(3, 4, 255, 4096, 255)
	single := NewPerlin(3, 1, 255, 4096, 255)
	for v := int32(0); v < 4096; v += 61 {
		for u := int32(0); u < 4096; u += 67 {
			if a, b := capped.At(u, v), single.At(u, v); a != b {
				t.Fatalf("At(%d,%d) = %d, want %d as with one octave", u, v, a, b)
			}
		}
	}
}

// nearestSite returns the distance to the nearest site over the whole
// wrapped grid.
func nearestSite(vo *Voronoi, u, w int32) int32 {
	px := int64(u) * int64(vo.cellsX)
	py := int64(w) * int64(vo.cellsY)
	spanX := int64(vo.cellsX) << 12
	spanY := int64(vo.cellsY) << 12
	best := int32(1 << 30)
	for cy := 0; cy < vo.cellsY; cy++ {
		for cx := 0; cx < vo.cellsX; cx++ {
			i := cy*vo.cellsX + cx
			sx := int64(cx)<<12 + int64(vo.siteX[i]) - px
			sy := int64(cy)<<12 + int64(vo.siteY[i]) - py
			for _, kx := range []int64{-spanX, 0, spanX} {
				for _, ky := range []int64{-spanY, 0, spanY} {
					best = min(best, vo.distance(int32(sx+kx), int32(sy+ky)))
				}
			}
		}
	}
	return best
}

func TestVoronoiNearestMatchesExhaustiveSearch(t *testing.T) {
	for _, jitter := range []int32{0, 2048, 4096, 6144, 16384, 65535} {
		for _, metric := range []Metric{Euclidean, Chebyshev, SquaredEuclidean} {
			vo := NewVoronoi(11, 4, 4, jitter, metric, Nearest)
			for w := int32(0); w < 4096; w += 64 {
				for u := int32(0); u < 4096; u += 64 {
					want := min(nearestSite(vo, u, w), 4096)
					if got := vo.At(u, w); got != want {
						t.Fatalf("jitter %d metric %d: At(%d,%d) = %d, want %d", jitter, metric, u, w, got, want)
					}
				}
			}
		}
	}
}

func TestVoronoiMetrics(t *testing.T) {
	// Zero jitter puts every site in its cell centre.
	for _, metric := range []Metric{Euclidean, Chebyshev, SquaredEuclidean} {
		v := NewVoronoi(3, 4, 4, 0, metric, Nearest)
		if got := v.At(512, 512); got != 0 {
			t.Errorf("metric %d: distance at site = %d, want 0", metric, got)
		}
	}

	euclid := NewVoronoi(3, 4, 4, 0, Euclidean, Nearest)
	cheb := NewVoronoi(3, 4, 4, 0, Chebyshev, Nearest)
	// Cell corner: offset (half, half) cell from the nearest site.
	if got := cheb.At(0, 0); got != 2048 {
		t.Errorf("chebyshev corner = %d, want 2048", got)
	}
	if got := euclid.At(0, 0); got < 2895 || got > 2897 {
		t.Errorf("euclidean corner = %d, want ~2896", got)
	}
}

func TestVoronoiFeatures(t *testing.T) {
	nearest := NewVoronoi(9, 5, 5, 4096, Euclidean, Nearest)
	second := NewVoronoi(9, 5, 5, 4096, Euclidean, Second)
	diff := NewVoronoi(9, 5, 5, 4096, Euclidean, Difference)

	for u := int32(0); u < 4096; u += 97 {
		for v := int32(0); v < 4096; v += 89 {
			n, s, d := nearest.At(u, v), second.At(u, v), diff.At(u, v)
			if s < n {
				t.Fatalf("(%d,%d): second %d < nearest %d", u, v, s, n)
			}
			if d != s-n && s < 4096 {
				t.Fatalf("(%d,%d): difference %d != %d-%d", u, v, d, s, n)
			}
		}
	}
}

func TestMandelbrot(t *testing.T) {
	one := fixed.Int52_12(4096)

	if got := Mandelbrot(0, 0, 32); got != 4096 {
		t.Errorf("origin = %d, want 4096 (inside)", got)
	}
	if got := Mandelbrot(-one, 0, 32); got != 4096 {
		t.Errorf("-1 = %d, want 4096 (inside)", got)
	}
	if got := Mandelbrot(2*one, 2*one, 32); got >= 4096/32*2 {
		t.Errorf("2+2i = %d, want immediate escape", got)
	}
	if got := Mandelbrot(0, 0, 0); got != 4096 {
		t.Errorf("zero iterations = %d, want 4096", got)
	}
}
