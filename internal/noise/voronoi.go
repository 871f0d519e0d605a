package noise

import "github.com/gogpu/proctex/internal/fixedpt"

// Metric selects the distance function of cell noise.
type Metric uint8

const (
	// Euclidean is straight-line distance.
	Euclidean Metric = iota
	// Chebyshev is the larger of the axis distances.
	Chebyshev
	// SquaredEuclidean is the squared straight-line distance.
	SquaredEuclidean
)

// Feature selects which distance cell noise reports.
type Feature uint8

const (
	// Nearest reports the distance to the closest site.
	Nearest Feature = iota
	// Second reports the distance to the second closest site.
	Second
	// Difference reports second minus nearest, which outlines the cells.
	Difference
)

// searchRadius is how many cells around the sample cell At inspects. With
// sites confined to their own cells, both the nearest and the second nearest
// site always lie within two cells.
const searchRadius = 2

// Voronoi is tileable cell noise over a jittered grid of sites.
type Voronoi struct {
	cellsX, cellsY int
	siteX, siteY   []int32
	metric         Metric
	feature        Feature
}

// NewVoronoi places one site per grid cell. jitter (4096 = a full cell)
// controls how far sites stray from the cell centre. Jitter is clamped to a
// full cell so every site stays inside its own cell.
func NewVoronoi(seed uint32, cellsX, cellsY int, jitter int32, metric Metric, feature Feature) *Voronoi {
	cellsX, cellsY = max(cellsX, 1), max(cellsY, 1)
	jitter = fixedpt.ClampUnit(jitter)
	v := &Voronoi{
		cellsX:  cellsX,
		cellsY:  cellsY,
		siteX:   make([]int32, cellsX*cellsY),
		siteY:   make([]int32, cellsX*cellsY),
		metric:  metric,
		feature: feature,
	}
	rng := Source(seed)
	for i := range v.siteX {
		v.siteX[i] = fixedpt.Half + fixedpt.Mul(rng.Int32N(fixedpt.One)-fixedpt.Half, jitter)
		v.siteY[i] = fixedpt.Half + fixedpt.Mul(rng.Int32N(fixedpt.One)-fixedpt.Half, jitter)
	}
	return v
}

// At returns the selected distance in [0, 4096] at texture coordinate (u, v),
// measured in cells (4096 = one cell width).
func (v *Voronoi) At(u, w int32) int32 {
	px := int64(u) * int64(v.cellsX)
	py := int64(w) * int64(v.cellsY)
	cx := int(px >> fixedpt.Shift)
	cy := int(py >> fixedpt.Shift)
	fx := int32(px & fixedpt.Mask)
	fy := int32(py & fixedpt.Mask)

	d1, d2 := int32(1<<30), int32(1<<30)
	for dy := -searchRadius; dy <= searchRadius; dy++ {
		row := wrap(cy+dy, v.cellsY) * v.cellsX
		for dx := -searchRadius; dx <= searchRadius; dx++ {
			i := row + wrap(cx+dx, v.cellsX)
			sx := int32(dx)*fixedpt.One + v.siteX[i] - fx
			sy := int32(dy)*fixedpt.One + v.siteY[i] - fy
			d := v.distance(sx, sy)
			switch {
			case d < d1:
				d1, d2 = d, d1
			case d < d2:
				d2 = d
			}
		}
	}

	switch v.feature {
	case Second:
		return fixedpt.ClampUnit(d2)
	case Difference:
		return fixedpt.ClampUnit(d2 - d1)
	default:
		return fixedpt.ClampUnit(d1)
	}
}

func (v *Voronoi) distance(dx, dy int32) int32 {
	switch v.metric {
	case Chebyshev:
		return max(fixedpt.Abs(dx), fixedpt.Abs(dy))
	case SquaredEuclidean:
		return int32((int64(dx)*int64(dx) + int64(dy)*int64(dy)) >> fixedpt.Shift)
	default:
		return fixedpt.Hypot(dx, dy)
	}
}

// wrap reduces i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
