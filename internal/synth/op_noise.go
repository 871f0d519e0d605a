package synth

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/proctex/internal/fixedpt"
	"github.com/gogpu/proctex/internal/noise"
	"github.com/gogpu/proctex/internal/raster"
)

func readSeed(s *cryptobyte.String) (uint32, error) {
	v, err := readU16(s)
	return uint32(v), err
}

// hashNoise is white noise from a coordinate hash.
type hashNoise struct {
	source
	monoOutput
	noTables
	seed uint32
}

func (o *hashNoise) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.seed, err = readSeed(s)
	return err
}

func (o *hashNoise) monoRow(_ *evaluator, _ *node, y int, out []int32) {
	for x := range out {
		out[x] = noise.Hash(x, y, o.seed)
	}
}

// perlin is tileable multi-octave gradient noise.
type perlin struct {
	source
	monoOutput
	seed        uint32
	octaves     int
	frequency   int
	persistence int32
	lacunarity  int

	noise *noise.Perlin
}

func (o *perlin) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.seed, err = readSeed(s)
	case 1:
		o.octaves, err = readU8(s)
	case 2:
		o.frequency, err = readU8(s)
	case 3:
		o.persistence, err = readU16(s)
	case 4:
		o.lacunarity, err = readU8(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *perlin) init() error {
	o.noise = noise.NewPerlin(o.seed, o.octaves, o.frequency, o.persistence, o.lacunarity)
	return nil
}

func (o *perlin) monoRow(e *evaluator, _ *node, y int, out []int32) {
	v := e.y.ramp[y]
	for x := range out {
		out[x] = o.noise.At(e.x.ramp[x], v)
	}
}

// voronoi is cellular noise over a jittered grid of sites.
type voronoi struct {
	source
	monoOutput
	seed           uint32
	cellsX, cellsY int
	metric         noise.Metric
	feature        noise.Feature
	jitter         int32

	noise *noise.Voronoi
}

func (o *voronoi) decodeField(f uint8, s *cryptobyte.String) (err error) {
	var v int
	switch f {
	case 0:
		o.seed, err = readSeed(s)
	case 1:
		o.cellsX, err = readU8(s)
	case 2:
		o.cellsY, err = readU8(s)
	case 3:
		v, err = readU8(s)
		if err == nil && v > int(noise.SquaredEuclidean) {
			err = errInvalid("metric", v)
		}
		o.metric = noise.Metric(v)
	case 4:
		v, err = readU8(s)
		if err == nil && v > int(noise.Difference) {
			err = errInvalid("feature", v)
		}
		o.feature = noise.Feature(v)
	case 5:
		o.jitter, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *voronoi) init() error {
	if o.cellsX == 0 || o.cellsY == 0 {
		return errInvalid("cell grid", [2]int{o.cellsX, o.cellsY})
	}
	o.noise = noise.NewVoronoi(o.seed, o.cellsX, o.cellsY, o.jitter, o.metric, o.feature)
	return nil
}

func (o *voronoi) monoRow(e *evaluator, _ *node, y int, out []int32) {
	v := e.y.ramp[y]
	for x := range out {
		out[x] = o.noise.At(e.x.ramp[x], v)
	}
}

// mandelbrot renders escape times of a window onto the Mandelbrot set.
type mandelbrot struct {
	source
	monoOutput
	noTables
	iterations       int
	centreX, centreY int32
	span             int32
}

func (o *mandelbrot) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.iterations, err = readU8(s)
	case 1:
		o.centreX, err = readS16(s)
	case 2:
		o.centreY, err = readS16(s)
	case 3:
		o.span, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

// plane maps a 4096-scale texture coordinate to the complex plane.
func (o *mandelbrot) plane(centre, t int32) fixed.Int52_12 {
	return fixedpt.ToQ(centre) + fixed.Int52_12(int64(t-fixedpt.Half)*int64(o.span)>>fixedpt.Shift)
}

func (o *mandelbrot) monoRow(e *evaluator, _ *node, y int, out []int32) {
	cy := o.plane(o.centreY, e.y.ramp[y])
	for x := range out {
		out[x] = noise.Mandelbrot(o.plane(o.centreX, e.x.ramp[x]), cy, o.iterations)
	}
}

// lineNoise scatters random straight strokes of random intensity. The
// strokes wrap around the texture edges.
type lineNoise struct {
	source
	monoOutput
	seed                 uint32
	count                int32
	minLength, maxLength int32

	lines []noiseLine
}

type noiseLine struct {
	x0, y0, x1, y1 int32
	value          int32
}

func (lineNoise) wholeImage() {}

func (o *lineNoise) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.seed, err = readSeed(s)
	case 1:
		o.count, err = readU16(s)
	case 2:
		o.minLength, err = readU16(s)
	case 3:
		o.maxLength, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *lineNoise) init() error {
	if o.maxLength < o.minLength {
		return errInvalid("line length range", [2]int32{o.minLength, o.maxLength})
	}
	rng := noise.Source(o.seed)
	o.lines = make([]noiseLine, o.count)
	for i := range o.lines {
		x0, y0 := rng.Int32N(fixedpt.One), rng.Int32N(fixedpt.One)
		angle := rng.Int32N(fixedpt.One)
		length := o.minLength + rng.Int32N(o.maxLength-o.minLength+1)
		o.lines[i] = noiseLine{
			x0:    x0,
			y0:    y0,
			x1:    x0 + fixedpt.Mul(fixedpt.Cos(angle), length),
			y1:    y0 + fixedpt.Mul(fixedpt.Sin(angle), length),
			value: rng.Int32N(fixedpt.One + 1),
		}
	}
	return nil
}

func (o *lineNoise) draw(w, h int) *raster.Canvas {
	c := raster.NewCanvas(w, h)
	for _, l := range o.lines {
		x0, y0 := fixedpt.Scale(l.x0, w), fixedpt.Scale(l.y0, h)
		x1, y1 := fixedpt.Scale(l.x1, w), fixedpt.Scale(l.y1, h)
		for dy := -h; dy <= h; dy += h {
			for dx := -w; dx <= w; dx += w {
				c.Line(x0+dx, y0+dy, x1+dx, y1+dy, l.value, 1)
			}
		}
	}
	return c
}

func (o *lineNoise) monoRow(e *evaluator, n *node, y int, out []int32) {
	c := e.stateOf(n, func() any { return o.draw(e.width, e.height) }).(*raster.Canvas)
	copy(out, c.Row(y))
}
