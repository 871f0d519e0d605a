package synth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/gogpu/proctex/internal/fixedpt"
)

// gradientField is embedded by the kinds that measure the slope of a
// monochrome input with a Sobel kernel.
type gradientField struct {
	unary
	strength int32
}

// neighbourhood copies input rows y-1, y and y+1 into scratch so each is
// fully read before the next is requested.
func (g *gradientField) neighbourhood(e *evaluator, n *node, y int) [][]int32 {
	rows := e.scratchRows(n, 3)
	for k, row := range rows {
		copy(row, e.input(n, 0, y+k-1))
	}
	return rows
}

// sobel returns the horizontal and vertical slope at x, scaled so that a
// step from 0 to 4096 across the kernel yields 4096.
func (g *gradientField) sobel(e *evaluator, rows [][]int32, x int) (gx, gy int32) {
	l, r := e.x.wrap(x-1), e.x.wrap(x+1)
	above, mid, below := rows[0], rows[1], rows[2]
	gx = (above[r] - above[l]) + 2*(mid[r]-mid[l]) + (below[r] - below[l])
	gy = (below[l] + 2*below[x] + below[r]) - (above[l] + 2*above[x] + above[r])
	return fixedpt.Mul(gx/4, g.strength), fixedpt.Mul(gy/4, g.strength)
}

// normal returns the unit surface normal for slope (gx, gy) on the 4096
// scale.
func normal(gx, gy int32) (nx, ny, nz int32) {
	length := int64(fixedpt.Sqrt(int64(gx)*int64(gx) + int64(gy)*int64(gy) + fixedpt.One*fixedpt.One))
	nx = int32(-int64(gx) << fixedpt.Shift / length)
	ny = int32(-int64(gy) << fixedpt.Shift / length)
	nz = int32(fixedpt.One << fixedpt.Shift / length)
	return nx, ny, nz
}

// edgeDetect outputs the slope magnitude of its input.
type edgeDetect struct {
	gradientField
	monoOutput
	noTables
}

func (o *edgeDetect) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.strength, err = readU16(s)
	return err
}

func (o *edgeDetect) monoRow(e *evaluator, n *node, y int, out []int32) {
	rows := o.neighbourhood(e, n, y)
	for x := range out {
		gx, gy := o.sobel(e, rows, x)
		out[x] = fixedpt.ClampUnit(fixedpt.Hypot(gx, gy))
	}
}

// normalEdge encodes the surface normal of its input as a colour, each
// component mapped from [-1, 1] to [0, 4096].
type normalEdge struct {
	gradientField
	colourOutput
	noTables
}

func (o *normalEdge) decodeField(f uint8, s *cryptobyte.String) (err error) {
	if f != 0 {
		return errUnknownField(f)
	}
	o.strength, err = readU16(s)
	return err
}

func (o *normalEdge) colourRow(e *evaluator, n *node, y int, out [3][]int32) {
	rows := o.neighbourhood(e, n, y)
	for x := range out[0] {
		nx, ny, nz := normal(o.sobel(e, rows, x))
		out[0][x] = (nx + fixedpt.One) >> 1
		out[1][x] = (ny + fixedpt.One) >> 1
		out[2][x] = (nz + fixedpt.One) >> 1
	}
}

// emboss lights the surface described by its input from a directional
// light.
type emboss struct {
	gradientField
	monoOutput
	azimuth, elevation int32

	light [3]int32
}

func (o *emboss) decodeField(f uint8, s *cryptobyte.String) (err error) {
	switch f {
	case 0:
		o.strength, err = readU16(s)
	case 1:
		o.azimuth, err = readU16(s)
	case 2:
		o.elevation, err = readU16(s)
	default:
		err = errUnknownField(f)
	}
	return err
}

func (o *emboss) init() error {
	ce := fixedpt.Cos(o.elevation)
	o.light = [3]int32{
		fixedpt.Mul(ce, fixedpt.Cos(o.azimuth)),
		fixedpt.Mul(ce, fixedpt.Sin(o.azimuth)),
		fixedpt.Sin(o.elevation),
	}
	return nil
}

func (o *emboss) monoRow(e *evaluator, n *node, y int, out []int32) {
	rows := o.neighbourhood(e, n, y)
	for x := range out {
		nx, ny, nz := normal(o.sobel(e, rows, x))
		dot := fixedpt.Mul(nx, o.light[0]) + fixedpt.Mul(ny, o.light[1]) + fixedpt.Mul(nz, o.light[2])
		out[x] = fixedpt.ClampUnit(dot)
	}
}
