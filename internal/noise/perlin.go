package noise

import "github.com/gogpu/proctex/internal/fixedpt"

// maxFrequency caps the lattice frequency; finer lattices alias at any
// output size the engine supports.
const maxFrequency = fixedpt.One

// gradients are the eight lattice gradient directions on the 4096 scale.
var gradients = [8][2]int32{
	{fixedpt.One, 0}, {-fixedpt.One, 0}, {0, fixedpt.One}, {0, -fixedpt.One},
	{2896, 2896}, {-2896, 2896}, {2896, -2896}, {-2896, -2896},
}

// Perlin is tileable multi-octave gradient noise.
type Perlin struct {
	offX, offY  int
	octaves     int
	frequency   int
	persistence int32
	lacunarity  int
	norm        int64
}

// NewPerlin creates gradient noise with the given number of octaves.
// The first octave has frequency lattice cells across the texture; every
// further octave multiplies the frequency by lacunarity and the amplitude by
// persistence (4096 = 1.0).
func NewPerlin(seed uint32, octaves, frequency int, persistence int32, lacunarity int) *Perlin {
	p := &Perlin{
		offX:        int(seed & 0xff),
		offY:        int(seed >> 8 & 0xff),
		octaves:     max(octaves, 1),
		frequency:   max(frequency, 1),
		persistence: persistence,
		lacunarity:  max(lacunarity, 1),
	}
	// Only octaves that At evaluates contribute to the normaliser.
	amp := int64(fixedpt.One)
	freq := p.frequency
	for range p.octaves {
		if freq > maxFrequency || amp == 0 {
			break
		}
		p.norm += amp
		amp = amp * int64(persistence) >> fixedpt.Shift
		freq *= p.lacunarity
	}
	if p.norm == 0 {
		p.norm = 1
	}
	return p
}

// At returns the noise value in [0, 4096] at texture coordinate (u, v).
func (p *Perlin) At(u, v int32) int32 {
	var sum int64
	amp := int64(fixedpt.One)
	freq := p.frequency
	for range p.octaves {
		if freq > maxFrequency || amp == 0 {
			break
		}
		sum += amp * int64(p.lattice(u, v, freq)) >> fixedpt.Shift
		amp = amp * int64(p.persistence) >> fixedpt.Shift
		freq *= p.lacunarity
	}
	val := int32(sum << fixedpt.Shift / p.norm)
	return fixedpt.ClampUnit((val + fixedpt.One) >> 1)
}

// lattice evaluates one octave at the given frequency, in [-4096, 4096].
func (p *Perlin) lattice(u, v int32, freq int) int32 {
	fx := int64(u) * int64(freq)
	fy := int64(v) * int64(freq)
	cx := int(fx>>fixedpt.Shift) % freq
	cy := int(fy>>fixedpt.Shift) % freq
	tx := int32(fx & fixedpt.Mask)
	ty := int32(fy & fixedpt.Mask)
	cx1 := (cx + 1) % freq
	cy1 := (cy + 1) % freq

	g00 := p.dot(cx, cy, tx, ty)
	g10 := p.dot(cx1, cy, tx-fixedpt.One, ty)
	g01 := p.dot(cx, cy1, tx, ty-fixedpt.One)
	g11 := p.dot(cx1, cy1, tx-fixedpt.One, ty-fixedpt.One)

	sx := fixedpt.Fade(tx)
	sy := fixedpt.Fade(ty)
	a := fixedpt.Lerp(g00, g10, sx)
	b := fixedpt.Lerp(g01, g11, sx)
	return fixedpt.Lerp(a, b, sy)
}

// dot returns the dot product of the lattice gradient at (cx, cy) with the
// offset (dx, dy).
func (p *Perlin) dot(cx, cy int, dx, dy int32) int32 {
	perm := permutation()
	h := perm[int(perm[(cx+p.offX)&0xff])+((cy+p.offY)&0xff)] & 7
	g := gradients[h]
	return fixedpt.Mul(g[0], dx) + fixedpt.Mul(g[1], dy)
}
