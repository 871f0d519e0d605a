package noise

import (
	"math/rand/v2"
	"sync"
)

// Hash returns a pseudo-random value in [0, 4096) determined only by x, y
// and seed.
func Hash(x, y int, seed uint32) int32 {
	n := uint32(x) + uint32(y)*57 + seed*131
	n = n<<13 ^ n
	v := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return int32(v >> 19)
}

// permutation is the shared lattice permutation, a fixed shuffle of 0..255
// repeated twice so lookups never need a second mask.
var permutation = sync.OnceValue(func() *[512]uint8 {
	var p [512]uint8
	for i := 0; i < 256; i++ {
		p[i] = uint8(i)
	}
	rng := rand.New(rand.NewPCG(0x9E3779B97F4A7C15, 0xD1B54A32D192ED03))
	for i := 255; i > 0; i-- {
		j := rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	copy(p[256:], p[:256])
	return &p
})

// Source returns a deterministic random stream for seed. Operations use it
// once, while precomputing their layout tables.
func Source(seed uint32) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x5DEECE66D))
}
