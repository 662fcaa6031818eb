package core

import "math/rand/v2"

// RNG is the deterministic stream a run draws its choices from. It is
// math/rand/v2's PCG generator seeded with (seed, 0), so a given seed yields
// the same theme and rule on every platform running the same Go release.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates the stream for seed.
func NewRNG(seed Seed) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed.Value(), 0))}
}

// IntN returns a uniformly distributed int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *RNG) Uint64() uint64 {
	return r.r.Uint64()
}
