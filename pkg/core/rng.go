package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Randomize sets each cell of g alive with probability density. The same
// seed and density always produce the same grid.
func Randomize(g *Grid, seed int64, density float64) {
	rng := NewRNG(seed)
	for i := range g.data {
		g.data[i] = 0
		if rng.Chance(density) {
			g.data[i] = 1
		}
	}
}
