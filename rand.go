package artifact

import "math/rand/v2"

// pcgStream is the fixed second PCG word. Only the first word varies with
// the seed.
const pcgStream = 0x9e3779b97f4a7c15

// Rand is the deterministic random source threaded through every
// generator. A Rand is not safe for concurrent use; each artifact call
// creates its own.
type Rand struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint32) *Rand {
	src := rand.NewPCG(uint64(seed), pcgStream)
	return &Rand{src: src, r: rand.New(src)}
}

// Seed resets the generator to the state NewRand(seed) would produce.
func (r *Rand) Seed(seed uint32) {
	r.src.Seed(uint64(seed), pcgStream)
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Uniform returns a value in [lo, hi). Reversed bounds are allowed.
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// IntRange returns an integer in [lo, hi). An empty range yields lo.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Sign returns -1 or +1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}
