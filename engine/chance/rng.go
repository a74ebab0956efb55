package chance

import "math/rand"

// RNG wraps math/rand.Rand and counts how many values it has drawn.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	r.pos++
	return r.src.Intn(sides) + 1
}

// WeightedSelect returns an index chosen by weighted random selection.
// Returns 0 when the weights sum to zero or less.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r.pos++
	return selectWeighted(weights, r.src.Intn(total))
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of values drawn since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
