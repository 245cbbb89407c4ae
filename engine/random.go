package engine

import (
	"math/rand"
	"time"
)

// Random is a seeded generator so a run can be replayed from its seed.
type Random struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom creates a generator. A zero seed picks one from the wall clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Seed() int64 {
	return r.seed
}

// Between returns a uniform value in [min, max). Swapped bounds are tolerated.
func (r *Random) Between(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}
