package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the random source consumed by placement routines
type Rand interface {
	// Intn returns a value in [0, n), n > 0
	Intn(n int) int
}

// RNG is a seedable source: the same seed replays the same placement sequence
type RNG struct {
	seed uint64
	r    *rand.Rand
}

// NewRNG creates a source from seed, 0 selects a time-based seed
func NewRNG(seed uint64) *RNG {
	g := &RNG{}
	g.Reseed(seed)
	return g
}

// Reseed restarts the sequence, 0 selects a fresh time-based seed
func (g *RNG) Reseed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if seed == 0 {
			seed = 1
		}
	}
	g.seed = seed
	g.r = rand.New(rand.NewSource(seed))
}

// Seed returns the effective seed, never 0
func (g *RNG) Seed() uint64 {
	return g.seed
}

// Intn returns a pseudo-random value in [0, n)
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}
