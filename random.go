package main

import (
	"math/rand/v2"
	"time"
)

// Random is the source of randomness the stream engine draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// newRandom returns a generator seeded from the wall clock.
func newRandom() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// chance reports true with probability p.
func chance(random Random, p float64) bool {
	return random.Float64() < p
}

// intBetween returns a value in the closed range [lo, hi].
func intBetween(random Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + random.IntN(hi-lo+1)
}

// floatBetween returns a value in [lo, hi].
func floatBetween(random Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + random.Float64()*(hi-lo)
}
