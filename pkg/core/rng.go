// Package core provides small shared utilities for the generator binaries.
package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Every randomness consumer receives its own instance; nothing in
// the repository draws from a shared global generator.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Uniform returns a random float64 in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// IntN returns a random int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// IntBetween returns a random int in [lo, hi]. Ranges with hi <= lo collapse
// to lo.
func (r *RNG) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Int64 returns a random non-negative int64.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// NormFloat64 returns a normally distributed float64 with mean 0 and
// standard deviation 1.
func (r *RNG) NormFloat64() float64 { return r.r.NormFloat64() }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool { return r.r.IntN(2) == 1 }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
