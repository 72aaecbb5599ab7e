// SPDX-License-Identifier: MIT
// Package: motif/rng
//
// rng.go - string-seeded deterministic float stream.
//
// Contract:
//   - New(seed) folds the seed into a 32-bit state via Hash and drives a
//     mulberry32-style generator from it.
//   - Identical seeds yield identical infinite sequences on every platform.
//   - No package-level generator state; each Source is owned by one call.

package rng

// Generator constants (mulberry32 increment and mixing odd factors).
const (
	hashMultiplier = 31         // h = h*31 + r, i.e. (h<<5) - h + r
	stateIncrement = 0x6D2B79F5 // splitmix-style Weyl increment
	mixOrA         = 1          // t | 1 keeps the first multiplier odd
	mixOrB         = 61         // t | 61 keeps the second multiplier odd
	twoPow32       = 4294967296.0
)

// Source is a deterministic pseudo-random float stream.
// It is NOT safe for concurrent use; construct one per generation call.
type Source struct {
	state uint32
}

// Hash folds seed into a 32-bit integer by multiply-and-add over its runes,
// wrapping on overflow. The empty string hashes to 0.
// Complexity: O(len(seed)).
func Hash(seed string) uint32 {
	var h uint32
	for _, r := range seed {
		h = h*hashMultiplier + uint32(r)
	}

	return h
}

// New returns a Source seeded from the string seed.
func New(seed string) *Source {
	return &Source{state: Hash(seed)}
}

// Next returns the next float in [0,1).
// Complexity: O(1).
func (s *Source) Next() float64 {
	s.state += stateIncrement
	t := s.state
	t = (t ^ (t >> 15)) * (t | mixOrA)
	t ^= t + (t^(t>>7))*(t|mixOrB)
	t ^= t >> 14

	return float64(t) / twoPow32
}

// Between returns a float uniformly drawn from [lo, hi). Reversed bounds are
// accepted and produce a value between them as well.
func (s *Source) Between(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// Intn returns an int in [0, n). For n <= 0 it returns 0 and still advances
// the stream, so callers keep the same draw count regardless of n.
func (s *Source) Intn(n int) int {
	f := s.Next()
	if n <= 0 {
		return 0
	}

	return int(f * float64(n))
}
