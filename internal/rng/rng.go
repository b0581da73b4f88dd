package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic generator for the given seed
// The same seed always produces the same sequence, which makes shuffles reproducible.
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// New returns a seeded generator if seed is non-zero, otherwise a Crypto generator
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return Seeded(seed)
}
