package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand
// It is used for real play, where shuffles must not be predictable.
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("could not read random number: %v", err))
	}

	return int(b.Int64())
}
