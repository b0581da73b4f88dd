package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded(t *testing.T) {
	a := assert.New(t)

	g1 := Seeded(42)
	g2 := Seeded(42)
	for i := 0; i < 100; i++ {
		a.Equal(g1.Intn(52), g2.Intn(52))
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, New(0))
	a.NotEqual(Crypto{}, New(7))

	g := New(7)
	h := Seeded(7)
	a.Equal(h.Intn(1000), g.Intn(1000))
}
