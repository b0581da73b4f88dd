package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func handFromString(s string) *Hand {
	h := NewHand()
	for _, card := range CardsFromString(s) {
		h.AddCard(card)
	}

	return h
}

func TestNewHand(t *testing.T) {
	h := NewHand()
	assert.Equal(t, 0, h.Points())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "", h.String())
}

func TestHand_Points(t *testing.T) {
	tests := []struct {
		name   string
		cards  string
		points int
	}{
		{"single ace", "Ac", 11},
		{"two aces", "Ac,Ad", 12},
		{"king then ace", "Kc,Ac", 21},
		{"ace then king", "Ac,Kc", 21},
		{"three aces", "Ac,Ad,Ah", 13},
		{"face cards", "Jc,Qd,Kh", 30},
		{"pips", "2c,3d,4h,5s", 14},
		{"ace after nine and two", "9c,2d,Ac", 12},
		{"ace after ten", "10c,Ac", 21},
		// the first ace is never revalued, even though counting it as 1 would avoid the bust
		{"ace not revalued", "Ac,5c,9d", 25},
		{"second ace demoted", "Ac,Ad,9h", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handFromString(tt.cards)
			assert.Equal(t, tt.points, h.Points())
			assert.Equal(t, tt.points > 21, h.IsBust())
		})
	}
}

func TestHand_AddCard(t *testing.T) {
	h := NewHand()
	h.AddCard(CardFromString("As"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "As,3c", CardsToString(h.Cards()))
	assert.Equal(t, 14, h.Points())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "A♠ 3♣", h.String())
}

func TestHand_Clear(t *testing.T) {
	a := assert.New(t)
	h := handFromString("Kc,Qd,5h")
	a.True(h.IsBust())

	cards := h.Clear()
	a.Equal("Kc,Qd,5h", CardsToString(cards))
	a.Equal(0, h.Points())
	a.Equal(0, h.Len())
	a.False(h.IsBust())

	h.AddCard(CardFromString("Ac"))
	a.Equal(11, h.Points())
	a.Equal("Kc,Qd,5h", CardsToString(cards), "cleared cards must not be overwritten")
}
