package deck

import "strings"

// MaxPoints is the highest total a hand can have without busting
const MaxPoints = 21

// Hand is an ordered collection of cards held by the player or the dealer
type Hand struct {
	cards  []Card
	points int
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 11),
	}
}

// AddCard adds a card to the hand and updates the total.
// An ace counts as 11 unless that would take the current total over MaxPoints,
// in which case it counts as 1. Aces already in the hand are never revalued.
func (h *Hand) AddCard(card Card) {
	points := card.Rank.Points()
	if card.Rank == Ace && h.points+points > MaxPoints {
		points = 1
	}

	h.cards = append(h.cards, card)
	h.points += points
}

// Points returns the hand total
func (h *Hand) Points() int {
	return h.points
}

// IsBust returns true if the total is over MaxPoints
func (h *Hand) IsBust() bool {
	return h.points > MaxPoints
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

// Clear empties the hand and returns the cards it held
func (h *Hand) Clear() []Card {
	cards := h.cards
	h.cards = make([]Card, 0, 11)
	h.points = 0

	return cards
}

func (h *Hand) String() string {
	s := make([]string, len(h.cards))
	for i, card := range h.cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
