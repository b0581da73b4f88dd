package blackjack

import "blackjack/pkg/deck"

// GameState is a snapshot of everything a presentation layer needs to draw the game
type GameState struct {
	Phase     Phase      `json:"-"`
	PhaseName string     `json:"phase"`
	Dealer    *HandState `json:"dealer"`
	Player    *HandState `json:"player"`
	CardsLeft int        `json:"cardsLeft"`
	Stats     Stats      `json:"stats"`
}

// HandState is a snapshot of a hand
type HandState struct {
	Cards  []deck.Card `json:"cards"`
	Points int         `json:"points"`
}

// State returns a snapshot of the game
func (g *Game) State() *GameState {
	return &GameState{
		Phase:     g.phase,
		PhaseName: g.phase.String(),
		Dealer:    newHandState(g.dealer),
		Player:    newHandState(g.player),
		CardsLeft: g.deck.CardsLeft(),
		Stats:     g.stats,
	}
}

func newHandState(h HandView) *HandState {
	return &HandState{
		Cards:  h.Cards(),
		Points: h.Points(),
	}
}
