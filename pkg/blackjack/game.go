package blackjack

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blackjack/internal/rng"
	"blackjack/pkg/deck"
)

// DealerStandsOn is the lowest total the dealer stops drawing at
const DealerStandsOn = 17

// Options are options for creating a new game
type Options struct {
	// RNG shuffles the deck at the start of every round
	RNG rng.Generator
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		RNG: rng.Crypto{},
	}
}

// Game is a single-player game of blackjack against the dealer
type Game struct {
	deck   *deck.Deck
	player *deck.Hand
	dealer *deck.Hand
	phase  Phase
	rng    rng.Generator

	roundID string
	stats   Stats
}

// NewGame returns a new game waiting for the first deal
func NewGame(opts Options) *Game {
	gen := opts.RNG
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Game{
		deck:   deck.New(),
		player: deck.NewHand(),
		dealer: deck.NewHand(),
		phase:  Starting{Stage: First},
		rng:    gen,
	}
}

// Update advances the state machine by one input and returns the new phase.
// An error is only returned if the deck ran out, which cannot happen while every
// card is either in the deck or in one of the two hands. The phase is left unchanged in that case.
func (g *Game) Update(input Input) (Phase, error) {
	next, err := g.transition(input)
	if err != nil {
		return g.phase, err
	}

	if next != g.phase {
		g.logger().WithFields(logrus.Fields{
			"input": input,
			"from":  g.phase,
			"to":    next,
		}).Debug("phase transition")

		if over, ok := next.(GameOver); ok {
			g.stats.record(over.Result)
			g.logger().WithFields(logrus.Fields{
				"result":       over.Result,
				"playerPoints": g.player.Points(),
				"dealerPoints": g.dealer.Points(),
			}).Info("round over")
		}
	}

	g.phase = next
	return next, nil
}

func (g *Game) transition(input Input) (Phase, error) {
	switch phase := g.phase.(type) {
	case Starting:
		if input != Continue {
			break
		}

		switch phase.Stage {
		case First:
			// a new round is only started once its first card is known to be there
			if !g.deck.CanDraw(1) {
				return nil, dealError("player", deck.ErrEndOfDeck)
			}

			g.startRound()
			if err := g.dealPlayer(); err != nil {
				return nil, err
			}
			return Starting{Stage: Second}, nil
		case Second:
			if err := g.dealDealer(); err != nil {
				return nil, err
			}
			return Starting{Stage: Third}, nil
		case Third:
			if err := g.dealPlayer(); err != nil {
				return nil, err
			}
			return Selecting{Choice: Hit}, nil
		}

	case Selecting:
		switch input {
		case Up:
			return Selecting{Choice: phase.Choice.prev()}, nil
		case Down:
			return Selecting{Choice: phase.Choice.next()}, nil
		case Continue:
			return g.choose(phase.Choice)
		}

	case Standing:
		if input == Continue {
			return g.dealerTurn()
		}

	case GameOver:
		if input == Continue {
			g.collectCards()
			return Starting{Stage: First}, nil
		}

	case Presenting:
		if input == Continue {
			return Selecting{Choice: Hit}, nil
		}
	}

	return g.phase, nil
}

// choose commits the highlighted choice
func (g *Game) choose(choice Choice) (Phase, error) {
	switch choice {
	case Hit:
		if err := g.dealPlayer(); err != nil {
			return nil, err
		}
		if g.player.IsBust() {
			return GameOver{Result: Lose}, nil
		}
		return Selecting{Choice: Hit}, nil
	case Stand:
		return g.dealerTurn()
	case Surrender:
		return GameOver{Result: Lose}, nil
	}

	return g.phase, nil
}

// dealerTurn deals the dealer one card and decides whether the dealer keeps drawing
func (g *Game) dealerTurn() (Phase, error) {
	if err := g.dealDealer(); err != nil {
		return nil, err
	}

	dealer, player := g.dealer.Points(), g.player.Points()
	switch {
	case g.dealer.IsBust():
		return GameOver{Result: Win}, nil
	case dealer < DealerStandsOn:
		return Standing{}, nil
	case dealer > player:
		return GameOver{Result: Lose}, nil
	case dealer < player:
		return GameOver{Result: Win}, nil
	}

	return GameOver{Result: Tie}, nil
}

func (g *Game) startRound() {
	g.roundID = uuid.New().String()
	g.deck.Shuffle(g.rng)
	g.logger().WithField("deck", g.deck.HashCode()).Info("round started")
}

// collectCards returns both hands to the deck
func (g *Game) collectCards() {
	g.deck.Return(g.dealer.Clear()...)
	g.deck.Return(g.player.Clear()...)
}

func (g *Game) dealPlayer() error {
	return g.deal(g.player, "player")
}

func (g *Game) dealDealer() error {
	return g.deal(g.dealer, "dealer")
}

func (g *Game) deal(hand *deck.Hand, to string) error {
	card, err := g.deck.Draw()
	if err != nil {
		return dealError(to, err)
	}

	hand.AddCard(card)
	g.logger().WithFields(logrus.Fields{
		"to":     to,
		"card":   card.String(),
		"points": hand.Points(),
	}).Debug("card dealt")

	return nil
}

func dealError(to string, err error) error {
	return fmt.Errorf("could not deal to %s: %w", to, err)
}

func (g *Game) logger() logrus.FieldLogger {
	return logrus.WithField("round", g.roundID)
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player's hand
func (g *Game) Player() HandView {
	return g.player
}

// Dealer returns the dealer's hand
func (g *Game) Dealer() HandView {
	return g.dealer
}

// CardsLeft returns the number of cards in the deck
func (g *Game) CardsLeft() int {
	return g.deck.CardsLeft()
}

// Stats returns the results of every finished round
func (g *Game) Stats() Stats {
	return g.stats
}

// RoundID returns the ID of the current round, or an empty string before the first deal
func (g *Game) RoundID() string {
	return g.roundID
}

// HandView is the read-only side of a hand
type HandView interface {
	Cards() []deck.Card
	Points() int
	Len() int
	String() string
}
