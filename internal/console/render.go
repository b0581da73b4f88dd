package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
)

// Options are options for the renderer
type Options struct {
	Title      string
	PlayerName string
	DealerName string
	// Color enables ANSI colours regardless of what the output is
	Color bool
}

// Renderer draws a game state as lines of text
type Renderer struct {
	options Options

	title    *color.Color
	label    *color.Color
	points   *color.Color
	red      *color.Color
	black    *color.Color
	selected *color.Color
	win      *color.Color
	lose     *color.Color
	tie      *color.Color
}

// NewRenderer returns a new Renderer
func NewRenderer(opts Options) *Renderer {
	palette := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c
	}

	return &Renderer{
		options:  opts,
		title:    palette(color.FgWhite, color.Bold),
		label:    palette(color.FgHiBlue),
		points:   palette(color.FgBlue),
		red:      palette(color.FgRed),
		black:    palette(color.FgWhite),
		selected: palette(color.FgHiBlue),
		win:      palette(color.FgGreen),
		lose:     palette(color.FgRed),
		tie:      palette(color.FgYellow),
	}
}

// Render writes the state to w. Lines end in \r\n because the terminal is in raw mode.
func (r *Renderer) Render(w io.Writer, state *blackjack.GameState) error {
	var lines []string
	line := func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}

	line("%s", r.title.Sprint(r.options.Title))
	line("Wins: %d  Losses: %d  Ties: %d", state.Stats.Wins, state.Stats.Losses, state.Stats.Ties)
	line("")

	for _, section := range []struct {
		name string
		hand *blackjack.HandState
	}{
		{r.options.DealerName, state.Dealer},
		{r.options.PlayerName, state.Player},
	} {
		line("%s", r.label.Sprint(section.name+":"))
		line("Cards: %s", r.cards(section.hand.Cards))
		line("Points: %s", r.points.Sprint(section.hand.Points))
		line("")
	}

	switch phase := state.Phase.(type) {
	case blackjack.Selecting:
		for _, choice := range blackjack.Choices() {
			if choice == phase.Choice {
				line("%s", r.selected.Sprintf("> %s", choice))
			} else {
				line("- %s", choice)
			}
		}
	case blackjack.Starting:
		if phase.Stage == blackjack.First {
			line("Welcome to Blackjack!")
			line("[SPACE / ENTER] Start")
		} else {
			line("[SPACE / ENTER] Continue")
		}
	case blackjack.Standing, blackjack.Presenting:
		line("[SPACE / ENTER] Continue")
	case blackjack.GameOver:
		switch phase.Result {
		case blackjack.Win:
			line("%s", r.win.Sprint("You win!"))
		case blackjack.Lose:
			line("%s", r.lose.Sprint("You lose!"))
		case blackjack.Tie:
			line("%s", r.tie.Sprint("It's a tie!"))
		}
		line("[SPACE / ENTER] Play again")
		line("[ESC / Q] Quit")
	}

	_, err := io.WriteString(w, strings.Join(lines, "\r\n")+"\r\n")
	return err
}

func (r *Renderer) cards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		c := r.black
		if card.Suit.IsRed() {
			c = r.red
		}

		s[i] = c.Sprintf("%2s %s", card.Rank, card.Suit.Symbol())
	}

	return strings.Join(s, " ")
}
