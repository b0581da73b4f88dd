package blackjack

import "fmt"

// Input is one of the three inputs the game reacts to
type Input int

// Input constants
const (
	Continue Input = iota
	Up
	Down
)

func (i Input) String() string {
	switch i {
	case Continue:
		return "Continue"
	case Up:
		return "Up"
	case Down:
		return "Down"
	}

	panic(fmt.Sprintf("invalid input: %d", i))
}

// Stage is a step of the initial deal
type Stage int

// Stage constants
const (
	First Stage = iota
	Second
	Third
)

func (s Stage) String() string {
	switch s {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	}

	panic(fmt.Sprintf("invalid stage: %d", s))
}

// Choice is the option highlighted in the player's menu
type Choice int

// Choice constants, in menu order
const (
	Hit Choice = iota
	Stand
	Surrender

	choiceCount = 3
)

// Choices returns the menu options top to bottom
func Choices() []Choice {
	return []Choice{Hit, Stand, Surrender}
}

// next is the option below c, wrapping to the top
func (c Choice) next() Choice {
	return (c + 1) % choiceCount
}

// prev is the option above c, wrapping to the bottom
func (c Choice) prev() Choice {
	return (c + choiceCount - 1) % choiceCount
}

func (c Choice) String() string {
	switch c {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	case Surrender:
		return "Surrender"
	}

	panic(fmt.Sprintf("invalid choice: %d", c))
}

// Result is the outcome of a round from the player's point of view
type Result int

// Result constants
const (
	Win Result = iota
	Lose
	Tie
)

func (r Result) String() string {
	switch r {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Tie:
		return "Tie"
	}

	panic(fmt.Sprintf("invalid result: %d", r))
}

// Phase is the position of the game's state machine.
// The concrete types are Starting, Presenting, Selecting, Standing and GameOver.
type Phase interface {
	fmt.Stringer
	isPhase()
}

// Starting is the initial deal
type Starting struct {
	Stage Stage
}

// Presenting shows the initial hands before the player acts
// Nothing transitions into it; from it, Continue moves to Selecting{Hit}.
type Presenting struct{}

// Selecting is the player's turn
type Selecting struct {
	Choice Choice
}

// Standing means the player stood and the dealer is drawing
type Standing struct{}

// GameOver means the round has been decided
type GameOver struct {
	Result Result
}

func (Starting) isPhase()   {}
func (Presenting) isPhase() {}
func (Selecting) isPhase()  {}
func (Standing) isPhase()   {}
func (GameOver) isPhase()   {}

func (s Starting) String() string {
	return fmt.Sprintf("Starting(%s)", s.Stage)
}

func (Presenting) String() string {
	return "Presenting"
}

func (s Selecting) String() string {
	return fmt.Sprintf("Selecting(%s)", s.Choice)
}

func (Standing) String() string {
	return "Standing"
}

func (g GameOver) String() string {
	return fmt.Sprintf("GameOver(%s)", g.Result)
}
