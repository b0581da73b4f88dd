package blackjack

// Stats is the tally of finished rounds in this session
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Rounds returns the number of finished rounds
func (s Stats) Rounds() int {
	return s.Wins + s.Losses + s.Ties
}

func (s *Stats) record(result Result) {
	switch result {
	case Win:
		s.Wins++
	case Lose:
		s.Losses++
	case Tie:
		s.Ties++
	}
}
