package ttt

// Win/loss/draw bookkeeping, shared by every player type
type Stats struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Draws       int `json:"draws"`
}

// Record a finished game from the perspective of 'own' mark.
// In-progress outcomes are ignored.
func (s *Stats) Record(o Outcome, own Mark) {
	if !o.Terminal() {
		return
	}

	s.GamesPlayed++
	switch o.Winner() {
	case own:
		s.Wins++
	case Opponent(own):
		s.Losses++
	default:
		s.Draws++
	}
}

func (s *Stats) Reset() {
	*s = Stats{}
}

// WinRate is wins / games played, 0 when no games were played
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed)
}
