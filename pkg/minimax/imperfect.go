package minimax

import (
	"math/rand"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Imperfect wraps the full-depth search: with the configured mistake
// probability it plays a uniformly random legal move instead. Exists to
// generate a graded curriculum of training opponents.
type Imperfect struct {
	Player
	MistakeProbability float64

	rand *rand.Rand
}

func NewImperfect(mark ttt.Mark, mistakeProbability float64) *Imperfect {
	return &Imperfect{
		Player:             *NewPlayer(mark, Perfect),
		MistakeProbability: mistakeProbability,
		rand:               rand.New(rand.NewSource(ttt.SeedGeneratorFn())),
	}
}

func (p *Imperfect) MakeMove(b *ttt.Board) (ttt.PosType, bool) {
	if p.rand.Float64() < p.MistakeProbability {
		moves := b.LegalMoves()
		if len(moves) > 0 {
			mv := moves[p.rand.Intn(len(moves))]
			p.apply(b, p.mark, mv)
			return mv, true
		}
	}

	return p.Player.MakeMove(b)
}
