package trainer

import (
	"math/rand"

	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Player is any participant that can take a turn on a live board. Satisfied
// by the minimax players, RandomPlayer and GreedyAgent.
type Player interface {
	// Play one move on the board, returning which one, ok false if none left
	MakeMove(b *ttt.Board) (ttt.PosType, bool)
	SetMark(ttt.Mark)
	Mark() ttt.Mark
}

// OpponentFactory builds an opponent playing the given mark
type OpponentFactory func(mark ttt.Mark) Player

// RandomPlayer plays uniformly at random on any empty cell
type RandomPlayer struct {
	mark ttt.Mark
	rand *rand.Rand
}

func NewRandomPlayer(mark ttt.Mark) *RandomPlayer {
	return &RandomPlayer{
		mark: mark,
		rand: rand.New(rand.NewSource(ttt.SeedGeneratorFn())),
	}
}

func (p *RandomPlayer) Mark() ttt.Mark {
	return p.mark
}

func (p *RandomPlayer) SetMark(m ttt.Mark) {
	p.mark = m
}

func (p *RandomPlayer) MakeMove(b *ttt.Board) (ttt.PosType, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return ttt.PosIllegal, false
	}

	mv := moves[p.rand.Intn(len(moves))]
	if err := b.Place(p.mark, mv); err != nil {
		panic(err)
	}
	return mv, true
}

// GreedyAgent adapts a learning agent to the Player interface with
// exploration pinned off, for evaluation and interactive play.
type GreedyAgent struct {
	*qlearn.Agent
}

func (g GreedyAgent) MakeMove(b *ttt.Board) (ttt.PosType, bool) {
	return g.Agent.MakeMove(b, false)
}
