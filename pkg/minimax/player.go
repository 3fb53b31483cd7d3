package minimax

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Difficulty names a fixed maximum recursion depth for the search.
type Difficulty int

const (
	Random Difficulty = iota
	Easy
	Medium
	Hard
	Perfect
)

var _maxDepths = [...]int{
	Random:  0,
	Easy:    2,
	Medium:  5,
	Hard:    7,
	Perfect: 9,
}

var _difficultyNames = [...]string{
	Random:  "random",
	Easy:    "easy",
	Medium:  "medium",
	Hard:    "hard",
	Perfect: "perfect",
}

func (d Difficulty) MaxDepth() int {
	return _maxDepths[d]
}

func (d Difficulty) String() string {
	return _difficultyNames[d]
}

func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range _difficultyNames {
		if name == strings.ToLower(s) {
			return Difficulty(d), nil
		}
	}
	return Random, fmt.Errorf("unknown difficulty %q", s)
}

// Difficulties lists every level, weakest first
func Difficulties() []Difficulty {
	return []Difficulty{Random, Easy, Medium, Hard, Perfect}
}

const (
	winScore  = 10
	lossScore = -10

	scoreInf = 1 << 20
)

// Player is a depth-limited minimax search with alpha-beta pruning. During
// the search it mutates and restores the caller's board in place
// (apply-then-undo); the board is exclusively owned by the search call stack
// for the duration of BestMove.
type Player struct {
	Stats ttt.Stats

	mark       ttt.Mark
	opponent   ttt.Mark
	difficulty Difficulty
}

func NewPlayer(mark ttt.Mark, difficulty Difficulty) *Player {
	return &Player{
		mark:       mark,
		opponent:   ttt.Opponent(mark),
		difficulty: difficulty,
	}
}

func (p *Player) Mark() ttt.Mark {
	return p.mark
}

// SetMark changes the player's side, recomputing the opponent mark
func (p *Player) SetMark(m ttt.Mark) {
	p.mark = m
	p.opponent = ttt.Opponent(m)
}

func (p *Player) Difficulty() Difficulty {
	return p.difficulty
}

// Static evaluation: +10 when this player has won, -10 when the opponent has,
// 0 for a draw or an unresolved position. Deliberately not discounted by move
// count: at full depth the search is exhaustive so it never matters, in
// depth-limited modes it cannot tell a fast win from a slow one.
func (p *Player) evaluate(b *ttt.Board) int {
	switch b.Outcome().Winner() {
	case p.mark:
		return winScore
	case p.opponent:
		return lossScore
	}
	return 0
}

func (p *Player) minimax(b *ttt.Board, depth int, maximizing bool, alpha, beta int) int {
	score := p.evaluate(b)
	if score != 0 || depth >= p.difficulty.MaxDepth() || b.Outcome().Terminal() {
		return score
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		maxEval := -scoreInf
		for _, mv := range moves {
			p.apply(b, p.mark, mv)
			eval := p.minimax(b, depth+1, false, alpha, beta)
			b.Undo(mv)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		return maxEval
	}

	minEval := scoreInf
	for _, mv := range moves {
		p.apply(b, p.opponent, mv)
		eval := p.minimax(b, depth+1, true, alpha, beta)
		b.Undo(mv)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	return minEval
}

// A failed place inside the search means broken move generation, not a
// recoverable condition.
func (p *Player) apply(b *ttt.Board, m ttt.Mark, mv ttt.PosType) {
	if err := b.Place(m, mv); err != nil {
		panic(err)
	}
}

// BestMove evaluates every legal move (apply, recurse one ply as the
// minimizing opponent, undo) and returns the first move achieving the strict
// maximum score, scanning in ascending index order so ties resolve to the
// lowest index. ok is false when no legal move exists.
func (p *Player) BestMove(b *ttt.Board) (move ttt.PosType, ok bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return ttt.PosIllegal, false
	}

	bestMove := ttt.PosIllegal
	bestScore := -scoreInf
	for _, mv := range moves {
		p.apply(b, p.mark, mv)
		score := p.minimax(b, 0, false, -scoreInf, scoreInf)
		b.Undo(mv)

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}

	return bestMove, true
}

// MakeMove plays the best move on the board and reports which one it was
func (p *Player) MakeMove(b *ttt.Board) (ttt.PosType, bool) {
	mv, ok := p.BestMove(b)
	if ok {
		p.apply(b, p.mark, mv)
	}
	return mv, ok
}

// RecordResult updates the win/loss/draw counters from a finished game
func (p *Player) RecordResult(o ttt.Outcome) {
	p.Stats.Record(o, p.mark)
}
