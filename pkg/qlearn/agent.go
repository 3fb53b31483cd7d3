package qlearn

import (
	"math"
	"math/rand"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Documented defaults for the hyperparameters; callers inject their own
// values at construction time, there is no global configuration state.
const (
	DefaultAlpha   = 0.1   // learning rate
	DefaultGamma   = 0.9   // discount factor
	DefaultEpsilon = 0.1   // exploration rate
	DefaultDecay   = 0.995 // epsilon decay rate
	DefaultMinEps  = 0.01  // epsilon floor
)

// StateAction is the value-table key: a canonical board encoding paired with
// a move index. Comparable, so it hashes structurally.
type StateAction struct {
	State ttt.StateKey
	Move  ttt.PosType
}

// Agent is a tabular Q-learning player. The value table is exclusively owned
// by its agent: nothing else reads or writes it, and entries are created
// lazily (unseen pairs read as 0).
type Agent struct {
	Stats ttt.Stats

	// Alpha in (0,1], Gamma in [0,1], Epsilon in [0,1] (decayed over training)
	Alpha   float64
	Gamma   float64
	Epsilon float64

	mark     ttt.Mark
	opponent ttt.Mark
	table    map[StateAction]float64
	rand     *rand.Rand
}

func NewAgent(mark ttt.Mark, alpha, gamma, epsilon float64) *Agent {
	return &Agent{
		Alpha:    alpha,
		Gamma:    gamma,
		Epsilon:  epsilon,
		mark:     mark,
		opponent: ttt.Opponent(mark),
		table:    make(map[StateAction]float64),
		rand:     rand.New(rand.NewSource(ttt.SeedGeneratorFn())),
	}
}

func (a *Agent) Mark() ttt.Mark {
	return a.mark
}

// SetMark changes the agent's side, recomputing the opponent mark. The same
// agent can play either side across games.
func (a *Agent) SetMark(m ttt.Mark) {
	a.mark = m
	a.opponent = ttt.Opponent(m)
}

// Q returns the stored value for a (state, move) pair, 0 when unseen
func (a *Agent) Q(state ttt.StateKey, move ttt.PosType) float64 {
	return a.table[StateAction{State: state, Move: move}]
}

func (a *Agent) TableSize() int {
	return len(a.table)
}

// ChooseAction picks a move with the epsilon-greedy strategy: with
// probability Epsilon during training a uniformly random legal move,
// otherwise the legal move with the highest stored Q-value, scanning in
// ascending index order so the first-seen maximum wins ties. Outside
// training, exploration is disabled unconditionally. ok is false when no
// legal move exists.
func (a *Agent) ChooseAction(b *ttt.Board, training bool) (move ttt.PosType, ok bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return ttt.PosIllegal, false
	}

	if training && a.rand.Float64() < a.Epsilon {
		return moves[a.rand.Intn(len(moves))], true
	}

	state := b.Encode()
	best := moves[0]
	bestValue := math.Inf(-1)
	for _, mv := range moves {
		if q := a.Q(state, mv); q > bestValue {
			bestValue = q
			best = mv
		}
	}

	return best, true
}

// MakeMove chooses an action and plays it on the board
func (a *Agent) MakeMove(b *ttt.Board, training bool) (ttt.PosType, bool) {
	mv, ok := a.ChooseAction(b, training)
	if !ok {
		return ttt.PosIllegal, false
	}
	if err := b.Place(a.mark, mv); err != nil {
		// ChooseAction only yields legal moves, a failure here is a bug
		panic(err)
	}
	return mv, true
}

// Update applies a single-step Bellman backup:
//
//	Q(s,a) <- Q(s,a) + alpha * (r + gamma * max_a' Q(s',a') - Q(s,a))
//
// where max_a' ranges over the legal moves of the reconstructed successor
// board, 0 when none remain.
func (a *Agent) Update(state ttt.StateKey, action ttt.PosType, reward float64, next ttt.StateKey) {
	key := StateAction{State: state, Move: action}
	current := a.table[key]

	maxNext := 0.0
	if moves := ttt.FromKey(next).LegalMoves(); len(moves) > 0 {
		maxNext = math.Inf(-1)
		for _, mv := range moves {
			maxNext = max(maxNext, a.Q(next, mv))
		}
	}

	a.table[key] = current + a.Alpha*(reward+a.Gamma*maxNext-current)
}

// RewardForOutcome maps a final outcome to the agent's reward: +1 win,
// -1 loss, +0.5 draw (deliberately positive, biasing the agent toward
// not-losing), 0 for an unfinished game.
func (a *Agent) RewardForOutcome(o ttt.Outcome) float64 {
	switch o.Winner() {
	case a.mark:
		return 1.0
	case a.opponent:
		return -1.0
	}
	if o == ttt.Draw {
		return 0.5
	}
	return 0.0
}

// DecayEpsilon lowers the exploration rate: epsilon <- max(min, epsilon*rate).
// Invoked periodically by the trainer, never by the agent itself.
func (a *Agent) DecayEpsilon(rate, min float64) {
	a.Epsilon = math.Max(min, a.Epsilon*rate)
}

// RecordResult updates the win/loss/draw counters from a finished game
func (a *Agent) RecordResult(o ttt.Outcome) {
	a.Stats.Record(o, a.mark)
}
