package trainer

import (
	"math"

	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Config holds the orchestration knobs, injected at construction time
type Config struct {
	DecayEvery int     // games between epsilon decays
	DecayRate  float64 // multiplicative decay factor
	MinEpsilon float64 // exploration floor
}

func DefaultConfig() Config {
	return Config{
		DecayEvery: 100,
		DecayRate:  qlearn.DefaultDecay,
		MinEpsilon: qlearn.DefaultMinEps,
	}
}

// Trainer runs complete games between a learning agent and an opponent,
// records the agent's (state, action) trajectory and performs the
// end-of-game credit assignment. Strictly single-threaded: one game is
// played move by move and the value-table update happens only after the
// game's outcome is final.
type Trainer struct {
	Agent    *qlearn.Agent
	Config   Config
	listener *Listener
}

// New builds a trainer. A non-positive DecayEvery falls back to the
// DefaultConfig interval so a zero-value Config is usable.
func New(agent *qlearn.Agent, cfg Config) *Trainer {
	if cfg.DecayEvery < 1 {
		cfg.DecayEvery = DefaultConfig().DecayEvery
	}
	return &Trainer{Agent: agent, Config: cfg}
}

func (t *Trainer) SetListener(l *Listener) {
	t.listener = l
}

// One recorded move of the learning participant: the canonical encoding
// before the move and the move itself. The trajectory never outlives a game.
type step struct {
	state ttt.StateKey
	move  ttt.PosType
}

// playGame runs one game to completion from an empty board, alternating
// turns with X first, recording only the agent's pre-move states and actions
func (t *Trainer) playGame(opponent Player) (*ttt.Board, []step) {
	board := ttt.NewBoard()
	traj := make([]step, 0, 5)
	agentTurn := t.Agent.Mark() == ttt.Cross

	for !board.Outcome().Terminal() {
		if agentTurn {
			state := board.Encode()
			if mv, ok := t.Agent.MakeMove(board, true); ok {
				traj = append(traj, step{state: state, move: mv})
			}
		} else {
			opponent.MakeMove(board)
		}
		agentTurn = !agentTurn
	}

	return board, traj
}

// learn walks the trajectory in reverse chronological order: the i-th most
// recent move gets reward finalReward * gamma^i, with the post-game board as
// next state for the most recent move and the pre-move state of the move one
// step later for all earlier ones. This exponentially decaying shaped reward
// is the scheme the learned values depend on, not a full backward Bellman
// sweep; keep it as is.
func learn(agent *qlearn.Agent, final *ttt.Board, traj []step) {
	finalReward := agent.RewardForOutcome(final.Outcome())
	n := len(traj)

	for i := 0; i < n; i++ {
		s := traj[n-1-i]
		discounted := finalReward * math.Pow(agent.Gamma, float64(i))

		var next ttt.StateKey
		if i == 0 {
			next = final.Encode()
		} else {
			next = traj[n-i].state
		}

		agent.Update(s.state, s.move, discounted, next)
	}
}

// sideFor alternates the agent's side by game index so it does not overfit
// to a fixed turn order
func sideFor(game int) ttt.Mark {
	if game%2 == 0 {
		return ttt.Cross
	}
	return ttt.Circle
}

func (t *Trainer) snapshot(game, games int) TrainStats {
	return TrainStats{
		Game:      game,
		Games:     games,
		Epsilon:   t.Agent.Epsilon,
		TableSize: t.Agent.TableSize(),
		Stats:     t.Agent.Stats,
	}
}

// Run trains the agent for the given number of games against opponents built
// by the factory, one fresh opponent per game, alternating sides
func (t *Trainer) Run(games int, factory OpponentFactory) {
	for game := 0; game < games; game++ {
		t.Agent.SetMark(sideFor(game))
		opponent := factory(ttt.Opponent(t.Agent.Mark()))

		board, traj := t.playGame(opponent)

		t.Agent.RecordResult(board.Outcome())
		learn(t.Agent, board, traj)

		if game%t.Config.DecayEvery == 0 {
			t.Agent.DecayEpsilon(t.Config.DecayRate, t.Config.MinEpsilon)
			t.listener.invokeDecay(t.snapshot(game+1, games))
		}

		t.listener.invokeGame(t.snapshot(game+1, games))
	}

	t.listener.invokeStop(t.snapshot(games, games))
}

// RunSelfPlay trains two agents against each other; each records and learns
// from its own trajectory independently within the same game
func (t *Trainer) RunSelfPlay(other *qlearn.Agent, games int) {
	a1, a2 := t.Agent, other

	for game := 0; game < games; game++ {
		a1.SetMark(sideFor(game))
		a2.SetMark(ttt.Opponent(a1.Mark()))

		board := ttt.NewBoard()
		var traj1, traj2 []step

		current := a1
		if a2.Mark() == ttt.Cross {
			current = a2
		}

		for !board.Outcome().Terminal() {
			state := board.Encode()
			if mv, ok := current.MakeMove(board, true); ok {
				if current == a1 {
					traj1 = append(traj1, step{state: state, move: mv})
				} else {
					traj2 = append(traj2, step{state: state, move: mv})
				}
			}

			if current == a1 {
				current = a2
			} else {
				current = a1
			}
		}

		outcome := board.Outcome()
		a1.RecordResult(outcome)
		a2.RecordResult(outcome)
		learn(a1, board, traj1)
		learn(a2, board, traj2)

		if game%t.Config.DecayEvery == 0 {
			a1.DecayEpsilon(t.Config.DecayRate, t.Config.MinEpsilon)
			a2.DecayEpsilon(t.Config.DecayRate, t.Config.MinEpsilon)
			t.listener.invokeDecay(t.snapshot(game+1, games))
		}

		t.listener.invokeGame(t.snapshot(game+1, games))
	}

	t.listener.invokeStop(t.snapshot(games, games))
}

// CurriculumPool builds the standard graded opponent pool, weakest first: the
// uniform-random player followed by the depth-limited searches. The depth-0
// search is left out, the random player already fills the bottom rung.
func CurriculumPool() []OpponentFactory {
	pool := []OpponentFactory{
		func(mark ttt.Mark) Player { return NewRandomPlayer(mark) },
	}
	for _, d := range minimax.Difficulties() {
		if d == minimax.Random {
			continue
		}
		diff := d
		pool = append(pool, func(mark ttt.Mark) Player {
			return minimax.NewPlayer(mark, diff)
		})
	}
	return pool
}

// RunCurriculum rotates through the graded opponent pool, one opponent per
// game in round-robin order
func (t *Trainer) RunCurriculum(games int) {
	pool := CurriculumPool()
	game := 0

	t.Run(games, func(mark ttt.Mark) Player {
		p := pool[game%len(pool)](mark)
		game++
		return p
	})
}
