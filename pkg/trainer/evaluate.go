package trainer

import (
	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Evaluate plays the agent against factory-built opponents without learning
// or exploration, alternating sides, and returns the resulting counters.
// The agent's own statistics and configured mark are left untouched.
func Evaluate(agent *qlearn.Agent, games int, factory OpponentFactory) ttt.Stats {
	stats := ttt.Stats{}
	player := GreedyAgent{Agent: agent}

	mark := agent.Mark()
	defer agent.SetMark(mark)

	for game := 0; game < games; game++ {
		agent.SetMark(sideFor(game))
		opponent := factory(ttt.Opponent(agent.Mark()))

		board := ttt.NewBoard()
		current := Player(player)
		next := opponent
		if opponent.Mark() == ttt.Cross {
			current, next = opponent, Player(player)
		}

		for !board.Outcome().Terminal() {
			current.MakeMove(board)
			current, next = next, current
		}

		stats.Record(board.Outcome(), agent.Mark())
	}

	return stats
}

// A named evaluation opponent and the agent's score against it
type EvalResult struct {
	Name  string
	Stats ttt.Stats
}

// EvaluationPool is the standard ladder the agent is graded against
func EvaluationPool() []EvalResult {
	return []EvalResult{
		{Name: "random"},
		{Name: "easy minimax"},
		{Name: "medium minimax"},
		{Name: "hard minimax"},
		{Name: "perfect minimax"},
		{Name: "imperfect minimax"},
	}
}

func evalFactory(name string) OpponentFactory {
	switch name {
	case "random":
		return func(mark ttt.Mark) Player { return NewRandomPlayer(mark) }
	case "imperfect minimax":
		return func(mark ttt.Mark) Player { return minimax.NewImperfect(mark, 0.1) }
	}

	d, err := minimax.ParseDifficulty(name[:len(name)-len(" minimax")])
	if err != nil {
		panic(err)
	}
	return func(mark ttt.Mark) Player { return minimax.NewPlayer(mark, d) }
}

// EvaluateVsAll grades the agent against the whole evaluation ladder
func EvaluateVsAll(agent *qlearn.Agent, gamesPerOpponent int) []EvalResult {
	results := EvaluationPool()
	for i := range results {
		results[i].Stats = Evaluate(agent, gamesPerOpponent, evalFactory(results[i].Name))
	}
	return results
}
