package qlearn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// Parameters is the hyperparameter snapshot included in an exported state,
// informational on import (the receiving agent keeps its own configuration).
type Parameters struct {
	Mark    string  `json:"player_char"`
	Alpha   float64 `json:"learning_rate"`
	Gamma   float64 `json:"discount_factor"`
	Epsilon float64 `json:"epsilon"`
}

// AgentState is the persistence-boundary blob: a JSON-marshalable snapshot of
// the value table, the statistics and the parameters. How it is stored is the
// caller's concern.
type AgentState struct {
	Table  map[string]float64 `json:"q_table"`
	Stats  ttt.Stats          `json:"stats"`
	Params Parameters         `json:"parameters"`
}

func stateActionKey(sa StateAction) string {
	return sa.State.String() + "_" + strconv.Itoa(int(sa.Move))
}

func parseStateActionKey(s string) (StateAction, error) {
	var sa StateAction
	sep := strings.LastIndexByte(s, '_')
	if sep < 0 {
		return sa, fmt.Errorf("state-action key %q: missing move separator", s)
	}

	state, err := ttt.ParseStateKey(s[:sep])
	if err != nil {
		return sa, fmt.Errorf("state-action key %q: %w", s, err)
	}
	move, err := strconv.Atoi(s[sep+1:])
	if err != nil || move < 0 || move > 8 {
		return sa, fmt.Errorf("state-action key %q: bad move index", s)
	}

	return StateAction{State: state, Move: ttt.PosType(move)}, nil
}

// ExportState snapshots the value table, stats and parameters
func (a *Agent) ExportState() *AgentState {
	table := make(map[string]float64, len(a.table))
	for sa, q := range a.table {
		table[stateActionKey(sa)] = q
	}

	return &AgentState{
		Table: table,
		Stats: a.Stats,
		Params: Parameters{
			Mark:    a.mark.String(),
			Alpha:   a.Alpha,
			Gamma:   a.Gamma,
			Epsilon: a.Epsilon,
		},
	}
}

// ImportState replaces the value table and stats with the snapshot's. The
// agent keeps its configured hyperparameters and mark. Fails without partial
// mutation when the snapshot contains a malformed key.
func (a *Agent) ImportState(state *AgentState) error {
	if state == nil {
		return fmt.Errorf("nil agent state")
	}

	table := make(map[StateAction]float64, len(state.Table))
	for key, q := range state.Table {
		sa, err := parseStateActionKey(key)
		if err != nil {
			return err
		}
		table[sa] = q
	}

	a.table = table
	a.Stats = state.Stats
	return nil
}
