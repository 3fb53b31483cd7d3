package trainer

import "github.com/IlikeChooros/go-ttt/pkg/ttt"

// Snapshot of the training progress handed to listener callbacks
type TrainStats struct {
	Game      int // finished games so far, 1-based
	Games     int // total games in this run
	Epsilon   float64
	TableSize int
	Stats     ttt.Stats
}

type ListenerFunc func(TrainStats)

// Listener receives training progress callbacks. Attach with the chainable
// setters, unset callbacks are skipped.
type Listener struct {
	onGame  ListenerFunc
	nGames  int // call 'onGame' every N finished games
	onDecay ListenerFunc
	onStop  ListenerFunc
}

func NewListener() *Listener {
	return &Listener{nGames: 1}
}

// Attach a callback invoked every N finished games, see SetGameInterval
func (l *Listener) OnGame(f ListenerFunc) *Listener {
	l.onGame = f
	return l
}

func (l *Listener) SetGameInterval(n int) *Listener {
	if n < 1 {
		n = 1
	}
	l.nGames = n
	return l
}

// Attach a callback invoked right after each epsilon decay
func (l *Listener) OnDecay(f ListenerFunc) *Listener {
	l.onDecay = f
	return l
}

// Attach a callback invoked once when the run finishes
func (l *Listener) OnStop(f ListenerFunc) *Listener {
	l.onStop = f
	return l
}

func (l *Listener) invokeGame(stats TrainStats) {
	if l != nil && l.onGame != nil && stats.Game%l.nGames == 0 {
		l.onGame(stats)
	}
}

func (l *Listener) invokeDecay(stats TrainStats) {
	if l != nil && l.onDecay != nil {
		l.onDecay(stats)
	}
}

func (l *Listener) invokeStop(stats TrainStats) {
	if l != nil && l.onStop != nil {
		l.onStop(stats)
	}
}
