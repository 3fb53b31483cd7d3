package minimax

import (
	"os"
	"testing"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

func TestMain(m *testing.M) {
	ttt.SetSeedGeneratorFn(func() int64 {
		return 42
	})
	os.Exit(m.Run())
}

func place(t *testing.T, b *ttt.Board, m ttt.Mark, idx ttt.PosType) {
	t.Helper()
	if err := b.Place(m, idx); err != nil {
		t.Fatal(err)
	}
}

func TestDifficultyDepths(t *testing.T) {
	cases := []struct {
		d     Difficulty
		depth int
	}{
		{Random, 0}, {Easy, 2}, {Medium, 5}, {Hard, 7}, {Perfect, 9},
	}
	for _, c := range cases {
		if got := c.d.MaxDepth(); got != c.depth {
			t.Fatalf("%v: expected depth %d, got %d", c.d, c.depth, got)
		}
		parsed, err := ParseDifficulty(c.d.String())
		if err != nil || parsed != c.d {
			t.Fatalf("ParseDifficulty(%q) = %v, %v", c.d.String(), parsed, err)
		}
	}

	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestTakesImmediateWin(t *testing.T) {
	b := ttt.NewBoard()
	// X on 0,1; O on 3,4; X to move wins at 2
	place(t, b, ttt.Cross, 0)
	place(t, b, ttt.Circle, 3)
	place(t, b, ttt.Cross, 1)
	place(t, b, ttt.Circle, 4)

	p := NewPlayer(ttt.Cross, Perfect)
	mv, ok := p.BestMove(b)
	if !ok || mv != 2 {
		t.Fatalf("expected winning move 2, got %d (ok=%v)", mv, ok)
	}
}

func TestBlocksImmediateLoss(t *testing.T) {
	b := ttt.NewBoard()
	// O threatens 0,1,2 with 2 open; X must block
	place(t, b, ttt.Circle, 0)
	place(t, b, ttt.Cross, 4)
	place(t, b, ttt.Circle, 1)

	p := NewPlayer(ttt.Cross, Perfect)
	mv, ok := p.BestMove(b)
	if !ok || mv != 2 {
		t.Fatalf("expected blocking move 2, got %d (ok=%v)", mv, ok)
	}
}

func TestBestMoveTieBreakLowestIndex(t *testing.T) {
	// On an empty board every move scores 0 (draw) for a perfect player, so
	// the strict-max scan must return the lowest index.
	p := NewPlayer(ttt.Cross, Perfect)
	mv, ok := p.BestMove(ttt.NewBoard())
	if !ok || mv != 0 {
		t.Fatalf("expected move 0 on tie, got %d (ok=%v)", mv, ok)
	}
}

func TestBestMoveNoMoves(t *testing.T) {
	b := ttt.NewBoard()
	layout := []ttt.Mark{
		ttt.Cross, ttt.Circle, ttt.Cross,
		ttt.Cross, ttt.Circle, ttt.Circle,
		ttt.Circle, ttt.Cross, ttt.Cross,
	}
	for i, m := range layout {
		place(t, b, m, ttt.PosType(i))
	}

	p := NewPlayer(ttt.Cross, Perfect)
	if _, ok := p.BestMove(b); ok {
		t.Fatal("expected no move on a full board")
	}
}

func TestRandomDifficultyPlaysFirstPlausible(t *testing.T) {
	p := NewPlayer(ttt.Cross, Random)

	// Depth 0 search scores every non-winning move 0, so the fallback is the
	// lowest-index empty cell
	mv, ok := p.BestMove(ttt.NewBoard())
	if !ok || mv != 0 {
		t.Fatalf("expected move 0, got %d", mv)
	}

	// But an immediate win is still visible at depth 0
	b := ttt.NewBoard()
	place(t, b, ttt.Cross, 0)
	place(t, b, ttt.Circle, 3)
	place(t, b, ttt.Cross, 1)
	place(t, b, ttt.Circle, 4)
	mv, ok = p.BestMove(b)
	if !ok || mv != 2 {
		t.Fatalf("expected winning move 2, got %d", mv)
	}
}

// Brute-force enumeration of every legal O strategy against the full-depth
// search playing X: the outcome must always be X-won or draw.
func TestNeverLosesBruteForce(t *testing.T) {
	p := NewPlayer(ttt.Cross, Perfect)
	b := ttt.NewBoard()
	terminals := 0

	var walk func(xToMove bool)
	walk = func(xToMove bool) {
		if outcome := b.Outcome(); outcome.Terminal() {
			terminals++
			if outcome == ttt.CircleWon {
				t.Fatalf("perfect X lost:\n%s", b.Pretty())
			}
			return
		}

		if xToMove {
			mv, ok := p.BestMove(b)
			if !ok {
				t.Fatal("no move for X on a non-terminal board")
			}
			place(t, b, ttt.Cross, mv)
			walk(false)
			b.Undo(mv)
			return
		}

		for _, mv := range b.LegalMoves() {
			place(t, b, ttt.Circle, mv)
			walk(true)
			b.Undo(mv)
		}
	}

	walk(true)
	if terminals == 0 {
		t.Fatal("enumeration visited no terminal positions")
	}
	t.Logf("checked %d terminal positions", terminals)
}

func TestNeverLosesVsRandom(t *testing.T) {
	p := NewPlayer(ttt.Cross, Perfect)
	imp := NewImperfect(ttt.Circle, 1.0) // mistake probability 1 == uniform random

	for game := 0; game < 200; game++ {
		b := ttt.NewBoard()
		xToMove := true

		for !b.Outcome().Terminal() {
			if xToMove {
				p.MakeMove(b)
			} else {
				imp.MakeMove(b)
			}
			xToMove = !xToMove
		}

		p.RecordResult(b.Outcome())
	}

	if p.Stats.Losses != 0 {
		t.Fatalf("perfect X lost %d of 200 games", p.Stats.Losses)
	}
	if p.Stats.Wins+p.Stats.Draws != 200 {
		t.Fatalf("wins+draws = %d, expected 200", p.Stats.Wins+p.Stats.Draws)
	}
}

func TestImperfectDelegatesWithoutMistakes(t *testing.T) {
	b := ttt.NewBoard()
	place(t, b, ttt.Circle, 0)
	place(t, b, ttt.Cross, 4)
	place(t, b, ttt.Circle, 1)

	// With mistake probability 0 the wrapper is the perfect search
	imp := NewImperfect(ttt.Cross, 0)
	mv, ok := imp.MakeMove(b)
	if !ok || mv != 2 {
		t.Fatalf("expected blocking move 2, got %d", mv)
	}
}

func TestSetMarkSwitchesSides(t *testing.T) {
	p := NewPlayer(ttt.Cross, Perfect)
	p.SetMark(ttt.Circle)

	if p.Mark() != ttt.Circle {
		t.Fatal("SetMark did not switch the mark")
	}

	// O to move must now block X's threat on the top row
	b := ttt.NewBoard()
	place(t, b, ttt.Cross, 0)
	place(t, b, ttt.Circle, 4)
	place(t, b, ttt.Cross, 1)

	mv, ok := p.BestMove(b)
	if !ok || mv != 2 {
		t.Fatalf("expected blocking move 2 for O, got %d", mv)
	}
}

func TestStatsRecording(t *testing.T) {
	p := NewPlayer(ttt.Cross, Perfect)
	b := ttt.NewBoard()
	for _, mv := range []ttt.PosType{0, 3, 1, 4, 2} { // X wins top row
		mark := ttt.Cross
		if mv > 2 {
			mark = ttt.Circle
		}
		place(t, b, mark, mv)
	}

	p.RecordResult(b.Outcome())
	if p.Stats.Wins != 1 || p.Stats.GamesPlayed != 1 {
		t.Fatalf("unexpected stats %+v", p.Stats)
	}
}
