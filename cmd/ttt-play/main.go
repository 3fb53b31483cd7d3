// Interactive console game against a minimax opponent or a trained agent.
// The human enters cells 1-9; the 1-based boundary conversion happens in
// Board.PlaceCell, everything else stays 0-based.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/models"
	"github.com/IlikeChooros/go-ttt/pkg/qlearn"
	"github.com/IlikeChooros/go-ttt/pkg/trainer"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

func colorBoard(out *termenv.Output, b *ttt.Board) string {
	sep := "+---+---+---+\n"
	sb := strings.Builder{}
	sb.WriteString(sep)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m := b.Cell(ttt.PosType(row*3 + col))
			cell := strconv.Itoa(row*3 + col + 1)
			switch m {
			case ttt.Cross:
				cell = out.String("X").Foreground(termenv.ANSIGreen).Bold().String()
			case ttt.Circle:
				cell = out.String("O").Foreground(termenv.ANSIRed).Bold().String()
			default:
				cell = out.String(cell).Faint().String()
			}
			sb.WriteString("| " + cell + " ")
		}
		sb.WriteString("|\n" + sep)
	}
	return sb.String()
}

func humanMove(out *termenv.Output, in *bufio.Scanner, b *ttt.Board, mark ttt.Mark) {
	for {
		fmt.Printf("your move (%s), cell 1-9: ", mark)
		if !in.Scan() {
			fmt.Println("\nbye")
			os.Exit(0)
		}

		cell, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println(out.String("enter a number 1-9").Foreground(termenv.ANSIYellow))
			continue
		}

		err = b.PlaceCell(mark, cell)
		switch {
		case err == nil:
			return
		case errors.Is(err, ttt.ErrCellOccupied):
			fmt.Println(out.String("that cell is taken").Foreground(termenv.ANSIYellow))
		case errors.Is(err, ttt.ErrIllegalMove):
			fmt.Println(out.String("cells are numbered 1-9").Foreground(termenv.ANSIYellow))
		default:
			fmt.Println(out.String(err.Error()).Foreground(termenv.ANSIRed))
		}
	}
}

func main() {
	opponent := flag.String("opponent", "perfect",
		"opponent: a minimax difficulty (random/easy/medium/hard/perfect) or 'model'")
	modelName := flag.String("model", "", "agent model to play against (with -opponent=model)")
	modelsDir := flag.String("models", "models", "model directory")
	markFlag := flag.String("mark", "X", "your mark: X or O")
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)
	in := bufio.NewScanner(os.Stdin)

	human := ttt.Cross
	if strings.EqualFold(*markFlag, "O") {
		human = ttt.Circle
	}
	aiMark := ttt.Opponent(human)

	var ai trainer.Player
	if *opponent == "model" {
		agent := qlearn.NewAgent(aiMark, qlearn.DefaultAlpha, qlearn.DefaultGamma, 0)
		if err := models.Load(*modelsDir, *modelName, agent); err != nil {
			fmt.Fprintln(os.Stderr, out.String("error: "+err.Error()).Foreground(termenv.ANSIRed))
			os.Exit(1)
		}
		agent.SetMark(aiMark)
		ai = trainer.GreedyAgent{Agent: agent}
	} else {
		d, err := minimax.ParseDifficulty(*opponent)
		if err != nil {
			fmt.Fprintln(os.Stderr, out.String("error: "+err.Error()).Foreground(termenv.ANSIRed))
			os.Exit(1)
		}
		ai = minimax.NewPlayer(aiMark, d)
	}

	board := ttt.NewBoard()
	turn := ttt.Cross

	fmt.Println(out.String("tic-tac-toe").Bold(), "- you are", human)
	fmt.Println(colorBoard(out, board))

	for !board.Outcome().Terminal() {
		if turn == human {
			humanMove(out, in, board, human)
		} else {
			if mv, ok := ai.MakeMove(board); ok {
				fmt.Printf("%s plays cell %d\n", aiMark, mv+1)
			}
		}
		fmt.Println(colorBoard(out, board))
		turn = ttt.Opponent(turn)
	}

	switch board.Outcome().Winner() {
	case human:
		fmt.Println(out.String("you win!").Foreground(termenv.ANSIGreen).Bold())
	case aiMark:
		fmt.Println(out.String("you lose").Foreground(termenv.ANSIRed).Bold())
	default:
		fmt.Println(out.String("draw").Foreground(termenv.ANSIYellow))
	}
}
