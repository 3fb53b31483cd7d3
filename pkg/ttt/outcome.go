package ttt

type Outcome int

const (
	InProgress Outcome = iota
	CrossWon
	CircleWon
	Draw
)

// Win-line patterns as bitboards: 3 rows, 3 columns, 2 diagonals. The order
// is fixed and doubles as the tie-break priority of the outcome scan.
var _winningBitboardPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Winner returns the winning mark, None for draw or in-progress
func (o Outcome) Winner() Mark {
	switch o {
	case CrossWon:
		return Cross
	case CircleWon:
		return Circle
	}
	return None
}

func (o Outcome) String() string {
	switch o {
	case CrossWon:
		return "X won"
	case CircleWon:
		return "O won"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Outcome is a pure function of the cells: it scans the 8 win lines in the
// fixed rows/columns/diagonals order and returns the mark filling the first
// complete line, else Draw when no empty cell remains, else InProgress.
// Under legal play at most one mark can hold a complete line; the first-match
// order is a defensive policy for malformed boards.
func (b *Board) Outcome() Outcome {
	crossbb := b.bitboards[_bitboardCrossIdx]
	circlebb := b.bitboards[_bitboardCircleIdx]

	for _, pattern := range _winningBitboardPatterns {
		if crossbb&pattern == pattern {
			return CrossWon
		}
		if circlebb&pattern == pattern {
			return CircleWon
		}
	}

	if crossbb|circlebb == _fullMask {
		return Draw
	}
	return InProgress
}
