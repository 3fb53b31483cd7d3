package ttt

import "fmt"

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	_fullMask uint16 = 0b111111111
)

// 3x3 board state machine. Cells are indexed 0-8 left to right, top to
// bottom, and mirrored into one bitboard per mark for the win-line scan.
type Board struct {
	cells     [9]Mark
	bitboards [2]uint16
}

func NewBoard() *Board {
	return &Board{}
}

func bitboardIdx(m Mark) int {
	if m == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}

// Place a mark on an empty cell, 0-based index. Fails with ErrIllegalMove on
// an invalid mark or index and with ErrCellOccupied on a non-empty cell,
// leaving the board unchanged in both cases.
func (b *Board) Place(m Mark, idx PosType) error {
	if m != Cross && m != Circle {
		return fmt.Errorf("%w: mark must be X or O, got %d", ErrIllegalMove, uint8(m))
	}
	if idx > 8 {
		return fmt.Errorf("%w: index must be 0-8, got %d", ErrIllegalMove, idx)
	}
	if b.cells[idx] != None {
		return fmt.Errorf("%w: index %d", ErrCellOccupied, idx)
	}

	b.cells[idx] = m
	b.bitboards[bitboardIdx(m)] |= 1 << idx
	return nil
}

// PlaceCell is the 1-based public boundary, matching the 1-9 numbering a
// human sees. Everything internal works with 0-based indices.
func (b *Board) PlaceCell(m Mark, cell int) error {
	if cell < 1 || cell > 9 {
		return fmt.Errorf("%w: cell must be 1-9, got %d", ErrIllegalMove, cell)
	}
	return b.Place(m, PosType(cell-1))
}

// Undo resets the cell at idx to empty, unconditionally. Used exclusively by
// the search to backtrack moves it itself applied, in exact reverse order;
// it does not validate that the cell was occupied.
func (b *Board) Undo(idx PosType) {
	if idx > 8 {
		return
	}
	b.bitboards[bitboardIdx(b.cells[idx])] &^= 1 << idx
	b.cells[idx] = None
}

func (b *Board) Cell(idx PosType) Mark {
	return b.cells[idx]
}

func (b *Board) Full() bool {
	return b.bitboards[_bitboardCrossIdx]|b.bitboards[_bitboardCircleIdx] == _fullMask
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) String() string {
	buf := make([]byte, 9)
	for i, m := range b.cells {
		buf[i] = m.String()[0]
	}
	return string(buf)
}

// Human-readable ASCII board, suitable for console or logs
func (b *Board) Pretty() string {
	const sep = "+---+---+---+\n"
	out := sep
	for row := 0; row < 3; row++ {
		out += fmt.Sprintf("| %s | %s | %s |\n%s",
			b.cells[row*3], b.cells[row*3+1], b.cells[row*3+2], sep)
	}
	return out[:len(out)-1]
}
