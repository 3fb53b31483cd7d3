package ttt

import "math/bits"

// LegalMoves returns the empty-cell indices in ascending order. The order
// matters: search and agent tie-breaking both resolve to the lowest index.
func (b *Board) LegalMoves() []PosType {
	moves := make([]PosType, 0, 9)

	free := uint(_fullMask ^ (b.bitboards[_bitboardCrossIdx] | b.bitboards[_bitboardCircleIdx]))
	for free != 0 {
		moves = append(moves, PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return moves
}
