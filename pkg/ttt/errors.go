package ttt

import "errors"

// Both are caller errors, surfaced synchronously from Place and never retried.
// ErrIllegalMove covers out-of-range indices and invalid marks, ErrCellOccupied
// an in-range index pointing at a non-empty cell. Callers distinguish them
// with errors.Is.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrCellOccupied = errors.New("cell occupied")
)
