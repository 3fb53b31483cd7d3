package ttt

import (
	"fmt"
	"strconv"
	"strings"
)

// StateKey is the canonical numeric encoding of a board: 1 for X, -1 for O,
// 0 for an empty cell. It is a comparable value type, bijective with the
// cells and stable across processes, used as the lookup key everywhere
// outside the board itself.
type StateKey [9]int8

var _numericEncode = [3]int8{None: 0, Cross: 1, Circle: -1}

func decodeMark(v int8) Mark {
	switch v {
	case 1:
		return Cross
	case -1:
		return Circle
	}
	return None
}

func (b *Board) Encode() StateKey {
	var key StateKey
	for i, m := range b.cells {
		key[i] = _numericEncode[m]
	}
	return key
}

// FromKey reconstructs a board from its canonical encoding. Needed by the
// Bellman update to enumerate the legal moves of a successor state.
func FromKey(key StateKey) *Board {
	b := NewBoard()
	for i, v := range key {
		if m := decodeMark(v); m != None {
			b.cells[i] = m
			b.bitboards[bitboardIdx(m)] |= 1 << i
		}
	}
	return b
}

func (k StateKey) String() string {
	parts := make([]string, len(k))
	for i, v := range k {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// ParseStateKey is the inverse of StateKey.String, used when importing
// serialized agent state.
func ParseStateKey(s string) (StateKey, error) {
	var key StateKey
	parts := strings.Split(s, ",")
	if len(parts) != len(key) {
		return key, fmt.Errorf("state key must have %d cells, got %d", len(key), len(parts))
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return key, fmt.Errorf("state key cell %d: %w", i, err)
		}
		if v < -1 || v > 1 {
			return key, fmt.Errorf("state key cell %d: value %d out of range", i, v)
		}
		key[i] = int8(v)
	}
	return key, nil
}
