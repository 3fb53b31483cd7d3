package ttt

type PosType uint8
type Mark uint8

const (
	None   Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

const (
	PosIllegal PosType = 255
)

// Returns the other playing mark, None maps to None
func Opponent(m Mark) Mark {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return " "
}
