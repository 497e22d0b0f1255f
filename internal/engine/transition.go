package engine

// Status classifies the outcome of a move attempt.
type Status uint8

const (
	Accepted Status = iota
	Rejected
)

// NoMove is the sentinel move index reported when no move was made.
const NoMove = -1

// Transition is the result of a move attempt: the outcome status, the
// resulting board (the input board, unchanged, on rejection) and the
// move index used (NoMove on rejection).
type Transition struct {
	Status Status
	Board  Board
	Move   int
}

// Move attempts to place p's mark on square idx. An out-of-range index
// or an occupied square rejects the attempt; rejection is total, the
// returned board is the receiver itself. This is the only state
// transition a Board supports.
func (b Board) Move(p Player, idx int) Transition {
	if idx < 0 || idx >= Length {
		return Transition{Status: Rejected, Board: b, Move: NoMove}
	}
	m := squareMask(idx)
	if b.all&m != 0 {
		return Transition{Status: Rejected, Board: b, Move: NoMove}
	}
	first, second := b.first, b.second
	if p == First {
		first |= m
	} else {
		second |= m
	}
	return Transition{
		Status: Accepted,
		Board:  NewBoardWith(first, second, b.marks),
		Move:   idx,
	}
}
