// Package engine implements the tic-tac-toe core: an immutable bitboard
// board model and an optimal computer opponent.
//
// A board is a pair of 9-bit sets, one per player. Square 0 maps to the
// highest of the nine bits so that the binary form of a bitboard reads
// like the board itself, top-left to bottom-right. Placing a mark on an
// empty square ORs the owner's set with the square's mask; wins are
// detected by ANDing a set against the eight line masks.
package engine

import "strings"

// Player identifies a side on the board.
type Player uint8

const (
	// First is the side that moves first (the human by convention).
	First Player = iota
	// Second is the replying side (the computer by convention).
	Second
)

// Length is the number of squares on the board.
const Length = 9

// fullMask covers all nine squares.
const fullMask uint16 = 0x01FF

// lineMasks are the eight winning combinations, in the order rows,
// columns, diagonals. Win highlighting reports the first match in this
// order.
var lineMasks = [8]uint16{
	0x01C0, 0x0038, 0x0007, // rows
	0x0124, 0x0092, 0x0049, // columns
	0x0111, 0x0054, // diagonals
}

func squareMask(idx int) uint16 {
	return 1 << uint(Length-1-idx)
}

// Marks holds the display glyph for each side and for empty squares.
type Marks struct {
	First  rune
	Second rune
	Empty  rune
}

// DefaultMarks returns the conventional x/o/- glyphs.
func DefaultMarks() Marks {
	return Marks{First: 'x', Second: 'o', Empty: '-'}
}

// Board is an immutable position. All derived state (fullness, winning
// lines) is computed once at construction; a move produces a new Board
// and never touches the receiver.
type Board struct {
	first      uint16
	second     uint16
	all        uint16
	full       bool
	firstLine  uint16
	secondLine uint16
	marks      Marks
}

// NewBoard returns the empty starting position with default marks.
func NewBoard() Board {
	return NewBoardWith(0, 0, DefaultMarks())
}

// NewBoardWith builds a Board from explicit occupied-sets and marks.
// The sets must be disjoint; this module only ever constructs boards
// that way, so it is not runtime-checked.
func NewBoardWith(first, second uint16, marks Marks) Board {
	all := first | second
	return Board{
		first:      first,
		second:     second,
		all:        all,
		full:       all&fullMask == fullMask,
		firstLine:  winningLine(first),
		secondLine: winningLine(second),
		marks:      marks,
	}
}

func winningLine(squares uint16) uint16 {
	for _, m := range lineMasks {
		if squares&m == m {
			return m
		}
	}
	return 0
}

// IsFull reports whether every square is occupied.
func (b Board) IsFull() bool {
	return b.full
}

// HasWin reports whether p owns a complete line.
func (b Board) HasWin(p Player) bool {
	return b.line(p) != 0
}

// WinningLine returns the mask of p's winning line, or zero if p has no
// win.
func (b Board) WinningLine(p Player) uint16 {
	return b.line(p)
}

func (b Board) line(p Player) uint16 {
	if p == First {
		return b.firstLine
	}
	return b.secondLine
}

// Occupied reports whether any player owns square idx. Out-of-range
// indices report false.
func (b Board) Occupied(idx int) bool {
	return idx >= 0 && idx < Length && b.all&squareMask(idx) != 0
}

// Mark returns the display glyph for square idx: the owner's mark, or
// the empty mark for free squares. Squares on a winning line render as
// the rune following the owner's mark, so callers can highlight the win.
// Out-of-range indices fall back to the empty mark rather than failing;
// this query feeds render loops and must never crash one.
func (b Board) Mark(idx int) rune {
	if idx < 0 || idx >= Length {
		return b.marks.Empty
	}
	m := squareMask(idx)
	switch {
	case b.firstLine&m != 0:
		return b.marks.First + 1
	case b.first&m != 0:
		return b.marks.First
	case b.secondLine&m != 0:
		return b.marks.Second + 1
	case b.second&m != 0:
		return b.marks.Second
	}
	return b.marks.Empty
}

func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < Length; i++ {
		if i > 0 {
			if i%3 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(b.Mark(i))
	}
	return sb.String()
}
