package engine

import "testing"

// masksFor ORs the square masks for the given indices.
func masksFor(idxs ...int) uint16 {
	var m uint16
	for _, i := range idxs {
		m |= squareMask(i)
	}
	return m
}

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard()
	if b.IsFull() {
		t.Fatalf("empty board reported full")
	}
	if b.HasWin(First) || b.HasWin(Second) {
		t.Fatalf("empty board reported a win")
	}
	for i := 0; i < Length; i++ {
		if b.Occupied(i) {
			t.Fatalf("square %d occupied on empty board", i)
		}
		if got := b.Mark(i); got != '-' {
			t.Fatalf("square %d mark = %q, want '-'", i, got)
		}
	}
}

func TestMoveOutOfRange(t *testing.T) {
	b := NewBoard()
	for _, idx := range []int{-1, -100, 9, 10, 1000} {
		tr := b.Move(First, idx)
		if tr.Status != Rejected {
			t.Fatalf("index %d: expected Rejected, got %v", idx, tr.Status)
		}
		if tr.Move != NoMove {
			t.Fatalf("index %d: expected NoMove, got %d", idx, tr.Move)
		}
		if tr.Board != b {
			t.Fatalf("index %d: rejected move altered the board", idx)
		}
	}
}

func TestMoveOccupiedRejected(t *testing.T) {
	tr := NewBoard().Move(First, 4)
	if tr.Status != Accepted || tr.Move != 4 {
		t.Fatalf("first move failed: %+v", tr)
	}
	b := tr.Board
	for _, p := range []Player{First, Second} {
		rt := b.Move(p, 4)
		if rt.Status != Rejected || rt.Move != NoMove {
			t.Fatalf("player %d: expected rejection on occupied square, got %+v", p, rt)
		}
		if rt.Board != b {
			t.Fatalf("player %d: rejection was not side-effect free", p)
		}
	}
}

func TestDisjointnessThroughGame(t *testing.T) {
	// Alternate a full game and assert the occupied-sets never overlap.
	b := NewBoard()
	moves := []int{0, 4, 1, 2, 6, 3, 5, 7, 8}
	for n, idx := range moves {
		p := First
		if n%2 == 1 {
			p = Second
		}
		tr := b.Move(p, idx)
		if tr.Status != Accepted {
			t.Fatalf("move %d at %d rejected", n, idx)
		}
		b = tr.Board
		if b.first&b.second != 0 {
			t.Fatalf("occupied-sets overlap after move %d: %09b & %09b", n, b.first, b.second)
		}
	}
	if !b.IsFull() {
		t.Fatalf("expected full board after 9 moves")
	}
}

func TestWinDetectionAllLines(t *testing.T) {
	for _, mask := range lineMasks {
		b := NewBoardWith(mask, 0, DefaultMarks())
		if !b.HasWin(First) {
			t.Fatalf("mask %09b: expected win for First", mask)
		}
		if b.HasWin(Second) {
			t.Fatalf("mask %09b: unexpected win for Second", mask)
		}
		b = NewBoardWith(0, mask, DefaultMarks())
		if !b.HasWin(Second) || b.HasWin(First) {
			t.Fatalf("mask %09b: win detection wrong for Second", mask)
		}
	}
}

func TestFullBoardTie(t *testing.T) {
	// x o x
	// x o o
	// o x x
	b := NewBoardWith(masksFor(0, 2, 3, 7, 8), masksFor(1, 4, 5, 6), DefaultMarks())
	if !b.IsFull() {
		t.Fatalf("expected full board")
	}
	if b.HasWin(First) || b.HasWin(Second) {
		t.Fatalf("tie position reported a win")
	}
}

func TestTopRowCompletionWins(t *testing.T) {
	b := NewBoardWith(masksFor(0, 1), masksFor(4), DefaultMarks())
	tr := b.Move(First, 2)
	if tr.Status != Accepted {
		t.Fatalf("completing move rejected")
	}
	if !tr.Board.HasWin(First) {
		t.Fatalf("expected win for First after completing top row")
	}
	if tr.Board.HasWin(Second) {
		t.Fatalf("unexpected win for Second")
	}
}

func TestMarkQueries(t *testing.T) {
	b := NewBoardWith(masksFor(0), masksFor(4), DefaultMarks())
	cases := []struct {
		idx  int
		want rune
	}{
		{0, 'x'},
		{4, 'o'},
		{1, '-'},
		{8, '-'},
		{-1, '-'},   // out of range falls back to the empty mark
		{9, '-'},    //
		{1000, '-'}, //
	}
	for _, c := range cases {
		if got := b.Mark(c.idx); got != c.want {
			t.Fatalf("Mark(%d) = %q, want %q", c.idx, got, c.want)
		}
	}
}

func TestWinHighlight(t *testing.T) {
	// First owns the top row plus square 4; only the row is highlighted.
	b := NewBoardWith(masksFor(0, 1, 2, 4), masksFor(6, 7), DefaultMarks())
	if got := b.WinningLine(First); got != lineMasks[0] {
		t.Fatalf("WinningLine = %09b, want top row %09b", got, lineMasks[0])
	}
	for i := 0; i < 3; i++ {
		if got := b.Mark(i); got != 'y' {
			t.Fatalf("Mark(%d) = %q, want highlighted 'y'", i, got)
		}
	}
	if got := b.Mark(4); got != 'x' {
		t.Fatalf("Mark(4) = %q, want plain 'x'", got)
	}
	if got := b.Mark(6); got != 'o' {
		t.Fatalf("Mark(6) = %q, want 'o'", got)
	}
}

func TestHighlightOrderRowsFirst(t *testing.T) {
	// Malformed position matching both the first row and the first
	// column; the row wins the highlight.
	b := NewBoardWith(lineMasks[0]|lineMasks[3], 0, DefaultMarks())
	if got := b.WinningLine(First); got != lineMasks[0] {
		t.Fatalf("WinningLine = %09b, want first row %09b", got, lineMasks[0])
	}
}

func TestCustomMarks(t *testing.T) {
	m := Marks{First: 'A', Second: 'B', Empty: '.'}
	b := NewBoardWith(masksFor(8), 0, m)
	if got := b.Mark(8); got != 'A' {
		t.Fatalf("Mark(8) = %q, want 'A'", got)
	}
	if got := b.Mark(0); got != '.' {
		t.Fatalf("Mark(0) = %q, want '.'", got)
	}
	// Marks survive transitions.
	b = b.Move(Second, 0).Board
	if got := b.Mark(0); got != 'B' {
		t.Fatalf("Mark(0) after move = %q, want 'B'", got)
	}
}

func TestString(t *testing.T) {
	b := NewBoardWith(masksFor(0), masksFor(4), DefaultMarks())
	want := "x - -\n- o -\n- - -"
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
