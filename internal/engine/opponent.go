package engine

// The opponent chooses moves with minimax over the full game tree,
// pruned with alpha-beta bounds. Second is the maximizer. Terminal
// positions score terminalScore for a Second win and its negation for a
// First win, adjusted by the depth at which they occur so the search
// prefers faster wins and slower losses. A full board with no line is
// zero. scoreLimit exceeds any reachable score, so it serves as the
// initial alpha-beta window and guarantees the first real score
// tightens it.
const (
	terminalScore = 10
	scoreLimit    = 11
)

// ChooseMove returns the optimal square index for Second to play on b.
// Equal-scoring moves keep the lowest index, so the result is fully
// deterministic. Returns NoMove if b has no legal move; callers should
// check IsFull before asking for a move.
func ChooseMove(b Board) int {
	bestMove := NoMove
	bestScore := -scoreLimit
	for i := 0; i < Length; i++ {
		t := b.Move(Second, i)
		if t.Status != Accepted {
			continue
		}
		score := minimax(false, t.Board, 1, -scoreLimit, scoreLimit)
		if score > bestScore {
			bestScore = score
			bestMove = t.Move
		}
	}
	return bestMove
}

// minimax scores b from Second's perspective. isMax tells whose turn it
// is (true for Second); depth counts plies already played below the
// search root. alpha and beta carry the best scores each side can
// already force; once alpha meets beta the remaining siblings cannot
// change the decision and the loop stops.
func minimax(isMax bool, b Board, depth, alpha, beta int) int {
	switch {
	case b.HasWin(Second):
		return terminalScore - depth
	case b.HasWin(First):
		return -terminalScore + depth
	case b.IsFull():
		return 0
	}

	if isMax {
		score := -scoreLimit
		for i := 0; i < Length; i++ {
			t := b.Move(Second, i)
			if t.Status == Accepted {
				score = max(score, minimax(false, t.Board, depth+1, alpha, beta))
				alpha = score
			}
			if alpha >= beta {
				return score
			}
		}
		return score
	}

	score := scoreLimit
	for i := 0; i < Length; i++ {
		t := b.Move(First, i)
		if t.Status == Accepted {
			score = min(score, minimax(true, t.Board, depth+1, alpha, beta))
			beta = score
		}
		if alpha >= beta {
			return score
		}
	}
	return score
}
