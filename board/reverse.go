package board

// ReverseMove enumerates the moves that could have led to a position, and the
// positions they were played from. Candidates are forward moves of the player
// who just moved, played backwards, optionally combined with restoring up to
// as many opponent marbles as the line could have pushed.
//
//	for rm := NewReverseMove(after); rm.Valid(); rm.Next() {
//		examine(rm.BoardBefore(), rm.Move())
//	}
type ReverseMove struct {
	board         Board
	boardBefore   Board
	move          Move
	opponentCount int
}

// NewReverseMove starts the enumeration for the position after a move.
func NewReverseMove(after Board) *ReverseMove {
	rm := &ReverseMove{
		board: after,
		move:  Move{Head: firstPos(), TailDir: 0, TailCount: 1, MoveDir: 0},
	}
	if rm.Do() != nil {
		rm.Next()
	}
	return rm
}

// Do tries the current candidate. On success BoardBefore holds the position
// the forward move was played from.
func (rm *ReverseMove) Do() error {
	m := rm.move
	if m.TailCount > 1 && !Parallel(m.MoveDir, m.TailDir) && rm.opponentCount > 0 {
		return ErrBroadsidePush
	}

	// The side to move after the move is the opponent of the mover.
	opponent := rm.board.SideToMove()

	if m.TailCount == 1 || m.TailDir == m.MoveDir {
		if m.TailCount != 1 {
			panic("board: reverse candidate with extended tail")
		}
		extended := m
		rm.board.ExtendTail(&extended)
		pull := m.Head
		for i := int8(0); i < extended.TailCount; i++ {
			pull.Step(m.MoveDir)
		}
		if pull.Valid() && rm.board.At(pull) != Empty {
			return ErrPullsOpponent
		}
	}

	rm.boardBefore = rm.board
	rm.boardBefore.SetSideToMove(opponent.Opponent())
	err := rm.boardBefore.DoMove(m)
	rm.boardBefore.SetSideToMove(opponent.Opponent())
	if err != nil {
		return err
	}

	back := Opposite(m.MoveDir)
	bp := m.Head
	for i := 1; i <= rm.opponentCount; i++ {
		rm.boardBefore.SetBoardPos(bp, opponent)
		bp.Step(back)
		if bp.Valid() {
			rm.boardBefore.SetBoardPos(bp, Empty)
		} else if i != rm.opponentCount {
			return ErrTooManyPushedOff
		}
	}
	if rm.boardBefore.OutOfBoard(opponent == White) < 0 {
		return ErrNoPieceOff
	}
	return nil
}

// SuggestNext advances to the next candidate without checking it. BoardBefore
// is not meaningful until Do succeeds.
func (rm *ReverseMove) SuggestNext() {
	m := rm.move
	back := Opposite(m.MoveDir)
	nextOpp := m.Head
	for i := 0; i < rm.opponentCount; i++ {
		nextOpp.Step(back)
	}
	if nextOpp.Valid() {
		rm.opponentCount++
		nextOpp.Step(back)
		extended := m
		rm.board.ExtendTail(&extended)
		if rm.opponentCount < int(extended.TailCount) && Parallel(extended.MoveDir, extended.TailDir) {
			// MyPiece on the board after the move means an opponent of the mover.
			if !nextOpp.Valid() || rm.board.MyPiece(rm.board.At(nextOpp)) {
				return
			}
		}
	}
	rm.opponentCount = 0

	rm.boardBefore = rm.board
	rm.boardBefore.SetSideToMove(rm.board.SideToMove().Opponent())
	rm.boardBefore.NextMove(&rm.move)
}

// Next moves to the next accepted candidate. It returns false when the
// candidates are exhausted.
func (rm *ReverseMove) Next() bool {
	if !rm.move.Head.Valid() {
		return false
	}
	for {
		rm.SuggestNext()
		if !rm.move.Head.Valid() {
			return false
		}
		if rm.Do() == nil {
			return true
		}
	}
}

// Valid reports whether the current candidate is usable.
func (rm *ReverseMove) Valid() bool {
	return rm.move.Head.Valid()
}

// BoardBefore returns the position the move was played from.
func (rm *ReverseMove) BoardBefore() Board {
	return rm.boardBefore
}

// OpponentCount returns the number of opponent marbles the move pushed.
func (rm *ReverseMove) OpponentCount() int {
	return rm.opponentCount
}

// Move returns the forward move that turns BoardBefore into the position the
// enumeration started from.
func (rm *ReverseMove) Move() Move {
	extended := rm.move
	rm.board.ExtendTail(&extended)
	return NewLineMove(extended.ToLast(), extended.ToFirst(), extended.FromLast())
}
