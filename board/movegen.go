package board

// Move generation visits candidates in a fixed order: for each head holding a
// marble of the side to move, single marble moves in directions 0..5, then
// broadside moves of two and three marbles for tail directions 0..2. In-line
// moves of several marbles are produced as single marble pushes; ExtendTail
// turns them into full lines.

// FirstMove returns the first legal move. If there is none the head of the
// returned move is invalid.
func (b *Board) FirstMove() Move {
	m := Move{Head: firstPos(), TailDir: 0, TailCount: 1, MoveDir: 0}
	if !b.ValidMove(m) {
		b.NextMove(&m)
	}
	return m
}

// NextMove advances m to the next legal move. When the moves are exhausted
// the head of m becomes invalid.
func (b *Board) NextMove(m *Move) {
	if !m.Head.Valid() {
		return
	}
	for {
		b.SuggestNextMove(m)
		if b.ValidMove(*m) {
			return
		}
		if !m.Head.Valid() {
			return
		}
	}
}

// SuggestNextMove advances m to the next candidate. The marbles moved belong to
// the side to move, but the candidate may still be illegal.
func (b *Board) SuggestNextMove(m *Move) {
	for m.MoveDir < 5 {
		m.MoveDir++
		if m.TailCount == 1 {
			return
		}
		if !Parallel(m.MoveDir, m.TailDir) {
			return
		}
	}
	m.MoveDir = 0

	for m.TailCount < 3 {
		m.TailCount++
		last := m.FromLast()
		if !last.Valid() {
			break
		}
		if b.MyPiece(b.At(last)) {
			if Parallel(m.MoveDir, m.TailDir) {
				m.MoveDir++
			}
			return
		}
		// missing middle marble, no point looking at three
		m.TailCount = 3
	}
	m.TailCount = 2

	for m.TailCount > 1 && m.TailDir < 2 {
		m.TailDir++
		last := m.FromLast()
		if !last.Valid() {
			continue
		}
		if b.MyPiece(b.At(last)) {
			return
		}
	}
	m.TailDir = 0
	m.TailCount = 1
	m.MoveDir = 0

	for {
		m.Head.Next()
		if !m.Head.Valid() {
			return
		}
		if b.MyPiece(b.At(m.Head)) {
			return
		}
	}
}

// ValidMove reports whether m is legal for the side to move. The receiver is
// not modified.
func (b *Board) ValidMove(m Move) bool {
	if !b.MyPiece(b.At(m.Head)) {
		return false
	}
	scratch := *b
	return scratch.DoMove(m) == nil
}

// Moves returns every legal move in generation order.
func (b *Board) Moves() []Move {
	var moves []Move
	for m := b.FirstMove(); m.Head.Valid(); b.NextMove(&m) {
		moves = append(moves, m)
	}
	return moves
}

// ExtendTail grows a single marble or in-line move to cover the whole line of
// own marbles taking part, at most three. Broadside moves are left alone.
func (b *Board) ExtendTail(m *Move) {
	if m.TailCount > 1 && !Parallel(m.MoveDir, m.TailDir) {
		return
	}
	mine := b.At(m.Head)
	if m.TailCount == 1 {
		m.TailDir = m.MoveDir
	}
	if m.TailDir == m.MoveDir {
		for m.TailCount < 3 {
			m.TailCount++
			if b.At(m.FromLast()) != mine {
				m.TailCount--
				return
			}
		}
		return
	}
	for m.TailCount < 3 {
		m.TailCount++
		m.Head.Step(m.MoveDir)
		if b.At(m.FromFirst()) != mine {
			m.TailCount--
			m.Head.Step(m.TailDir)
			return
		}
	}
}
