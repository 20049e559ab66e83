// Package types contains shared data structures for abalone-local.
package types

import "abalone-local/board"

// BoardState is a snapshot of a game for the user interface.
// Board is indexed as Board[y][x] where 0=empty, 1=white, 2=black; cells off
// the hexagon stay 0.
type BoardState struct {
	MoveNumber   int        `json:"move_number"`
	PlayerToMove board.Cell `json:"player_to_move"`
	Phase        string     `json:"phase"` // "playing", "finished"
	Board        [9][9]int  `json:"board"`
	WhiteOff     int        `json:"white_off"`
	BlackOff     int        `json:"black_off"`
	Outcome      string     `json:"outcome"`
	// LastMove holds the cells the marbles of the last move landed on.
	LastMove []board.Pos `json:"last_move"`
	Moves    []string    `json:"moves"` // FFTL notation
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// At returns the content of p.
func (b *BoardState) At(p board.Pos) board.Cell {
	if !p.Valid() {
		return board.Empty
	}
	return board.Cell(b.Board[p.Y][p.X])
}

// IsLastMove reports whether p was a destination of the last move.
func (b *BoardState) IsLastMove(p board.Pos) bool {
	for _, q := range b.LastMove {
		if q == p {
			return true
		}
	}
	return false
}

// NewBoardState takes a snapshot of pos.
func NewBoardState(pos *board.Board, moveNumber int) *BoardState {
	s := &BoardState{
		MoveNumber:   moveNumber,
		PlayerToMove: pos.SideToMove(),
		Phase:        "playing",
		WhiteOff:     pos.WhiteOff(),
		BlackOff:     pos.BlackOff(),
	}
	for _, p := range board.AllPositions() {
		s.Board[p.Y][p.X] = int(pos.At(p))
	}
	return s
}

// SetLastMove records the destination cells of m.
func (b *BoardState) SetLastMove(m board.Move) {
	b.LastMove = b.LastMove[:0]
	to := m.ToFirst()
	for i := int8(0); i < m.TailCount; i++ {
		b.LastMove = append(b.LastMove, to)
		to.Step(m.TailDir)
	}
}

// Copy returns a deep copy.
func (b *BoardState) Copy() *BoardState {
	c := *b
	c.LastMove = append([]board.Pos(nil), b.LastMove...)
	c.Moves = append([]string(nil), b.Moves...)
	return &c
}
