package board

import (
	"fmt"
)

// Move moves a line of TailCount own marbles one step in MoveDir. The line
// starts at Head and extends along TailDir. A move is in-line when MoveDir is
// parallel to TailDir (it may push), otherwise it is a broadside move.
type Move struct {
	Head      Pos
	TailDir   Direction
	TailCount int8
	MoveDir   Direction
}

// NoMove is the zero move with an invalid head.
var NoMove = Move{Head: NoPos, TailDir: 0, TailCount: 1, MoveDir: 0}

// NewMove creates a single marble move from one cell to its neighbour.
func NewMove(from, to Pos) Move {
	return Move{
		Head:      from,
		TailDir:   0,
		TailCount: 1,
		MoveDir:   from.DirectionTo(to),
	}
}

// NewLineMove creates a move of the line fromFirst..fromLast where the first
// marble lands on toFirst.
func NewLineMove(fromFirst, fromLast, toFirst Pos) Move {
	return Move{
		Head:      fromFirst,
		TailDir:   fromFirst.DirectionTo(fromLast),
		TailCount: int8(LineLength(fromFirst, fromLast)),
		MoveDir:   fromFirst.DirectionTo(toFirst),
	}
}

// FromFirst returns the head of the line.
func (m Move) FromFirst() Pos {
	return m.Head
}

// FromLast returns the last marble of the line.
func (m Move) FromLast() Pos {
	p := m.Head
	for i := int8(1); i < m.TailCount; i++ {
		p.Step(m.TailDir)
	}
	return p
}

// FromMiddle returns the middle marble of a three marble line.
func (m Move) FromMiddle() Pos {
	p := m.Head
	for i := int8(2); i < m.TailCount; i++ {
		p.Step(m.TailDir)
	}
	return p
}

func (m Move) ToFirst() Pos {
	return m.FromFirst().Neighbour(m.MoveDir)
}

func (m Move) ToLast() Pos {
	return m.FromLast().Neighbour(m.MoveDir)
}

func (m Move) ToMiddle() Pos {
	return m.FromMiddle().Neighbour(m.MoveDir)
}

// Valid reports whether the end points of the line lie on the board before
// and after the move. The board contents are not checked.
func (m Move) Valid() bool {
	if !m.FromFirst().Valid() || !m.ToFirst().Valid() {
		return false
	}
	if m.TailCount > 1 {
		return m.FromLast().Valid() && m.ToLast().Valid()
	}
	return true
}

// InLine reports whether the marbles move along their own line.
func (m Move) InLine() bool {
	return m.TailCount == 1 || Parallel(m.MoveDir, m.TailDir)
}

// Broadside reports whether the marbles move sideways.
func (m Move) Broadside() bool {
	return !m.InLine()
}

// Compare orders moves by head, tail direction, tail count and move direction.
func (m Move) Compare(o Move) int {
	switch {
	case m.Head.X != o.Head.X:
		return int(m.Head.X) - int(o.Head.X)
	case m.Head.Y != o.Head.Y:
		return int(m.Head.Y) - int(o.Head.Y)
	case m.TailDir != o.TailDir:
		return int(m.TailDir) - int(o.TailDir)
	case m.TailCount != o.TailCount:
		return int(m.TailCount) - int(o.TailCount)
	}
	return int(m.MoveDir) - int(o.MoveDir)
}

func (m Move) Equal(o Move) bool {
	return m.Compare(o) == 0
}

// Canonical returns the same move with a single marble tail pointing east and
// any other tail pointing into directions 0..2. DoMove treats both forms alike.
func (m Move) Canonical() Move {
	if m.TailCount == 1 {
		m.TailDir = 0
		return m
	}
	if m.TailDir > 2 {
		m.Head = m.FromLast()
		m.TailDir = Opposite(m.TailDir)
	}
	return m
}

// String returns the internal notation "x,y-x,y x,y" listing FromFirst,
// FromLast and ToFirst.
func (m Move) String() string {
	ff, fl, tf := m.FromFirst(), m.FromLast(), m.ToFirst()
	return fmt.Sprintf("%d,%d-%d,%d %d,%d", ff.X, ff.Y, fl.X, fl.Y, tf.X, tf.Y)
}

// ParseMove reads the internal notation written by Move.String.
func ParseMove(s string) (Move, error) {
	var ffx, ffy, flx, fly, tfx, tfy int
	n, err := fmt.Sscanf(s, "%1d,%1d-%1d,%1d %1d,%1d", &ffx, &ffy, &flx, &fly, &tfx, &tfy)
	if err != nil || n != 6 {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	ff := Pos{X: int8(ffx), Y: int8(ffy)}
	fl := Pos{X: int8(flx), Y: int8(fly)}
	tf := Pos{X: int8(tfx), Y: int8(tfy)}
	if Dist(ff, tf) != 1 {
		return NoMove, fmt.Errorf("invalid move %q: destination not next to the first marble", s)
	}
	if ff == fl {
		return NewMove(ff, tf), nil
	}
	m := NewLineMove(ff, fl, tf)
	if m.TailDir == NoDirection || m.MoveDir == NoDirection || m.TailCount < 2 || m.TailCount > 3 {
		return NoMove, fmt.Errorf("invalid move %q", s)
	}
	return m, nil
}
