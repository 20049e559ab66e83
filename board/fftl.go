package board

import "fmt"

// FFTL notation writes a move as the cell of its first marble followed by the
// destination of its last marble, for example "a1b2". The destination may
// hold the first opponent marble of a push.

// FFTL returns the move in from-first-to-last notation. It is only unique for
// moves whose tail has been extended. An in-line move whose head is the front
// marble, as Canonical leaves it for directions 3..5, is written from its back
// marble.
func (m Move) FFTL() string {
	if m.TailCount > 1 && m.TailDir == Opposite(m.MoveDir) {
		return m.FromLast().String() + m.ToFirst().String()
	}
	return m.FromFirst().String() + m.ToLast().String()
}

const (
	x  = -1 // impossible
	sb = -2 // short broadside, decided by the board
)

// Tables indexed [dy+4][dx+4] with (dx, dy) = toLast - fromFirst.
var fftlTailDir = [9][9]int8{
	{x, x, x, x, x, x, x, x, x},
	{x, x, x, x, 4, 4, 5, 5, x},
	{x, x, x, 4, 4, 4, 5, 5, x},
	{x, x, 3, 3, 4, 5, 5, 0, x},
	{x, 3, 3, 3, x, 0, 0, 0, x},
	{x, 3, 2, 2, 1, 0, 0, x, x},
	{x, 2, 2, 1, 1, 1, x, x, x},
	{x, 2, 2, 1, 1, x, x, x, x},
	{x, x, x, x, x, x, x, x, x},
}

var fftlTailCount = [9][9]int8{
	{x, x, x, x, x, x, x, x, x},
	{x, x, x, x, 3, 3, 3, 3, x},
	{x, x, x, 3, 2, 2, 2, 3, x},
	{x, x, 3, 2, 1, 1, 2, 3, x},
	{x, 3, 2, 1, x, 1, 2, 3, x},
	{x, 3, 2, 1, 1, 2, 3, x, x},
	{x, 3, 2, 2, 2, 3, x, x, x},
	{x, 3, 3, 3, 3, x, x, x, x},
	{x, x, x, x, x, x, x, x, x},
}

var fftlMoveDir = [9][9]int8{
	{x, x, x, x, x, x, x, x, x},
	{x, x, x, x, 4, 5, 4, 5, x},
	{x, x, x, 3, 4, sb, 5, 0, x},
	{x, x, 4, sb, 4, 5, sb, 5, x},
	{x, 3, 3, 3, x, 0, 0, 0, x},
	{x, 2, sb, 2, 1, sb, 1, x, x},
	{x, 3, 2, sb, 1, 0, x, x, x},
	{x, 2, 1, 2, 1, x, x, x, x},
	{x, x, x, x, x, x, x, x, x},
}

// ConvertFFTL derives the move that takes the marble on fromFirst and lands
// the last marble of its line on toLast. The board before the move is only
// consulted when the cells alone do not tell a short broadside from its
// mirror. The result is canonical.
func ConvertFFTL(b *Board, fromFirst, toLast Pos) (Move, error) {
	if !fromFirst.Valid() || !toLast.Valid() {
		return NoMove, fmt.Errorf("fftl %v%v: position off board", fromFirst, toLast)
	}
	dx := int(toLast.X) - int(fromFirst.X)
	dy := int(toLast.Y) - int(fromFirst.Y)
	if dx < -4 || dx > 4 || dy < -4 || dy > 4 {
		return NoMove, fmt.Errorf("fftl %v%v: cells too far apart", fromFirst, toLast)
	}
	tailDir := Direction(fftlTailDir[dy+4][dx+4])
	tailCount := fftlTailCount[dy+4][dx+4]
	moveDir := Direction(fftlMoveDir[dy+4][dx+4])

	if moveDir == sb {
		p := fromFirst.Neighbour(tailDir)
		if b.At(p) != Empty {
			moveDir = Clockwise(tailDir)
		} else {
			moveDir = tailDir
			tailDir = Clockwise(tailDir)
		}
	}
	if tailDir == NoDirection || moveDir == NoDirection || tailCount < 1 {
		return NoMove, fmt.Errorf("fftl %v%v: not a move", fromFirst, toLast)
	}
	m := Move{Head: fromFirst, TailDir: tailDir, TailCount: tailCount, MoveDir: moveDir}
	return m.Canonical(), nil
}

// ParseFFTL reads a four character FFTL move such as "a1b2" against the board
// before the move.
func ParseFFTL(b *Board, s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("invalid fftl move %q", s)
	}
	ff, err := ParsePos(s[:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid fftl move %q: %w", s, err)
	}
	tl, err := ParsePos(s[2:])
	if err != nil {
		return NoMove, fmt.Errorf("invalid fftl move %q: %w", s, err)
	}
	return ConvertFFTL(b, ff, tl)
}
