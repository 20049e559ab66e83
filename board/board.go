package board

import (
	"fmt"
	"strings"
)

// Cell is the content of a board cell. White and Black double as player ids.
type Cell int8

const (
	Empty Cell = 0
	White Cell = 1
	Black Cell = 2
)

// StartMarbles is the number of marbles each side begins with.
const StartMarbles = 14

// Opponent returns the other player.
func (c Cell) Opponent() Cell {
	return 3 - c
}

func (c Cell) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "empty"
}

// Board is an Abalone position. It is a value type and may be copied freely.
// The cells [0][0] and [8][8] are never on the board and hold the number of
// white and black marbles pushed off.
type Board struct {
	field       [9][9]int8
	whiteToMove bool
}

// At returns the content of p, Empty for positions off the board.
func (b *Board) At(p Pos) Cell {
	if !p.Valid() {
		return Empty
	}
	return Cell(b.field[p.X][p.Y])
}

// MyPiece reports whether c belongs to the side to move.
func (b *Board) MyPiece(c Cell) bool {
	if b.whiteToMove {
		return c == White
	}
	return c == Black
}

// SideToMove returns White or Black.
func (b *Board) SideToMove() Cell {
	if b.whiteToMove {
		return White
	}
	return Black
}

func (b *Board) SetSideToMove(c Cell) {
	b.whiteToMove = c == White
}

func (b *Board) WhiteToMove() bool {
	return b.whiteToMove
}

func (b *Board) deltaOut(c Cell, delta int) {
	switch c {
	case White:
		b.field[0][0] += int8(delta)
	case Black:
		b.field[8][8] += int8(delta)
	}
}

// SetBoardPos places c on p. The previous content counts as pushed off and the
// new content as back on the board.
func (b *Board) SetBoardPos(p Pos, c Cell) {
	b.deltaOut(Cell(b.field[p.X][p.Y]), +1)
	b.field[p.X][p.Y] = int8(c)
	b.deltaOut(c, -1)
}

func (b *Board) clear() {
	b.field = [9][9]int8{}
}

// SetUpStartPos sets up the standard opening with white to move.
func (b *Board) SetUpStartPos() {
	b.clear()
	for x := 4; x <= 8; x++ {
		b.field[x][0] = int8(Black)
	}
	for x := 3; x <= 8; x++ {
		b.field[x][1] = int8(Black)
	}
	for x := 4; x <= 6; x++ {
		b.field[x][2] = int8(Black)
	}
	for x := 2; x <= 4; x++ {
		b.field[x][6] = int8(White)
	}
	for x := 0; x <= 5; x++ {
		b.field[x][7] = int8(White)
	}
	for x := 0; x <= 4; x++ {
		b.field[x][8] = int8(White)
	}
	b.whiteToMove = true
}

// SetUp copies a layout given as grid[y][x], white to move.
func (b *Board) SetUp(grid Grid) {
	b.clear()
	for _, p := range AllPositions() {
		b.field[p.X][p.Y] = int8(grid[p.Y][p.X])
	}
	b.whiteToMove = true
}

// NewBoard returns a board set up with grid.
func NewBoard(grid Grid) Board {
	var b Board
	b.SetUp(grid)
	return b
}

// DoMove applies m for the side to move and passes the turn. On failure the
// board is unchanged and the error is a PushResult or a BroadsideResult.
func (b *Board) DoMove(m Move) error {
	var err error
	switch {
	case m.TailCount == 1, m.TailDir == m.MoveDir:
		if r := b.Push(m.FromFirst(), m.ToFirst()); r != PushOK {
			err = r
		}
	case Opposite(m.TailDir) == m.MoveDir:
		if r := b.Push(m.FromLast(), m.ToLast()); r != PushOK {
			err = r
		}
	default:
		if r := b.MoveSeveral(m.FromFirst(), m.FromLast(), m.ToFirst()); r != BroadsideOK {
			err = r
		}
	}
	if err == nil {
		b.whiteToMove = !b.whiteToMove
	}
	return err
}

// AfterMove returns a copy of b with m applied. m must be legal.
func (b Board) AfterMove(m Move) Board {
	if err := b.DoMove(m); err != nil {
		panic(fmt.Sprintf("board: AfterMove(%v): %v", m, err))
	}
	return b
}

// Push moves the line of own marbles starting at a one step toward its
// neighbour aa, pushing opponents when the line outnumbers them.
func (b *Board) Push(a, aa Pos) PushResult {
	if Dist(a, aa) != 1 {
		return IllegalDirection
	}
	if !b.MyPiece(b.At(a)) {
		return IllegalDirection
	}
	d := a.DirectionTo(aa)
	attacker := b.At(a)

	attackers := 0
	next := a
	for {
		attackers++
		next.Step(d)
		if !next.Valid() {
			return PushSuicide
		}
		if b.At(next) != attacker {
			break
		}
	}
	if attackers > 3 {
		return AttackerTooLong
	}
	if b.At(next) == Empty {
		b.field[next.X][next.Y] = int8(attacker)
		b.field[a.X][a.Y] = int8(Empty)
		return PushOK
	}

	defender := b.At(next)
	defenders := 0
	beyond := next
	for {
		defenders++
		beyond.Step(d)
		if !beyond.Valid() {
			if attackers <= defenders {
				return AttackerTooShort
			}
			b.deltaOut(defender, +1)
			b.field[next.X][next.Y] = int8(attacker)
			b.field[a.X][a.Y] = int8(Empty)
			return PushOK
		}
		if b.At(beyond) != defender {
			break
		}
	}
	if b.At(beyond) == attacker {
		return DefenderHasBackup
	}
	if attackers <= defenders {
		return AttackerTooShort
	}
	b.field[beyond.X][beyond.Y] = int8(defender)
	b.field[next.X][next.Y] = int8(attacker)
	b.field[a.X][a.Y] = int8(Empty)
	return PushOK
}

// MoveSeveral moves the line first..last sideways so that first lands on
// dest. Every destination must be empty.
func (b *Board) MoveSeveral(first, last, dest Pos) BroadsideResult {
	dx := dest.X - first.X
	dy := dest.Y - first.Y
	pieces := []Pos{first, last}
	if LineLength(first, last) == 3 {
		pieces = append(pieces, Pos{X: (first.X + last.X) / 2, Y: (first.Y + last.Y) / 2})
	}
	for _, p := range pieces {
		if !b.canMove(p, dx, dy) {
			return Blocked
		}
	}
	for _, p := range pieces {
		to := Pos{X: p.X + dx, Y: p.Y + dy}
		b.field[to.X][to.Y] = b.field[p.X][p.Y]
		b.field[p.X][p.Y] = int8(Empty)
	}
	return BroadsideOK
}

func (b *Board) canMove(p Pos, dx, dy int8) bool {
	to := Pos{X: p.X + dx, Y: p.Y + dy}
	if !to.Valid() {
		return false
	}
	return b.MyPiece(b.At(p)) && b.At(to) == Empty
}

func (b *Board) WhiteOff() int {
	return int(b.field[0][0])
}

func (b *Board) BlackOff() int {
	return int(b.field[8][8])
}

// OutOfBoard returns the number of white or black marbles pushed off.
func (b *Board) OutOfBoard(white bool) int {
	if white {
		return b.WhiteOff()
	}
	return b.BlackOff()
}

// SetOutOfBoard sets the number of marbles pushed off for one side.
func (b *Board) SetOutOfBoard(white bool, count int) {
	if white {
		b.deltaOut(White, count-b.WhiteOff())
	} else {
		b.deltaOut(Black, count-b.BlackOff())
	}
}

// Score returns the number of opponent marbles player has pushed off.
func (b *Board) Score(player Cell) int {
	return b.OutOfBoard(player.Opponent() == White)
}

// SetScore sets the number of opponent marbles player has pushed off.
func (b *Board) SetScore(player Cell, count int) {
	b.deltaOut(player.Opponent(), count-b.Score(player))
}

// Marbles counts the marbles of player on the board.
func (b *Board) Marbles(player Cell) int {
	n := 0
	for _, p := range AllPositions() {
		if b.At(p) == player {
			n++
		}
	}
	return n
}

// Compare orders boards by side to move, marbles off and then cell contents
// in row-major order.
func (b *Board) Compare(o *Board) int {
	if b.whiteToMove != o.whiteToMove {
		if b.whiteToMove {
			return 1
		}
		return -1
	}
	if r := b.WhiteOff() - o.WhiteOff(); r != 0 {
		return r
	}
	if r := b.BlackOff() - o.BlackOff(); r != 0 {
		return r
	}
	for _, p := range AllPositions() {
		if r := int(b.field[p.X][p.Y]) - int(o.field[p.X][p.Y]); r != 0 {
			return r
		}
	}
	return 0
}

func (b *Board) Equal(o *Board) bool {
	return b.Compare(o) == 0
}

func (b *Board) Less(o *Board) bool {
	return b.Compare(o) < 0
}

// String returns the text diagram written by Write.
func (b Board) String() string {
	var sb strings.Builder
	b.Write(&sb)
	return sb.String()
}
