// Package board models an Abalone position: the hexagonal board embedded in a
// 9x9 grid, moves, legal move generation and reverse move generation.
package board

import "fmt"

// Board coordinate system:
// - Pos{X, Y} indexes a 9x9 array, Y is the row from the top.
// - A cell is on the board iff 4 <= X+Y <= 12, giving the 61 cells of a
//   hexagon with five cells per side.
// - Directions are numbered clockwise starting at east:
//   0:(+1,0) 1:(0,+1) 2:(-1,+1) 3:(-1,0) 4:(0,-1) 5:(+1,-1)
//
// Standard notation:
// - Rows a-i from the bottom (a = Y 8), columns 1-9 (X+1).
// - Example: (0,8) -> a1, (4,4) -> e5, (8,0) -> i9

// Pos is a cell position. Positions outside the hexagon are invalid.
type Pos struct {
	X int8
	Y int8
}

// NoPos is the invalid sentinel position.
var NoPos = Pos{X: -1, Y: -1}

// Direction is one of the six hex directions, or NoDirection.
type Direction int8

const (
	NoDirection Direction = -1
	East        Direction = 0
	SouthEast   Direction = 1
	SouthWest   Direction = 2
	West        Direction = 3
	NorthWest   Direction = 4
	NorthEast   Direction = 5
)

var stepX = [6]int8{1, 0, -1, -1, 0, 1}
var stepY = [6]int8{0, 1, 1, 0, -1, -1}

// Opposite returns the direction pointing the other way.
func Opposite(d Direction) Direction {
	return (d + 3) % 6
}

// Clockwise returns the next direction clockwise.
func Clockwise(d Direction) Direction {
	return (d + 1) % 6
}

// Parallel reports whether two directions lie on the same axis.
func Parallel(d1, d2 Direction) bool {
	diff := int(d2) - int(d1)
	return diff%3 == 0
}

// Valid reports whether p lies on the hexagonal board.
func (p Pos) Valid() bool {
	return p.X >= 0 && p.X <= 8 && p.Y >= 0 && p.Y <= 8 && p.X+p.Y >= 4 && p.X+p.Y <= 12
}

// Next advances p to the next valid position in row-major order. Past the
// last cell p stays invalid.
func (p *Pos) Next() {
	if p.Y > 8 {
		return
	}
	p.X++
	if p.Valid() {
		return
	}
	p.Y++
	if p.Y < 4 {
		p.X = 4 - p.Y
	} else {
		p.X = 0
	}
}

// Step moves p one cell in direction d. There is no bounds check.
func (p *Pos) Step(d Direction) {
	p.X += stepX[d]
	p.Y += stepY[d]
}

// Neighbour returns the cell next to p in direction d.
func (p Pos) Neighbour(d Direction) Pos {
	p.Step(d)
	return p
}

// DirectionTo returns the direction from p to other when both lie on one of
// the three axes through p, otherwise NoDirection. Equal positions give East.
func (p Pos) DirectionTo(other Pos) Direction {
	dx := int(other.X) - int(p.X)
	dy := int(other.Y) - int(p.Y)
	var d Direction
	var delta int
	switch {
	case dy == 0:
		d, delta = East, dx
	case dx == 0:
		d, delta = SouthEast, dy
	case dx == -dy:
		d, delta = SouthWest, dy
	default:
		return NoDirection
	}
	if delta < 0 {
		d += 3
	}
	return d
}

// Dist returns the distance between a and b along an axis, or -1 if they are
// not on a common axis.
func Dist(a, b Pos) int {
	dx := int(b.X) - int(a.X)
	dy := int(b.Y) - int(a.Y)
	switch {
	case dx == 0:
		return abs(dy)
	case dy == 0:
		return abs(dx)
	case dx+dy == 0:
		return abs(dx)
	}
	return -1
}

// LineLength returns the number of cells from a to b inclusive, or -1 if
// either is off the board.
func LineLength(a, b Pos) int {
	if !a.Valid() || !b.Valid() {
		return -1
	}
	return Dist(a, b) + 1
}

// String returns the standard notation, for example "e5".
func (p Pos) String() string {
	return fmt.Sprintf("%c%d", 'i'-rune(p.Y), 1+int(p.X))
}

// ParsePos converts standard notation to a position. Only lower-case rows
// are accepted.
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 {
		return NoPos, fmt.Errorf("invalid position: %q", s)
	}
	row, col := s[0], s[1]
	if row < 'a' || row > 'i' || col < '1' || col > '9' {
		return NoPos, fmt.Errorf("invalid position: %q", s)
	}
	return Pos{X: int8(col - '1'), Y: int8('i' - row)}, nil
}

// AllPositions returns the 61 board cells in row-major order.
func AllPositions() []Pos {
	positions := make([]Pos, 0, Cells)
	for p := firstPos(); p.Valid(); p.Next() {
		positions = append(positions, p)
	}
	return positions
}

// Cells is the number of cells on the board.
const Cells = 61

func firstPos() Pos {
	return Pos{X: 4, Y: 0}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
