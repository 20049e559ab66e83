// Package game records an Abalone game as a tree of moves with variations
// and a cursor marking the current position.
package game

import (
	"errors"
	"fmt"
	"strings"

	"abalone-local/board"
	"abalone-local/settings"
)

var (
	// ErrEmptyTree is returned by RedoMove when no move has been recorded.
	ErrEmptyTree = errors.New("game tree is empty")
	// ErrNotInTree is returned by RedoMove for a move not recorded at the
	// current position.
	ErrNotInTree = errors.New("move not in game tree")
	// ErrIllegalMove wraps the board error of a recorded move that cannot be
	// played.
	ErrIllegalMove = errors.New("illegal move")
)

const none = -1

// node is the position after move. next continues the main line, alt links
// the other moves played from the same position and prev is the node before.
type node struct {
	move    board.Move
	comment string
	prev    int
	next    int
	alt     int
}

// Cursor is either the start of the game or a node of the tree.
type Cursor struct {
	atNode bool
	node   int
}

// AtStart reports whether no move has been played to reach the cursor.
func (c Cursor) AtStart() bool {
	return !c.atNode
}

func atNode(idx int) Cursor {
	return Cursor{atNode: true, node: idx}
}

// Game owns a start position and the tree of moves played from it. The first
// move of the game, if any, is node 0.
type Game struct {
	Attributes settings.Settings

	startPos     board.Board
	startComment string
	current      board.Board
	nodes        []node
	cursor       Cursor
}

// New returns a game starting from start.
func New(start board.Board) *Game {
	g := &Game{}
	g.RestartFrom(start)
	return g
}

// NewStandard returns a game from the standard opening.
func NewStandard() *Game {
	var b board.Board
	b.SetUpStartPos()
	return New(b)
}

// RestartFrom drops every move, comment and attribute and sets a new start
// position.
func (g *Game) RestartFrom(start board.Board) {
	g.startPos = start
	g.current = start
	g.startComment = ""
	g.nodes = nil
	g.cursor = Cursor{}
	g.Attributes = settings.Settings{}
}

// Clone returns a deep copy positioned at the same move.
func (g *Game) Clone() *Game {
	c := New(g.startPos)
	c.startComment = g.startComment
	c.nodes = append([]node(nil), g.nodes...)
	c.Attributes = g.Attributes.Clone()
	for _, m := range g.CurrentMoves() {
		if err := c.RedoMove(m); err != nil {
			panic(fmt.Sprintf("game: clone cannot replay %v: %v", m, err))
		}
	}
	return c
}

// children returns the first move recorded after the cursor.
func (g *Game) children() int {
	if g.cursor.AtStart() {
		if len(g.nodes) == 0 {
			return none
		}
		return 0
	}
	return g.nodes[g.cursor.node].next
}

func (g *Game) find(first int, m board.Move) int {
	for i := first; i != none; i = g.nodes[i].alt {
		if g.nodes[i].move.Equal(m) {
			return i
		}
	}
	return none
}

func (g *Game) prevIndex() int {
	if g.cursor.AtStart() {
		return none
	}
	return g.cursor.node
}

func (g *Game) addNode(m board.Move) int {
	g.nodes = append(g.nodes, node{move: m, prev: g.prevIndex(), next: none, alt: none})
	return len(g.nodes) - 1
}

// normalize extends in-line moves to the whole line taking part and puts
// the result in canonical form, so that every way of writing a move is
// recorded as the same node.
func (g *Game) normalize(m board.Move) board.Move {
	g.current.ExtendTail(&m)
	return m.Canonical()
}

// DoMove plays m on the current board and advances the cursor, reusing the
// node if m was already played here. On failure the board error is returned
// and nothing changes.
func (g *Game) DoMove(m board.Move) error {
	next := g.current
	if err := next.DoMove(m); err != nil {
		return err
	}
	m = g.normalize(m)
	g.current = next

	first := g.children()
	if idx := g.find(first, m); idx != none {
		g.cursor = atNode(idx)
		return nil
	}
	idx := g.addNode(m)
	switch {
	case first == none && g.cursor.AtStart():
		if idx != 0 {
			panic("game: first move is not the tree root")
		}
	case first == none:
		g.nodes[g.cursor.node].next = idx
	default:
		last := first
		for g.nodes[last].alt != none {
			last = g.nodes[last].alt
		}
		g.nodes[last].alt = idx
	}
	g.cursor = atNode(idx)
	return nil
}

// RedoMove plays m only if it is recorded at the current position. It never
// adds to the tree.
func (g *Game) RedoMove(m board.Move) error {
	if len(g.nodes) == 0 {
		return ErrEmptyTree
	}
	idx := g.find(g.children(), g.normalize(m))
	if idx == none {
		return ErrNotInTree
	}
	next := g.current
	if err := next.DoMove(m); err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	g.current = next
	g.cursor = atNode(idx)
	return nil
}

// RedoMainLine plays the main line move after the current position.
func (g *Game) RedoMainLine() error {
	idx := g.children()
	if idx == none {
		if len(g.nodes) == 0 {
			return ErrEmptyTree
		}
		return ErrNotInTree
	}
	if err := g.current.DoMove(g.nodes[idx].move); err != nil {
		panic(fmt.Sprintf("game: recorded move %v is illegal: %v", g.nodes[idx].move, err))
	}
	g.cursor = atNode(idx)
	return nil
}

// UndoMove steps back one move. Moves cannot be inverted, so the current
// board is rebuilt by replaying the path from the start.
func (g *Game) UndoMove() bool {
	if g.cursor.AtStart() {
		return false
	}
	if prev := g.nodes[g.cursor.node].prev; prev == none {
		g.cursor = Cursor{}
	} else {
		g.cursor = atNode(prev)
	}
	g.current = g.startPos
	for _, m := range g.CurrentMoves() {
		if err := g.current.DoMove(m); err != nil {
			panic(fmt.Sprintf("game: replay of %v failed: %v", m, err))
		}
	}
	return true
}

// UndoAllMoves returns to the start position.
func (g *Game) UndoAllMoves() {
	g.current = g.startPos
	g.cursor = Cursor{}
}

func (g *Game) MoreMovesToUndo() bool {
	return !g.cursor.AtStart()
}

func (g *Game) MoreMovesToRedo() bool {
	return g.children() != none
}

// PrevMove returns the move that led to the current position, or NoMove.
func (g *Game) PrevMove() board.Move {
	if g.cursor.AtStart() {
		return board.NoMove
	}
	return g.nodes[g.cursor.node].move
}

// NextMove returns the main line move after the current position, or NoMove.
func (g *Game) NextMove() board.Move {
	idx := g.children()
	if idx == none {
		return board.NoMove
	}
	return g.nodes[idx].move
}

// AlternateMoves lists the moves recorded at the current position, main line
// first.
func (g *Game) AlternateMoves() []board.Move {
	var moves []board.Move
	for i := g.children(); i != none; i = g.nodes[i].alt {
		moves = append(moves, g.nodes[i].move)
	}
	return moves
}

// CurrentBoardNumber is the number of moves played from the start.
func (g *Game) CurrentBoardNumber() int {
	n := 0
	for i := g.prevIndex(); i != none; i = g.nodes[i].prev {
		n++
	}
	return n
}

// CurrentMoves returns the moves from the start to the current position.
func (g *Game) CurrentMoves() []board.Move {
	n := g.CurrentBoardNumber()
	moves := make([]board.Move, n)
	for i := g.prevIndex(); i != none; i = g.nodes[i].prev {
		n--
		moves[n] = g.nodes[i].move
	}
	return moves
}

func (g *Game) CurrentBoard() board.Board {
	return g.current
}

func (g *Game) StartBoard() board.Board {
	return g.startPos
}

// Cursor returns the current position in the tree.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// BoardAlreadySeen reports whether b occurred on the path from the start up
// to and including the current position.
func (g *Game) BoardAlreadySeen(b *board.Board) bool {
	cur := g.startPos
	for _, m := range g.CurrentMoves() {
		if cur.Equal(b) {
			return true
		}
		if err := cur.DoMove(m); err != nil {
			panic(fmt.Sprintf("game: replay of %v failed: %v", m, err))
		}
	}
	if !cur.Equal(&g.current) {
		panic("game: replayed board differs from current board")
	}
	return cur.Equal(b)
}

// Length is the number of moves in the main line from the start.
func (g *Game) Length() int {
	n := 0
	for i := g.firstMove(); i != none; i = g.nodes[i].next {
		n++
	}
	return n
}

func (g *Game) firstMove() int {
	if len(g.nodes) == 0 {
		return none
	}
	return 0
}

func (g *Game) WhiteMovesFirst() bool {
	return g.startPos.WhiteToMove()
}

// Comment returns the comment of the current position. At the start this is
// the comment of the game itself.
func (g *Game) Comment() string {
	if g.cursor.AtStart() {
		return g.startComment
	}
	return g.nodes[g.cursor.node].comment
}

func (g *Game) SetComment(comment string) {
	if g.cursor.AtStart() {
		g.startComment = comment
		return
	}
	g.nodes[g.cursor.node].comment = comment
}

// String lists the moves up to the current position, numbered per white and
// black pair.
func (g *Game) String() string {
	var sb strings.Builder
	for i, m := range g.CurrentMoves() {
		if i != 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
