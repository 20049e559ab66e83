package game

import (
	"errors"
	"testing"

	"abalone-local/board"
)

var (
	w1 = board.NewMove(board.Pos{X: 2, Y: 6}, board.Pos{X: 2, Y: 5})
	w2 = board.NewMove(board.Pos{X: 4, Y: 6}, board.Pos{X: 4, Y: 5})
	b1 = board.NewMove(board.Pos{X: 4, Y: 2}, board.Pos{X: 4, Y: 3})
	b2 = board.NewMove(board.Pos{X: 6, Y: 2}, board.Pos{X: 6, Y: 3})
)

func TestNewGame(t *testing.T) {
	g := NewStandard()
	if !g.Cursor().AtStart() {
		t.Fatal("new game should be at start")
	}
	if g.MoreMovesToUndo() || g.MoreMovesToRedo() {
		t.Fatal("new game has no moves")
	}
	if g.PrevMove().Head.Valid() || g.NextMove().Head.Valid() {
		t.Fatal("prev and next move should be NoMove")
	}
	if !g.WhiteMovesFirst() {
		t.Fatal("white moves first in the standard opening")
	}
	if g.Length() != 0 {
		t.Fatalf("expected length 0, got %d", g.Length())
	}
}

func TestDoUndoRestoresBoard(t *testing.T) {
	g := NewStandard()
	before := g.CurrentBoard()

	if err := g.DoMove(w1); err != nil {
		t.Fatalf("DoMove: %v", err)
	}
	if g.CurrentBoardNumber() != 1 {
		t.Fatalf("expected board number 1, got %d", g.CurrentBoardNumber())
	}
	if !g.PrevMove().Equal(w1) {
		t.Fatalf("prev move should be %v, got %v", w1, g.PrevMove())
	}
	if !g.UndoMove() {
		t.Fatal("undo should succeed")
	}
	after := g.CurrentBoard()
	if !after.Equal(&before) {
		t.Fatalf("board not restored:\n%v\nwant\n%v", after, before)
	}
	if g.CurrentBoardNumber() != 0 {
		t.Fatalf("expected board number 0, got %d", g.CurrentBoardNumber())
	}
	if g.UndoMove() {
		t.Fatal("undo at start should fail")
	}
}

func TestUndoReplaysPath(t *testing.T) {
	g := NewStandard()
	for _, m := range []board.Move{w1, b1, w2, b2} {
		if err := g.DoMove(m); err != nil {
			t.Fatalf("DoMove(%v): %v", m, err)
		}
	}
	g.UndoMove()
	g.UndoMove()

	want := g.StartBoard()
	want.DoMove(w1)
	want.DoMove(b1)
	got := g.CurrentBoard()
	if !got.Equal(&want) {
		t.Fatalf("after two undos got\n%v\nwant\n%v", got, want)
	}
	if g.Length() != 4 {
		t.Fatalf("main line should keep 4 moves, got %d", g.Length())
	}
}

func TestIllegalMoveLeavesGameUnchanged(t *testing.T) {
	g := NewStandard()
	before := g.CurrentBoard()
	err := g.DoMove(b1)
	var pr board.PushResult
	if !errors.As(err, &pr) || pr != board.IllegalDirection {
		t.Fatalf("expected IllegalDirection, got %v", err)
	}
	after := g.CurrentBoard()
	if !after.Equal(&before) || g.MoreMovesToRedo() {
		t.Fatal("failed move should not change the game")
	}
}

func TestDoMoveDedup(t *testing.T) {
	g := NewStandard()
	g.DoMove(w1)
	g.UndoMove()
	g.DoMove(w1)
	g.UndoMove()
	if alts := g.AlternateMoves(); len(alts) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(alts))
	}

	// The same move written from the other end of the line is not a new branch.
	line := board.Move{Head: board.Pos{X: 2, Y: 6}, TailDir: board.SouthEast, TailCount: 1, MoveDir: board.NorthWest}
	g.DoMove(line)
	g.UndoMove()
	if alts := g.AlternateMoves(); len(alts) != 1 {
		t.Fatalf("expected 1 alternative after equivalent move, got %d", len(alts))
	}
}

func TestLineMoveFormsShareNode(t *testing.T) {
	g := NewStandard()
	back := board.NewMove(board.Pos{X: 2, Y: 8}, board.Pos{X: 2, Y: 7})
	front := board.Move{Head: board.Pos{X: 2, Y: 6}, TailDir: board.SouthEast, TailCount: 3, MoveDir: board.NorthWest}

	if err := g.DoMove(back); err != nil {
		t.Fatal(err)
	}
	g.UndoMove()
	if err := g.RedoMove(front); err != nil {
		t.Fatalf("front form should find the recorded move: %v", err)
	}
	if got := g.PrevMove(); !got.Equal(front) {
		t.Fatalf("expected recorded move %v, got %v", front, got)
	}
}

func TestVariations(t *testing.T) {
	g := NewStandard()
	g.DoMove(w1)
	g.DoMove(b1)
	g.UndoMove()
	g.DoMove(b2)
	g.UndoMove()

	alts := g.AlternateMoves()
	if len(alts) != 2 || !alts[0].Equal(b1) || !alts[1].Equal(b2) {
		t.Fatalf("expected [%v %v], got %v", b1, b2, alts)
	}
	if !g.NextMove().Equal(b1) {
		t.Fatalf("main line should continue with %v, got %v", b1, g.NextMove())
	}

	g.UndoAllMoves()
	if g.Length() != 2 {
		t.Fatalf("expected main line length 2, got %d", g.Length())
	}
	if err := g.RedoMainLine(); err != nil {
		t.Fatal(err)
	}
	if err := g.RedoMove(b2); err != nil {
		t.Fatalf("RedoMove(b2): %v", err)
	}
	moves := g.CurrentMoves()
	if len(moves) != 2 || !moves[0].Equal(w1) || !moves[1].Equal(b2) {
		t.Fatalf("unexpected path %v", moves)
	}
	if err := g.RedoMainLine(); !errors.Is(err, ErrNotInTree) {
		t.Fatalf("expected ErrNotInTree at end of line, got %v", err)
	}
}

func TestRedoMoveDoesNotGrowTree(t *testing.T) {
	g := NewStandard()
	if err := g.RedoMove(w1); !errors.Is(err, ErrEmptyTree) {
		t.Fatalf("expected ErrEmptyTree, got %v", err)
	}
	g.DoMove(w1)
	g.UndoMove()
	if err := g.RedoMove(w2); !errors.Is(err, ErrNotInTree) {
		t.Fatalf("expected ErrNotInTree, got %v", err)
	}
	if len(g.AlternateMoves()) != 1 {
		t.Fatal("RedoMove must not add moves")
	}
	if !g.Cursor().AtStart() {
		t.Fatal("failed RedoMove must not move the cursor")
	}
}

func TestBoardAlreadySeen(t *testing.T) {
	g := NewStandard()
	start := g.StartBoard()
	if !g.BoardAlreadySeen(&start) {
		t.Fatal("start board is seen at the start")
	}
	g.DoMove(w1)
	afterW1 := g.CurrentBoard()
	g.DoMove(b1)
	if !g.BoardAlreadySeen(&start) || !g.BoardAlreadySeen(&afterW1) {
		t.Fatal("earlier boards should be seen")
	}
	other := start.AfterMove(w2)
	if g.BoardAlreadySeen(&other) {
		t.Fatal("board off the path should not be seen")
	}
}

func TestComments(t *testing.T) {
	g := NewStandard()
	g.SetComment("opening")
	g.DoMove(w1)
	g.SetComment("solid")
	if g.Comment() != "solid" {
		t.Fatalf("expected solid, got %q", g.Comment())
	}
	g.UndoMove()
	if g.Comment() != "opening" {
		t.Fatalf("expected opening, got %q", g.Comment())
	}
}

func TestClone(t *testing.T) {
	g := NewStandard()
	g.Attributes["Event"] = "club night"
	g.DoMove(w1)
	g.DoMove(b1)
	g.UndoMove()
	g.DoMove(b2)

	c := g.Clone()
	if c.CurrentBoardNumber() != 2 || !c.PrevMove().Equal(b2) {
		t.Fatalf("clone cursor at %v", c.CurrentMoves())
	}
	cb, gb := c.CurrentBoard(), g.CurrentBoard()
	if !cb.Equal(&gb) {
		t.Fatal("clone board differs")
	}

	c.UndoMove()
	c.SetComment("changed")
	c.Attributes["Event"] = "other"
	g.UndoMove()
	if g.Comment() != "" || g.Attributes["Event"] != "club night" {
		t.Fatal("clone shares state with the original")
	}
	if len(c.AlternateMoves()) != 2 {
		t.Fatal("clone lost a variation")
	}
}

func TestRestartFrom(t *testing.T) {
	g := NewStandard()
	g.DoMove(w1)
	g.Attributes["Event"] = "x"
	g.RestartFrom(board.NewBoard(board.BelgianDaisy))
	if g.MoreMovesToRedo() || g.MoreMovesToUndo() || len(g.Attributes) != 0 {
		t.Fatal("restart should clear the game")
	}
	if g.String() != "" {
		t.Fatalf("expected empty move list, got %q", g.String())
	}
	m := g.CurrentBoard()
	g.DoMove(m.FirstMove())
	if g.String() != "1. 7,0-7,2 7,1" {
		t.Fatalf("unexpected listing %q", g.String())
	}
}
