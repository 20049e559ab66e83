package agf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"abalone-local/board"
	"abalone-local/game"
)

// Write prints g from its start position: tags, the start diagram and every
// recorded move with comments and variations, closed by a blank line. The
// cursor of g is not changed.
//
//	1. i8f8 {keeps the daisy} (1. a1b2) 1. - c4d5 2. ...
func Write(w io.Writer, g *game.Game) error {
	bw := bufio.NewWriter(w)
	writeTags(bw, g.Attributes)

	start := g.StartBoard()
	if err := start.Write(bw); err != nil {
		return err
	}

	c := g.Clone()
	c.UndoAllMoves()
	var mw moveWriter
	if cm := c.Comment(); cm != "" {
		mw.comment(cm)
	}
	writeTree(&mw, c, 0, true)
	if mw.sb.Len() > 0 {
		bw.WriteString(mw.sb.String())
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// WriteFile writes g to path.
func WriteFile(path string, g *game.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// moveWriter joins move text tokens with single spaces.
type moveWriter struct {
	sb   strings.Builder
	open bool
}

func (mw *moveWriter) word(s string) {
	if mw.sb.Len() > 0 && !mw.open {
		mw.sb.WriteByte(' ')
	}
	mw.open = false
	mw.sb.WriteString(s)
}

func (mw *moveWriter) comment(text string) {
	mw.word("{" + text + "}")
}

func (mw *moveWriter) openVariation() {
	mw.word("(")
	mw.open = true
}

func (mw *moveWriter) closeVariation() {
	mw.sb.WriteByte(')')
}

// number prints the move number before the move at ply. A move of the second
// player is marked "N. -".
func (mw *moveWriter) number(ply int) {
	mw.word(fmt.Sprintf("%d.", ply/2+1))
	if ply%2 == 1 {
		mw.word("-")
	}
}

func (mw *moveWriter) move(g *game.Game, m board.Move) {
	b := g.CurrentBoard()
	b.ExtendTail(&m)
	mw.word(m.FFTL())
	if err := g.RedoMove(m); err != nil {
		panic(fmt.Sprintf("agf: recorded move %v: %v", m, err))
	}
	if cm := g.Comment(); cm != "" {
		mw.comment(cm)
	}
}

// writeTree prints the moves after the current position of g and leaves the
// cursor where it started.
func writeTree(mw *moveWriter, g *game.Game, ply int, showNumber bool) {
	played := 0
	for g.MoreMovesToRedo() {
		alts := g.AlternateMoves()
		if ply%2 == 0 || showNumber {
			mw.number(ply)
		}
		mw.move(g, alts[0])
		g.UndoMove()

		for _, alt := range alts[1:] {
			mw.openVariation()
			mw.number(ply)
			mw.move(g, alt)
			writeTree(mw, g, ply+1, false)
			g.UndoMove()
			mw.closeVariation()
		}

		if err := g.RedoMove(alts[0]); err != nil {
			panic(fmt.Sprintf("agf: main line move %v: %v", alts[0], err))
		}
		played++
		ply++
		showNumber = len(alts) > 1
	}
	for ; played > 0; played-- {
		g.UndoMove()
	}
}
