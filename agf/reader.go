package agf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"abalone-local/board"
	"abalone-local/game"
)

// ErrSyntax is wrapped by every error about malformed move text.
var ErrSyntax = errors.New("agf syntax error")

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokComment
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
}

// tokenizer splits move text into words, {comments} and parentheses. A blank
// line ends the game.
type tokenizer struct {
	br  *bufio.Reader
	tok token
	err error
}

func (t *tokenizer) next() {
	t.tok = token{kind: tokEOF}
	newlines := 0
	var c byte
	for {
		var err error
		c, err = t.br.ReadByte()
		if err != nil {
			if err != io.EOF {
				t.err = err
			}
			return
		}
		if c == '\n' {
			newlines++
			if newlines >= 2 {
				return
			}
			continue
		}
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
	}

	switch c {
	case '(':
		t.tok = token{kind: tokOpen, text: "("}
	case ')':
		t.tok = token{kind: tokClose, text: ")"}
	case '{':
		text, err := t.br.ReadString('}')
		if err != nil && err != io.EOF {
			t.err = err
			return
		}
		t.tok = token{kind: tokComment, text: strings.TrimSuffix(text, "}")}
	default:
		var sb strings.Builder
		sb.WriteByte(c)
		for {
			c, err := t.br.ReadByte()
			if err != nil {
				break
			}
			if strings.IndexByte(" \t\r\n(){", c) >= 0 {
				t.br.UnreadByte()
				break
			}
			sb.WriteByte(c)
		}
		t.tok = token{kind: tokWord, text: sb.String()}
	}
}

// isMoveNumber matches "12." and the "-" placeholder for a skipped move.
func isMoveNumber(s string) bool {
	if s == "-" {
		return true
	}
	if len(s) < 2 || !strings.HasSuffix(s, ".") {
		return false
	}
	for _, c := range s[:len(s)-1] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Read replaces g with the game in r and rewinds it to the start position.
func Read(r io.Reader, g *game.Game) error {
	br := bufio.NewReader(r)
	tags, err := readTags(br)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	var start board.Board
	if err := start.Read(br); err != nil {
		return fmt.Errorf("read start position: %w", err)
	}
	g.RestartFrom(start)
	g.Attributes = tags

	t := &tokenizer{br: br}
	t.next()
	if t.tok.kind == tokComment {
		g.SetComment(t.tok.text)
		t.next()
	}
	err = readTree(t, g)
	if err == nil && t.tok.kind != tokEOF {
		err = fmt.Errorf("%w: unexpected %q", ErrSyntax, t.tok.text)
	}
	if err == nil {
		err = t.err
	}
	g.UndoAllMoves()
	return err
}

// readTree plays a line of moves with their comments and variations, then
// takes them back. It stops at ')' or the end of the game.
func readTree(t *tokenizer, g *game.Game) error {
	played := 0
	defer func() {
		for ; played > 0; played-- {
			g.UndoMove()
		}
	}()

	for {
		for t.tok.kind == tokWord && isMoveNumber(t.tok.text) {
			t.next()
		}
		if t.tok.kind == tokEOF || t.tok.kind == tokClose {
			return nil
		}
		if t.tok.kind != tokWord {
			return fmt.Errorf("%w: expected move, got %q", ErrSyntax, t.tok.text)
		}
		b := g.CurrentBoard()
		m, err := board.ParseFFTL(&b, t.tok.text)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		if err := g.DoMove(m); err != nil {
			return fmt.Errorf("%w: move %s: %w", ErrSyntax, t.tok.text, err)
		}
		played++
		t.next()

		if t.tok.kind == tokComment {
			g.SetComment(t.tok.text)
			t.next()
		}
		for t.tok.kind == tokOpen {
			main := g.PrevMove()
			g.UndoMove()
			t.next()
			if err := readTree(t, g); err != nil {
				return err
			}
			if t.tok.kind != tokClose {
				return fmt.Errorf("%w: missing ')'", ErrSyntax)
			}
			t.next()
			if err := g.RedoMove(main); err != nil {
				panic(fmt.Sprintf("agf: cannot return to main line move %v: %v", main, err))
			}
		}
	}
}

// ReadFile reads the game stored at path.
func ReadFile(path string) (*game.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g := game.NewStandard()
	if err := Read(f, g); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return g, nil
}
