package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Write prints the board diagram: nine rows indented for the hexagon, one
// line with the side to move and one "player-count" line per player giving
// the marbles pushed off.
//
//	     . . 2 2 2
//	    . . 2 2 2 2
//	   ...
//	1
//	1-0
//	2-0
func (b *Board) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := int8(0); y <= 8; y++ {
		indent := max(int(y)-4, 4-int(y))
		bw.WriteString(strings.Repeat(" ", indent))
		for x := int8(0); x <= 8; x++ {
			p := Pos{X: x, Y: y}
			if !p.Valid() {
				continue
			}
			bw.WriteByte(' ')
			bw.WriteByte(cellChar(b.At(p)))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%d\n", int(b.SideToMove()))
	fmt.Fprintf(bw, "%d-%d\n", int(White), b.WhiteOff())
	fmt.Fprintf(bw, "%d-%d\n", int(Black), b.BlackOff())
	return bw.Flush()
}

func cellChar(c Cell) byte {
	switch c {
	case White:
		return '1'
	case Black:
		return '2'
	}
	return '.'
}

// Read parses a diagram written by Write. Reading is best effort: it stops at
// the first missing field and keeps whatever was read so far. Cells may be
// given without separators, as in the compact position strings of the engine
// protocol.
func (b *Board) Read(r io.Reader) error {
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}
	b.field[0][0] = 0
	b.field[8][8] = 0
	for _, p := range AllPositions() {
		c, err := nextNonSpace(br)
		if err != nil {
			return fmt.Errorf("read board cell %v: %w", p, err)
		}
		switch c {
		case '1':
			b.field[p.X][p.Y] = int8(White)
		case '2':
			b.field[p.X][p.Y] = int8(Black)
		default:
			b.field[p.X][p.Y] = int8(Empty)
		}
	}

	side, err := nextToken(br)
	if err != nil {
		return fmt.Errorf("read side to move: %w", err)
	}
	b.whiteToMove = side == "1"

	for i := 0; i < 2; i++ {
		tok, err := nextToken(br)
		if err != nil {
			return fmt.Errorf("read marbles off: %w", err)
		}
		var player, count int
		if _, err := fmt.Sscanf(tok, "%d-%d", &player, &count); err != nil {
			return fmt.Errorf("read marbles off %q: %w", tok, err)
		}
		switch Cell(player) {
		case White:
			b.SetOutOfBoard(true, count)
		case Black:
			b.SetOutOfBoard(false, count)
		}
	}
	return nil
}

// ReadString parses a diagram from s.
func (b *Board) ReadString(s string) error {
	return b.Read(strings.NewReader(s))
}

func nextNonSpace(br io.ByteScanner) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(c)) {
			return c, nil
		}
	}
}

// nextToken reads a run of non-space bytes.
func nextToken(br io.ByteScanner) (string, error) {
	c, err := nextNonSpace(br)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteByte(c)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(rune(c)) {
			br.UnreadByte()
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}
