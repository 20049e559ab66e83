package agf

import (
	"strings"

	"abalone-local/board"
	"abalone-local/game"
)

// APF returns the compact position used by the engine protocol: one group of
// digits per row (0 empty, 1 white, 2 black) and the side to move.
//
//	22222 222222 0022200 00000000 000000000 00000000 0011100 111111 11111 1
func APF(b *board.Board) string {
	var sb strings.Builder
	row := int8(-1)
	for _, p := range board.AllPositions() {
		if p.Y != row {
			if row >= 0 {
				sb.WriteByte(' ')
			}
			row = p.Y
		}
		sb.WriteByte(byte('0' + b.At(p)))
	}
	sb.WriteByte(' ')
	sb.WriteByte(byte('0' + b.SideToMove()))
	return sb.String()
}

// MoveList returns the moves leading to the current position of g in FFTL
// notation.
func MoveList(g *game.Game) []string {
	b := g.StartBoard()
	moves := g.CurrentMoves()
	list := make([]string, 0, len(moves))
	for _, m := range moves {
		ext := m
		b.ExtendTail(&ext)
		list = append(list, ext.FFTL())
		b.DoMove(m)
	}
	return list
}
