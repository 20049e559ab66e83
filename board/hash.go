package board

import (
	"sync"

	"golang.org/x/exp/rand"
)

// HashSeed seeds the Zobrist keys. Keys are drawn once, on the first call to
// HashCode, so a custom seed must be set before that.
var HashSeed uint64 = 0x5eed_aba1_0e5e_ed01

type zobristKeys struct {
	white       [Cells]uint64
	black       [Cells]uint64
	whiteToMove uint64
	index       [9][9]int
}

var (
	keysOnce sync.Once
	keys     zobristKeys
)

func initKeys() {
	src := rand.New(rand.NewSource(HashSeed))
	for i := 0; i < Cells; i++ {
		keys.white[i] = src.Uint64()
		keys.black[i] = src.Uint64()
	}
	keys.whiteToMove = src.Uint64()
	for i, p := range AllPositions() {
		keys.index[p.X][p.Y] = i
	}
}

// HashCode returns a Zobrist hash of the marbles on the board and the side to
// move. It is recomputed from scratch on every call.
func (b *Board) HashCode() uint64 {
	keysOnce.Do(initKeys)
	var h uint64
	for _, p := range AllPositions() {
		switch Cell(b.field[p.X][p.Y]) {
		case White:
			h ^= keys.white[keys.index[p.X][p.Y]]
		case Black:
			h ^= keys.black[keys.index[p.X][p.Y]]
		}
	}
	if b.whiteToMove {
		h ^= keys.whiteToMove
	}
	return h
}
