package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findsPredecessor reports whether reverse enumeration from after yields
// before together with a move leading back to after.
func findsPredecessor(t *testing.T, before, after Board) bool {
	t.Helper()
	for rm := NewReverseMove(after); rm.Valid(); rm.Next() {
		prev := rm.BoardBefore()
		if !prev.Equal(&before) {
			continue
		}
		m := rm.Move()
		if !prev.ValidMove(m) {
			continue
		}
		again := prev.AfterMove(m)
		if again.Equal(&after) {
			return true
		}
	}
	return false
}

func TestReverseMoveFindsEveryPredecessor(t *testing.T) {
	var start Board
	start.SetUpStartPos()
	for _, b := range []Board{start, NewBoard(BelgianDaisy)} {
		for _, m := range b.Moves() {
			after := b.AfterMove(m)
			assert.True(t, findsPredecessor(t, b, after), "no reverse for %v (%s)", m, m.FFTL())
		}
	}
}

func TestReverseMoveCandidatesAreConsistent(t *testing.T) {
	b := NewBoard(GermanDaisy)
	after := b.AfterMove(b.FirstMove())
	count := 0
	for rm := NewReverseMove(after); rm.Valid(); rm.Next() {
		count++
		prev := rm.BoardBefore()
		require.Equal(t, after.SideToMove().Opponent(), prev.SideToMove())
		require.True(t, prev.MyPiece(prev.At(rm.Move().FromFirst())), "candidate %v", rm.Move())
	}
	assert.Greater(t, count, 1)
}

func TestReverseMovePushOff(t *testing.T) {
	b := boardWith(row(4, 4, 5, 6), row(4, 7, 8), White)
	after := b.AfterMove(NewMove(Pos{4, 4}, Pos{5, 4}))
	require.Equal(t, 1, after.BlackOff())

	assert.True(t, findsPredecessor(t, b, after))

	for rm := NewReverseMove(after); rm.Valid(); rm.Next() {
		prev := rm.BoardBefore()
		assert.GreaterOrEqual(t, prev.BlackOff(), 0)
		assert.LessOrEqual(t, rm.OpponentCount(), 2)
	}
}
