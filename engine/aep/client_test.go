package aep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abalone-local/agf"
	"abalone-local/board"
	"abalone-local/engine"
	"abalone-local/engine/random"
	"abalone-local/types"
)

type played struct {
	move  board.Move
	color board.Cell
	state *types.BoardState
}

func newTestClient(t *testing.T, color board.Cell) (*Client, chan played, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := engine.DefaultConfig()
	cfg.PlayerColor = color
	cfg.HistoryDir = dir
	cfg.MoveTime = 10

	c := NewLocalClient(cfg, random.New(random.WithSeed(11)))
	moves := make(chan played, 8)
	c.OnMove(func(m board.Move, color board.Cell, st *types.BoardState) {
		moves <- played{m, color, st}
	})
	require.NoError(t, c.Connect())
	return c, moves, dir
}

func waitMove(t *testing.T, moves chan played) played {
	t.Helper()
	select {
	case p := <-moves:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("no move within 5s")
	}
	return played{}
}

func TestClientPlaysAgainstLocalEngine(t *testing.T) {
	c, moves, dir := newTestClient(t, board.White)

	require.True(t, c.IsMyTurn())
	assert.Equal(t, board.White, c.GetPlayerColor())
	assert.Equal(t, 0, c.GetBoardState().MoveNumber)

	start := board.NewBoard(board.Standard)
	m, err := board.ParseFFTL(&start, "c3c4")
	require.NoError(t, err)
	require.NoError(t, c.PlayMove(m))

	mine := waitMove(t, moves)
	assert.Equal(t, board.White, mine.color)
	theirs := waitMove(t, moves)
	assert.Equal(t, board.Black, theirs.color)
	assert.Equal(t, 2, theirs.state.MoveNumber)
	assert.Len(t, theirs.state.Moves, 2)
	assert.NotEmpty(t, theirs.state.LastMove)

	require.True(t, c.IsMyTurn())
	require.NoError(t, c.Undo())
	assert.Equal(t, 0, c.GetBoardState().MoveNumber)
	assert.Error(t, c.Undo(), "nothing left to undo")

	c.Close()

	games, err := agf.ListGames(dir)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 0, games[0].MoveCount)
	assert.Equal(t, "Player", games[0].White)
	assert.Equal(t, "random", games[0].Black)
	assert.Equal(t, "standard", games[0].Layout)
}

func TestClientEngineMovesFirst(t *testing.T) {
	c, moves, _ := newTestClient(t, board.Black)
	defer c.Close()

	p := waitMove(t, moves)
	assert.Equal(t, board.White, p.color)
	assert.Equal(t, board.Black, p.state.PlayerToMove)
	assert.True(t, c.IsMyTurn())
}

func TestClientIllegalMove(t *testing.T) {
	c, _, _ := newTestClient(t, board.White)
	defer c.Close()

	start := board.NewBoard(board.Standard)
	m, err := board.ParseFFTL(&start, "a1a2")
	require.NoError(t, err)
	assert.Error(t, c.PlayMove(m))
	assert.True(t, c.IsMyTurn())
}
