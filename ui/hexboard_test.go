package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abalone-local/board"
)

func TestIsLine(t *testing.T) {
	tests := []struct {
		name  string
		cells []board.Pos
		want  bool
	}{
		{"empty", nil, true},
		{"single", []board.Pos{{X: 4, Y: 4}}, true},
		{"pair", []board.Pos{{X: 4, Y: 4}, {X: 5, Y: 4}}, true},
		{"gap", []board.Pos{{X: 3, Y: 4}, {X: 5, Y: 4}}, false},
		{"three in a row", []board.Pos{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}, true},
		{"bent", []board.Pos{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}}, false},
		{"four", []board.Pos{{X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLine(tt.cells))
		})
	}
}

func TestSelectionMove(t *testing.T) {
	var start board.Board
	start.SetUp(board.Standard)
	sel := []board.Pos{{X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}}

	for _, d := range []board.Direction{board.East, board.West, board.NorthEast, board.NorthWest} {
		m, ok := selectionMove(sel, d)
		require.True(t, ok)
		b := start
		require.NoError(t, b.DoMove(m), "direction %d", d)
		for _, p := range sel {
			assert.Equal(t, board.White, b.At(p.Neighbour(d)), "direction %d, cell %v", d, p)
		}
	}

	_, ok := selectionMove(nil, board.East)
	assert.False(t, ok)
}

func TestSelectionMoveMatchesFFTL(t *testing.T) {
	var b board.Board
	b.SetUp(board.Standard)
	m, ok := selectionMove([]board.Pos{{X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}}, board.East)
	require.True(t, ok)
	want, err := board.ParseFFTL(&b, "c3c4")
	require.NoError(t, err)

	got := b.AfterMove(m)
	expected := b.AfterMove(want)
	assert.True(t, got.Equal(&expected))
}
