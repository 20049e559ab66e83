package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFTLRoundTrip(t *testing.T) {
	for _, name := range LayoutNames() {
		g, err := Layout(name)
		require.NoError(t, err)
		b := NewBoard(g)
		for i := 0; i < 6; i++ {
			for _, m := range b.Moves() {
				ext := m
				b.ExtendTail(&ext)
				s := ext.FFTL()

				assert.Equal(t, s, ext.Canonical().FFTL(), "%s: canonical form of %v", name, ext)

				back, err := ParseFFTL(&b, s)
				require.NoError(t, err, "%s: %s", name, s)
				assert.Less(t, int(back.TailDir), 3, "%s: %s not canonical", name, s)

				want := b.AfterMove(m)
				got := b.AfterMove(back)
				require.True(t, got.Equal(&want), "%s: %v written as %s read as %v", name, m, s, back)
			}
			moves := b.Moves()
			b.DoMove(moves[(i*5)%len(moves)])
		}
	}
}

func TestFFTLCanonicalInLine(t *testing.T) {
	// Lines moving west, north west and north east are stored with the head
	// on the front marble.
	tests := []struct {
		name  string
		white []Pos
		move  Move
		want  string
	}{
		{"three west", row(4, 3, 4, 5), NewLineMove(Pos{5, 4}, Pos{3, 4}, Pos{4, 4}), "e6e3"},
		{"two west", row(4, 4, 5), NewLineMove(Pos{5, 4}, Pos{4, 4}, Pos{4, 4}), "e6e4"},
		{"three north west", []Pos{{4, 6}, {4, 5}, {4, 4}}, NewLineMove(Pos{4, 6}, Pos{4, 4}, Pos{4, 5}), "c5f5"},
		{"two north east", []Pos{{3, 6}, {4, 5}}, NewLineMove(Pos{3, 6}, Pos{4, 5}, Pos{4, 5}), "c4e6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.white, nil, White)
			c := tt.move.Canonical()
			require.Less(t, int(c.TailDir), 3)
			assert.Equal(t, tt.want, c.FFTL())
			assert.Equal(t, tt.want, tt.move.FFTL())

			back, err := ParseFFTL(&b, c.FFTL())
			require.NoError(t, err)
			want := b.AfterMove(tt.move)
			got := b.AfterMove(back)
			assert.True(t, got.Equal(&want), "%s read as %v", c.FFTL(), back)
		})
	}
}

func TestShortBroadside(t *testing.T) {
	// e5 f5 moving south east, and e5 e4 moving east, share the same FFTL cells.
	along := boardWith([]Pos{{4, 4}, {5, 4}}, nil, White)
	m, err := ConvertFFTL(&along, Pos{4, 4}, Pos{5, 5})
	require.NoError(t, err)
	assert.Equal(t, Move{Head: Pos{4, 4}, TailDir: East, TailCount: 2, MoveDir: SouthEast}, m)

	down := boardWith([]Pos{{4, 4}, {4, 5}}, nil, White)
	m, err = ConvertFFTL(&down, Pos{4, 4}, Pos{5, 5})
	require.NoError(t, err)
	assert.Equal(t, Move{Head: Pos{4, 4}, TailDir: SouthEast, TailCount: 2, MoveDir: East}, m)
}

func TestParseFFTLErrors(t *testing.T) {
	var b Board
	b.SetUpStartPos()
	for _, s := range []string{"", "a1", "a1a1", "a1z9", "a1e5x", "a1e5"} {
		_, err := ParseFFTL(&b, s)
		assert.Error(t, err, "ParseFFTL(%q)", s)
	}
}
