package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveConstructors(t *testing.T) {
	m := NewMove(Pos{4, 4}, Pos{5, 4})
	assert.Equal(t, Move{Head: Pos{4, 4}, TailDir: 0, TailCount: 1, MoveDir: East}, m)
	assert.Equal(t, Pos{5, 4}, m.ToFirst())
	assert.Equal(t, Pos{5, 4}, m.ToLast())

	line := NewLineMove(Pos{2, 4}, Pos{4, 4}, Pos{2, 5})
	assert.Equal(t, East, line.TailDir)
	assert.Equal(t, int8(3), line.TailCount)
	assert.Equal(t, SouthEast, line.MoveDir)
	assert.Equal(t, Pos{3, 4}, line.FromMiddle())
	assert.Equal(t, Pos{4, 4}, line.FromLast())
	assert.Equal(t, Pos{4, 5}, line.ToLast())
	assert.Equal(t, Pos{3, 5}, line.ToMiddle())
	assert.True(t, line.Broadside())
	assert.True(t, line.Valid())
}

func TestMoveValid(t *testing.T) {
	tests := []struct {
		name string
		m    Move
		want bool
	}{
		{"single inside", NewMove(Pos{4, 4}, Pos{5, 4}), true},
		{"single off edge", Move{Head: Pos{8, 0}, TailCount: 1, MoveDir: East}, false},
		{"no move", NoMove, false},
		{"line tail off board", Move{Head: Pos{7, 0}, TailDir: East, TailCount: 3, MoveDir: SouthEast}, false},
		{"line destination off board", Move{Head: Pos{4, 0}, TailDir: East, TailCount: 2, MoveDir: NorthEast}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Valid())
		})
	}
}

func TestMoveCompare(t *testing.T) {
	a := Move{Head: Pos{4, 4}, TailDir: 0, TailCount: 1, MoveDir: 2}
	b := Move{Head: Pos{4, 4}, TailDir: 0, TailCount: 1, MoveDir: 3}
	c := Move{Head: Pos{4, 5}, TailDir: 0, TailCount: 1, MoveDir: 0}
	assert.Less(t, a.Compare(b), 0)
	assert.Greater(t, c.Compare(b), 0)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

func TestMoveStringRoundTrip(t *testing.T) {
	moves := []Move{
		NewMove(Pos{7, 0}, Pos{7, 1}),
		NewLineMove(Pos{2, 4}, Pos{4, 4}, Pos{2, 5}),
		NewLineMove(Pos{3, 6}, Pos{4, 5}, Pos{3, 7}),
	}
	for _, m := range moves {
		s := m.String()
		back, err := ParseMove(s)
		require.NoError(t, err, s)
		assert.True(t, m.Equal(back), "%s parsed as %+v", s, back)
	}
	assert.Equal(t, "7,0-7,0 7,1", moves[0].String())

	for _, bad := range []string{
		"7,0 7,1",
		"4,4-4,4 6,6", // not a neighbour
		"4,4-4,4 4,7", // too far
		"4,4-4,4 4,4", // no step
		"2,4-4,4 2,6", // line destination too far
	} {
		_, err := ParseMove(bad)
		assert.Error(t, err, "ParseMove(%q)", bad)
	}
}

func TestMoveCanonical(t *testing.T) {
	var b Board
	b.SetUp(BelgianDaisy)

	// A three marble in-line move written from the front.
	front := Move{Head: Pos{7, 2}, TailDir: NorthWest, TailCount: 3, MoveDir: SouthEast}
	c := front.Canonical()
	assert.Equal(t, Pos{7, 0}, c.Head)
	assert.Equal(t, SouthEast, c.TailDir)
	assert.Less(t, int(c.TailDir), 3)

	after1 := b.AfterMove(front)
	after2 := b.AfterMove(c)
	assert.True(t, after1.Equal(&after2))

	single := Move{Head: Pos{7, 0}, TailDir: SouthEast, TailCount: 1, MoveDir: SouthEast}
	assert.Equal(t, Direction(0), single.Canonical().TailDir)
}
