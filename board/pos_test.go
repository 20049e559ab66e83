package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosValid(t *testing.T) {
	tests := []struct {
		p    Pos
		want bool
	}{
		{Pos{4, 0}, true},
		{Pos{8, 0}, true},
		{Pos{3, 0}, false},
		{Pos{0, 4}, true},
		{Pos{8, 4}, true},
		{Pos{0, 8}, true},
		{Pos{4, 8}, true},
		{Pos{5, 8}, false},
		{Pos{0, 0}, false},
		{Pos{8, 8}, false},
		{NoPos, false},
		{Pos{9, 3}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPosNextVisitsAllCells(t *testing.T) {
	p := NoPos
	p.Next()
	require.Equal(t, Pos{4, 0}, p)

	count := 0
	last := p
	for ; p.Valid(); p.Next() {
		count++
		last = p
	}
	assert.Equal(t, Cells, count)
	assert.Equal(t, Pos{4, 8}, last)

	// stays invalid
	p.Next()
	p.Next()
	assert.False(t, p.Valid())
}

func TestStepOppositeRoundTrip(t *testing.T) {
	for _, p := range AllPositions() {
		for d := Direction(0); d < 6; d++ {
			q := p
			q.Step(d)
			q.Step(Opposite(d))
			if q != p {
				t.Fatalf("%v step %d then %d = %v", p, d, Opposite(d), q)
			}
		}
	}
}

func TestParallel(t *testing.T) {
	for d := Direction(0); d < 6; d++ {
		assert.True(t, Parallel(d, d), "Parallel(%d, %d)", d, d)
		assert.True(t, Parallel(d, Opposite(d)), "Parallel(%d, opposite)", d)
		assert.False(t, Parallel(d, Clockwise(d)), "Parallel(%d, clockwise)", d)
	}
}

func TestDirectionTo(t *testing.T) {
	c := Pos{4, 4}
	for d := Direction(0); d < 6; d++ {
		for n := 1; n <= 4; n++ {
			q := c
			for i := 0; i < n; i++ {
				q.Step(d)
			}
			assert.Equal(t, d, c.DirectionTo(q), "direction to %v", q)
			assert.Equal(t, n, Dist(c, q))
			assert.Equal(t, n+1, LineLength(c, q))
		}
	}
	assert.Equal(t, NoDirection, c.DirectionTo(Pos{5, 6}))
	assert.Equal(t, -1, Dist(c, Pos{5, 6}))
	assert.Equal(t, -1, LineLength(c, NoPos))
}

func TestPosNotation(t *testing.T) {
	tests := []struct {
		p    Pos
		want string
	}{
		{Pos{0, 8}, "a1"},
		{Pos{4, 4}, "e5"},
		{Pos{8, 0}, "i9"},
		{Pos{4, 0}, "i5"},
		{Pos{7, 1}, "h8"},
	}
	for _, tt := range tests {
		got := tt.p.String()
		if got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.p, got, tt.want)
		}
		back, err := ParsePos(got)
		require.NoError(t, err)
		assert.Equal(t, tt.p, back)
	}

	for _, bad := range []string{"", "j1", "a0", "A1", "a10"} {
		_, err := ParsePos(bad)
		assert.Error(t, err, "ParsePos(%q)", bad)
	}
}
