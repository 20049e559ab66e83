package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStartPosition(t *testing.T) {
	var b Board
	b.SetUpStartPos()
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "     2 2 2 2 2", lines[0])
	assert.Equal(t, " . . . . . . . . .", lines[4])
	assert.Equal(t, "     1 1 1 1 1", lines[8])
	assert.Equal(t, "1", lines[9])
	assert.Equal(t, "1-0", lines[10])
	assert.Equal(t, "2-0", lines[11])
	assert.Equal(t, "", lines[12])
}

func TestWriteReadRoundTrip(t *testing.T) {
	b := NewBoard(BelgianDaisy)
	for i := 0; i < 40; i++ {
		var buf bytes.Buffer
		require.NoError(t, b.Write(&buf))

		var got Board
		require.NoError(t, got.Read(&buf))
		require.True(t, got.Equal(&b), "ply %d:\n%v\nread back as\n%v", i, b, got)

		moves := b.Moves()
		b.DoMove(moves[(i*13)%len(moves)])
	}
}

func TestReadCompact(t *testing.T) {
	var want Board
	want.SetUpStartPos()
	want.SetBoardPos(Pos{4, 0}, Empty)
	want.SetBoardPos(Pos{5, 0}, Empty)
	want.SetSideToMove(Black)

	var sb strings.Builder
	for _, p := range AllPositions() {
		sb.WriteByte(cellChar(want.At(p)))
	}
	sb.WriteString(" 2 1-0 2-2")

	var got Board
	require.NoError(t, got.ReadString(sb.String()))
	assert.True(t, got.Equal(&want), "got\n%v", got)
	assert.Equal(t, 2, got.BlackOff())
	assert.Equal(t, Black, got.SideToMove())
}

func TestReadTruncated(t *testing.T) {
	var b Board
	err := b.ReadString("2 2 2")
	assert.Error(t, err)
}

func TestReadResetsMarblesOff(t *testing.T) {
	var b Board
	b.SetUpStartPos()
	b.SetOutOfBoard(true, 3)
	b.SetOutOfBoard(false, 2)

	var sb strings.Builder
	for _, p := range AllPositions() {
		sb.WriteByte(cellChar(b.At(p)))
	}
	sb.WriteString(" 1")

	assert.Error(t, b.ReadString(sb.String()))
	assert.Equal(t, 0, b.WhiteOff())
	assert.Equal(t, 0, b.BlackOff())
	assert.Equal(t, StartMarbles, b.Marbles(White))
}
