package aep

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abalone-local/agf"
	"abalone-local/board"
	"abalone-local/engine/random"
	"abalone-local/game"
)

const startAPF = "22222 222222 0022200 00000000 000000000 00000000 0011100 111111 11111 1"

// recorder is an engine that remembers what the server told it.
type recorder struct {
	game    *game.Game
	debug   bool
	params  map[string]string
	stopped bool
	// wait keeps GetMove polling until StopSearch.
	wait bool
}

func (r *recorder) SetGame(g *game.Game) { r.game = g }
func (r *recorder) Name() string         { return "recorder" }
func (r *recorder) Author() string       { return "" }
func (r *recorder) SetDebug(on bool)     { r.debug = on }
func (r *recorder) StopSearch()          { r.stopped = true }

func (r *recorder) ResetSearchParameters() {
	r.params = map[string]string{}
	r.stopped = false
}

func (r *recorder) SetSearchParameter(key, value string) {
	r.params[key] = value
}

func (r *recorder) GetMove(check func()) board.Move {
	for i := 0; r.wait && !r.stopped && i < 5000; i++ {
		check()
		time.Sleep(time.Millisecond)
	}
	return board.NoMove
}

func play(t *testing.T, e *recorder, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewServer(e).Play(context.Background(), strings.NewReader(input), &out)
	return out.String(), err
}

func TestHandshake(t *testing.T) {
	var out bytes.Buffer
	e := random.New(random.WithSeed(1))
	err := NewServer(e).Play(context.Background(), strings.NewReader("aep\nisready\nquit\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "id name random\nid author abalone-local\nreadyok\nreadyok\n", out.String())
}

func TestHandshakeWithoutAuthor(t *testing.T) {
	out, err := play(t, &recorder{}, "aep\n")
	require.NoError(t, err)
	assert.Equal(t, "id name recorder\nreadyok\n", out)
}

func TestPositionAndGo(t *testing.T) {
	var out bytes.Buffer
	e := random.New(random.WithSeed(5))
	input := "position abp " + startAPF + " moves c3c4\ngo movetime 10\nquit\n"
	require.NoError(t, NewServer(e).Play(context.Background(), strings.NewReader(input), &out))

	reply := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(reply, "bestmove "), reply)

	g := game.NewStandard()
	b := g.CurrentBoard()
	first, err := board.ParseFFTL(&b, "c3c4")
	require.NoError(t, err)
	require.NoError(t, b.DoMove(first))
	m, err := board.ParseFFTL(&b, strings.TrimPrefix(reply, "bestmove "))
	require.NoError(t, err)
	assert.True(t, b.ValidMove(m), "engine move %s is illegal for black", reply)
}

func TestGoSubcommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want map[string]string
	}{
		{
			name: "searchmoves takes the rest",
			cmd:  "go depth 3 searchmoves a1b2 c3c4",
			want: map[string]string{"depth": "3", "searchmoves": "a1b2 c3c4"},
		},
		{
			name: "clock",
			cmd:  "go time 100 200 inc 5 6",
			want: map[string]string{"time1": "100", "time2": "200", "inc1": "5", "inc2": "6"},
		},
		{
			name: "flags",
			cmd:  "go ponder infinite nodes 9 mate 2 bogus",
			want: map[string]string{"ponder": "1", "movetime": "inf", "nodes": "9", "mate": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &recorder{}
			out, err := play(t, e, tt.cmd+"\n")
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.params)
			assert.Equal(t, "bestmove none\n", out)
		})
	}
}

func TestDebug(t *testing.T) {
	e := &recorder{}
	_, err := play(t, e, "debug on\n")
	require.NoError(t, err)
	assert.True(t, e.debug)
	_, err = play(t, e, "debug off\ndebug maybe\nsetoption name x\nponderhit\nnonsense\n")
	require.NoError(t, err)
	assert.False(t, e.debug)
}

func TestPositionOffCounts(t *testing.T) {
	e := &recorder{}
	// Two black marbles missing from the first row.
	apf := "00222" + strings.TrimPrefix(startAPF, "22222")
	_, err := play(t, e, "position abp "+apf+"\n")
	require.NoError(t, err)
	require.NotNil(t, e.game)

	b := e.game.CurrentBoard()
	assert.Equal(t, 2, b.BlackOff())
	assert.Equal(t, 0, b.WhiteOff())
	assert.Equal(t, board.White, b.SideToMove())
}

func TestPositionDefaultsToWhite(t *testing.T) {
	e := &recorder{}
	apf := strings.TrimSuffix(startAPF, " 1")
	_, err := play(t, e, "position abp "+apf+" moves c3c4\n")
	require.NoError(t, err)
	assert.Equal(t, 1, e.game.CurrentBoardNumber())
	b := e.game.CurrentBoard()
	assert.Equal(t, board.Black, b.SideToMove())
}

func TestBadPosition(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
	}{
		{"not abp", "position xyz " + startAPF},
		{"too short", "position abp 22222 222222"},
		{"too many marbles", "position abp " + strings.Repeat("1", board.Cells)},
		{"illegal move", "position abp " + startAPF + " moves a1a2"},
		{"bad notation", "position abp " + startAPF + " moves c3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := play(t, &recorder{}, tt.cmd+"\ngo\n")
			require.ErrorIs(t, err, ErrBadPosition)
		})
	}
}

func TestStopDuringSearch(t *testing.T) {
	e := &recorder{wait: true}
	out, err := play(t, e, "go infinite\nstop\n")
	require.NoError(t, err)
	assert.True(t, e.stopped)
	assert.Equal(t, "bestmove none\n", out)
}

func TestQuitDuringSearch(t *testing.T) {
	e := &recorder{wait: true}
	out, err := play(t, e, "go infinite\nquit\nisready\n")
	require.NoError(t, err)
	assert.Equal(t, "bestmove none\n", out)
}

func TestContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer(&recorder{}).Play(ctx, r, io.Discard)
	}()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Play did not return after cancel")
	}
}

func TestPositionWithInLineMoves(t *testing.T) {
	g := game.NewStandard()
	for _, m := range []board.Move{
		board.NewMove(board.Pos{X: 2, Y: 8}, board.Pos{X: 2, Y: 7}),
		board.NewMove(board.Pos{X: 4, Y: 2}, board.Pos{X: 4, Y: 3}),
		board.NewMove(board.Pos{X: 3, Y: 8}, board.Pos{X: 4, Y: 7}),
		board.NewMove(board.Pos{X: 6, Y: 2}, board.Pos{X: 6, Y: 3}),
		board.NewMove(board.Pos{X: 4, Y: 6}, board.Pos{X: 3, Y: 6}),
	} {
		require.NoError(t, g.DoMove(m))
	}
	start := g.StartBoard()
	args := append(strings.Fields("abp "+agf.APF(&start)+" moves"), agf.MoveList(g)...)

	parsed, err := parsePosition(args)
	require.NoError(t, err)
	want := g.CurrentBoard()
	got := parsed.CurrentBoard()
	assert.True(t, got.Equal(&want), "got\n%v\nwant\n%v", &got, &want)
	assert.Equal(t, g.CurrentMoves(), parsed.CurrentMoves())
}
