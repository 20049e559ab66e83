// Package aep implements the Abalone Engine Protocol, a line based protocol
// between a user interface and an engine in the manner of UCI. Server drives
// an engine.Engine from protocol input; Client plays against an engine
// process from the user interface.
package aep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"abalone-local/board"
	"abalone-local/engine"
	"abalone-local/game"
	"abalone-local/trace"
)

// ErrBadPosition is returned by Play for a position command it cannot set
// up. Such input is a bug in the user interface, so the server stops.
var ErrBadPosition = errors.New("aep: invalid position")

var tr = trace.Register("aep")

// Server reads commands and writes replies for one engine.
type Server struct {
	engine engine.Engine
	out    io.Writer
	lines  <-chan string
	ctx    context.Context

	searching bool
	quit      bool
	err       error
}

// NewServer returns a server for e.
func NewServer(e engine.Engine) *Server {
	return &Server{engine: e}
}

// Play handles commands from r until quit, end of input or ctx is done.
func (s *Server) Play(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	var readErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr = scanner.Err()
	}()

	s.out = w
	s.lines = lines
	s.ctx = ctx
	s.quit = false
	s.err = nil

	for !s.quit && s.err == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return readErr
			}
			s.handle(line)
		}
	}
	return s.err
}

// check handles the commands that arrived during a search without blocking.
func (s *Server) check() {
	for s.err == nil && !s.quit {
		select {
		case <-s.ctx.Done():
			s.engine.StopSearch()
			return
		case line, ok := <-s.lines:
			if !ok {
				s.quit = true
				s.engine.StopSearch()
				return
			}
			s.handle(line)
		default:
			return
		}
	}
}

func (s *Server) reply(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Server) handle(line string) {
	log := tr.Logger()
	log.Debug().Str("line", line).Msg("command")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	args := fields[1:]
	switch fields[0] {
	case "aep":
		if name := s.engine.Name(); name != "" {
			s.reply("id name %s", name)
		}
		if author := s.engine.Author(); author != "" {
			s.reply("id author %s", author)
		}
		s.reply("readyok")
	case "debug":
		switch {
		case len(args) == 1 && args[0] == "on":
			s.engine.SetDebug(true)
		case len(args) == 1 && args[0] == "off":
			s.engine.SetDebug(false)
		default:
			log.Warn().Str("line", line).Msg("debug takes 'on' or 'off'")
		}
	case "isready":
		s.reply("readyok")
	case "setoption":
		log.Warn().Msg("command 'setoption' not implemented")
	case "position":
		if s.searching {
			log.Error().Msg("cannot set up a new position while searching")
			return
		}
		g, err := parsePosition(args)
		if err != nil {
			s.err = err
			return
		}
		s.engine.SetGame(g)
	case "go":
		s.goSearch(args)
	case "stop":
		s.engine.StopSearch()
	case "ponderhit":
		log.Warn().Msg("command 'ponderhit' not implemented")
	case "quit":
		s.quit = true
		s.engine.StopSearch()
	default:
		log.Warn().Str("line", line).Msg("unknown command")
	}
}

func (s *Server) goSearch(args []string) {
	log := tr.Logger()
	if s.searching {
		log.Error().Msg("cannot start a new search while searching")
		return
	}

	s.engine.ResetSearchParameters()
	next := func() string {
		if len(args) == 0 {
			return ""
		}
		t := args[0]
		args = args[1:]
		return t
	}
	for len(args) > 0 {
		switch cmd := next(); cmd {
		case "searchmoves":
			s.engine.SetSearchParameter(cmd, strings.Join(args, " "))
			args = nil
		case "ponder":
			s.engine.SetSearchParameter(cmd, "1")
		case "time", "inc":
			s.engine.SetSearchParameter(cmd+"1", next())
			s.engine.SetSearchParameter(cmd+"2", next())
		case "depth", "mate", "movetime", "nodes":
			s.engine.SetSearchParameter(cmd, next())
		case "infinite":
			s.engine.SetSearchParameter("movetime", "inf")
		default:
			log.Warn().Str("subcommand", cmd).Msg("unknown 'go' subcommand")
		}
	}

	s.searching = true
	m := s.engine.GetMove(s.check)
	s.searching = false
	if !m.Head.Valid() {
		s.reply("bestmove none")
		return
	}
	s.reply("bestmove %s", m.FFTL())
}

// parsePosition reads "abp <cells> [side] [moves m1 m2 ...]". Cells are the
// compact form of the position, split anywhere by spaces. Marbles missing
// from the 14 of each side count as pushed off.
func parsePosition(args []string) (*game.Game, error) {
	if len(args) == 0 || args[0] != "abp" {
		return nil, fmt.Errorf("%w: expected 'abp' in %q", ErrBadPosition, strings.Join(args, " "))
	}
	args = args[1:]

	var cells strings.Builder
	for len(args) > 0 && args[0] != "moves" {
		cells.WriteString(args[0])
		args = args[1:]
	}
	pos := cells.String()
	if len(pos) < board.Cells {
		return nil, fmt.Errorf("%w: %d cells, want %d", ErrBadPosition, len(pos), board.Cells)
	}
	side := pos[board.Cells:]
	if side == "" {
		side = "1"
	}

	var start board.Board
	if err := start.ReadString(pos[:board.Cells] + " " + side + " 1-0 2-0"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPosition, err)
	}
	for _, player := range []board.Cell{board.White, board.Black} {
		missing := board.StartMarbles - start.Marbles(player)
		if missing < 0 {
			return nil, fmt.Errorf("%w: %s has more than %d marbles", ErrBadPosition, player, board.StartMarbles)
		}
		start.SetScore(player.Opponent(), missing)
	}

	g := game.New(start)
	if len(args) > 0 {
		args = args[1:]
	}
	for i, s := range args {
		b := g.CurrentBoard()
		m, err := board.ParseFFTL(&b, s)
		if err == nil {
			err = g.DoMove(m)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: move #%d %q: %w", ErrBadPosition, i+1, s, err)
		}
	}
	return g, nil
}
