// Package random provides an engine that plays a uniformly random legal
// move. It is the built-in opponent and a reference for the protocol.
package random

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"abalone-local/board"
	"abalone-local/game"
	"abalone-local/trace"
)

var tr = trace.Register("random")

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the move choice reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithID overrides the name and author reported to the protocol.
func WithID(name, author string) Option {
	return func(e *Engine) {
		e.name = name
		e.author = author
	}
}

// Engine picks random moves. Only searchmoves restricts the choice; the
// other search parameters are accepted and ignored.
type Engine struct {
	name   string
	author string
	rng    *rand.Rand
	debug  bool

	game        *game.Game
	searchMoves []string
	stop        atomic.Bool
}

// New returns an engine seeded from the clock unless WithSeed is given.
func New(options ...Option) *Engine {
	e := &Engine{name: "random", author: "abalone-local"}
	for _, o := range options {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

func (e *Engine) SetGame(g *game.Game) {
	e.game = g
}

func (e *Engine) Name() string   { return e.name }
func (e *Engine) Author() string { return e.author }

func (e *Engine) SetDebug(on bool) {
	e.debug = on
}

func (e *Engine) StopSearch() {
	e.stop.Store(true)
}

func (e *Engine) ResetSearchParameters() {
	e.searchMoves = nil
	e.stop.Store(false)
}

func (e *Engine) SetSearchParameter(key, value string) {
	switch key {
	case "searchmoves":
		e.searchMoves = strings.Fields(value)
	case "movetime", "depth", "nodes":
		if _, err := strconv.Atoi(value); err != nil && value != "inf" {
			log := tr.Logger()
			log.Warn().Str("key", key).Str("value", value).Msg("not a number")
			return
		}
	}
	log := tr.Logger()
	log.Debug().Str("key", key).Str("value", value).Msg("search parameter")
}

// GetMove returns a random legal move of the current position, or
// board.NoMove when there is none.
func (e *Engine) GetMove(check func()) board.Move {
	if check != nil {
		check()
	}
	if e.game == nil {
		return board.NoMove
	}
	b := e.game.CurrentBoard()
	candidates := e.candidates(&b)
	if len(candidates) == 0 {
		return board.NoMove
	}
	m := candidates[e.rng.Intn(len(candidates))]
	b.ExtendTail(&m)

	log := tr.Logger()
	log.Debug().Int("candidates", len(candidates)).Str("move", m.FFTL()).Msg("chosen")
	return m
}

// candidates lists the legal moves, restricted to searchmoves when set.
func (e *Engine) candidates(b *board.Board) []board.Move {
	moves := b.Moves()
	if len(e.searchMoves) == 0 {
		return moves
	}

	allowed := make(map[board.Move]bool)
	for _, s := range e.searchMoves {
		m, err := board.ParseFFTL(b, s)
		if err != nil {
			log := tr.Logger()
			log.Warn().Str("move", s).Err(err).Msg("ignoring searchmoves entry")
			continue
		}
		allowed[normal(b, m)] = true
	}

	var out []board.Move
	for _, m := range moves {
		if allowed[normal(b, m)] {
			out = append(out, m)
		}
	}
	return out
}

// normal returns the form of m shared by every way of writing it.
func normal(b *board.Board, m board.Move) board.Move {
	b.ExtendTail(&m)
	return m.Canonical()
}
