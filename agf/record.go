package agf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"abalone-local/board"
	"abalone-local/game"
)

// GameRecord tracks a game in progress and rewrites its file after every
// change, so an interrupted game is never lost.
type GameRecord struct {
	FilePath string
	game     *game.Game
	file     *os.File
}

// NewGameRecord creates a timestamped .agf file in dir for a game from start.
func NewGameRecord(dir string, start board.Board, white, black string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	path := filepath.Join(dir, now.Format("2006-01-02_150405")+".agf")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create agf file: %w", err)
	}

	g := game.New(start)
	g.Attributes["Event"] = "Casual game"
	g.Attributes["Site"] = "abalone-local"
	g.Attributes["Date"] = now.Format("2006.01.02")
	g.Attributes["Round"] = "-"
	g.Attributes["White"] = white
	g.Attributes["Black"] = black
	g.Attributes["Result"] = "*"

	rec := &GameRecord{FilePath: path, game: g, file: f}
	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}
	return rec, nil
}

// Game returns the recorded game.
func (r *GameRecord) Game() *game.Game {
	return r.game
}

// SetTag sets a tag pair such as "Layout".
func (r *GameRecord) SetTag(key, value string) error {
	r.game.Attributes[key] = value
	return r.flush()
}

// AddMove plays m on the recorded game.
func (r *GameRecord) AddMove(m board.Move) error {
	if err := r.game.DoMove(m); err != nil {
		return err
	}
	return r.flush()
}

// UndoMoves removes the last n moves. Undone moves are dropped from the file
// rather than kept as a variation.
func (r *GameRecord) UndoMoves(n int) error {
	moves := r.game.CurrentMoves()
	if n > len(moves) {
		n = len(moves)
	}
	g := game.New(r.game.StartBoard())
	g.Attributes = r.game.Attributes
	for _, m := range moves[:len(moves)-n] {
		if err := g.DoMove(m); err != nil {
			return fmt.Errorf("replay %v: %w", m, err)
		}
	}
	r.game = g
	return r.flush()
}

// SetResult records the outcome. It accepts "1-0", "0-1", "*" and phrases
// such as "White wins by pushing off 6 marbles".
func (r *GameRecord) SetResult(outcome string) error {
	r.game.Attributes["Result"] = parseResult(outcome)
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// flush rewrites the complete file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}
	var buf bytes.Buffer
	if err := Write(&buf, r.game); err != nil {
		return err
	}
	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.Write(buf.Bytes()); err != nil {
		return err
	}
	return r.file.Sync()
}

// parseResult converts an outcome to a Result tag value: "1-0" when white
// wins, "0-1" when black wins and "*" otherwise.
func parseResult(outcome string) string {
	o := strings.TrimSpace(outcome)
	switch o {
	case "1-0", "0-1", "*":
		return o
	}

	low := strings.ToLower(o)
	switch {
	case strings.HasPrefix(low, "white wins"), strings.HasPrefix(low, "w+"):
		return "1-0"
	case strings.HasPrefix(low, "black wins"), strings.HasPrefix(low, "b+"):
		return "0-1"
	}
	return "*"
}
