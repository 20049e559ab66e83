package agf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"abalone-local/board"
)

// GameInfo holds metadata of a stored game.
type GameInfo struct {
	FilePath  string
	FileName  string
	Event     string
	White     string
	Black     string
	Date      string
	Result    string
	Layout    string
	MoveCount int
}

// ParseHeader reads a game file and summarises it.
func ParseHeader(filePath string) (*GameInfo, error) {
	g, err := ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return &GameInfo{
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		Event:     g.Attributes["Event"],
		White:     g.Attributes["White"],
		Black:     g.Attributes["Black"],
		Date:      g.Attributes["Date"],
		Result:    g.Attributes["Result"],
		Layout:    g.Attributes["Layout"],
		MoveCount: g.Length(),
	}, nil
}

// ReplayToEnd plays the main line of a stored game and returns the final
// position and the number of moves.
func ReplayToEnd(filePath string) (board.Board, int, error) {
	g, err := ReadFile(filePath)
	if err != nil {
		return board.Board{}, 0, err
	}
	n := 0
	for g.MoreMovesToRedo() {
		if err := g.RedoMainLine(); err != nil {
			return board.Board{}, 0, err
		}
		n++
	}
	return g.CurrentBoard(), n, nil
}

// ListGames scans a directory for .agf files and returns their headers,
// newest first (file names start with a timestamp).
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var games []GameInfo
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".agf") {
			continue
		}
		info, err := ParseHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		games = append(games, *info)
	}
	return games, nil
}
