// Package engine defines the interfaces between the user interface, the
// engine protocol and the engines that choose moves.
package engine

import (
	"abalone-local/board"
	"abalone-local/game"
	"abalone-local/types"
)

// Engine is driven by the protocol server. GetMove must call check regularly
// while it searches; check may call StopSearch.
type Engine interface {
	// SetGame sets up the position to search and the moves leading to it.
	SetGame(g *game.Game)

	Name() string
	Author() string

	// SetDebug turns the engine's own debug output on or off.
	SetDebug(on bool)

	// GetMove searches the current position and returns the move to play.
	GetMove(check func()) board.Move

	// StopSearch asks a running search to return as soon as possible.
	StopSearch()

	// ResetSearchParameters clears the parameters of the previous search.
	ResetSearchParameters()

	// SetSearchParameter sets one "go" parameter such as movetime or
	// searchmoves.
	SetSearchParameter(key, value string)
}

// GameEngine defines the interface for playing against an engine from the
// user interface.
type GameEngine interface {
	// Connect starts the engine and initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays a move of the human player.
	// Returns an error if the move is illegal.
	PlayMove(m board.Move) error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's color.
	GetPlayerColor() board.Cell

	// OnMove registers a callback for when a move is played (by either player).
	OnMove(func(m board.Move, color board.Cell, boardState *types.BoardState))

	// Undo takes back the last move of each player so it is the human's turn
	// again.
	Undo() error

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Layout      string     // name of a start layout, see board.LayoutNames
	PlayerColor board.Cell // board.White moves first
	MoveTime    int        // engine thinking time in milliseconds
	EnginePath  string     // AEP engine binary; empty runs this program with -aep
	EngineArgs  []string
	HistoryDir  string // where games are recorded, empty disables recording
	LoadPath    string // continue the main line of a recorded game
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Layout:      "standard",
		PlayerColor: board.White,
		MoveTime:    1000,
	}
}

// WinningScore is the number of marbles a player must push off to win.
const WinningScore = 6
