package aep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"abalone-local/agf"
	"abalone-local/board"
	"abalone-local/engine"
	"abalone-local/game"
	"abalone-local/trace"
	"abalone-local/types"
)

var clientTrace = trace.Register("aepclient")

// Client implements engine.GameEngine against an AEP engine, either a
// subprocess or an engine.Engine served in-process.
type Client struct {
	cmd    *exec.Cmd
	local  engine.Engine
	cancel context.CancelFunc
	served chan error
	stdin  io.WriteCloser
	stdout *bufio.Reader
	pipes  []io.Closer

	config      engine.GameConfig
	engineName  string
	game        *game.Game
	record      *agf.GameRecord
	boardState  *types.BoardState
	myTurn      bool
	gameOver    bool
	closed      bool
	playerColor board.Cell

	moveCallback func(m board.Move, color board.Cell, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

// NewClient creates a client that runs cfg.EnginePath.
func NewClient(cfg engine.GameConfig) *Client {
	return &Client{config: cfg, playerColor: cfg.PlayerColor}
}

// NewLocalClient creates a client for an engine running in this process.
func NewLocalClient(cfg engine.GameConfig, e engine.Engine) *Client {
	c := NewClient(cfg)
	c.local = e
	return c
}

// Connect starts the engine, sets up the start position and, when the engine
// moves first, asks it for a move.
func (c *Client) Connect() error {
	if err := c.start(); err != nil {
		return err
	}

	c.sendCommand("aep")
	for {
		line, err := c.readLine()
		if err != nil {
			return fmt.Errorf("engine handshake: %w", err)
		}
		if name, ok := strings.CutPrefix(line, "id name "); ok {
			c.engineName = name
		}
		if line == "readyok" {
			break
		}
	}
	if c.engineName == "" {
		c.engineName = "engine"
	}

	start, loaded, err := c.startPosition()
	if err != nil {
		return err
	}
	c.game = game.New(start)
	if c.config.HistoryDir != "" {
		white, black := "Player", c.engineName
		if c.playerColor == board.Black {
			white, black = black, white
		}
		c.record, err = agf.NewGameRecord(c.config.HistoryDir, start, white, black)
		if err != nil {
			return err
		}
		if c.config.Layout != "" {
			c.record.SetTag("Layout", c.config.Layout)
		}
	}
	for _, m := range loaded {
		if err := c.game.DoMove(m); err != nil {
			return fmt.Errorf("replay loaded game: %w", err)
		}
		if c.record != nil {
			c.record.AddMove(m)
		}
	}
	c.boardState = c.snapshot()
	c.checkGameEnd()

	cur := c.game.CurrentBoard()
	c.myTurn = cur.SideToMove() == c.playerColor
	if !c.myTurn && !c.gameOver {
		go c.triggerEngineMove()
	}
	return nil
}

// start launches the engine and connects the pipes.
func (c *Client) start() error {
	if c.local != nil {
		toEngine, engineIn := io.Pipe()
		engineOut, fromEngine := io.Pipe()
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.served = make(chan error, 1)
		go func() {
			err := NewServer(c.local).Play(ctx, toEngine, fromEngine)
			toEngine.Close()
			fromEngine.Close()
			c.served <- err
		}()
		c.stdin = engineIn
		c.stdout = bufio.NewReader(engineOut)
		c.pipes = []io.Closer{engineOut}
		return nil
	}

	c.cmd = exec.Command(c.config.EnginePath, c.config.EngineArgs...)
	var err error
	c.stdin, err = c.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	stdout, err := c.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	c.stdout = bufio.NewReader(stdout)
	c.cmd.Stderr = nil

	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start engine %s: %w", c.config.EnginePath, err)
	}
	return nil
}

// startPosition returns the configured layout, or the start position and
// main line of the game to continue.
func (c *Client) startPosition() (board.Board, []board.Move, error) {
	if c.config.LoadPath != "" {
		g, err := agf.ReadFile(c.config.LoadPath)
		if err != nil {
			return board.Board{}, nil, err
		}
		for g.MoreMovesToRedo() {
			g.RedoMainLine()
		}
		return g.StartBoard(), g.CurrentMoves(), nil
	}

	layout := c.config.Layout
	if layout == "" {
		layout = "standard"
	}
	grid, err := board.Layout(layout)
	if err != nil {
		return board.Board{}, nil, err
	}
	return board.NewBoard(grid), nil, nil
}

func (c *Client) sendCommand(cmd string) error {
	log := clientTrace.Logger()
	log.Debug().Str("cmd", cmd).Msg("send")
	if _, err := fmt.Fprintf(c.stdin, "%s\n", cmd); err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	return nil
}

func (c *Client) readLine() (string, error) {
	line, err := c.stdout.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	log := clientTrace.Logger()
	log.Debug().Str("line", line).Msg("recv")
	return line, nil
}

// GetBoardState returns the current board state.
func (c *Client) GetBoardState() *types.BoardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boardState
}

// PlayMove plays a move of the human player and starts the engine's reply.
func (c *Client) PlayMove(m board.Move) error {
	c.mu.Lock()

	if c.gameOver {
		c.mu.Unlock()
		return fmt.Errorf("game is over")
	}
	if !c.myTurn {
		c.mu.Unlock()
		return fmt.Errorf("not your turn")
	}

	played, err := c.play(m)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("illegal move: %w", err)
	}
	c.myTurn = false
	stateCopy := c.boardState.Copy()
	over := c.gameOver
	outcome := c.boardState.Outcome
	c.mu.Unlock()

	// Notify outside the lock, callbacks may query the engine.
	if c.moveCallback != nil {
		c.moveCallback(played, c.playerColor, stateCopy)
	}
	if over {
		c.notifyEnd(outcome)
		return nil
	}

	go c.triggerEngineMove()
	return nil
}

// play applies m to the game and the record. Must be called with the lock
// held.
func (c *Client) play(m board.Move) (board.Move, error) {
	if err := c.game.DoMove(m); err != nil {
		return board.NoMove, err
	}
	played := c.game.PrevMove()
	if c.record != nil {
		if err := c.record.AddMove(played); err != nil {
			log := clientTrace.Logger()
			log.Error().Err(err).Msg("record move")
		}
	}
	c.boardState = c.snapshot()
	c.checkGameEnd()
	return played, nil
}

// triggerEngineMove asks the engine for a move and plays it.
func (c *Client) triggerEngineMove() {
	c.mu.Lock()
	if c.gameOver || c.closed {
		c.mu.Unlock()
		return
	}
	start := c.game.StartBoard()
	position := "position abp " + agf.APF(&start)
	if moves := agf.MoveList(c.game); len(moves) > 0 {
		position += " moves " + strings.Join(moves, " ")
	}
	search := "go"
	if c.config.MoveTime > 0 {
		search = fmt.Sprintf("go movetime %d", c.config.MoveTime)
	}
	c.mu.Unlock()

	reply, err := c.exchange(position, search)
	log := clientTrace.Logger()
	if err != nil {
		log.Error().Err(err).Msg("engine move")
		c.endWith("Engine failed: " + err.Error())
		return
	}

	c.mu.Lock()
	if c.gameOver {
		c.mu.Unlock()
		return
	}
	engineColor := c.playerColor.Opponent()
	if reply == "none" {
		c.mu.Unlock()
		c.endWith(fmt.Sprintf("%s wins, %s has no move", capitalize(c.playerColor), engineColor))
		return
	}
	cur := c.game.CurrentBoard()
	m, err := board.ParseFFTL(&cur, reply)
	var played board.Move
	if err == nil {
		played, err = c.play(m)
	}
	if err != nil {
		c.mu.Unlock()
		log.Error().Err(err).Str("move", reply).Msg("engine played an illegal move")
		c.endWith(fmt.Sprintf("%s wins, engine played illegal move %s", capitalize(c.playerColor), reply))
		return
	}
	c.myTurn = true
	stateCopy := c.boardState.Copy()
	over := c.gameOver
	outcome := c.boardState.Outcome
	c.mu.Unlock()

	if c.moveCallback != nil {
		c.moveCallback(played, engineColor, stateCopy)
	}
	if over {
		c.notifyEnd(outcome)
	}
}

// exchange sends the position and search commands and waits for bestmove.
func (c *Client) exchange(position, search string) (string, error) {
	if err := c.sendCommand(position); err != nil {
		return "", err
	}
	if err := c.sendCommand(search); err != nil {
		return "", err
	}
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if move, ok := strings.CutPrefix(line, "bestmove "); ok {
			return strings.TrimSpace(move), nil
		}
	}
}

// checkGameEnd ends the game when a player has pushed off six marbles. Must
// be called with the lock held.
func (c *Client) checkGameEnd() {
	cur := c.game.CurrentBoard()
	for _, player := range []board.Cell{board.White, board.Black} {
		if cur.Score(player) >= engine.WinningScore {
			c.finish(fmt.Sprintf("%s wins by pushing off %d marbles", capitalize(player), cur.Score(player)))
			return
		}
	}
}

func (c *Client) finish(outcome string) {
	c.gameOver = true
	c.boardState.Phase = "finished"
	c.boardState.Outcome = outcome
	if c.record != nil {
		c.record.SetResult(outcome)
	}
}

// endWith finishes the game outside a move and notifies the callback.
func (c *Client) endWith(outcome string) {
	c.mu.Lock()
	if c.gameOver {
		c.mu.Unlock()
		return
	}
	c.finish(outcome)
	c.mu.Unlock()
	c.notifyEnd(outcome)
}

func (c *Client) notifyEnd(outcome string) {
	if c.endCallback != nil {
		c.endCallback(outcome)
	}
}

// snapshot builds the board state of the current position. Must be called
// with the lock held.
func (c *Client) snapshot() *types.BoardState {
	cur := c.game.CurrentBoard()
	s := types.NewBoardState(&cur, c.game.CurrentBoardNumber())
	if c.game.MoreMovesToUndo() {
		s.SetLastMove(c.game.PrevMove())
	}
	s.Moves = agf.MoveList(c.game)
	return s
}

// IsMyTurn returns true if it's the human player's turn.
func (c *Client) IsMyTurn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.myTurn && !c.gameOver
}

// GetPlayerColor returns the human player's color.
func (c *Client) GetPlayerColor() board.Cell {
	return c.playerColor
}

// OnMove registers a callback for when a move is played.
func (c *Client) OnMove(callback func(m board.Move, color board.Cell, boardState *types.BoardState)) {
	c.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (c *Client) OnGameEnd(callback func(outcome string)) {
	c.endCallback = callback
}

// Undo takes back the engine's last move and the player's move before it.
func (c *Client) Undo() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gameOver {
		return fmt.Errorf("game is over")
	}
	if !c.myTurn {
		return fmt.Errorf("not your turn")
	}
	if c.game.CurrentBoardNumber() < 2 {
		return fmt.Errorf("nothing to undo")
	}
	c.game.UndoMove()
	c.game.UndoMove()
	if c.record != nil {
		if err := c.record.UndoMoves(2); err != nil {
			return err
		}
	}
	c.boardState = c.snapshot()
	return nil
}

// Game returns a copy of the game played so far.
func (c *Client) Game() *game.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Clone()
}

// Close shuts down the engine and closes the record.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	if c.stdin != nil {
		c.sendCommand("quit")
		c.stdin.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
	if c.local != nil && c.served != nil {
		c.cancel()
		for _, p := range c.pipes {
			p.Close()
		}
		<-c.served
	}
	c.mu.Lock()
	if c.record != nil {
		c.record.Close()
		c.record = nil
	}
	c.mu.Unlock()
}

func capitalize(c board.Cell) string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
