// Package ui specifies custom controls for tview to play Abalone in the
// terminal.
package ui

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"abalone-local/board"
	"abalone-local/config"
	"abalone-local/engine"
	"abalone-local/types"
)

// Keys on the numeric keypad layout that push the selection in a direction.
var directionKeys = map[rune]board.Direction{
	'6': board.East,
	'3': board.SouthEast,
	'1': board.SouthWest,
	'4': board.West,
	'7': board.NorthWest,
	'9': board.NorthEast,
}

type HexBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	cursor     board.Pos
	selection  []board.Pos
	lastError  string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *HexBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *HexBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *HexBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// Cursor returns the cell under the cursor, or board.NoPos.
func (g *HexBoardUI) Cursor() board.Pos {
	return g.cursor
}

// Selection returns the marbles chosen to move.
func (g *HexBoardUI) Selection() []board.Pos {
	return g.selection
}

// MoveCursor moves the cursor one cell. Vertical moves prefer the left
// neighbour going up and the right neighbour going down.
func (g *HexBoardUI) MoveCursor(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if !g.cursor.Valid() {
		g.cursor = board.Pos{X: 4, Y: 4}
		if len(g.BoardState.LastMove) > 0 {
			g.cursor = g.BoardState.LastMove[0]
		}
		return
	}
	var candidates []board.Direction
	switch {
	case h < 0:
		candidates = []board.Direction{board.West}
	case h > 0:
		candidates = []board.Direction{board.East}
	case v < 0:
		candidates = []board.Direction{board.NorthWest, board.NorthEast}
	case v > 0:
		candidates = []board.Direction{board.SouthEast, board.SouthWest}
	}
	for _, d := range candidates {
		if next := g.cursor.Neighbour(d); next.Valid() {
			g.cursor = next
			return
		}
	}
}

// ResetSelection hides the cursor and drops the selected marbles.
func (g *HexBoardUI) ResetSelection() {
	g.cursor = board.NoPos
	g.selection = nil
}

// ClearSelection drops the selected marbles and keeps the cursor.
func (g *HexBoardUI) ClearSelection() {
	g.selection = nil
	g.lastError = ""
	g.refreshHint()
}

// ToggleSelection adds or removes the marble under the cursor. Selections
// that are not a line of up to three own marbles start over.
func (g *HexBoardUI) ToggleSelection() {
	p := g.cursor
	if !p.Valid() || g.eng == nil || g.BoardState.At(p) != g.eng.GetPlayerColor() {
		return
	}
	if i := slices.Index(g.selection, p); i >= 0 {
		g.selection = slices.Delete(g.selection, i, i+1)
		if !isLine(g.selection) {
			g.selection = nil
		}
		return
	}
	sel := append(slices.Clone(g.selection), p)
	slices.SortFunc(sel, comparePos)
	if !isLine(sel) {
		sel = []board.Pos{p}
	}
	g.selection = sel
}

func comparePos(a, b board.Pos) int {
	if a.Y != b.Y {
		return int(a.Y) - int(b.Y)
	}
	return int(a.X) - int(b.X)
}

// isLine reports whether sorted cells form a straight line of adjacent cells.
func isLine(cells []board.Pos) bool {
	switch len(cells) {
	case 0:
		return true
	case 1:
		return true
	case 2, 3:
		first, last := cells[0], cells[len(cells)-1]
		if board.Dist(first, last) != len(cells)-1 {
			return false
		}
		d := first.DirectionTo(last)
		return len(cells) == 2 || cells[1] == first.Neighbour(d)
	}
	return false
}

// selectionMove builds the move of the selected marbles in direction d.
func selectionMove(sel []board.Pos, d board.Direction) (board.Move, bool) {
	switch len(sel) {
	case 0:
		return board.NoMove, false
	case 1:
		return board.NewMove(sel[0], sel[0].Neighbour(d)), true
	}
	first, last := sel[0], sel[len(sel)-1]
	if board.Parallel(d, first.DirectionTo(last)) {
		back, front := first, last
		if first.DirectionTo(last) != d {
			back, front = last, first
		}
		return board.NewLineMove(back, front, back.Neighbour(d)), true
	}
	return board.NewLineMove(first, last, first.Neighbour(d)), true
}

func NewHexBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *HexBoardUI {
	hexBoard := &HexBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		cursor:     board.NoPos,
	}
	hexBoard.SetConfig(c)
	hexBoard.Box.SetDrawFunc(hexBoard.draw)
	return hexBoard
}

// cellColumn returns the screen column of p. Rows shift by half a cell so
// the grid reads as a hexagon.
func cellColumn(p board.Pos) int {
	return 2*int(p.X) + int(p.Y) - 4
}

func (g *HexBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil {
		return x, y, 1, 1
	}
	left := x + 3
	theme := g.cfg.Theme

	for _, p := range board.AllPositions() {
		cell := state.At(p)
		bg := g.styles[0]
		fg := g.styles[3]
		r := theme.Symbols.EmptyCell
		switch cell {
		case board.White:
			fg, r = g.styles[1], theme.Symbols.WhiteMarble
		case board.Black:
			fg, r = g.styles[2], theme.Symbols.BlackMarble
		}
		switch {
		case p == g.cursor && theme.DrawCursorBackground:
			bg = g.styles[4]
		case slices.Contains(g.selection, p):
			bg = g.styles[5]
		case state.IsLastMove(p) && theme.DrawLastPlayedBackground:
			bg = g.styles[6]
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg)
		col := left + cellColumn(p)
		screen.SetContent(col, y+int(p.Y), r, nil, style)
		if right := (board.Pos{X: p.X + 1, Y: p.Y}); right.Valid() {
			screen.SetContent(col+1, y+int(p.Y), ' ', nil, tcell.StyleDefault.Background(g.styles[0]))
		}
	}
	if theme.ShowCoordinates {
		drawCoordinates(screen, left, y)
	}
	return x, y, 22, 11
}

// drawCoordinates labels rows a..i on the left and columns 1..9 past the
// lower edges.
func drawCoordinates(s tcell.Screen, left, top int) {
	style := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	for y := int8(0); y <= 8; y++ {
		xmin := int8(0)
		if y < 4 {
			xmin = 4 - y
		}
		col := left + cellColumn(board.Pos{X: xmin, Y: y}) - 2
		s.SetContent(col, top+int(y), rune('i'-y), nil, style)
	}
	for x := int8(0); x <= 8; x++ {
		p := board.Pos{X: x, Y: 9}
		if x > 4 {
			p.Y = 13 - x
		}
		s.SetContent(left+cellColumn(p), top+int(p.Y), rune('1'+x), nil, style)
	}
}

// ConnectEngine connects the board to a game engine.
func (g *HexBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.selection = nil
	g.lastError = ""

	e.OnMove(func(m board.Move, color board.Cell, boardState *types.BoardState) {
		g.BoardState = boardState
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PushSelection moves the selected marbles in direction d.
func (g *HexBoardUI) PushSelection(d board.Direction) {
	if g.finished || g.eng == nil || !g.eng.IsMyTurn() {
		return
	}
	m, ok := selectionMove(g.selection, d)
	if !ok {
		return
	}
	if err := g.eng.PlayMove(m); err != nil {
		g.lastError = err.Error()
		g.refreshHint()
		return
	}
	g.selection = nil
	g.lastError = ""
	g.cursor = m.ToFirst()
}

// HandleDirectionKey pushes the selection for a keypad digit. It reports
// whether r is a direction key.
func (g *HexBoardUI) HandleDirectionKey(r rune) bool {
	d, ok := directionKeys[r]
	if ok {
		g.PushSelection(d)
	}
	return ok
}

// Undo takes back the last pair of moves.
func (g *HexBoardUI) Undo() {
	if g.finished || g.eng == nil {
		return
	}
	if err := g.eng.Undo(); err != nil {
		g.lastError = err.Error()
	} else {
		g.BoardState = g.eng.GetBoardState()
		g.selection = nil
		g.lastError = ""
	}
	g.refreshHint()
}

// Close disconnects the engine.
func (g *HexBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *HexBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.EmptyColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 4
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG),   // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
	}
	g.cfg = c
}

// SetLayoutName shows the start layout on the info panel.
func (g *HexBoardUI) SetLayoutName(name string) {
	if g.infoPanel != nil {
		g.infoPanel.SetLayoutName(name)
	}
}

func (g *HexBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		if g.lastError != "" {
			statusLine = fmt.Sprintf("  ✗ %s\n", g.lastError)
		}

		if g.eng != nil && g.eng.IsMyTurn() {
			turnLine = fmt.Sprintf("  ● Your move (%s)\n", g.eng.GetPlayerColor())
		} else {
			turnLine = "  ◌ Thinking...\n"
		}

		controlsLine = `
  hjkl/↑↓←→ cursor   space select   7 9 4 6 1 3 push
  c clear   u undo   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *HexBoardUI) IsFinished() bool {
	return g.finished
}
