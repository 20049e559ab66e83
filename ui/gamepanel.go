package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"abalone-local/engine"
	"abalone-local/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	layout     string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:    tview.NewTextView(),
		layout: "standard",
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetLayoutName sets the start layout for display.
func (p *GameInfoPanel) SetLayoutName(name string) {
	p.layout = name
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.boardState == nil {
		return ""
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Layout:[-:-:-] %s\n", p.layout)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.boardState.MoveNumber)
	text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", p.boardState.PlayerToMove)
	text += fmt.Sprintf("[white]Off:[-:-:-] W %d/%d  B %d/%d\n",
		p.boardState.WhiteOff, engine.WinningScore, p.boardState.BlackOff, engine.WinningScore)

	moves := p.boardState.Moves
	if len(moves) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	// Show last N moves that fit, with scroll
	maxVisible := 12
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		side := "[white]W[-]"
		if i%2 == 1 {
			side = "[dimgray]B[-]"
		}
		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, side, moves[i])
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *HexBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *HexBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	if board.infoPanel != nil {
		infoPanel.layout = board.infoPanel.layout
	}
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *HexBoardUI) {
	gameFrame.Clear()

	boardWidth, boardHeight := 22, 11

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
