package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"abalone-local/agf"
	"abalone-local/board"
)

// HistoryBrowserUI provides a screen for browsing recorded games.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	games    []agf.GameInfo
	boards   map[int]board.Board // cached final positions
	selected int
	onDone   func()
	onResume func(path string)
}

// NewHistoryBrowser creates a history browser for the games in dir. onResume
// continues the selected game; it may be nil.
func NewHistoryBrowser(dir string, onDone func(), onResume func(path string)) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		dir:      dir,
		onDone:   onDone,
		onResume: onResume,
		boards:   make(map[int]board.Board),
	}

	hb.gameList = tview.NewList()
	hb.gameList.SetBorder(true)
	hb.gameList.SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false)
	hb.gameList.SetHighlightFullLine(true)
	hb.gameList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.gameList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Preview ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]⏎[-] resume  [dimgray]d[-] delete  [dimgray]q[-] back")

	hb.gameList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})
	hb.gameList.SetInputCapture(hb.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.gameList, 38, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadGames()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.boards = make(map[int]board.Board)
	hb.loadGames()
}

func (hb *HistoryBrowserUI) loadGames() {
	hb.gameList.Clear()
	hb.games = nil
	hb.selected = 0

	games, err := agf.ListGames(hb.dir)
	if err != nil || len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games found[-]", "", 0, nil)
		return
	}

	hb.games = games
	for _, g := range games {
		hb.gameList.AddItem(gameLabel(g), "", 0, nil)
	}
}

func gameLabel(g agf.GameInfo) string {
	result := g.Result
	if result == "" || result == "*" {
		result = "..."
	}
	return fmt.Sprintf("%s  %-13s %s", g.Date, g.Layout, result)
}

func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyEnter:
		if hb.onResume != nil && hb.selected >= 0 && hb.selected < len(hb.games) {
			hb.onResume(hb.games[hb.selected].FilePath)
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case 'd':
			hb.deleteSelected()
			return nil
		}
	}
	return event
}

// deleteSelected removes the currently selected game file.
func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}
	os.Remove(hb.games[hb.selected].FilePath)
	hb.Refresh()
}

// drawPreview renders a mini board of the final position and the game tags.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return x, y, width, height
	}
	info := hb.games[hb.selected]

	final, ok := hb.boards[hb.selected]
	if !ok {
		b, _, err := agf.ReplayToEnd(info.FilePath)
		if err != nil {
			return x, y, width, height
		}
		final = b
		hb.boards[hb.selected] = final
	}

	startX := x + 2
	startY := y + 1
	if width < 22 || height < 16 {
		return x, y, width, height
	}

	emptyStyle := tcell.StyleDefault.Foreground(MenuColors.PreviewEmpty)
	whiteStyle := tcell.StyleDefault.Foreground(MenuColors.PreviewWhite).Bold(true)
	blackStyle := tcell.StyleDefault.Foreground(MenuColors.PreviewBlack)
	for _, p := range board.AllPositions() {
		ch, style := '·', emptyStyle
		switch final.At(p) {
		case board.White:
			ch, style = '○', whiteStyle
		case board.Black:
			ch, style = '●', blackStyle
		}
		screen.SetContent(startX+cellColumn(p), startY+int(p.Y), ch, nil, style)
	}

	infoY := startY + 10
	infoStyle := tcell.StyleDefault.Foreground(MenuColors.Label)
	dimStyle := tcell.StyleDefault.Foreground(MenuColors.Hint)

	drawText(screen, startX, infoY, info.Layout, infoStyle)
	drawText(screen, startX+len(info.Layout)+1, infoY, fmt.Sprintf("| %d moves", info.MoveCount), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("W: %s", info.White), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("B: %s", info.Black), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("Off: W %d  B %d", final.WhiteOff(), final.BlackOff()), dimStyle)

	infoY++
	result := info.Result
	if result == "" || result == "*" {
		result = "Unfinished"
	}
	resultStyle := tcell.StyleDefault.Foreground(MenuColors.Accent)
	drawText(screen, startX, infoY, fmt.Sprintf("Result: %s", result), resultStyle)

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
