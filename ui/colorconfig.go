package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"abalone-local/board"
	"abalone-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	sample    board.Board

	selectedBoardColor int
	selectedEmptyColor int
	editingEmpty       bool // true = editing empty cell color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Board background colors
var boardColors = []paletteEntry{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{172, "Brown"},
	{179, "Light Brown"},
	{180, "Tan"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{88, "Dark Red"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{244, "Medium Gray"},
	{250, "Light Gray"},
}

// Colors for the empty cell symbol
var emptyColors = []paletteEntry{
	{180, "Tan"},
	{223, "Peach"},
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{222, "Gold"},
	{214, "Orange Gold"},
	{188, "Light Beige"},
	{181, "Dusty Rose"},
	{109, "Steel Blue"},
	{245, "Dim Gray"},
	{250, "Gray"},
	{16, "True Black"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedEmptyColor: cfg.Theme.Colors.EmptyColor,
	}
	cc.sample.SetUp(board.BelgianDaisy)

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		list := cc.palette()
		if index < 0 || index >= len(list) {
			return
		}
		if cc.editingEmpty {
			cc.selectedEmptyColor = list[index].code
		} else {
			cc.selectedBoardColor = list[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.palette()) {
			return
		}
		if cc.editingEmpty {
			cc.cfg.Theme.Colors.EmptyColor = cc.selectedEmptyColor
			cc.cfg.Save()
			cc.editingEmpty = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []paletteEntry {
	if cc.editingEmpty {
		return emptyColors
	}
	return boardColors
}

// populateColorList fills the list for the color being edited.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	cc.colorList.SetTitle(" Board Color (Tab: empty cells) ")
	if cc.editingEmpty {
		current = cc.selectedEmptyColor
		cc.colorList.SetTitle(" Empty Cell Color (Tab: board) ")
	}
	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
		}
	}
}

// drawPreview draws the sample position with the colors under selection.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 24 || height < 13 {
		return x, y, width, height
	}
	bg := tcell.PaletteColor(cc.selectedBoardColor)
	symbols := cc.cfg.Theme.Symbols
	colors := cc.cfg.Theme.Colors

	left := x + 3
	top := y + 1
	for _, p := range board.AllPositions() {
		fg, r := tcell.PaletteColor(cc.selectedEmptyColor), symbols.EmptyCell
		switch cc.sample.At(p) {
		case board.White:
			fg, r = tcell.PaletteColor(colors.WhiteColor), symbols.WhiteMarble
		case board.Black:
			fg, r = tcell.PaletteColor(colors.BlackColor), symbols.BlackMarble
		}
		col := left + cellColumn(p)
		screen.SetContent(col, top+int(p.Y), r, nil, tcell.StyleDefault.Background(bg).Foreground(fg))
		if right := (board.Pos{X: p.X + 1, Y: p.Y}); right.Valid() {
			screen.SetContent(col+1, top+int(p.Y), ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}

	info := fmt.Sprintf("Board: %d  Empty: %d", cc.selectedBoardColor, cc.selectedEmptyColor)
	for i, ch := range info {
		if left+i < x+width-1 {
			screen.SetContent(left+i, top+10, ch, nil, tcell.StyleDefault)
		}
	}
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and empty cell color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingEmpty = !cc.editingEmpty
	cc.populateColorList()
}
