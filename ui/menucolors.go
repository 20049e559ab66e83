package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the menu screens and the history preview.
var MenuColors = struct {
	CardBG      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	Accent      tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color

	PreviewEmpty tcell.Color
	PreviewWhite tcell.Color
	PreviewBlack tcell.Color
}{
	CardBG:      tcell.PaletteColor(236), // dark gray
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Accent:      tcell.PaletteColor(109), // steel blue
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),

	PreviewEmpty: tcell.PaletteColor(240),
	PreviewWhite: tcell.PaletteColor(255),
	PreviewBlack: tcell.PaletteColor(244),
}
