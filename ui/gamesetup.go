package ui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"abalone-local/board"
	"abalone-local/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form      *tview.Form
	flex      *tview.Flex
	onStart   func(engine.GameConfig)
	onCancel  func()
	onHistory func()
	onColors  func()

	config engine.GameConfig
}

var moveTimes = []int{250, 1000, 3000, 10000}

// NewGameSetup creates a new game setup form starting from defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onHistory func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		onHistory: onHistory,
		onColors:  onColors,
		config:    defaults,
	}

	layouts := board.LayoutNames()
	layoutIndex := max(slices.Index(layouts, defaults.Layout), 0)
	colors := []string{"White (play first)", "Black (play second)"}
	colorIndex := 0
	if defaults.PlayerColor == board.Black {
		colorIndex = 1
	}
	times := make([]string, len(moveTimes))
	timeIndex := 1
	for i, ms := range moveTimes {
		times[i] = strconv.Itoa(ms) + " ms"
		if ms == defaults.MoveTime {
			timeIndex = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Layout", layouts, layoutIndex, func(option string, index int) {
		setup.config.Layout = option
	})

	form.AddDropDown("Your Color", colors, colorIndex, func(option string, index int) {
		setup.config.PlayerColor = board.White
		if index == 1 {
			setup.config.PlayerColor = board.Black
		}
	})

	form.AddDropDown("Engine Time", times, timeIndex, func(option string, index int) {
		setup.config.MoveTime = moveTimes[index]
	})

	form.AddInputField("Engine", strings.Join(append([]string{defaults.EnginePath}, defaults.EngineArgs...), " "), 30, nil, func(text string) {
		fields := strings.Fields(text)
		setup.config.EnginePath, setup.config.EngineArgs = "", nil
		if len(fields) > 0 {
			setup.config.EnginePath = fields[0]
			setup.config.EngineArgs = fields[1:]
		}
	})

	form.AddButton("Start Game", func() {
		onStart(setup.config)
	})

	form.AddButton("History", func() {
		if onHistory != nil {
			onHistory()
		}
	})

	form.AddButton("Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Config returns the configuration chosen so far.
func (s *GameSetupUI) Config() engine.GameConfig {
	return s.config
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
