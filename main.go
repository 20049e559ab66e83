// abalone-local is a terminal application to play Abalone against a local
// engine. With -aep it runs the built-in engine on stdin/stdout instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"abalone-local/agf"
	"abalone-local/board"
	"abalone-local/config"
	"abalone-local/engine"
	"abalone-local/engine/aep"
	"abalone-local/engine/random"
	"abalone-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagAEP        = flag.Bool("aep", false, "Run the built-in engine on stdin/stdout")
	flagLayout     = flag.String("layout", "", "Start layout (standard, belgian-daisy, ...)")
	flagColor      = flag.String("color", "", "Player color (white or black)")
	flagMoveTime   = flag.Int("movetime", 0, "Engine time per move in milliseconds")
	flagLoad       = flag.String("load", "", "Continue the game recorded in an .agf file")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagHistory    = flag.Bool("history", false, "Open the game history browser")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.HexBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var history *ui.HistoryBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("abalone-local %s\n", Version)
		return
	}

	if err := loadInitFile(); err != nil {
		fmt.Fprintf(os.Stderr, "abalone-local: %s\n", err)
		os.Exit(1)
	}

	if *flagAEP {
		if err := runEngine(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "abalone-local: %s\n", err)
			os.Exit(1)
		}
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "abalone-local: %s\n", err)
		os.Exit(1)
	}

	if cfg.Engine.Path != "" {
		if err := checkEngine(cfg.Engine.Path); err != nil {
			fmt.Printf("Error: engine %q not found.\n", cfg.Engine.Path)
			fmt.Println("Fix engine.path in the config file or clear it to play the built-in engine.")
			return
		}
	}

	quickStart := *flagQuickStart || *flagLayout != "" || *flagColor != "" || *flagMoveTime > 0 || *flagLoad != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ abalone ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewHexBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleBoardKey)

	setupUI := ui.NewGameSetup(
		defaultGameConfig(),
		startGame,
		func() {
			app.Stop()
		},
		func() {
			history.Refresh()
			rootPage.SwitchToPage("history")
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			gameBoard.SetConfig(cfg)
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	history = ui.NewHistoryBrowser(config.HistoryDir(),
		func() {
			rootPage.SwitchToPage("setup")
		},
		func(path string) {
			gameCfg := setupUI.Config()
			gameCfg.LoadPath = path
			startGame(gameCfg)
		},
	)

	startPage := "setup"
	if *flagHistory {
		startPage = "history"
	}
	rootPage.AddPage("setup", setupUI.Form(), true, !quickStart && startPage == "setup")
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("history", history.Flex(), true, !quickStart && startPage == "history")
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		gameCfg, err := buildGameConfigFromFlags()
		if err != nil {
			fmt.Fprintf(os.Stderr, "abalone-local: %s\n", err)
			os.Exit(2)
		}
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

func handleBoardKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		gameBoard.MoveCursor(0, -1)
	case tcell.KeyDown:
		gameBoard.MoveCursor(0, 1)
	case tcell.KeyLeft:
		gameBoard.MoveCursor(-1, 0)
	case tcell.KeyRight:
		gameBoard.MoveCursor(1, 0)
	case tcell.KeyEnter:
		gameBoard.ToggleSelection()
	case tcell.KeyRune:
		r := event.Rune()
		if gameBoard.HandleDirectionKey(r) {
			return nil
		}
		switch r {
		case 'q':
			if len(gameBoard.Selection()) > 0 {
				gameBoard.ClearSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		case 'h':
			gameBoard.MoveCursor(-1, 0)
		case 'j':
			gameBoard.MoveCursor(0, 1)
		case 'k':
			gameBoard.MoveCursor(0, -1)
		case 'l':
			gameBoard.MoveCursor(1, 0)
		case ' ':
			gameBoard.ToggleSelection()
		case 'c':
			gameBoard.ClearSelection()
		case 'u':
			gameBoard.Undo()
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameCfg.HistoryDir = config.HistoryDir()

	layout := gameCfg.Layout
	if gameCfg.LoadPath != "" {
		if info, err := agf.ParseHeader(gameCfg.LoadPath); err == nil && info.Layout != "" {
			layout = info.Layout
		} else {
			layout = filepath.Base(gameCfg.LoadPath)
		}
	}
	gameBoard.SetLayoutName(layout)

	var eng engine.GameEngine
	if gameCfg.EnginePath != "" {
		eng = aep.NewClient(gameCfg)
	} else {
		eng = aep.NewLocalClient(gameCfg, random.New())
	}
	if err := gameBoard.ConnectEngine(eng); err != nil {
		eng.Close()
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// defaultGameConfig builds a GameConfig from the config file.
func defaultGameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	gameCfg.Layout = cfg.Engine.DefaultLayout
	if c, err := config.ParseColor(cfg.Engine.DefaultColor); err == nil {
		gameCfg.PlayerColor = c
	}
	if cfg.Engine.MoveTime > 0 {
		gameCfg.MoveTime = cfg.Engine.MoveTime
	}
	gameCfg.EnginePath = cfg.Engine.Path
	gameCfg.EngineArgs = cfg.Engine.Args
	return gameCfg
}

// buildGameConfigFromFlags overrides the configured defaults with
// command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := defaultGameConfig()

	if *flagLayout != "" {
		if _, err := board.Layout(*flagLayout); err != nil {
			return gameCfg, err
		}
		gameCfg.Layout = *flagLayout
	}

	if *flagColor != "" {
		c, err := config.ParseColor(*flagColor)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.PlayerColor = c
	}

	if *flagMoveTime > 0 {
		gameCfg.MoveTime = *flagMoveTime
	}

	gameCfg.LoadPath = *flagLoad
	return gameCfg, nil
}
