package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"abalone-local/board"
)

var (
	cfgFile    = "abalone-local/config.json"
	historyDir = "abalone-local/history"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	WhiteColor        int `json:"white"`
	BlackColor        int `json:"black"`
	EmptyColor        int `json:"empty"`
	CursorColorBG     int `json:"cursor_bg"`
	SelectedColorBG   int `json:"selected_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	WhiteMarble rune `json:"white"`
	BlackMarble rune `json:"black"`
	EmptyCell   rune `json:"empty"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowCoordinates          bool          `json:"show_coordinates"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// EngineConfig holds the opponent settings. An empty Path plays against the
// built-in random engine.
type EngineConfig struct {
	Path          string   `json:"path"`
	Args          []string `json:"args"`
	MoveTime      int      `json:"move_time_ms"`
	DefaultLayout string   `json:"default_layout"`
	DefaultColor  string   `json:"default_color"`
}

type Config struct {
	Theme  Theme        `json:"theme"`
	Engine EngineConfig `json:"engine"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, &InvalidConfig{fmt.Sprintf("%s: %v", absPath, err)}
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.WhiteMarble, c.Theme.Symbols.BlackMarble, c.Theme.Symbols.EmptyCell} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := board.Layout(c.Engine.DefaultLayout); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := ParseColor(c.Engine.DefaultColor); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Engine.MoveTime < 0 {
		return &InvalidConfig{"move time must not be negative"}
	}
	return nil
}

// ParseColor converts "white"/"w" or "black"/"b" to a player.
func ParseColor(s string) (board.Cell, error) {
	switch s {
	case "white", "w":
		return board.White, nil
	case "black", "b":
		return board.Black, nil
	}
	return board.Empty, fmt.Errorf("unknown color %q", s)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the directory games are recorded in.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, historyDir)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, a)
}
