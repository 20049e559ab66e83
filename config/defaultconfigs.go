package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowCoordinates:          true,
		Colors: ConfigColors{
			BoardColor:        94,
			WhiteColor:        255,
			BlackColor:        232,
			EmptyColor:        180,
			CursorColorBG:     4,
			SelectedColorBG:   3,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			WhiteMarble: '●',
			BlackMarble: '●',
			EmptyCell:   '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Engine: EngineConfig{
			MoveTime:      1000,
			DefaultLayout: "standard",
			DefaultColor:  "white",
		},
	}
}
