package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abalone-local/board"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"control character symbol", func(c *Config) { c.Theme.Symbols.WhiteMarble = '\t' }},
		{"unknown layout", func(c *Config) { c.Engine.DefaultLayout = "hexagon" }},
		{"unknown color", func(c *Config) { c.Engine.DefaultColor = "red" }},
		{"negative move time", func(c *Config) { c.Engine.MoveTime = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig
			tt.modify(&c)
			var invalid *InvalidConfig
			require.ErrorAs(t, c.Validate(), &invalid)
		})
	}
}

func TestSaveAndReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	c := DefaultConfig
	c.Engine.Path = "/usr/local/bin/aba-pro"
	c.Engine.Args = []string{"--quiet"}
	c.Theme.Symbols.BlackMarble = 'x'
	require.NoError(t, saveCfgFile(path, &c, 0644))

	var back Config
	require.NoError(t, readCfgFile(path, &back))
	assert.Equal(t, c, back)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("b")
	require.NoError(t, err)
	assert.Equal(t, board.Black, c)
	c, err = ParseColor("white")
	require.NoError(t, err)
	assert.Equal(t, board.White, c)
	_, err = ParseColor("")
	assert.Error(t, err)
}
