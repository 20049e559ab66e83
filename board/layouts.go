package board

import (
	"fmt"
	"sort"
	"strings"
)

// Grid is a 9x9 starting layout indexed as Grid[y][x]. Cells off the hexagon
// are ignored.
type Grid [9][9]Cell

var (
	Standard = Grid{
		{0, 0, 0, 0, 2, 2, 2, 2, 2},
		{0, 0, 0, 2, 2, 2, 2, 2, 2},
		{0, 0, 0, 0, 2, 2, 2, 0, 0},
		{},
		{},
		{},
		{0, 0, 1, 1, 1, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 0, 0, 0},
	}

	BelgianDaisy = Grid{
		{0, 0, 0, 0, 2, 2, 0, 1, 1},
		{0, 0, 0, 2, 2, 2, 1, 1, 1},
		{0, 0, 0, 2, 2, 0, 1, 1, 0},
		{},
		{},
		{},
		{0, 1, 1, 0, 2, 2, 0, 0, 0},
		{1, 1, 1, 2, 2, 2, 0, 0, 0},
		{1, 1, 0, 2, 2, 0, 0, 0, 0},
	}

	GermanDaisy = Grid{
		{},
		{0, 0, 0, 2, 2, 0, 0, 1, 1},
		{0, 0, 2, 2, 2, 0, 1, 1, 1},
		{0, 0, 2, 2, 0, 0, 1, 1, 0},
		{},
		{0, 1, 1, 0, 0, 2, 2, 0, 0},
		{1, 1, 1, 0, 2, 2, 2, 0, 0},
		{1, 1, 0, 0, 2, 2, 0, 0, 0},
		{},
	}

	SwissDaisy = Grid{
		{},
		{0, 0, 0, 2, 2, 0, 0, 1, 1},
		{0, 0, 2, 1, 2, 0, 1, 2, 1},
		{0, 0, 2, 2, 0, 0, 1, 1, 0},
		{},
		{0, 1, 1, 0, 0, 2, 2, 0, 0},
		{1, 2, 1, 0, 2, 1, 2, 0, 0},
		{1, 1, 0, 0, 2, 2, 0, 0, 0},
		{},
	}

	DutchDaisy = Grid{
		{0, 0, 0, 0, 2, 2, 0, 1, 1},
		{0, 0, 0, 2, 1, 2, 1, 2, 1},
		{0, 0, 0, 2, 2, 0, 1, 1, 0},
		{},
		{},
		{},
		{0, 1, 1, 0, 2, 2, 0, 0, 0},
		{1, 2, 1, 2, 1, 2, 0, 0, 0},
		{1, 1, 0, 2, 2, 0, 0, 0, 0},
	}

	TheWall = Grid{
		{0, 0, 0, 0, 0, 0, 2, 0, 0},
		{},
		{0, 0, 0, 2, 2, 2, 2, 2, 0},
		{0, 2, 2, 2, 2, 2, 2, 2, 2},
		{},
		{1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 0, 0, 0},
		{},
		{0, 0, 1, 0, 0, 0, 0, 0, 0},
	}
)

var layouts = map[string]Grid{
	"standard":      Standard,
	"belgian-daisy": BelgianDaisy,
	"german-daisy":  GermanDaisy,
	"swiss-daisy":   SwissDaisy,
	"dutch-daisy":   DutchDaisy,
	"the-wall":      TheWall,
}

// Layout looks up a named starting layout.
func Layout(name string) (Grid, error) {
	g, ok := layouts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Grid{}, fmt.Errorf("unknown layout %q", name)
	}
	return g, nil
}

// LayoutNames returns the known layout names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
