package gamemap

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Kind identifies the type of a terrain cell.
type Kind uint8

const (
	Void Kind = iota
	Floor
	Wall
)

var kindNames = [...]string{Void: "void", Floor: "floor", Wall: "wall"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "void", "null":
		return Void, nil
	case "floor":
		return Floor, nil
	case "wall":
		return Wall, nil
	}
	return Void, fmt.Errorf("unknown terrain kind %q", s)
}

// Tile is a glyph drawn in a color.
type Tile struct {
	Glyph rune
	Color tcell.Color
}

// Terrain holds the display and walkability attributes of one kind.
type Terrain struct {
	Kind     Kind
	Tile     Tile
	Walkable bool
}

// Table maps design characters to kinds and kinds to their attributes.
// Characters missing from Design map to Void.
type Table struct {
	Design  map[rune]Kind
	Terrain [3]Terrain
}

// DefaultTable returns the stock table: '.' floor, '#' wall, anything else void.
func DefaultTable() Table {
	return Table{
		Design: map[rune]Kind{'.': Floor, '#': Wall},
		Terrain: [3]Terrain{
			Void:  {Kind: Void, Tile: Tile{Glyph: ' ', Color: tcell.ColorReset}},
			Floor: {Kind: Floor, Tile: Tile{Glyph: '.', Color: tcell.ColorGreen}, Walkable: true},
			Wall:  {Kind: Wall, Tile: Tile{Glyph: '#', Color: tcell.ColorReset}},
		},
	}
}

// KindOf returns the kind a design character stands for.
func (t Table) KindOf(ch rune) Kind {
	if k, ok := t.Design[ch]; ok {
		return k
	}
	return Void
}

// Of returns the attributes of k.
func (t Table) Of(k Kind) Terrain {
	return t.Terrain[k]
}
