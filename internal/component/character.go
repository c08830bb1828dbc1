package component

import (
	"gridwalk/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Displayable is implemented by entity records that can be drawn.
type Displayable interface {
	Glyph() rune
	Color() tcell.Color
	DisplayName() string
}

// Character is the record kind for the player and monsters.
type Character struct {
	Name string
	Tile gamemap.Tile
}

// NewCharacter builds a Character record.
func NewCharacter(name string, glyph rune, color tcell.Color) *Character {
	return &Character{Name: name, Tile: gamemap.Tile{Glyph: glyph, Color: color}}
}

func (c *Character) Glyph() rune         { return c.Tile.Glyph }
func (c *Character) Color() tcell.Color  { return c.Tile.Color }
func (c *Character) DisplayName() string { return c.Name }
