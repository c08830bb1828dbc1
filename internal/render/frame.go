package render

import (
	"gridwalk/internal/gamemap"
	"gridwalk/internal/geom"
	"gridwalk/internal/world"
)

// Frame is everything needed to draw one turn.
type Frame struct {
	Terrain   string        // Grid.Render output
	Grid      *gamemap.Grid // terrain colors
	Sprites   []world.Sprite
	Messages  []string
	Cursor    geom.Coord
	HasCursor bool
}
