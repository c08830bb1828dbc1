package gamemap

import (
	"errors"
	"fmt"
	"strings"

	"gridwalk/internal/geom"
)

// ErrOutOfBounds is returned for coordinates outside the grid or past the
// end of a short row.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is the static terrain of one map. It is immutable once built and may
// be shared freely.
type Grid struct {
	table Table
	cells [][]Kind
	width int
}

// Build converts design rows into a Grid. Rows may have different lengths;
// they are stored as given, without padding.
func Build(rows []string, table Table) *Grid {
	g := &Grid{table: table, cells: make([][]Kind, len(rows))}
	for y, line := range rows {
		row := make([]Kind, 0, len(line))
		for _, ch := range line {
			row = append(row, table.KindOf(ch))
		}
		g.cells[y] = row
		if len(row) > g.width {
			g.width = len(row)
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) }

// Width returns the length of the longest row.
func (g *Grid) Width() int { return g.width }

// RowLen returns the length of row y, or 0 if y is out of range.
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.cells) {
		return 0
	}
	return len(g.cells[y])
}

// Table returns the terrain table the grid was built with.
func (g *Grid) Table() Table { return g.table }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c geom.Coord) bool {
	return c.Y >= 0 && c.Y < len(g.cells) && c.X >= 0 && c.X < len(g.cells[c.Y])
}

// KindAt returns the terrain at c.
func (g *Grid) KindAt(c geom.Coord) (Terrain, error) {
	if !g.InBounds(c) {
		return Terrain{}, fmt.Errorf("terrain at %v: %w", c, ErrOutOfBounds)
	}
	return g.table.Of(g.cells[c.Y][c.X]), nil
}

// CanWalk reports whether an entity may stand on c. Out-of-bounds
// coordinates are never walkable.
func (g *Grid) CanWalk(c geom.Coord) bool {
	t, err := g.KindAt(c)
	if err != nil {
		return false
	}
	return t.Walkable
}

// GlyphAt returns the display glyph at c.
func (g *Grid) GlyphAt(c geom.Coord) (rune, error) {
	t, err := g.KindAt(c)
	if err != nil {
		return 0, err
	}
	return t.Tile.Glyph, nil
}

// Render returns the grid as text, one line per row, each line terminated
// by "\n".
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(len(g.cells) * (g.width + 1))
	for _, row := range g.cells {
		for _, k := range row {
			b.WriteRune(g.table.Of(k).Tile.Glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c geom.Coord, t Terrain)) {
	for y, row := range g.cells {
		for x, k := range row {
			fn(geom.C(x, y), g.table.Of(k))
		}
	}
}
