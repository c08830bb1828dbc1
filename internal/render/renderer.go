package render

import (
	"strings"

	"gridwalk/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Renderer draws frames onto a tcell screen. It never decides what to draw.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and renders terrain, sprites and messages.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	rows := r.drawTerrain(f)
	r.drawSprites(f)
	r.drawMessages(rows, f.Messages)
	if f.HasCursor {
		r.screen.ShowCursor(f.Cursor.X, f.Cursor.Y)
	} else {
		r.screen.HideCursor()
	}
	r.screen.Show()
}

// drawTerrain renders the terrain text block and returns the number of rows.
func (r *Renderer) drawTerrain(f Frame) int {
	if f.Terrain == "" {
		return 0
	}
	lines := strings.Split(strings.TrimSuffix(f.Terrain, "\n"), "\n")
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			style := tcell.StyleDefault
			if f.Grid != nil {
				if t, err := f.Grid.KindAt(geom.C(x, y)); err == nil {
					style = style.Foreground(t.Tile.Color)
				}
			}
			r.putGlyph(x, y, ch, style)
			x++
		}
	}
	return len(lines)
}

func (r *Renderer) drawSprites(f Frame) {
	for _, s := range f.Sprites {
		style := tcell.StyleDefault.Foreground(s.Item.Color())
		r.putGlyph(s.Coord.X, s.Coord.Y, s.Item.Glyph(), style)
	}
}

// drawMessages writes the message area under the map, word-wrapped to the
// screen width.
func (r *Renderer) drawMessages(top int, messages []string) {
	w, h := r.screen.Size()
	if w <= 0 {
		return
	}
	y := top
	for _, msg := range messages {
		for _, line := range strings.Split(wordwrap.String(msg, w), "\n") {
			if y >= h {
				return
			}
			r.drawText(0, y, line, tcell.StyleDefault)
			y++
		}
	}
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
