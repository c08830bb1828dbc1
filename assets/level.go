// Package assets holds the built-in level and text used when no
// configuration file is given.
package assets

// Glyphs and names of the built-in characters.
const (
	GlyphHero = '@'
	GlyphOrc  = 'o'

	NameHero = "hero"
	NameOrc  = "orc"
)

// LevelMap is the built-in level. '.' is floor, '#' is wall and any other
// character is void.
var LevelMap = []string{
	"########################",
	"#......................#",
	"#....########.###......#",
	"#....#..........#......#",
	"#....#.xxx.#....#......#",
	"#....#.xxx.#....#####..#",
	"#....#.....#....#....#.#",
	"#....##.####.........#.#",
	"#...........##########.#",
	"#......................#",
	"########################",
}

// Spawn is a character placement in the built-in level.
type Spawn struct {
	Name  string
	Glyph rune
	Color string
	X, Y  int
}

// Hero is the built-in player.
var Hero = Spawn{Name: NameHero, Glyph: GlyphHero, Color: "white", X: 1, Y: 1}

// Orcs are the built-in monsters, stacked in a column near the west wall.
var Orcs = []Spawn{
	{Name: NameOrc, Glyph: GlyphOrc, Color: "green", X: 3, Y: 6},
	{Name: NameOrc, Glyph: GlyphOrc, Color: "green", X: 3, Y: 7},
	{Name: NameOrc, Glyph: GlyphOrc, Color: "green", X: 3, Y: 8},
}

// Message templates. Templates see .Name (the subject), .Player and .Turn
// and may use the sprig function library.
const (
	WelcomeMessage = "welcome {{ .Name }}"
	KillMessage    = "kill {{ .Name }}"
)
