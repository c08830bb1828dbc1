// Package generate builds random levels by binary space partitioning: the
// map is split into leaves, each leaf gets a room, and sibling rooms are
// joined by corridors. The result is a set of design rows that
// gamemap.Build understands, plus start cells for the characters.
package generate

import (
	"fmt"
	"math/rand"
	"strings"

	"gridwalk/internal/geom"
)

// Design characters written into generated rows.
const (
	FloorDesign = '.'
	WallDesign  = '#'
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

var corridorNames = [...]string{CorridorLShaped: "l_shaped", CorridorZShaped: "z_shaped", CorridorStraight: "straight"}

func (s CorridorStyle) String() string {
	if int(s) >= len(corridorNames) {
		return fmt.Sprintf("CorridorStyle(%d)", uint8(s))
	}
	return corridorNames[s]
}

// ParseCorridorStyle maps a configuration name to a CorridorStyle.
func ParseCorridorStyle(s string) (CorridorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l_shaped", "l":
		return CorridorLShaped, nil
	case "z_shaped", "z":
		return CorridorZShaped, nil
	case "straight":
		return CorridorStraight, nil
	}
	return 0, fmt.Errorf("unknown corridor style %q", s)
}

// Config drives generation of one level.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	Corridor      CorridorStyle
	Monsters      int // monster start cells to pick
	Rand          *rand.Rand
}

// DefaultConfig returns settings that fit an 80x24 terminal with room for
// the message line.
func DefaultConfig(rng *rand.Rand) Config {
	return Config{
		Width:       60,
		Height:      20,
		MinLeafSize: 8,
		MaxLeafSize: 20,
		MinRoomSize: 4,
		RoomPadding: 1,
		Monsters:    3,
		Rand:        rng,
	}
}

// Validate reports settings that cannot produce a level.
func (c Config) Validate() error {
	switch {
	case c.MinRoomSize < 3:
		return fmt.Errorf("min room size must be at least 3")
	case c.MinLeafSize < c.MinRoomSize+2*c.RoomPadding:
		return fmt.Errorf("min leaf size %d cannot hold a room of %d with padding %d",
			c.MinLeafSize, c.MinRoomSize, c.RoomPadding)
	case c.MaxLeafSize < c.MinLeafSize:
		return fmt.Errorf("max leaf size must not be below min leaf size")
	case c.Width < c.MinLeafSize || c.Height < c.MinLeafSize:
		return fmt.Errorf("level %dx%d is smaller than a leaf", c.Width, c.Height)
	case c.Monsters < 0:
		return fmt.Errorf("monster count must not be negative")
	}
	return nil
}

// Level is a generated map with start cells.
type Level struct {
	Rows     []string
	Rooms    []Rect
	Player   geom.Coord
	Monsters []geom.Coord
}

// canvas is a mutable grid of design characters, walls by default.
type canvas struct {
	width, height int
	cells         [][]byte
}

func newCanvas(w, h int) *canvas {
	cells := make([][]byte, h)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(string(WallDesign), w))
	}
	return &canvas{width: w, height: h, cells: cells}
}

func (c *canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *canvas) carve(x, y int) {
	if c.inBounds(x, y) {
		c.cells[y][x] = FloorDesign
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		out[y] = string(row)
	}
	return out
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves a room inside every terminal leaf, left to right.
func (l *bspLeaf) createRooms(cv *canvas, cfg *Config, rooms *[]Rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(cv, cfg, rooms)
		}
		if l.right != nil {
			l.right.createRooms(cv, cfg, rooms)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)
	rw := min(minSize+cfg.Rand.Intn(availW-minSize+1), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(availH-minSize+1), l.H-2*pad)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep a one-cell wall around the whole level.
	rx, ry = max(rx, 1), max(ry, 1)
	if rx+rw >= cv.width {
		rw = cv.width - rx - 1
	}
	if ry+rh >= cv.height {
		rh = cv.height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			cv.carve(x, y)
		}
	}
	*rooms = append(*rooms, room)
}

// getRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of every split leaf.
func (l *bspLeaf) connectChildren(cv *canvas, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(cv, cfg)
	l.right.connectChildren(cv, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	carveCorridor(cv, lRoom.Center(), rRoom.Center(), cfg)
}

// Generate builds a level. The player starts in the center of the first
// room; monsters start elsewhere, one per room before doubling up.
func Generate(cfg Config) (Level, error) {
	if err := cfg.Validate(); err != nil {
		return Level{}, err
	}
	if cfg.Rand == nil {
		return Level{}, fmt.Errorf("no random source")
	}

	cv := newCanvas(cfg.Width, cfg.Height)
	root := &bspLeaf{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(&cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	var rooms []Rect
	root.createRooms(cv, &cfg, &rooms)
	if len(rooms) == 0 {
		return Level{}, fmt.Errorf("no room fits in a %dx%d level", cfg.Width, cfg.Height)
	}
	root.connectChildren(cv, &cfg)

	lvl := Level{Rows: cv.rows(), Rooms: rooms, Player: rooms[0].Center()}
	monsters, err := placeMonsters(rooms, lvl.Player, &cfg)
	if err != nil {
		return Level{}, err
	}
	lvl.Monsters = monsters
	return lvl, nil
}
