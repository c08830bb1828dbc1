package geom

import (
	"fmt"
	"math/rand"
	"strings"
)

// Direction is one of the eight compass steps an entity can take.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// Directions lists every direction in table order.
var Directions = [...]Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

var offsets = [...]Coord{
	North:     {0, -1},
	East:      {1, 0},
	South:     {0, 1},
	West:      {-1, 0},
	NorthEast: {1, -1},
	SouthEast: {1, 1},
	SouthWest: {-1, 1},
	NorthWest: {-1, -1},
}

var names = [...]string{
	North:     "n",
	East:      "e",
	South:     "s",
	West:      "w",
	NorthEast: "ne",
	SouthEast: "se",
	SouthWest: "sw",
	NorthWest: "nw",
}

// Offset returns the unit vector for d.
func (d Direction) Offset() Coord {
	return offsets[d]
}

func (d Direction) String() string {
	if int(d) >= len(names) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Random picks a direction uniformly.
func Random(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// ParseDirection accepts the short compass names ("n", "ne", ...) and the
// long ones ("north", "northeast", "north-east").
func ParseDirection(s string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	case "ne", "northeast":
		return NorthEast, nil
	case "se", "southeast":
		return SouthEast, nil
	case "sw", "southwest":
		return SouthWest, nil
	case "nw", "northwest":
		return NorthWest, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
