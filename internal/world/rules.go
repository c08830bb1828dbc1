package world

import (
	"fmt"
	"strings"
)

// CheckOrder selects which blocker a move consults first. The two orders
// only disagree when an entity stands on unwalkable terrain.
type CheckOrder uint8

const (
	TerrainFirst  CheckOrder = iota // walkability, then occupancy
	OccupantFirst                   // occupancy, then walkability
)

func (o CheckOrder) String() string {
	switch o {
	case TerrainFirst:
		return "terrain_first"
	case OccupantFirst:
		return "occupant_first"
	}
	return fmt.Sprintf("CheckOrder(%d)", uint8(o))
}

// ParseCheckOrder maps a configuration name to a CheckOrder.
func ParseCheckOrder(s string) (CheckOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "terrain_first":
		return TerrainFirst, nil
	case "occupant_first":
		return OccupantFirst, nil
	}
	return 0, fmt.Errorf("unknown check order %q", s)
}

// Rules configures movement resolution.
type Rules struct {
	Order CheckOrder
}
