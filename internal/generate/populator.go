package generate

import (
	"fmt"

	"gridwalk/internal/geom"
)

// placeMonsters picks cfg.Monsters distinct start cells. Every room but the
// player's gets one monster before any room gets a second; with a single
// room the monsters share it with the player.
func placeMonsters(rooms []Rect, player geom.Coord, cfg *Config) ([]geom.Coord, error) {
	occupied := map[geom.Coord]bool{player: true}
	free := 0
	for _, r := range rooms {
		free += (r.X2 - r.X1 + 1) * (r.Y2 - r.Y1 + 1)
	}
	if cfg.Monsters > free-1 {
		return nil, fmt.Errorf("%d monsters do not fit in %d free cells", cfg.Monsters, free-1)
	}

	placeable := rooms
	if len(rooms) > 1 {
		placeable = rooms[1:]
	}

	var out []geom.Coord
	for i := 0; len(out) < cfg.Monsters; i++ {
		var room Rect
		if i < len(placeable) {
			room = placeable[i]
		} else {
			room = rooms[cfg.Rand.Intn(len(rooms))]
		}
		c, ok := pickFreeInRoom(room, cfg, occupied)
		if !ok {
			continue
		}
		occupied[c] = true
		out = append(out, c)
	}
	return out, nil
}

// pickFreeInRoom tries up to 20 random cells, preferring the room's interior,
// then scans the room in order. It reports false when the room is full.
func pickFreeInRoom(room Rect, cfg *Config, occupied map[geom.Coord]bool) (geom.Coord, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		c := randomInRoom(room, cfg)
		if !occupied[c] {
			return c, true
		}
	}
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			if c := geom.C(x, y); !occupied[c] {
				return c, true
			}
		}
	}
	return geom.Coord{}, false
}

func randomInRoom(room Rect, cfg *Config) geom.Coord {
	// Shrink by 1 from each edge so nothing lands in a doorway.
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X1, room.Y1
		x2, y2 = room.X2, room.Y2
	}
	x := x1 + cfg.Rand.Intn(x2-x1+1)
	y := y1 + cfg.Rand.Intn(y2-y1+1)
	return geom.C(x, y)
}
