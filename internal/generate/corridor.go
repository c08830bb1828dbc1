package generate

import "gridwalk/internal/geom"

// carveCorridor digs a tunnel between a and b.
func carveCorridor(cv *canvas, a, b geom.Coord, cfg *Config) {
	switch cfg.Corridor {
	case CorridorZShaped:
		carveZShaped(cv, a, b)
	case CorridorStraight:
		carveH(cv, a.X, b.X, a.Y)
		carveV(cv, a.Y, b.Y, b.X)
	default:
		if cfg.Rand.Intn(2) == 0 {
			carveH(cv, a.X, b.X, a.Y)
			carveV(cv, a.Y, b.Y, b.X)
		} else {
			carveV(cv, a.Y, b.Y, a.X)
			carveH(cv, a.X, b.X, b.Y)
		}
	}
}

func carveH(cv *canvas, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		cv.carve(x, y)
	}
}

func carveV(cv *canvas, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		cv.carve(x, y)
	}
}

func carveZShaped(cv *canvas, a, b geom.Coord) {
	midY := (a.Y + b.Y) / 2
	carveV(cv, a.Y, midY, a.X)
	carveH(cv, a.X, b.X, midY)
	carveV(cv, midY, b.Y, b.X)
}
