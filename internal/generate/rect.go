package generate

import "gridwalk/internal/geom"

// Rect is an inclusive rectangle of cells.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() geom.Coord {
	return geom.C((r.X1+r.X2)/2, (r.Y1+r.Y2)/2)
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c geom.Coord) bool {
	return c.X >= r.X1 && c.X <= r.X2 && c.Y >= r.Y1 && c.Y <= r.Y2
}
