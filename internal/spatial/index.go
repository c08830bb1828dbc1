package spatial

import (
	"errors"
	"fmt"
	"slices"

	"gridwalk/internal/ecs"
	"gridwalk/internal/geom"
)

// ErrNotPlaced is returned when an entity has no coordinate.
var ErrNotPlaced = errors.New("entity not placed")

// OccupiedError reports a placement onto a coordinate held by another entity.
type OccupiedError struct {
	Coord    geom.Coord
	Occupant ecs.EntityID
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("coordinate %v occupied by entity %d", e.Coord, e.Occupant)
}

// Entry is one coordinate/entity binding.
type Entry struct {
	Coord geom.Coord
	ID    ecs.EntityID
}

// Index is a bijection between coordinates and the entities standing on
// them. Every mutator updates both maps before returning.
type Index struct {
	byCoord  map[geom.Coord]ecs.EntityID
	byEntity map[ecs.EntityID]geom.Coord
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		byCoord:  make(map[geom.Coord]ecs.EntityID),
		byEntity: make(map[ecs.EntityID]geom.Coord),
	}
}

// Place binds id to c without checking occupancy. Any previous coordinate
// of id is released and any other entity at c is evicted (it becomes
// unplaced). Prefer PlaceChecked.
func (ix *Index) Place(id ecs.EntityID, c geom.Coord) {
	if old, ok := ix.byEntity[id]; ok {
		delete(ix.byCoord, old)
	}
	if other, ok := ix.byCoord[c]; ok && other != id {
		delete(ix.byEntity, other)
	}
	ix.byCoord[c] = id
	ix.byEntity[id] = c
}

// PlaceChecked binds id to c, failing with *OccupiedError if another
// entity holds c.
func (ix *Index) PlaceChecked(id ecs.EntityID, c geom.Coord) error {
	if other, ok := ix.byCoord[c]; ok && other != id {
		return &OccupiedError{Coord: c, Occupant: other}
	}
	ix.Place(id, c)
	return nil
}

// MoveTo rebinds id to c without checking occupancy.
func (ix *Index) MoveTo(id ecs.EntityID, c geom.Coord) {
	ix.Place(id, c)
}

// MoveChecked rebinds an already placed entity to c.
func (ix *Index) MoveChecked(id ecs.EntityID, c geom.Coord) error {
	if _, ok := ix.byEntity[id]; !ok {
		return fmt.Errorf("moving entity %d: %w", id, ErrNotPlaced)
	}
	return ix.PlaceChecked(id, c)
}

// CoordinateOf returns where id stands.
func (ix *Index) CoordinateOf(id ecs.EntityID) (geom.Coord, error) {
	c, ok := ix.byEntity[id]
	if !ok {
		return geom.Coord{}, fmt.Errorf("entity %d: %w", id, ErrNotPlaced)
	}
	return c, nil
}

// OccupantAt returns the entity standing on c, if any.
func (ix *Index) OccupantAt(c geom.Coord) (ecs.EntityID, bool) {
	id, ok := ix.byCoord[c]
	return id, ok
}

// Placed reports whether id has a coordinate.
func (ix *Index) Placed(id ecs.EntityID) bool {
	_, ok := ix.byEntity[id]
	return ok
}

// Len returns the number of placed entities.
func (ix *Index) Len() int { return len(ix.byEntity) }

// Entries returns every binding, ordered by entity ID.
func (ix *Index) Entries() []Entry {
	out := make([]Entry, 0, len(ix.byEntity))
	for id, c := range ix.byEntity {
		out = append(out, Entry{Coord: c, ID: id})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// Remove drops both directions of id's binding. It reports whether id was
// placed.
func (ix *Index) Remove(id ecs.EntityID) bool {
	c, ok := ix.byEntity[id]
	if !ok {
		return false
	}
	delete(ix.byEntity, id)
	delete(ix.byCoord, c)
	return true
}

// Check verifies that the two maps mirror each other.
func (ix *Index) Check() error {
	if len(ix.byCoord) != len(ix.byEntity) {
		return fmt.Errorf("index size mismatch: %d coordinates, %d entities", len(ix.byCoord), len(ix.byEntity))
	}
	for c, id := range ix.byCoord {
		if back, ok := ix.byEntity[id]; !ok || back != c {
			return fmt.Errorf("coordinate %v maps to entity %d which maps back to %v", c, id, back)
		}
	}
	return nil
}
