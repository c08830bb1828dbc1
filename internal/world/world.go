package world

import (
	"errors"
	"fmt"

	"gridwalk/internal/component"
	"gridwalk/internal/ecs"
	"gridwalk/internal/gamemap"
	"gridwalk/internal/geom"
	"gridwalk/internal/spatial"
)

// ErrUnwalkable is returned when spawning or placing onto terrain an entity
// cannot stand on.
var ErrUnwalkable = errors.New("terrain not walkable")

// Outcome is the result of one attempted move.
type Outcome uint8

const (
	Moved Outcome = iota
	BlockedByTerrain
	BlockedByEntity
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case BlockedByTerrain:
		return "blocked by terrain"
	case BlockedByEntity:
		return "blocked by entity"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// MoveResult describes a resolved move. Blocker is set only for
// BlockedByEntity. To is the requested destination whether or not the move
// happened.
type MoveResult struct {
	Outcome Outcome
	Blocker ecs.EntityID
	From    geom.Coord
	To      geom.Coord
}

// Sprite is one drawable entity.
type Sprite struct {
	ID    ecs.EntityID
	Coord geom.Coord
	Item  component.Displayable
}

// World ties the entity store and the position index to a terrain grid.
// It is not safe for concurrent use; callers that share a World across
// goroutines must guard the whole value with one lock.
type World struct {
	Entities  *ecs.Store
	Positions *spatial.Index
	Terrain   *gamemap.Grid
	rules     Rules
}

// New creates an empty World on grid.
func New(grid *gamemap.Grid, rules Rules) *World {
	return &World{
		Entities:  ecs.NewStore(),
		Positions: spatial.NewIndex(),
		Terrain:   grid,
		rules:     rules,
	}
}

// Rules returns the movement rules in effect.
func (w *World) Rules() Rules { return w.rules }

// Spawn creates an entity holding record and places it at c. Nothing is
// created when c is unwalkable or occupied.
func (w *World) Spawn(record any, c geom.Coord) (ecs.EntityID, error) {
	if err := w.checkFree(c); err != nil {
		return ecs.NilEntity, err
	}
	id := w.Entities.Create(record)
	if err := w.Positions.PlaceChecked(id, c); err != nil {
		_ = w.Entities.Remove(id)
		return ecs.NilEntity, err
	}
	return id, nil
}

// Place puts an existing entity at c.
func (w *World) Place(id ecs.EntityID, c geom.Coord) error {
	if !w.Entities.Exists(id) {
		return &ecs.LookupError{ID: id, Err: ecs.ErrNotFound}
	}
	if !w.Terrain.CanWalk(c) {
		return fmt.Errorf("placing entity %d at %v: %w", id, c, ErrUnwalkable)
	}
	return w.Positions.PlaceChecked(id, c)
}

func (w *World) checkFree(c geom.Coord) error {
	if !w.Terrain.CanWalk(c) {
		return fmt.Errorf("spawning at %v: %w", c, ErrUnwalkable)
	}
	if other, ok := w.Positions.OccupantAt(c); ok {
		return &spatial.OccupiedError{Coord: c, Occupant: other}
	}
	return nil
}

// Move tries to step id one cell in direction d. Blocking is an outcome,
// not an error; errors mean id is unknown or not on the grid.
func (w *World) Move(id ecs.EntityID, d geom.Direction) (MoveResult, error) {
	if !w.Entities.Exists(id) {
		return MoveResult{}, &ecs.LookupError{ID: id, Err: ecs.ErrNotFound}
	}
	from, err := w.Positions.CoordinateOf(id)
	if err != nil {
		return MoveResult{}, err
	}
	to := from.Add(d.Offset())
	res := MoveResult{From: from, To: to}

	blockedByTerrain := func() bool { return !w.Terrain.CanWalk(to) }
	blocker := func() (ecs.EntityID, bool) {
		other, ok := w.Positions.OccupantAt(to)
		return other, ok && other != id
	}

	switch w.rules.Order {
	case OccupantFirst:
		if other, ok := blocker(); ok {
			res.Outcome, res.Blocker = BlockedByEntity, other
			return res, nil
		}
		if blockedByTerrain() {
			res.Outcome = BlockedByTerrain
			return res, nil
		}
	default:
		if blockedByTerrain() {
			res.Outcome = BlockedByTerrain
			return res, nil
		}
		if other, ok := blocker(); ok {
			res.Outcome, res.Blocker = BlockedByEntity, other
			return res, nil
		}
	}

	if err := w.Positions.MoveChecked(id, to); err != nil {
		var occ *spatial.OccupiedError
		if errors.As(err, &occ) {
			res.Outcome, res.Blocker = BlockedByEntity, occ.Occupant
			return res, nil
		}
		return MoveResult{}, err
	}
	res.Outcome = Moved
	return res, nil
}

// Kill removes id from the grid and then from the entity store. Any
// handle to id held elsewhere fails with ecs.ErrNotFound afterwards.
func (w *World) Kill(id ecs.EntityID) error {
	w.Positions.Remove(id)
	if err := w.Entities.Remove(id); err != nil {
		return fmt.Errorf("killing entity %d: %w", id, err)
	}
	return nil
}

// Sprites returns every placed entity joined with its displayable record,
// ordered by entity ID.
func (w *World) Sprites() ([]Sprite, error) {
	entries := w.Positions.Entries()
	out := make([]Sprite, 0, len(entries))
	for _, e := range entries {
		d, err := ecs.Get[component.Displayable](w.Entities, e.ID)
		if err != nil {
			return nil, fmt.Errorf("drawing entity at %v: %w", e.Coord, err)
		}
		out = append(out, Sprite{ID: e.ID, Coord: e.Coord, Item: d})
	}
	return out, nil
}

// Validate checks the position index against itself and the entity store.
func (w *World) Validate() error {
	if err := w.Positions.Check(); err != nil {
		return err
	}
	for _, e := range w.Positions.Entries() {
		if !w.Entities.Exists(e.ID) {
			return fmt.Errorf("placed entity %d at %v has no record", e.ID, e.Coord)
		}
	}
	return nil
}
