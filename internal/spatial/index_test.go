package spatial

import (
	"errors"
	"math/rand"
	"testing"

	"gridwalk/internal/ecs"
	"gridwalk/internal/geom"

	"github.com/pixil98/go-testutil"
)

func assertBijection(t *testing.T, ix *Index) {
	t.Helper()
	if err := ix.Check(); err != nil {
		t.Fatal(err)
	}
	for _, e := range ix.Entries() {
		occ, ok := ix.OccupantAt(e.Coord)
		if !ok || occ != e.ID {
			t.Fatalf("OccupantAt(%v) = %d,%v; want %d", e.Coord, occ, ok, e.ID)
		}
		c, err := ix.CoordinateOf(e.ID)
		if err != nil || c != e.Coord {
			t.Fatalf("CoordinateOf(%d) = %v,%v; want %v", e.ID, c, err, e.Coord)
		}
	}
}

func TestPlaceAndLookup(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(2, 3))

	c, err := ix.CoordinateOf(1)
	if err != nil {
		t.Fatalf("CoordinateOf: %v", err)
	}
	testutil.AssertEqual(t, "coord", c, geom.C(2, 3))

	id, ok := ix.OccupantAt(geom.C(2, 3))
	testutil.AssertEqual(t, "occupied", ok, true)
	testutil.AssertEqual(t, "occupant", id, ecs.EntityID(1))

	_, ok = ix.OccupantAt(geom.C(0, 0))
	testutil.AssertEqual(t, "empty occupied", ok, false)
}

func TestCoordinateOfUnplaced(t *testing.T) {
	ix := NewIndex()
	if _, err := ix.CoordinateOf(5); !errors.Is(err, ErrNotPlaced) {
		t.Fatalf("err = %v; want ErrNotPlaced", err)
	}
}

func TestPlaceReplacesOldCoordinate(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(0, 0))
	ix.Place(1, geom.C(1, 0))

	if _, ok := ix.OccupantAt(geom.C(0, 0)); ok {
		t.Fatal("old coordinate should be released")
	}
	testutil.AssertEqual(t, "len", ix.Len(), 1)
	assertBijection(t, ix)
}

func TestPlaceEvictsOccupant(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(0, 0))
	ix.Place(2, geom.C(0, 0))

	id, _ := ix.OccupantAt(geom.C(0, 0))
	testutil.AssertEqual(t, "occupant", id, ecs.EntityID(2))
	if ix.Placed(1) {
		t.Fatal("evicted entity should no longer be placed")
	}
	assertBijection(t, ix)
}

func TestPlaceCheckedRejectsOccupied(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(4, 4))

	err := ix.PlaceChecked(2, geom.C(4, 4))
	var occ *OccupiedError
	if !errors.As(err, &occ) {
		t.Fatalf("err = %v; want *OccupiedError", err)
	}
	testutil.AssertEqual(t, "occupant", occ.Occupant, ecs.EntityID(1))
	testutil.AssertEqual(t, "coord", occ.Coord, geom.C(4, 4))
	if ix.Placed(2) {
		t.Fatal("rejected placement must not bind the entity")
	}

	// Re-placing an entity on its own coordinate is fine.
	if err := ix.PlaceChecked(1, geom.C(4, 4)); err != nil {
		t.Fatalf("self placement: %v", err)
	}
}

func TestMoveChecked(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(0, 0))
	ix.Place(2, geom.C(1, 0))

	if err := ix.MoveChecked(3, geom.C(5, 5)); !errors.Is(err, ErrNotPlaced) {
		t.Fatalf("moving unplaced err = %v; want ErrNotPlaced", err)
	}
	var occ *OccupiedError
	if err := ix.MoveChecked(1, geom.C(1, 0)); !errors.As(err, &occ) {
		t.Fatalf("moving onto occupant err = %v; want *OccupiedError", err)
	}
	c, _ := ix.CoordinateOf(1)
	testutil.AssertEqual(t, "unchanged", c, geom.C(0, 0))

	if err := ix.MoveChecked(1, geom.C(0, 1)); err != nil {
		t.Fatalf("MoveChecked: %v", err)
	}
	c, _ = ix.CoordinateOf(1)
	testutil.AssertEqual(t, "moved", c, geom.C(0, 1))
	assertBijection(t, ix)
}

func TestMoveToOnlyChangesMover(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(0, 0))
	ix.Place(2, geom.C(5, 5))
	ix.MoveTo(1, geom.C(0, 0).Add(geom.East.Offset()))

	c1, _ := ix.CoordinateOf(1)
	c2, _ := ix.CoordinateOf(2)
	testutil.AssertEqual(t, "mover", c1, geom.C(1, 0))
	testutil.AssertEqual(t, "bystander", c2, geom.C(5, 5))
}

func TestRemoveDropsBothDirections(t *testing.T) {
	ix := NewIndex()
	ix.Place(1, geom.C(3, 3))

	testutil.AssertEqual(t, "removed", ix.Remove(1), true)
	testutil.AssertEqual(t, "removed again", ix.Remove(1), false)
	if _, ok := ix.OccupantAt(geom.C(3, 3)); ok {
		t.Fatal("coordinate still occupied after Remove")
	}
	if _, err := ix.CoordinateOf(1); !errors.Is(err, ErrNotPlaced) {
		t.Fatalf("err = %v; want ErrNotPlaced", err)
	}
}

func TestEntriesOrderedByID(t *testing.T) {
	ix := NewIndex()
	ix.Place(9, geom.C(0, 0))
	ix.Place(3, geom.C(1, 0))
	ix.Place(5, geom.C(2, 0))

	got := ix.Entries()
	want := []ecs.EntityID{3, 5, 9}
	testutil.AssertEqual(t, "len", len(got), len(want))
	for i, id := range want {
		testutil.AssertEqual(t, "id", got[i].ID, id)
	}
}

// Random place/move/remove sequences that never double-occupy keep the
// bijection intact at every step.
func TestBijectionUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ix := NewIndex()
	const size = 6

	freeCoord := func() (geom.Coord, bool) {
		for range 50 {
			c := geom.C(rng.Intn(size), rng.Intn(size))
			if _, ok := ix.OccupantAt(c); !ok {
				return c, true
			}
		}
		return geom.Coord{}, false
	}

	for step := range 500 {
		id := ecs.EntityID(rng.Intn(10) + 1)
		switch rng.Intn(3) {
		case 0:
			if c, ok := freeCoord(); ok {
				if err := ix.PlaceChecked(id, c); err != nil {
					t.Fatalf("step %d: PlaceChecked: %v", step, err)
				}
			}
		case 1:
			if !ix.Placed(id) {
				continue
			}
			old, _ := ix.CoordinateOf(id)
			to := old.Add(geom.Random(rng).Offset())
			if other, ok := ix.OccupantAt(to); ok && other != id {
				continue
			}
			ix.MoveTo(id, to)
		case 2:
			ix.Remove(id)
		}
		assertBijection(t, ix)
	}
}
