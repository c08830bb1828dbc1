package factory

import (
	"errors"
	"testing"

	"gridwalk/internal/component"
	"gridwalk/internal/ecs"
	"gridwalk/internal/gamemap"
	"gridwalk/internal/geom"
	"gridwalk/internal/spatial"
	"gridwalk/internal/world"

	"github.com/gdamore/tcell/v2"
)

func newTestWorld() *world.World {
	return world.New(gamemap.Build([]string{
		"#####",
		"#...#",
		"#####",
	}, gamemap.DefaultTable()), world.Rules{})
}

func TestNewPlayerComponents(t *testing.T) {
	w := newTestWorld()
	id, err := NewPlayer(w, CharacterDef{Name: "hero", Glyph: '@', Color: tcell.ColorWhite, Start: geom.C(1, 1)})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	if !w.Entities.Exists(id) {
		t.Fatal("player entity must exist")
	}
	c, err := w.Positions.CoordinateOf(id)
	if err != nil || c != geom.C(1, 1) {
		t.Errorf("position = %v, %v; want (1,1)", c, err)
	}
	ch := ecs.MustGet[*component.Character](w.Entities, id)
	if ch.Name != "hero" || ch.Glyph() != '@' {
		t.Errorf("character = %+v", ch)
	}
	if !w.Entities.Has(id, component.CTagPlayer) {
		t.Error("player must have CTagPlayer")
	}
	if w.Entities.Has(id, component.CAI) {
		t.Error("player must not have CAI")
	}
}

func TestNewMonsterComponents(t *testing.T) {
	w := newTestWorld()
	id, err := NewMonster(w, CharacterDef{
		Name:     "orc",
		Glyph:    'o',
		Color:    tcell.ColorGreen,
		Start:    geom.C(3, 1),
		Behavior: component.BehaviorStationary,
	})
	if err != nil {
		t.Fatalf("NewMonster: %v", err)
	}
	ai, ok := w.Entities.Component(id, component.CAI).(component.AI)
	if !ok {
		t.Fatal("monster must have CAI")
	}
	if ai.Behavior != component.BehaviorStationary {
		t.Errorf("behavior = %v; want stationary", ai.Behavior)
	}
	if w.Entities.Has(id, component.CTagPlayer) {
		t.Error("monster must not have CTagPlayer")
	}
}

func TestSpawnFailures(t *testing.T) {
	w := newTestWorld()
	if _, err := NewPlayer(w, CharacterDef{Name: "hero", Start: geom.C(0, 0)}); !errors.Is(err, world.ErrUnwalkable) {
		t.Fatalf("player on wall err = %v; want ErrUnwalkable", err)
	}
	if _, err := NewMonster(w, CharacterDef{Name: "a", Start: geom.C(2, 1)}); err != nil {
		t.Fatalf("NewMonster: %v", err)
	}
	var occ *spatial.OccupiedError
	if _, err := NewMonster(w, CharacterDef{Name: "b", Start: geom.C(2, 1)}); !errors.As(err, &occ) {
		t.Fatalf("stacked monster err = %v; want *OccupiedError", err)
	}
}
