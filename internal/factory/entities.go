package factory

import (
	"fmt"

	"gridwalk/internal/component"
	"gridwalk/internal/ecs"
	"gridwalk/internal/geom"
	"gridwalk/internal/world"

	"github.com/gdamore/tcell/v2"
)

// CharacterDef describes a character to place on the map.
type CharacterDef struct {
	Name     string
	Glyph    rune
	Color    tcell.Color
	Start    geom.Coord
	Behavior component.AIBehavior // monsters only
}

// NewPlayer spawns the player character.
func NewPlayer(w *world.World, def CharacterDef) (ecs.EntityID, error) {
	id, err := w.Spawn(component.NewCharacter(def.Name, def.Glyph, def.Color), def.Start)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("spawning player %q: %w", def.Name, err)
	}
	if err := w.Entities.Add(id, component.TagPlayer{}); err != nil {
		return ecs.NilEntity, err
	}
	return id, nil
}

// NewMonster spawns an AI-controlled character.
func NewMonster(w *world.World, def CharacterDef) (ecs.EntityID, error) {
	id, err := w.Spawn(component.NewCharacter(def.Name, def.Glyph, def.Color), def.Start)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("spawning monster %q: %w", def.Name, err)
	}
	if err := w.Entities.Add(id, component.AI{Behavior: def.Behavior}); err != nil {
		return ecs.NilEntity, err
	}
	return id, nil
}
