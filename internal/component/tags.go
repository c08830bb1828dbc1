package component

import "gridwalk/internal/ecs"

const CTagPlayer ecs.ComponentType = 2

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
