package component

import (
	"fmt"
	"strings"

	"gridwalk/internal/ecs"
)

const CAI ecs.ComponentType = 1

// AIBehavior describes how a computer-controlled entity acts each turn.
type AIBehavior uint8

const (
	BehaviorWander     AIBehavior = iota // step in a random direction
	BehaviorStationary                   // never moves
)

// ParseBehavior maps a configuration name to an AIBehavior.
func ParseBehavior(s string) (AIBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wander":
		return BehaviorWander, nil
	case "stationary":
		return BehaviorStationary, nil
	}
	return 0, fmt.Errorf("unknown behavior %q", s)
}

func (b AIBehavior) String() string {
	switch b {
	case BehaviorWander:
		return "wander"
	case BehaviorStationary:
		return "stationary"
	}
	return fmt.Sprintf("AIBehavior(%d)", uint8(b))
}

type AI struct {
	Behavior AIBehavior
}

func (AI) Type() ecs.ComponentType { return CAI }
