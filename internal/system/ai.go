package system

import (
	"math/rand"

	"gridwalk/internal/component"
	"gridwalk/internal/geom"
	"gridwalk/internal/world"

	"github.com/sirupsen/logrus"
)

// ProcessAI runs one turn for every AI-controlled entity on the grid, in
// ascending entity order, and returns the moves that were attempted.
// Bumping into a wall or another entity does nothing.
func ProcessAI(w *world.World, rng *rand.Rand, log logrus.FieldLogger) ([]world.MoveResult, error) {
	var results []world.MoveResult
	for _, id := range w.Entities.Query(component.CAI) {
		if !w.Positions.Placed(id) {
			continue
		}
		ai := w.Entities.Component(id, component.CAI).(component.AI)
		if ai.Behavior == component.BehaviorStationary {
			continue
		}

		dir := geom.Random(rng)
		res, err := w.Move(id, dir)
		if err != nil {
			return results, err
		}
		log.WithFields(logrus.Fields{
			"entity":  id,
			"dir":     dir,
			"outcome": res.Outcome,
			"to":      res.To,
		}).Debug("ai move")
		results = append(results, res)
	}
	return results, nil
}
