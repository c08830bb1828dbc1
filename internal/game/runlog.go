package game

import "github.com/sirupsen/logrus"

// RunStats records statistics gathered during one run.
type RunStats struct {
	Turns   int
	Blocked int            // moves that ran into terrain
	Kills   map[string]int // name → kill count
}

// logRunStats writes the finished run to the log.
func logRunStats(log logrus.FieldLogger, s RunStats) {
	kills := 0
	for _, n := range s.Kills {
		kills += n
	}
	log.WithFields(logrus.Fields{
		"turns":   s.Turns,
		"blocked": s.Blocked,
		"kills":   kills,
		"by_name": s.Kills,
	}).Info("run finished")
}
