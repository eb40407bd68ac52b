package engine

import "reversi/experiments/metrics"

type Engine interface {
	// Run plays a game until no player can move and returns the winners
	Run() (outcome []int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
