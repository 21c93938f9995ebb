package engine

import (
	"cotton/experiments/metrics"
	"cotton/game"
	"cotton/gamemaster"
)

// Agent picks the next intent for the acting player. It sees a snapshot of
// the game and the slots currently offered.
type Agent interface {
	Choose(gs *game.GameState, legal gamemaster.Legality) gamemaster.Intent
}

type Runner interface {
	// Run plays a game until it is over or the turn cap is reached
	Run() (gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric, err error)
}
