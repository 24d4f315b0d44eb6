package engine

import (
	"context"

	"smarthorses/experiments/metrics"
	"smarthorses/game"
)

// MaxTurns bounds a game: each move voids a square and a pass is always
// followed by a move.
const MaxTurns = 2 * game.ROWS * game.COLS

type Runner interface {
	// Run plays a game till neither horse can move or a max number of turns is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
