package agent

import (
	"context"

	"smarthorses/experiments/metrics"
	"smarthorses/game"
)

// Decision is the move an agent chose. Found is false when the agent has no
// move to offer, e.g. its horse is stalled.
type Decision struct {
	Move   game.Position
	Found  bool
	Metric metrics.SearchMetric
}

type Agent interface {
	// FindMove chooses a destination for the side to move in state.
	FindMove(ctx context.Context, state *game.GameState) (Decision, error)
}
