package searcher

import (
	"context"
	"math"

	"smarthorses/experiments/metrics"
	"smarthorses/game"
)

// Searcher picks a move for the side to move in state.
type Searcher interface {
	Search(ctx context.Context, state *game.GameState) (Result, metrics.SearchMetric, error)
}

// Result is the outcome of a search. Found is false when no move is attached:
// the root was terminal, the depth was zero, or the side to move was stalled.
type Result struct {
	Score float64
	Move  game.Position
	Found bool
}

// sideOf maps the search role to a horse: white always maximizes.
func sideOf(maximizing bool) game.Color {
	if maximizing {
		return game.White
	}
	return game.Black
}

func worst(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves uses strict comparisons so the first move found wins ties.
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
