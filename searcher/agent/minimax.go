package agent

import (
	"context"

	"smarthorses/game"
	"smarthorses/searcher"
)

type minimaxAgent struct {
	searcher searcher.Searcher
}

// NewMinimaxAgent returns an agent that plays the searcher's best move.
func NewMinimaxAgent(s searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(ctx context.Context, state *game.GameState) (Decision, error) {
	res, metric, err := a.searcher.Search(ctx, state)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Move: res.Move, Found: res.Found, Metric: metric}, nil
}

// AIDecision returns the move the AI plays in state, searching as deep as the
// state's difficulty. ok is false when the side to move has no move.
func AIDecision(state *game.GameState) (move game.Position, ok bool) {
	_, move, ok = searcher.BestMove(state, state.Difficulty)
	return move, ok
}
