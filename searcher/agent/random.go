package agent

import (
	"context"

	"smarthorses/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(_ context.Context, state *game.GameState) (Decision, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Decision{}, nil
	}
	return Decision{Move: moves[a.rng.Intn(len(moves))], Found: true}, nil
}
