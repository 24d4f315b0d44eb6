package engine

import (
	"context"
	"time"

	"smarthorses/experiments/metrics"
	"smarthorses/game"
	"smarthorses/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Agents   [2]agent.Agent // Indexed by game.Color
	Updates  []Update
	maxTurns int
}

type Update struct {
	Player game.Color
	Move   game.Position
	Passed bool
	Hash   game.StateHash
}

// LocalEngine plays state to the end between the two agents. maxTurns <= 0
// falls back to MaxTurns.
func LocalEngine(state *game.GameState, white, black agent.Agent, maxTurns int) *Engine {
	if white == nil || black == nil {
		panic("need an agent for each horse")
	}
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	return &Engine{
		State:    state,
		Agents:   [2]agent.Agent{white, black},
		maxTurns: maxTurns,
	}
}

// Run executes the game loop until neither horse can move. A stalled side
// passes (paying the penalty once) instead of asking its agent.
func (e *Engine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.State.Turn)

	for step := 1; !e.State.IsTerminal() && step <= e.maxTurns; step++ {
		player := e.State.Turn

		if e.State.ResolveNoMovePenalty() {
			log.Debug().Msgf("%v is stalled and passes, score %d", player, e.State.Horse(player).Score)
			gameMetric.Passes++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{Step: step, Player: player.String(), Passed: true})
			e.Updates = append(e.Updates, Update{Player: player, Passed: true, Hash: e.State.Hash()})
			continue
		}

		decision, err := e.Agents[player].FindMove(ctx, e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, err
		}
		move := decision.Move
		if !decision.Found || !e.State.ApplyMove(move) {
			// The side to move is not stalled, so a legal move exists
			fallback := e.State.LegalMoves()[0]
			log.Warn().Msgf("%v agent returned invalid move %v, playing %v", player, move, fallback)
			move = fallback
			e.State.ApplyMove(move)
		}

		log.Debug().Msgf("step %d: %v moves to %v, score %d", step, player, move, e.State.Horse(player).Score)
		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: decision.Metric,
		})
		e.Updates = append(e.Updates, Update{Player: player, Move: move, Hash: e.State.Hash()})
	}

	winner := ""
	if w, ok := e.State.Winner(); ok {
		winner = w.String()
	}
	gameMetric.Winner = winner
	gameMetric.WhiteScore = e.State.Horse(game.White).Score
	gameMetric.BlackScore = e.State.Horse(game.Black).Score
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if e.State.IsTerminal() {
		log.Info().Msgf("game over after %d moves, white %d black %d, winner: %q",
			gameMetric.TotalMoves, gameMetric.WhiteScore, gameMetric.BlackScore, winner)
	} else {
		log.Info().Msgf("stopped after %d turns (game not finished)", e.maxTurns)
	}
	return winner, gameMetric, moveMetrics, nil
}
