package experiments

import (
	"context"
	"fmt"

	"smarthorses/engine"
	"smarthorses/experiments/metrics"
	"smarthorses/game"
	"smarthorses/searcher"
	"smarthorses/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Options struct {
	Games      int    // Per match up
	MaxTurns   int    // Per game, <= 0 uses engine.MaxTurns
	Depths     []int  // Search depths to compare
	Goroutines []int  // Root goroutine counts to compare
	Seed       uint64 // Seeds board setups and random agents
	Rules      *game.Rules
	OutputDir  string
}

func (o Options) withDefaults() Options {
	if o.Games <= 0 {
		o.Games = 1
	}
	if len(o.Depths) == 0 {
		o.Depths = []int{2, 4, 6}
	}
	if len(o.Goroutines) == 0 {
		o.Goroutines = []int{1, 2, 4, 8}
	}
	if o.Seed == 0 {
		o.Seed = 1
	}
	if o.Rules == nil {
		o.Rules = game.NewStandardRules()
	}
	return o
}

// RunDepthExperiment pairs every search depth against a random baseline, then
// each depth against the next deeper one. It returns the records directory.
func RunDepthExperiment(ctx context.Context, opts Options) (string, error) {
	opts = opts.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: KindRandom}
	configs := []metrics.AgentConfig{baseline}
	for i, depth := range opts.Depths {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Goroutines: 1})
	}

	// Search plays white against the baseline, then deeper search plays black
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}
	for i := 1; i+1 < len(configs); i++ {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[i+1]})
	}

	return runExperiment(ctx, "depth", configs, matchUps, opts)
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, opts Options) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.Games; i++ {
			// Every match up sees the same sequence of boards
			seed := opts.Seed + uint64(i)
			winner, gameMetric, moveMetrics, err := runGame(ctx, config1, config2, seed, opts)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(opts.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the winner
func runGame(ctx context.Context, white, black metrics.AgentConfig, seed uint64, opts Options) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := game.NewGame(white.Depth, game.WithSeed(seed), game.WithRules(opts.Rules))
	var e engine.Runner = engine.LocalEngine(state, createAgent(white, seed), createAgent(black, seed+1), opts.MaxTurns)
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	case KindMinimax:
		return agent.NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithMetrics(),
		))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
