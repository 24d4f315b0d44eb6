package experiments

import (
	"context"

	"smarthorses/experiments/metrics"
)

// RunThroughputExperiment plays self-play games at the deepest configured
// depth for each goroutine count. Every match up searches the same trees, so
// the move records compare search duration for identical node counts.
func RunThroughputExperiment(ctx context.Context, opts Options) (string, error) {
	opts = opts.withDefaults()
	depth := opts.Depths[len(opts.Depths)-1]

	configs := []metrics.AgentConfig{}
	for i, goroutines := range opts.Goroutines {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: KindMinimax, Depth: depth, Goroutines: goroutines})
	}

	// Same config for both players in each game
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return runExperiment(ctx, "throughput", configs, matchUps, opts)
}
