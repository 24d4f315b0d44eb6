package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"smarthorses/config"
	"smarthorses/engine"
	"smarthorses/experiments"
	"smarthorses/game"
	"smarthorses/gamemaster"
	"smarthorses/searcher"
	"smarthorses/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	fs := config.Flags()
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case "play":
		err = play(ctx, cfg, os.Stdin, os.Stdout)
	case "selfplay":
		err = selfPlay(ctx, cfg)
	case "experiment":
		err = experiment(ctx, cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Str("mode", cfg.Mode).Msg("failed")
	}
}

// play runs a session on the terminal. Every input line is a click on a
// square; "r" restarts and "q" quits.
func play(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	human, err := cfg.HumanColor()
	if err != nil {
		return err
	}
	manager := gamemaster.NewManager(cfg.GameOptions()...)
	session := manager.NewSession(cfg.Difficulty, human)
	defer manager.Delete(session.ID)

	scanner := bufio.NewScanner(in)
	for {
		outcome, err := session.Step(ctx)
		if err != nil {
			return err
		}
		switch outcome {
		case gamemaster.Moved, gamemaster.Passed:
			continue
		case gamemaster.Over:
			fmt.Fprintln(out, session.State)
			fmt.Fprintln(out, result(session.State))
			fmt.Fprint(out, "r to restart, anything else to quit\n> ")
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "r" {
				return scanner.Err()
			}
			session.Restart()
			continue
		}

		fmt.Fprintln(out, session.State)
		if p, ok := session.Selected(); ok {
			fmt.Fprintf(out, "selected %v, moves: %v\n", p, session.Highlights())
		} else {
			fmt.Fprintf(out, "you are %v at %v\n", human, session.State.Horse(human).Position)
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return io.EOF
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "q":
			return nil
		case "r":
			session.Restart()
			continue
		}
		p, err := agent.ParsePosition(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		session.Select(p)
	}
}

func result(state *game.GameState) string {
	white, black := state.Horse(game.White).Score, state.Horse(game.Black).Score
	winner, ok := state.Winner()
	if !ok {
		return fmt.Sprintf("draw %d to %d", white, black)
	}
	return fmt.Sprintf("%v wins, white %d black %d", winner, white, black)
}

// selfPlay pits the configured search against itself.
func selfPlay(ctx context.Context, cfg *config.Config) error {
	state := game.NewGame(cfg.Difficulty, cfg.GameOptions()...)
	newAgent := func() agent.Agent {
		return agent.NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithGoroutines(cfg.Goroutines),
			searcher.WithMetrics(),
		))
	}
	e := engine.LocalEngine(state, newAgent(), newAgent(), cfg.MaxTurns)

	log.Info().Msgf("initial board:\n%v", state)
	_, _, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Msgf("final board:\n%v", state)
	log.Info().Msg(result(state))
	return nil
}

func experiment(ctx context.Context, cfg *config.Config) error {
	opts := experiments.Options{
		Games:      cfg.Games,
		MaxTurns:   cfg.MaxTurns,
		Depths:     []int{2, 4, cfg.Difficulty},
		Goroutines: []int{1, 2, 4, 8},
		Seed:       cfg.Seed,
		Rules:      cfg.Rules(),
		OutputDir:  cfg.OutputDir,
	}
	if cfg.Difficulty <= 4 {
		opts.Depths = []int{1, 2, 4}
	}
	if _, err := experiments.RunDepthExperiment(ctx, opts); err != nil {
		return err
	}
	_, err := experiments.RunThroughputExperiment(ctx, opts)
	return err
}
