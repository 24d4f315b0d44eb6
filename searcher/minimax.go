package searcher

import (
	"context"

	"smarthorses/experiments/metrics"
	"smarthorses/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a depth-bounded minimax search without pruning. Every explored
// branch works on its own copy of the state, so the caller's state is never
// modified and siblings share nothing.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

// WithDepth fixes the number of plies to explore. Without it the state's
// Difficulty is used.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines explores the root's children concurrently. The result is the
// same as a sequential search.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      -1,
		goroutines: 1,
		evaluate:   game.EvaluateMobility,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove searches state to the given depth. ok is false when no move is
// attached to the result.
func BestMove(state *game.GameState, depth int) (score float64, move game.Position, ok bool) {
	res, _, err := NewMinimax(WithDepth(depth)).Search(context.Background(), state)
	if err != nil {
		panic(err) // the background context is never cancelled
	}
	return res.Score, res.Move, res.Found
}

// Search explores state for the side to move. It checks ctx once per ply and
// returns ctx.Err() when cancelled.
func (m *Minimax) Search(ctx context.Context, state *game.GameState) (Result, metrics.SearchMetric, error) {
	depth := m.depth
	if depth < 0 {
		depth = state.Difficulty
	}
	root := state.Copy()
	maximizing := root.Turn == game.White

	m.metrics.Start(depth, m.goroutines)
	var res Result
	var err error
	if m.goroutines > 1 {
		res, err = m.fanOut(ctx, root, depth, maximizing)
	} else {
		res, err = m.minimax(ctx, root, depth, maximizing)
	}
	metric := m.metrics.Complete()

	if err != nil {
		return Result{}, metric, err
	}
	log.Debug().
		Str("side", root.Turn.String()).
		Int("depth", depth).
		Float64("score", res.Score).
		Bool("found", res.Found).
		Stringer("move", res.Move).
		Msg("minimax search complete")
	return res, metric, nil
}

func (m *Minimax) minimax(ctx context.Context, gs *game.GameState, depth int, maximizing bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	m.metrics.AddNode()

	if depth == 0 || gs.IsTerminal() {
		m.metrics.AddLeaf()
		return Result{Score: m.evaluate(gs)}, nil
	}

	side := sideOf(maximizing)
	moves := gs.MovesFor(side)
	if len(moves) == 0 {
		return m.pass(ctx, gs, depth, maximizing)
	}

	best := Result{Score: worst(maximizing)}
	for _, move := range moves {
		child, err := m.minimax(ctx, play(gs, side, move), depth-1, !maximizing)
		if err != nil {
			return Result{}, err
		}
		if improves(child.Score, best.Score, maximizing) {
			best = Result{Score: child.Score, Move: move, Found: true}
		}
	}
	if !best.Found {
		panic("minimax: no legal move improved on the sentinel score")
	}
	return best, nil
}

// pass explores the forced pass of a stalled side. The opponent is known to
// have a move because the state is not terminal.
func (m *Minimax) pass(ctx context.Context, gs *game.GameState, depth int, maximizing bool) (Result, error) {
	next := gs.Copy()
	next.ChargeStall(sideOf(maximizing))
	child, err := m.minimax(ctx, next, depth-1, !maximizing)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: child.Score}, nil
}

// fanOut runs one goroutine per root move, then reduces the results in move
// order with the same comparison as the sequential search.
func (m *Minimax) fanOut(ctx context.Context, gs *game.GameState, depth int, maximizing bool) (Result, error) {
	side := sideOf(maximizing)
	moves := gs.MovesFor(side)
	if depth == 0 || gs.IsTerminal() || len(moves) == 0 {
		return m.minimax(ctx, gs, depth, maximizing)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	m.metrics.AddNode()

	scores := make([]float64, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			child, err := m.minimax(gctx, play(gs, side, move), depth-1, !maximizing)
			scores[i] = child.Score
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Score: worst(maximizing)}
	for i, move := range moves {
		if improves(scores[i], best.Score, maximizing) {
			best = Result{Score: scores[i], Move: move, Found: true}
		}
	}
	if !best.Found {
		panic("minimax: no legal move improved on the sentinel score")
	}
	return best, nil
}

// play returns a copy of gs with side moved to dest. The turn field is left
// alone: the search tracks the side to move itself.
func play(gs *game.GameState, side game.Color, dest game.Position) *game.GameState {
	next := gs.Copy()
	next.MoveHorse(side, dest)
	return next
}
