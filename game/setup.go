package game

import (
	"time"

	"golang.org/x/exp/rand"
)

type Option func(*setup)

type setup struct {
	rng   *rand.Rand
	rules *Rules
}

// WithRand draws the initial placement from r.
func WithRand(r *rand.Rand) Option {
	return func(s *setup) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed makes the initial placement reproducible.
func WithSeed(seed uint64) Option {
	return func(s *setup) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRules(rules *Rules) Option {
	return func(s *setup) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// NewGame returns a fresh game whose point tiles and horses occupy distinct
// squares sampled uniformly without replacement. White moves first.
func NewGame(difficulty int, options ...Option) *GameState {
	s := &setup{
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		rules: NewStandardRules(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rules.TilesAndHorses() > ROWS*COLS {
		panic("too many tiles for the board")
	}

	gs := NewGameState(s.rules, difficulty)
	squares := s.rng.Perm(ROWS * COLS)[:s.rules.TilesAndHorses()]
	for i, value := range s.rules.TileValues {
		gs.Board.cells[squares[i]/COLS][squares[i]%COLS] = PointCell(value)
	}

	n := len(s.rules.TileValues)
	for i, c := range []Color{White, Black} {
		p := Position{Row: squares[n+i] / COLS, Col: squares[n+i] % COLS}
		gs.Board.cells[p.Row][p.Col] = OccupiedBy(c)
		gs.Horses[c].Position = p
	}
	return gs
}
