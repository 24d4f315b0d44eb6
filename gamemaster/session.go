package gamemaster

import (
	"context"
	"fmt"

	"smarthorses/game"
	"smarthorses/searcher"
	"smarthorses/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Outcome int

const (
	Waiting Outcome = iota // The human is to move
	Moved                  // The AI played a move
	Passed                 // The side to move was stalled and passed
	Over                   // Neither horse can move
)

func (o Outcome) String() string {
	switch o {
	case Waiting:
		return "waiting"
	case Moved:
		return "moved"
	case Passed:
		return "passed"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Session drives one human-versus-AI game for an interactive front end: it
// tracks the selected horse, the highlighted destinations and whose turn it is.
type Session struct {
	ID         string
	State      *game.GameState
	Human      game.Color
	ai         agent.Agent
	options    []game.Option
	selected   *game.Position
	highlights []game.Position
	logger     zerolog.Logger
}

// NewSession starts a game where the AI searches difficulty plies deep.
func NewSession(difficulty int, human game.Color, options ...game.Option) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:      id,
		Human:   human,
		ai:      agent.NewMinimaxAgent(searcher.NewMinimax()),
		options: options,
		logger:  log.With().Str("session", id).Logger(),
	}
	s.State = game.NewGame(difficulty, options...)
	s.logger.Info().Int("difficulty", difficulty).Str("human", human.String()).Msg("session started")
	return s
}

// Restart replaces the game with a fresh one at the same difficulty.
func (s *Session) Restart() {
	s.State = game.NewGame(s.State.Difficulty, s.options...)
	s.clearSelection()
	s.logger.Info().Msg("session restarted")
}

func (s *Session) Selected() (game.Position, bool) {
	if s.selected == nil {
		return game.Position{}, false
	}
	return *s.selected, true
}

// Highlights lists the destinations of the selected horse.
func (s *Session) Highlights() []game.Position {
	return s.highlights
}

// Select handles a click on p during the human's turn. Clicking the human's
// horse selects it; clicking a highlighted square then plays the move; any
// other click clears the selection. It reports whether the click did anything.
func (s *Session) Select(p game.Position) bool {
	if s.State.Turn != s.Human || s.State.IsTerminal() {
		return false
	}

	if s.selected != nil {
		for _, h := range s.highlights {
			if h == p {
				s.State.ApplyMove(p)
				s.logger.Debug().Stringer("to", p).Msg("human moved")
				s.clearSelection()
				return true
			}
		}
	}

	if s.State.Horse(s.Human).Position == p {
		s.selected = &p
		s.highlights = s.State.LegalMoves()
		return true
	}

	s.clearSelection()
	return false
}

func (s *Session) clearSelection() {
	s.selected = nil
	s.highlights = nil
}

// Step advances everything that does not need the human: it ends the game,
// passes for a stalled side, or lets the AI move.
func (s *Session) Step(ctx context.Context) (Outcome, error) {
	if s.State.IsTerminal() {
		return Over, nil
	}

	player := s.State.Turn
	if s.State.ResolveNoMovePenalty() {
		s.clearSelection()
		s.logger.Info().Str("player", player.String()).Int("score", s.State.Horse(player).Score).Msg("stalled, turn passed")
		return Passed, nil
	}

	if player == s.Human {
		return Waiting, nil
	}

	decision, err := s.ai.FindMove(ctx, s.State)
	if err != nil {
		return Waiting, err
	}
	if !decision.Found || !s.State.ApplyMove(decision.Move) {
		return Waiting, fmt.Errorf("ai returned no legal move for %v", player)
	}
	s.logger.Debug().Stringer("to", decision.Move).Msg("ai moved")
	return Moved, nil
}
