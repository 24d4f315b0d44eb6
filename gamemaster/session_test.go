package gamemaster

import (
	"context"
	"testing"

	"smarthorses/game"

	"github.com/stretchr/testify/require"
)

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

// newTestSession has the AI on white at (6,5), the human on black at (7,3)
// and a ten point tile at (4,4).
func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(2, game.Black, game.WithSeed(1))
	gs := game.NewGameState(game.NewStandardRules(), 2)
	require.NoError(t, gs.Board.SetCell(pos(4, 4), game.PointCell(10)))
	require.NoError(t, gs.PlaceHorse(game.White, pos(6, 5)))
	require.NoError(t, gs.PlaceHorse(game.Black, pos(7, 3)))
	s.State = gs
	return s
}

func TestSessionFlow(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	require.False(t, s.Select(pos(6, 5)), "Clicks are ignored during the AI's turn")

	outcome, err := s.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, Moved, outcome)
	require.Equal(t, pos(4, 4), s.State.Horse(game.White).Position)
	require.Equal(t, 10, s.State.Horse(game.White).Score)

	outcome, err = s.Step(ctx)
	require.NoError(t, err)
	require.Equal(t, Waiting, outcome, "Step waits for the human")

	require.False(t, s.Select(pos(0, 0)), "Clicking an empty square without a selection does nothing")

	require.True(t, s.Select(pos(7, 3)))
	selected, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, pos(7, 3), selected)
	require.Equal(t, s.State.LegalMoves(), s.Highlights())

	require.False(t, s.Select(pos(0, 0)), "Clicking elsewhere deselects")
	_, ok = s.Selected()
	require.False(t, ok)
	require.Empty(t, s.Highlights())

	require.True(t, s.Select(pos(7, 3)))
	target := s.Highlights()[0]
	require.True(t, s.Select(target))
	require.Equal(t, target, s.State.Horse(game.Black).Position)
	require.Equal(t, game.White, s.State.Turn)
	_, ok = s.Selected()
	require.False(t, ok, "Selection is cleared after a move")
}

func TestSessionStall(t *testing.T) {
	s := newTestSession(t)
	s.State.ChangeTurn()
	for _, p := range s.State.MovesFor(game.Black) {
		require.NoError(t, s.State.Board.SetCell(p, game.VoidCell()))
	}

	outcome, err := s.Step(context.Background())

	require.NoError(t, err)
	require.Equal(t, Passed, outcome)
	require.Equal(t, -game.DefaultNoMovePenalty, s.State.Horse(game.Black).Score)
	require.Equal(t, game.White, s.State.Turn)
}

func TestSessionOver(t *testing.T) {
	s := newTestSession(t)
	for _, c := range []game.Color{game.White, game.Black} {
		for _, p := range s.State.MovesFor(c) {
			require.NoError(t, s.State.Board.SetCell(p, game.VoidCell()))
		}
	}

	outcome, err := s.Step(context.Background())
	require.NoError(t, err)
	require.Equal(t, Over, outcome)
	s.State.ChangeTurn()
	require.False(t, s.Select(pos(7, 3)), "No selection once the game is over")
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(4, game.Black)
	old := s.State
	s.State.ChangeTurn()
	require.True(t, s.Select(s.State.Horse(game.Black).Position))

	s.Restart()

	require.NotSame(t, old, s.State)
	require.Equal(t, 4, s.State.Difficulty)
	require.Equal(t, game.White, s.State.Turn)
	_, ok := s.Selected()
	require.False(t, ok)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "moved", Moved.String())
	require.Equal(t, "Outcome(9)", Outcome(9).String())
}
