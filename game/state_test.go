package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestApplyMove(t *testing.T) {
	t.Run("moving onto a point tile scores it and voids the source", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{7, 3}, map[Position]int{{4, 4}: 10})

		require.True(t, gs.ApplyMove(Position{4, 4}))

		require.Equal(t, 10, gs.Horse(White).Score)
		require.Equal(t, Position{4, 4}, gs.Horse(White).Position)
		require.Equal(t, OccupiedBy(White), gs.Board.at(Position{4, 4}))
		require.Equal(t, VoidCell(), gs.Board.at(Position{6, 5}))
		require.Equal(t, Black, gs.Turn, "Turn should pass to black")
	})

	t.Run("moving onto an empty square keeps the score", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{7, 3}, nil)
		require.True(t, gs.ApplyMove(Position{4, 6}))
		require.Zero(t, gs.Horse(White).Score)
	})

	t.Run("negative tiles reduce the score", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{7, 3}, map[Position]int{{4, 6}: -5})
		require.True(t, gs.ApplyMove(Position{4, 6}))
		require.Equal(t, -5, gs.Horse(White).Score)
	})

	t.Run("illegal destinations are ignored", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{7, 3}, map[Position]int{{4, 4}: 10})
		before := *gs

		for _, dest := range []Position{{4, 5}, {-2, 4}, {7, 3}, {6, 5}, {9, 9}} {
			require.False(t, gs.ApplyMove(dest), "%v should be rejected", dest)
		}
		require.Equal(t, before, *gs, "State should not change")
	})

	t.Run("the side to move is the only one that moves", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{7, 3}, nil)
		// (5,2) is a jump for black, not for white
		require.False(t, gs.ApplyMove(Position{5, 2}))
		require.Equal(t, White, gs.Turn)
	})

	t.Run("a void square cannot be revisited", func(t *testing.T) {
		gs := newTestState(t, Position{6, 5}, Position{0, 0}, nil)
		require.True(t, gs.ApplyMove(Position{4, 4}))
		require.True(t, gs.ApplyMove(Position{1, 2}))
		require.NotContains(t, gs.LegalMoves(), Position{6, 5})
		require.False(t, gs.ApplyMove(Position{6, 5}))
	})
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for game := 0; game < 20; game++ {
		gs := NewGame(2, WithRand(r))
		voids := map[Position]bool{}

		for turns := 0; !gs.IsTerminal(); turns++ {
			require.Less(t, turns, 200, "Game should end")
			if gs.ResolveNoMovePenalty() {
				continue
			}
			moves := gs.LegalMoves()
			require.NotEmpty(t, moves)

			turn := gs.Turn
			mover := *gs.Current()
			dest := moves[r.Intn(len(moves))]
			tile := gs.Board.at(dest)

			require.True(t, gs.ApplyMove(dest))
			require.Equal(t, turn.Other(), gs.Turn, "Turn should alternate")
			require.Equal(t, mover.Score+tile.Points, gs.Horse(turn).Score, "Score should grow by the tile value")

			current := gs.Board.Voids()
			for p := range voids {
				require.Contains(t, current, p, "Void squares should never be lost")
			}
			require.Len(t, current, len(voids)+1, "Each move voids exactly one square")
			for _, p := range current {
				voids[p] = true
			}
		}
	}
}

func TestNoMovePenalty(t *testing.T) {
	t.Run("stalled side is charged once across the whole stall", func(t *testing.T) {
		gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
		wallIn(t, gs, Position{4, 4})

		require.True(t, gs.Stalled(White))
		require.True(t, gs.ResolveNoMovePenalty())
		require.Equal(t, -DefaultNoMovePenalty, gs.Horse(White).Score)
		require.True(t, gs.Horse(White).Penalized)
		require.Equal(t, Black, gs.Turn, "Turn should pass to the opponent")

		require.True(t, gs.ApplyMove(Position{1, 2}))
		require.Equal(t, White, gs.Turn)

		require.True(t, gs.ResolveNoMovePenalty(), "Stalled side still passes")
		require.Equal(t, -DefaultNoMovePenalty, gs.Horse(White).Score, "Penalty should not be charged twice")
		require.Equal(t, Black, gs.Turn)
	})

	t.Run("side with moves is not affected", func(t *testing.T) {
		gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
		require.False(t, gs.ResolveNoMovePenalty())
		require.Zero(t, gs.Horse(White).Score)
		require.Equal(t, White, gs.Turn)
	})

	t.Run("no penalty when both sides are stuck", func(t *testing.T) {
		gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
		wallIn(t, gs, Position{4, 4})
		wallIn(t, gs, Position{0, 0})

		require.False(t, gs.ResolveNoMovePenalty())
		require.Zero(t, gs.Horse(White).Score)
	})

	t.Run("charge stall honours the latch", func(t *testing.T) {
		gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
		require.True(t, gs.ChargeStall(Black))
		require.False(t, gs.ChargeStall(Black))
		require.Equal(t, -DefaultNoMovePenalty, gs.Horse(Black).Score)
		require.Equal(t, White, gs.Turn, "ChargeStall should not touch the turn")
	})
}

func TestIsTerminal(t *testing.T) {
	gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
	require.False(t, gs.IsTerminal())

	wallIn(t, gs, Position{4, 4})
	require.Empty(t, gs.MovesFor(White))
	require.False(t, gs.IsTerminal(), "Only one side is stuck")

	wallIn(t, gs, Position{0, 0})
	require.Empty(t, gs.MovesFor(Black))
	require.True(t, gs.IsTerminal())
}

func TestWinner(t *testing.T) {
	gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)

	_, ok := gs.Winner()
	require.False(t, ok, "Equal scores is a draw")

	gs.Horse(White).Score = 3
	winner, ok := gs.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)

	gs.Horse(Black).Score = 11
	winner, ok = gs.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)
}

func TestChangeTurn(t *testing.T) {
	gs := newTestState(t, Position{4, 4}, Position{0, 0}, nil)
	gs.ChangeTurn()
	require.Equal(t, Black, gs.Turn)
	gs.ChangeTurn()
	require.Equal(t, White, gs.Turn)
}

func TestCopyAndHash(t *testing.T) {
	gs := newTestState(t, Position{6, 5}, Position{7, 3}, map[Position]int{{4, 4}: 10})
	clone := gs.Copy()
	require.Equal(t, gs.Hash(), clone.Hash())

	require.True(t, clone.ApplyMove(Position{4, 4}))
	require.NotEqual(t, gs.Hash(), clone.Hash())
	require.Zero(t, gs.Horse(White).Score, "Original should not see moves on the copy")
	require.Equal(t, PointCell(10), gs.Board.at(Position{4, 4}))
	require.Same(t, gs.Rules, clone.Rules, "Rules are shared")
}

func TestNewGame(t *testing.T) {
	validate := func(t *testing.T, gs *GameState) {
		t.Helper()
		var tiles []int
		occupied := 0
		for r := 0; r < ROWS; r++ {
			for c := 0; c < COLS; c++ {
				switch cell := gs.Board.cells[r][c]; cell.Kind {
				case Point:
					tiles = append(tiles, cell.Points)
				case Occupied:
					occupied++
					require.Equal(t, Position{r, c}, gs.Horse(cell.Horse).Position)
				case Void:
					t.Fatalf("fresh board has a void at (%d,%d)", r, c)
				}
			}
		}
		require.ElementsMatch(t, DefaultTileValues, tiles, "Every tile should be placed on its own square")
		require.Equal(t, 2, occupied)
		require.Equal(t, White, gs.Turn)
		require.Zero(t, gs.Horse(White).Score)
		require.Zero(t, gs.Horse(Black).Score)
	}

	t.Run("two restarts give two independent valid games", func(t *testing.T) {
		first := NewGame(4)
		second := NewGame(4)
		validate(t, first)
		validate(t, second)
		require.Equal(t, 4, first.Difficulty)

		if moves := first.LegalMoves(); len(moves) > 0 {
			snapshot := *second
			first.ApplyMove(moves[0])
			require.Equal(t, snapshot, *second)
		}
	})

	t.Run("seeded games are reproducible", func(t *testing.T) {
		a := NewGame(2, WithSeed(99))
		b := NewGame(2, WithSeed(99))
		validate(t, a)
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("custom rules", func(t *testing.T) {
		rules := &Rules{NoMovePenalty: 1, MobilityWeight: 1, TileValues: []int{2, -2}}
		gs := NewGame(1, WithSeed(1), WithRules(rules))
		require.Same(t, rules, gs.Rules)
		count := 0
		for r := 0; r < ROWS; r++ {
			for c := 0; c < COLS; c++ {
				if gs.Board.cells[r][c].Kind == Point {
					count++
				}
			}
		}
		require.Equal(t, 2, count)
	})
}
