package game

import "testing"

func newTestState(t *testing.T, white, black Position, tiles map[Position]int) *GameState {
	t.Helper()
	gs := NewGameState(NewStandardRules(), 2)
	for p, v := range tiles {
		if err := gs.Board.SetCell(p, PointCell(v)); err != nil {
			t.Fatalf("set tile: %v", err)
		}
	}
	if err := gs.PlaceHorse(White, white); err != nil {
		t.Fatalf("place white: %v", err)
	}
	if err := gs.PlaceHorse(Black, black); err != nil {
		t.Fatalf("place black: %v", err)
	}
	return gs
}

// wallIn voids every knight target around p.
func wallIn(t *testing.T, gs *GameState, p Position) {
	t.Helper()
	for _, off := range knightOffsets {
		to := Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
		if !to.InBounds() || gs.Board.at(to).Kind == Occupied {
			continue
		}
		gs.Board.cells[to.Row][to.Col] = VoidCell()
	}
}
