package game

// knightOffsets is enumerated in a fixed order so move lists, and therefore
// search results, are reproducible.
var knightOffsets = [8]Position{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// LegalMoves returns the squares a horse standing on from may jump to. Void and
// occupied targets are excluded, so a horse can never land on the other one.
// An empty result is the "no moves" condition, not an error.
func LegalMoves(b *Board, from Position) []Position {
	moves := make([]Position, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		to := Position{Row: from.Row + off.Row, Col: from.Col + off.Col}
		if !to.InBounds() {
			continue
		}
		if !b.at(to).Passable() {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

func countMoves(b *Board, from Position) int {
	n := 0
	for _, off := range knightOffsets {
		to := Position{Row: from.Row + off.Row, Col: from.Col + off.Col}
		if to.InBounds() && b.at(to).Passable() {
			n++
		}
	}
	return n
}

func contains(moves []Position, p Position) bool {
	for _, m := range moves {
		if m == p {
			return true
		}
	}
	return false
}
