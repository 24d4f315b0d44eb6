package game

// Rules holds the tunable constants of a game. A Rules value is shared by a state
// and all of its copies and must not be modified once a game has started.
type Rules struct {
	NoMovePenalty  int     // Points charged to a stalled horse, at most once per game
	MobilityWeight float64 // Weight of the mobility differential in Evaluate
	TileValues     []int   // Point tiles placed at the start of a game
}

// TilesAndHorses is the number of cells occupied at setup.
func (r *Rules) TilesAndHorses() int {
	return len(r.TileValues) + 2
}
