package game

// EvaluateMobility combines the score differential with a weighted mobility
// differential, both from white's perspective.
func EvaluateMobility(gs *GameState) float64 {
	scoreDiff := float64(gs.Horses[White].Score - gs.Horses[Black].Score)
	mobility := float64(gs.Mobility(White) - gs.Mobility(Black))
	return scoreDiff + gs.mobilityWeight()*mobility
}

// EvaluateScore only looks at the score differential.
func EvaluateScore(gs *GameState) float64 {
	return float64(gs.Horses[White].Score - gs.Horses[Black].Score)
}

func (gs *GameState) mobilityWeight() float64 {
	if gs.Rules == nil {
		return DefaultMobilityWeight
	}
	return gs.Rules.MobilityWeight
}
