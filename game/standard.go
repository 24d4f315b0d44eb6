package game

const (
	DefaultNoMovePenalty  = 4
	DefaultMobilityWeight = 0.5
)

// DefaultTileValues is the set of point tiles scattered at the start of a game.
var DefaultTileValues = []int{10, 5, 4, 1, -1, -4, -5, -10}

func NewStandardRules() *Rules {
	tiles := make([]int, len(DefaultTileValues))
	copy(tiles, DefaultTileValues)
	return &Rules{
		NoMovePenalty:  DefaultNoMovePenalty,
		MobilityWeight: DefaultMobilityWeight,
		TileValues:     tiles,
	}
}
