package game

// Color identifies one of the two horses. White is the search-driven side.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Horse is one competing piece. Penalized latches once the no-move penalty has
// been charged so a stalled horse is only charged a single time.
type Horse struct {
	Color     Color
	Score     int
	Position  Position
	Penalized bool
}
