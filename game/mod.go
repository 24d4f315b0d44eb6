package game

import "errors"

const (
	ROWS = 8
	COLS = 8
)

var (
	// ErrOutOfBounds is returned by board accessors given coordinates outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrVoidCell is returned when writing to a cell that has already been destroyed.
	ErrVoidCell = errors.New("cell is void")
)

type StateHash uint64

// Evaluate scores a state from white's perspective: positive favours white,
// negative favours black.
type Evaluate func(*GameState) float64
