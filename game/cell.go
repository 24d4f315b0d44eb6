package game

import "strconv"

type CellKind uint8

const (
	Empty CellKind = iota
	Point
	Occupied
	Void
)

// Cell is the content of a single square. Points is only meaningful for Point
// cells and Horse only for Occupied cells.
type Cell struct {
	Kind   CellKind
	Points int
	Horse  Color
}

func EmptyCell() Cell {
	return Cell{Kind: Empty}
}

// PointCell returns a tile worth n points. A zero-valued tile is just an empty cell.
func PointCell(n int) Cell {
	if n == 0 {
		return EmptyCell()
	}
	return Cell{Kind: Point, Points: n}
}

func OccupiedBy(c Color) Cell {
	return Cell{Kind: Occupied, Horse: c}
}

func VoidCell() Cell {
	return Cell{Kind: Void}
}

// Passable reports whether a horse may land on the cell.
func (c Cell) Passable() bool {
	switch c.Kind {
	case Empty, Point:
		return true
	case Occupied, Void:
		return false
	default:
		panic("unknown cell kind")
	}
}

func (c Cell) String() string {
	switch c.Kind {
	case Empty:
		return "."
	case Point:
		if c.Points > 0 {
			return "+" + strconv.Itoa(c.Points)
		}
		return strconv.Itoa(c.Points)
	case Occupied:
		if c.Horse == White {
			return "W"
		}
		return "B"
	case Void:
		return "#"
	default:
		panic("unknown cell kind")
	}
}
