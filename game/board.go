package game

import (
	"fmt"
	"strings"
)

// Position addresses a square as (row, col), both zero based.
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < ROWS && p.Col >= 0 && p.Col < COLS
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a plain value: assigning it copies every cell.
type Board struct {
	cells [ROWS][COLS]Cell
}

func (b *Board) CellAt(p Position) (Cell, error) {
	if !p.InBounds() {
		return Cell{}, fmt.Errorf("cell at %v: %w", p, ErrOutOfBounds)
	}
	return b.cells[p.Row][p.Col], nil
}

// SetCell overwrites the content of p. Void cells are permanent.
func (b *Board) SetCell(p Position, c Cell) error {
	if !p.InBounds() {
		return fmt.Errorf("set cell at %v: %w", p, ErrOutOfBounds)
	}
	if b.cells[p.Row][p.Col].Kind == Void {
		return fmt.Errorf("set cell at %v: %w", p, ErrVoidCell)
	}
	b.cells[p.Row][p.Col] = c
	return nil
}

// Find returns the square occupied by the given horse.
func (b *Board) Find(c Color) (Position, bool) {
	for r := 0; r < ROWS; r++ {
		for col := 0; col < COLS; col++ {
			cell := b.cells[r][col]
			if cell.Kind == Occupied && cell.Horse == c {
				return Position{Row: r, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Voids lists destroyed squares in row-major order.
func (b *Board) Voids() []Position {
	var voids []Position
	for r := 0; r < ROWS; r++ {
		for c := 0; c < COLS; c++ {
			if b.cells[r][c].Kind == Void {
				voids = append(voids, Position{Row: r, Col: c})
			}
		}
	}
	return voids
}

// at skips the bounds check, callers must have validated p.
func (b *Board) at(p Position) Cell {
	return b.cells[p.Row][p.Col]
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < COLS; c++ {
		fmt.Fprintf(&sb, "%4d", c)
	}
	sb.WriteByte('\n')
	for r := 0; r < ROWS; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < COLS; c++ {
			fmt.Fprintf(&sb, "%4s", b.cells[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
