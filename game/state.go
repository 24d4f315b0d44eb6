package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the complete, self-contained state of one game. It is a value
// type apart from the shared immutable Rules, so Copy is a plain struct copy.
type GameState struct {
	Board      Board
	Horses     [2]Horse // Indexed by Color
	Turn       Color    // The horse to move
	Difficulty int      // Minimax depth bound used for the AI side
	Rules      *Rules
}

// NewGameState returns an empty board with no tiles and unplaced horses. Use
// NewGame for a randomly initialized game.
func NewGameState(rules *Rules, difficulty int) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &GameState{
		Horses:     [2]Horse{{Color: White}, {Color: Black}},
		Turn:       White,
		Difficulty: difficulty,
		Rules:      rules,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// PlaceHorse puts a horse on p during setup, clearing its previous square.
func (gs *GameState) PlaceHorse(c Color, p Position) error {
	cell, err := gs.Board.CellAt(p)
	if err != nil {
		return err
	}
	if !cell.Passable() {
		return fmt.Errorf("place %v horse at %v: square holds %v", c, p, cell)
	}
	if old, ok := gs.Board.Find(c); ok {
		gs.Board.cells[old.Row][old.Col] = EmptyCell()
	}
	gs.Board.cells[p.Row][p.Col] = OccupiedBy(c)
	gs.Horses[c].Position = p
	return nil
}

func (gs *GameState) Horse(c Color) *Horse {
	return &gs.Horses[c]
}

func (gs *GameState) Current() *Horse {
	return &gs.Horses[gs.Turn]
}

// LegalMoves returns the destinations available to the side to move.
func (gs *GameState) LegalMoves() []Position {
	return gs.MovesFor(gs.Turn)
}

func (gs *GameState) MovesFor(c Color) []Position {
	return LegalMoves(&gs.Board, gs.Horses[c].Position)
}

func (gs *GameState) Mobility(c Color) int {
	return countMoves(&gs.Board, gs.Horses[c].Position)
}

// ApplyMove plays dest for the side to move. Destinations that are not legal
// are ignored and the state is left untouched; the result reports whether the
// move was played.
func (gs *GameState) ApplyMove(dest Position) bool {
	if !contains(gs.LegalMoves(), dest) {
		return false
	}
	gs.MoveHorse(gs.Turn, dest)
	gs.ChangeTurn()
	return true
}

// MoveHorse applies the effects of moving c to dest: the tile is credited, the
// departure square becomes void and the horse's position is updated. The turn
// is not changed. dest must be one of MovesFor(c).
func (gs *GameState) MoveHorse(c Color, dest Position) {
	h := &gs.Horses[c]
	if target := gs.Board.at(dest); target.Kind == Point {
		h.Score += target.Points
	}
	gs.Board.cells[h.Position.Row][h.Position.Col] = VoidCell()
	gs.Board.cells[dest.Row][dest.Col] = OccupiedBy(c)
	h.Position = dest
}

func (gs *GameState) ChangeTurn() {
	gs.Turn = gs.Turn.Other()
}

// IsTerminal reports whether neither horse can move.
func (gs *GameState) IsTerminal() bool {
	return gs.Mobility(White) == 0 && gs.Mobility(Black) == 0
}

// Stalled reports whether c has no move while its opponent still has one.
func (gs *GameState) Stalled(c Color) bool {
	return gs.Mobility(c) == 0 && gs.Mobility(c.Other()) > 0
}

// ChargeStall subtracts the no-move penalty from c unless it was already
// charged. It reports whether points were deducted.
func (gs *GameState) ChargeStall(c Color) bool {
	h := &gs.Horses[c]
	if h.Penalized {
		return false
	}
	h.Score -= gs.Rules.NoMovePenalty
	h.Penalized = true
	return true
}

// ResolveNoMovePenalty passes the turn when the side to move is stalled,
// charging the penalty the first time. It reports whether the turn was passed.
func (gs *GameState) ResolveNoMovePenalty() bool {
	if !gs.Stalled(gs.Turn) {
		return false
	}
	gs.ChargeStall(gs.Turn)
	gs.ChangeTurn()
	return true
}

// Winner returns the horse with the strictly higher score; ok is false on a draw.
func (gs *GameState) Winner() (winner Color, ok bool) {
	white, black := gs.Horses[White].Score, gs.Horses[Black].Score
	switch {
	case white > black:
		return White, true
	case black > white:
		return Black, true
	default:
		return White, false
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	for r := 0; r < ROWS; r++ {
		for c := 0; c < COLS; c++ {
			cell := gs.Board.cells[r][c]
			binary.Write(hasher, binary.LittleEndian, int64(cell.Kind))
			binary.Write(hasher, binary.LittleEndian, int64(cell.Points))
			binary.Write(hasher, binary.LittleEndian, int64(cell.Horse))
		}
	}

	for _, h := range gs.Horses {
		binary.Write(hasher, binary.LittleEndian, int64(h.Score))
		binary.Write(hasher, binary.LittleEndian, h.Penalized)
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("%sturn: %v  white: %d  black: %d\n", gs.Board.String(), gs.Turn,
		gs.Horses[White].Score, gs.Horses[Black].Score)
}
