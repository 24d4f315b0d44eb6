package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"smarthorses/game"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent reads moves as "row col" lines from in and writes prompts to
// out. Malformed or illegal input is reported and asked for again.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(ctx context.Context, state *game.GameState) (Decision, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Decision{}, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return Decision{}, err
		}
		fmt.Fprintf(a.out, "%v to move, legal: %v\n> ", state.Turn, moves)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return Decision{}, err
			}
			return Decision{}, io.EOF
		}
		p, err := ParsePosition(a.in.Text())
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		for _, m := range moves {
			if m == p {
				return Decision{Move: p, Found: true}, nil
			}
		}
		fmt.Fprintf(a.out, "%v is not a legal move\n", p)
	}
}

// ParsePosition reads "row col" or "row,col".
func ParsePosition(s string) (game.Position, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '(' || r == ')'
	})
	if len(fields) != 2 {
		return game.Position{}, fmt.Errorf("expected \"row col\", got %q", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Position{}, fmt.Errorf("bad row %q: %w", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Position{}, fmt.Errorf("bad col %q: %w", fields[1], err)
	}
	p := game.Position{Row: row, Col: col}
	if !p.InBounds() {
		return game.Position{}, fmt.Errorf("%v: %w", p, game.ErrOutOfBounds)
	}
	return p, nil
}
