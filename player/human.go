package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"hex/game"
)

// Human reads moves in letter-number notation ("A5") from an input stream,
// rendering the board before each turn and reprompting on malformed or
// illegal input. Only legal moves ever reach the game state.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindNextMove(state game.State) (game.Move, error) {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}

	fmt.Fprint(h.out, Render(gs.Board))
	for {
		fmt.Fprintf(h.out, "%s to move (e.g. A1): ", gs.Player())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Move{}, fmt.Errorf("reading move: %w", err)
			}
			return game.Move{}, errors.New("input closed")
		}

		move, err := game.ParseMove(h.in.Text(), gs.Board.Size())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if gs.Board.At(move.Coord) != game.Empty {
			fmt.Fprintf(h.out, "cell %s is occupied\n", move)
			continue
		}
		return move, nil
	}
}

// Render draws the board as a staggered rhombus: column letters on top,
// 1-based row numbers on the left, each row shifted right by one cell to
// suggest the hex tiling.
func Render(b *game.Board) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < b.Size(); col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('A' + col))
	}
	sb.WriteByte('\n')

	for row := 0; row < b.Size(); row++ {
		sb.WriteString(strings.Repeat(" ", row))
		fmt.Fprintf(&sb, "%2d ", row+1)
		for col := 0; col < b.Size(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(game.Coord{Row: row, Col: col}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
