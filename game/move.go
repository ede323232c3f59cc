package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move places the current player's stone on one cell. The mover is implicit:
// whoever is to move when the move is applied.
type Move struct {
	Coord
}

// String renders the move in the external notation: column letter followed
// by 1-based row number, e.g. "A5" is column 0, row 4.
func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(m.Col), m.Row+1)
}

// ParseMove parses the external notation against a board of the given size.
// Malformed or out-of-range notation never produces a Move.
func ParseMove(s string, size int) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Move{}, fmt.Errorf("malformed move %q: want column letter followed by row number", s)
	}

	col := int(s[0] - 'A')
	if col < 0 || col >= size {
		return Move{}, fmt.Errorf("column %q out of range on %dx%d board", s[0:1], size, size)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return Move{}, fmt.Errorf("malformed row in move %q: %w", s, err)
	}
	if row < 1 || row > size {
		return Move{}, fmt.Errorf("row %d out of range on %dx%d board", row, size, size)
	}

	return Move{Coord{Row: row - 1, Col: col}}, nil
}
