package game

import "fmt"

// Color is the occupancy of a single board cell, doubling as a player
// identity: X connects the left and right edges (column 0 to column N-1),
// O connects the top and bottom edges (row 0 to row N-1).
type Color int8

const (
	Empty Color = iota
	X
	O
)

func (c Color) Opponent() Color {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		panic("no opponent for empty cell")
	}
}

func (c Color) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Coord addresses a board cell, 0-indexed.
type Coord struct {
	Row int
	Col int
}

// DefaultSize is the standard board size for a game.
const DefaultSize = 5

// MaxSize is bounded by the column letter notation (A-Z).
const MaxSize = 26

// Board is an N-by-N rhombic grid of hex cells. N is fixed for the board's
// lifetime. Cells are stored row-major.
type Board struct {
	size  int
	cells []Color
}

func NewBoard(size int) *Board {
	if size < 0 || size > MaxSize {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) contains(c Coord) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// At returns the occupancy of the given cell. An out-of-range coordinate is
// a programming error in the caller and panics.
func (b *Board) At(c Coord) Color {
	if !b.contains(c) {
		panic(fmt.Sprintf("coordinate %+v out of range on %dx%d board", c, b.size, b.size))
	}
	return b.cells[c.Row*b.size+c.Col]
}

// Set overwrites the given cell unconditionally. Legality (a move must
// target an empty cell) is the caller's responsibility: both move
// application and undo go through here.
func (b *Board) Set(c Coord, color Color) {
	if !b.contains(c) {
		panic(fmt.Sprintf("coordinate %+v out of range on %dx%d board", c, b.size, b.size))
	}
	b.cells[c.Row*b.size+c.Col] = color
}

// EmptyCells lists all empty cells in row-major order. The order is fixed
// because it determines move ordering and therefore which of several
// equally-scored moves the search picks.
func (b *Board) EmptyCells() []Coord {
	var empty []Coord
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] == Empty {
				empty = append(empty, Coord{Row: row, Col: col})
			}
		}
	}
	return empty
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Equal reports whether two boards have the same size and cell contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent board with the same contents.
func (b *Board) Copy() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}
