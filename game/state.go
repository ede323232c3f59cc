package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Apply when the targeted cell is occupied.
// Recoverable: an input collaborator should catch it and reprompt. The
// searcher never triggers it because it only iterates LegalMoves.
var ErrIllegalMove = errors.New("illegal move")

// Status is the lifecycle of a game.
type Status int

const (
	InProgress Status = iota
	Won
	// Drawn is a full board with no verified connection. A finished Hex
	// game always has exactly one connected side, so this is unreachable
	// in real play, but the state machine only reports what it can verify.
	Drawn
)

// GameState is the mutable game: a board plus the ordered history of
// applied moves. The player to move is derived from the history length,
// never stored, so undo cannot leave the turn out of sync with the board.
type GameState struct {
	Board   *Board
	history []Move
}

// NewGameState returns an in-progress game on an empty size-by-size board,
// X to move.
func NewGameState(size int) *GameState {
	return &GameState{Board: NewBoard(size)}
}

// Player returns the player to move. X moves first.
func (gs *GameState) Player() Color {
	if len(gs.history)%2 == 0 {
		return X
	}
	return O
}

// LastPlayer returns the player who made the most recent move, or Empty on
// a fresh game.
func (gs *GameState) LastPlayer() Color {
	if len(gs.history) == 0 {
		return Empty
	}
	return gs.Player().Opponent()
}

// LegalMoves lists every empty cell in the board's row-major order. Only a
// full board yields no moves.
func (gs *GameState) LegalMoves() []Move {
	cells := gs.Board.EmptyCells()
	moves := make([]Move, len(cells))
	for i, c := range cells {
		moves[i] = Move{c}
	}
	return moves
}

// Apply places the current player's stone and records the move. The board
// changes by exactly one cell or not at all.
func (gs *GameState) Apply(m Move) error {
	if gs.Board.At(m.Coord) != Empty {
		return fmt.Errorf("%w: cell %s is occupied", ErrIllegalMove, m)
	}
	gs.Board.Set(m.Coord, gs.Player())
	gs.history = append(gs.history, m)
	return nil
}

// Undo reverts the most recently applied move, restoring its cell to Empty.
// Moves must be undone in strict LIFO order; undoing any other move would
// silently corrupt the position, so it panics instead.
func (gs *GameState) Undo(m Move) {
	if len(gs.history) == 0 {
		panic("undo with no moves applied")
	}
	if last := gs.history[len(gs.history)-1]; last != m {
		panic(fmt.Sprintf("undo out of order: got %s, last applied move is %s", m, last))
	}
	gs.Board.Set(m.Coord, Empty)
	gs.history = gs.history[:len(gs.history)-1]
}

// IsOver reports whether the game has ended: the last mover completed a
// connection, or the board is full. Checking only the last mover is exact,
// not an approximation: placing a stone can only change connectivity for
// the side that placed it.
func (gs *GameState) IsOver() bool {
	if last := gs.LastPlayer(); last != Empty && gs.Board.Connected(last) {
		return true
	}
	return gs.Board.Full()
}

// Winner returns the winning player if a connection is verified. A full
// board without one reports no winner.
func (gs *GameState) Winner() (Color, bool) {
	if last := gs.LastPlayer(); last != Empty && gs.Board.Connected(last) {
		return last, true
	}
	return Empty, false
}

func (gs *GameState) Status() Status {
	if _, ok := gs.Winner(); ok {
		return Won
	}
	if gs.Board.Full() {
		return Drawn
	}
	return InProgress
}
