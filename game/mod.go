package game

// State is the move/undo/terminal interface the searcher consumes. Any game
// exposing it is searchable by negamax; GameState is the Hex implementation.
//
// Apply and Undo mutate shared state in place: the searcher descends by
// applying a move and restores on the way back up, so only one line of the
// game tree exists in memory at a time.
type State interface {
	Player() Color
	LegalMoves() []Move
	Apply(Move) error
	Undo(Move)
	IsOver() bool
	Winner() (Color, bool)
}

// Evaluate scores a state from the perspective of the player to move.
// Higher is better for that player. The single scalar is the only signal
// the search consumes, so alternative heuristics with the same shape are
// drop-in replacements.
type Evaluate func(State) int
