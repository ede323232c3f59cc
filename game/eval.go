package game

// EvaluateDistance scores a position as the opponent's completion distance
// minus the mover's own: the further the opponent is from connecting and
// the closer the mover, the better. A connected mover scores NoPath higher
// than any unconnected position, so forced wins surface as extreme values
// without a separate terminal override.
func EvaluateDistance(s State) int {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	me := gs.Player()
	opponent := me.Opponent()
	return gs.Board.CompletionDistance(opponent) - gs.Board.CompletionDistance(me)
}
