package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDistanceEmptyBoard(t *testing.T) {
	gs := NewGameState(5)

	// Neither side has a chain: NoPath - NoPath
	require.Equal(t, 0, EvaluateDistance(gs))
}

func TestEvaluateDistanceFavorsShorterOwnChain(t *testing.T) {
	// X is connected (distance 0), O has no chain: from O's perspective
	// (O to move after X's last stone) the position is NoPath worse.
	gs := NewGameState(2)
	require.NoError(t, gs.Apply(Move{Coord{Row: 0, Col: 0}}))   // X
	require.NoError(t, gs.Apply(Move{Coord{Row: 1, Col: 0}}))   // O
	require.NoError(t, gs.Apply(Move{Coord{Row: 0, Col: 1}}))   // X connects

	require.Equal(t, O, gs.Player())
	require.Equal(t, 1, gs.Board.CompletionDistance(X))
	require.Equal(t, NoPath, gs.Board.CompletionDistance(O))
	require.Equal(t, 1-NoPath, EvaluateDistance(gs))
}

func TestEvaluateDistanceIsSymmetric(t *testing.T) {
	// The same position scores with opposite sign for the two movers
	gs := NewGameState(3)
	gs.Board.Set(Coord{Row: 1, Col: 0}, X)
	gs.Board.Set(Coord{Row: 1, Col: 1}, X)
	gs.Board.Set(Coord{Row: 0, Col: 2}, O)

	forX := EvaluateDistance(gs)

	require.NoError(t, gs.Apply(Move{Coord{Row: 2, Col: 2}}))
	gs.Board.Set(Coord{Row: 2, Col: 2}, Empty) // Keep stones identical, flip only the turn

	forO := EvaluateDistance(gs)
	require.Equal(t, -forX, forO)
}

func TestEvaluateDistanceRejectsForeignState(t *testing.T) {
	require.Panics(t, func() { EvaluateDistance(nil) })
}
