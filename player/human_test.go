package player

import (
	"strings"
	"testing"

	"hex/game"

	"github.com/stretchr/testify/require"
)

func TestHumanReadsMove(t *testing.T) {
	gs := game.NewGameState(5)
	var out strings.Builder
	h := NewHuman(strings.NewReader("C3\n"), &out)

	move, err := h.FindNextMove(gs)

	require.NoError(t, err)
	require.Equal(t, "C3", move.String())
	require.Contains(t, out.String(), "X to move")
}

func TestHumanRepromptsOnMalformedNotation(t *testing.T) {
	gs := game.NewGameState(5)
	var out strings.Builder
	h := NewHuman(strings.NewReader("Z9\nhello\nA1\n"), &out)

	move, err := h.FindNextMove(gs)

	require.NoError(t, err)
	require.Equal(t, "A1", move.String())
	require.Contains(t, out.String(), "out of range")
}

func TestHumanRepromptsOnOccupiedCell(t *testing.T) {
	gs := game.NewGameState(5)
	first, err := game.ParseMove("A1", 5)
	require.NoError(t, err)
	require.NoError(t, gs.Apply(first))

	var out strings.Builder
	h := NewHuman(strings.NewReader("A1\nB1\n"), &out)

	move, err := h.FindNextMove(gs)

	require.NoError(t, err)
	require.Equal(t, "B1", move.String())
	require.Contains(t, out.String(), "occupied")
}

func TestHumanInputClosed(t *testing.T) {
	gs := game.NewGameState(5)
	h := NewHuman(strings.NewReader(""), &strings.Builder{})

	_, err := h.FindNextMove(gs)
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	b := game.NewBoard(3)
	b.Set(game.Coord{Row: 0, Col: 0}, game.X)
	b.Set(game.Coord{Row: 1, Col: 2}, game.O)

	want := "" +
		"   A B C\n" +
		" 1 X . .\n" +
		"  2 . . O\n" +
		"   3 . . .\n"
	require.Equal(t, want, Render(b))
}
