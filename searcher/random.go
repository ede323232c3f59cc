package searcher

import (
	"errors"

	"hex/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among legal moves. A baseline opponent for engine
// tests and experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindNextMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, errors.New("no legal moves: game is over")
	}
	return moves[r.rng.Intn(len(moves))], nil
}
