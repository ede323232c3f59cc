package engine

import (
	"fmt"

	"hex/game"

	"github.com/rs/zerolog/log"
)

// Agent chooses the next move for the player whose turn it is. The state is
// handed over for the duration of the call; agents searching with apply and
// undo must leave it exactly as they found it.
type Agent interface {
	FindNextMove(state game.State) (game.Move, error)
}

// Engine drives a local game between two agents on one mutable state, with
// strict turn alternation.
type Engine struct {
	State  *game.GameState
	Agents [2]Agent // Agents[0] plays X, Agents[1] plays O
}

func Local(state *game.GameState, agents [2]Agent) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for each player")
	}
	return &Engine{State: state, Agents: agents}
}

// Run executes the game loop until the game is over and returns the winner,
// or Empty for a full board without a verified connection. An agent
// producing an illegal move is a fatal error: agents validate their own
// moves, the engine does not reprompt.
func (e *Engine) Run() (game.Color, error) {
	log.Info().
		Int("size", e.State.Board.Size()).
		Stringer("player", e.State.Player()).
		Msg("game starting")

	for !e.State.IsOver() {
		player := e.State.Player()
		move, err := e.Agents[seat(player)].FindNextMove(e.State)
		if err != nil {
			return game.Empty, fmt.Errorf("agent for %s failed to move: %w", player, err)
		}
		if err := e.State.Apply(move); err != nil {
			return game.Empty, fmt.Errorf("agent for %s: %w", player, err)
		}
		log.Info().Stringer("player", player).Stringer("move", move).Msg("move played")
	}

	winner, ok := e.State.Winner()
	if !ok {
		log.Info().Msg("game over: board full with no connection")
		return game.Empty, nil
	}
	log.Info().Stringer("winner", winner).Msg("game over")
	return winner, nil
}

func seat(player game.Color) int {
	if player == game.X {
		return 0
	}
	return 1
}
