package experiments

import (
	"fmt"
	"time"

	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"

	"github.com/rs/zerolog/log"
)

// Two negamax agents at fixed depths play deterministically, so each
// matchup needs exactly one game per seat assignment.
const gamesPerSeat = 1

// Stochastic matchups (random baseline) get fresh seeds per game.
const randomGames = 10

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "negamax", Depth: 1},
	{ID: 2, Kind: "negamax", Depth: 2},
	{ID: 3, Kind: "negamax", Depth: 3},
	{ID: 4, Kind: "negamax", Depth: 4, Pruning: true},
}

// RunDepthExperiment measures how search depth translates to playing
// strength: every depth agent plays a shallow baseline and a random
// baseline, in both seats, and all games and per-move search metrics are
// written out as CSV.
func RunDepthExperiment(size int) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "negamax", Depth: 1}
	random := metrics.AgentConfig{ID: 5, Kind: "random"}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
		matchUps = append(matchUps, [2]metrics.AgentConfig{random, config})
	}

	configs := append([]metrics.AgentConfig{baseline, random}, depthConfigs...)
	return runExperiment("depth_to_strength", size, configs, matchUps)
}

func runExperiment(name string, size int, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	log.Info().Str("experiment", name).Int("size", size).Msg("starting experiment")

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchUps {
		games := gamesPerSeat
		if matchup[0].Kind == "random" || matchup[1].Kind == "random" {
			games = randomGames
		}

		log.Info().
			Int("matchup", mi+1).
			Interface("agent1", matchup[0]).
			Interface("agent2", matchup[1]).
			Msg("starting matchup")

		for i := 0; i < games; i++ {
			// Alternate seats so neither configuration always moves first
			seats := [2]metrics.AgentConfig{matchup[0], matchup[1]}
			if i%2 == 1 {
				seats[0], seats[1] = seats[1], seats[0]
			}

			count++
			gameRecord, gameMoves, err := runGame(count, size, seats, uint64(count))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, gameMoves...)

			log.Info().Int("game", count).Str("winner", gameRecord.Winner).Msg("game complete")
		}
	}

	log.Info().Str("experiment", name).Int("games", count).Msg("experiment complete")

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("creating results writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("storing agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("storing game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("storing move records: %w", err)
	}
	return nil
}

func runGame(id, size int, seats [2]metrics.AgentConfig, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state := game.NewGameState(size)

	var moveRecords []metrics.MoveRecord
	step := 0
	agents := [2]engine.Agent{}
	for i, config := range seats {
		agents[i] = &recordingAgent{
			inner:   createAgent(config, seed+uint64(i)),
			game:    id,
			step:    &step,
			records: &moveRecords,
		}
	}

	start := time.Now()
	winner, err := engine.Local(state, agents).Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	return metrics.GameRecord{
		ID:       id,
		AgentX:   seats[0].ID,
		AgentO:   seats[1].ID,
		Winner:   winner.String(),
		Moves:    step,
		Duration: time.Since(start),
	}, moveRecords, nil
}

func createAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	if config.Kind == "random" {
		return searcher.NewRandom(seed)
	}

	options := []searcher.Option{searcher.WithDepth(config.Depth)}
	if config.Pruning {
		options = append(options, searcher.WithPruning())
	}
	return searcher.NewNegamax(options...)
}

// recordingAgent wraps an agent and captures a MoveRecord per decision,
// including search metrics when the inner agent is a negamax searcher.
type recordingAgent struct {
	inner   engine.Agent
	game    int
	step    *int
	records *[]metrics.MoveRecord
}

func (a *recordingAgent) FindNextMove(state game.State) (game.Move, error) {
	move, err := a.inner.FindNextMove(state)
	if err != nil {
		return game.Move{}, err
	}

	*a.step++
	record := metrics.MoveRecord{
		Game:   a.game,
		Step:   *a.step,
		Player: state.Player().String(),
		Move:   move.String(),
	}
	if nm, ok := a.inner.(*searcher.Negamax); ok {
		m := nm.Metrics()
		record.Depth = m.Depth
		record.Nodes = m.Nodes
		record.Score = m.Score
		record.Elapsed = m.Elapsed
	}
	*a.records = append(*a.records, record)
	return move, nil
}
