package metrics

import "time"

// AgentConfig identifies one agent configuration under test.
type AgentConfig struct {
	ID      int
	Kind    string // "negamax" or "random"
	Depth   int    // Negamax only
	Pruning bool   // Negamax only
}

// GameRecord summarizes one completed game.
type GameRecord struct {
	ID       int
	AgentX   int // AgentConfig.ID in the X seat
	AgentO   int // AgentConfig.ID in the O seat
	Winner   string
	Moves    int
	Duration time.Duration
}

// MoveRecord captures one search decision within a game.
type MoveRecord struct {
	Game    int // GameRecord.ID
	Step    int
	Player  string
	Move    string
	Depth   int
	Nodes   int
	Score   int
	Elapsed time.Duration
}
