package searcher

import "time"

// SearchMetrics describes the most recent FindNextMove call.
type SearchMetrics struct {
	Depth   int
	Nodes   int // States visited during the search
	Score   int // Negamax value of the chosen move
	Elapsed time.Duration
	Aborted bool // Deadline hit before every root move was scored
}

func (n *Negamax) Metrics() SearchMetrics {
	return n.metrics
}
