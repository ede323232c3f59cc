package searcher

import (
	"errors"
	"time"

	"hex/game"

	"github.com/rs/zerolog/log"
)

// inf exceeds any reachable evaluation so scores negate without overflow.
const inf = 1 << 20

const DefaultDepth = 4

type Option func(*Negamax)

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

// WithDuration sets a soft deadline per search. The deadline is checked at
// each recursion entry; once it passes, the search returns the best move
// that was fully scored before the cutoff.
func WithDuration(duration time.Duration) Option {
	return func(n *Negamax) {
		if duration > 0 {
			n.duration = duration
		}
	}
}

// WithPruning enables alpha-beta pruning. Behavior-preserving: the chosen
// move and its score are identical to the unpruned search at any depth.
func WithPruning() Option {
	return func(n *Negamax) {
		n.prune = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

// Negamax is a fixed-depth negamax searcher over a mutable game.State.
// It owns exclusive mutation rights on the state for the duration of a
// FindNextMove call: descent applies moves in place and undoes them on the
// way back up. Not safe for concurrent use.
type Negamax struct {
	depth    int
	duration time.Duration
	prune    bool
	evaluate game.Evaluate

	deadline time.Time
	aborted  bool
	nodes    int
	metrics  SearchMetrics
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{
		depth:    DefaultDepth,
		evaluate: game.EvaluateDistance,
	}
	for _, option := range options {
		option(n)
	}
	return n
}

// FindNextMove picks the move maximizing the negamax value at the
// configured depth. Ties go to the first move in the state's enumeration
// order, so the result is deterministic for a fixed depth (no deadline).
// Errors only when the state has no legal moves.
func (n *Negamax) FindNextMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, errors.New("no legal moves: game is over")
	}

	start := time.Now()
	n.nodes = 0
	n.aborted = false
	n.deadline = time.Time{}
	if n.duration > 0 {
		n.deadline = start.Add(n.duration)
	}

	best := moves[0]
	bestScore := -inf
	alpha, beta := -inf, inf
	for _, move := range moves {
		mustApply(state, move)
		score := -n.search(state, n.depth-1, -beta, -alpha)
		state.Undo(move)

		if n.aborted {
			break // Keep the best fully-scored move
		}
		if score > bestScore {
			best, bestScore = move, score
		}
		if n.prune && bestScore > alpha {
			alpha = bestScore
		}
	}

	n.metrics = SearchMetrics{
		Depth:   n.depth,
		Nodes:   n.nodes,
		Score:   bestScore,
		Elapsed: time.Since(start),
		Aborted: n.aborted,
	}
	log.Debug().
		Stringer("move", best).
		Int("score", bestScore).
		Int("depth", n.depth).
		Int("nodes", n.nodes).
		Dur("elapsed", n.metrics.Elapsed).
		Msg("search complete")

	return best, nil
}

// search returns the negamax value of state from the mover's perspective.
// The child's value is from the opponent's perspective, so each candidate
// move is worth the negated child score.
func (n *Negamax) search(state game.State, depth, alpha, beta int) int {
	n.nodes++
	if !n.deadline.IsZero() && time.Now().After(n.deadline) {
		n.aborted = true
		return n.evaluate(state)
	}
	if depth == 0 || state.IsOver() {
		return n.evaluate(state)
	}

	best := -inf
	for _, move := range state.LegalMoves() {
		mustApply(state, move)
		score := -n.search(state, depth-1, -beta, -alpha)
		state.Undo(move)

		if n.aborted {
			break
		}
		if score > best {
			best = score
		}
		if n.prune {
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

// The searcher only iterates LegalMoves, so Apply cannot fail here.
func mustApply(state game.State, move game.Move) {
	if err := state.Apply(move); err != nil {
		panic(err)
	}
}
