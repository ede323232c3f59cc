package game

// NoPath is the completion distance reported when a player's stones do not
// reach the target edge. It exceeds the longest possible path on any
// supported board (2*MaxSize), so comparisons and differences behave
// correctly without special-casing unreachability.
const NoPath = 99

// directions is the 6-neighbor hex adjacency for this row/col encoding.
var directions = [6]Coord{
	{-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0},
}

// startEdge lists the player's start-edge cells occupied by that player:
// column 0 for X, row 0 for O. The seed set for both traversals.
func (b *Board) startEdge(player Color) []Coord {
	var seeds []Coord
	for i := 0; i < b.size; i++ {
		var c Coord
		if player == X {
			c = Coord{Row: i, Col: 0}
		} else {
			c = Coord{Row: 0, Col: i}
		}
		if b.At(c) == player {
			seeds = append(seeds, c)
		}
	}
	return seeds
}

func (b *Board) onTargetEdge(player Color, c Coord) bool {
	if player == X {
		return c.Col == b.size-1
	}
	return c.Row == b.size-1
}

// Connected reports whether the player's stones form a chain from their
// start edge to their target edge. Depth-first traversal over same-color
// cells; each cell is visited at most once, so this is O(N^2).
func (b *Board) Connected(player Color) bool {
	visited := make([]bool, b.size*b.size)
	stack := b.startEdge(player)

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := c.Row*b.size + c.Col
		if visited[i] {
			continue
		}
		visited[i] = true

		if b.onTargetEdge(player, c) {
			return true
		}
		for _, d := range directions {
			n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if b.contains(n) && b.At(n) == player && !visited[n.Row*b.size+n.Col] {
				stack = append(stack, n)
			}
		}
	}
	return false
}

// CompletionDistance returns the number of hex steps along the player's own
// stones from the start edge to the first target-edge stone reached, or
// NoPath when no such chain exists. Breadth-first, so the first target-edge
// cell dequeued is at minimal distance.
//
// This is a stones-only distance: empty cells that could still be filled do
// not count, so it is a comparative evaluation signal rather than a
// game-theoretic distance to victory.
func (b *Board) CompletionDistance(player Color) int {
	type step struct {
		c    Coord
		dist int
	}

	visited := make([]bool, b.size*b.size)
	var queue []step
	for _, c := range b.startEdge(player) {
		queue = append(queue, step{c: c})
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		i := s.c.Row*b.size + s.c.Col
		if visited[i] {
			continue
		}
		visited[i] = true

		if b.onTargetEdge(player, s.c) {
			return s.dist
		}
		for _, d := range directions {
			n := Coord{Row: s.c.Row + d.Row, Col: s.c.Col + d.Col}
			if b.contains(n) && b.At(n) == player && !visited[n.Row*b.size+n.Col] {
				queue = append(queue, step{c: n, dist: s.dist + 1})
			}
		}
	}
	return NoPath
}
