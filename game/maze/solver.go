package maze

import (
	"slices"

	"github.com/beka-birhanu/vinom-maze/game"
)

// Solve returns the shortest sequence of legal moves from the maze's entry to
// its goal, both included, or nil when the goal cannot be reached.
func Solve(m game.Maze) []game.CellPosition {
	return ShortestPath(m, m.Entry())
}

// ShortestPath runs a breadth-first search over moves accepted by
// IsValidMove, starting at from and stopping at the first goal reached.
func ShortestPath(m game.Maze, from game.CellPosition) []game.CellPosition {
	prev := map[game.CellPosition]game.CellPosition{from: from}
	queue := []game.CellPosition{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if m.IsGoal(current) {
			path := []game.CellPosition{current}
			for current != from {
				current = prev[current]
				path = append(path, current)
			}
			slices.Reverse(path)
			return path
		}

		for _, next := range m.Neighbors(current) {
			if _, seen := prev[next]; seen || !m.IsValidMove(current, next) {
				continue
			}
			prev[next] = current
			queue = append(queue, next)
		}
	}
	return nil
}

// Reachable returns the distance in moves from from to every cell it can reach.
// The center of a radial maze is reported but not expanded.
func Reachable(m game.Maze, from game.CellPosition) map[game.CellPosition]int {
	dist := map[game.CellPosition]int{from: 0}
	queue := []game.CellPosition{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.IsCenter() {
			continue
		}

		for _, next := range m.Neighbors(current) {
			if _, seen := dist[next]; seen || !m.IsValidMove(current, next) {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// OpenAdjacencies counts the pairs of cells joined by a legal move in both
// directions. Moves into goal sentinels are not counted.
func OpenAdjacencies(m game.Maze) int {
	seen := make(map[[2]game.CellPosition]struct{})
	for _, from := range m.Cells() {
		for _, to := range m.Neighbors(from) {
			if to.IsCenter() || !m.IsValidMove(from, to) || !m.IsValidMove(to, from) {
				continue
			}
			key := [2]game.CellPosition{from, to}
			if less(to, from) {
				key = [2]game.CellPosition{to, from}
			}
			seen[key] = struct{}{}
		}
	}
	return len(seen)
}

func less(a, b game.CellPosition) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
