package search

import "github.com/katalvlaran/uavpath/terrain"

// greedyWalk moves from start toward goal by always stepping to the passable
// neighbor with the smallest heuristic distance to goal (the first one in
// Neighbors order on ties). It has no frontier and never backtracks.
//
// The walk stops when:
//   - the goal is reached,
//   - the current cell has no passable neighbor, or
//   - the path grows beyond W×H cells (it is looping).
//
// In the last two cases the partial walk is returned and does not end at goal.
// Complexity: O(W×H) steps, O(1) work per step.
func greedyWalk(g *terrain.Grid, start, goal terrain.Point, st *Stats) []terrain.Point {
	limit := g.Size()
	path := []terrain.Point{start}
	current := start

	for current != goal {
		next, ok := bestNeighbor(g, current, goal)
		if !ok {
			break
		}
		current = next
		path = append(path, current)
		if st != nil {
			st.Expanded++
			st.Cost += g.MovementCost(current) * terrain.Distance(path[len(path)-2], current)
		}

		if len(path) > limit {
			break
		}
	}
	if st != nil && current != goal {
		st.Cost = 0
	}

	return path
}

// bestNeighbor picks the neighbor of p closest to goal. Neighbors whose cost
// reaches ObstacleCost are ignored.
func bestNeighbor(g *terrain.Grid, p, goal terrain.Point) (terrain.Point, bool) {
	var best terrain.Point
	bestH := 0.0
	found := false
	for _, n := range g.Neighbors(p) {
		if g.MovementCost(n) >= terrain.ObstacleCost {
			continue
		}
		h := g.HeuristicCost(n, goal)
		if !found || h < bestH {
			best, bestH, found = n, h, true
		}
	}

	return best, found
}
