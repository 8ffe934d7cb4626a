// Package search finds least-cost flight paths over a terrain.Grid.
//
// Four strategies share one entry point, FindPath:
//
//   - AStar:    frontier ordered by f = g + h, h = Euclidean distance to the goal.
//     Ties on f prefer the smaller h (greedier toward the goal).
//   - Dijkstra: frontier ordered by f = g. Always returns a lowest-cost path.
//   - Energy:   AStar whose step cost is multiplied by EnergyWeight; the heuristic is
//     scaled by the same weight so it stays admissible for every weight.
//   - Greedy:   a local walk that always moves to the passable neighbor closest to
//     the goal. It keeps no frontier and never backtracks, so it may wander
//     or oscillate; it stops once the path holds more than W×H cells and
//     returns what it walked.
//
// Step cost:
//
//	step(u→v) = MovementCost(v) · Distance(u, v)        (Distance = 1 or √2)
//
// Cells whose MovementCost reaches terrain.ObstacleCost are never entered.
//
// Outcomes:
//
//   - Found:     the path from start to goal inclusive.
//   - Exhausted: nil path and nil error. An unreachable goal is a normal outcome,
//     not a fault; callers must check len(path) == 0.
//   - Invalid start/goal (out of bounds or obstacle): ErrInvalidEndpoint, checked
//     before any search work.
//
// Implementation notes:
//
//   - Per-search state lives in an arena of flat slices indexed by Point.Key
//     (best g, predecessor, closed flag); nothing is shared between calls, so
//     concurrent searches over one unchanging Grid are safe.
//   - Lazy decrease-key: improved cells are pushed again and stale heap entries are
//     skipped when popped after the cell is closed.
//   - Equal-priority entries fall back to row-major Point order, making results
//     deterministic for a given grid.
//
// Complexity (graph searches):
//
//   - Time:  O(N log N) with N = W×H (each cell has at most 8 edges).
//   - Space: O(N).
package search
