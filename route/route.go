// Package route post-processes paths returned by package search: it shortens
// them by line-of-sight and reports aggregate statistics.
//
// All functions treat paths as immutable. Simplify returns a new slice (or the
// input itself when nothing can change) and never edits its argument.
package route

import (
	"github.com/katalvlaran/uavpath/terrain"
)

// Stats summarizes a path.
type Stats struct {
	Steps    int     `json:"steps"`    // number of waypoints, start and goal included
	Distance float64 `json:"distance"` // summed Euclidean distance between consecutive waypoints
	Cost     float64 `json:"cost"`     // summed MovementCost of every waypoint
	AvgCost  float64 `json:"avg_cost"` // Cost / Steps
	Valid    bool    `json:"valid"`    // every waypoint passable
}

// Simplify drops interior waypoints that can be skipped by flying straight from
// the previous kept waypoint to the next waypoint.
//
// For each interior waypoint path[i] the segment last→path[i+1] is sampled at
// steps = max(|dx|,|dy|) integer points, where last is the most recent waypoint
// kept in the output:
//
//	(x0 + dx·k/steps, y0 + dy·k/steps),  k = 1 … steps-1
//
// If none of those points is an obstacle, path[i] is dropped. This is a single
// forward pass, not repeated to a fixpoint. Every segment of the result has
// passed the test above, so shortcuts never cut through an obstacle even when
// several consecutive waypoints are dropped. Paths of two or fewer points are
// returned unchanged.
func Simplify(g *terrain.Grid, path []terrain.Point) []terrain.Point {
	if len(path) <= 2 {
		return path
	}

	out := make([]terrain.Point, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path)-1; i++ {
		if !LineOfSight(g, out[len(out)-1], path[i+1]) {
			out = append(out, path[i])
		}
	}
	out = append(out, path[len(path)-1])

	return out
}

// LineOfSight reports whether every intermediate integer point on the segment
// a→b is free of obstacles. Endpoints are not tested.
func LineOfSight(g *terrain.Grid, a, b terrain.Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(abs(dx), abs(dy))

	for k := 1; k < steps; k++ {
		p := terrain.Point{X: a.X + dx*k/steps, Y: a.Y + dy*k/steps}
		if g.IsObstacle(p) {
			return false
		}
	}
	return true
}

// Cost sums MovementCost over every waypoint, start and goal included.
// Returns 0 for an empty path.
func Cost(g *terrain.Grid, path []terrain.Point) float64 {
	total := 0.0
	for _, p := range path {
		total += g.MovementCost(p)
	}
	return total
}

// Distance sums the Euclidean length of consecutive segments.
func Distance(path []terrain.Point) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += terrain.Distance(path[i-1], path[i])
	}
	return total
}

// IsValid reports whether every waypoint is passable. An empty path is valid.
func IsValid(g *terrain.Grid, path []terrain.Point) bool {
	for _, p := range path {
		if !g.IsPassable(p) {
			return false
		}
	}
	return true
}

// Summarize computes Stats for path. An empty path yields zero Stats with Valid=false.
func Summarize(g *terrain.Grid, path []terrain.Point) Stats {
	if len(path) == 0 {
		return Stats{}
	}
	cost := Cost(g, path)

	return Stats{
		Steps:    len(path),
		Distance: Distance(path),
		Cost:     cost,
		AvgCost:  cost / float64(len(path)),
		Valid:    IsValid(g, path),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
