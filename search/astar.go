package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/uavpath/terrain"
)

// runner holds the mutable state for a single AStar, Dijkstra or Energy execution.
// All per-cell state is stored in flat slices indexed by Point.Key, so there are
// no per-node allocations to release on any exit path.
type runner struct {
	g        *terrain.Grid // Read-only within a search.
	goal     terrain.Point
	strategy Strategy
	weight   float64   // Step-cost multiplier (1 unless Energy).
	dist     []float64 // Best-known g per cell; +Inf when unseen.
	prev     []int     // Predecessor key per cell; -1 when none.
	closed   []bool    // Finalized cells.
	pq       nodePQ    // Open set with lazy decrease-key.
	stats    *Stats
}

func newRunner(g *terrain.Grid, goal terrain.Point, cfg Options) *runner {
	n := g.Size()
	r := &runner{
		g:        g,
		goal:     goal,
		strategy: cfg.Strategy,
		weight:   1.0,
		dist:     make([]float64, n),
		prev:     make([]int, n),
		closed:   make([]bool, n),
		pq:       make(nodePQ, 0, n),
		stats:    cfg.Stats,
	}
	if cfg.Strategy == Energy {
		r.weight = cfg.EnergyWeight
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}

	return r
}

// heuristic returns the strategy-specific estimate from p to the goal.
// Dijkstra uses none; Energy scales the Euclidean estimate by its weight so the
// estimate never exceeds the weighted remaining cost.
func (r *runner) heuristic(p terrain.Point) float64 {
	switch r.strategy {
	case Dijkstra:
		return 0
	case Energy:
		return r.g.HeuristicCost(p, r.goal) * r.weight
	default:
		return r.g.HeuristicCost(p, r.goal)
	}
}

func (r *runner) key(p terrain.Point) int {
	return p.Key(r.g.Width())
}

// push records an improved g for p and enqueues it.
func (r *runner) push(p terrain.Point, g float64) {
	h := r.heuristic(p)
	heap.Push(&r.pq, &nodeItem{cell: p, g: g, h: h, f: g + h})
	if r.stats != nil {
		r.stats.Pushed++
	}
}

// run is the core loop: pop the best entry, stop at the goal, otherwise close
// the cell and relax its neighbors. Returns nil when the frontier empties.
func (r *runner) run(start terrain.Point) []terrain.Point {
	r.dist[r.key(start)] = 0
	heap.Init(&r.pq)
	r.push(start, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell
		ku := r.key(u)

		// Stale duplicate of an already finalized cell.
		if r.closed[ku] {
			continue
		}

		if u == r.goal {
			if r.stats != nil {
				r.stats.Cost = r.dist[ku]
			}
			return r.reconstruct(ku)
		}

		r.closed[ku] = true
		if r.stats != nil {
			r.stats.Expanded++
		}
		r.relax(u, r.dist[ku])
	}

	return nil
}

// relax examines each passable neighbor v of u and improves dist[v] when going
// through u is strictly cheaper. Cells costing ObstacleCost or more are skipped.
func (r *runner) relax(u terrain.Point, gu float64) {
	for _, v := range r.g.Neighbors(u) {
		kv := r.key(v)
		if r.closed[kv] {
			continue
		}

		cost := r.g.MovementCost(v)
		if cost >= terrain.ObstacleCost {
			continue
		}

		// Strict "<" avoids pushing duplicates for equal-cost alternatives.
		tentative := gu + cost*r.weight*terrain.Distance(u, v)
		if tentative >= r.dist[kv] {
			continue
		}

		r.dist[kv] = tentative
		r.prev[kv] = r.key(u)
		r.push(v, tentative)
	}
}

// reconstruct walks predecessors back from the goal key and returns the path
// in start→goal order.
func (r *runner) reconstruct(goalKey int) []terrain.Point {
	var path []terrain.Point
	for at := goalKey; at >= 0; at = r.prev[at] {
		path = append(path, r.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
