package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/uavpath/terrain"
)

// FindPath computes a path from start to goal over g using the configured strategy.
//
// Returns:
//
//   - path: cells from start to goal inclusive. nil when the goal is unreachable
//     (err == nil in that case). For Greedy the path may end short of the goal;
//     use Reached to tell.
//   - err:  non-nil only for invalid input.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Strategy must be defined (ErrUnknownStrategy).
//  3. For Energy, EnergyWeight must be positive and finite (ErrBadEnergyWeight).
//  4. start and goal must be in bounds and not obstacles (ErrInvalidEndpoint).
//
// The grid must not be mutated while FindPath runs.
func FindPath(g *terrain.Grid, start, goal terrain.Point, opts ...Option) ([]terrain.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Strategy < AStar || cfg.Strategy > Energy {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}
	if cfg.Strategy == Energy {
		w := cfg.EnergyWeight
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: got %v", ErrBadEnergyWeight, w)
		}
	}
	if err := ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	if cfg.Strategy == Greedy {
		return greedyWalk(g, start, goal, cfg.Stats), nil
	}

	r := newRunner(g, goal, cfg)
	return r.run(start), nil
}

// ValidateEndpoints returns an ErrInvalidEndpoint-wrapping error when start or goal
// is out of bounds or classified Obstacle, and nil otherwise.
func ValidateEndpoints(g *terrain.Grid, start, goal terrain.Point) error {
	if err := checkEndpoint(g, "start", start); err != nil {
		return err
	}
	return checkEndpoint(g, "goal", goal)
}

func checkEndpoint(g *terrain.Grid, role string, p terrain.Point) error {
	if !g.IsValid(p) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidEndpoint, role, p, g.Width(), g.Height())
	}
	if g.IsObstacle(p) {
		return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidEndpoint, role, p)
	}
	return nil
}

// Reached reports whether path is non-empty and ends at goal.
func Reached(path []terrain.Point, goal terrain.Point) bool {
	return len(path) > 0 && path[len(path)-1] == goal
}

// AStarPath is shorthand for FindPath with the AStar strategy.
func AStarPath(g *terrain.Grid, start, goal terrain.Point) ([]terrain.Point, error) {
	return FindPath(g, start, goal, WithStrategy(AStar))
}

// DijkstraPath is shorthand for FindPath with the Dijkstra strategy.
func DijkstraPath(g *terrain.Grid, start, goal terrain.Point) ([]terrain.Point, error) {
	return FindPath(g, start, goal, WithStrategy(Dijkstra))
}

// GreedyPath is shorthand for FindPath with the Greedy strategy.
func GreedyPath(g *terrain.Grid, start, goal terrain.Point) ([]terrain.Point, error) {
	return FindPath(g, start, goal, WithStrategy(Greedy))
}

// EnergyOptimalPath is shorthand for FindPath with the Energy strategy and the given weight.
func EnergyOptimalPath(g *terrain.Grid, start, goal terrain.Point, weight float64) ([]terrain.Point, error) {
	return FindPath(g, start, goal, WithStrategy(Energy), WithEnergyWeight(weight))
}
