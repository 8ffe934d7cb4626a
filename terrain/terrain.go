package terrain

import "math"

// neighborOffsets lists the 8-connected offsets in enumeration order:
// NW, W, SW, N, S, NE, E, SE. The order only affects which of several
// equal-cost results a search returns.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size terrain map. Width and height never change after construction.
// Cells are stored row-major: index = y*width + x.
type Grid struct {
	width, height int
	kinds         []Kind
	elevation     []float64
	wind          []float64
}

// NewGrid constructs a width×height grid of Normal cells with zero elevation and wind.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	n := width * height

	return &Grid{
		width:     width,
		height:    height,
		kinds:     make([]Kind, n),
		elevation: make([]float64, n),
		wind:      make([]float64, n),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width×Height, the number of cells.
func (g *Grid) Size() int { return g.width * g.height }

// index maps p to its row-major slot. Callers must bounds-check first.
func (g *Grid) index(p Point) int {
	return p.Key(g.width)
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// IsValid reports whether p lies within the grid: 0 ≤ x < width and 0 ≤ y < height.
func (g *Grid) IsValid(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsObstacle reports whether p is out of bounds or classified Obstacle.
func (g *Grid) IsObstacle(p Point) bool {
	if !g.IsValid(p) {
		return true
	}
	return g.kinds[g.index(p)] == Obstacle
}

// IsPassable reports whether p is in bounds and not an obstacle.
func (g *Grid) IsPassable(p Point) bool {
	return g.IsValid(p) && !g.IsObstacle(p)
}

// Kind returns the classification of p; out-of-bounds points report Obstacle.
func (g *Grid) Kind(p Point) Kind {
	if !g.IsValid(p) {
		return Obstacle
	}
	return g.kinds[g.index(p)]
}

// SetKind classifies p. Out-of-bounds points are ignored.
func (g *Grid) SetKind(p Point, k Kind) {
	if g.IsValid(p) {
		g.kinds[g.index(p)] = k
	}
}

// Elevation returns the elevation of p, or 0 when out of bounds.
func (g *Grid) Elevation(p Point) float64 {
	if !g.IsValid(p) {
		return 0
	}
	return g.elevation[g.index(p)]
}

// SetElevation sets the elevation of p. Out-of-bounds points are ignored.
func (g *Grid) SetElevation(p Point, v float64) {
	if g.IsValid(p) {
		g.elevation[g.index(p)] = v
	}
}

// Wind returns the wind resistance of p, or 0 when out of bounds.
func (g *Grid) Wind(p Point) float64 {
	if !g.IsValid(p) {
		return 0
	}
	return g.wind[g.index(p)]
}

// SetWind sets the wind resistance of p. Out-of-bounds points are ignored.
func (g *Grid) SetWind(p Point, v float64) {
	if g.IsValid(p) {
		g.wind[g.index(p)] = v
	}
}

// MovementCost returns the traversal penalty of entering p:
//
//	base(kind) + ElevationFactor·elevation + WindFactor·wind
//
// Obstacle cells and out-of-bounds points return ObstacleCost. Never panics.
func (g *Grid) MovementCost(p Point) float64 {
	if !g.IsValid(p) {
		return ObstacleCost
	}
	i := g.index(p)

	var base float64
	switch g.kinds[i] {
	case Obstacle:
		return ObstacleCost
	case Hill:
		base = HillCost
	case WindZone:
		base = WindCost
	default:
		base = NormalCost
	}

	return base + g.elevation[i]*ElevationFactor + g.wind[i]*WindFactor
}

// HeuristicCost returns the Euclidean distance between a and b.
// It is admissible and consistent for searches whose step cost is
// MovementCost·Distance, since MovementCost ≥ 1.
func (g *Grid) HeuristicCost(a, b Point) float64 {
	return Distance(a, b)
}

// Distance returns the Euclidean distance between a and b:
// 1 for orthogonal neighbors, √2 for diagonal ones.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Neighbors returns the passable cells among the up to 8 cells adjacent to p,
// in the fixed order NW, W, SW, N, S, NE, E, SE.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// AddObstacle marks p as an Obstacle.
func (g *Grid) AddObstacle(p Point) {
	g.SetKind(p, Obstacle)
}

// AddHill marks p as a Hill with DefaultHillElevation.
func (g *Grid) AddHill(p Point) {
	g.SetKind(p, Hill)
	g.SetElevation(p, DefaultHillElevation)
}

// AddWindZone marks p as a WindZone with DefaultWindResistance.
func (g *Grid) AddWindZone(p Point) {
	g.SetKind(p, WindZone)
	g.SetWind(p, DefaultWindResistance)
}

// Clone returns a deep copy of g. Useful to edit a map while searches
// still read the original.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:     g.width,
		height:    g.height,
		kinds:     make([]Kind, len(g.kinds)),
		elevation: make([]float64, len(g.elevation)),
		wind:      make([]float64, len(g.wind)),
	}
	copy(c.kinds, g.kinds)
	copy(c.elevation, g.elevation)
	copy(c.wind, g.wind)

	return c
}
