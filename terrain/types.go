// Package terrain defines core types, cost constants, and sentinel errors
// for the terrain subpackage of github.com/katalvlaran/uavpath.
package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrEmptyGrid indicates a grid was requested with a non-positive dimension.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrBadProbability indicates invalid terrain-generation probabilities.
	ErrBadProbability = errors.New("terrain: probabilities must be non-negative and sum to at most 1")
)

// Movement-cost constants.
const (
	NormalCost   = 1.0
	HillCost     = 3.0
	WindCost     = 2.0
	ObstacleCost = 1000.0 // effectively impassable

	ElevationFactor = 0.5
	WindFactor      = 0.3

	// DefaultHillElevation is assigned by AddHill and by map loaders for '^' cells.
	DefaultHillElevation = 3.0
	// DefaultWindResistance is assigned by AddWindZone and by map loaders for 'W' cells.
	DefaultWindResistance = 2.0
)

// Kind classifies a grid cell.
// Start and End are cosmetic markers; they cost the same as Normal.
type Kind uint8

const (
	Normal Kind = iota
	Hill
	Obstacle
	WindZone
	Start
	End
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Hill:
		return "hill"
	case Obstacle:
		return "obstacle"
	case WindZone:
		return "wind"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Rune returns the map character for the kind: '.', '^', 'O', 'W', 'S', 'D'.
// Unknown kinds render as '?'.
func (k Kind) Rune() rune {
	switch k {
	case Normal:
		return '.'
	case Hill:
		return '^'
	case Obstacle:
		return 'O'
	case WindZone:
		return 'W'
	case Start:
		return 'S'
	case End:
		return 'D'
	default:
		return '?'
	}
}

// KindFromRune maps a map character to its Kind. Lower-case 'o', 'w', 's', 'd' are
// accepted. The second result is false for characters with no mapping.
func KindFromRune(r rune) (Kind, bool) {
	switch r {
	case '.':
		return Normal, true
	case '^':
		return Hill, true
	case 'O', 'o':
		return Obstacle, true
	case 'W', 'w':
		return WindZone, true
	case 'S', 's':
		return Start, true
	case 'D', 'd':
		return End, true
	default:
		return Normal, false
	}
}

// Point is an integer cell coordinate. Point is comparable and can be used
// directly as a map key.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Less reports whether p precedes q in row-major order (x first, then y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Key packs p into a single integer for a grid of the given width: y*width + x.
// The key is unique for in-bounds points.
func (p Point) Key(width int) int {
	return p.Y*width + p.X
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
