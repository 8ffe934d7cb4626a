package terrain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uavpath/terrain"
)

//----------------------------------------------------------------------------//
// NewGrid and bounds
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.NewGrid(tc.w, tc.h)
			if !errors.Is(err, terrain.ErrEmptyGrid) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.w, tc.h, err, terrain.ErrEmptyGrid)
			}
		})
	}
}

// TestIsValid checks bounds on a 3×2 grid.
func TestIsValid(t *testing.T) {
	g, err := terrain.NewGrid(3, 2)
	require.NoError(t, err)

	for _, p := range []terrain.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.IsValid(p), "IsValid%v", p)
		assert.True(t, g.IsPassable(p), "IsPassable%v", p)
	}
	for _, p := range []terrain.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.IsValid(p), "IsValid%v", p)
		assert.True(t, g.IsObstacle(p), "out-of-bounds %v must be an obstacle", p)
		assert.False(t, g.IsPassable(p), "IsPassable%v", p)
		assert.Equal(t, terrain.Obstacle, g.Kind(p))
	}
}

//----------------------------------------------------------------------------//
// Cost model
//----------------------------------------------------------------------------//

// TestMovementCost_Formula checks base + 0.5·elevation + 0.3·wind for each kind.
func TestMovementCost_Formula(t *testing.T) {
	g, err := terrain.NewGrid(6, 1)
	require.NoError(t, err)

	g.SetKind(terrain.Pt(0, 0), terrain.Normal)
	g.SetKind(terrain.Pt(1, 0), terrain.Hill)
	g.SetElevation(terrain.Pt(1, 0), 2.0)
	g.SetKind(terrain.Pt(2, 0), terrain.WindZone)
	g.SetWind(terrain.Pt(2, 0), 1.0)
	g.SetKind(terrain.Pt(3, 0), terrain.Obstacle)
	g.SetElevation(terrain.Pt(3, 0), 4.0)
	g.SetKind(terrain.Pt(4, 0), terrain.Start)
	g.SetKind(terrain.Pt(5, 0), terrain.End)
	g.SetElevation(terrain.Pt(5, 0), 1.0)
	g.SetWind(terrain.Pt(5, 0), 1.0)

	assert.InDelta(t, 1.0, g.MovementCost(terrain.Pt(0, 0)), 1e-12)
	assert.InDelta(t, 4.0, g.MovementCost(terrain.Pt(1, 0)), 1e-12) // 3 + 0.5·2
	assert.InDelta(t, 2.3, g.MovementCost(terrain.Pt(2, 0)), 1e-12) // 2 + 0.3·1
	assert.Equal(t, terrain.ObstacleCost, g.MovementCost(terrain.Pt(3, 0)))
	assert.InDelta(t, 1.0, g.MovementCost(terrain.Pt(4, 0)), 1e-12)
	assert.InDelta(t, 1.8, g.MovementCost(terrain.Pt(5, 0)), 1e-12) // 1 + 0.5 + 0.3
	assert.Equal(t, terrain.ObstacleCost, g.MovementCost(terrain.Pt(9, 9)))
}

// TestMutators verifies the default elevation and wind applied by Add*.
func TestMutators(t *testing.T) {
	g, err := terrain.NewGrid(3, 3)
	require.NoError(t, err)

	g.AddHill(terrain.Pt(0, 0))
	g.AddWindZone(terrain.Pt(1, 1))
	g.AddObstacle(terrain.Pt(2, 2))
	g.AddObstacle(terrain.Pt(5, 5)) // ignored

	assert.Equal(t, terrain.Hill, g.Kind(terrain.Pt(0, 0)))
	assert.Equal(t, terrain.DefaultHillElevation, g.Elevation(terrain.Pt(0, 0)))
	assert.InDelta(t, 4.5, g.MovementCost(terrain.Pt(0, 0)), 1e-12)

	assert.Equal(t, terrain.WindZone, g.Kind(terrain.Pt(1, 1)))
	assert.Equal(t, terrain.DefaultWindResistance, g.Wind(terrain.Pt(1, 1)))
	assert.InDelta(t, 2.6, g.MovementCost(terrain.Pt(1, 1)), 1e-12)

	assert.True(t, g.IsObstacle(terrain.Pt(2, 2)))
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
}

func TestHeuristicCost(t *testing.T) {
	g, err := terrain.NewGrid(5, 5)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, g.HeuristicCost(terrain.Pt(0, 0), terrain.Pt(3, 4)), 1e-12)
	assert.InDelta(t, math.Sqrt2, g.HeuristicCost(terrain.Pt(1, 1), terrain.Pt(2, 2)), 1e-12)
	assert.Zero(t, g.HeuristicCost(terrain.Pt(2, 2), terrain.Pt(2, 2)))
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Order checks the NW, W, SW, N, S, NE, E, SE enumeration.
func TestNeighbors_Order(t *testing.T) {
	g, err := terrain.NewGrid(3, 3)
	require.NoError(t, err)

	want := []terrain.Point{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	assert.Equal(t, want, g.Neighbors(terrain.Pt(1, 1)))
}

// TestNeighbors_SkipsObstaclesAndEdges checks filtering at a corner next to an obstacle.
func TestNeighbors_SkipsObstaclesAndEdges(t *testing.T) {
	g, err := terrain.NewGrid(3, 3)
	require.NoError(t, err)
	g.AddObstacle(terrain.Pt(1, 0))

	got := g.Neighbors(terrain.Pt(0, 0))
	assert.Equal(t, []terrain.Point{{0, 1}, {1, 1}}, got)
}

//----------------------------------------------------------------------------//
// Generation
//----------------------------------------------------------------------------//

// TestGenerateRandom_Deterministic verifies identical seeds give identical maps.
func TestGenerateRandom_Deterministic(t *testing.T) {
	a, _ := terrain.NewGrid(20, 15)
	b, _ := terrain.NewGrid(20, 15)

	require.NoError(t, a.GenerateRandom(0.2, 0.1, 0.1, terrain.WithSeed(7)))
	require.NoError(t, b.GenerateRandom(0.2, 0.1, 0.1, terrain.WithSeed(7)))

	for y := 0; y < 15; y++ {
		for x := 0; x < 20; x++ {
			p := terrain.Pt(x, y)
			require.Equal(t, a.Kind(p), b.Kind(p), "kind at %v", p)
			require.Equal(t, a.MovementCost(p), b.MovementCost(p), "cost at %v", p)
		}
	}
}

// TestGenerateRandom_Ranges checks per-kind value ranges.
func TestGenerateRandom_Ranges(t *testing.T) {
	g, _ := terrain.NewGrid(40, 40)
	require.NoError(t, g.GenerateRandom(0.25, 0.25, 0.25, terrain.WithSeed(42)))

	seen := map[terrain.Kind]int{}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			p := terrain.Pt(x, y)
			k := g.Kind(p)
			seen[k]++
			switch k {
			case terrain.Hill:
				assert.GreaterOrEqual(t, g.Elevation(p), 0.0)
				assert.Less(t, g.Elevation(p), 5.0)
				assert.Zero(t, g.Wind(p))
			case terrain.WindZone:
				assert.Less(t, g.Wind(p), 3.0)
				assert.Zero(t, g.Elevation(p))
			case terrain.Normal:
				assert.Less(t, g.Elevation(p), 2.0)
			case terrain.Obstacle:
				assert.Zero(t, g.Elevation(p))
			default:
				t.Fatalf("unexpected kind %v at %v", k, p)
			}
		}
	}
	for _, k := range []terrain.Kind{terrain.Normal, terrain.Hill, terrain.WindZone, terrain.Obstacle} {
		assert.Positive(t, seen[k], "kind %v never generated", k)
	}
}

func TestGenerateRandom_BadProbability(t *testing.T) {
	g, _ := terrain.NewGrid(2, 2)
	assert.ErrorIs(t, g.GenerateRandom(-0.1, 0, 0), terrain.ErrBadProbability)
	assert.ErrorIs(t, g.GenerateRandom(0.5, 0.4, 0.2), terrain.ErrBadProbability)
	assert.ErrorIs(t, g.GenerateRandom(math.NaN(), 0.5, 0.5), terrain.ErrBadProbability)
	assert.ErrorIs(t, g.GenerateRandom(0, 0, math.NaN()), terrain.ErrBadProbability)
	assert.ErrorIs(t, g.GenerateRandom(math.Inf(1), 0, 0), terrain.ErrBadProbability)

	require.NoError(t, g.GenerateRandom(1, 0, 0))
	assert.True(t, g.IsObstacle(terrain.Pt(1, 1)))
}

//----------------------------------------------------------------------------//
// Regions and Clone
//----------------------------------------------------------------------------//

func TestRegions_Wall(t *testing.T) {
	g, _ := terrain.NewGrid(5, 3)
	for y := 0; y < 3; y++ {
		g.AddObstacle(terrain.Pt(2, y))
	}

	labels, count := g.Regions()
	assert.Equal(t, 2, count)
	assert.Equal(t, -1, labels[terrain.Pt(2, 1).Key(5)])
	assert.False(t, g.Connected(terrain.Pt(0, 0), terrain.Pt(4, 2)))
	assert.True(t, g.Connected(terrain.Pt(0, 0), terrain.Pt(1, 2)))
	assert.False(t, g.Connected(terrain.Pt(0, 0), terrain.Pt(2, 0)))
}

// TestRegions_DiagonalGap verifies that a diagonal gap connects regions under 8-connectivity.
func TestRegions_DiagonalGap(t *testing.T) {
	g, _ := terrain.NewGrid(2, 2)
	g.AddObstacle(terrain.Pt(1, 0))
	g.AddObstacle(terrain.Pt(0, 1))

	_, count := g.Regions()
	assert.Equal(t, 1, count)
	assert.True(t, g.Connected(terrain.Pt(0, 0), terrain.Pt(1, 1)))
}

func TestClone_Independent(t *testing.T) {
	g, _ := terrain.NewGrid(3, 3)
	g.AddHill(terrain.Pt(1, 1))

	c := g.Clone()
	c.AddObstacle(terrain.Pt(1, 1))

	assert.Equal(t, terrain.Hill, g.Kind(terrain.Pt(1, 1)))
	assert.Equal(t, terrain.Obstacle, c.Kind(terrain.Pt(1, 1)))
}

func TestKindRunes(t *testing.T) {
	for _, k := range []terrain.Kind{terrain.Normal, terrain.Hill, terrain.Obstacle, terrain.WindZone, terrain.Start, terrain.End} {
		got, ok := terrain.KindFromRune(k.Rune())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := terrain.KindFromRune('w')
	assert.True(t, ok)
	assert.Equal(t, terrain.WindZone, got)

	_, ok = terrain.KindFromRune('#')
	assert.False(t, ok)
}

func TestPointOrder(t *testing.T) {
	assert.True(t, terrain.Pt(0, 5).Less(terrain.Pt(1, 0)))
	assert.True(t, terrain.Pt(1, 0).Less(terrain.Pt(1, 1)))
	assert.False(t, terrain.Pt(1, 1).Less(terrain.Pt(1, 1)))
	assert.Equal(t, 7, terrain.Pt(2, 1).Key(5))
	assert.Equal(t, "(2,1)", terrain.Pt(2, 1).String())
}
