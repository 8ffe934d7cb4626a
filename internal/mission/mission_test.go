package mission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/uavpath/drone"
	"github.com/katalvlaran/uavpath/export"
	"github.com/katalvlaran/uavpath/internal/mission"
	"github.com/katalvlaran/uavpath/mapio"
	"github.com/katalvlaran/uavpath/route"
	"github.com/katalvlaran/uavpath/search"
	"github.com/katalvlaran/uavpath/terrain"
)

func openGrid(t *testing.T, w, h int) *terrain.Grid {
	t.Helper()
	g, err := terrain.NewGrid(w, h)
	require.NoError(t, err)
	return g
}

func observed(t *testing.T, g *terrain.Grid, opts ...mission.Option) (*mission.Planner, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := mission.New(g, zap.New(core), opts...)
	require.NoError(t, err)
	return p, logs
}

func TestNew(t *testing.T) {
	_, err := mission.New(nil, nil)
	assert.ErrorIs(t, err, mission.ErrNilGrid)

	g := openGrid(t, 2, 2)
	p, err := mission.New(g, nil)
	require.NoError(t, err)
	assert.Same(t, g, p.Grid())
}

func TestPlan_Diagonal(t *testing.T) {
	p, logs := observed(t, openGrid(t, 5, 5))

	res, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(4, 4), search.AStar)
	require.NoError(t, err)
	assert.True(t, res.Reached)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, []terrain.Point{{X: 0, Y: 0}, {X: 4, Y: 4}}, res.Simplified)
	assert.Equal(t, res.Simplified, res.Final())
	assert.Equal(t, 5, res.Stats.Steps)
	assert.InDelta(t, 5.0, res.Stats.Cost, 1e-12)
	assert.Equal(t, 2, res.Waypoints.Steps)
	assert.InDelta(t, 2.0, res.Waypoints.Cost, 1e-12)
	assert.Positive(t, res.Search.Expanded)

	entries := logs.FilterMessage("path found").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "astar", ctx["strategy"])
	assert.Equal(t, "(4,4)", ctx["goal"])
	assert.Equal(t, int64(2), ctx["simplified_steps"])

	m := res.Mission()
	assert.Equal(t, "astar", m.Algorithm)
	assert.Equal(t, res.Path, m.Path)
	assert.Equal(t, res.Search.Expanded, m.Expanded)
}

func TestPlan_NoSimplify(t *testing.T) {
	p, err := mission.New(openGrid(t, 5, 5), zaptest.NewLogger(t), mission.WithSimplify(false))
	require.NoError(t, err)

	res, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(4, 4), search.Dijkstra)
	require.NoError(t, err)
	assert.Nil(t, res.Simplified)
	assert.Equal(t, res.Path, res.Final())
	assert.InDelta(t, 5.0, res.Stats.Cost, 1e-12)
	assert.Equal(t, route.Stats{}, res.Waypoints)
}

// TestPlan_StatsMatchReport: the planner, the exported report and the drone
// agree on the energy of a simplified route.
func TestPlan_StatsMatchReport(t *testing.T) {
	g := mapio.SampleMap()
	p, _ := observed(t, g)

	res, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(10, 10), search.AStar)
	require.NoError(t, err)
	require.NotNil(t, res.Simplified)
	require.Less(t, len(res.Simplified), len(res.Path))

	report := export.NewReport(g, res.Mission())
	assert.InDelta(t, report.TotalCost, res.Stats.Cost, 1e-9)
	assert.InDelta(t, report.TotalDistance, res.Stats.Distance, 1e-9)
	assert.Equal(t, report.TotalSteps, res.Stats.Steps)

	// The drone pays for every cell after the one it starts on.
	d, err := drone.New(res.Start, 1e6)
	require.NoError(t, err)
	require.NoError(t, p.Fly(d, res))
	used := d.MaxEnergy() - d.Energy()
	assert.InDelta(t, res.Stats.Cost-g.MovementCost(res.Start), used, 1e-9)
}

func TestPlan_InvalidEndpoint(t *testing.T) {
	g := openGrid(t, 3, 3)
	g.AddObstacle(terrain.Pt(2, 2))
	p, logs := observed(t, g)

	_, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(2, 2), search.AStar)
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	_, err = p.Plan(terrain.Pt(-1, 0), terrain.Pt(1, 1), search.AStar)
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
	assert.Equal(t, 2, logs.FilterMessage("rejected endpoints").Len())
}

func TestPlan_Unreachable(t *testing.T) {
	g := openGrid(t, 3, 3)
	for y := 0; y < 3; y++ {
		g.AddObstacle(terrain.Pt(1, y))
	}
	p, logs := observed(t, g)

	res, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(2, 2), search.AStar)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Empty(t, res.Path)
	assert.Nil(t, res.Simplified)
	assert.Zero(t, res.Stats.Steps)
	assert.Equal(t, 1, logs.FilterMessage("no path to goal").Len())
	assert.Equal(t, 1, logs.FilterMessage("goal lies outside the start region").Len())
}

func TestPlan_BadWeight(t *testing.T) {
	p, _ := observed(t, openGrid(t, 3, 3), mission.WithEnergyWeight(0))

	_, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(2, 2), search.Energy)
	assert.ErrorIs(t, err, search.ErrBadEnergyWeight)

	// The weight is only consulted by the energy strategy.
	_, err = p.Plan(terrain.Pt(0, 0), terrain.Pt(2, 2), search.AStar)
	assert.NoError(t, err)
}

func TestCompare(t *testing.T) {
	g := openGrid(t, 6, 6)
	g.AddHill(terrain.Pt(2, 2))
	g.AddWindZone(terrain.Pt(3, 3))
	p, err := mission.New(g, zaptest.NewLogger(t), mission.WithSimplify(false))
	require.NoError(t, err)

	results, err := p.Compare(terrain.Pt(0, 0), terrain.Pt(5, 5))
	require.NoError(t, err)
	require.Len(t, results, len(search.Strategies()))
	for i, s := range search.Strategies() {
		assert.Equal(t, s, results[i].Strategy)
		assert.True(t, results[i].Reached, s.String())
	}
	// A* and Dijkstra agree on the optimal cost.
	assert.InDelta(t, results[0].Search.Cost, results[1].Search.Cost, 1e-9)

	_, err = p.Compare(terrain.Pt(0, 0), terrain.Pt(9, 9))
	assert.ErrorIs(t, err, search.ErrInvalidEndpoint)
}

func TestFly(t *testing.T) {
	g := openGrid(t, 5, 5)
	p, logs := observed(t, g)
	res, err := p.Plan(terrain.Pt(0, 0), terrain.Pt(4, 4), search.AStar)
	require.NoError(t, err)

	// Four cells after the start at cost 1 each.
	d, err := drone.New(terrain.Pt(0, 0), 100)
	require.NoError(t, err)
	require.NoError(t, p.Fly(d, res))
	assert.InDelta(t, 96.0, d.Energy(), 1e-12)
	assert.Equal(t, 1, logs.FilterMessage("flight complete").Len())

	d, err = drone.New(terrain.Pt(0, 0), 4.5)
	require.NoError(t, err)
	require.NoError(t, p.Fly(d, res))
	assert.Equal(t, 1, logs.FilterMessage("energy use above budget").Len())

	d, err = drone.New(terrain.Pt(0, 0), 3)
	require.NoError(t, err)
	assert.ErrorIs(t, p.Fly(d, res), drone.ErrInsufficientEnergy)
	assert.Equal(t, 1, logs.FilterMessage("flight aborted").Len())
}
