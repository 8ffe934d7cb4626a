// Package mission runs a planning request end to end: endpoint validation,
// timed search, optional simplification, statistics and logging.
package mission

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/uavpath/drone"
	"github.com/katalvlaran/uavpath/export"
	"github.com/katalvlaran/uavpath/route"
	"github.com/katalvlaran/uavpath/search"
	"github.com/katalvlaran/uavpath/terrain"
)

const (
	// SlowPlan is the search time above which Plan logs a warning.
	SlowPlan = 2 * time.Second
	// EnergyBudget is the share of battery capacity above which Fly logs a warning.
	EnergyBudget = 0.85
)

// ErrNilGrid is returned by New when no grid is supplied.
var ErrNilGrid = errors.New("mission: grid is nil")

// Options configures a Planner.
type Options struct {
	Simplify     bool
	EnergyWeight float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables simplification with weight 1.
func DefaultOptions() Options {
	return Options{Simplify: true, EnergyWeight: 1.0}
}

// WithSimplify toggles line-of-sight simplification of found paths.
func WithSimplify(on bool) Option {
	return func(o *Options) { o.Simplify = on }
}

// WithEnergyWeight sets the weight used by the energy strategy.
func WithEnergyWeight(w float64) Option {
	return func(o *Options) { o.EnergyWeight = w }
}

// Planner plans routes on one grid. The grid must not be mutated while a
// plan is in progress.
type Planner struct {
	grid *terrain.Grid
	log  *zap.Logger
	opts Options
}

// New returns a Planner for g. A nil log discards output.
func New(g *terrain.Grid, log *zap.Logger, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if log == nil {
		log = zap.NewNop()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Planner{grid: g, log: log, opts: o}, nil
}

// Grid returns the planner's grid.
func (p *Planner) Grid() *terrain.Grid { return p.grid }

// Result is the outcome of one Plan call.
type Result struct {
	Strategy   search.Strategy
	Start      terrain.Point
	Goal       terrain.Point
	Path       []terrain.Point // as returned by the search
	Simplified []terrain.Point // nil unless simplification ran
	Search     search.Stats
	Stats      route.Stats // of Path, the route actually flown
	Waypoints  route.Stats // of Simplified; zero unless simplification ran
	Elapsed    time.Duration
	Reached    bool
}

// Final returns the simplified path when present, else the raw path.
func (r *Result) Final() []terrain.Point {
	if r.Simplified != nil {
		return r.Simplified
	}
	return r.Path
}

// Mission converts r for package export. The raw path is exported since it
// lists every cell flown over.
func (r *Result) Mission() export.Mission {
	return export.Mission{
		Algorithm: r.Strategy.String(),
		Start:     r.Start,
		Goal:      r.Goal,
		Path:      r.Path,
		Expanded:  r.Search.Expanded,
		Elapsed:   r.Elapsed,
	}
}

// Plan searches from start to goal with strategy.
//
// Invalid endpoints return search.ErrInvalidEndpoint. An unreachable goal is
// not an error: the Result has Reached=false and, for graph strategies, an
// empty Path. Greedy may return a partial Path.
func (p *Planner) Plan(start, goal terrain.Point, strategy search.Strategy) (*Result, error) {
	log := p.log.With(
		zap.Stringer("strategy", strategy),
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
	)

	if err := search.ValidateEndpoints(p.grid, start, goal); err != nil {
		log.Warn("rejected endpoints", zap.Error(err))
		return nil, err
	}
	if !p.grid.Connected(start, goal) {
		log.Debug("goal lies outside the start region")
	}

	res := &Result{Strategy: strategy, Start: start, Goal: goal}
	began := time.Now()
	path, err := search.FindPath(p.grid, start, goal,
		search.WithStrategy(strategy),
		search.WithEnergyWeight(p.opts.EnergyWeight),
		search.WithStats(&res.Search),
	)
	res.Elapsed = time.Since(began)
	if err != nil {
		log.Error("search failed", zap.Error(err))
		return nil, fmt.Errorf("mission: %w", err)
	}

	res.Path = path
	res.Reached = search.Reached(path, goal)
	if p.opts.Simplify && res.Reached {
		res.Simplified = route.Simplify(p.grid, path)
	}
	res.Stats = route.Summarize(p.grid, path)
	res.Waypoints = route.Summarize(p.grid, res.Simplified)

	fields := []zap.Field{
		zap.Bool("reached", res.Reached),
		zap.Int("steps", len(path)),
		zap.Int("expanded", res.Search.Expanded),
		zap.Float64("cost", res.Stats.Cost),
		zap.Duration("elapsed", res.Elapsed),
	}
	if res.Simplified != nil {
		fields = append(fields, zap.Int("simplified_steps", len(res.Simplified)))
	}
	if res.Reached {
		log.Info("path found", fields...)
	} else {
		log.Warn("no path to goal", fields...)
	}
	if res.Elapsed > SlowPlan {
		log.Warn("planning exceeded time threshold", zap.Duration("threshold", SlowPlan))
	}

	return res, nil
}

// Compare plans start→goal with every strategy, in search.Strategies order.
func (p *Planner) Compare(start, goal terrain.Point) ([]*Result, error) {
	out := make([]*Result, 0, len(search.Strategies()))
	for _, s := range search.Strategies() {
		r, err := p.Plan(start, goal, s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Fly flies d along r.Path and reports energy use. Exceeding EnergyBudget of
// capacity is logged as a warning; running dry returns drone.ErrInsufficientEnergy.
func (p *Planner) Fly(d *drone.Drone, r *Result) error {
	before := d.Energy()
	err := d.Fly(p.grid, r.Path)
	used := before - d.Energy()

	log := p.log.With(
		zap.Float64("energy_used", used),
		zap.Float64("energy_left", d.Energy()),
		zap.Float64("capacity", d.MaxEnergy()),
	)
	if err != nil {
		log.Error("flight aborted", zap.Stringer("at", d.Position()), zap.Error(err))
		return err
	}
	if used > d.MaxEnergy()*EnergyBudget {
		log.Warn("energy use above budget", zap.Float64("budget", EnergyBudget))
	} else if d.IsLow() {
		log.Warn("battery low", zap.Float64("percent", d.Percentage()))
	} else {
		log.Debug("flight complete")
	}
	return nil
}
