// Package drone tracks the state of a single vehicle flying a planned path:
// its position, remaining battery energy and the waypoints it has visited.
//
// Energy is measured in the same units as terrain.Grid.MovementCost, so a path
// returned by package search can be flown directly with Fly.
//
// A Drone is not safe for concurrent use.
package drone

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/uavpath/terrain"
)

// LowEnergyPercent is the battery level below which IsLow reports true.
const LowEnergyPercent = 20.0

var (
	// ErrBadCapacity indicates a battery capacity that is not a positive finite number.
	ErrBadCapacity = errors.New("drone: capacity must be > 0")

	// ErrInsufficientEnergy indicates the battery cannot pay for the next cell.
	ErrInsufficientEnergy = errors.New("drone: insufficient energy")

	// ErrBadStart indicates a path that does not begin at the drone's position.
	ErrBadStart = errors.New("drone: path does not start at current position")
)

// Drone is a battery-limited vehicle.
type Drone struct {
	pos       terrain.Point
	maxEnergy float64
	energy    float64
	waypoints []terrain.Point
}

// New returns a fully charged drone at start. start is recorded as the first waypoint.
func New(start terrain.Point, maxEnergy float64) (*Drone, error) {
	if !(maxEnergy > 0) || math.IsInf(maxEnergy, 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadCapacity, maxEnergy)
	}
	return &Drone{
		pos:       start,
		maxEnergy: maxEnergy,
		energy:    maxEnergy,
		waypoints: []terrain.Point{start},
	}, nil
}

// Position returns the cell the drone is over.
func (d *Drone) Position() terrain.Point { return d.pos }

// SetPosition moves the drone to p without spending energy or recording a waypoint.
func (d *Drone) SetPosition(p terrain.Point) { d.pos = p }

// Energy returns the remaining battery level.
func (d *Drone) Energy() float64 { return d.energy }

// MaxEnergy returns the battery capacity.
func (d *Drone) MaxEnergy() float64 { return d.maxEnergy }

// Consume drains amount from the battery. The level never drops below zero.
func (d *Drone) Consume(amount float64) {
	d.energy = max(0, d.energy-amount)
}

// Reset recharges the battery to capacity.
func (d *Drone) Reset() { d.energy = d.maxEnergy }

// HasEnergy reports whether at least required energy remains.
func (d *Drone) HasEnergy(required float64) bool { return d.energy >= required }

// Visit appends p to the waypoint log.
func (d *Drone) Visit(p terrain.Point) { d.waypoints = append(d.waypoints, p) }

// Waypoints returns a copy of the visited waypoints in order.
func (d *Drone) Waypoints() []terrain.Point {
	out := make([]terrain.Point, len(d.waypoints))
	copy(out, d.waypoints)
	return out
}

// ClearWaypoints empties the waypoint log.
func (d *Drone) ClearWaypoints() { d.waypoints = d.waypoints[:0] }

// Percentage returns remaining energy as a percentage of capacity.
func (d *Drone) Percentage() float64 { return d.energy / d.maxEnergy * 100 }

// IsLow reports whether the battery is below LowEnergyPercent.
func (d *Drone) IsLow() bool { return d.Percentage() < LowEnergyPercent }

// Fly moves the drone along path, paying g.MovementCost for every cell after
// the first. path[0] must equal the current position.
//
// If the battery cannot pay for a cell the drone stops on the previous one and
// ErrInsufficientEnergy is returned. Energy spent so far stays spent.
// An empty path is a no-op.
func (d *Drone) Fly(g *terrain.Grid, path []terrain.Point) error {
	if len(path) == 0 {
		return nil
	}
	if path[0] != d.pos {
		return fmt.Errorf("%w: at %v, path starts at %v", ErrBadStart, d.pos, path[0])
	}

	for _, p := range path[1:] {
		cost := g.MovementCost(p)
		if !d.HasEnergy(cost) {
			return fmt.Errorf("%w: need %.2f at %v, have %.2f", ErrInsufficientEnergy, cost, p, d.energy)
		}
		d.Consume(cost)
		d.pos = p
		d.Visit(p)
	}
	return nil
}
