// Package search defines core types, configuration options and sentinel errors
// for the grid path searches of github.com/katalvlaran/uavpath.
//
// Options:
//
//	– Strategy:     AStar (default), Dijkstra, Greedy or Energy.
//	– EnergyWeight: multiplier applied to each step cost by the Energy strategy (> 0, default 1).
//	– Stats:        optional sink receiving expansion counters and the accumulated cost.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrInvalidEndpoint  if start or goal is out of bounds or an obstacle.
//	– ErrBadEnergyWeight  if EnergyWeight is not a positive finite number.
//	– ErrUnknownStrategy  if Strategy is not one of the defined values.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal lies outside the grid or on an obstacle.
	// The returned error wraps it with the offending endpoint.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrBadEnergyWeight indicates a non-positive, NaN or infinite energy weight.
	ErrBadEnergyWeight = errors.New("search: energy weight must be positive and finite")

	// ErrUnknownStrategy indicates an undefined Strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// AStar orders the frontier by g + h, preferring smaller h on ties.
	AStar Strategy = iota
	// Dijkstra orders the frontier by g alone.
	Dijkstra
	// Greedy walks to the neighbor closest to the goal, without a frontier or backtracking.
	Greedy
	// Energy is AStar with every step cost (and the heuristic) multiplied by EnergyWeight.
	Energy
)

var strategyNames = [...]string{
	AStar:    "astar",
	Dijkstra: "dijkstra",
	Greedy:   "greedy",
	Energy:   "energy",
}

// String returns the lower-case strategy name used in configs and reports.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Strategies lists all defined strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{AStar, Dijkstra, Greedy, Energy}
}

// ParseStrategy maps a name (case-insensitive; "a*" is accepted for AStar)
// to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "a*" {
		return AStar, nil
	}
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Stats reports what a single search did.
//
// Expanded – cells moved to the closed set.
// Pushed   – entries pushed into the open set, stale duplicates included.
// Cost     – accumulated g of the returned path (edge costs scaled by step
//
//	distance and EnergyWeight). Zero when no path was found.
type Stats struct {
	Expanded int
	Pushed   int
	Cost     float64
}

// Options configures FindPath.
type Options struct {
	Strategy     Strategy // Algorithm to run
	EnergyWeight float64  // Step-cost multiplier for the Energy strategy
	Stats        *Stats   // Optional sink for counters; nil disables
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns AStar with EnergyWeight 1.
func DefaultOptions() Options {
	return Options{
		Strategy:     AStar,
		EnergyWeight: 1.0,
	}
}

// WithStrategy selects the algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithEnergyWeight sets the step-cost multiplier used by the Energy strategy.
// Other strategies ignore it. FindPath rejects w ≤ 0 with ErrBadEnergyWeight.
func WithEnergyWeight(w float64) Option {
	return func(o *Options) {
		o.EnergyWeight = w
	}
}

// WithStats makes FindPath fill st with its counters. st is reset first.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}
