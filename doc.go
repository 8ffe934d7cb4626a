// Package uavpath plans least-cost flight paths for a small aerial vehicle
// across a weighted 2D terrain grid.
//
// The module is organized as flat library packages plus application plumbing:
//
//	terrain/  Grid, Point, Kind, movement costs, neighbors, random generation, regions
//	search/   FindPath with A*, Dijkstra, greedy best-first and energy-weighted A*
//	route/    line-of-sight simplification and path statistics
//	drone/    battery and waypoint bookkeeping for a flown path
//	mapio/    plain-text map parsing, formatting and built-in maps
//	export/   CSV, JSON, text and binary mission reports; performance log
//	internal/ config (YAML + flags), logger (zap), mission planner
//	cmd/uavpath command-line front end
//
// Quick example:
//
//	g, _ := terrain.NewGrid(5, 5)
//	g.AddObstacle(terrain.Pt(2, 2))
//	path, err := search.FindPath(g, terrain.Pt(0, 0), terrain.Pt(4, 4),
//		search.WithStrategy(search.AStar))
//
// An unreachable goal yields an empty path and a nil error; only malformed
// requests (nil grid, blocked or out-of-range endpoints, bad options) fail.
package uavpath
