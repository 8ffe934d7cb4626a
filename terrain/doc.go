// Package terrain models the weighted 2D flight grid a UAV plans over.
//
// What:
//
//   - Grid stores, per cell, a terrain Kind, an elevation and a wind-resistance value.
//   - MovementCost turns those three values into a single traversal penalty.
//   - HeuristicCost estimates the remaining distance between two cells (Euclidean).
//   - Neighbors enumerates the passable cells around a cell under 8-connectivity.
//   - GenerateRandom rolls procedural terrain from a seedable random source.
//   - Regions labels 8-connected areas of passable cells.
//
// Cost model:
//
//	cost(cell) = base(kind) + 0.5·elevation + 0.3·wind
//
//	base: Normal=1.0, Hill=3.0, WindZone=2.0, Start/End=1.0
//	Obstacle (and any out-of-bounds cell) = ObstacleCost (1000.0)
//
// Every per-step cost is ≥ 1.0, so the Euclidean heuristic never overestimates the
// remaining cost of a path whose edges are scaled by their Euclidean length.
// Keep that relationship when altering the constants.
//
// Concurrency:
//
//   - Grid has no internal locking. Any number of searches may read the same Grid
//     concurrently, but mutators (SetKind, AddObstacle, GenerateRandom, …) must not run
//     while a search over that Grid is in flight.
//
// Complexity:
//
//   - Point queries (IsValid, MovementCost, HeuristicCost): O(1).
//   - Neighbors: O(1), at most 8 cells.
//   - GenerateRandom, Regions: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrBadProbability: a generation probability is negative or they sum above 1.
package terrain
