// Package export writes mission results to disk-friendly formats.
//
// A Report is built once from a grid and a planned path and can then be
// rendered as:
//
//   - CSV: one row per waypoint with per-cell and cumulative energy.
//   - JSON: the full report, path included.
//   - Text: a human-readable mission log.
//   - Binary: a compact little-endian snapshot of the grid, endpoints and path
//     that ReadBinary restores exactly.
//
// AppendPerfLog keeps a running CSV of planning runs for later comparison.
//
// Energy here means the summed terrain.Grid.MovementCost of visited cells,
// start included, the same quantity route.Cost reports.
package export
