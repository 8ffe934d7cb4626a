// Package mapio reads and writes terrain grids as plain-text maps.
//
// A map is a block of equal-length lines, one character per cell:
//
//	.  normal        ^  hill (elevation 3.0)
//	O  obstacle      W  wind zone (resistance 2.0)
//	S  start marker  D  destination marker
//
// Lower-case o, w, s, d are accepted. Any other character is read as normal
// terrain. Carriage returns are stripped and blank lines are skipped, so files
// written on any platform load the same way.
//
// Errors:
//
//   - ErrMapFormat wraps every parse failure.
//   - ErrEmptyMap when no non-blank line is present.
//   - ErrDimensionMismatch when rows differ in length.
package mapio
