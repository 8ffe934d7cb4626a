package mapio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/uavpath/terrain"
)

var (
	// ErrMapFormat is the parent of every parse error.
	ErrMapFormat = errors.New("mapio: malformed map")
	// ErrEmptyMap indicates input without any map rows.
	ErrEmptyMap = fmt.Errorf("%w: no rows", ErrMapFormat)
	// ErrDimensionMismatch indicates rows of unequal length.
	ErrDimensionMismatch = fmt.Errorf("%w: rows must have equal length", ErrMapFormat)
)

// Parse builds a grid from map text.
func Parse(text string) (*terrain.Grid, error) {
	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, y, len(row), width)
		}
	}

	g, err := terrain.NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, r := range row {
			p := terrain.Pt(x, y)
			k, _ := terrain.KindFromRune(r)
			switch k {
			case terrain.Hill:
				g.AddHill(p)
			case terrain.WindZone:
				g.AddWindZone(p)
			default:
				g.SetKind(p, k)
			}
		}
	}
	return g, nil
}

func splitRows(text string) [][]rune {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	return rows
}

// Load reads and parses the map file at path.
func Load(path string) (*terrain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: read %s: %w", path, err)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Format renders g as map text, one newline-terminated line per row.
// Elevation and wind values are not preserved; only the cell kind is.
func Format(g *terrain.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sb.WriteRune(g.Kind(terrain.Pt(x, y)).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes Format(g) to path, creating or truncating the file.
func Save(g *terrain.Grid, path string) error {
	if err := os.WriteFile(path, []byte(Format(g)), 0o644); err != nil {
		return fmt.Errorf("mapio: write %s: %w", path, err)
	}
	return nil
}

// Markers returns the first Start and End cells of g in row-major scan order.
// ok is false unless both markers are present.
func Markers(g *terrain.Grid) (start, goal terrain.Point, ok bool) {
	var hasStart, hasGoal bool
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := terrain.Pt(x, y)
			switch g.Kind(p) {
			case terrain.Start:
				if !hasStart {
					start, hasStart = p, true
				}
			case terrain.End:
				if !hasGoal {
					goal, hasGoal = p, true
				}
			}
		}
	}
	return start, goal, hasStart && hasGoal
}
