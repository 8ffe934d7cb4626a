package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/uavpath/route"
	"github.com/katalvlaran/uavpath/terrain"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects a report encoding.
type Format int

const (
	CSV Format = iota
	JSON
	Text
	Binary
)

var formatNames = [...]string{"csv", "json", "text", "binary"}
var formatExts = [...]string{".csv", ".json", ".txt", ".bin"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the conventional file extension, dot included.
func (f Format) Ext() string {
	if f < 0 || int(f) >= len(formatExts) {
		return ""
	}
	return formatExts[f]
}

// ParseFormat resolves a case-insensitive format name. "txt" and "bin" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "text", "txt":
		return Text, nil
	case "binary", "bin":
		return Binary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Mission describes one planning run.
type Mission struct {
	Algorithm string
	Start     terrain.Point
	Goal      terrain.Point
	Path      []terrain.Point
	Expanded  int
	Elapsed   time.Duration
}

// Coord is a JSON-friendly cell coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func coord(p terrain.Point) Coord { return Coord{X: p.X, Y: p.Y} }

// Step is one waypoint of a Report.
type Step struct {
	Index      int     `json:"step"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Terrain    string  `json:"terrain"`
	Cost       float64 `json:"energy_cost"`
	Cumulative float64 `json:"cumulative_energy"`
}

// Report is the exportable summary of a Mission.
type Report struct {
	Algorithm     string  `json:"algorithm"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Start         Coord   `json:"start"`
	Goal          Coord   `json:"goal"`
	Reached       bool    `json:"reached"`
	TotalSteps    int     `json:"total_steps"`
	TotalDistance float64 `json:"total_distance"`
	TotalCost     float64 `json:"total_energy"`
	Valid         bool    `json:"valid"`
	Expanded      int     `json:"nodes_explored"`
	ComputationMS float64 `json:"computation_time_ms"`
	Steps         []Step  `json:"path"`

	grid *terrain.Grid
	m    Mission
}

// NewReport evaluates m against g.
func NewReport(g *terrain.Grid, m Mission) *Report {
	st := route.Summarize(g, m.Path)
	r := &Report{
		Algorithm:     m.Algorithm,
		Width:         g.Width(),
		Height:        g.Height(),
		Start:         coord(m.Start),
		Goal:          coord(m.Goal),
		Reached:       len(m.Path) > 0 && m.Path[len(m.Path)-1] == m.Goal,
		TotalSteps:    st.Steps,
		TotalDistance: st.Distance,
		TotalCost:     st.Cost,
		Valid:         st.Valid,
		Expanded:      m.Expanded,
		ComputationMS: float64(m.Elapsed) / float64(time.Millisecond),
		Steps:         make([]Step, 0, len(m.Path)),
		grid:          g,
		m:             m,
	}

	cum := 0.0
	for i, p := range m.Path {
		c := g.MovementCost(p)
		cum += c
		r.Steps = append(r.Steps, Step{
			Index:      i,
			X:          p.X,
			Y:          p.Y,
			Terrain:    g.Kind(p).String(),
			Cost:       c,
			Cumulative: cum,
		})
	}
	return r
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r *Report) error {
	switch f {
	case CSV:
		return WriteCSV(w, r)
	case JSON:
		return WriteJSON(w, r)
	case Text:
		return WriteText(w, r)
	case Binary:
		return WriteBinary(w, r.Snapshot())
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// csvHeader names the per-waypoint columns.
var csvHeader = []string{"Step", "X", "Y", "Terrain", "Energy_Cost", "Cumulative_Energy"}

// WriteCSV writes a header row and one row per waypoint.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range r.Steps {
		rec := []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.X),
			strconv.Itoa(s.Y),
			s.Terrain,
			formatFloat(s.Cost),
			formatFloat(s.Cumulative),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes a human-readable mission log.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder
	sb.WriteString("UAV MISSION REPORT\n")
	sb.WriteString("==================\n\n")
	fmt.Fprintf(&sb, "Algorithm:        %s\n", r.Algorithm)
	fmt.Fprintf(&sb, "Grid:             %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(&sb, "Start:            (%d,%d)\n", r.Start.X, r.Start.Y)
	fmt.Fprintf(&sb, "Goal:             (%d,%d)\n", r.Goal.X, r.Goal.Y)
	fmt.Fprintf(&sb, "Reached:          %t\n\n", r.Reached)

	fmt.Fprintf(&sb, "Steps:            %d\n", r.TotalSteps)
	fmt.Fprintf(&sb, "Distance:         %.2f cells\n", r.TotalDistance)
	fmt.Fprintf(&sb, "Energy:           %.2f units\n", r.TotalCost)
	fmt.Fprintf(&sb, "Nodes expanded:   %d\n", r.Expanded)
	fmt.Fprintf(&sb, "Computation time: %.3f ms\n", r.ComputationMS)

	if len(r.Steps) > 0 {
		sb.WriteString("\nFlight path:\n")
		for _, s := range r.Steps {
			fmt.Fprintf(&sb, "  Step %d: (%d,%d) %s %.2f\n", s.Index, s.X, s.Y, s.Terrain, s.Cost)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Snapshot returns the binary-exportable state behind r.
func (r *Report) Snapshot() *Snapshot {
	return &Snapshot{Grid: r.grid, Start: r.m.Start, Goal: r.m.Goal, Path: r.m.Path}
}

// PerfEntry returns the performance-log line for r stamped with t.
func (r *Report) PerfEntry(t time.Time) PerfEntry {
	return PerfEntry{
		Time:       t,
		Algorithm:  r.Algorithm,
		PathLength: r.TotalSteps,
		Elapsed:    r.m.Elapsed,
		EnergyUsed: r.TotalCost,
		Success:    r.Reached,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
