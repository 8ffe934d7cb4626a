package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/uavpath/internal/mission"
	"github.com/katalvlaran/uavpath/terrain"
)

// Render draws g with path overlaid: start as S, goal as D, other path cells
// as '*'. Cells are separated by spaces.
func Render(g *terrain.Grid, path []terrain.Point, start, goal terrain.Point) string {
	onPath := make(map[terrain.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := terrain.Pt(x, y)
			r := g.Kind(p).Rune()
			switch {
			case p == start:
				r = 'S'
			case p == goal:
				r = 'D'
			case onPath[p]:
				r = '*'
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printResult(w io.Writer, r *mission.Result) {
	if !r.Reached {
		fmt.Fprintln(w, "No path found: the goal may be unreachable.")
		if len(r.Path) > 0 {
			fmt.Fprintf(w, "Partial path: %d steps\n", len(r.Path))
		}
		return
	}
	fmt.Fprintf(w, "Steps:     %d\n", len(r.Path))
	if r.Simplified != nil {
		fmt.Fprintf(w, "Waypoints: %d after simplification (%.2f straight-line)\n",
			r.Waypoints.Steps, r.Waypoints.Distance)
	}
	fmt.Fprintf(w, "Distance:  %.2f\n", r.Stats.Distance)
	fmt.Fprintf(w, "Energy:    %.2f\n", r.Stats.Cost)
	fmt.Fprintf(w, "Expanded:  %d\n", r.Search.Expanded)
	fmt.Fprintf(w, "Time:      %v\n", r.Elapsed)
	fmt.Fprintln(w, "Legend: S start, D goal, * path, O obstacle, ^ hill, W wind, . open")
}

func printComparison(w io.Writer, results []*mission.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tREACHED\tSTEPS\tCOST\tEXPANDED\tTIME")
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%t\t%d\t%.2f\t%d\t%v\n",
			r.Strategy, r.Reached, len(r.Path), r.Stats.Cost, r.Search.Expanded, r.Elapsed)
	}
	return tw.Flush()
}
