package search_test

import (
	"testing"

	"github.com/katalvlaran/uavpath/search"
	"github.com/katalvlaran/uavpath/terrain"
)

// benchGrid builds a deterministic 200×200 terrain with clear corners.
func benchGrid(b *testing.B) *terrain.Grid {
	g, err := terrain.NewGrid(200, 200)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	if err = g.GenerateRandom(0.2, 0.1, 0.1, terrain.WithSeed(42)); err != nil {
		b.Fatalf("setup GenerateRandom failed: %v", err)
	}
	g.SetKind(terrain.Pt(0, 0), terrain.Normal)
	g.SetKind(terrain.Pt(199, 199), terrain.Normal)
	return g
}

// BenchmarkFindPath measures each graph strategy corner to corner.
// Complexity: O(N log N), N = W×H.
func BenchmarkFindPath(b *testing.B) {
	g := benchGrid(b)
	for _, s := range []search.Strategy{search.AStar, search.Dijkstra, search.Energy} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.FindPath(g, terrain.Pt(0, 0), terrain.Pt(199, 199), search.WithStrategy(s))
			}
		})
	}
}
