package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

func gridGraph(b *testing.B, rows, cols int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)},
		builder.Grid(rows, cols))
	require.NoError(b, err)

	return g
}

func BenchmarkShortestCost_Grid100x100(b *testing.B) {
	g := gridGraph(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestCost(g, "0,0", "99,99", dijkstra.WithTrustedWeights()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPath_Grid100x100(b *testing.B) {
	g := gridGraph(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, "0,0", "99,99", dijkstra.WithTrustedWeights()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestCost_Reference(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Reference())
	require.NoError(b, err)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestCost(g, "A", "Z"); err != nil {
			b.Fatal(err)
		}
	}
}
