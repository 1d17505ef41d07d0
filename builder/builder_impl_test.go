// Package builder_test contains functional tests for the Constructor
// implementations: topology, counts, determinism and error sentinels.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const defaultWeight = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 5; i++ {
					k := edgeKey{fmt.Sprint(i), fmt.Sprint((i + 1) % 5)}
					assert.Equal(t, defaultWeight, edges[k], "edge %v", k)
				}
				// one-way ring
				_, back := edges[edgeKey{"1", "0"}]
				assert.False(t, back)
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					k := edgeKey{fmt.Sprint(i), fmt.Sprint(i + 1)}
					assert.Equal(t, defaultWeight, edges[k], "edge %v", k)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for _, p := range [][2]string{{"0", "1"}, {"1", "0"}, {"2", "3"}, {"3", "2"}} {
					assert.Contains(t, edges, edgeKey{p[0], p[1]})
				}
				assert.Zero(t, g.Stats().LoopCount)
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 14, // 7 links, both directions
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Contains(t, edges, edgeKey{"0,0", "0,1"})
				assert.Contains(t, edges, edgeKey{"0,1", "0,0"})
				assert.Contains(t, edges, edgeKey{"0,0", "1,0"})
				assert.NotContains(t, edges, edgeKey{"0,0", "1,1"})
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 20, // all ordered pairs, no loops
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Zero(t, g.Stats().LoopCount)
			},
		},
		{
			name:  "Reference",
			ctor:  builder.Reference(),
			wantV: 6, wantE: 22,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Equal(t, int64(7), edges[edgeKey{"D", "Z"}])
				assert.Equal(t, int64(12), edges[edgeKey{"E", "Z"}])
				assert.Equal(t, 6, g.Stats().LoopCount)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			tc.sampleCheck(t, g)

			// A second build yields the same edge list.
			g2, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, g.Edges(), g2.Edges())
		})
	}
}

// TestBuilders_Errors checks the sentinel returned for each invalid parameter.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		bopts []builder.BuilderOption
		want  error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{
			"Adjacency(dangling)",
			builder.Adjacency(map[string][]core.Arc{"A": {{To: "B", Weight: 1}}}),
			nil,
			core.ErrVertexNotFound,
		},
		{
			"Adjacency(empty key)",
			builder.Adjacency(map[string][]core.Arc{"": nil}),
			nil,
			core.ErrEmptyVertexID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.bopts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestBuilders_NegativeWeightPolicy checks that core's weight policy is
// surfaced through builder errors.
func TestBuilders_NegativeWeightPolicy(t *testing.T) {
	adj := map[string][]core.Arc{"A": {{To: "B", Weight: -2}}, "B": nil}

	_, err := builder.BuildGraph([]core.GraphOption{core.WithNonNegativeWeights()}, nil, builder.Adjacency(adj))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	g, err := builder.BuildGraph(nil, nil, builder.Adjacency(adj))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestRandomSparse_Deterministic checks that a fixed seed reproduces the
// same edges and weights, and that a different seed changes them.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 100)},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g.Edges()
	}

	a, b := build(7), build(7)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, build(8))
	for _, e := range a {
		assert.NotEqual(t, e.From, e.To)
		assert.True(t, e.Weight >= 0 && e.Weight <= 100, "weight %d", e.Weight)
	}
}

// TestApply_ExtendsExistingGraph checks that Apply composes with a graph
// built elsewhere, and that Adjacency may point at vertices already in g.
func TestApply_ExtendsExistingGraph(t *testing.T) {
	g, err := core.FromAdjacency(map[string][]core.Arc{"X": nil})
	require.NoError(t, err)

	err = builder.Apply(g, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Path(3),
		builder.Adjacency(map[string][]core.Arc{"C": {{To: "X", Weight: 4}}}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "X"}, g.Vertices())
	ids, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, ids)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestReferenceAdjacency_FreshCopy checks that callers may mutate the map.
func TestReferenceAdjacency_FreshCopy(t *testing.T) {
	a := builder.ReferenceAdjacency()
	delete(a, "Z")
	assert.Len(t, builder.ReferenceAdjacency(), 6)
}
