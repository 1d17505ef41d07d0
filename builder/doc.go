// Package builder generates deterministic directed graphs for tests,
// benchmarks and demos of the shortest-path search.
//
// Everything goes through BuildGraph (or Apply for an existing graph):
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithNonNegativeWeights()},
//	    []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 9)},
//	    builder.Grid(10, 10),
//	)
//
// Constructors:
//
//   - Path(n), Cycle(n):   one-way chains and rings (n ≥ 2, n ≥ 3).
//   - Complete(n):         every ordered pair of distinct vertices.
//   - Grid(rows, cols):    4-neighborhood grid, both directions, IDs "r,c".
//   - RandomSparse(n, p):  directed Erdős–Rényi; requires WithSeed/WithRand when 0<p<1.
//   - Adjacency(adj):      a literal map[string][]core.Arc.
//   - Reference():         the six-node reference graph (ReferenceAdjacency).
//
// Options:
//
//   - ID schemes: WithIDScheme, WithDefaultIDs, WithSymbolIDs,
//     WithExcelColumnIDs, WithSymbNumb.
//   - Randomness: WithSeed, WithRand.
//   - Weights: WithWeightFn, WithConstantWeight, WithUniformWeight,
//     WithNormalWeight, WithExponentialWeight. All yield non-negative int64.
//
// Option constructors panic on meaningless input (nil functions, negative
// bounds). Constructors never panic; they return ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed wrapped
// with the constructor name. Core errors (for example a negative weight
// under core.WithNonNegativeWeights) are wrapped alongside ErrConstructFailed.
//
// Determinism: equal inputs, options, seed and constructor order produce
// equal graphs, including edge IDs and adjacency order.
package builder
