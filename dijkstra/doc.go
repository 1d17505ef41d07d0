// Package dijkstra finds the minimum-cost path between two vertices of a
// directed graph with non-negative integer edge weights.
//
// Overview:
//
//   - A uniform-cost search: the frontier entry with the lowest cumulative
//     cost is always expanded next, so the first time a vertex is popped its
//     cost is final (this holds only because weights are non-negative).
//   - The search stops as soon as the target is popped; it never computes
//     distances to other vertices beyond what that requires.
//   - Two result shapes: ShortestCost (cost only, no path history in the
//     frontier) and ShortestPath (cost plus the node sequence).
//
// When to use:
//
//   - Point-to-point queries on a static core.Graph: routing, dependency
//     costs, game maps, anything with non-negative step costs.
//   - Cheap repeated queries: each call allocates its own frontier and
//     visited set, so concurrent calls on one graph are safe.
//
// Frontier ordering:
//
//   - Entries are ordered by cost, then by vertex ID (byte-wise), then by
//     insertion order. The tie-break only makes runs reproducible; callers
//     should not rely on which of several equal-cost paths is returned
//     beyond it being the same every time.
//   - Lazy deletion: no decrease-key. Duplicate entries for one vertex may
//     coexist; those surfacing after the vertex is finalized are dropped.
//   - Self-loops are harmless: the loop edge points at the vertex being
//     expanded, which is already finalized, so nothing is queued.
//
// Performance and complexity:
//
//   - Time:  O(E log E) ≈ O(E log V) heap operations.
//   - Space: O(E) heap entries. ShortestPath copies the parent's path into
//     every pushed entry, adding O(E · depth) in the worst case; use
//     ShortestCost when the sequence is not needed.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath: target unreachable (cost NotFound). Branch with errors.Is.
//   - ErrStartNotFound: start is not a vertex. Reported instead of silently
//     treating start as a vertex without neighbors.
//   - ErrNegativeWeight: found by an O(E) pre-scan before searching.
//     The scan is skipped for graphs built with core.WithNonNegativeWeights,
//     which reject negative weights on insert. WithTrustedWeights disables
//     it when the caller guarantees the precondition some other way.
//   - ErrEmptyVertexID, ErrNilGraph: argument validation.
//
// API reference:
//
//	func ShortestCost(g *core.Graph, start, target string, opts ...Option) (int64, error)
//	func ShortestPath(g *core.Graph, start, target string, opts ...Option) (Path, error)
//
// Options:
//
//	WithMaxDistance(int64)       – do not queue entries costlier than the cap.
//	WithInfEdgeThreshold(int64)  – edges with weight ≥ threshold are walls.
//	WithTrustedWeights()         – skip the negative-weight pre-scan.
//	WithOnVisit(fn)              – observe finalized vertices in order.
//	WithContext(ctx)             – abort between pops when ctx is done.
//	WithStats(*Stats)            – receive frontier counters.
//
// Example:
//
//	cost, err := dijkstra.ShortestCost(g, "A", "Z")
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	    // unreachable
//	case err != nil:
//	    return err
//	}
//
// Thread safety:
//
//   - The search only reads g. Mutating g concurrently with a search is
//     safe with respect to the graph's locks but the result is then
//     undefined; a vertex removed mid-search yields ErrVertexNotFound.
package dijkstra
