// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors, NeighborIDs, AdjacencyList.
// Determinism:
//   - Neighbors/NeighborIDs preserve insertion order of out-edges.
//   - AdjacencyList keys are vertex IDs; values keep insertion order.
// Concurrency:
//   - Read lock only; every result is a fresh copy.

package core

import "fmt"

// Neighbors returns copies of the out-edges of id in insertion order.
// Self-loops and parallel edges are included as stored.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not present.
//
// Complexity: O(deg⁺(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(list))
	for i, e := range list {
		out[i] = *e
	}

	return out, nil
}

// NeighborIDs returns the destination IDs of the out-edges of id in
// insertion order. A destination reached by k parallel edges appears k times.
//
// Errors:
//   - Same as Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i := range edges {
		ids[i] = edges[i].To
	}

	return ids, nil
}

// AdjacencyList returns the graph in its literal form: every vertex mapped
// to its ordered (neighbor, weight) arcs. Vertices without out-edges map to
// an empty, non-nil slice. FromAdjacency(g.AdjacencyList()) rebuilds an
// equivalent graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]Arc, len(g.adjacency))
	for from, list := range g.adjacency {
		arcs := make([]Arc, len(list))
		for i, e := range list {
			arcs[i] = Arc{To: e.To, Weight: e.Weight}
		}
		out[from] = arcs
	}

	return out
}
