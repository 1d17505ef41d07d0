// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: literal-form constructor and read-only summaries.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking.

package core

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a Graph from its literal adjacency form:
//
//	map[string][]Arc{
//	    "A": {{"A", 0}, {"B", 3}},
//	    "B": {{"A", 3}},
//	}
//
// It is NewGraph(opts...) followed by AddAdjacency(adj); on error the
// partially configured graph is discarded and nil is returned.
//
// Errors:
//   - ErrEmptyVertexID: an empty key or arc destination.
//   - ErrVertexNotFound: an arc points at a node that is not a key. Treating
//     such a node as an implicit sink would hide typos in the literal.
//   - ErrNegativeWeight: a negative weight when opts include WithNonNegativeWeights.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func FromAdjacency(adj map[string][]Arc, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddAdjacency(adj); err != nil {
		return nil, err
	}

	return g, nil
}

// AddAdjacency merges the literal adjacency map adj into g.
//
// Implementation:
//   - Stage 1: Check every key and arc. An arc may point at another key or
//     at a vertex already in g. Weights are checked against the graph policy.
//   - Stage 2: Add keys as vertices in ascending order.
//   - Stage 3: Add arcs per key (keys ascending, arcs in slice order).
//
// Behavior highlights:
//   - The ordered arcs of each key are appended to that vertex's adjacency.
//   - A key with a nil or empty slice becomes a vertex without out-edges.
//   - Edge IDs are assigned in Stage 3 order, so equal inputs give equal graphs.
//   - All stages run under one write lock; g is untouched when Stage 1 fails.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeWeight (see FromAdjacency).
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func (g *Graph) AddAdjacency(adj map[string][]Arc) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	keys := make([]string, 0, len(adj))
	for from, arcs := range adj {
		if from == "" {
			return ErrEmptyVertexID
		}
		for _, a := range arcs {
			if a.To == "" {
				return fmt.Errorf("arc from %q: %w", from, ErrEmptyVertexID)
			}
			if _, ok := adj[a.To]; !ok {
				if _, ok = g.vertices[a.To]; !ok {
					return fmt.Errorf("arc %s→%s: %w", from, a.To, ErrVertexNotFound)
				}
			}
			if a.Weight < 0 && g.nonNegative {
				return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, a.To, a.Weight)
			}
		}
		keys = append(keys, from)
	}
	sort.Strings(keys)

	for _, k := range keys {
		g.addVertexLocked(k)
	}
	for _, k := range keys {
		for _, a := range adj[k] {
			g.addEdgeLocked(k, a.To, a.Weight)
		}
	}

	return nil
}

// NonNegativeWeights reports whether the graph was built with
// WithNonNegativeWeights. It is a policy flag; a graph without it may still
// hold only non-negative weights.
// Complexity: O(1).
func (g *Graph) NonNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nonNegative
}

// Stats returns a snapshot summary of the graph.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	first := true
	for _, list := range g.adjacency {
		if len(list) == 0 {
			stats.SinkCount++
		}
		for _, e := range list {
			if e.From == e.To {
				stats.LoopCount++
			}
			if first || e.Weight < stats.MinWeight {
				stats.MinWeight = e.Weight
			}
			if first || e.Weight > stats.MaxWeight {
				stats.MaxWeight = e.Weight
			}
			first = false
		}
	}

	return &stats
}
