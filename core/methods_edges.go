// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgesInto/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() groups edges by source vertex (ascending), each group in adjacency order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge appends the directed edge from→to to the adjacency list of from
// and returns its ID. Missing endpoints are created.
//
// Steps:
//  1. Validate IDs (and the sign of weight under WithNonNegativeWeights).
//  2. Lock mu, ensure both endpoints exist.
//  3. Generate the edge ID, store the edge, append it to adjacency[from].
//
// Self-loops and parallel edges are accepted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 && g.nonNegative {
		return "", fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	return g.addEdgeLocked(from, to, weight), nil
}

// addEdgeLocked stores a new edge between existing vertices and returns its
// ID. Caller holds mu for writing.
func (g *Graph) addEdgeLocked(from, to string, weight int64) string {
	e := &Edge{ID: g.nextEdgeID(), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	g.adjacency[from] = append(g.adjacency[from], e)

	return e.ID
}

// RemoveEdge deletes one edge by ID.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
//
// Complexity: O(deg⁺(from)) to splice the adjacency list.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	delete(g.edges, eid)

	list := g.adjacency[e.From]
	for i := range list {
		if list[i].ID == eid {
			// Splice with copy to keep the remaining order intact.
			g.adjacency[e.From] = append(list[:i:i], list[i+1:]...)
			break
		}
	}

	return nil
}

// RemoveEdgesInto deletes every edge whose destination is id, including
// self-loops on id, and returns how many were removed. The vertex itself
// and its out-edges stay.
//
// Errors:
//   - ErrVertexNotFound: if id is not present.
//
// Complexity: O(V + E).
func (g *Graph) RemoveEdgesInto(id string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return g.dropEdgesLocked(func(e *Edge) bool { return e.To == id }), nil
}

// dropEdgesLocked removes every edge matching drop from all adjacency lists
// and the edge catalog. Caller holds mu for writing.
func (g *Graph) dropEdgesLocked(drop func(*Edge) bool) int {
	removed := 0
	for from, list := range g.adjacency {
		kept := list[:0:0]
		for _, e := range list {
			if drop(e) {
				delete(g.edges, e.ID)
				removed++
				continue
			}
			kept = append(kept, e)
		}
		g.adjacency[from] = kept
	}

	return removed
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg⁺(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// GetEdge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}

	return *e, nil
}

// Edges returns copies of all edges, grouped by source vertex in ascending
// ID order; within a group edges keep their adjacency order.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	froms := make([]string, 0, len(g.adjacency))
	for from := range g.adjacency {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	out := make([]Edge, 0, len(g.edges))
	for _, from := range froms {
		for _, e := range g.adjacency[from] {
			out = append(out, *e)
		}
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge ID. Caller holds mu for writing.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 12)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
