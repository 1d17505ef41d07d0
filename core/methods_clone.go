// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries the edge ID counter so AddEdge on the clone continues the sequence.
// Concurrency:
//   - Read lock on the source for snapshotting; the clone is private until returned.

package core

// Clone returns a deep copy of the Graph: options, vertices, edges and
// adjacency order. Vertex Metadata maps are shared, not copied.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nonNegative = g.nonNegative
	clone.edgeSeq = g.edgeSeq

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for from, list := range g.adjacency {
		copied := make([]*Edge, len(list))
		for i, e := range list {
			ce := *e
			copied[i] = &ce
			clone.edges[ce.ID] = &ce
		}
		clone.adjacency[from] = copied
	}

	return clone
}

// Clear removes all vertices and edges and resets the edge ID counter.
// Options set at construction are kept.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string][]*Edge)
	g.edgeSeq = 0
}
