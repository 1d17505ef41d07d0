// Package core provides a thread-safe in-memory directed graph with integer
// edge weights and ordered adjacency lists.
//
// The Graph G = (V,E) is the shape shortest-path searches consume: every
// vertex maps to the ordered list of its out-edges, each edge carrying a
// destination and a cost.
//
//   - Directed edges only; an undirected road is two edges.
//   - Self-loops and parallel edges are always accepted.
//   - Out-edges keep insertion order. Neighbors(id) returns them in that
//     order, so searches over the same graph expand neighbors identically.
//   - Monotonic Edge.ID generation ("e1", "e2", …).
//   - A single sync.RWMutex guards vertices, edges and adjacency.
//
// Configuration Options (GraphOption):
//
//	– WithNonNegativeWeights()
//	    AddEdge(from, to, w<0) → ErrNegativeWeight instead of storing the edge.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph                          // O(1)
//	FromAdjacency(map[string][]Arc, opts ...GraphOption) (*Graph, error) // O(V log V + E)
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(V+E)
//	Vertices() []string                // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error            // O(deg⁺)
//	RemoveEdgesInto(id string) (int, error)    // O(V+E)
//	Edges() []Edge                             // O(V log V + E)
//
//	// Adjacency
//	Neighbors(id string) ([]Edge, error)       // O(deg⁺), insertion order
//	NeighborIDs(id string) ([]string, error)   // O(deg⁺)
//	AdjacencyList() map[string][]Arc           // O(V+E)
//
//	// Whole-graph
//	Clone() *Graph                             // O(V+E)
//	Clear()                                    // O(1)
//	Stats() *GraphStats                        // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is "".
//	ErrVertexNotFound  - vertex missing (also: FromAdjacency arc to a non-key).
//	ErrEdgeNotFound    - edge ID unknown.
//	ErrNegativeWeight  - negative weight under WithNonNegativeWeights.
//
// All errors are sentinels; branch with errors.Is.
//
// Quick example:
//
//	g, err := core.FromAdjacency(map[string][]core.Arc{
//	    "A": {{To: "B", Weight: 3}},
//	    "B": {},
//	})
//	if err != nil { … }
//	edges, _ := g.Neighbors("A") // [{e1 A B 3}]
package core
