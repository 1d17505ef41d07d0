package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph that refuses negative weights.
	g := core.NewGraph(core.WithNonNegativeWeights())

	// 2) Add directed edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("B", "C", 1)

	// 3) Inspect vertices and ordered neighbors.
	fmt.Println("Vertices:", g.Vertices())
	ids, _ := g.NeighborIDs("A")
	fmt.Println("Neighbors of A:", ids)
	fmt.Println("Edge C→A exists?", g.HasEdge("C", "A"))

	// 4) Remove a vertex and its edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Neighbors of A: [C B]
	// Edge C→A exists? false
	// After removing B: [A C] 1
}

// ExampleFromAdjacency builds a graph from its literal form.
func ExampleFromAdjacency() {
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "A", Weight: 0}, {To: "B", Weight: 3}},
		"B": {{To: "A", Weight: 3}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range g.Edges() {
		fmt.Printf("%s %s→%s %d\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// e1 A→A 0
	// e2 A→B 3
	// e3 B→A 3
}
