// Package pathfind finds the cheapest route between two nodes of a
// directed graph with non-negative integer edge costs.
//
// Everything is organized under three subpackages:
//
//	core/     — thread-safe directed Graph with ordered adjacency lists
//	dijkstra/ — single-pair uniform-cost search: ShortestCost, ShortestPath
//	builder/  — deterministic graph generators (grid, random, reference fixture)
//
// Quick example:
//
//	g, _ := core.FromAdjacency(map[string][]core.Arc{
//	    "A": {{To: "B", Weight: 3}, {To: "C", Weight: 4}},
//	    "B": {{To: "Z", Weight: 9}},
//	    "C": {{To: "Z", Weight: 2}},
//	    "Z": nil,
//	})
//	p, err := dijkstra.ShortestPath(g, "A", "Z")
//	// p.Cost == 6, p.Nodes == [A C Z]
//
// An unreachable target yields cost dijkstra.NotFound (-1) together with
// an error matching dijkstra.ErrNoPath.
//
// A runnable walkthrough lives in examples/reference_route.
package pathfind
