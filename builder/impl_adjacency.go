// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_adjacency.go — literal adjacency maps and the reference fixture.
//
// Contract:
//   • Adjacency is core.Graph.AddAdjacency: the whole map is validated before
//     g is touched, and arcs may point at keys or existing vertices of g.
//   • Failures wrap ErrConstructFailed together with the core sentinel.
//   • Keys are added in ascending order, then each key's arcs in slice order.
//   • cfg.idFn and cfg.weightFn are not used; weights come from the map.
//
// Complexity: O(V log V + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodAdjacency = "Adjacency"
	methodReference = "Reference"
)

// Adjacency returns a Constructor that adds the literal adjacency map adj to g.
func Adjacency(adj map[string][]core.Arc) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addAdjacency(methodAdjacency, g, adj)
	}
}

// Reference returns a Constructor that adds the six-node reference graph
// (see ReferenceAdjacency).
func Reference() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addAdjacency(methodReference, g, ReferenceAdjacency())
	}
}

// ReferenceAdjacency returns a fresh copy of the six-node reference graph.
// Every vertex carries a zero-cost self-loop and the arcs are listed per
// source in the order they are expanded. The cheapest A→Z route is
// A→C→E→D→Z at cost 14.
func ReferenceAdjacency() map[string][]core.Arc {
	return map[string][]core.Arc{
		"A": {{To: "A", Weight: 0}, {To: "B", Weight: 3}, {To: "C", Weight: 4}},
		"B": {{To: "A", Weight: 3}, {To: "B", Weight: 0}, {To: "D", Weight: 6}, {To: "E", Weight: 5}},
		"C": {{To: "A", Weight: 4}, {To: "C", Weight: 0}, {To: "E", Weight: 1}},
		"D": {{To: "B", Weight: 6}, {To: "D", Weight: 0}, {To: "E", Weight: 2}, {To: "Z", Weight: 7}},
		"E": {{To: "B", Weight: 5}, {To: "C", Weight: 1}, {To: "D", Weight: 2}, {To: "E", Weight: 0}, {To: "Z", Weight: 12}},
		"Z": {{To: "D", Weight: 7}, {To: "E", Weight: 12}, {To: "Z", Weight: 0}},
	}
}

// addAdjacency delegates to core.Graph.AddAdjacency and tags failures with
// the constructor name.
func addAdjacency(method string, g *core.Graph, adj map[string][]core.Arc) error {
	if err := g.AddAdjacency(adj); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
