// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for pathfind/core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexZ = "Z"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight5 = 5
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// referenceAdjacency is the six-node graph with cost-0 self-loops used
// throughout the repository.
func referenceAdjacency() map[string][]core.Arc {
	return map[string][]core.Arc{
		"A": {{To: "A", Weight: 0}, {To: "B", Weight: 3}, {To: "C", Weight: 4}},
		"B": {{To: "A", Weight: 3}, {To: "B", Weight: 0}, {To: "D", Weight: 6}, {To: "E", Weight: 5}},
		"C": {{To: "A", Weight: 4}, {To: "C", Weight: 0}, {To: "E", Weight: 1}},
		"D": {{To: "B", Weight: 6}, {To: "D", Weight: 0}, {To: "E", Weight: 2}, {To: "Z", Weight: 7}},
		"E": {{To: "B", Weight: 5}, {To: "C", Weight: 1}, {To: "D", Weight: 2}, {To: "E", Weight: 0}, {To: "Z", Weight: 12}},
		"Z": {{To: "D", Weight: 7}, {To: "E", Weight: 12}, {To: "Z", Weight: 0}},
	}
}

// mustReference builds the reference graph or fails the test.
func mustReference(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(referenceAdjacency())
	require.NoError(t, err)

	return g
}

// destinations projects edges onto their To field.
func destinations(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}
