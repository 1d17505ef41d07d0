// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, Edge and Arc types
// and provides thread-safe primitives for building, querying and cloning
// directed weighted graphs.
//
// This file declares the types, GraphOption, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrNegativeWeight  - negative weight rejected by WithNonNegativeWeights.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative weight was passed to a graph
	// created with WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed, weighted connection From→To.
//
// Edges are handed out by value; mutating a returned Edge never changes
// the graph.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Arc is one (neighbor, cost) pair of an adjacency literal, see FromAdjacency.
type Arc struct {
	To     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithNonNegativeWeights makes AddEdge reject negative weights with
// ErrNegativeWeight instead of storing them.
func WithNonNegativeWeights() GraphOption {
	return func(g *Graph) { g.nonNegative = true }
}

// Graph is a directed multigraph with integer weights and ordered
// adjacency lists.
//
// Self-loops and parallel edges are always accepted. The out-edges of a
// vertex are kept in insertion order, which is the order Neighbors
// returns them in and therefore the order searches expand them in.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	nonNegative bool // reject negative weights on AddEdge

	edgeSeq  uint64             // monotonic edge ID counter
	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// adjacency[from] lists the out-edges of from in insertion order.
	// Every vertex has an entry, possibly empty.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph. Without options the graph accepts any
// int64 weight.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	LoopCount   int   // edges with From == To
	SinkCount   int   // vertices without out-edges
	MinWeight   int64 // 0 when the graph has no edges
	MaxWeight   int64 // 0 when the graph has no edges
}
