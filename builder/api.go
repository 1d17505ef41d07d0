// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// api.go - thin public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors; option constructors may panic on meaningless input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with their method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with options bopts.
// It lets callers extend a graph built elsewhere (for example one read from
// an adjacency map) with generated topology.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addWeightedEdge draws one weight from cfg and adds from→to.
func addWeightedEdge(method string, g *core.Graph, cfg builderConfig, from, to string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", method, from, to, w, ErrConstructFailed, err)
	}

	return nil
}
