// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//     p == 0 yields no edges; p == 1 yields every ordered pair.
//   • Ordered pairs (i,j), i≠j, are tried with i asc then j asc; each trial
//     consumes one draw and each accepted edge one weight draw.
//
// Complexity: O(n²) trials, O(1) extra space.
//
// Determinism: for a fixed seed and options the edge set, order and weights
// are identical across runs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi
// graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := addWeightedEdge(methodRandomSparse, g, cfg, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
