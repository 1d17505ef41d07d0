// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • For each pair i<j in lexicographic order emits i→j then j→i, each with
//     its own weight draw. No self-loops.
//
// Complexity: O(n²) time, O(n) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addWeightedEdge(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
				if err := addWeightedEdge(methodComplete, g, cfg, ids[j], ids[i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
