// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are fixed coordinates "r,c" (cfg.idFn is not used).
//   • Vertices are added row-major.
//   • For each cell, Right then Bottom neighbors are linked in both
//     directions; the two directions of one link share a weight draw.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w: %w", methodGrid, id, ErrConstructFailed, err)
				}
			}
		}

		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", methodGrid, u, v, w, ErrConstructFailed, err)
			}
			if _, err := g.AddEdge(v, u, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", methodGrid, v, u, w, ErrConstructFailed, err)
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID formats a grid coordinate as "r,c", e.g. GridID(0,1) → "0,1".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
