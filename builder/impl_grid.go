// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood; cell (r,c) is vertex r*cols+c.
//   • For each cell in row-major order: Right arc, its reverse, Bottom arc,
//     its reverse (where neighbours exist). Both directions share one cost draw.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		g, err := core.NewGraph(rows * cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGrid, err)
		}

		// 2) Emit arcs per cell: right pair, then bottom pair.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err = addPair(g, cfg, u, u+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addPair(g, cfg, u, u+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return g, nil
	}
}

// addPair emits u→v and v→u with one shared cost draw.
func addPair(g *core.Graph, cfg builderConfig, u, v int) error {
	d, w := cfg.costs()
	if err := addArc(g, methodGrid, u, v, d, w); err != nil {
		return err
	}

	return addArc(g, methodGrid, v, u, d, w)
}
