// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits arcs (i-1)→i for i=1..n-1; with WithBidirectional each is
//     immediately followed by its reverse i→(i-1).
//
// Complexity:
//   - Time: O(n). Space: O(n) for the graph.
//
// Determinism:
//   - Edge index 0 is 0→1; emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}

		for i := 1; i < n; i++ {
			d, w := cfg.costs()
			if err = addArc(g, methodPath, i-1, i, d, w); err != nil {
				return nil, err
			}
			if cfg.bidirectional {
				if err = addArc(g, methodPath, i, i-1, d, w); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}

// addArc wraps core.AddEdge with method context.
func addArc(g *core.Graph, method string, u, v int, d, w float64) error {
	if _, err := g.AddEdge(u, v, d, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, d=%g, w=%g): %w", method, u, v, d, w, err)
	}

	return nil
}
