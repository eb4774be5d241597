// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i≠j: include arc
//     i→j independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(n + E).
//
// Determinism:
//   - Trial order i asc, j asc; each accepted arc draws its costs right after
//     its trial, so a fixed seed fixes the whole graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling a random directed graph over n
// vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		g, err := core.NewGraph(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		// 2) Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				d, w := cfg.costs()
				if err = addArc(g, methodRandomSparse, i, j, d, w); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
