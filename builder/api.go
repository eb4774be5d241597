// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(c, bopts...). Resolves cfg, runs c.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/core"
)

// Constructor builds a graph from the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and edges in a documented, stable order.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// BuildGraph resolves the builder configuration from bopts and runs c.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Constructor: see impl_*.go.
func BuildGraph(c Constructor, bopts ...BuilderOption) (*core.Graph, error) {
	if c == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	g, err := c(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
