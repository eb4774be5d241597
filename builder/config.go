// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng           = nil                 (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn     (constant 1)
//   • distanceFn    = nil                 (distance mirrors the drawn weight)
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng           *rand.Rand
	weightFn      WeightFn
	distanceFn    WeightFn
	bidirectional bool
}

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// costs draws (distance, weight) for the next edge.
func (c builderConfig) costs() (float64, float64) {
	w := c.weightFn(c.rng)
	if c.distanceFn == nil {
		return w, w
	}

	return c.distanceFn(c.rng), w
}
