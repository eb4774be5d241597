// SPDX-License-Identifier: MIT
// Package: lvflow/flow
//
// options.go: functional options for the flow runtime.
//
// Contract:
//   • Option constructors PANIC on nonsensical numeric inputs (negative
//     tolerance, negative workers). A heap name is checked at call setup and
//     reported as heaps.ErrUnknownHeap, never silently replaced.
//   • Defaults: Tolerance=DefaultTolerance, Heap=heaps.DefaultName,
//     Workers=0 (GOMAXPROCS), StopWhenSettled, silent logger, no-op metrics,
//     Seed=0 (file names seeded from crypto/rand).

package flow

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvflow/dijkstra"
	"github.com/katalvlaran/lvflow/heaps"
	"github.com/katalvlaran/lvflow/metrics"
)

// DefaultTolerance is the relative cut-off used when none is given.
const DefaultTolerance = 1e-12

// Options configures one Aggregate/Disperse/Run* call.
type Options struct {
	Tolerance   float64              // aggregation: relative flow cut-off; dispersal: decay cut-off
	Heap        string               // heaps registry key
	Workers     int                  // 0 → runtime.GOMAXPROCS(0)
	Termination dijkstra.Termination // Targeted stopping policy
	Logger      zerolog.Logger
	Metrics     metrics.Recorder
	Seed        uint64 // partial-file namer seed; 0 → crypto/rand
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:   DefaultTolerance,
		Heap:        heaps.DefaultName,
		Workers:     0,
		Termination: dijkstra.StopWhenSettled,
		Logger:      zerolog.Nop(),
		Metrics:     metrics.Nop{},
	}
}

// WithTolerance sets the tolerance. Panics if tol is negative or NaN.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("flow: WithTolerance requires tol ≥ 0")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithHeap selects the priority queue by registry key.
func WithHeap(name string) Option {
	return func(o *Options) { o.Heap = name }
}

// WithWorkers sets the number of workers; 0 means GOMAXPROCS. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("flow: WithWorkers requires n ≥ 0")
	}
	return func(o *Options) { o.Workers = n }
}

// WithTermination sets the Targeted stopping policy used by aggregation.
// Panics on a value outside the dijkstra constants.
func WithTermination(t dijkstra.Termination) Option {
	if !t.Valid() {
		panic("flow: unknown termination policy")
	}
	return func(o *Options) { o.Termination = t }
}

// WithLogger attaches a logger for call and worker events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches a metrics recorder. Panics on nil.
func WithMetrics(r metrics.Recorder) Option {
	if r == nil {
		panic("flow: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = r }
}

// WithSeed fixes the partial-file namer seed for reproducible file names.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
