// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without an RNG.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrConstructFailed indicates a nil constructor or an unexpected core failure.
var ErrConstructFailed = errors.New("builder: construction failed")
