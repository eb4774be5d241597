// SPDX-License-Identifier: MIT
// Package core defines the Graph and Edge types, sentinel errors, and the
// NewGraph constructor.
//
// This file declares Edge, Graph, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrBadVertexCount   - vertex count is negative.
//	ErrVertexOutOfRange - edge endpoint outside 0..n-1.
//	ErrNegativeWeight   - weight/distance negative or not finite.
//	ErrSealed           - graph already handed to an algorithm.
package core

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates NewGraph was called with a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint is not a valid vertex index.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates a negative or non-finite weight or distance.
	// Label-setting shortest paths are only correct for non-negative costs.
	ErrNegativeWeight = errors.New("core: weight and distance must be finite and non-negative")

	// ErrSealed indicates an attempt to mutate a graph that is already shared
	// with an algorithm.
	ErrSealed = errors.New("core: graph is sealed")
)

// Edge is one directed connection From→To.
//
// Weight is the routing cost minimised by shortest-path search.
// Distance is the physical length, accumulated along the optimal-weight path.
type Edge struct {
	From     int
	To       int
	Distance float64
	Weight   float64
}

// Graph is an indexed, directed multigraph with vertices 0..n-1.
//
// edges holds every edge in insertion order; out[v] lists indices into edges
// for the edges leaving v. Once sealed, the Graph is immutable and safe for
// concurrent readers.
type Graph struct {
	n      int         // vertex count, fixed at construction
	edges  []Edge      // edge catalogue; index == edge slot
	out    [][]int     // out[v] = indices of edges with From == v
	sealed atomic.Bool // set once by Seal; AddEdge checks it
}

// NewGraph creates an empty Graph with n vertices and no edges.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}

	return &Graph{
		n:   n,
		out: make([][]int, n),
	}, nil
}
