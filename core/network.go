// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network - build a Graph from a string-keyed edge list.
// Determinism:
//   - Vertex indices are assigned in first-seen order scanning from[i], to[i]
//     for i = 0..E-1, so the same edge list always yields the same indices.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates edge-list columns of different lengths.
	ErrLengthMismatch = errors.New("core: edge list columns differ in length")

	// ErrUnknownVertex indicates a vertex name that is not part of the network.
	ErrUnknownVertex = errors.New("core: unknown vertex name")
)

// Network couples a Graph with the vertex names it was built from.
type Network struct {
	graph *Graph
	names []string       // index → name
	index map[string]int // name → index
}

// NewNetwork builds a Network from four parallel columns describing edges
// from[i]→to[i] with distance[i] and weight[i].
//
// Complexity: O(E) time and space.
func NewNetwork(from, to []string, distance, weight []float64) (*Network, error) {
	m := len(from)
	if len(to) != m || len(distance) != m || len(weight) != m {
		return nil, fmt.Errorf("%w: from=%d to=%d distance=%d weight=%d",
			ErrLengthMismatch, len(from), len(to), len(distance), len(weight))
	}

	// 1) Assign indices in first-seen order.
	nw := &Network{index: make(map[string]int, m)}
	for i := 0; i < m; i++ {
		nw.intern(from[i])
		nw.intern(to[i])
	}

	// 2) Build the graph now that the vertex count is known.
	g, err := NewGraph(len(nw.names))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		if _, err = g.AddEdge(nw.index[from[i]], nw.index[to[i]], distance[i], weight[i]); err != nil {
			return nil, fmt.Errorf("core: edge %d (%s→%s): %w", i, from[i], to[i], err)
		}
	}
	nw.graph = g

	return nw, nil
}

func (nw *Network) intern(name string) {
	if _, ok := nw.index[name]; ok {
		return
	}
	nw.index[name] = len(nw.names)
	nw.names = append(nw.names, name)
}

// Graph returns the underlying indexed graph.
func (nw *Network) Graph() *Graph { return nw.graph }

// Index resolves a vertex name to its index.
func (nw *Network) Index(name string) (int, error) {
	i, ok := nw.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}

	return i, nil
}

// Indices resolves several names at once, failing on the first unknown one.
func (nw *Network) Indices(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		v, err := nw.Index(name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Name returns the name of vertex i.
func (nw *Network) Name(i int) string { return nw.names[i] }

// VertexCount returns the number of distinct names.
func (nw *Network) VertexCount() int { return len(nw.names) }
