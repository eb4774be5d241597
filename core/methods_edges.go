// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/OutEdges,
//       plus Seal/Sealed and VertexCount.
// Determinism:
//   - Edge indices are assigned 0,1,2,... in AddEdge call order.
//   - OutEdges(v) lists edges in insertion order.
// Concurrency:
//   - AddEdge is single-writer and must finish before Seal.
//   - After Seal every method is a read and safe for concurrent use.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends one directed edge from→to and returns its edge index.
//
// Steps:
//  1. Reject mutation of a sealed graph.
//  2. Validate both endpoints are in 0..n-1.
//  3. Validate distance and weight are finite and ≥ 0.
//  4. Append to the catalogue and to out[from].
//
// Duplicate (from,to) pairs are accepted as independent parallel edges.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, distance, weight float64) (int, error) {
	// 1) Edge count is fixed once an algorithm holds the graph.
	if g.sealed.Load() {
		return -1, ErrSealed
	}

	// 2) Endpoint validation.
	if from < 0 || from >= g.n {
		return -1, fmt.Errorf("%w: from=%d (n=%d)", ErrVertexOutOfRange, from, g.n)
	}
	if to < 0 || to >= g.n {
		return -1, fmt.Errorf("%w: to=%d (n=%d)", ErrVertexOutOfRange, to, g.n)
	}

	// 3) Cost validation.
	if !validCost(distance) || !validCost(weight) {
		return -1, fmt.Errorf("%w: edge %d→%d distance=%g weight=%g",
			ErrNegativeWeight, from, to, distance, weight)
	}

	// 4) Store.
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Distance: distance, Weight: weight})
	g.out[from] = append(g.out[from], idx)

	return idx, nil
}

// validCost reports whether c is usable as a non-negative edge cost.
func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1) && !math.IsNaN(c)
}

// VertexCount returns n. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges added so far. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge stored at index i. It panics if i is out of range,
// like a slice index would.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge catalogue in index order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutEdges returns the indices of edges leaving v, in insertion order.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *Graph) OutEdges(v int) []int { return g.out[v] }

// Seal freezes the edge set. Algorithms call it when they take the graph;
// calling it more than once is harmless.
func (g *Graph) Seal() { g.sealed.Store(true) }

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool { return g.sealed.Load() }
