// SPDX-License-Identifier: MIT
//
// File: edge_index.go
// Role: EdgeIndex - resolve a (from,to) vertex pair to one edge slot.
// Policy:
//   - Built once per graph, read-only afterwards (safe for concurrent workers).
//   - Parallel edges resolve to the lowest-Weight edge; ties keep the first inserted,
//     which is the edge a shortest-path relaxation over OutEdges order selects.

package core

// EdgeKey identifies a directed edge by its endpoint indices.
type EdgeKey struct {
	From int
	To   int
}

// EdgeIndex maps EdgeKey → edge index for a sealed Graph.
type EdgeIndex struct {
	slots map[EdgeKey]int
}

// NewEdgeIndex seals g and indexes all of its edges.
//
// Steps:
//  1. Seal g so the index cannot go stale.
//  2. Walk edges in index order; keep the first edge per key unless a later
//     parallel edge has a strictly smaller Weight.
//
// Complexity: O(E) time, O(E) space.
func NewEdgeIndex(g *Graph) *EdgeIndex {
	g.Seal()

	slots := make(map[EdgeKey]int, len(g.edges))
	for i, e := range g.edges {
		k := EdgeKey{From: e.From, To: e.To}
		if prev, ok := slots[k]; ok && g.edges[prev].Weight <= e.Weight {
			continue
		}
		slots[k] = i
	}

	return &EdgeIndex{slots: slots}
}

// Lookup returns the edge index for from→to and whether one exists.
// Complexity: O(1).
func (x *EdgeIndex) Lookup(from, to int) (int, bool) {
	i, ok := x.slots[EdgeKey{From: from, To: to}]

	return i, ok
}

// Len returns the number of distinct (from,to) keys.
func (x *EdgeIndex) Len() int { return len(x.slots) }
