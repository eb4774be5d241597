// Package core provides the indexed, directed, doubly-weighted graph used by
// every shortest-path and flow routine in lvflow.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the contiguous integers 0..n-1, fixed at construction.
//   - Each Edge carries two attributes: Weight (the routing cost used as the
//     priority key by Dijkstra) and Distance (the physical length accumulated
//     along the chosen path).
//   - Parallel edges are legal and represent independent connections.
//   - Outgoing adjacency is stored as per-vertex slices of edge indices, in
//     insertion order, so iteration is deterministic.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(3)
//	g.AddEdge(0, 1, 120.0, 1.5)  // from, to, distance, weight
//	g.AddEdge(1, 2, 80.0, 0.9)
//	// ... hand g to dijkstra.New / core.NewEdgeIndex, which seal it.
//
// A Graph is sealed the first time an algorithm is built over it. Sealed
// graphs reject AddEdge with ErrSealed, which makes concurrent read-only use
// by many workers safe without locks.
//
// EdgeIndex resolves a (from, to) vertex pair to the edge slot a shortest-path
// tree actually used. Network is a convenience that maps string vertex names
// onto indices while building the Graph from an edge list.
//
// Errors:
//
//	ErrBadVertexCount   - NewGraph called with n < 0.
//	ErrVertexOutOfRange - an endpoint is not in 0..n-1.
//	ErrNegativeWeight   - weight or distance is negative, NaN or Inf.
//	ErrSealed           - AddEdge after the graph was sealed.
//	ErrLengthMismatch   - Network edge-list columns differ in length.
//	ErrUnknownVertex    - Network lookup of a name that was never seen.
package core
