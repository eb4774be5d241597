// Package dijkstra provides PathFinder, a reusable single-source shortest-path
// engine over *core.Graph with a pluggable priority queue from package heaps.
//
// Overview:
//
//   - Priority key: the edge Weight (routing cost). Distance (physical length)
//     is accumulated along the same optimal-weight path and reported alongside.
//   - Targeted(res, source, targets): standard Dijkstra that may stop early
//     once every target has been settled (Termination policy).
//   - Bounded(res, source, limit): Dijkstra that never expands a vertex whose
//     accumulated Distance exceeds limit, bounding work by neighbourhood size
//     rather than graph size.
//   - Results are written into a caller-owned Result (Distance, Weight, Pred)
//     that is reset before each search, so a worker allocates it once.
//
// Termination policy for Targeted:
//
//   - StopWhenSettled (default): the search ends right after the last
//     outstanding target is extracted from the queue. Extraction order is
//     non-decreasing in Weight, so the labels of all targets are final.
//     Non-target vertices may hold tentative labels at that point.
//   - Exhaustive: the whole reachable set is settled.
//
// Both policies give identical Weight, Distance and Pred for every target.
//
// Predecessors:
//
//   - Pred is an explicit optional vertex index: Pred.Get() returns (v, ok).
//     There is no sentinel that could collide with a vertex index.
//
// Complexity (binary heap):
//
//   - Time:  O((V + E) log V) per search.
//   - Space: O(V) per PathFinder, plus the caller's Result.
//
// Thread safety:
//
//   - A PathFinder and its Result belong to one goroutine.
//   - Many PathFinders may share one sealed *core.Graph.
//
// Example:
//
//	q, _ := heaps.New("BHeap", g.VertexCount())
//	pf, _ := dijkstra.New(g, q)
//	res := dijkstra.NewResult(g.VertexCount())
//	if err := pf.Targeted(res, 0, []int{5, 9}); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Weight[9], res.Distance[9])
package dijkstra
