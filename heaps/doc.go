// Package heaps provides the interchangeable priority queues that drive the
// shortest-path searches in package dijkstra.
//
// Overview:
//
//   - Every variant implements Queue: Insert, DecreaseKey, ExtractMin, Empty, Reset.
//   - Queues are indexed by vertex (0..n-1) and sized once, then reused across
//     many searches through Reset, so a worker allocates its queue exactly once.
//   - The concrete variant is chosen by name through a small registry. An
//     unknown name is an error (ErrUnknownHeap); nothing is silently defaulted.
//
// Variants:
//
//	Name          Structure                       Insert    DecreaseKey  ExtractMin
//	BHeap         indexed binary heap             O(log n)  O(log n)     O(log n)
//	QuadHeap      indexed 4-ary heap              O(log n)  O(log n)     O(log n)
//	FHeap         Fibonacci heap                  O(1)      O(1) am.     O(log n) am.
//	PairingHeap   pairing heap (two-pass)         O(1)      o(log n) am. O(log n) am.
//	LazyHeap      container/heap, lazy decrease   O(log m)  O(log m)     O(log m)
//
// LazyHeap pushes a duplicate entry on DecreaseKey and discards stale entries
// on extraction; m is the number of live plus stale entries (≤ E per search).
//
// Usage:
//
//	factory, err := heaps.Lookup("FHeap") // resolve once, fail fast
//	if err != nil {
//	    return err
//	}
//	q := factory(g.VertexCount())         // one queue per worker
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use. Give each worker its own.
package heaps
