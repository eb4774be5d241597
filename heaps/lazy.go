package heaps

import (
	"container/heap"
	"math"
)

// LazyHeap wraps container/heap with the "lazy decrease-key" strategy:
// DecreaseKey pushes a fresh entry and leaves the old one in place; stale
// entries (vertex already extracted, or key above the vertex's best key) are
// discarded when they reach the top.
type LazyHeap struct {
	pq   nodePQ
	best []float64 // best[v] = smallest key pushed for v
	done []bool    // done[v] = v already returned by ExtractMin
}

// NewLazy returns a lazy heap for vertices 0..n-1.
func NewLazy(n int) *LazyHeap {
	h := &LazyHeap{
		pq:   make(nodePQ, 0, n),
		best: make([]float64, n),
		done: make([]bool, n),
	}
	for i := range h.best {
		h.best[i] = math.Inf(1)
	}

	return h
}

// Insert pushes (v,key). Complexity: O(log m).
func (h *LazyHeap) Insert(v int, key float64) {
	h.best[v] = key
	h.done[v] = false
	heap.Push(&h.pq, nodeItem{id: v, key: key})
}

// DecreaseKey pushes a duplicate entry; the previous one becomes stale.
func (h *LazyHeap) DecreaseKey(v int, key float64) { h.Insert(v, key) }

// ExtractMin pops until it finds a live entry, or returns -1.
func (h *LazyHeap) ExtractMin() int {
	for h.pq.Len() > 0 {
		item := heap.Pop(&h.pq).(nodeItem)
		if h.stale(item) {
			continue
		}
		h.done[item.id] = true
		return item.id
	}

	return -1
}

// Empty discards stale entries at the top, then reports emptiness.
func (h *LazyHeap) Empty() bool {
	for h.pq.Len() > 0 {
		if !h.stale(h.pq[0]) {
			return false
		}
		heap.Pop(&h.pq)
	}

	return true
}

// Reset drops every entry. best and done keep stale values; Insert rewrites
// both for a vertex before any of its entries can be extracted.
func (h *LazyHeap) Reset() { h.pq = h.pq[:0] }

func (h *LazyHeap) stale(it nodeItem) bool {
	return h.done[it.id] || it.key > h.best[it.id]
}

// nodeItem is one (vertex, key) entry.
type nodeItem struct {
	id  int
	key float64
}

// nodePQ is a min-heap of nodeItem ordered by key, for container/heap.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller key → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].key < pq[j].key }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
