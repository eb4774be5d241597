package heaps

// PairingHeap is an indexed pairing heap with two-pass merging.
//
// Each node keeps its leftmost child, its right sibling, and prev: the left
// sibling, or the parent when the node is a leftmost child. -1 means none.
type PairingHeap struct {
	key     []float64
	child   []int
	sibling []int
	prev    []int
	queued  []bool
	touched []int
	root    int
	pairs   []int // two-pass scratch
}

// NewPairing returns a pairing heap for vertices 0..n-1.
func NewPairing(n int) *PairingHeap {
	return &PairingHeap{
		key:     make([]float64, n),
		child:   make([]int, n),
		sibling: make([]int, n),
		prev:    make([]int, n),
		queued:  make([]bool, n),
		root:    -1,
	}
}

// Insert melds a singleton tree for v into the root. Complexity: O(1).
func (h *PairingHeap) Insert(v int, key float64) {
	h.key[v] = key
	h.child[v] = -1
	h.sibling[v] = -1
	h.prev[v] = -1
	h.queued[v] = true
	h.touched = append(h.touched, v)
	h.root = h.meld(h.root, v)
}

// DecreaseKey detaches v's subtree and melds it back into the root.
func (h *PairingHeap) DecreaseKey(v int, key float64) {
	if !h.queued[v] {
		h.Insert(v, key)
		return
	}
	h.key[v] = key
	if v == h.root {
		return
	}
	h.detach(v)
	h.root = h.meld(h.root, v)
}

// ExtractMin removes the root and merges its children pairwise.
// Complexity: O(log n) amortized.
func (h *PairingHeap) ExtractMin() int {
	r := h.root
	if r == -1 {
		return -1
	}
	h.root = h.mergePairs(h.child[r])
	h.child[r] = -1
	h.queued[r] = false

	return r
}

// Empty reports whether no vertex is queued.
func (h *PairingHeap) Empty() bool { return h.root == -1 }

// Reset drops every queued vertex.
func (h *PairingHeap) Reset() {
	for _, v := range h.touched {
		h.queued[v] = false
	}
	h.touched = h.touched[:0]
	h.root = -1
}

// meld joins two detached trees and returns the new root.
func (h *PairingHeap) meld(a, b int) int {
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	if h.key[b] < h.key[a] {
		a, b = b, a
	}
	// b becomes the leftmost child of a.
	c := h.child[a]
	h.sibling[b] = c
	if c != -1 {
		h.prev[c] = b
	}
	h.prev[b] = a
	h.child[a] = b

	return a
}

// detach unlinks v (with its subtree) from its parent's child list.
func (h *PairingHeap) detach(v int) {
	p := h.prev[v]
	next := h.sibling[v]
	if h.child[p] == v {
		h.child[p] = next
	} else {
		h.sibling[p] = next
	}
	if next != -1 {
		h.prev[next] = p
	}
	h.sibling[v] = -1
	h.prev[v] = -1
}

// mergePairs melds the sibling list starting at first: left-to-right in
// pairs, then right-to-left into one tree.
func (h *PairingHeap) mergePairs(first int) int {
	if first == -1 {
		return -1
	}
	pairs := h.pairs[:0]
	for x := first; x != -1; {
		a := x
		b := h.sibling[a]
		if b == -1 {
			h.sibling[a] = -1
			h.prev[a] = -1
			pairs = append(pairs, a)
			break
		}
		x = h.sibling[b]
		h.sibling[a], h.prev[a] = -1, -1
		h.sibling[b], h.prev[b] = -1, -1
		pairs = append(pairs, h.meld(a, b))
	}

	r := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		r = h.meld(pairs[i], r)
	}
	h.pairs = pairs[:0]

	return r
}
