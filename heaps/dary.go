package heaps

// DaryHeap is an indexed d-ary min-heap. BHeap is d=2, QuadHeap is d=4.
//
// heap holds vertices in heap order; pos[v] is v's slot in heap or -1;
// key[v] is v's current priority. Wider nodes make the tree shallower,
// trading cheaper sift-up (DecreaseKey) for more comparisons in sift-down.
type DaryHeap struct {
	d    int
	heap []int
	pos  []int
	key  []float64
}

// NewBinary returns an indexed binary heap for vertices 0..n-1.
func NewBinary(n int) *DaryHeap { return newDary(2, n) }

// NewQuad returns an indexed 4-ary heap for vertices 0..n-1.
func NewQuad(n int) *DaryHeap { return newDary(4, n) }

func newDary(d, n int) *DaryHeap {
	h := &DaryHeap{
		d:    d,
		heap: make([]int, 0, n),
		pos:  make([]int, n),
		key:  make([]float64, n),
	}
	for i := range h.pos {
		h.pos[i] = -1
	}

	return h
}

// Insert adds v with the given key. Complexity: O(log_d n).
func (h *DaryHeap) Insert(v int, key float64) {
	h.key[v] = key
	h.pos[v] = len(h.heap)
	h.heap = append(h.heap, v)
	h.up(h.pos[v])
}

// DecreaseKey lowers v's key, inserting v if absent. Complexity: O(log_d n).
func (h *DaryHeap) DecreaseKey(v int, key float64) {
	if h.pos[v] < 0 {
		h.Insert(v, key)
		return
	}
	h.key[v] = key
	h.up(h.pos[v])
}

// ExtractMin removes the minimum vertex, or returns -1 if empty.
// Complexity: O(d·log_d n).
func (h *DaryHeap) ExtractMin() int {
	n := len(h.heap)
	if n == 0 {
		return -1
	}
	v := h.heap[0]
	last := h.heap[n-1]
	h.heap = h.heap[:n-1]
	h.pos[v] = -1
	if n > 1 {
		h.heap[0] = last
		h.pos[last] = 0
		h.down(0)
	}

	return v
}

// Empty reports whether no vertex is queued.
func (h *DaryHeap) Empty() bool { return len(h.heap) == 0 }

// Reset drops every queued vertex. Complexity: O(size).
func (h *DaryHeap) Reset() {
	for _, v := range h.heap {
		h.pos[v] = -1
	}
	h.heap = h.heap[:0]
}

// up moves the vertex at slot i towards the root until its parent is not larger.
func (h *DaryHeap) up(i int) {
	v := h.heap[i]
	k := h.key[v]
	for i > 0 {
		p := (i - 1) / h.d
		if h.key[h.heap[p]] <= k {
			break
		}
		h.heap[i] = h.heap[p]
		h.pos[h.heap[i]] = i
		i = p
	}
	h.heap[i] = v
	h.pos[v] = i
}

// down moves the vertex at slot i towards the leaves, swapping with the
// smallest child while that child is strictly smaller.
func (h *DaryHeap) down(i int) {
	n := len(h.heap)
	v := h.heap[i]
	k := h.key[v]
	for {
		first := h.d*i + 1
		if first >= n {
			break
		}
		end := first + h.d
		if end > n {
			end = n
		}
		best := first
		for c := first + 1; c < end; c++ {
			if h.key[h.heap[c]] < h.key[h.heap[best]] {
				best = c
			}
		}
		if h.key[h.heap[best]] >= k {
			break
		}
		h.heap[i] = h.heap[best]
		h.pos[h.heap[i]] = i
		i = best
	}
	h.heap[i] = v
	h.pos[v] = i
}
