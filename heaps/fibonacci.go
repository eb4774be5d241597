package heaps

// maxFibDegree bounds the consolidation table. A node of degree d roots a
// subtree of at least F(d+2) ≥ φ^d nodes, so 96 covers any addressable n.
const maxFibDegree = 96

// FibonacciHeap is an indexed Fibonacci heap.
//
// All node fields live in parallel slices indexed by vertex; -1 means "none".
// Sibling lists (roots and children) are circular and doubly linked through
// left/right.
type FibonacciHeap struct {
	key     []float64
	parent  []int
	child   []int
	left    []int
	right   []int
	degree  []int
	mark    []bool
	queued  []bool
	touched []int // vertices inserted since the last Reset
	min     int
	roots   []int // consolidation scratch
	table   [maxFibDegree]int
}

// NewFibonacci returns a Fibonacci heap for vertices 0..n-1.
func NewFibonacci(n int) *FibonacciHeap {
	h := &FibonacciHeap{
		key:    make([]float64, n),
		parent: make([]int, n),
		child:  make([]int, n),
		left:   make([]int, n),
		right:  make([]int, n),
		degree: make([]int, n),
		mark:   make([]bool, n),
		queued: make([]bool, n),
		min:    -1,
	}
	for i := range h.table {
		h.table[i] = -1
	}

	return h
}

// Insert adds v as a new singleton root. Complexity: O(1).
func (h *FibonacciHeap) Insert(v int, key float64) {
	h.key[v] = key
	h.parent[v] = -1
	h.child[v] = -1
	h.degree[v] = 0
	h.mark[v] = false
	h.queued[v] = true
	h.touched = append(h.touched, v)
	h.addRoot(v)
}

// DecreaseKey lowers v's key, cutting v from its parent when heap order
// breaks. Complexity: O(1) amortized.
func (h *FibonacciHeap) DecreaseKey(v int, key float64) {
	if !h.queued[v] {
		h.Insert(v, key)
		return
	}
	h.key[v] = key
	p := h.parent[v]
	if p != -1 && key < h.key[p] {
		h.cut(v, p)
		h.cascadingCut(p)
	}
	if key < h.key[h.min] {
		h.min = v
	}
}

// ExtractMin removes the minimum root, promotes its children and
// consolidates. Complexity: O(log n) amortized.
func (h *FibonacciHeap) ExtractMin() int {
	z := h.min
	if z == -1 {
		return -1
	}

	// 1) Promote every child of z to the root list.
	if c := h.child[z]; c != -1 {
		kids := h.roots[:0]
		x := c
		for {
			kids = append(kids, x)
			x = h.right[x]
			if x == c {
				break
			}
		}
		for _, x = range kids {
			h.parent[x] = -1
			h.spliceRight(z, x)
		}
		h.roots = kids[:0]
		h.child[z] = -1
		h.degree[z] = 0
	}

	// 2) Unlink z from the root list.
	if h.right[z] == z {
		h.min = -1
	} else {
		h.left[h.right[z]] = h.left[z]
		h.right[h.left[z]] = h.right[z]
		h.min = h.right[z]
		h.consolidate()
	}
	h.queued[z] = false

	return z
}

// Empty reports whether no vertex is queued.
func (h *FibonacciHeap) Empty() bool { return h.min == -1 }

// Reset drops every queued vertex. Complexity: O(vertices touched).
func (h *FibonacciHeap) Reset() {
	for _, v := range h.touched {
		h.queued[v] = false
	}
	h.touched = h.touched[:0]
	h.min = -1
}

// addRoot inserts a detached node into the root list and updates min.
func (h *FibonacciHeap) addRoot(v int) {
	if h.min == -1 {
		h.left[v] = v
		h.right[v] = v
		h.min = v
		return
	}
	h.spliceRight(h.min, v)
	if h.key[v] < h.key[h.min] {
		h.min = v
	}
}

// spliceRight inserts x immediately to the right of anchor in anchor's list.
func (h *FibonacciHeap) spliceRight(anchor, x int) {
	r := h.right[anchor]
	h.left[x] = anchor
	h.right[x] = r
	h.left[r] = x
	h.right[anchor] = x
}

// consolidate links roots of equal degree until all root degrees differ,
// then rebuilds the root list and min from the degree table.
func (h *FibonacciHeap) consolidate() {
	roots := h.roots[:0]
	start := h.min
	x := start
	for {
		roots = append(roots, x)
		x = h.right[x]
		if x == start {
			break
		}
	}

	for _, w := range roots {
		x = w
		d := h.degree[x]
		for h.table[d] != -1 {
			y := h.table[d]
			if h.key[y] < h.key[x] {
				x, y = y, x
			}
			h.link(y, x)
			h.table[d] = -1
			d++
		}
		h.table[d] = x
	}
	h.roots = roots[:0]

	h.min = -1
	for i, r := range h.table {
		if r == -1 {
			continue
		}
		h.table[i] = -1
		h.addRoot(r)
	}
}

// link makes root y a child of root x.
func (h *FibonacciHeap) link(y, x int) {
	h.left[h.right[y]] = h.left[y]
	h.right[h.left[y]] = h.right[y]

	h.parent[y] = x
	if c := h.child[x]; c == -1 {
		h.child[x] = y
		h.left[y] = y
		h.right[y] = y
	} else {
		h.spliceRight(c, y)
	}
	h.degree[x]++
	h.mark[y] = false
}

// cut moves x from p's child list to the root list.
func (h *FibonacciHeap) cut(x, p int) {
	if h.right[x] == x {
		h.child[p] = -1
	} else {
		h.left[h.right[x]] = h.left[x]
		h.right[h.left[x]] = h.right[x]
		if h.child[p] == x {
			h.child[p] = h.right[x]
		}
	}
	h.degree[p]--
	h.parent[x] = -1
	h.mark[x] = false
	h.spliceRight(h.min, x)
}

// cascadingCut walks up from y, cutting marked ancestors.
func (h *FibonacciHeap) cascadingCut(y int) {
	for {
		z := h.parent[y]
		if z == -1 {
			return
		}
		if !h.mark[y] {
			h.mark[y] = true
			return
		}
		h.cut(y, z)
		y = z
	}
}
