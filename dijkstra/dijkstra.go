// Package dijkstra implements the label-setting shortest-path engine used by
// the flow workers.
//
// Both searches share one relaxation rule: the queue is keyed on edge Weight,
// and Distance is accumulated alongside on the same optimal-weight path.
//
// Notes on implementation choices:
//
//   - One PathFinder per worker; the queue and the vertex-state slice are
//     allocated once and reset per search.
//   - A vertex is queued at most once; improvements use DecreaseKey.
//   - Settled vertices are never relaxed again (weights are non-negative).
//   - Ties in Weight are broken by heap order.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/heaps"
)

// vertex states during one search
const (
	unseen uint8 = iota
	queued
	settled
)

// PathFinder runs repeated single-source searches over one shared graph.
// It is not safe for concurrent use; the graph it reads is.
type PathFinder struct {
	g        *core.Graph
	q        heaps.Queue
	options  Options
	state    []uint8 // per-vertex unseen/queued/settled
	isTarget []bool  // scratch for Targeted; all false between calls
}

// New creates a PathFinder over g using q as its priority queue.
// g is sealed: its edge set may not change afterwards.
func New(g *core.Graph, q heaps.Queue, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if q == nil {
		return nil, ErrNilQueue
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.Seal()
	n := g.VertexCount()

	return &PathFinder{
		g:        g,
		q:        q,
		options:  cfg,
		state:    make([]uint8, n),
		isTarget: make([]bool, n),
	}, nil
}

// Graph returns the graph the PathFinder searches.
func (pf *PathFinder) Graph() *core.Graph { return pf.g }

// Targeted computes shortest paths from source, stopping according to the
// Termination policy once every vertex in targets is settled.
//
// Steps:
//  1. Validate result size, source and targets.
//  2. Reset res and scratch; mark distinct targets.
//  3. Seed the queue with source (weight 0, distance 0).
//  4. Extract-min / relax until the queue empties or, under
//     StopWhenSettled, the last outstanding target is extracted.
//
// Unreached vertices keep +Inf labels and no predecessor. Duplicate targets
// are counted once; an empty target set settles only the source.
func (pf *PathFinder) Targeted(res *Result, source int, targets []int) error {
	// 1) Validation.
	if err := pf.check(res, source); err != nil {
		return err
	}
	n := pf.g.VertexCount()
	for _, t := range targets {
		if t < 0 || t >= n {
			return fmt.Errorf("%w: %d (n=%d)", ErrTargetOutOfRange, t, n)
		}
	}

	// 2) Reset and mark targets.
	pf.prepare(res, source)
	remaining := 0
	for _, t := range targets {
		if !pf.isTarget[t] {
			pf.isTarget[t] = true
			remaining++
		}
	}
	defer pf.clearTargets(targets)

	// 3) + 4) Main loop.
	stopEarly := pf.options.Termination == StopWhenSettled
	for !pf.q.Empty() {
		u := pf.q.ExtractMin()
		pf.state[u] = settled
		if pf.isTarget[u] {
			remaining--
		}
		if stopEarly && remaining == 0 {
			break
		}
		pf.relax(res, u)
	}

	return nil
}

// Bounded computes shortest paths from source, never expanding a vertex
// whose distance exceeds limit. Such a vertex keeps the label it received
// from an expanded neighbour, so the tree covers the bounded neighbourhood
// plus its one-edge fringe.
//
// The queue is keyed on Weight, not Distance, so an over-limit vertex does
// not end the search; it is settled and skipped.
func (pf *PathFinder) Bounded(res *Result, source int, limit float64) error {
	if math.IsNaN(limit) {
		return ErrBadLimit
	}
	if err := pf.check(res, source); err != nil {
		return err
	}

	pf.prepare(res, source)
	for !pf.q.Empty() {
		u := pf.q.ExtractMin()
		pf.state[u] = settled
		if res.Distance[u] > limit {
			continue
		}
		pf.relax(res, u)
	}

	return nil
}

// check validates the Result size and the source index.
func (pf *PathFinder) check(res *Result, source int) error {
	n := pf.g.VertexCount()
	if res == nil || res.Len() != n || len(res.Weight) != n || len(res.Pred) != n {
		return ErrResultSize
	}
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, source, n)
	}

	return nil
}

// prepare resets all per-search state and queues the source.
func (pf *PathFinder) prepare(res *Result, source int) {
	res.Reset()
	for i := range pf.state {
		pf.state[i] = unseen
	}
	pf.q.Reset()

	res.Weight[source] = 0
	res.Distance[source] = 0
	pf.q.Insert(source, 0)
	pf.state[source] = queued
}

func (pf *PathFinder) clearTargets(targets []int) {
	for _, t := range targets {
		pf.isTarget[t] = false
	}
}

// relax examines every edge leaving u and improves neighbour labels.
// Assumes res.Weight[u] is final.
func (pf *PathFinder) relax(res *Result, u int) {
	wu := res.Weight[u]
	du := res.Distance[u]
	for _, ei := range pf.g.OutEdges(u) {
		e := pf.g.Edge(ei)
		v := e.To
		if pf.state[v] == settled {
			continue
		}

		// Strict improvement only: the first of equally cheap parallel
		// edges keeps the label.
		nw := wu + e.Weight
		if nw >= res.Weight[v] {
			continue
		}
		res.Weight[v] = nw
		res.Distance[v] = du + e.Distance
		res.Pred[v] = PredOf(u)

		if pf.state[v] == queued {
			pf.q.DecreaseKey(v, nw)
		} else {
			pf.q.Insert(v, nw)
			pf.state[v] = queued
		}
	}
}
