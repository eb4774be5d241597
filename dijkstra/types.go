// Package dijkstra defines the result, predecessor and option types used by
// PathFinder.
//
// Options:
//
//	– Termination: when a Targeted search may stop (StopWhenSettled or Exhaustive).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if New receives a nil *core.Graph.
//	– ErrNilQueue          if New receives a nil heaps.Queue.
//	– ErrSourceOutOfRange  if the source is not a vertex of the graph.
//	– ErrTargetOutOfRange  if a target is not a vertex of the graph.
//	– ErrResultSize        if the Result was sized for a different vertex count.
//	– ErrBadLimit          if Bounded receives a NaN limit.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by PathFinder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilQueue indicates that a nil priority queue was passed to New.
	ErrNilQueue = errors.New("dijkstra: queue is nil")

	// ErrSourceOutOfRange indicates the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrTargetOutOfRange indicates a target index is not a vertex.
	ErrTargetOutOfRange = errors.New("dijkstra: target vertex out of range")

	// ErrResultSize indicates a Result whose length differs from the vertex count.
	ErrResultSize = errors.New("dijkstra: result size does not match vertex count")

	// ErrBadLimit indicates a NaN distance limit.
	ErrBadLimit = errors.New("dijkstra: distance limit is NaN")
)

// Termination controls when a Targeted search stops expanding.
type Termination int

const (
	// StopWhenSettled stops as soon as every distinct target has been
	// extracted from the queue; labels of the targets are final at that point.
	StopWhenSettled Termination = iota

	// Exhaustive expands every reachable vertex regardless of targets.
	Exhaustive
)

// String returns the policy name.
func (t Termination) String() string {
	switch t {
	case StopWhenSettled:
		return "stop-when-settled"
	case Exhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared policies.
func (t Termination) Valid() bool {
	return t == StopWhenSettled || t == Exhaustive
}

// Options configures a PathFinder.
type Options struct {
	Termination Termination // policy for Targeted searches
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithTermination selects the Targeted stopping policy.
// Panics on a value outside the declared constants.
func WithTermination(t Termination) Option {
	if !t.Valid() {
		panic("dijkstra: unknown termination policy")
	}

	return func(o *Options) {
		o.Termination = t
	}
}

// DefaultOptions returns the defaults: StopWhenSettled.
func DefaultOptions() Options {
	return Options{Termination: StopWhenSettled}
}

// Pred is an optional predecessor vertex index.
// The zero value is "none", so a fresh slice of Pred needs no sentinel fill.
type Pred struct {
	v  int
	ok bool
}

// NoPred returns the empty predecessor.
func NoPred() Pred { return Pred{} }

// PredOf returns a predecessor pointing at vertex v.
func PredOf(v int) Pred { return Pred{v: v, ok: true} }

// Get returns the predecessor index and whether one is set.
func (p Pred) Get() (int, bool) { return p.v, p.ok }

// Valid reports whether a predecessor is set.
func (p Pred) Valid() bool { return p.ok }

// Result is the per-search scratch triple. Each slice has one entry per vertex:
//
//   - Weight[v]:   minimal cumulative routing weight from the source (+Inf if unreached).
//   - Distance[v]: cumulative distance along that optimal-weight path (+Inf if unreached).
//   - Pred[v]:     predecessor of v on that path (none for the source and unreached vertices).
//
// A Result belongs to one worker and is reset, not reallocated, before each search.
type Result struct {
	Distance []float64
	Weight   []float64
	Pred     []Pred
}

// NewResult allocates a Result for n vertices, already reset.
func NewResult(n int) *Result {
	r := &Result{
		Distance: make([]float64, n),
		Weight:   make([]float64, n),
		Pred:     make([]Pred, n),
	}
	r.Reset()

	return r
}

// Reset sets every distance and weight to +Inf and clears predecessors.
// Complexity: O(n).
func (r *Result) Reset() {
	inf := math.Inf(1)
	for i := range r.Distance {
		r.Distance[i] = inf
		r.Weight[i] = inf
		r.Pred[i] = NoPred()
	}
}

// Len returns the number of vertices the Result covers.
func (r *Result) Len() int { return len(r.Distance) }

// Reached reports whether v received a finite label.
func (r *Result) Reached(v int) bool { return !math.IsInf(r.Weight[v], 1) }
