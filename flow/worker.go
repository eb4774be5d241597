// SPDX-License-Identifier: MIT
// Package: lvflow/flow
//
// worker.go: per-origin assignment for both models.
//
// A visitor is bound to one worker: it reuses that worker's PathFinder and
// Result and only ever writes the worker's own partial vector.

package flow

import (
	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/dijkstra"
)

// visitor assigns the flow of origin row i into local.
type visitor interface {
	visit(i int, local []float64) error
}

// aggregator routes one matrix row along shortest paths.
type aggregator struct {
	in    *AggregationInput
	edges *core.EdgeIndex
	tol   float64
	pf    *dijkstra.PathFinder
	res   *dijkstra.Result

	targets []int // scratch: retained destination vertices
	cols    []int // scratch: matrix column of each retained target
}

// visit handles origin row i.
//
// Steps:
//  1. fmax = largest flow in the row (0 if none is positive); flim = tol·fmax.
//  2. Retain destinations whose flow is strictly above flim.
//  3. Targeted search from the origin to the retained set.
//  4. For each retained destination other than the origin that was reached
//     with positive flow, add the flow to every edge of its path.
func (a *aggregator) visit(i int, local []float64) error {
	src := a.in.Origins[i]
	row := a.in.Flows.Row(i)

	// 1) Row maximum and threshold.
	fmax := 0.0
	for _, f := range row {
		if f > fmax {
			fmax = f
		}
	}
	flim := fmax * a.tol

	// 2) Filter.
	a.targets = a.targets[:0]
	a.cols = a.cols[:0]
	for j, f := range row {
		if f > flim {
			a.targets = append(a.targets, a.in.Destinations[j])
			a.cols = append(a.cols, j)
		}
	}
	if len(a.targets) == 0 {
		return nil
	}

	// 3) Search.
	if err := a.pf.Targeted(a.res, src, a.targets); err != nil {
		return err
	}

	// 4) Back-trace.
	for k, t := range a.targets {
		if t == src {
			continue
		}
		f := row[a.cols[k]]
		if !a.res.Reached(t) || f <= 0 {
			continue
		}
		if err := a.trace(src, t, f, local); err != nil {
			return err
		}
	}

	return nil
}

// trace walks predecessors from t back to src, adding f to each edge on the
// way. The walk ends after the edge leaving src, or at a vertex without
// predecessor.
func (a *aggregator) trace(src, t int, f float64, local []float64) error {
	v := t
	for {
		p, ok := a.res.Pred[v].Get()
		if !ok {
			return nil
		}
		ei, found := a.edges.Lookup(p, v)
		if !found {
			return &EdgeError{From: p, To: v}
		}
		local[ei] += f
		if p == src {
			return nil
		}
		v = p
	}
}

// disperser spreads one origin's flow over its bounded neighbourhood.
type disperser struct {
	in    *DispersalInput
	edges *core.EdgeIndex
	tol   float64
	pf    *dijkstra.PathFinder
	res   *dijkstra.Result
}

// visit runs a bounded search from origin i and credits each vertex's
// incoming tree edge with flow·decay(distance).
func (d *disperser) visit(i int, local []float64) error {
	src := d.in.Origins[i]
	k := d.in.K[i]
	f := d.in.Flows[i]

	if err := d.pf.Bounded(d.res, src, DistanceLimit(d.tol, k)); err != nil {
		return err
	}
	if f == 0 {
		return nil
	}

	for v, pred := range d.res.Pred {
		p, ok := pred.Get()
		if !ok {
			continue
		}
		ei, found := d.edges.Lookup(p, v)
		if !found {
			return &EdgeError{From: p, To: v}
		}
		local[ei] += f * Decay(d.res.Distance[v], k)
	}

	return nil
}
