// Package flow assigns network-level movement onto the edges of a directed
// graph by shortest-path routing.
//
// Two models are offered:
//
//   - Aggregation: an origin×destination flow matrix is routed along the
//     minimum-weight path of every (origin, destination) pair whose flow is
//     above tol × (row maximum). Each edge of the path receives the full
//     pair flow; contributions from different pairs add up.
//
//   - Dispersal: the flow leaving each origin spreads to every vertex within
//     a distance budget. Each reached vertex adds flow × decay(distance) to
//     the single edge it was reached through. Decay is exp(-d/k) for k > 0
//     and a fitted logistic curve for k ≤ 0.
//
// # Parallel runtime
//
// Origins are split into contiguous, disjoint ranges, one per worker. A worker
// owns its PathFinder, its Result scratch and its partial vector; nothing
// mutable is shared while workers run. Two delivery modes exist:
//
//	Aggregate / Disperse             partials reduced in memory, partition order
//	RunAggregation / RunDispersal    one partial file per worker (see package store)
//
// The summed vector does not depend on the worker count, up to floating-point
// reassociation of the per-edge sums.
//
// # Errors
//
// Configuration problems (unknown heap, shape mismatch, out-of-range vertex)
// are reported before any search runs. A predecessor pair with no edge in the
// EdgeIndex is an *EdgeError and aborts the call. The first worker error
// cancels the others at their next origin boundary.
//
// # Observability
//
// WithLogger attaches a zerolog.Logger (silent by default), WithMetrics a
// metrics.Recorder. One OpenTelemetry span covers the call and one each worker,
// taken from the global tracer provider.
package flow
