package flow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/dijkstra"
	"github.com/katalvlaran/lvflow/heaps"
	"github.com/katalvlaran/lvflow/store"
)

const (
	modelAggregation = "aggregation"
	modelDispersal   = "dispersal"
)

var tracer = otel.Tracer("github.com/katalvlaran/lvflow/flow")

// partition is the half-open origin range [lo, hi) of one worker.
type partition struct{ lo, hi int }

// plan is a validated call, ready to fan out.
type plan struct {
	model   string
	g       *core.Graph
	origins int
	factory heaps.Factory
	visitor func(pf *dijkstra.PathFinder, res *dijkstra.Result) visitor
	parts   []partition
}

// sink receives the finished partial of worker part. Each part index is
// delivered exactly once, from the goroutine that computed it.
type sink func(part int, local []float64) error

// Aggregate routes in.Flows over in.Graph and returns the per-edge totals,
// indexed like the graph's edges. Partials stay in memory and are summed in
// partition order after all workers finish.
func Aggregate(ctx context.Context, in AggregationInput, opts ...Option) ([]float64, error) {
	o := resolve(opts)
	p, err := aggregationPlan(&in, o)
	if err != nil {
		return nil, err
	}

	return reduceInMemory(ctx, p, o)
}

// Disperse spreads in.Flows from each origin with distance decay and returns
// the per-edge totals. See Aggregate for the delivery contract.
func Disperse(ctx context.Context, in DispersalInput, opts ...Option) ([]float64, error) {
	o := resolve(opts)
	p, err := dispersalPlan(&in, o)
	if err != nil {
		return nil, err
	}

	return reduceInMemory(ctx, p, o)
}

// RunAggregation is Aggregate with file delivery: each worker writes its
// partial to a file named "{baseDir}_{10 alphanumerics}.dat" and the paths
// are returned in partition order. Sum them with store.AggregateFiles.
// On error, partial files already written by this call are removed.
func RunAggregation(ctx context.Context, in AggregationInput, baseDir string, opts ...Option) ([]string, error) {
	o := resolve(opts)
	p, err := aggregationPlan(&in, o)
	if err != nil {
		return nil, err
	}

	return writePartials(ctx, p, o, baseDir)
}

// RunDispersal is Disperse with file delivery; see RunAggregation.
func RunDispersal(ctx context.Context, in DispersalInput, baseDir string, opts ...Option) ([]string, error) {
	o := resolve(opts)
	p, err := dispersalPlan(&in, o)
	if err != nil {
		return nil, err
	}

	return writePartials(ctx, p, o, baseDir)
}

func aggregationPlan(in *AggregationInput, o Options) (*plan, error) {
	factory, err := heaps.Lookup(o.Heap)
	if err != nil {
		return nil, err
	}
	if err = in.validate(); err != nil {
		return nil, err
	}

	edges := edgeIndex(in.Graph, in.Edges)
	origins := len(in.Origins)
	if in.Flows == nil {
		origins = 0
	}

	return &plan{
		model:   modelAggregation,
		g:       in.Graph,
		origins: origins,
		factory: factory,
		visitor: func(pf *dijkstra.PathFinder, res *dijkstra.Result) visitor {
			return &aggregator{in: in, edges: edges, tol: o.Tolerance, pf: pf, res: res}
		},
		parts: partitions(origins, o.Workers),
	}, nil
}

func dispersalPlan(in *DispersalInput, o Options) (*plan, error) {
	factory, err := heaps.Lookup(o.Heap)
	if err != nil {
		return nil, err
	}
	if err = in.validate(); err != nil {
		return nil, err
	}

	edges := edgeIndex(in.Graph, in.Edges)

	return &plan{
		model:   modelDispersal,
		g:       in.Graph,
		origins: len(in.Origins),
		factory: factory,
		visitor: func(pf *dijkstra.PathFinder, res *dijkstra.Result) visitor {
			return &disperser{in: in, edges: edges, tol: o.Tolerance, pf: pf, res: res}
		},
		parts: partitions(len(in.Origins), o.Workers),
	}, nil
}

// partitions splits n origins into contiguous ranges. The worker count is
// workers (GOMAXPROCS when 0), capped at n; the first n%w ranges get one
// extra origin.
func partitions(n, workers int) []partition {
	w := workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w <= 0 {
		return nil
	}

	parts := make([]partition, w)
	base, rem := n/w, n%w
	lo := 0
	for i := range parts {
		size := base
		if i < rem {
			size++
		}
		parts[i] = partition{lo: lo, hi: lo + size}
		lo += size
	}

	return parts
}

func reduceInMemory(ctx context.Context, p *plan, o Options) ([]float64, error) {
	partials := make([][]float64, len(p.parts))
	err := execute(ctx, p, o, func(part int, local []float64) error {
		partials[part] = local
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := make([]float64, p.g.EdgeCount())
	for _, local := range partials {
		for i, v := range local {
			total[i] += v
		}
	}

	return total, nil
}

func writePartials(ctx context.Context, p *plan, o Options, baseDir string) ([]string, error) {
	names := store.NewNamer(baseDir, o.Seed).Names(len(p.parts))
	written := make([]bool, len(p.parts))
	size := store.EncodedSize(p.g.EdgeCount())

	err := execute(ctx, p, o, func(part int, local []float64) error {
		if err := store.WriteFile(names[part], local); err != nil {
			return err
		}
		written[part] = true
		o.Metrics.PartialWritten(size)
		o.Logger.Debug().Str("model", p.model).Int("worker", part).
			Str("path", names[part]).Int64("bytes", size).Msg("partial written")
		return nil
	})
	if err != nil {
		for i, ok := range written {
			if ok {
				_ = os.Remove(names[i])
			}
		}
		return nil, err
	}

	return names, nil
}

// execute fans the plan out over an errgroup and hands each finished partial
// to deliver. The first error cancels the group; other workers stop at their
// next origin.
func execute(ctx context.Context, p *plan, o Options, deliver sink) (err error) {
	ctx, span := tracer.Start(ctx, "flow."+p.model,
		trace.WithAttributes(
			attribute.String("flow.model", p.model),
			attribute.String("flow.heap", o.Heap),
			attribute.Int("flow.origins", p.origins),
			attribute.Int("flow.workers", len(p.parts)),
			attribute.Int("graph.vertices", p.g.VertexCount()),
			attribute.Int("graph.edges", p.g.EdgeCount()),
		))
	defer span.End()

	start := time.Now()
	o.Logger.Info().Str("model", p.model).Str("heap", o.Heap).
		Int("origins", p.origins).Int("workers", len(p.parts)).
		Int("edges", p.g.EdgeCount()).Msg("flow run started")

	defer func() {
		if err != nil {
			o.Metrics.RunFailed(p.model)
			span.RecordError(err)
			span.SetStatus(codes.Error, "flow run failed")
			o.Logger.Error().Err(err).Str("model", p.model).Msg("flow run failed")
			return
		}
		span.SetStatus(codes.Ok, "")
		o.Logger.Info().Str("model", p.model).Dur("elapsed", time.Since(start)).Msg("flow run finished")
	}()

	eg, ctx := errgroup.WithContext(ctx)
	for idx, part := range p.parts {
		eg.Go(func() error {
			return runWorker(ctx, p, o, idx, part, deliver)
		})
	}

	return eg.Wait()
}

func runWorker(ctx context.Context, p *plan, o Options, idx int, part partition, deliver sink) error {
	_, span := tracer.Start(ctx, "flow.worker",
		trace.WithAttributes(
			attribute.Int("flow.worker", idx),
			attribute.Int("flow.origin_lo", part.lo),
			attribute.Int("flow.origin_hi", part.hi),
		))
	defer span.End()

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, "worker failed")
		return err
	}

	start := time.Now()
	n := p.g.VertexCount()
	pf, err := dijkstra.New(p.g, p.factory(n), dijkstra.WithTermination(o.Termination))
	if err != nil {
		return fail(err)
	}
	v := p.visitor(pf, dijkstra.NewResult(n))
	local := make([]float64, p.g.EdgeCount())

	for i := part.lo; i < part.hi; i++ {
		if err = ctx.Err(); err != nil {
			return fail(err)
		}
		if err = v.visit(i, local); err != nil {
			return fail(fmt.Errorf("flow: %s worker %d, origin row %d: %w", p.model, idx, i, err))
		}
	}

	elapsed := time.Since(start)
	o.Metrics.OriginsProcessed(p.model, part.hi-part.lo)
	o.Metrics.WorkerDone(p.model, elapsed)
	o.Logger.Debug().Str("model", p.model).Int("worker", idx).
		Int("origins", part.hi-part.lo).Dur("elapsed", elapsed).Msg("worker done")

	if err = deliver(idx, local); err != nil {
		return fail(err)
	}
	span.SetStatus(codes.Ok, "")

	return nil
}

// IsConfigError reports whether err was raised during call setup, before any
// search ran.
func IsConfigError(err error) bool {
	for _, target := range []error{
		heaps.ErrUnknownHeap, ErrNilGraph, ErrShape,
		ErrOriginOutOfRange, ErrDestinationOutOfRange, ErrBadDecay,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
