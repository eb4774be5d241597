package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvflow/config"
	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/matrix"
	"github.com/katalvlaran/lvflow/metrics"
	"github.com/katalvlaran/lvflow/store"
)

type runOptions struct {
	keepFiles bool
	logger    zerolog.Logger
	metrics   metrics.Recorder
}

// result pairs the per-edge totals with the network that names the edges.
type result struct {
	network *core.Network
	flows   []float64
}

// execute builds the network from the job and runs the selected model,
// in memory or through partial files when job.OutputDir is set.
func execute(ctx context.Context, job *config.Job, ro runOptions) (*result, error) {
	cols, err := job.EdgeColumns()
	if err != nil {
		return nil, err
	}
	nw, err := core.NewNetwork(cols.From, cols.To, cols.Distance, cols.Weight)
	if err != nil {
		return nil, err
	}
	term, err := job.TerminationPolicy()
	if err != nil {
		return nil, err
	}

	opts := []flow.Option{
		flow.WithHeap(job.Heap),
		flow.WithTolerance(job.Tolerance),
		flow.WithWorkers(job.Workers),
		flow.WithTermination(term),
		flow.WithSeed(job.Seed),
		flow.WithLogger(ro.logger),
		flow.WithMetrics(ro.metrics),
	}
	ro.logger.Info().Str("mode", job.Mode).
		Int("vertices", nw.VertexCount()).Int("edges", nw.Graph().EdgeCount()).
		Msg("network built")

	var out []float64
	switch job.Mode {
	case config.ModeAggregation:
		in, err := aggregationInput(nw, job.Aggregation)
		if err != nil {
			return nil, err
		}
		if job.OutputDir == "" {
			out, err = flow.Aggregate(ctx, in, opts...)
		} else {
			out, err = viaFiles(job.OutputDir, nw.Graph().EdgeCount(), ro, func(base string) ([]string, error) {
				return flow.RunAggregation(ctx, in, base, opts...)
			})
		}
		if err != nil {
			return nil, err
		}

	case config.ModeDispersal:
		in, err := dispersalInput(nw, job.Dispersal)
		if err != nil {
			return nil, err
		}
		if job.OutputDir == "" {
			out, err = flow.Disperse(ctx, in, opts...)
		} else {
			out, err = viaFiles(job.OutputDir, nw.Graph().EdgeCount(), ro, func(base string) ([]string, error) {
				return flow.RunDispersal(ctx, in, base, opts...)
			})
		}
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: mode %q", config.ErrInvalid, job.Mode)
	}

	return &result{network: nw, flows: out}, nil
}

func aggregationInput(nw *core.Network, spec *config.AggregationSpec) (flow.AggregationInput, error) {
	in := flow.AggregationInput{Graph: nw.Graph()}
	var err error
	if in.Origins, err = nw.Indices(spec.Origins); err != nil {
		return in, fmt.Errorf("origins: %w", err)
	}
	if in.Destinations, err = nw.Indices(spec.Destinations); err != nil {
		return in, fmt.Errorf("destinations: %w", err)
	}
	if len(spec.Flows) > 0 && len(spec.Destinations) > 0 {
		if in.Flows, err = matrix.NewDenseFrom(spec.Flows); err != nil {
			return in, fmt.Errorf("flows: %w", err)
		}
	}

	return in, nil
}

func dispersalInput(nw *core.Network, spec *config.DispersalSpec) (flow.DispersalInput, error) {
	origins, err := nw.Indices(spec.Origins)
	if err != nil {
		return flow.DispersalInput{}, fmt.Errorf("origins: %w", err)
	}

	return flow.DispersalInput{Graph: nw.Graph(), Origins: origins, Flows: spec.Flows, K: spec.K}, nil
}

// viaFiles runs write into dir, sums the partial files and removes them
// unless ro.keepFiles is set.
func viaFiles(dir string, nEdges int, ro runOptions, write func(base string) ([]string, error)) ([]float64, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("partials dir: %w", err)
	}
	paths, err := write(filepath.Join(dir, "lvflow"))
	if err != nil {
		return nil, err
	}

	total, err := store.AggregateFiles(paths, nEdges)
	if err != nil {
		return nil, err
	}
	if ro.keepFiles {
		ro.logger.Info().Strs("paths", paths).Msg("partial files kept")
		return total, nil
	}
	for _, p := range paths {
		if rerr := os.Remove(p); rerr != nil {
			ro.logger.Warn().Err(rerr).Str("path", p).Msg("partial file not removed")
		}
	}

	return total, nil
}
