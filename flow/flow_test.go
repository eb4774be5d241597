package flow_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"math/rand"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvflow/builder"
	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/dijkstra"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/heaps"
	"github.com/katalvlaran/lvflow/matrix"
	"github.com/katalvlaran/lvflow/store"
)

// ------------------------------------------------------------------------
// fixtures
// ------------------------------------------------------------------------

type arc struct {
	from, to int
	d, w     float64
}

func graphOf(t *testing.T, n int, arcs ...arc) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, a := range arcs {
		_, err = g.AddEdge(a.from, a.to, a.d, a.w)
		require.NoError(t, err)
	}

	return g
}

func dense(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomProblem builds a seeded random graph with an OD matrix over a subset
// of its vertices.
func randomProblem(t *testing.T, n, nOrig, nDest int, seed int64) flow.AggregationInput {
	t.Helper()
	g, err := builder.BuildGraph(builder.RandomSparse(n, 0.05),
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
		builder.WithDistanceFn(builder.UniformWeightFn(1, 3)),
	)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	origins := rng.Perm(n)[:nOrig]
	dests := rng.Perm(n)[:nDest]
	m, err := matrix.NewDense(nOrig, nDest)
	require.NoError(t, err)
	for i := 0; i < nOrig; i++ {
		for j := 0; j < nDest; j++ {
			require.NoError(t, m.Set(i, j, math.Floor(rng.Float64()*100)))
		}
	}

	return flow.AggregationInput{Graph: g, Origins: origins, Destinations: dests, Flows: m}
}

// countingRecorder is a metrics.Recorder for assertions.
type countingRecorder struct {
	origins  atomic.Int64
	workers  atomic.Int64
	bytes    atomic.Int64
	failures atomic.Int64
}

func (c *countingRecorder) OriginsProcessed(_ string, n int) { c.origins.Add(int64(n)) }
func (c *countingRecorder) WorkerDone(string, time.Duration) { c.workers.Add(1) }
func (c *countingRecorder) PartialWritten(b int64) { c.bytes.Add(b) }
func (c *countingRecorder) RunFailed(string) { c.failures.Add(1) }

// ------------------------------------------------------------------------
// Aggregation
// ------------------------------------------------------------------------

// AggregateSuite covers the aggregation model on hand-checked graphs.
type AggregateSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *AggregateSuite) SetupTest() { s.ctx = context.Background() }

// TestSingleEdge: one edge A→B, flow 5 → edge flow 5.
func (s *AggregateSuite) TestSingleEdge() {
	g := graphOf(s.T(), 2, arc{0, 1, 1, 1})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1}, Flows: dense(s.T(), []float64{5}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{5}, got)
}

// TestSelfFlowIgnored: flow from a vertex to itself contributes nothing.
func (s *AggregateSuite) TestSelfFlowIgnored() {
	g := graphOf(s.T(), 2, arc{0, 1, 1, 1}, arc{1, 0, 1, 1})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{0, 1}, Flows: dense(s.T(), []float64{100, 5}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{5, 0}, got)
}

// TestPathIncludesOriginEdge: every edge of the route, the first one included, is credited.
func (s *AggregateSuite) TestPathIncludesOriginEdge() {
	g, err := builder.BuildGraph(builder.Path(4))
	s.Require().NoError(err)
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0, 1}, Destinations: []int{3}, Flows: dense(s.T(), []float64{2}, []float64{7}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{2, 9, 9}, got)
}

// TestToleranceFiltering: destinations at or below tol·rowmax are dropped.
func (s *AggregateSuite) TestToleranceFiltering() {
	g, err := builder.BuildGraph(builder.Path(3))
	s.Require().NoError(err)
	in := flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1, 2}, Flows: dense(s.T(), []float64{100, 0.001}),
	}

	got, err := flow.Aggregate(s.ctx, in, flow.WithTolerance(1e-4))
	s.Require().NoError(err)
	s.Equal([]float64{100, 0}, got)

	got, err = flow.Aggregate(s.ctx, in)
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{100.001, 0.001}, got, 1e-12)
}

// TestZeroRow: an all-zero row routes nothing.
func (s *AggregateSuite) TestZeroRow() {
	g, err := builder.BuildGraph(builder.Path(3))
	s.Require().NoError(err)
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1, 2}, Flows: dense(s.T(), []float64{0, 0}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{0, 0}, got)
}

// TestUnreachableDestination: no path, no contribution, no error.
func (s *AggregateSuite) TestUnreachableDestination() {
	g := graphOf(s.T(), 3, arc{0, 1, 1, 1})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1, 2}, Flows: dense(s.T(), []float64{4, 9}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{4}, got)
}

// TestParallelEdgesUseLightest: the lightest of parallel edges carries the flow.
func (s *AggregateSuite) TestParallelEdgesUseLightest() {
	g := graphOf(s.T(), 2, arc{0, 1, 1, 3}, arc{0, 1, 1, 2}, arc{0, 1, 1, 2})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1}, Flows: dense(s.T(), []float64{6}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{0, 6, 0}, got)
}

// TestRouteFollowsWeight: flow takes the light detour, not the short direct edge.
func (s *AggregateSuite) TestRouteFollowsWeight() {
	g := graphOf(s.T(), 3, arc{0, 2, 1, 10}, arc{0, 1, 5, 1}, arc{1, 2, 5, 1})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{2}, Flows: dense(s.T(), []float64{1}),
	})
	s.Require().NoError(err)
	s.Equal([]float64{0, 1, 1}, got)
}

// TestEmptyOrigins: nothing to route is not an error.
func (s *AggregateSuite) TestEmptyOrigins() {
	g := graphOf(s.T(), 2, arc{0, 1, 1, 1})
	got, err := flow.Aggregate(s.ctx, flow.AggregationInput{Graph: g})
	s.Require().NoError(err)
	s.Equal([]float64{0}, got)
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

// ------------------------------------------------------------------------
// Runtime properties
// ------------------------------------------------------------------------

func TestAggregate_PartitionInvariance(t *testing.T) {
	in := randomProblem(t, 120, 40, 30, 11)
	ref, err := flow.Aggregate(context.Background(), in, flow.WithWorkers(1))
	require.NoError(t, err)
	require.Greater(t, sum(ref), 0.0)

	for _, w := range []int{2, 3, 7, 40, 100, 0} {
		got, err := flow.Aggregate(context.Background(), in, flow.WithWorkers(w))
		require.NoError(t, err)
		assert.InDeltaSlice(t, ref, got, 1e-6, "workers=%d", w)
	}
}

func TestDisperse_PartitionInvariance(t *testing.T) {
	agg := randomProblem(t, 100, 25, 1, 5)
	in := flow.DispersalInput{Graph: agg.Graph, Origins: agg.Origins}
	for i := range in.Origins {
		in.Flows = append(in.Flows, float64(10+i))
		in.K = append(in.K, float64(i%4)) // mixes logistic (k=0) and exponential
	}

	ref, err := flow.Disperse(context.Background(), in, flow.WithWorkers(1), flow.WithTolerance(1e-3))
	require.NoError(t, err)
	for _, w := range []int{2, 5, 25} {
		got, err := flow.Disperse(context.Background(), in, flow.WithWorkers(w), flow.WithTolerance(1e-3))
		require.NoError(t, err)
		assert.InDeltaSlice(t, ref, got, 1e-9, "workers=%d", w)
	}
}

func TestAggregate_HeapsAndTerminationAgree(t *testing.T) {
	in := randomProblem(t, 90, 20, 20, 3)
	ref, err := flow.Aggregate(context.Background(), in, flow.WithWorkers(2))
	require.NoError(t, err)

	for _, name := range heaps.Names() {
		for _, term := range []dijkstra.Termination{dijkstra.StopWhenSettled, dijkstra.Exhaustive} {
			got, err := flow.Aggregate(context.Background(), in,
				flow.WithHeap(name), flow.WithTermination(term), flow.WithWorkers(3))
			require.NoError(t, err)
			assert.InDeltaSlice(t, ref, got, 1e-6, "%s/%s", name, term)
		}
	}
}

func TestRunAggregation_MatchesInMemory(t *testing.T) {
	in := randomProblem(t, 80, 30, 15, 21)
	base := filepath.Join(t.TempDir(), "flows")

	mem, err := flow.Aggregate(context.Background(), in, flow.WithWorkers(4))
	require.NoError(t, err)

	rec := &countingRecorder{}
	paths, err := flow.RunAggregation(context.Background(), in, base,
		flow.WithWorkers(4), flow.WithSeed(8), flow.WithMetrics(rec))
	require.NoError(t, err)
	require.Len(t, paths, 4)

	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `_[0-9A-Za-z]{10}\.dat$`)
	for _, p := range paths {
		assert.Regexp(t, re, p)
	}

	files, err := store.AggregateFiles(paths, in.Graph.EdgeCount())
	require.NoError(t, err)
	assert.InDeltaSlice(t, mem, files, 1e-9)

	assert.Equal(t, int64(30), rec.origins.Load())
	assert.Equal(t, int64(4), rec.workers.Load())
	assert.Equal(t, 4*store.EncodedSize(in.Graph.EdgeCount()), rec.bytes.Load())
	assert.Zero(t, rec.failures.Load())
}

func TestRunDispersal_MatchesInMemory(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(6, 6), builder.WithSeed(4),
		builder.WithWeightFn(builder.UniformWeightFn(1, 2)))
	require.NoError(t, err)
	in := flow.DispersalInput{
		Graph:   g,
		Origins: []int{0, 7, 14, 21, 35},
		Flows:   []float64{1, 2, 3, 4, 5},
		K:       []float64{2, 2, 0, 1, 3},
	}

	mem, err := flow.Disperse(context.Background(), in, flow.WithWorkers(2))
	require.NoError(t, err)
	paths, err := flow.RunDispersal(context.Background(), in, filepath.Join(t.TempDir(), "disp"), flow.WithWorkers(2))
	require.NoError(t, err)
	files, err := store.AggregateFiles(paths, g.EdgeCount())
	require.NoError(t, err)
	assert.InDeltaSlice(t, mem, files, 1e-12)
}

func TestRunAggregation_NoOrigins(t *testing.T) {
	g := graphOf(t, 2, arc{0, 1, 1, 1})
	paths, err := flow.RunAggregation(context.Background(), flow.AggregationInput{Graph: g},
		filepath.Join(t.TempDir(), "x"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestRunAggregation_WriteFailure(t *testing.T) {
	in := randomProblem(t, 30, 4, 4, 1)
	base := filepath.Join(t.TempDir(), "missing-dir", "flows")
	rec := &countingRecorder{}

	_, err := flow.RunAggregation(context.Background(), in, base, flow.WithWorkers(2), flow.WithMetrics(rec))
	var fe *store.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, int64(1), rec.failures.Load())
}

// ------------------------------------------------------------------------
// Dispersal
// ------------------------------------------------------------------------

func TestDisperse_ExponentialAtZeroDistance(t *testing.T) {
	g := graphOf(t, 2, arc{0, 1, 0, 1})
	got, err := flow.Disperse(context.Background(), flow.DispersalInput{
		Graph: g, Origins: []int{0}, Flows: []float64{3}, K: []float64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got, "vertex reached through predecessor 0 is credited")
}

func TestDisperse_LogisticAtZeroDistance(t *testing.T) {
	g := graphOf(t, 2, arc{0, 1, 0, 1})
	got, err := flow.Disperse(context.Background(), flow.DispersalInput{
		Graph: g, Origins: []int{0}, Flows: []float64{10}, K: []float64{0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.198, got[0], 0.003)
}

// With tol=0.1 and k=1.5 the radius is 1.5: vertex 1 (d=1) is expanded,
// vertex 2 (d=2) is labelled from it but not expanded, vertex 3 is never reached.
func TestDisperse_BoundedNeighbourhood(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(4))
	require.NoError(t, err)
	got, err := flow.Disperse(context.Background(), flow.DispersalInput{
		Graph: g, Origins: []int{0}, Flows: []float64{1}, K: []float64{1.5},
	}, flow.WithTolerance(0.1))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Exp(-1 / 1.5), math.Exp(-2 / 1.5), 0}, got, 1e-15)
}

// For k ≤ 0 the radius -log10(tol)·k is at most 0: only the origin is
// expanded, so on a unit path only its outgoing edge is credited.
func TestDisperse_LogisticRadius(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(6))
	require.NoError(t, err)
	for _, k := range []float64{0, -2} {
		got, err := flow.Disperse(context.Background(), flow.DispersalInput{
			Graph: g, Origins: []int{0}, Flows: []float64{1}, K: []float64{k},
		}, flow.WithTolerance(1e-3))
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{flow.LogisticDecay(1), 0, 0, 0, 0}, got, 1e-15, "k=%g", k)
	}
}

// Dispersal credits only the immediate incoming edge.
func TestDisperse_ImmediateEdgeOnly(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(3))
	require.NoError(t, err)
	got, err := flow.Disperse(context.Background(), flow.DispersalInput{
		Graph: g, Origins: []int{0}, Flows: []float64{2}, K: []float64{1},
	}, flow.WithTolerance(0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2 * math.Exp(-1), 2 * math.Exp(-2)}, got, 1e-15)
}

// ------------------------------------------------------------------------
// Errors
// ------------------------------------------------------------------------

func TestConfigErrors(t *testing.T) {
	g := graphOf(t, 2, arc{0, 1, 1, 1})
	ok := flow.AggregationInput{Graph: g, Origins: []int{0}, Destinations: []int{1}, Flows: dense(t, []float64{1})}
	ctx := context.Background()

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"unknown heap", func() error {
			_, err := flow.Aggregate(ctx, ok, flow.WithHeap("Radix"))
			return err
		}, heaps.ErrUnknownHeap},
		{"empty heap key", func() error {
			_, err := flow.Aggregate(ctx, ok, flow.WithHeap(""))
			return err
		}, heaps.ErrUnknownHeap},
		{"nil graph", func() error {
			_, err := flow.Aggregate(ctx, flow.AggregationInput{})
			return err
		}, flow.ErrNilGraph},
		{"shape", func() error {
			in := ok
			in.Destinations = []int{0, 1}
			_, err := flow.Aggregate(ctx, in)
			return err
		}, flow.ErrShape},
		{"nil flows", func() error {
			in := ok
			in.Flows = nil
			_, err := flow.Aggregate(ctx, in)
			return err
		}, flow.ErrShape},
		{"origin range", func() error {
			in := ok
			in.Origins = []int{2}
			_, err := flow.Aggregate(ctx, in)
			return err
		}, flow.ErrOriginOutOfRange},
		{"destination range", func() error {
			in := ok
			in.Destinations = []int{-1}
			_, err := flow.Aggregate(ctx, in)
			return err
		}, flow.ErrDestinationOutOfRange},
		{"dispersal lengths", func() error {
			_, err := flow.Disperse(ctx, flow.DispersalInput{Graph: g, Origins: []int{0}, Flows: []float64{1}})
			return err
		}, flow.ErrShape},
		{"dispersal negative flow", func() error {
			_, err := flow.Disperse(ctx, flow.DispersalInput{Graph: g, Origins: []int{0}, Flows: []float64{-1}, K: []float64{1}})
			return err
		}, flow.ErrBadDecay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.ErrorIs(t, err, tc.want)
			assert.True(t, flow.IsConfigError(err))
		})
	}
}

func TestEdgeResolutionError(t *testing.T) {
	g := graphOf(t, 2, arc{0, 1, 1, 1})
	other := graphOf(t, 2)

	_, err := flow.Aggregate(context.Background(), flow.AggregationInput{
		Graph: g, Edges: core.NewEdgeIndex(other),
		Origins: []int{0}, Destinations: []int{1}, Flows: dense(t, []float64{1}),
	})
	require.ErrorIs(t, err, flow.ErrEdgeResolution)
	var ee *flow.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, flow.EdgeError{From: 0, To: 1}, *ee)
	assert.False(t, flow.IsConfigError(err))
}

func TestCancelledContext(t *testing.T) {
	in := randomProblem(t, 40, 10, 10, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.Aggregate(ctx, in, flow.WithWorkers(3))
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { flow.WithTolerance(-1) })
	assert.Panics(t, func() { flow.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { flow.WithWorkers(-2) })
	assert.Panics(t, func() { flow.WithMetrics(nil) })
	assert.Panics(t, func() { flow.WithTermination(dijkstra.Termination(5)) })
}

func TestLoggerReceivesRunEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := graphOf(t, 2, arc{0, 1, 1, 1})

	_, err := flow.Aggregate(context.Background(), flow.AggregationInput{
		Graph: g, Origins: []int{0}, Destinations: []int{1}, Flows: dense(t, []float64{1}),
	}, flow.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"flow run started"`)
	assert.Contains(t, out, `"message":"worker done"`)
	assert.Contains(t, out, `"model":"aggregation"`)
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
