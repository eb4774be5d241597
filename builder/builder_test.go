package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/builder"
	"github.com/katalvlaran/lvflow/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, core.Edge{From: 0, To: 1, Distance: 1, Weight: 1}, g.Edge(0))
	assert.Equal(t, core.Edge{From: 2, To: 3, Distance: 1, Weight: 1}, g.Edge(2))
}

func TestPath_Bidirectional(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(3),
		builder.WithBidirectional(),
		builder.WithWeightFn(builder.ConstantWeightFn(2)),
		builder.WithDistanceFn(builder.ConstantWeightFn(7)),
	)
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, core.Edge{From: 1, To: 0, Distance: 7, Weight: 2}, g.Edge(1))
}

func TestPath_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	// horizontal: 2 rows × 2 pairs, vertical: 3 pairs; each pair is 2 arcs
	assert.Equal(t, 2*(4+3), g.EdgeCount())
	assert.Equal(t, core.Edge{From: 0, To: 1, Distance: 1, Weight: 1}, g.Edge(0))
	assert.Equal(t, core.Edge{From: 1, To: 0, Distance: 1, Weight: 1}, g.Edge(1))
	assert.Equal(t, core.Edge{From: 0, To: 3, Distance: 1, Weight: 1}, g.Edge(2))
}

func TestGrid_Invalid(t *testing.T) {
	_, err := builder.BuildGraph(builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 5))}
	g1, err := builder.BuildGraph(builder.RandomSparse(30, 0.1), opts...)
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 5))}
	g2, err := builder.BuildGraph(builder.RandomSparse(30, 0.1), opts...)
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 5.0)
	}
}

func TestRandomSparse_Errors(t *testing.T) {
	_, err := builder.BuildGraph(builder.RandomSparse(5, 1.5), builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.BuildGraph(builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount(), "p=1 is complete without an RNG")
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
}
