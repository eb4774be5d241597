package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflow/core"
	"github.com/katalvlaran/lvflow/matrix"
)

// AggregationInput is the data of one aggregation call.
//
// Flows is len(Origins) × len(Destinations); row i belongs to Origins[i] and
// column j to Destinations[j]. Flows may be nil only when either list is
// empty. Edges may be nil, in which case it is built from Graph.
type AggregationInput struct {
	Graph        *core.Graph
	Edges        *core.EdgeIndex
	Origins      []int
	Destinations []int
	Flows        *matrix.Dense
}

// DispersalInput is the data of one dispersal call. Flows[i] and K[i] are the
// total flow and decay parameter of Origins[i].
type DispersalInput struct {
	Graph   *core.Graph
	Edges   *core.EdgeIndex
	Origins []int
	Flows   []float64
	K       []float64
}

func (in *AggregationInput) validate() error {
	if in.Graph == nil {
		return ErrNilGraph
	}
	n := in.Graph.VertexCount()
	if err := checkVertices(in.Origins, n, ErrOriginOutOfRange); err != nil {
		return err
	}
	if err := checkVertices(in.Destinations, n, ErrDestinationOutOfRange); err != nil {
		return err
	}

	if in.Flows == nil {
		if len(in.Origins) == 0 || len(in.Destinations) == 0 {
			return nil
		}
		return fmt.Errorf("%w: flows matrix is nil", ErrShape)
	}
	if in.Flows.Rows() != len(in.Origins) || in.Flows.Cols() != len(in.Destinations) {
		return fmt.Errorf("%w: flows %d×%d, origins %d, destinations %d",
			ErrShape, in.Flows.Rows(), in.Flows.Cols(), len(in.Origins), len(in.Destinations))
	}

	return nil
}

func (in *DispersalInput) validate() error {
	if in.Graph == nil {
		return ErrNilGraph
	}
	if err := checkVertices(in.Origins, in.Graph.VertexCount(), ErrOriginOutOfRange); err != nil {
		return err
	}
	if len(in.Flows) != len(in.Origins) || len(in.K) != len(in.Origins) {
		return fmt.Errorf("%w: origins %d, flows %d, k %d",
			ErrShape, len(in.Origins), len(in.Flows), len(in.K))
	}
	for i, f := range in.Flows {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: flows[%d] = %g", ErrBadDecay, i, f)
		}
		if math.IsNaN(in.K[i]) {
			return fmt.Errorf("%w: k[%d] is NaN", ErrBadDecay, i)
		}
	}

	return nil
}

func checkVertices(vs []int, n int, sentinel error) error {
	for i, v := range vs {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: [%d] = %d (n=%d)", sentinel, i, v, n)
		}
	}

	return nil
}

// edgeIndex returns idx, or a fresh index over g when idx is nil.
func edgeIndex(g *core.Graph, idx *core.EdgeIndex) *core.EdgeIndex {
	if idx != nil {
		return idx
	}

	return core.NewEdgeIndex(g)
}
