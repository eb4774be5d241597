package flow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the flow entry points.
var (
	// ErrNilGraph indicates an input without a graph.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrShape indicates flow data whose dimensions disagree with the
	// origin/destination lists.
	ErrShape = errors.New("flow: input shape mismatch")

	// ErrOriginOutOfRange indicates an origin that is not a vertex of the graph.
	ErrOriginOutOfRange = errors.New("flow: origin vertex out of range")

	// ErrDestinationOutOfRange indicates a destination that is not a vertex of the graph.
	ErrDestinationOutOfRange = errors.New("flow: destination vertex out of range")

	// ErrBadDecay indicates a NaN, infinite or negative dispersal flow, or a NaN k.
	ErrBadDecay = errors.New("flow: invalid dispersal parameter")

	// ErrEdgeResolution is matched by every *EdgeError.
	ErrEdgeResolution = errors.New("flow: predecessor pair has no edge")
)

// EdgeError reports a shortest-path step From→To that the EdgeIndex cannot
// resolve. It means the index was built over a different graph.
type EdgeError struct {
	From, To int
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: no edge %d→%d in edge index", e.From, e.To)
}

// Is makes errors.Is(err, ErrEdgeResolution) hold.
func (e *EdgeError) Is(target error) bool { return target == ErrEdgeResolution }
