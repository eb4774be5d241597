package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvflow/core"
)

// ExampleNetwork builds a tiny named network and resolves an edge slot.
func ExampleNetwork() {
	// 1) Three columns describe the edges; names become indices in first-seen order.
	nw, err := core.NewNetwork(
		[]string{"depot", "depot", "market"},
		[]string{"market", "harbour", "harbour"},
		[]float64{1200, 3100, 900}, // metres
		[]float64{1.2, 3.5, 0.8},   // routing cost
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) EdgeIndex answers "which edge joins these two vertices?".
	x := core.NewEdgeIndex(nw.Graph())
	from, _ := nw.Index("market")
	to, _ := nw.Index("harbour")
	slot, ok := x.Lookup(from, to)

	fmt.Println(nw.VertexCount(), nw.Graph().EdgeCount(), slot, ok)
	// Output: 3 3 2 true
}
