// Package lvflow assigns flows to the edges of a directed network by
// shortest-path routing.
//
// Two models share one routing core:
//
//	Aggregation: every origin sends a given amount to every destination
//	             along its shortest path; the per-edge result is the sum
//	             of everything routed across that edge.
//	Dispersal:   every origin spreads a single amount over the network,
//	             decayed with distance (exponential for k > 0, logistic
//	             otherwise) and cut off at the distance where the decayed
//	             share falls below the tolerance.
//
// Paths are chosen by edge weight; the decay and the cut-off work on a
// separate per-edge distance accumulated along the same path.
//
// Layout:
//
//	core/      compact directed graph, edge index, named network
//	heaps/     priority queue strategies behind one registry
//	dijkstra/  reusable single-source search (targeted and bounded)
//	matrix/    dense origin-by-destination flow matrix
//	flow/      the two models, origin partitioning and parallel workers
//	store/     partial-result files and their summation
//	metrics/   run counters (Prometheus or no-op)
//	config/    YAML job files and CSV edge lists
//	builder/   deterministic test networks (path, grid, random sparse)
//	cmd/lvflow command-line runner
//
// A minimal in-memory aggregation:
//
//	g, _ := core.NewGraph(3)
//	_, _ = g.AddEdge(0, 1, 1, 1)
//	_, _ = g.AddEdge(1, 2, 1, 1)
//	f, _ := matrix.NewDenseFrom([][]float64{{5}})
//	out, err := flow.Aggregate(ctx, flow.AggregationInput{
//		Graph:        g,
//		Origins:      []int{0},
//		Destinations: []int{2},
//		Flows:        f,
//	})
//	// out == [5 5]
package lvflow
