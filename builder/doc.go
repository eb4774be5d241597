// Package builder produces deterministic *core.Graph fixtures for tests,
// examples and benchmarks of the shortest-path and flow packages.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(c, opts...): resolves options, runs one Constructor.
//   - Constructors:
//     – Path(n):            0→1→…→n-1 (plus reverse arcs WithBidirectional).
//     – Grid(rows, cols):   4-neighbourhood street grid, arcs in both directions.
//     – RandomSparse(n, p): each ordered pair (i≠j) becomes an arc with probability p.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors and cost functions.
//     – WithWeightFn:        per-edge routing weight.
//     – WithDistanceFn:      per-edge distance (defaults to the weight drawn).
//     – WithBidirectional:   emit reverse arcs for Path.
//   - Cost distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical graphs,
//     including edge indices.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
package builder
