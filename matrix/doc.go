// Package matrix provides the dense origin×destination flow matrix consumed
// by the flow workers.
//
// Dense is row-major over a flat slice, so one origin's row is a contiguous
// view. Every stored value must be finite and non-negative; the checks happen
// on write (Set, NewDenseFrom) so workers can read without re-validating.
//
// Indexers return sentinel errors instead of panicking:
//
//	m, _ := matrix.NewDense(2, 3)
//	if err := m.Set(1, 2, 7.5); err != nil { ... }
//	row := m.Row(1) // []float64{0, 0, 7.5}
package matrix
