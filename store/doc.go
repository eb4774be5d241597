// Package store persists per-worker partial flow vectors and folds them back
// into one aggregate vector.
//
// File layout (host-native byte order, no padding):
//
//	offset 0   uint64        N, the number of edges
//	offset 8   N × float64   flow per edge, in edge-index order
//
// A partial file is written once by the worker that owns it and read only by
// AggregateFiles. Files are never deleted here; cleanup belongs to the caller.
//
// Names come from a Namer scoped to one call: "{base}_{10 alphanumerics}.dat".
// The Namer's RNG is private to it, so concurrent calls never share state.
package store
