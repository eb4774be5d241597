package heaps

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownHeap indicates a heap strategy name that is not registered.
var ErrUnknownHeap = errors.New("heaps: unknown heap strategy")

// DefaultName is the strategy the CLI and config layer fall back to when the
// user gives none. The library itself never substitutes it.
const DefaultName = "BHeap"

// Queue is a min-priority queue over vertex indices 0..n-1.
//
// Contract:
//   - Insert(v, key): v must not currently be queued.
//   - DecreaseKey(v, key): key must not exceed v's current key. If v is not
//     queued it is inserted.
//   - ExtractMin(): removes and returns the vertex with the smallest key;
//     returns -1 when the queue is empty. Ties are broken by heap order.
//   - Empty(): reports whether ExtractMin would return -1.
//   - Reset(): drops every entry so the queue can serve a new search.
type Queue interface {
	Insert(v int, key float64)
	DecreaseKey(v int, key float64)
	ExtractMin() int
	Empty() bool
	Reset()
}

// Factory builds a Queue able to hold vertices 0..n-1.
type Factory func(n int) Queue

var registry = map[string]Factory{
	"BHeap":       func(n int) Queue { return NewBinary(n) },
	"QuadHeap":    func(n int) Queue { return NewQuad(n) },
	"FHeap":       func(n int) Queue { return NewFibonacci(n) },
	"PairingHeap": func(n int) Queue { return NewPairing(n) },
	"LazyHeap":    func(n int) Queue { return NewLazy(n) },
}

// Lookup resolves a strategy name to its Factory.
// Unknown names, including the empty string, return ErrUnknownHeap.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownHeap, name, strings.Join(Names(), ", "))
	}

	return f, nil
}

// New is Lookup followed by a call to the factory.
func New(name string, n int) (Queue, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return f(n), nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
