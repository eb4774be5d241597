package store

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	suffixLen = 10
	fileExt   = ".dat"
)

// Namer hands out unique partial-file names for one call.
// It is safe for concurrent use.
type Namer struct {
	base string
	mu   sync.Mutex
	rng  *rand.Rand
	seen map[string]struct{}
}

// NewNamer returns a Namer producing "{base}_{suffix}.dat". A zero seed draws
// the seed from crypto/rand; any other seed makes the sequence reproducible.
func NewNamer(base string, seed uint64) *Namer {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
		seed |= 1
	}

	return &Namer{
		base: base,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seen: make(map[string]struct{}),
	}
}

// Next returns a name not previously returned by this Namer.
func (nm *Namer) Next() string {
	nm.mu.Lock()
	defer nm.mu.Unlock()

	var sb strings.Builder
	for {
		sb.Reset()
		sb.Grow(len(nm.base) + 1 + suffixLen + len(fileExt))
		sb.WriteString(nm.base)
		sb.WriteByte('_')
		for i := 0; i < suffixLen; i++ {
			sb.WriteByte(alphabet[nm.rng.IntN(len(alphabet))])
		}
		sb.WriteString(fileExt)

		name := sb.String()
		if _, dup := nm.seen[name]; !dup {
			nm.seen[name] = struct{}{}
			return name
		}
	}
}

// Names returns k fresh names in generation order.
func (nm *Namer) Names(k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = nm.Next()
	}

	return out
}
