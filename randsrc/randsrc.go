// Package randsrc adapts standard-library RNGs to catclustering.RandSource,
// the minimal Intn(int) int contract the neighbor seeder shuffles column
// order with.
//
// *math/rand.Rand already satisfies catclustering.RandSource structurally
// (it has an Intn(int) int method), so most callers need nothing from this
// package beyond rand.New(rand.NewSource(seed)). V2 and LockedSource exist
// for the two cases that don't fall out of that for free: math/rand/v2's
// renamed method, and sharing one RNG across concurrently launched
// clustering runs.
package randsrc

import (
	randv2 "math/rand/v2"
	"sync"
)

// V2 adapts a *math/rand/v2.Rand to catclustering.RandSource. rand/v2
// renamed Intn to IntN (it still panics when n <= 0), so the method needs
// a one-line shim rather than being usable directly.
type V2 struct {
	r *randv2.Rand
}

// NewV2 wraps r.
func NewV2(r *randv2.Rand) *V2 {
	return &V2{r: r}
}

// Intn returns a uniform pseudo-random int in [0, n).
func (v *V2) Intn(n int) int {
	return v.r.IntN(n)
}

// intSource is the shape catclustering.RandSource has; duplicated here
// instead of imported so this package does not need to depend on the root
// module just to name a one-method interface.
type intSource interface {
	Intn(n int) int
}

// LockedSource wraps an intSource (typically a *math/rand.Rand or a *V2)
// with a mutex, so one RNG can be shared by multiple goroutines each
// running an independent CreateDendrogram call. catclustering's
// agglomeration loop itself is single-threaded and never calls Intn
// concurrently on its own; this wrapper only matters when the caller launches several runs at once
// and wants them to draw from a single underlying stream.
type LockedSource struct {
	mu  sync.Mutex
	src intSource
}

// NewLockedSource wraps src for concurrent use.
func NewLockedSource(src intSource) *LockedSource {
	return &LockedSource{src: src}
}

// Intn returns a uniform pseudo-random int in [0, n), serialized across
// concurrent callers.
func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}
