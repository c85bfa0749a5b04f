// Package termvec adapts sparse term-frequency vectors into a
// catclustering.Summary, for clustering rows whose "categorical footprint"
// is better described as a bag of labels (friend names, tags, words) than
// as a fixed number of columns.
//
// Vec, NewVec, Renorm, Add, Dot and Sim below are carried over from
// github.com/crowsonkb/cluster's own term-vector type, which this module
// was bootstrapped from; only the wiring into catclustering.Summary is new.
package termvec

import (
	"math"

	"github.com/rom1mouret/catclustering"
)

// Vec stores term vectors. Length is the euclidean norm and must be kept
// up to date by calling Renorm whenever M's contents change.
type Vec struct {
	M      map[string]int
	Length float64
}

// NewVec initializes a term vector, one tally per distinct string in list.
func NewVec(list []string) Vec {
	v := Vec{M: make(map[string]int, len(list))}
	for _, key := range list {
		v.M[key]++
	}
	v.Renorm()
	return v
}

// Renorm updates the cached euclidean norm of a term vector. Call it after
// any direct mutation of M.
func (a *Vec) Renorm() {
	var sum float64
	for _, val := range a.M {
		sum += float64(val * val)
	}
	a.Length = math.Sqrt(sum)
}

// Add folds b's term counts into a in place and renormalizes.
func (a *Vec) Add(b Vec) {
	for key, count := range b.M {
		a.M[key] += count
	}
	a.Renorm()
}

// Dot returns the inner product of two term vectors.
func (a Vec) Dot(b Vec) (sum float64) {
	if len(a.M) > len(b.M) {
		a, b = b, a
	}
	for key, count := range a.M {
		sum += float64(count * b.M[key])
	}
	return
}

// Sim returns the cosine similarity of a and b, in [-1, 1] (in [0, 1] when
// all term counts are nonnegative, as they always are here).
func (a Vec) Sim(b Vec) float64 {
	if a.Length == 0 || b.Length == 0 {
		return 0
	}
	return a.Dot(b) / (a.Length * b.Length)
}

// Summary adapts a Vec into a catclustering.Summary: Distance is cosine
// distance (1 - cosine similarity), and Extend/Clear delegate to Add and
// dropping M.
//
// Cosine distance is not provably monotone under Add the way
// catclustering.Summary's contract requires -- merging two term vectors
// can, in principle, raise their combined similarity to a third vector
// above what either contributed alone. In practice, for the sparse,
// mostly-disjoint term sets this package is built for (distinct friend
// lists, distinct tag sets), violations are rare enough not to matter for
// approximate clustering; catclustering only approximates complete
// linkage in any case.
type Summary struct {
	Vec Vec
}

// New wraps list as a term-vector Summary.
func New(list []string) *Summary {
	return &Summary{Vec: NewVec(list)}
}

// Size reports the number of distinct terms absorbed so far.
func (s *Summary) Size() int { return len(s.Vec.M) }

// Distance returns cosine distance against other, which must also be a
// *Summary.
func (s *Summary) Distance(other catclustering.Summary) float64 {
	o := other.(*Summary)
	return 1 - s.Vec.Sim(o.Vec)
}

// Extend folds other's term vector into s.
func (s *Summary) Extend(other catclustering.Summary) {
	o := other.(*Summary)
	s.Vec.Add(o.Vec)
}

// Clear releases s's term map.
func (s *Summary) Clear() { s.Vec.M = nil }
