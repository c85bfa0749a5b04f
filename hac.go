package catclustering

import (
	"container/heap"
	"fmt"
	"sort"
)

// CreateDendrogram runs approximate complete-linkage hierarchical
// agglomerative clustering over data and returns the resulting
// dendrogram.
//
// rng is consulted only while seeding the candidate-neighbor graph; the
// merge loop itself is deterministic given that graph and the Summary
// implementation's Distance/Extend behavior. Running CreateDendrogram
// twice with the same data and the same RNG state therefore produces
// identical dendrograms.
//
// If the candidate-neighbor graph the seeder produces does not connect
// every row -- which can happen when init_iterations is too low for a
// given row/column count -- CreateDendrogram returns a dendrogram covering
// only the connected component containing the final merge. Callers can
// detect this by comparing the result's LeafCount to data.RowCount(); see
// Dendrogram.Covers.
func CreateDendrogram(data DataAccessor, rng RandSource, opts ...Option) (*Dendrogram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.initIterations < 1 {
		o.initIterations = 1
	}

	numRows := data.RowCount()
	numCols := data.ColumnCount()
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("catclustering: data accessor reports %d rows and %d columns, both must be positive", numRows, numCols)
	}

	clusters := make([]clusterRec, numRows)
	for r := 0; r < numRows; r++ {
		clusters[r] = clusterRec{
			summary:    data.MakeSummary(r),
			mergedInto: noParent,
			piece:      newLeaf(r),
		}
	}

	if numRows == 1 {
		return &Dendrogram{root: clusters[0].piece}, nil
	}

	neighbors := seedNeighbors(data, o.initIterations, rng)

	// Map iteration order is randomized, so the pairs are sorted first: the
	// heap's layout, and with it the order in which equal-distance links
	// are popped, then depends only on the data and rng.
	pairs := make([]rowPair, 0, len(neighbors))
	for pair := range neighbors {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	h := make(linkHeap, 0, len(pairs))
	for _, pair := range pairs {
		c1, c2 := clusters[pair.a].summary, clusters[pair.b].summary
		h = append(h, link{
			c1:       pair.a,
			c2:       pair.b,
			distance: c1.Distance(c2),
			c1Size:   c1.Size(),
			c2Size:   c2.Size(),
		})
	}
	heap.Init(&h)

	lastLiveIndex := 0
	for h.Len() > 0 {
		l := heap.Pop(&h).(link)

		c1Root := clusters[l.c1].isRoot()
		c2Root := clusters[l.c2].isRoot()

		switch {
		case c1Root && c2Root:
			if merged, destIdx := resolveRootPair(clusters, &h, l); merged {
				lastLiveIndex = destIdx
			}
		case c1Root && !c2Root:
			pushFreshIfDistinct(clusters, &h, l.c1, liveRepresentative(clusters, l.c2))
		case !c1Root && c2Root:
			pushFreshIfDistinct(clusters, &h, liveRepresentative(clusters, l.c1), l.c2)
		default:
			pushFreshIfDistinct(clusters, &h,
				liveRepresentative(clusters, l.c1),
				liveRepresentative(clusters, l.c2))
		}
	}

	return &Dendrogram{root: clusters[lastLiveIndex].piece}, nil
}

// liveRepresentative walks the mergedInto chain from idx until it reaches
// a live root, without writing any path-compression shortcuts back: the
// chain is only read, never shortened (see SPEC_FULL.md §6).
func liveRepresentative(clusters []clusterRec, idx int) int {
	for clusters[idx].mergedInto != noParent {
		idx = clusters[idx].mergedInto
	}
	return idx
}

// pushFreshIfDistinct pushes a brand-new candidate Link between a and b
// with current sizes and a freshly computed distance, unless the two
// indices already name the same live cluster (Case B/C "drop").
func pushFreshIfDistinct(clusters []clusterRec, h *linkHeap, a, b int) {
	if a == b {
		return
	}
	sa, sb := clusters[a].summary, clusters[b].summary
	heap.Push(h, link{
		c1:       a,
		c2:       b,
		distance: sa.Distance(sb),
		c1Size:   sa.Size(),
		c2Size:   sb.Size(),
	})
}

// resolveRootPair handles Case A of the merge loop: both endpoints of l
// are still live roots. If either has changed size since l was pushed,
// the link is stale; a fresh one is pushed and the stale one discarded
// (merged is false). Otherwise the merge is committed atomically and
// merged is true with destIdx naming the surviving cluster.
func resolveRootPair(clusters []clusterRec, h *linkHeap, l link) (merged bool, destIdx int) {
	c1, c2 := &clusters[l.c1], &clusters[l.c2]
	s1, s2 := c1.summary.Size(), c2.summary.Size()

	if s1 != l.c1Size || s2 != l.c2Size {
		newDistance := c1.summary.Distance(c2.summary)
		debugAssertMonotone(l.distance, newDistance)
		heap.Push(h, link{c1: l.c1, c2: l.c2, distance: newDistance, c1Size: s1, c2Size: s2})
		return false, 0
	}

	// Extend the larger cluster: absorbing the (necessarily smaller or
	// equal) other side is more likely to leave its size unchanged,
	// which reduces future staleness in the heap. Ties go to c2 per
	// spec.
	destIdx, srcIdx := l.c2, l.c1
	if s1 > s2 {
		destIdx, srcIdx = l.c1, l.c2
	}
	dest, src := &clusters[destIdx], &clusters[srcIdx]

	if dest.piece == nil || src.piece == nil {
		panic("catclustering: missing dendrogram piece at merge commit")
	}
	dest.piece = newBranch(dest.piece, src.piece, l.distance)
	src.piece = nil

	dest.summary.Extend(src.summary)
	src.summary.Clear()

	src.mergedInto = destIdx

	return true, destIdx
}
