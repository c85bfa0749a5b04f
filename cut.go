package catclustering

// unassigned marks a slot in an assignment buffer that no row has claimed
// yet, used only to pad a caller-supplied buffer that was too short.
const unassigned = -1

// AssignRowsToClusters assigns every leaf row of d a cluster number, under
// the constraint that no cluster exceeds maxClusterSize (unless a single
// subtree is itself already larger, which cannot happen since a subtree's
// size only grows by combining two already-capped subtrees -- the walk
// below stops descending as soon as a subtree fits).
//
// assignments is reused when it is already at least d.LeafCount() long;
// otherwise a new, larger buffer is allocated and returned. Go slices
// cannot grow through a value parameter, so the (possibly new) buffer is
// returned alongside the cluster count -- callers that want to reuse
// across calls should keep reassigning the returned slice, the way they
// would with append.
func (d *Dendrogram) AssignRowsToClusters(assignments []int, maxClusterSize int) ([]int, int) {
	size := d.LeafCount()
	if len(assignments) < size {
		grown := make([]int, size)
		for i := range grown {
			grown[i] = unassigned
		}
		copy(grown, assignments)
		assignments = grown
	}

	if d == nil || d.root == nil {
		return assignments, 0
	}

	clusterN := 0
	stack := []*node{d.root}
	var sameClusterStack []*node

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.isLeaf() {
			assignments[current.row] = clusterN
			clusterN++
			continue
		}
		if current.size > maxClusterSize {
			stack = append(stack, current.left, current.right)
			continue
		}
		assignSubtree(current, clusterN, assignments, sameClusterStack[:0])
		clusterN++
	}
	return assignments, clusterN
}

// assignSubtree assigns every leaf beneath current to clusterN using an
// explicit stack, the way the outer AssignRowsToClusters walk does.
func assignSubtree(current *node, clusterN int, assignments []int, stack []*node) {
	stack = append(stack[:0], current)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf() {
			assignments[n.row] = clusterN
			continue
		}
		stack = append(stack, n.left, n.right)
	}
}

// FindClusters cuts d at maxClusterSize and groups row indices by cluster,
// listing each cluster's row indices in ascending order.
func (d *Dendrogram) FindClusters(maxClusterSize int) [][]int {
	assignments, numClusters := d.AssignRowsToClusters(nil, maxClusterSize)

	clusters := make([][]int, numClusters)
	for rowIdx, clusterIdx := range assignments[:d.LeafCount()] {
		clusters[clusterIdx] = append(clusters[clusterIdx], rowIdx)
	}
	return clusters
}
