package catclustering

// linkHeap is a container/heap.Interface implementation over pending merge
// candidates, ordered as a min-heap by distance. This mirrors how the rest
// of the retrieved corpus drives priority-queue-shaped graph algorithms
// (HNSW candidate lists, gtfstidy's stop reclusterer) -- container/heap
// rather than a third-party priority-queue package.
type linkHeap []link

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool { return h[i].distance < h[j].distance }

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	*h = append(*h, x.(link))
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
