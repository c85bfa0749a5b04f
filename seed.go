package catclustering

import "sort"

// rowPair is an unordered candidate pair, always stored with a < b.
type rowPair struct {
	a, b int
}

// seedNeighbors produces the sparse candidate-pair set the agglomeration
// engine seeds its heap from: initIterations rounds of randomized
// multi-column lexicographic sorts, taking every adjacent pair in each
// sorted order as a candidate. See SPEC_FULL.md §6 / spec.md §4.2 for the
// algorithm this implements.
//
// initIterations less than 1 is clamped to 1. A row count under 2 yields
// an empty set. A column count of 0 is a programmer error and is not
// guarded against here -- data.ColumnCount() == 0 is caught earlier, in
// CreateDendrogram.
func seedNeighbors(data DataAccessor, initIterations int, rng RandSource) map[rowPair]struct{} {
	if initIterations < 1 {
		initIterations = 1
	}

	numRows := data.RowCount()
	numCols := data.ColumnCount()
	neighbors := make(map[rowPair]struct{})
	if numRows < 2 {
		return neighbors
	}

	cols := make([]int, numCols)
	for i := range cols {
		cols[i] = i
	}
	rows := make([]int, numRows)
	for i := range rows {
		rows[i] = i
	}

	for iter := 0; iter < initIterations; iter++ {
		for focus := 0; focus < numCols; focus++ {
			shuffleInts(cols, rng)
			moveToEnd(cols, focus)

			sort.Slice(rows, func(i, j int) bool {
				ri, rj := rows[i], rows[j]
				for _, col := range cols {
					vi, vj := data.ValueAt(ri, col), data.ValueAt(rj, col)
					if vi != vj {
						return vi < vj
					}
				}
				return false
			})

			for i := 0; i < numRows-1; i++ {
				r1, r2 := rows[i], rows[i+1]
				if r1 > r2 {
					r1, r2 = r2, r1
				}
				neighbors[rowPair{r1, r2}] = struct{}{}
			}
		}
	}

	return neighbors
}

// shuffleInts performs an in-place Fisher-Yates shuffle of s using rng.
func shuffleInts(s []int, rng RandSource) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// moveToEnd finds the position holding value and swaps it with the last
// slot of cols, so the focus column always becomes the least-significant
// sort key for this pass regardless of how the shuffle landed it.
func moveToEnd(cols []int, value int) {
	last := len(cols) - 1
	for p, v := range cols {
		if v == value {
			cols[p], cols[last] = cols[last], cols[p]
			return
		}
	}
}
