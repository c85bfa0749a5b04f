package main

import (
	"sort"

	"github.com/rom1mouret/catclustering"
	"github.com/rom1mouret/catclustering/termvec"
)

// friendData adapts a list of per-user friend lists into a
// catclustering.DataAccessor. catclustering's neighbor seeder needs a
// fixed number of sortable columns per row (spec §4.2), but a friend list
// is a variable-length bag of names, not a dense row of category values --
// so each user's friend names are mapped to integer ids in a shared
// vocabulary, and the numCols smallest ids present in that user's list
// become the row's seeding columns. Rows with fewer than numCols friends
// are padded with a sentinel above every real id, so they always sort
// after users who do have a friend in that slot.
type friendData struct {
	names   [][]string
	cols    [][]int
	numCols int
}

func newFriendData(names [][]string, numCols int) *friendData {
	vocab := make(map[string]int)
	for _, friends := range names {
		for _, name := range friends {
			if _, ok := vocab[name]; !ok {
				vocab[name] = len(vocab)
			}
		}
	}
	sentinel := len(vocab)

	cols := make([][]int, len(names))
	for i, friends := range names {
		ids := make([]int, len(friends))
		for j, name := range friends {
			ids[j] = vocab[name]
		}
		sort.Ints(ids)

		row := make([]int, numCols)
		for c := range row {
			if c < len(ids) {
				row[c] = ids[c]
			} else {
				row[c] = sentinel
			}
		}
		cols[i] = row
	}

	return &friendData{names: names, cols: cols, numCols: numCols}
}

func (f *friendData) RowCount() int    { return len(f.names) }
func (f *friendData) ColumnCount() int { return f.numCols }

func (f *friendData) ValueAt(row, col int) float64 {
	return float64(f.cols[row][col])
}

func (f *friendData) MakeSummary(row int) catclustering.Summary {
	return termvec.New(f.names[row])
}
