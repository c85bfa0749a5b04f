package catset

import "github.com/rom1mouret/catclustering"

// GenerateRandomGroups builds synthetic categorical rows arranged into
// well-separated groups: group g's rows each draw every column uniformly
// from the value range [g*valuesPerGroup, (g+1)*valuesPerGroup). This is
// the "two well-separated groups" / "K equal synthetic clusters" shape the
// original Rust crate's own test-data construction used
// (original_source/src/main.rs's create_random_matrix, adapted here to
// produce separated groups rather than one uniform range), and is
// supplemented here since catclustering's spec leaves data generation to
// callers.
func GenerateRandomGroups(groups, rowsPerGroup, columns, valuesPerGroup int, rng catclustering.RandSource) [][]int {
	rows := make([][]int, 0, groups*rowsPerGroup)
	for g := 0; g < groups; g++ {
		base := g * valuesPerGroup
		for i := 0; i < rowsPerGroup; i++ {
			row := make([]int, columns)
			for c := range row {
				row[c] = base + rng.Intn(valuesPerGroup)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// GenerateCongruentRows builds k*rowsPerCluster rows, each with every
// column set to its row index modulo k -- the exact construction
// original_source/src/lib.rs's test_clear_clusters test uses to produce k
// clusters whose membership is easy to check without randomness.
func GenerateCongruentRows(k, rowsPerCluster, columns int) [][]int {
	total := k * rowsPerCluster
	rows := make([][]int, total)
	for i := 0; i < total; i++ {
		v := i % k
		row := make([]int, columns)
		for c := range row {
			row[c] = v
		}
		rows[i] = row
	}
	return rows
}
