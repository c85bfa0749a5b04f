package catclustering_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rom1mouret/catclustering"
	"github.com/rom1mouret/catclustering/catset"
)

func TestCreateDendrogramTwoWellSeparatedGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := catset.GenerateRandomGroups(2, 100, 3, 5, rng)
	data := catset.NewMatrix(rows)

	dendro, err := catclustering.CreateDendrogram(data, rng)
	require.NoError(t, err)
	require.True(t, dendro.Covers(200))

	clusters := dendro.FindClusters(100)
	require.Len(t, clusters, 2)

	sizes := []int{len(clusters[0]), len(clusters[1])}
	assert.ElementsMatch(t, []int{100, 100}, sizes)

	for _, cluster := range clusters {
		group := cluster[0] / 100
		for _, row := range cluster {
			assert.Equal(t, group, row/100, "row %d landed in the wrong group's cluster", row)
		}
	}
}

func TestCreateDendrogramKEqualSyntheticClusters(t *testing.T) {
	for _, k := range []int{10, 20, 30, 40, 50, 60, 70, 80, 90} {
		k := k
		t.Run("", func(t *testing.T) {
			rows := catset.GenerateCongruentRows(k, 12, 3)
			data := catset.NewMatrix(rows)
			rng := rand.New(rand.NewSource(int64(k)))

			dendro, err := catclustering.CreateDendrogram(data, rng)
			require.NoError(t, err)
			require.True(t, dendro.Covers(12*k))

			clusters := dendro.FindClusters(12)
			require.Len(t, clusters, k)

			for _, cluster := range clusters {
				require.Len(t, cluster, 12)
				congruence := cluster[0] % k
				for _, row := range cluster {
					assert.Equal(t, congruence, row%k)
				}
			}
		})
	}
}

func TestCreateDendrogramSingleRow(t *testing.T) {
	data := catset.NewMatrix([][]int{{1, 2, 3}})
	rng := rand.New(rand.NewSource(1))

	dendro, err := catclustering.CreateDendrogram(data, rng)
	require.NoError(t, err)

	v := dendro.Variant()
	assert.True(t, v.IsLeaf)
	assert.Equal(t, 0, v.Row)

	assert.Equal(t, [][]int{{0}}, dendro.FindClusters(1))
}

func TestCreateDendrogramIdenticalRows(t *testing.T) {
	rows := make([][]int, 500)
	for i := range rows {
		rows[i] = []int{1, 1, 1}
	}
	data := catset.NewMatrix(rows)
	rng := rand.New(rand.NewSource(1))

	dendro, err := catclustering.CreateDendrogram(data, rng)
	require.NoError(t, err)
	require.True(t, dendro.Covers(500))

	clusters := dendro.FindClusters(500)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 500)

	// Every row is identical, so every merge distance equals the
	// self-union distance spec.md §8 scenario 4 allows in place of an
	// exact zero: catset.RowSet's per-column union never grows beyond the
	// shared category, so it stays constant at len(rows[0]) across every
	// merge in the run.
	selfUnionDistance := data.MakeSummary(0).Distance(data.MakeSummary(0))
	dendro.Walk(func(v catclustering.Variant) {
		if !v.IsLeaf {
			assert.Equal(t, selfUnionDistance, v.Distance)
		}
	})
}

func TestCreateDendrogramCutAtOrAboveRowCountReturnsOneCluster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := catset.GenerateRandomGroups(3, 20, 3, 5, rng)
	data := catset.NewMatrix(rows)

	dendro, err := catclustering.CreateDendrogram(data, rng)
	require.NoError(t, err)

	clusters := dendro.FindClusters(data.RowCount())
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], data.RowCount())
}

func TestCreateDendrogramIsDeterministicGivenTheSameSeed(t *testing.T) {
	rows := catset.GenerateRandomGroups(3, 15, 4, 5, rand.New(rand.NewSource(99)))
	data := catset.NewMatrix(rows)

	firstDendro, err := catclustering.CreateDendrogram(data, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	secondDendro, err := catclustering.CreateDendrogram(data, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, firstDendro.FindClusters(5), secondDendro.FindClusters(5))

	var firstDistances, secondDistances []float64
	firstDendro.Walk(func(v catclustering.Variant) {
		if !v.IsLeaf {
			firstDistances = append(firstDistances, v.Distance)
		}
	})
	secondDendro.Walk(func(v catclustering.Variant) {
		if !v.IsLeaf {
			secondDistances = append(secondDistances, v.Distance)
		}
	})
	assert.Equal(t, firstDistances, secondDistances)
}

func TestCreateDendrogramRejectsEmptyData(t *testing.T) {
	_, err := catclustering.CreateDendrogram(catset.NewMatrix(nil), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

// TestCreateDendrogramMergeDistancesAreNonIncreasingRootToLeaf checks
// spec.md §8 / SPEC_FULL.md §10 testable property 3: along any root-to-leaf
// path, merge_distance values are non-increasing, since a path descends
// from the last merge committed to earlier ones. This relies on
// catclustering.Summary.Distance's monotone-union precondition actually
// holding for the concrete Summary under test -- see catset.RowSet's own
// documentation for why its union-size distance satisfies it.
func TestCreateDendrogramMergeDistancesAreNonIncreasingRootToLeaf(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := catset.GenerateRandomGroups(2, 100, 3, 5, rng)
	data := catset.NewMatrix(rows)

	dendro, err := catclustering.CreateDendrogram(data, rng)
	require.NoError(t, err)

	assertNonIncreasingRootToLeaf(t, dendro)
}

// assertNonIncreasingRootToLeaf walks dendro with an explicit stack,
// carrying each node's nearest ancestor merge_distance along, and fails if
// any node's own distance exceeds it.
func assertNonIncreasingRootToLeaf(t *testing.T, dendro *catclustering.Dendrogram) {
	t.Helper()

	type frame struct {
		d        *catclustering.Dendrogram
		ancestor float64
	}

	v := dendro.Variant()
	if v.IsLeaf {
		return
	}
	stack := []frame{{dendro, v.Distance}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := f.d.Variant()
		if v.IsLeaf {
			continue
		}
		require.LessOrEqual(t, v.Distance, f.ancestor, "merge distance increased from an ancestor to a descendant")
		stack = append(stack, frame{v.Left, v.Distance}, frame{v.Right, v.Distance})
	}
}
