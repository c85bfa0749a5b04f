// The catbench command times CreateDendrogram across a range of row
// counts, the way original_source/benches/benchmarks.rs timed
// catclustering::create_dendrogram at 10k/100k/1M/10M rows over a random
// 5-column matrix using criterion. catclustering's specification places
// benchmarking outside the core's scope as an external collaborator, so
// this lives in its own cmd/ binary rather than as a testing.B benchmark.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/rom1mouret/catclustering"
	"github.com/rom1mouret/catclustering/catset"
)

func main() {
	var (
		columns        int
		initIterations int
		seed           int64
		sizesFlag      string
	)
	flag.IntVar(&columns, "columns", 5, "number of columns in the synthetic matrix")
	flag.IntVar(&initIterations, "init-iterations", 1, "neighbor-seeding rounds")
	flag.Int64Var(&seed, "seed", 1, "RNG seed")
	flag.StringVar(&sizesFlag, "sizes", "1000,10000,100000", "comma-separated row counts to benchmark")
	flag.Parse()

	sizes, err := parseSizes(sizesFlag)
	if err != nil {
		log.Fatal(err)
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	fmt.Printf("%12s %10s %14s %10s\n", "rows", "columns", "elapsed", "leaves")
	for _, n := range sizes {
		rng := rand.New(rand.NewSource(seed))
		matrix := catset.NewMatrix(catset.GenerateRandomGroups(1, n, columns, 5, rng))

		start := time.Now()
		dendro, err := catclustering.CreateDendrogram(matrix, rng, catclustering.WithInitIterations(initIterations))
		if err != nil {
			log.Fatal(err)
		}
		elapsed := time.Since(start)

		fmt.Printf("%12d %10d %14s %10d\n", n, columns, elapsed, dendro.LeafCount())
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			var n int
			if _, err := fmt.Sscanf(s[start:i], "%d", &n); err != nil {
				return nil, fmt.Errorf("catbench: invalid size %q: %w", s[start:i], err)
			}
			sizes = append(sizes, n)
			start = i + 1
		}
	}
	return sizes, nil
}
