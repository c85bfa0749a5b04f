// The lj_cluster command line tool performs hierarchical clustering on
// LiveJournal friends lists, the way github.com/crowsonkb/cluster's own
// lj_cluster did -- the data fetching and CLI scaffolding below is carried
// over from that tool essentially unchanged; only the clustering step now
// goes through catclustering/termvec instead of a bespoke parallel
// nearest-pair loop.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"

	"github.com/rom1mouret/catclustering"
)

var ljGetURL = "http://www.livejournal.com/misc/fdata.bml?user="

var (
	inituser   string
	numColumns int
	maxCluster int
	seed       int64
)

func ljGet(user string, direction uint8) []string {
	body, err := ioutil.ReadFile(user)
	if err != nil {
		log.Printf("Retrieving data for: %s\n", user)
		resp, err := http.Get(ljGetURL + user)
		if err != nil {
			log.Fatal(err)
		}
		body, _ = ioutil.ReadAll(resp.Body)
		if err = ioutil.WriteFile(user, body, 0644); err != nil {
			log.Fatal(err)
		}
	}
	result := make([]string, 0)
	lines := strings.Split(string(body), "\n")
	for _, line := range lines {
		if len(line) > 2 && line[0] == direction {
			result = append(result, line[2:])
		}
	}
	return result
}

func init() {
	flag.StringVar(&inituser, "user", "", "the user whose friends data we will cluster")
	flag.IntVar(&numColumns, "columns", 8, "number of seeding columns per row (see catclustering's neighbor seeder)")
	flag.IntVar(&maxCluster, "max-cluster-size", 12, "maximum size of a reported cluster")
	flag.Int64Var(&seed, "seed", 1, "RNG seed; fixed by default so runs are repeatable")
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
}

func main() {
	if inituser == "" {
		flag.Usage()
		os.Exit(1)
	}

	if os.Chdir("fdata") != nil {
		if err := os.Mkdir("fdata", 0755); err != nil {
			log.Fatal(err)
		}
		if err := os.Chdir("fdata"); err != nil {
			log.Fatal(err)
		}
	}

	fdata := ljGet(inituser, '>')
	names := make([]string, 0)
	friendLists := make([][]string, 0)

	for _, user := range fdata {
		if user != inituser {
			names = append(names, user)
			friendLists = append(friendLists, ljGet(user, '<'))
		}
	}
	if len(friendLists) == 0 {
		log.Fatalf("no friends data found for %s", inituser)
	}

	log.Println("Clustering...")
	data := newFriendData(friendLists, numColumns)
	rng := rand.New(rand.NewSource(seed))

	dendro, err := catclustering.CreateDendrogram(data, rng)
	if err != nil {
		log.Fatal(err)
	}
	if !dendro.Covers(data.RowCount()) {
		log.Printf("warning: dendrogram covers %d of %d users; try a higher init-iterations count",
			dendro.LeafCount(), data.RowCount())
	}
	log.Println("Done.")

	for _, group := range dendro.FindClusters(maxCluster) {
		if len(group) < 2 {
			continue
		}
		fmt.Print("[")
		for i, idx := range group {
			fmt.Print(names[idx])
			if i != len(group)-1 {
				fmt.Print(" ")
			}
		}
		fmt.Print("]\n\n")
	}
}
