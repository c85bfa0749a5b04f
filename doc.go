// Package catclustering implements an approximate hierarchical
// agglomerative clustering (HAC) engine with complete-linkage semantics,
// specialized for rows whose "distance" is defined over a caller-supplied
// cluster summary rather than a dense numeric vector.
//
// A dendrogram over N rows is built in sub-quadratic time and memory by
// seeding a sparse candidate-neighbor graph with randomized multi-column
// sorts and then driving merges from a lazy min-heap
// that only recomputes a candidate's distance once one of its endpoints has
// changed size since the candidate was pushed (see CreateDendrogram).
//
// The package never performs I/O and owns no logger, RNG, or configuration
// file; callers supply a DataAccessor, a Summary factory, and a RandSource,
// and get back an opaque Dendrogram that can be cut into row-to-cluster
// assignments with AssignRowsToClusters or FindClusters.
package catclustering
