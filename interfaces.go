package catclustering

// Summary is a cluster's payload: whatever a caller uses to represent the
// categorical footprint of the rows that have been folded into it so far.
// All summaries handed to a single CreateDendrogram run are produced by the
// same DataAccessor.MakeSummary factory, so a concrete Summary is free to
// assume every other Summary it is asked to compare or extend against is
// its own concrete type; a mismatch is a programming error, not a runtime
// condition a Summary needs to recover from.
type Summary interface {
	// Size reports a monotone non-decreasing measure of the summary's
	// footprint (e.g. the number of distinct categories it has absorbed).
	// It must never decrease across the summary's lifetime.
	Size() int

	// Distance reports how far this summary is from other. It may be
	// negative and need not satisfy the triangle inequality, but it MUST
	// be monotone non-decreasing under Extend: once either endpoint of a
	// pair grows via Extend, the distance between them can only go up.
	// CreateDendrogram relies on this to refresh-on-pop instead of
	// eagerly invalidating heap entries.
	Distance(other Summary) float64

	// Extend folds other into the receiver in place. It must be
	// idempotent when other is already a subset of the receiver, and the
	// resulting Size/Distance behavior must not depend on call order.
	Extend(other Summary)

	// Clear releases the summary's internal storage. The summary is
	// never queried or extended again afterward.
	Clear()
}

// DataAccessor is the read-only view over the rows being clustered. Only
// ValueAt is used by the neighbor seeder; everything else about a row's
// distance and merge behavior is delegated to the Summary it produces.
type DataAccessor interface {
	// RowCount is the number of rows to cluster.
	RowCount() int
	// ColumnCount is the number of columns consulted during neighbor
	// seeding.
	ColumnCount() int
	// ValueAt returns a sortable scalar for row/col, used only to build
	// the lexicographic sort keys the seeder shuffles between rounds.
	ValueAt(row, col int) float64
	// MakeSummary builds the initial, single-row Summary for row. Every
	// call in a given run must return the same concrete Summary type.
	MakeSummary(row int) Summary
}

// RandSource is the minimal uniform-integer source the neighbor seeder
// needs to shuffle column order. *math/rand.Rand satisfies this interface
// structurally; see the randsrc subpackage for adapters, including one for
// math/rand/v2.
type RandSource interface {
	// Intn returns a uniform pseudo-random int in [0, n). It panics if
	// n <= 0, matching math/rand.Rand.Intn.
	Intn(n int) int
}
