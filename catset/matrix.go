package catset

import "github.com/rom1mouret/catclustering"

// Matrix is a catclustering.DataAccessor over an in-memory, fixed-width
// table of category ids: Matrix.rows[r][c] is the category value of row r
// in column c. All rows must have the same length.
type Matrix struct {
	rows [][]int
}

// NewMatrix wraps rows as a DataAccessor. rows is not copied; callers must
// not mutate it while a CreateDendrogram run is in progress.
func NewMatrix(rows [][]int) *Matrix {
	return &Matrix{rows: rows}
}

// RowCount implements catclustering.DataAccessor.
func (m *Matrix) RowCount() int { return len(m.rows) }

// ColumnCount implements catclustering.DataAccessor.
func (m *Matrix) ColumnCount() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// ValueAt implements catclustering.DataAccessor.
func (m *Matrix) ValueAt(row, col int) float64 {
	return float64(m.rows[row][col])
}

// MakeSummary implements catclustering.DataAccessor, producing a *RowSet
// seeded with row's category values.
func (m *Matrix) MakeSummary(row int) catclustering.Summary {
	return NewSingleton(m.rows[row])
}
