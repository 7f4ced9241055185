// Package grid loads heterogeneous tabular inputs (CSV files and Excel
// workbooks) into an in-memory grid of string cells. No assumption is made
// about header position or column meaning; that is the extraction engine's
// job.
package grid

import "strings"

// Grid is a 2-D grid of cells read from one sheet or CSV file. Rows may have
// differing lengths; missing cells read as blank. A Grid is immutable once
// loaded.
type Grid struct {
	rows [][]string
}

// New builds a Grid from raw rows. Cell values are kept as-is.
func New(rows [][]string) *Grid {
	return &Grid{rows: rows}
}

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int {
	return len(g.rows)
}

// NumCols returns the widest row length in the grid.
func (g *Grid) NumCols() int {
	max := 0
	for _, row := range g.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Row returns the raw cells of row i, or nil when out of range.
func (g *Grid) Row(i int) []string {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Cell returns the trimmed value at (row, col). Out-of-range positions read
// as blank, which lets callers probe ragged rows without bounds bookkeeping.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RowText lower-cases and joins all non-blank cells of row i with spaces.
// Used by header heuristics that match on concatenated row text.
func (g *Grid) RowText(i int) string {
	var parts []string
	for _, cell := range g.Row(i) {
		v := strings.TrimSpace(cell)
		if v != "" {
			parts = append(parts, strings.ToLower(v))
		}
	}
	return strings.Join(parts, " ")
}

// RowEmpty reports whether every cell of row i is blank.
func (g *Grid) RowEmpty(i int) bool {
	for _, cell := range g.Row(i) {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
