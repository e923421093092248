package table

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the tolerance below which two values are treated as equal.
const Epsilon = 1e-6

// Row represents one record of the table: one value per column.
type Row []float64

// Table holds the column labels and the row-major value matrix loaded
// from a data file. The number of rows and columns never changes after
// construction; only the row order can be permuted with Swap.
type Table struct {
	labels []string
	rows   []Row
}

// New creates a table from labels and rows. Every row must carry exactly
// one value per label and at least one row must be present.
func New(labels []string, rows []Row) (*Table, error) {
	if len(labels) == 0 {
		return nil, errors.New("table has no columns")
	}
	if len(rows) == 0 {
		return nil, errors.New("table has no rows")
	}

	for i, r := range rows {
		if len(r) != len(labels) {
			return nil, errors.Errorf("row %d: expected %d values, got %d",
				i, len(labels), len(r))
		}
	}

	t := &Table{
		labels: make([]string, len(labels)),
		rows:   make([]Row, len(rows)),
	}
	copy(t.labels, labels)

	// store a copy so callers cannot reach into the matrix
	for i, r := range rows {
		rowCopy := make(Row, len(r))
		copy(rowCopy, r)
		t.rows[i] = rowCopy
	}

	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	return len(t.labels)
}

// ValidColumn reports whether c is a usable column index.
func (t *Table) ValidColumn(c int) bool {
	return c >= 0 && c < len(t.labels)
}

// Label returns the header of column c.
func (t *Table) Label(c int) string {
	return t.labels[c]
}

// Labels returns a copy of all column headers.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Value returns the cell at row r, column c.
func (t *Table) Value(r, c int) float64 {
	return t.rows[r][c]
}

// Row returns a copy of row r.
func (t *Table) Row(r int) Row {
	out := make(Row, len(t.rows[r]))
	copy(out, t.rows[r])
	return out
}

// Column returns a copy of the values of column c in row order.
func (t *Table) Column(c int) []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[c]
	}
	return out
}

// Swap exchanges rows i and j.
func (t *Table) Swap(i, j int) {
	t.rows[i], t.rows[j] = t.rows[j], t.rows[i]
}

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
