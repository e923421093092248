package engine

import (
	"strings"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// SortRows reorders the table rows in place using keys as primary,
// secondary, ... sort columns. Values are compared exactly and rows that
// tie on every key keep their relative order.
func SortRows(tbl *table.Table, keys []int) {
	for i := 1; i < tbl.Rows(); i++ {
		for j := i; j > 0 && rowLess(tbl, keys, j, j-1); j-- {
			tbl.Swap(j, j-1)
		}
	}
}

// rowLess reports whether row a orders strictly before row b.
func rowLess(tbl *table.Table, keys []int, a, b int) bool {
	for _, k := range keys {
		va, vb := tbl.Value(a, k), tbl.Value(b, k)
		if va < vb {
			return true
		}
		if va > vb {
			return false
		}
	}
	return false
}

func renderSortKeys(sb *strings.Builder, tbl *table.Table, keys []int) {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = tbl.Label(k)
	}
	sb.WriteString("\n    sorted by: ")
	sb.WriteString(strings.Join(labels, ", "))
	sb.WriteString("\n")
}
