package engine

import (
	"fmt"
	"strings"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// Run is a maximal block of consecutive rows whose selected values are all
// within tolerance of the following row.
type Run struct {
	// Start is the index of the first row in the run.
	Start int
	Count int
}

// Runs groups the table rows into runs over the selected columns. Only
// adjacent rows are merged; the last row always closes the current run.
func Runs(tbl *table.Table, cols []int) []Run {
	var out []Run
	count := 1

	for i := 0; i < tbl.Rows(); i++ {
		if i < tbl.Rows()-1 && sameAsNext(tbl, cols, i) {
			count++
			continue
		}
		out = append(out, Run{Start: i - count + 1, Count: count})
		count = 1
	}

	return out
}

func sameAsNext(tbl *table.Table, cols []int, row int) bool {
	for _, c := range cols {
		if !table.Equal(tbl.Value(row, c), tbl.Value(row+1, c)) {
			return false
		}
	}
	return true
}

// renderDisplay writes a staircase of headers, the last selected column
// widest, followed by one line per run.
func renderDisplay(sb *strings.Builder, tbl *table.Table, cols []int, cellWidth int) {
	width := cellWidth * len(cols)
	for j := len(cols) - 1; j >= 0; j-- {
		fmt.Fprintf(sb, "\n%*s", width, tbl.Label(cols[j]))
		width -= cellWidth
	}
	sb.WriteString("\n")

	for _, run := range Runs(tbl, cols) {
		for _, c := range cols {
			fmt.Fprintf(sb, " %7.1f", tbl.Value(run.Start, c))
		}
		if run.Count == 1 {
			sb.WriteString("    ( 1 instance)\n")
		} else {
			fmt.Fprintf(sb, "    (%2d instances)\n", run.Count)
		}
	}
}
