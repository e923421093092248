package engine

import (
	"fmt"
	"strings"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// renderIndex lists the selected column numbers with their headers.
func renderIndex(sb *strings.Builder, tbl *table.Table, cols []int) {
	sb.WriteString("\n")
	for _, c := range cols {
		fmt.Fprintf(sb, "    column %2d: %s\n", c, tbl.Label(c))
	}
}
