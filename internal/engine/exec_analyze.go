package engine

import (
	"fmt"
	"strings"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// ColumnStats summarizes a single column.
type ColumnStats struct {
	Column int
	Label  string

	Max  float64
	Min  float64
	Mean float64

	// Sorted is true when the values never decrease from the first row to
	// the last. Median is only meaningful when HasMedian is set, which
	// happens exactly when the column is sorted.
	Sorted    bool
	Median    float64
	HasMedian bool
}

// Analyze computes statistics for each selected column, in selection order.
func Analyze(tbl *table.Table, cols []int) []ColumnStats {
	out := make([]ColumnStats, 0, len(cols))
	for _, c := range cols {
		out = append(out, analyzeColumn(tbl.Column(c), c, tbl.Label(c)))
	}
	return out
}

func analyzeColumn(values []float64, col int, label string) ColumnStats {
	st := ColumnStats{
		Column: col,
		Label:  label,
		Max:    columnMax(values),
		Min:    columnMin(values),
		Sorted: true,
	}

	total := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			st.Sorted = false
		}
		total += values[i]
	}
	st.Mean = total / float64(len(values))

	if st.Sorted {
		st.Median = median(values)
		st.HasMedian = true
	}

	return st
}

// median expects values to be sorted already.
func median(values []float64) float64 {
	n := len(values)
	if (n+1)%2 == 0 {
		return values[(n+1)/2-1]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

func columnMax(values []float64) float64 {
	m := values[0]
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func columnMin(values []float64) float64 {
	m := values[0]
	for _, v := range values {
		if v < m {
			m = v
		}
	}
	return m
}

func renderAnalysis(sb *strings.Builder, stats []ColumnStats) {
	for _, st := range stats {
		fmt.Fprintf(sb, "\n%17s", st.Label)
		if st.Sorted {
			sb.WriteString(" (sorted)")
		}
		fmt.Fprintf(sb, "\n    max = %7.1f\n", st.Max)
		fmt.Fprintf(sb, "    min = %7.1f\n", st.Min)
		fmt.Fprintf(sb, "    avg = %7.1f\n", st.Mean)
		if st.HasMedian {
			fmt.Fprintf(sb, "    med = %7.1f\n", st.Median)
		}
	}
}
