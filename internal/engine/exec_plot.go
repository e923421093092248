package engine

import (
	"fmt"
	"strings"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// Band is one slice of the histogram range. Freq holds one count per
// selected column, in selection order, of values v with Lower <= v < Upper.
type Band struct {
	Lower float64
	Upper float64
	Freq  []int
}

// Histogram is the frequency distribution of the selected columns over a
// shared set of bands.
type Histogram struct {
	Columns []int

	// Degenerate is set when every selected value equals Value within
	// tolerance; no bands are computed in that case.
	Degenerate bool
	Value      float64

	Min   float64
	Max   float64
	Bands []Band
	Scale int
}

// BuildHistogram bins the selected columns into nbands equal-width bands
// spanning all of them, and picks the smallest scale that keeps every bar
// within maxBar glyphs.
func BuildHistogram(tbl *table.Table, cols []int, nbands, maxBar int) *Histogram {
	h := &Histogram{
		Columns: cols,
		Min:     tbl.Value(0, cols[0]),
		Max:     tbl.Value(0, cols[0]),
	}

	for _, c := range cols {
		values := tbl.Column(c)
		if m := columnMax(values); m > h.Max {
			h.Max = m
		}
		if m := columnMin(values); m < h.Min {
			h.Min = m
		}
	}

	if allEqual(tbl, cols) {
		h.Degenerate = true
		h.Value = tbl.Value(0, cols[0])
		return h
	}

	lower := h.Min - table.Epsilon
	width := ((h.Max + table.Epsilon) - lower) / float64(nbands)

	cur, next := lower, lower
	maxFreq := 0
	for i := 0; i < nbands; i++ {
		next += width
		band := Band{Lower: cur, Upper: next, Freq: make([]int, len(cols))}
		for j, c := range cols {
			band.Freq[j] = frequency(tbl, c, cur, next)
			if band.Freq[j] > maxFreq {
				maxFreq = band.Freq[j]
			}
		}
		h.Bands = append(h.Bands, band)
		cur += width
	}

	h.Scale = findScale(maxFreq, maxBar)
	return h
}

// allEqual reports whether every selected value is within tolerance of
// the first selected value.
func allEqual(tbl *table.Table, cols []int) bool {
	check := tbl.Value(0, cols[0])
	for _, c := range cols {
		for r := 0; r < tbl.Rows(); r++ {
			if !table.Equal(tbl.Value(r, c), check) {
				return false
			}
		}
	}
	return true
}

func frequency(tbl *table.Table, col int, lower, upper float64) int {
	n := 0
	for r := 0; r < tbl.Rows(); r++ {
		v := tbl.Value(r, col)
		if v >= lower && v < upper {
			n++
		}
	}
	return n
}

// findScale grows the scale one step at a time until the integer quotient
// maxFreq/scale fits in maxBar.
func findScale(maxFreq, maxBar int) int {
	scale := 1
	for maxFreq/scale > maxBar {
		scale++
	}
	return scale
}

// barLength is ceil(freq/scale).
func barLength(freq, scale int) int {
	return (freq + scale - 1) / scale
}

func renderHistogram(sb *strings.Builder, h *Histogram) {
	if h.Degenerate {
		fmt.Fprintf(sb, "\nall selected elements are %.1f\n", h.Value)
		return
	}

	fmt.Fprintf(sb, "\n    %7.1f +", h.Bands[0].Lower)
	for _, band := range h.Bands {
		for j, c := range h.Columns {
			fmt.Fprintf(sb, "\n%11d |", c)
			sb.WriteString(strings.Repeat("]", barLength(band.Freq[j], h.Scale)))
		}
		fmt.Fprintf(sb, "\n    %7.1f +", band.Upper)
	}
	fmt.Fprintf(sb, "\n    scale = %d\n", h.Scale)
}
