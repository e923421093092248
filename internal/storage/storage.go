package storage

import "github.com/AbrarS242/csv-analyser/internal/table"

// Limits bounds the size of a table accepted by a Loader.
type Limits struct {
	MaxRows        int
	MaxCols        int
	MaxLabelLength int
}

// DefaultLimits returns the standard bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxRows:        999,
		MaxCols:        20,
		MaxLabelLength: 20,
	}
}

// Loader produces a fully validated table from a named source.
//
// Implementations reject malformed input instead of returning a partial
// table: every row of a returned table has one value per column.
type Loader interface {
	Load(path string) (*table.Table, error)
}
