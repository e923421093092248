package engine

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/AbrarS242/csv-analyser/internal/table"
)

// Options controls the layout of rendered output.
type Options struct {
	// CellWidth is the width of one display column.
	CellWidth int
	// Bands is the number of equal-width histogram bands.
	Bands int
	// MaxBarLength is the longest histogram bar, in glyphs.
	MaxBarLength int
}

// DefaultOptions returns the standard layout.
func DefaultOptions() Options {
	return Options{
		CellWidth:    8,
		Bands:        10,
		MaxBarLength: 60,
	}
}

// Engine executes commands against a single loaded table and writes the
// formatted result of each one to its output.
type Engine struct {
	tbl  *table.Table
	out  io.Writer
	opts Options
	log  *logrus.Entry
}

// New creates an Engine that owns tbl and writes to out.
func New(tbl *table.Table, out io.Writer, opts Options, log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		tbl:  tbl,
		out:  out,
		opts: opts,
		log:  log,
	}
}

// Table returns the table the engine operates on.
func (e *Engine) Table() *table.Table {
	return e.tbl
}
