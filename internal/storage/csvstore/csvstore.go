package csvstore

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AbrarS242/csv-analyser/internal/storage"
	"github.com/AbrarS242/csv-analyser/internal/table"
)

var (
	ErrLabelTooLong  = errors.New("a csv heading is too long")
	ErrMissingValues = errors.New("missing values in input")
	ErrTooManyValues = errors.New("too many values in input")
	ErrTooManyRows   = errors.New("too many rows in input")
	ErrTooManyCols   = errors.New("too many columns in input")
)

type csvLoader struct {
	limits storage.Limits
	log    *logrus.Entry
}

// New creates a loader for comma separated files whose first line holds
// the column headers and every further line one numeric value per column.
func New(limits storage.Limits, log *logrus.Entry) storage.Loader {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &csvLoader{
		limits: limits,
		log:    log,
	}
}

func (l *csvLoader) Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open CSV file")
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil {
		l.log.WithFields(logrus.Fields{
			"path": path,
			"size": humanize.Bytes(uint64(fi.Size())),
		}).Debug("loading")
	}

	tbl, err := Read(f, l.limits)
	if err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"path": path,
		"rows": tbl.Rows(),
		"cols": tbl.Cols(),
	}).Debug("loaded")

	return tbl, nil
}

// Read parses CSV data from r within the given limits.
func Read(r io.Reader, limits storage.Limits) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	labels, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("no csv headings found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read headings")
	}

	if len(labels) > limits.MaxCols {
		return nil, errors.Wrapf(ErrTooManyCols, "%d columns, limit is %d",
			len(labels), limits.MaxCols)
	}
	for _, label := range labels {
		if len(label) > limits.MaxLabelLength {
			return nil, errors.Wrapf(ErrLabelTooLong, "%q", label)
		}
	}

	var rows []table.Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read data")
		}

		if len(rows) == limits.MaxRows {
			return nil, errors.Wrapf(ErrTooManyRows, "limit is %d", limits.MaxRows)
		}

		row, err := parseRow(rec, len(labels))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrMissingValues
	}

	return table.New(labels, rows)
}

func parseRow(rec []string, ncols int) (table.Row, error) {
	if len(rec) < ncols {
		return nil, ErrMissingValues
	}
	if len(rec) > ncols {
		return nil, ErrTooManyValues
	}

	row := make(table.Row, ncols)
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", i)
		}
		row[i] = v
	}
	return row, nil
}
