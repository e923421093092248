package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbrarS242/csv-analyser/internal/storage"
	"github.com/AbrarS242/csv-analyser/internal/table"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	data := "year,month,rain\r\n2019,1,12.5\r\n2019,2,0\r\n2020,1,-3\r\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	tbl, err := New(storage.DefaultLimits(), nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "month", "rain"}, tbl.Labels())
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, table.Row{2019, 1, 12.5}, tbl.Row(0))
	assert.Equal(t, table.Row{2020, 1, -3}, tbl.Row(2))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New(storage.DefaultLimits(), nil).Load(
		filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open CSV file")
}

func TestRead_Errors(t *testing.T) {
	limits := storage.Limits{MaxRows: 2, MaxCols: 3, MaxLabelLength: 5}

	cases := []struct {
		name string
		data string
		want error
	}{
		{"short row", "a,b\n1,2\n3\n", ErrMissingValues},
		{"long row", "a,b\n1,2,3\n", ErrTooManyValues},
		{"no data", "a,b\n", ErrMissingValues},
		{"long label", "a,toolong\n1,2\n", ErrLabelTooLong},
		{"too many rows", "a\n1\n2\n3\n", ErrTooManyRows},
		{"too many cols", "a,b,c,d\n1,2,3,4\n", ErrTooManyCols},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.data), limits)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRead_NonNumeric(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,x\n"), storage.DefaultLimits())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "column 1")
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""), storage.DefaultLimits())
	require.Error(t, err)
}

func TestRead_TrimsNumbers(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n 1.5 , 2\n"), storage.DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, table.Row{1.5, 2}, tbl.Row(0))
}
