package command

import (
	"math"
	"strconv"
	"strings"
)

// Parse turns a single input line into a Command for a table with ncols
// columns.
//
// The first byte of the line is the operation. Every maximal run of ASCII
// digits in the remainder is a column index; anything else separates
// numbers and is otherwise ignored. With no indices the command applies to
// all columns in index order. If any index is out of range the command is
// turned into OpNothing and one RangeError per offending index is returned.
func Parse(line string, ncols int) (Command, []error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Command{Op: OpNothing}, nil
	}

	cmd := Command{Op: Op(line[0])}
	cmd.Columns = splitDigitRuns(line[1:])

	if len(cmd.Columns) == 0 {
		cmd.Columns = allColumns(ncols)
		return cmd, nil
	}

	var errs []error
	for _, c := range cmd.Columns {
		if c < 0 || c >= ncols {
			errs = append(errs, &RangeError{Column: c, Cols: ncols})
		}
	}
	if len(errs) > 0 {
		cmd.Op = OpNothing
	}

	return cmd, errs
}

// splitDigitRuns returns the integer value of each run of digits in s.
func splitDigitRuns(s string) []int {
	var out []int
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		n, err := strconv.Atoi(s[start:end])
		if err != nil {
			// only overflow can fail here; such a column never exists
			n = math.MaxInt
		}
		out = append(out, n)
		start = -1
	}

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))

	return out
}

func allColumns(ncols int) []int {
	out := make([]int, ncols)
	for i := range out {
		out[i] = i
	}
	return out
}
