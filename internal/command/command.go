package command

import "fmt"

// Op identifies what a command does.
type Op byte

const (
	OpNothing Op = '-'
	OpIndex   Op = 'i'
	OpAnalyze Op = 'a'
	OpDisplay Op = 'd'
	OpSort    Op = 's'
	OpPlot    Op = 'p'
)

// Command is one parsed input line: an operation plus the columns it
// applies to, in the order they were typed.
type Command struct {
	Op      Op
	Columns []int
}

// RangeError reports a column index that does not exist in the table.
type RangeError struct {
	Column int
	Cols   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d is not between 0 and %d", e.Column, e.Cols)
}
