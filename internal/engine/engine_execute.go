package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AbrarS242/csv-analyser/internal/command"
)

// Execute runs one parsed command. Column indices are assumed to have been
// validated by the command parser.
func (e *Engine) Execute(cmd command.Command) error {
	e.log.WithFields(logrus.Fields{
		"op":      string(cmd.Op),
		"columns": cmd.Columns,
	}).Debug("execute")

	var sb strings.Builder

	switch cmd.Op {
	case command.OpNothing:
		return nil

	case command.OpIndex:
		renderIndex(&sb, e.tbl, cmd.Columns)

	case command.OpAnalyze:
		renderAnalysis(&sb, Analyze(e.tbl, cmd.Columns))

	case command.OpDisplay:
		renderDisplay(&sb, e.tbl, cmd.Columns, e.opts.CellWidth)

	case command.OpSort:
		SortRows(e.tbl, cmd.Columns)
		renderSortKeys(&sb, e.tbl, cmd.Columns)
		renderDisplay(&sb, e.tbl, cmd.Columns, e.opts.CellWidth)

	case command.OpPlot:
		h := BuildHistogram(e.tbl, cmd.Columns, e.opts.Bands, e.opts.MaxBarLength)
		renderHistogram(&sb, h)

	default:
		fmt.Fprintf(&sb, "command '%c' is not recognized or not implemented yet\n", cmd.Op)
	}

	if _, err := io.WriteString(e.out, sb.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
