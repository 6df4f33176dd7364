package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rewav/internal/batch"
	"rewav/internal/codec"
)

// printFailureSummary renders a table of failed conversions. Individual
// failures were already reported line by line as they happened; the table is
// a readable recap for interactive use, so it is skipped when stdout is not
// a terminal.
func printFailureSummary(cmd *cobra.Command, outcomes []batch.Outcome) {
	if !stdoutIsTerminal() {
		return
	}

	var rows [][]string
	for _, outcome := range outcomes {
		if outcome.OK() {
			continue
		}
		detail := outcome.Err.Error()
		if failure, ok := codec.AsFailure(outcome.Err); ok {
			detail = failure.Describe()
		}
		rows = append(rows, []string{outcome.FailedPath, outcome.Kind(), detail})
	}
	if len(rows) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Kind", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}
