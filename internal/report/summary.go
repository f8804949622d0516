package report

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/hsranjan/matburn/burn"
)

// RenderSummary prints the per-worker result table after the join.
func RenderSummary(rep *burn.Report) {
	fmt.Println()
	colorPrintLn(Bold, "WORKER SUMMARY")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Worker", "Kind", "Device", "Multiplies", "Runtime", "Status")

	for _, w := range rep.Workers {
		_ = table.Append(
			fmt.Sprintf("%d", w.ID),
			w.Kind.String(),
			w.Device,
			FormatCount(w.Iterations),
			w.Runtime().Round(time.Millisecond).String(),
			statusString(w),
		)
	}

	if err := table.Render(); err != nil {
		colorPrintLn(Red, "error rendering summary table")
	}

	if failed := rep.Failed(); len(failed) > 0 {
		fmt.Println()
		colorPrintLn(Red, "failed workers:")
		for _, w := range failed {
			colorPrintf(Red, "  • worker %d: %v\n", w.ID, w.Err)
		}
	}
}

func statusString(w burn.WorkerResult) string {
	if w.Err != nil {
		return "failed"
	}
	return "ok"
}
