package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"coursetimetabler/internal/evaluator"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// PrintSummary writes a final run report to w: the cost breakdown and a
// tab-aligned activity table. Grounded on the teacher's
// printSolutionReport/printLoadStats staged stdout reports in
// cmd/api/main.go, rendered here with text/tabwriter instead of manual
// Printf column padding.
func PrintSummary(w io.Writer, sol *solution.Solution, result *preprocessor.Result) {
	breakdown := evaluator.Evaluate(sol, result.Conflicts)

	fmt.Fprintln(w, "================================================================================")
	fmt.Fprintln(w, "FINAL TIMETABLE REPORT")
	fmt.Fprintln(w, "================================================================================")
	fmt.Fprintf(w, "Class groups:   %d\n", len(result.ClassGroups))
	fmt.Fprintf(w, "Class sessions: %d\n", len(result.ClassSessions))
	fmt.Fprintf(w, "Total cost:     %d\n", breakdown.Total())
	fmt.Fprintf(w, "  HC0 class conflicts:     %d\n", breakdown.HC0)
	fmt.Fprintf(w, "  HC1 teacher conflicts:   %d\n", breakdown.HC1)
	fmt.Fprintf(w, "  HC2 student conflicts:   %d\n", breakdown.HC2)
	fmt.Fprintf(w, "  SC0 unpreferred slots:   %d\n", breakdown.SC0)
	fmt.Fprintf(w, "  SC1 discouraged slots:   %d\n", breakdown.SC1)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTIMESLOT\tCOURSE\tGROUP\tROOM\tTEACHER\tSTUDENTS")
	for _, row := range BuildDataset(sol, result).Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row["Day"], row["Timeslot"], row["Course"], row["Group"], row["Room"], row["Teacher"], row["Students"])
	}
	tw.Flush()
}
