// Command timetabler loads a university catalogue, assigns teachers,
// searches for a low-cost timetable, and writes the result as a report.
// Grounded on the teacher's cmd/api/main.go staged pipeline (load, build
// conflict graph, optimize, export), restructured as a cobra CLI with
// `run` and `validate` subcommands instead of one linear main().
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timetabler",
		Short: "University course timetable scheduler",
	}
	root.PersistentFlags().String("data-dir", "./data", "directory holding the catalogue JSON files")
	root.PersistentFlags().String("config", "./config/app.config", "path to the app.config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())
	return root
}

// exitCodeFor maps an error kind to a distinct process exit code, so a
// caller scripting this CLI can distinguish a bad config from a bad
// dataset from an infeasible catalogue without parsing stderr text.
func exitCodeFor(err error) int {
	if coded, ok := err.(errWithCode); ok {
		return coded.Code()
	}
	return 1
}

type errWithCode interface {
	error
	Code() int
}
