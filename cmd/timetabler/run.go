package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coursetimetabler/internal/config"
	"coursetimetabler/internal/evolve"
	"coursetimetabler/internal/loader"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/report"
	"coursetimetabler/internal/solution"
	"coursetimetabler/internal/teacherassign"
	"coursetimetabler/internal/telemetry"
)

// newRunCmd wires config -> loader -> preprocessor -> teacherassign ->
// evolve -> report, the dependency-ordered pipeline SPEC_FULL.md lays out.
// Grounded on the teacher's cmd/api/main.go, whose staged "[PASO N]"
// fmt.Println progress lines become the zap.Logger.Info lines below.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search for a low-cost timetable and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			configPath, _ := cmd.Flags().GetString("config")
			out, _ := cmd.Flags().GetString("out")
			maxDuration, _ := cmd.Flags().GetDuration("max-duration")
			seed, _ := cmd.Flags().GetInt64("seed")

			log, runID, err := telemetry.New(telemetry.Options{Format: "console", Development: true})
			if err != nil {
				return err
			}
			defer log.Sync()
			sugar := log.Sugar()
			sugar.Infow("starting run", "run_id", runID)

			cfg, err := config.Load(configPath)
			if err != nil {
				return classify(err)
			}
			sugar.Info("[1/6] configuration loaded")

			cat, err := loader.Load(dataDir, cfg)
			if err != nil {
				return classify(err)
			}
			stats := cat.Stats()
			sugar.Infow("[2/6] catalogue loaded", "courses", stats.Courses, "rooms", stats.Rooms, "teachers", stats.Teachers)

			result, err := preprocessor.Run(cat)
			if err != nil {
				return classify(err)
			}
			sugar.Infow("[3/6] preprocessed", "class_groups", len(result.ClassGroups), "class_sessions", len(result.ClassSessions))

			rng := rand.New(rand.NewSource(seed))

			teacherAssignment, warnings := teacherassign.Assign(cat, result.ClassGroups, rng)
			for _, w := range warnings {
				sugar.Warnw("teacher assignment warning", "class_group", w.ClassGroup, "course", w.Course, "reason", w.Reason)
			}
			sugar.Infow("[4/6] teachers assigned", "warnings", len(warnings))

			var deadline time.Time
			if maxDuration > 0 {
				deadline = time.Now().Add(maxDuration)
			}
			shouldStop := func() bool {
				return !deadline.IsZero() && time.Now().After(deadline)
			}

			best := evolve.Run(cat, result, teacherAssignment, rng, func(generation, bestCost int) {
				if generation%10 == 0 {
					sugar.Infow("[5/6] search progress", "generation", generation, "best_cost", bestCost)
				}
			}, shouldStop)
			sugar.Info("[6/6] search complete")

			if err := writeReport(best, result, out); err != nil {
				return err
			}
			report.PrintSummary(os.Stdout, best, result)
			return nil
		},
	}
	cmd.Flags().String("out", "./schedule.json", "output report path; extension (.json/.pdf) selects the format")
	cmd.Flags().Duration("max-duration", 0, "optional wall-clock budget for the search; 0 means run the full configured generation count")
	cmd.Flags().Int64("seed", 1, "seed for the deterministic RNG driving teacher assignment and the search")
	return cmd
}

func writeReport(best *solution.Solution, result *preprocessor.Result, out string) error {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".pdf":
		return report.WritePDF(best, result, out, "Course Timetable")
	default:
		return report.WriteJSON(best, result, out)
	}
}
