package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursetimetabler/internal/config"
	"coursetimetabler/internal/loader"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/telemetry"
)

// newValidateCmd loads the config and catalogue and runs preprocessing
// without ever reaching teacher assignment or the search, so a bad
// app.config or a bad data directory is caught in seconds instead of after
// a full generational run.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration and data directory without searching for a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			configPath, _ := cmd.Flags().GetString("config")

			log, _, err := telemetry.New(telemetry.Options{Format: "console", Development: true})
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(configPath)
			if err != nil {
				return classify(err)
			}
			log.Sugar().Infow("config loaded", "semester", cfg.Semester)

			cat, err := loader.Load(dataDir, cfg)
			if err != nil {
				return classify(err)
			}
			stats := cat.Stats()
			log.Sugar().Infow("catalogue loaded",
				"divisions", stats.Divisions, "courses", stats.Courses,
				"rooms", stats.Rooms, "teachers", stats.Teachers,
				"student_groups", stats.StudentGroups)

			if _, err := preprocessor.Run(cat); err != nil {
				return classify(err)
			}

			fmt.Println("OK: configuration and dataset are valid and schedulable.")
			return nil
		},
	}
}
