// Package config loads the application's typed, validated configuration
// from a KEY=VALUE file (./config/app.config by default). Every key listed
// in required is mandatory: a missing or mistyped key aggregates into one
// ConfigMissing error rather than silently falling back to a zero value —
// this is a one-shot batch job, not a server, so a silently-wrong semester
// number would produce a schedule nobody asked for.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config is the fully-typed application configuration, one field per key
// in the catalogue's Configuration table (see catalogue.Configuration,
// which this is copied into once loading succeeds).
type Config struct {
	Semester                   int
	NumUniqueDays              int
	DaysWithDoubleTimeslots    []int
	NumTimeslots               int
	MaxLectureCapacity         int
	MaxLabCapacity             int
	MaxAnnualTeacherLoad       float64
	MaxSemestralTeacherLoad    float64
	NumGenerations             int
	NumOffspringsPerGeneration int
	CrossoverRate              float64
	MutationRate               float64

	// TournamentSelectionMode and SimpleMoveRedrawMode are not part of the
	// required key set — they default when absent. See DESIGN.md for the
	// Open Question each one resolves.
	TournamentSelectionMode string
	SimpleMoveRedrawMode    string
}

// requiredKeys lists every configuration key the spec marks "all required".
var requiredKeys = []string{
	"semester",
	"num_unique_days",
	"days_with_double_timeslots",
	"num_timeslots",
	"max_lecture_capacity",
	"max_lab_capacity",
	"max_annual_teacher_load",
	"max_semestral_teacher_load",
	"num_generations",
	"num_offsprings_per_generation",
	"crossover_rate",
	"mutation_rate",
}

// MissingError aggregates every required key that failed to load, so an
// operator fixes a misconfigured app.config in one pass instead of one key
// at a time.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("config: %d required key(s) missing or invalid: %s", len(e.Keys), strings.Join(e.Keys, ", "))
}

// Load reads path (a KEY=VALUE file) and returns the validated Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var missing []string
	requireInt := func(key string) int {
		if !v.IsSet(key) {
			missing = append(missing, key)
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			missing = append(missing, key)
			return 0
		}
		return n
	}
	requireFloat := func(key string) float64 {
		if !v.IsSet(key) {
			missing = append(missing, key)
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			missing = append(missing, key)
			return 0
		}
		return f
	}

	cfg := &Config{
		Semester:                   requireInt("semester"),
		NumUniqueDays:              requireInt("num_unique_days"),
		NumTimeslots:               requireInt("num_timeslots"),
		MaxLectureCapacity:         requireInt("max_lecture_capacity"),
		MaxLabCapacity:             requireInt("max_lab_capacity"),
		MaxAnnualTeacherLoad:       requireFloat("max_annual_teacher_load"),
		MaxSemestralTeacherLoad:    requireFloat("max_semestral_teacher_load"),
		NumGenerations:             requireInt("num_generations"),
		NumOffspringsPerGeneration: requireInt("num_offsprings_per_generation"),
		CrossoverRate:              requireFloat("crossover_rate"),
		MutationRate:               requireFloat("mutation_rate"),
	}

	if !v.IsSet("days_with_double_timeslots") {
		missing = append(missing, "days_with_double_timeslots")
	} else {
		days, err := parseIntList(v.GetString("days_with_double_timeslots"))
		if err != nil {
			missing = append(missing, "days_with_double_timeslots")
		} else {
			cfg.DaysWithDoubleTimeslots = days
		}
	}

	if len(missing) > 0 {
		return nil, &MissingError{Keys: missing}
	}

	cfg.TournamentSelectionMode = v.GetString("tournament_selection_mode")
	if cfg.TournamentSelectionMode == "" {
		cfg.TournamentSelectionMode = "max" // faithful to the source's inversion; see DESIGN.md
	}
	cfg.SimpleMoveRedrawMode = v.GetString("simple_move_redraw_mode")
	if cfg.SimpleMoveRedrawMode == "" {
		cfg.SimpleMoveRedrawMode = "or" // stop once either axis changes; "and" is the source's reading; see DESIGN.md
	}

	return cfg, nil
}

// parseIntList parses a comma-separated list of ints, e.g. "1,3,4".
func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid int %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// DaysWithDoubleTimeslotsSet returns the parsed day list as a set, the
// shape catalogue.Configuration and the solution model actually want.
func (c *Config) DaysWithDoubleTimeslotsSet() map[int]bool {
	set := make(map[int]bool, len(c.DaysWithDoubleTimeslots))
	for _, d := range c.DaysWithDoubleTimeslots {
		set[d] = true
	}
	return set
}
