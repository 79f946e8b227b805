// Package evolve searches for a low-cost solution.Solution via a
// steady-state genetic algorithm: tournament selection, crossover-or-clone,
// point mutation, and worst-individual replacement each generation.
// Grounded on smeggmann99-Arrango/core/solver/solver.go for the overall
// shape (seeded math/rand, population of Individuals, fitness-sorted
// reproduction) since the teacher repo itself has no GA — it searches via
// simulated annealing instead. The steady-state replacement and
// tournament-selection pieces below are this package's own generalization,
// since Arrango's truncation-selection loop doesn't carry across to a
// single-class-group-at-a-time mutation model.
package evolve

import (
	"math/rand"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// randomDayAndTimeslot draws a fresh (day, startingTimeslot) pair that
// fits a class-group of the given base span, honoring
// DaysWithDoubleTimeslots the same way every other placement draw in this
// package does.
func randomDayAndTimeslot(cfg *catalogue.Configuration, base int, rng *rand.Rand) (int, int) {
	day := rng.Intn(cfg.NumUniqueDays)
	limit := cfg.NumTimeslots
	if cfg.DaysWithDoubleTimeslots[day] {
		limit = cfg.NumTimeslots * 2
		base *= 2
	}
	maxStart := limit - base
	if maxStart < 0 {
		maxStart = 0
	}
	return day, rng.Intn(maxStart+1)
}

// RandomSolution builds one individual by drawing an independent, feasible
// (but not necessarily low-cost) day/startingTimeslot/room for every
// class-group — keeping the teacher assignment computed upstream fixed —
// via UpdateDayAndTimeslot, so a group that lands on a
// days_with_double_timeslots day is expanded to its doubled session count
// from the start. Grounded on Arrango's randomIndividual, generalized
// from a fixed 5-day/no-room model to the catalogue's configured day count
// and room requirements.
func RandomSolution(cat *catalogue.Catalogue, result *preprocessor.Result, teacherAssignment map[*preprocessor.ClassGroup]*catalogue.Teacher, rng *rand.Rand) *solution.Solution {
	cfg := cat.Config
	sol := solution.New(result)
	for _, group := range result.ClassGroups {
		day, startTs := randomDayAndTimeslot(cfg, group.Course.NumTimeslots, rng)
		_ = sol.UpdateDayAndTimeslot(group, day, startTs, cfg)
		_ = sol.ChangeClassRoom(group, pickRoom(cat, group.Course, group.NumStudents, rng))
		_ = sol.ChangeClassTeacher(group, teacherAssignment[group])
	}
	return sol
}

// pickRoom returns a uniformly random room in the catalogue that satisfies
// the course's room requirements and capacity, or nil if none qualify (the
// cost evaluator then simply never sees a room-based signal for that
// session; rooms are not part of any hard or soft constraint per §4.5).
func pickRoom(cat *catalogue.Catalogue, course *catalogue.Course, numStudents int, rng *rand.Rand) *catalogue.Room {
	var candidates []*catalogue.Room
	for _, r := range cat.Rooms {
		if r.Capacity < numStudents || !satisfiesRequirements(r, course) {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

func satisfiesRequirements(room *catalogue.Room, course *catalogue.Course) bool {
	for name := range course.RoomRequirements {
		if room.Features[name] == nil {
			return false
		}
	}
	return true
}

// Population is a fixed-size pool of candidate solutions, ordered only
// incidentally — callers scan it by cost whenever they need the current
// worst or best.
type Population struct {
	Individuals []*solution.Solution
}

// InitialPopulation builds NumOffspringsPerGeneration random individuals,
// matching Arrango's initializePopulation loop.
func InitialPopulation(cat *catalogue.Catalogue, result *preprocessor.Result, teacherAssignment map[*preprocessor.ClassGroup]*catalogue.Teacher, size int, rng *rand.Rand) *Population {
	individuals := make([]*solution.Solution, size)
	for i := 0; i < size; i++ {
		individuals[i] = RandomSolution(cat, result, teacherAssignment, rng)
	}
	return &Population{Individuals: individuals}
}
