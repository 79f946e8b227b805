// Package teacherassign greedily assigns a Teacher to every ClassGroup,
// always picking whichever eligible candidate currently carries the least
// load. Grounded on the teacher repo's seeded math/rand usage in
// solver/simulated_annealing.go (a package-level seeded RNG so a run is
// reproducible) generalized from random move selection to random
// tie-breaking among equally-loaded candidates.
package teacherassign

import (
	"fmt"
	"math/rand"
	"sort"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
)

// Warning records a ClassGroup that could not be given a teacher within the
// configured load caps. It does not abort the run — the solution model
// simply carries a nil teacher for that group. The cost evaluator adds no
// penalty for a missing teacher; sessions without one are skipped by the
// teacher-based terms.
type Warning struct {
	ClassGroup string
	Course     string
	Reason     string
}

func (w Warning) String() string {
	return fmt.Sprintf("teacher assignment: class group %s (%s): %s", w.ClassGroup, w.Course, w.Reason)
}

// assignState tracks a teacher's running assigned units across this run, added on
// top of their PreviousLoad.
type assignState struct {
	assigned map[*catalogue.Teacher]float64
}

// Assign walks every ClassGroup and greedily assigns the least-loaded
// eligible candidate teacher, honoring MaxAnnualTeacherLoad and
// MaxSemestralTeacherLoad. rng drives tie-breaking among candidates with
// equal current load, the one place randomness enters this otherwise
// deterministic pass.
func Assign(cat *catalogue.Catalogue, groups []*preprocessor.ClassGroup, rng *rand.Rand) (map[*preprocessor.ClassGroup]*catalogue.Teacher, []Warning) {
	state := &assignState{assigned: make(map[*catalogue.Teacher]float64)}
	for _, t := range cat.Teachers {
		state.assigned[t] = 0
	}

	assignment := make(map[*preprocessor.ClassGroup]*catalogue.Teacher, len(groups))
	var warnings []Warning

	// Sort groups deterministically before assigning so the same catalogue
	// always produces the same assignment order, independent of map
	// iteration order upstream.
	sorted := make([]*preprocessor.ClassGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	semestralCap := cat.Config.MaxSemestralTeacherLoad
	annualCap := cat.Config.MaxAnnualTeacherLoad

	for _, g := range sorted {
		candidates := eligibleCandidates(g.Course, state, semestralCap, annualCap)
		if len(candidates) == 0 {
			warnings = append(warnings, Warning{
				ClassGroup: g.ID,
				Course:     g.Course.Name,
				Reason:     "no candidate teacher available within load caps",
			})
			continue
		}

		best := leastLoaded(candidates, state, rng)
		assignment[g] = best
		state.assigned[best] += g.Course.NumUnits
	}

	return assignment, warnings
}

func eligibleCandidates(course *catalogue.Course, state *assignState, semestralCap, annualCap float64) []*catalogue.Teacher {
	var out []*catalogue.Teacher
	for _, t := range course.CandidateTeachers {
		projected := t.PreviousLoad + state.assigned[t] + course.NumUnits
		if semestralCap > 0 && projected > semestralCap {
			continue
		}
		if annualCap > 0 && projected > annualCap {
			continue
		}
		out = append(out, t)
	}
	return out
}

// leastLoaded returns the candidate with the smallest current assigned
// load, breaking ties by a random pick among the tied set so repeated runs
// with the same seed are reproducible but not degenerate (always picking
// map-iteration order).
func leastLoaded(candidates []*catalogue.Teacher, state *assignState, rng *rand.Rand) *catalogue.Teacher {
	sort.Slice(candidates, func(i, j int) bool {
		li, lj := state.assigned[candidates[i]], state.assigned[candidates[j]]
		if li != lj {
			return li < lj
		}
		return candidates[i].Name < candidates[j].Name
	})

	min := state.assigned[candidates[0]]
	var tied []*catalogue.Teacher
	for _, c := range candidates {
		if state.assigned[c] == min {
			tied = append(tied, c)
		} else {
			break
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[rng.Intn(len(tied))]
}
