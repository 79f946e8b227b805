// Package evaluator scores a solution.Solution. Cost is
// 100*(HC0+HC1+HC2) + SC0 + SC1: hard constraint violations dominate so the
// search always prefers any feasible solution over an infeasible one, soft
// constraints only break ties among feasible (or equally infeasible)
// candidates. Grounded on the teacher's solver/simulated_annealing.go
// calculateCost, which uses the same sort-then-scan-adjacent-pairs shape
// this package keeps (including its documented undercounting of 3-way
// overlaps — see DESIGN.md).
package evaluator

import (
	"sort"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// discouragedTimeslots are starting slots students and teachers dislike
// (very early, very late, lunch) even when nothing else is wrong with the
// placement.
var discouragedTimeslots = map[int]bool{
	0: true, 1: true, 9: true, 10: true, 11: true, 21: true, 22: true, 23: true,
}

// Breakdown is the per-term score, returned alongside the total so callers
// (reporting, tests) can see which constraint is driving the cost.
type Breakdown struct {
	HC0 int // class double-booking
	HC1 int // teacher double-booking
	HC2 int // student-cohort conflict violation
	SC0 int // teacher unpreferred timeslot
	SC1 int // discouraged timeslot
}

// Total applies the 100x hard-constraint weighting.
func (b Breakdown) Total() int {
	return 100*(b.HC0+b.HC1+b.HC2) + b.SC0 + b.SC1
}

// Evaluate scores sol and caches the result on it via SetCost.
func Evaluate(sol *solution.Solution, conflicts *preprocessor.ConflictMap) Breakdown {
	sessions := sol.AllSessions()

	b := Breakdown{}
	b.HC0 = countByDayTimeslot(sessions, func(a, c *solution.Session) bool {
		return a.ClassGroup != c.ClassGroup
	})
	b.HC1 = countByTeacherDayTimeslot(sessions)
	b.HC2 = countByDayTimeslot(sessions, func(a, c *solution.Session) bool {
		return conflicts.HasConflict(a.ClassGroup, c.ClassGroup)
	})

	for _, sn := range sessions {
		if sn.Teacher != nil {
			key := catalogue.UnpreferredTimeslot{Day: sn.Day, Timeslot: sn.Timeslot}
			if sn.Teacher.UnpreferredTimeslots[key] {
				b.SC0++
			}
		}
		if discouragedTimeslots[sn.Timeslot] {
			b.SC1++
		}
	}

	sol.SetCost(b.Total())
	return b
}

// countByDayTimeslot sorts a copy of sessions by (day, timeslot) and
// counts adjacent pairs that share an exact (day, timeslot) and for
// which violates holds — HC0's "different class-group" and HC2's
// "classGroupIds conflict" both fit this shape.
//
// This is a deliberate under-count of 3+-way collisions: a triple of
// sessions all sharing one (day, timeslot) contributes 2 adjacent pairs,
// not the 3 a full pairwise comparison would count. The teacher's
// calculateCost scores the same way; DESIGN.md records the decision to
// keep it rather than generalize to k*(k-1)/2 per equal-key run.
func countByDayTimeslot(sessions []*solution.Session, violates func(a, c *solution.Session) bool) int {
	sorted := make([]*solution.Session, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].Timeslot < sorted[j].Timeslot
	})

	count := 0
	for i := 0; i+1 < len(sorted); i++ {
		a, c := sorted[i], sorted[i+1]
		if a.Day != c.Day || a.Timeslot != c.Timeslot {
			continue
		}
		if violates(a, c) {
			count++
		}
	}
	return count
}

// countByTeacherDayTimeslot sorts sessions with an assigned teacher by
// (teacherName, day, timeslot) and counts adjacent pairs sharing all
// three keys but belonging to different class-groups — HC1. Sessions
// with no teacher assigned yet never collide with one another.
func countByTeacherDayTimeslot(sessions []*solution.Session) int {
	var taught []*solution.Session
	for _, sn := range sessions {
		if sn.Teacher != nil {
			taught = append(taught, sn)
		}
	}
	sort.Slice(taught, func(i, j int) bool {
		if taught[i].Teacher.Name != taught[j].Teacher.Name {
			return taught[i].Teacher.Name < taught[j].Teacher.Name
		}
		if taught[i].Day != taught[j].Day {
			return taught[i].Day < taught[j].Day
		}
		return taught[i].Timeslot < taught[j].Timeslot
	})

	count := 0
	for i := 0; i+1 < len(taught); i++ {
		a, c := taught[i], taught[i+1]
		if a.Teacher.Name != c.Teacher.Name || a.Day != c.Day || a.Timeslot != c.Timeslot {
			continue
		}
		if a.ClassGroup != c.ClassGroup {
			count++
		}
	}
	return count
}
