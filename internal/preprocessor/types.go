// Package preprocessor turns a catalogue.Catalogue into the unit the
// scheduler actually places: ClassGroups (a cohort of students taking one
// course together) broken into ClassSessions (one schedulable timeslot-sized
// unit each), plus the conflict map of class-groups that share a student
// cohort. Grounded on the teacher's internal/graph pipeline (generate
// sessions, then add conflict edges in passes) and on
// original_source/.../preprocessor.cpp's enrollee-projection shape.
package preprocessor

import (
	"strconv"

	"coursetimetabler/internal/catalogue"
)

// ClassGroup is one section of one course: a cohort of students who will sit
// together in every session of that course. Its ID is a stable hash of the
// course name and the sorted member student-group IDs, so the same cohort
// gets the same ID across re-runs (see key.go, adapted from the teacher's
// utils.SectionGroupKey).
type ClassGroup struct {
	ID          string
	Course      *catalogue.Course
	NumStudents int

	// Members records which StudentGroup/SubStudentGroup contributed
	// students to this group, for conflict-graph construction in step C.
	Members []Enrollment
}

// Enrollment is one StudentGroup or SubStudentGroup's contribution to a
// course's projected headcount. Exactly one of Regular/Sub is set.
type Enrollment struct {
	Regular *catalogue.StudentGroup
	Sub     *catalogue.SubStudentGroup
	Course  *catalogue.Course
	Count   int
}

// cohortKey identifies the human cohort behind an Enrollment for conflict
// purposes — two Enrollments with the same cohortKey represent the same
// students and so any two ClassGroups they both appear in conflict.
func (e Enrollment) cohortKey() string {
	if e.Sub != nil {
		for i, s := range e.Sub.Parent.SubGroups {
			if s == e.Sub {
				return "sub:" + e.Sub.Parent.ID + ":" + strconv.Itoa(i)
			}
		}
		return "sub:" + e.Sub.Parent.ID
	}
	return "reg:" + e.Regular.ID
}

// ClassSession is one of a ClassGroup's preprocessor-materialised,
// not-yet-placed weekly meetings: a course with NumTimeslots > 1 produces
// that many per ClassGroup, with day/timeslot left at the solution
// model's sentinel until a Solution is constructed from the group. The
// solution model (internal/solution) owns its own, separately placed copy
// of each group's sessions — these are the preprocessor's record of how
// many a group starts with, nothing more.
type ClassSession struct {
	ID           string
	ClassGroup   *ClassGroup
	SessionIndex int // 0-based position within the course's weekly sessions
}

// ConflictMap records which pairs of ClassGroups must never be scheduled
// in the same (day, timeslot): two groups sharing a student cohort. Keyed
// by classGroupId (here, by ClassGroup identity) per spec §3/§4.2, not by
// individual session — every session of a conflicting pair of groups
// conflicts, since all of a group's sessions share its students. Keys are
// unordered; HasConflict checks both orderings.
type ConflictMap struct {
	edges map[*ClassGroup]map[*ClassGroup]bool
}

func newConflictMap() *ConflictMap {
	return &ConflictMap{edges: make(map[*ClassGroup]map[*ClassGroup]bool)}
}

func (m *ConflictMap) add(a, b *ClassGroup) {
	if a == b {
		return
	}
	if m.edges[a] == nil {
		m.edges[a] = make(map[*ClassGroup]bool)
	}
	if m.edges[b] == nil {
		m.edges[b] = make(map[*ClassGroup]bool)
	}
	m.edges[a][b] = true
	m.edges[b][a] = true
}

// HasConflict reports whether two class-groups must never share a (day,
// timeslot) pair.
func (m *ConflictMap) HasConflict(a, b *ClassGroup) bool {
	return m.edges[a] != nil && m.edges[a][b]
}

// Neighbors returns every class-group that conflicts with g.
func (m *ConflictMap) Neighbors(g *ClassGroup) []*ClassGroup {
	out := make([]*ClassGroup, 0, len(m.edges[g]))
	for n := range m.edges[g] {
		out = append(out, n)
	}
	return out
}

// Result bundles everything the rest of the pipeline (teacher assignment,
// solution model, cost evaluator) needs from preprocessing.
type Result struct {
	ClassGroups   []*ClassGroup
	ClassSessions []*ClassSession
	Conflicts     *ConflictMap
}
