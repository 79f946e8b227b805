// Package solution is the mutable timetable the evolutionary search
// mutates and the cost evaluator scores: a (day, startingTimeslot, room,
// teacher) placement per class-group, expanded into that group's owned,
// concrete Sessions. Grounded directly on original_source/.../timetabler.cpp's
// Solution class (changeClassDay, changeClassTimeslot, changeClassRoom,
// changeClassTeacher, updateDayAndTimeslot, all looked up by class-group
// and all raising UnknownClassGroupError on a bad key) and on the
// teacher's solver.Solution/Copy deep-clone pattern.
package solution

import (
	"fmt"
	"sort"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
)

// unassigned is the sentinel day/timeslot every class session starts at,
// before a Solution ever places its group.
const unassigned = -1

// Session is one concrete, solution-owned occupancy of a class-group's
// weekly meeting pattern. Unlike preprocessor.ClassSession (an
// unplaced template), a Solution's Sessions always carry the group's
// current placement and are deep-copied on Clone. Every Session in a
// group shares Day, Room and Teacher, and the group's sessions occupy a
// consecutive block of timeslots starting at the group's starting
// timeslot — the invariant §4.4 requires every mutator to preserve.
type Session struct {
	ID         string
	ClassGroup *preprocessor.ClassGroup
	Day        int
	Timeslot   int
	Room       *catalogue.Room
	Teacher    *catalogue.Teacher
}

// GroupPlacement is the snapshot getClassDay/getClassStartingTimeslot read
// from a group's first session — every session in the group agrees by
// invariant.
type GroupPlacement struct {
	Day           int
	StartTimeslot int
	Room          *catalogue.Room
	Teacher       *catalogue.Teacher
}

// UnknownClassGroup mirrors the original's UnknownClassGroupError: every
// Solution mutator takes a class-group this Solution was built from, and
// one that isn't is a programmer error, not recoverable input.
type UnknownClassGroup struct {
	GroupID string
}

func (e *UnknownClassGroup) Error() string {
	return fmt.Sprintf("solution: unknown class group %q", e.GroupID)
}

// Solution is one candidate timetable: every class-group from the
// preprocessed Result it was built from, each expanded into its own
// owned Sessions. Result, and everything it points to (ClassGroups,
// Courses, Teachers, Rooms), is shared by identity across every Solution
// in a population — only Sessions are cloned.
type Solution struct {
	Result *preprocessor.Result

	sessions map[*preprocessor.ClassGroup][]*Session

	cost    int
	costSet bool
}

// New builds an empty Solution: every class-group starts with
// course.NumTimeslots sessions — the "single day" multiplicity — at the
// sentinel day/timeslot -1, with no room or teacher yet.
func New(result *preprocessor.Result) *Solution {
	sessions := make(map[*preprocessor.ClassGroup][]*Session, len(result.ClassGroups))
	for _, g := range result.ClassGroups {
		sessions[g] = newBaseSessions(g)
	}
	return &Solution{Result: result, sessions: sessions}
}

func newBaseSessions(g *preprocessor.ClassGroup) []*Session {
	out := make([]*Session, g.Course.NumTimeslots)
	for i := range out {
		out[i] = &Session{
			ID:         fmt.Sprintf("%s::%d", g.ID, i),
			ClassGroup: g,
			Day:        unassigned,
			Timeslot:   unassigned,
		}
	}
	return out
}

// Clone deep-copies every group's owned Sessions but keeps sharing Result
// and the entities it points to — the same "clone owned state, share
// everything else by identity" rule the teacher's Solution.Copy follows.
func (s *Solution) Clone() *Solution {
	clone := &Solution{
		Result:   s.Result,
		sessions: make(map[*preprocessor.ClassGroup][]*Session, len(s.sessions)),
		cost:     s.cost,
		costSet:  s.costSet,
	}
	for g, sess := range s.sessions {
		cp := make([]*Session, len(sess))
		for i, sn := range sess {
			copySn := *sn
			cp[i] = &copySn
		}
		clone.sessions[g] = cp
	}
	return clone
}

// GetClassDay returns the day currently assigned to group, read from its
// first session (every session in a group agrees by invariant).
func (s *Solution) GetClassDay(group *preprocessor.ClassGroup) (int, error) {
	sess, ok := s.sessions[group]
	if !ok || len(sess) == 0 {
		return 0, &UnknownClassGroup{GroupID: group.ID}
	}
	return sess[0].Day, nil
}

// GetClassStartingTimeslot returns the starting timeslot currently
// assigned to group.
func (s *Solution) GetClassStartingTimeslot(group *preprocessor.ClassGroup) (int, error) {
	sess, ok := s.sessions[group]
	if !ok || len(sess) == 0 {
		return 0, &UnknownClassGroup{GroupID: group.ID}
	}
	return sess[0].Timeslot, nil
}

// PlacementOf returns group's current placement snapshot, or false if
// group is unknown to this Solution.
func (s *Solution) PlacementOf(group *preprocessor.ClassGroup) (GroupPlacement, bool) {
	sess, ok := s.sessions[group]
	if !ok || len(sess) == 0 {
		return GroupPlacement{}, false
	}
	first := sess[0]
	return GroupPlacement{Day: first.Day, StartTimeslot: first.Timeslot, Room: first.Room, Teacher: first.Teacher}, true
}

// SessionsOf returns group's owned Sessions, in materialisation order.
func (s *Solution) SessionsOf(group *preprocessor.ClassGroup) []*Session {
	return s.sessions[group]
}

// AllSessions returns every concrete Session this Solution owns, across
// every class-group, in the stable order of Result.ClassGroups.
func (s *Solution) AllSessions() []*Session {
	out := make([]*Session, 0, len(s.Result.ClassSessions))
	for _, g := range s.Result.ClassGroups {
		out = append(out, s.sessions[g]...)
	}
	return out
}

// ChangeClassDay sets day on every session in group, leaving timeslots,
// room and teacher untouched. Does not reconcile double-timeslot
// multiplicity — use UpdateDayAndTimeslot when that matters.
func (s *Solution) ChangeClassDay(group *preprocessor.ClassGroup, day int) error {
	sess, ok := s.sessions[group]
	if !ok {
		return &UnknownClassGroup{GroupID: group.ID}
	}
	for _, sn := range sess {
		sn.Day = day
	}
	s.costSet = false
	return nil
}

// ChangeClassTimeslot assigns consecutive timeslots startTs, startTs+1, …
// to group's sessions in the order they were materialised, leaving day,
// room and teacher untouched.
func (s *Solution) ChangeClassTimeslot(group *preprocessor.ClassGroup, startTs int) error {
	sess, ok := s.sessions[group]
	if !ok {
		return &UnknownClassGroup{GroupID: group.ID}
	}
	for i, sn := range sess {
		sn.Timeslot = startTs + i
	}
	s.costSet = false
	return nil
}

// ChangeClassRoom reassigns group's room across every owned session — the
// invariant requires every session in a group to share the same room.
func (s *Solution) ChangeClassRoom(group *preprocessor.ClassGroup, room *catalogue.Room) error {
	sess, ok := s.sessions[group]
	if !ok {
		return &UnknownClassGroup{GroupID: group.ID}
	}
	for _, sn := range sess {
		sn.Room = room
	}
	s.costSet = false
	return nil
}

// ChangeClassTeacher reassigns group's teacher across every owned
// session.
func (s *Solution) ChangeClassTeacher(group *preprocessor.ClassGroup, teacher *catalogue.Teacher) error {
	sess, ok := s.sessions[group]
	if !ok {
		return &UnknownClassGroup{GroupID: group.ID}
	}
	for _, sn := range sess {
		sn.Teacher = teacher
	}
	s.costSet = false
	return nil
}

// dayMultiplier is 2 for a configured double-timeslot day, 1 otherwise;
// the sentinel day (-1) is never a double day.
func dayMultiplier(cfg *catalogue.Configuration, day int) int {
	if day != unassigned && cfg.DaysWithDoubleTimeslots[day] {
		return 2
	}
	return 1
}

// UpdateDayAndTimeslot is §4.4's full mutator: it first reconciles the
// group's session count with the target day's multiplicity — doubling by
// appending fresh sessions when moving onto a days_with_double_timeslots
// day from a single day, or dropping the top half of sessions (by
// timeslot) on the reverse transition — then applies the day and a
// consecutive timeslot block starting at startTs, and carries the
// group's existing room/teacher onto every resulting session.
func (s *Solution) UpdateDayAndTimeslot(group *preprocessor.ClassGroup, day, startTs int, cfg *catalogue.Configuration) error {
	sess, ok := s.sessions[group]
	if !ok || len(sess) == 0 {
		return &UnknownClassGroup{GroupID: group.ID}
	}

	base := group.Course.NumTimeslots
	prevMultiplier := dayMultiplier(cfg, sess[0].Day)
	newMultiplier := dayMultiplier(cfg, day)
	targetCount := base * newMultiplier

	limit := cfg.NumTimeslots * newMultiplier
	if startTs < 0 || startTs+targetCount > limit {
		return fmt.Errorf("solution: timeslot %d (span %d) does not fit day %d (limit %d)", startTs, targetCount, day, limit)
	}

	switch {
	case newMultiplier == 2 && prevMultiplier == 1:
		sess = growToDouble(sess, group)
	case newMultiplier == 1 && prevMultiplier == 2:
		sess = shrinkToSingle(sess)
	}

	room, teacher := sess[0].Room, sess[0].Teacher
	for i, sn := range sess {
		sn.Day = day
		sn.Timeslot = startTs + i
		sn.Room = room
		sn.Teacher = teacher
	}
	s.sessions[group] = sess
	s.costSet = false
	return nil
}

// growToDouble appends len(sess) fresh sessions, doubling the group's
// session count — §4.4's "double the session count by appending fresh
// sessions whose timeslots continue from the existing first timeslot"
// (the caller immediately overwrites every timeslot with a consecutive
// block, so the placeholder values here are never observed).
func growToDouble(sess []*Session, group *preprocessor.ClassGroup) []*Session {
	grown := make([]*Session, len(sess), len(sess)*2)
	copy(grown, sess)
	for i := 0; i < len(sess); i++ {
		grown = append(grown, &Session{
			ID:         fmt.Sprintf("%s::%d", group.ID, len(sess)+i),
			ClassGroup: group,
			Day:        sess[0].Day,
			Timeslot:   sess[0].Timeslot,
			Room:       sess[0].Room,
			Teacher:    sess[0].Teacher,
		})
	}
	return grown
}

// shrinkToSingle drops the N = len(sess)/2 sessions with the highest
// timeslots, the reverse of growToDouble.
func shrinkToSingle(sess []*Session) []*Session {
	sorted := make([]*Session, len(sess))
	copy(sorted, sess)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timeslot < sorted[j].Timeslot })
	return sorted[:len(sess)/2]
}

// SetCost caches the evaluator's cost for this solution.
func (s *Solution) SetCost(cost int) {
	s.cost = cost
	s.costSet = true
}

// GetCost returns the cached cost, if one has been set since the last
// mutation.
func (s *Solution) GetCost() (int, bool) {
	return s.cost, s.costSet
}
