package preprocessor

import (
	"fmt"

	"coursetimetabler/internal/catalogue"
)

// InsufficientCapacity is returned when a course cannot be split into
// ClassGroups because the configured capacity for its kind (lecture vs lab)
// is non-positive — a misconfigured app.config, not a bad dataset.
type InsufficientCapacity struct {
	Course string
	Cap    int
}

func (e *InsufficientCapacity) Error() string {
	return fmt.Sprintf("preprocessor: course %q has no usable capacity (cap=%d)", e.Course, e.Cap)
}

// BuildClassGroups is Step B: bin-pack each course's projected enrollment
// into ClassGroups no larger than the configured lecture/lab capacity, then
// expand each group into its weekly ClassSessions. Grounded on the
// teacher's graph/builder.go generateAllSessions pass, generalized to
// variable per-course NumTimeslots and a capacity-driven section count in
// place of the teacher's fixed section numbers.
func BuildClassGroups(cat *catalogue.Catalogue, enrollments []Enrollment) ([]*ClassGroup, []*ClassSession, error) {
	grouped := byCourse(enrollments)

	var groups []*ClassGroup
	var sessions []*ClassSession

	for _, course := range cat.Courses {
		es, ok := grouped[course]
		if !ok || len(es) == 0 {
			continue
		}
		cap := cat.Config.MaxLectureCapacity
		if course.IsLab {
			cap = cat.Config.MaxLabCapacity
		}
		if cap <= 0 {
			return nil, nil, &InsufficientCapacity{Course: course.Name, Cap: cap}
		}

		courseGroups := binPack(course, es, cap)
		groups = append(groups, courseGroups...)

		for _, g := range courseGroups {
			for i := 0; i < course.NumTimeslots; i++ {
				s := &ClassSession{
					ID:           fmt.Sprintf("%s::%d", g.ID, i),
					ClassGroup:   g,
					SessionIndex: i,
				}
				sessions = append(sessions, s)
			}
		}
	}

	return groups, sessions, nil
}

// binPack greedily accumulates enrollments (in catalogue iteration order,
// which is deterministic) into groups no larger than cap. It does not try
// to minimize the number of groups — it matches the straightforward
// first-fit-decreasing-free packing the teacher's own section splitting
// uses, favoring predictability over optimality.
func binPack(course *catalogue.Course, enrollments []Enrollment, cap int) []*ClassGroup {
	var groups []*ClassGroup
	var current *ClassGroup
	var currentKeys []string

	flush := func() {
		if current != nil {
			current.ID = groupKey(course.Name, currentKeys)
			groups = append(groups, current)
		}
		current = nil
		currentKeys = nil
	}

	for _, e := range enrollments {
		remaining := e.Count
		for remaining > 0 {
			if current == nil {
				current = &ClassGroup{Course: course}
			}
			room := cap - current.NumStudents
			if room <= 0 {
				flush()
				current = &ClassGroup{Course: course}
				room = cap
			}
			take := remaining
			if take > room {
				take = room
			}
			current.NumStudents += take
			current.Members = append(current.Members, Enrollment{
				Regular: e.Regular, Sub: e.Sub, Course: e.Course, Count: take,
			})
			currentKeys = append(currentKeys, e.cohortKey())
			remaining -= take
		}
	}
	flush()
	return groups
}
