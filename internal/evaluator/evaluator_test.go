package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

func twoGroupResult() (*preprocessor.Result, *preprocessor.ClassGroup, *preprocessor.ClassGroup) {
	courseA := &catalogue.Course{Name: "CS101", NumTimeslots: 1}
	courseB := &catalogue.Course{Name: "CS102", NumTimeslots: 1}
	groupA := &preprocessor.ClassGroup{ID: "CS101#g1", Course: courseA, NumStudents: 20}
	groupB := &preprocessor.ClassGroup{ID: "CS102#g1", Course: courseB, NumStudents: 20}
	result := &preprocessor.Result{ClassGroups: []*preprocessor.ClassGroup{groupA, groupB}}
	return result, groupA, groupB
}

func noOpCfg() *catalogue.Configuration {
	return &catalogue.Configuration{NumTimeslots: 24, DaysWithDoubleTimeslots: map[int]bool{}}
}

func TestHC0ClassDoubleBookingIsRoomIndependent(t *testing.T) {
	result, groupA, groupB := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()
	roomA := &catalogue.Room{Name: "R1"}
	roomB := &catalogue.Room{Name: "R2"}

	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 0, 3, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupA, roomA))
	require.NoError(t, sol.UpdateDayAndTimeslot(groupB, 0, 3, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupB, roomB))

	// Same (day, timeslot), different rooms, different class-groups: HC0
	// must still fire because it is a class double-booking, room-independent.
	conflicts := &preprocessor.ConflictMap{}
	b := Evaluate(sol, conflicts)
	assert.Equal(t, 1, b.HC0)
	assert.Equal(t, 100, b.Total())
}

func TestNoConflictWhenDifferentTimeslots(t *testing.T) {
	result, groupA, groupB := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()

	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 0, 3, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupA, &catalogue.Room{Name: "R1"}))
	require.NoError(t, sol.UpdateDayAndTimeslot(groupB, 1, 4, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupB, &catalogue.Room{Name: "R2"}))

	conflicts := &preprocessor.ConflictMap{}
	b := Evaluate(sol, conflicts)
	assert.Equal(t, 0, b.Total())
}

func TestHC2FiresOnlyWhenGroupsConflict(t *testing.T) {
	result, groupA, groupB := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()

	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 0, 5, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupA, &catalogue.Room{Name: "R1"}))
	require.NoError(t, sol.UpdateDayAndTimeslot(groupB, 0, 5, cfg))
	require.NoError(t, sol.ChangeClassRoom(groupB, &catalogue.Room{Name: "R2"}))

	conflicts := preprocessor.BuildConflictMap([]*preprocessor.ClassGroup{groupA, groupB})
	b := Evaluate(sol, conflicts)
	// HC0 fires (same day/timeslot, different groups) but HC2 shouldn't
	// since groupA and groupB share no student cohort.
	assert.Equal(t, 1, b.HC0)
	assert.Equal(t, 0, b.HC2)
}

func TestSC1DiscouragedTimeslot(t *testing.T) {
	result, groupA, groupB := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()

	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 0, 0, cfg))
	require.NoError(t, sol.UpdateDayAndTimeslot(groupB, 1, 5, cfg))

	conflicts := &preprocessor.ConflictMap{}
	b := Evaluate(sol, conflicts)
	assert.Equal(t, 1, b.SC1)
}

func TestSC0TeacherUnpreferredTimeslot(t *testing.T) {
	result, groupA, _ := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()

	teacher := &catalogue.Teacher{
		Name: "Ada",
		UnpreferredTimeslots: map[catalogue.UnpreferredTimeslot]bool{
			{Day: 2, Timeslot: 6}: true,
		},
	}
	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 2, 6, cfg))
	require.NoError(t, sol.ChangeClassTeacher(groupA, teacher))

	conflicts := &preprocessor.ConflictMap{}
	b := Evaluate(sol, conflicts)
	assert.Equal(t, 1, b.SC0)
}

func TestHC1FiresOnSharedTeacherDoubleBooking(t *testing.T) {
	result, groupA, groupB := twoGroupResult()
	sol := solution.New(result)
	cfg := noOpCfg()
	teacher := &catalogue.Teacher{Name: "Ada"}

	require.NoError(t, sol.UpdateDayAndTimeslot(groupA, 0, 3, cfg))
	require.NoError(t, sol.ChangeClassTeacher(groupA, teacher))
	require.NoError(t, sol.UpdateDayAndTimeslot(groupB, 0, 3, cfg))
	require.NoError(t, sol.ChangeClassTeacher(groupB, teacher))

	conflicts := &preprocessor.ConflictMap{}
	b := Evaluate(sol, conflicts)
	assert.Equal(t, 1, b.HC1)
}
