package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
)

func oneGroupResult(numTimeslots int) (*preprocessor.Result, *preprocessor.ClassGroup) {
	course := &catalogue.Course{Name: "CS101", NumTimeslots: numTimeslots}
	group := &preprocessor.ClassGroup{ID: "CS101#g1", Course: course, NumStudents: 30}
	return &preprocessor.Result{ClassGroups: []*preprocessor.ClassGroup{group}}, group
}

func basicConfig() *catalogue.Configuration {
	return &catalogue.Configuration{NumTimeslots: 10, DaysWithDoubleTimeslots: map[int]bool{1: true}}
}

func TestNewStartsAtSentinelWithBaseSessionCount(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)

	day, err := sol.GetClassDay(group)
	require.NoError(t, err)
	assert.Equal(t, -1, day)
	assert.Len(t, sol.SessionsOf(group), 2)
}

func TestUpdateDayAndTimeslotPlacesEverySessionConsistently(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)
	cfg := basicConfig()

	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 3, cfg))

	day, err := sol.GetClassDay(group)
	require.NoError(t, err)
	assert.Equal(t, 0, day)
	ts, err := sol.GetClassStartingTimeslot(group)
	require.NoError(t, err)
	assert.Equal(t, 3, ts)

	sessions := sol.SessionsOf(group)
	require.Len(t, sessions, 2)
	for i, sn := range sessions {
		assert.Equal(t, 0, sn.Day)
		assert.Equal(t, 3+i, sn.Timeslot)
	}
}

func TestUnknownClassGroupError(t *testing.T) {
	result, _ := oneGroupResult(1)
	sol := New(result)
	other := &preprocessor.ClassGroup{ID: "ghost", Course: &catalogue.Course{NumTimeslots: 1}}

	_, err := sol.GetClassDay(other)
	require.Error(t, err)
	var unknown *UnknownClassGroup
	assert.ErrorAs(t, err, &unknown)
}

func TestCloneIsIndependent(t *testing.T) {
	result, group := oneGroupResult(1)
	sol := New(result)
	cfg := basicConfig()
	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))

	clone := sol.Clone()
	require.NoError(t, clone.ChangeClassDay(group, 4))

	originalDay, _ := sol.GetClassDay(group)
	cloneDay, _ := clone.GetClassDay(group)
	assert.Equal(t, 0, originalDay)
	assert.Equal(t, 4, cloneDay)
}

func TestUpdateDayAndTimeslotRejectsOutOfRangeSpan(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)
	cfg := &catalogue.Configuration{NumTimeslots: 3, DaysWithDoubleTimeslots: map[int]bool{}}

	// span is 2, starting timeslot 2 would need slots {2,3} but limit is 3.
	err := sol.UpdateDayAndTimeslot(group, 0, 2, cfg)
	assert.Error(t, err)

	err = sol.UpdateDayAndTimeslot(group, 0, 1, cfg)
	assert.NoError(t, err)
}

func TestDoubleTimeslotDayExpandsSessionCount(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)
	cfg := basicConfig()

	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))
	assert.Len(t, sol.SessionsOf(group), 2)

	require.NoError(t, sol.UpdateDayAndTimeslot(group, 1, 0, cfg))
	sessions := sol.SessionsOf(group)
	require.Len(t, sessions, 4)
	for i, sn := range sessions {
		assert.Equal(t, 1, sn.Day)
		assert.Equal(t, i, sn.Timeslot)
	}
}

func TestDoubleTimeslotDayRoundTripRestoresOriginalCount(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)
	cfg := basicConfig()

	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))
	require.NoError(t, sol.UpdateDayAndTimeslot(group, 1, 0, cfg))
	require.Len(t, sol.SessionsOf(group), 4)

	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))
	sessions := sol.SessionsOf(group)
	require.Len(t, sessions, 2)
	for i, sn := range sessions {
		assert.Equal(t, 0, sn.Day)
		assert.Equal(t, i, sn.Timeslot)
	}
}

func TestChangeClassRoomAndTeacherApplyToEverySession(t *testing.T) {
	result, group := oneGroupResult(2)
	sol := New(result)
	cfg := basicConfig()
	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))

	room := &catalogue.Room{Name: "R1"}
	teacher := &catalogue.Teacher{Name: "Ada"}
	require.NoError(t, sol.ChangeClassRoom(group, room))
	require.NoError(t, sol.ChangeClassTeacher(group, teacher))

	for _, sn := range sol.SessionsOf(group) {
		assert.Equal(t, room, sn.Room)
		assert.Equal(t, teacher, sn.Teacher)
	}
}

func TestCostCacheInvalidatedOnMutation(t *testing.T) {
	result, group := oneGroupResult(1)
	sol := New(result)
	cfg := basicConfig()
	require.NoError(t, sol.UpdateDayAndTimeslot(group, 0, 0, cfg))

	sol.SetCost(42)
	cost, ok := sol.GetCost()
	assert.True(t, ok)
	assert.Equal(t, 42, cost)

	require.NoError(t, sol.ChangeClassDay(group, 1))
	_, ok = sol.GetCost()
	assert.False(t, ok)
}
