package evolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
)

func trivialSetup() (*catalogue.Catalogue, *preprocessor.Result, map[*preprocessor.ClassGroup]*catalogue.Teacher) {
	cat := catalogue.New()
	room := &catalogue.Room{Name: "R1", Capacity: 50}
	cat.Rooms = append(cat.Rooms, room)
	cat.Config = &catalogue.Configuration{
		NumUniqueDays:              5,
		NumTimeslots:               12,
		DaysWithDoubleTimeslots:    map[int]bool{},
		NumGenerations:             20,
		NumOffspringsPerGeneration: 6,
		CrossoverRate:              0.7,
		MutationRate:               0.3,
		TournamentSelectionMode:    "min",
		SimpleMoveRedrawMode:       "or",
	}

	course := &catalogue.Course{Name: "CS101", NumTimeslots: 1}
	group := &preprocessor.ClassGroup{ID: "CS101#g1", Course: course, NumStudents: 20}

	result := &preprocessor.Result{
		ClassGroups: []*preprocessor.ClassGroup{group},
		Conflicts:   &preprocessor.ConflictMap{},
	}

	teacher := &catalogue.Teacher{Name: "Ada"}
	assignment := map[*preprocessor.ClassGroup]*catalogue.Teacher{group: teacher}

	return cat, result, assignment
}

func TestRandomSolutionPlacesEveryGroup(t *testing.T) {
	cat, result, assignment := trivialSetup()
	rng := rand.New(rand.NewSource(7))

	sol := RandomSolution(cat, result, assignment, rng)
	for _, group := range result.ClassGroups {
		day, err := sol.GetClassDay(group)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, day, 0)
	}
}

func TestRandomSolutionKeepsMultiTimeslotGroupOnOneConsecutiveBlock(t *testing.T) {
	cat := catalogue.New()
	cat.Rooms = append(cat.Rooms, &catalogue.Room{Name: "R1", Capacity: 50})
	cat.Config = &catalogue.Configuration{
		NumUniqueDays:           3,
		NumTimeslots:            12,
		DaysWithDoubleTimeslots: map[int]bool{},
	}
	course := &catalogue.Course{Name: "CS201", NumTimeslots: 2}
	group := &preprocessor.ClassGroup{ID: "CS201#g1", Course: course, NumStudents: 20}
	result := &preprocessor.Result{ClassGroups: []*preprocessor.ClassGroup{group}, Conflicts: &preprocessor.ConflictMap{}}
	assignment := map[*preprocessor.ClassGroup]*catalogue.Teacher{group: {Name: "Ada"}}

	rng := rand.New(rand.NewSource(3))
	sol := RandomSolution(cat, result, assignment, rng)

	sessions := sol.SessionsOf(group)
	require.Len(t, sessions, 2)
	day := sessions[0].Day
	for i, sn := range sessions {
		assert.Equal(t, day, sn.Day, "every session in a group must share the same day")
		assert.Equal(t, sessions[0].Timeslot+i, sn.Timeslot, "a group's sessions must occupy consecutive timeslots")
	}
}

func TestRunConvergesOnTrivialInstance(t *testing.T) {
	cat, result, assignment := trivialSetup()
	rng := rand.New(rand.NewSource(7))

	best := Run(cat, result, assignment, rng, nil, nil)
	require.NotNil(t, best)
	cost, ok := best.GetCost()
	require.True(t, ok)
	// A single unconflicted group should always reach cost 0.
	assert.Equal(t, 0, cost)
}

func TestMutateKeepsGroupInvariantAfterManyApplications(t *testing.T) {
	cat := catalogue.New()
	cat.Rooms = append(cat.Rooms, &catalogue.Room{Name: "R1", Capacity: 50})
	cfg := &catalogue.Configuration{
		NumUniqueDays:           4,
		NumTimeslots:            8,
		DaysWithDoubleTimeslots: map[int]bool{1: true},
		SimpleMoveRedrawMode:    "or",
	}
	cat.Config = cfg
	course := &catalogue.Course{Name: "CS301", NumTimeslots: 2}
	groupA := &preprocessor.ClassGroup{ID: "CS301#g1", Course: course, NumStudents: 20}
	groupB := &preprocessor.ClassGroup{ID: "CS301#g2", Course: course, NumStudents: 20}
	result := &preprocessor.Result{ClassGroups: []*preprocessor.ClassGroup{groupA, groupB}, Conflicts: &preprocessor.ConflictMap{}}
	assignment := map[*preprocessor.ClassGroup]*catalogue.Teacher{groupA: {Name: "Ada"}, groupB: {Name: "Lin"}}

	rng := rand.New(rand.NewSource(11))
	sol := RandomSolution(cat, result, assignment, rng)

	for i := 0; i < 200; i++ {
		mutate(sol, cfg, 1.0, rng)
	}

	for _, g := range result.ClassGroups {
		sessions := sol.SessionsOf(g)
		require.NotEmpty(t, sessions)
		day := sessions[0].Day
		for i, sn := range sessions {
			assert.Equal(t, day, sn.Day)
			assert.Equal(t, sessions[0].Timeslot+i, sn.Timeslot)
		}
	}
}

func TestCrossoverKeepsGroupInvariant(t *testing.T) {
	cat, result, assignment := trivialSetup()
	cat.Config.DaysWithDoubleTimeslots = map[int]bool{0: true}
	course := &catalogue.Course{Name: "CS401", NumTimeslots: 2}
	group := &preprocessor.ClassGroup{ID: "CS401#g1", Course: course, NumStudents: 20}
	result.ClassGroups = append(result.ClassGroups, group)
	assignment[group] = &catalogue.Teacher{Name: "Lin"}

	rng := rand.New(rand.NewSource(5))
	p1 := RandomSolution(cat, result, assignment, rng)
	p2 := RandomSolution(cat, result, assignment, rng)

	child := crossover(p1, p2, cat.Config, rng)
	for _, g := range result.ClassGroups {
		sessions := child.SessionsOf(g)
		require.NotEmpty(t, sessions)
		day := sessions[0].Day
		for i, sn := range sessions {
			assert.Equal(t, day, sn.Day)
			assert.Equal(t, sessions[0].Timeslot+i, sn.Timeslot)
		}
	}
}
