package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindexAndLookups(t *testing.T) {
	cat := New()
	cat.Divisions = append(cat.Divisions, &Division{Name: "Engineering"})
	cat.Courses = append(cat.Courses, &Course{Name: "CS101"})
	cat.Teachers = append(cat.Teachers, &Teacher{Name: "Ada"})
	cat.Reindex()

	div, ok := cat.DivisionByName("Engineering")
	require.True(t, ok)
	assert.Equal(t, "Engineering", div.Name)

	_, ok = cat.DivisionByName("Nonexistent")
	assert.False(t, ok)

	course, ok := cat.CourseByName("CS101")
	require.True(t, ok)
	assert.Equal(t, "CS101", course.Name)
}

func TestStats(t *testing.T) {
	cat := New()
	cat.Divisions = append(cat.Divisions, &Division{Name: "A"})
	cat.Courses = append(cat.Courses, &Course{Name: "X"}, &Course{Name: "Y"})
	cat.Reindex()

	stats := cat.Stats()
	assert.Equal(t, 1, stats.Divisions)
	assert.Equal(t, 2, stats.Courses)
	assert.Equal(t, 0, stats.Teachers)
}

func TestStudentGroupWriteOnceMembers(t *testing.T) {
	sg := &StudentGroup{ID: "SG1"}
	sg.SetNumMembers(40)
	assert.Equal(t, 40, sg.NumMembers())

	assert.Panics(t, func() { sg.SetNumMembers(50) })
}

func TestStudentGroupRegularCount(t *testing.T) {
	sg := &StudentGroup{ID: "SG1"}
	sg.SetNumMembers(40)
	sg.SubGroups = []*SubStudentGroup{
		{NumMembers: 10},
		{NumMembers: 5},
	}
	assert.Equal(t, 25, sg.RegularCount())
}

func TestStudentGroupRegularCountNeverNegative(t *testing.T) {
	sg := &StudentGroup{ID: "SG1"}
	sg.SetNumMembers(5)
	sg.SubGroups = []*SubStudentGroup{{NumMembers: 10}}
	assert.Equal(t, 0, sg.RegularCount())
}

func TestSetPotentialCoursesAssignsParameter(t *testing.T) {
	teacher := &Teacher{Name: "Ada"}
	courses := map[string]*Course{"CS101": {Name: "CS101"}}
	teacher.SetPotentialCourses(courses)
	assert.Same(t, courses["CS101"], teacher.PotentialCourses["CS101"])
}

func TestReferenceMissingError(t *testing.T) {
	err := &ReferenceMissing{EntityKind: "course", Name: "CS999", From: "prerequisite list"}
	assert.Contains(t, err.Error(), "CS999")
	assert.Contains(t, err.Error(), "course")
}
