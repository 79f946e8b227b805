package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

func sampleResultAndSolution() (*preprocessor.Result, *solution.Solution) {
	course := &catalogue.Course{Name: "CS101", NumTimeslots: 1}
	group := &preprocessor.ClassGroup{ID: "CS101#g1", Course: course, NumStudents: 25}
	result := &preprocessor.Result{
		ClassGroups: []*preprocessor.ClassGroup{group},
		Conflicts:   &preprocessor.ConflictMap{},
	}

	cfg := &catalogue.Configuration{NumTimeslots: 10, DaysWithDoubleTimeslots: map[int]bool{}}
	sol := solution.New(result)
	room := &catalogue.Room{Name: "R1"}
	teacher := &catalogue.Teacher{Name: "Ada"}
	_ = sol.UpdateDayAndTimeslot(group, 0, 3, cfg)
	_ = sol.ChangeClassRoom(group, room)
	_ = sol.ChangeClassTeacher(group, teacher)
	return result, sol
}

func TestBuildExportGroupsByDay(t *testing.T) {
	result, sol := sampleResultAndSolution()

	export := BuildExport(sol, result)
	require.Len(t, export.Schedule, 1)
	assert.Equal(t, 0, export.Schedule[0].Day)
	require.Len(t, export.Activities, 1)
	assert.Equal(t, "CS101", export.Activities[0].Course)
	assert.Equal(t, "Ada", export.Activities[0].Teacher)
	assert.Equal(t, 1, export.Summary.TotalClassSessions)
}

func TestWriteJSONProducesValidDocument(t *testing.T) {
	result, sol := sampleResultAndSolution()
	path := filepath.Join(t.TempDir(), "schedule.json")

	require.NoError(t, WriteJSON(sol, result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export ScheduleExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, 1, export.Summary.TotalClassGroups)
}

func TestBuildDatasetRowCarriesSessionFields(t *testing.T) {
	result, sol := sampleResultAndSolution()

	data := BuildDataset(sol, result)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "CS101", data.Rows[0]["Course"])
	assert.Equal(t, "3", data.Rows[0]["Timeslot"])
}

func TestRenderPDFRequiresHeaders(t *testing.T) {
	_, err := RenderPDF(Dataset{}, "Schedule")
	assert.Error(t, err)
}

func TestRenderPDFProducesNonEmptyDocument(t *testing.T) {
	result, sol := sampleResultAndSolution()
	data := BuildDataset(sol, result)

	out, err := RenderPDF(data, "Schedule")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPrintSummaryIncludesCostBreakdown(t *testing.T) {
	result, sol := sampleResultAndSolution()
	var buf bytes.Buffer

	PrintSummary(&buf, sol, result)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Total cost:"))
	assert.True(t, strings.Contains(out, "CS101"))
}
