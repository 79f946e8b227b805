// Package report renders a solution.Solution as JSON, PDF and a stdout
// summary. Grounded on the teacher's internal/exporter/json_exporter.go
// (ScheduleExport/DaySchedule/BlockSlot/ActivityExport shape) generalized
// from a fixed five-day Spanish-named week to the catalogue's configured
// day and timeslot count, and on noah-isme-sma-adp-api's
// pkg/export/pdf_exporter.go Dataset/gofpdf pattern for the PDF side.
package report

import (
	"encoding/json"
	"os"
	"sort"
	"time"

	"coursetimetabler/internal/evaluator"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// ScheduleExport is the root JSON document.
type ScheduleExport struct {
	GeneratedAt string          `json:"generated_at"`
	Summary     ScheduleSummary `json:"summary"`
	Schedule    []DaySchedule   `json:"schedule"`
	Activities  []ActivityExport `json:"activities"`
}

// ScheduleSummary mirrors the teacher's totals-plus-score-breakdown block.
type ScheduleSummary struct {
	TotalClassSessions int `json:"total_class_sessions"`
	TotalClassGroups   int `json:"total_class_groups"`
	TotalCost          int `json:"total_cost"`
	HC0ClassConflicts  int `json:"hc0_class_conflicts"`
	HC1TeacherConflicts int `json:"hc1_teacher_conflicts"`
	HC2StudentConflicts int `json:"hc2_student_conflicts"`
	SC0UnpreferredSlots int `json:"sc0_unpreferred_slots"`
	SC1DiscouragedSlots int `json:"sc1_discouraged_slots"`
}

// DaySchedule groups every placed session starting on one day.
type DaySchedule struct {
	Day        int              `json:"day"`
	Activities []ActivityExport `json:"activities"`
}

// ActivityExport is one scheduled ClassSession.
type ActivityExport struct {
	SessionID string `json:"session_id"`
	Course    string `json:"course"`
	Group     string `json:"class_group"`
	Room      string `json:"room"`
	Teacher   string `json:"teacher"`
	Day       int    `json:"day"`
	Timeslot  int    `json:"timeslot"`
	Students  int    `json:"students"`
}

// BuildExport assembles the full export document for sol.
func BuildExport(sol *solution.Solution, result *preprocessor.Result) ScheduleExport {
	breakdown := evaluator.Evaluate(sol, result.Conflicts)

	sessions := sol.AllSessions()
	activities := make([]ActivityExport, 0, len(sessions))
	byDay := make(map[int][]ActivityExport)

	for _, sn := range sessions {
		roomName := ""
		if sn.Room != nil {
			roomName = sn.Room.Name
		}
		teacherName := ""
		if sn.Teacher != nil {
			teacherName = sn.Teacher.Name
		}
		a := ActivityExport{
			SessionID: sn.ID,
			Course:    sn.ClassGroup.Course.Name,
			Group:     sn.ClassGroup.ID,
			Room:      roomName,
			Teacher:   teacherName,
			Day:       sn.Day,
			Timeslot:  sn.Timeslot,
			Students:  sn.ClassGroup.NumStudents,
		}
		activities = append(activities, a)
		byDay[sn.Day] = append(byDay[sn.Day], a)
	}

	var days []int
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	schedule := make([]DaySchedule, 0, len(days))
	for _, d := range days {
		acts := byDay[d]
		sort.Slice(acts, func(i, j int) bool { return acts[i].Timeslot < acts[j].Timeslot })
		schedule = append(schedule, DaySchedule{Day: d, Activities: acts})
	}

	return ScheduleExport{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Summary: ScheduleSummary{
			TotalClassSessions:  len(sessions),
			TotalClassGroups:    len(result.ClassGroups),
			TotalCost:           breakdown.Total(),
			HC0ClassConflicts:   breakdown.HC0,
			HC1TeacherConflicts: breakdown.HC1,
			HC2StudentConflicts: breakdown.HC2,
			SC0UnpreferredSlots: breakdown.SC0,
			SC1DiscouragedSlots: breakdown.SC1,
		},
		Schedule:   schedule,
		Activities: activities,
	}
}

// WriteJSON renders sol's export to filename as indented JSON.
func WriteJSON(sol *solution.Solution, result *preprocessor.Result, filename string) error {
	export := BuildExport(sol, result)
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
