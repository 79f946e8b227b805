package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// Dataset is the tabular shape PDF rendering consumes, adapted from
// noah-isme-sma-adp-api's pkg/export Dataset — headers plus header-keyed
// row maps, so the renderer stays agnostic of what the table actually
// contains.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// BuildDataset flattens a solution into the table a schedule printout
// shows: one row per scheduled ClassSession.
func BuildDataset(sol *solution.Solution, result *preprocessor.Result) Dataset {
	headers := []string{"Day", "Timeslot", "Course", "Group", "Room", "Teacher", "Students"}
	rows := make([]map[string]string, 0, len(result.ClassSessions))

	type row struct {
		day, timeslot int
		m             map[string]string
	}
	var collected []row
	for _, sn := range sol.AllSessions() {
		roomName := "-"
		if sn.Room != nil {
			roomName = sn.Room.Name
		}
		teacherName := "-"
		if sn.Teacher != nil {
			teacherName = sn.Teacher.Name
		}
		collected = append(collected, row{
			day: sn.Day, timeslot: sn.Timeslot,
			m: map[string]string{
				"Day":      strconv.Itoa(sn.Day),
				"Timeslot": strconv.Itoa(sn.Timeslot),
				"Course":   sn.ClassGroup.Course.Name,
				"Group":    sn.ClassGroup.ID,
				"Room":     roomName,
				"Teacher":  teacherName,
				"Students": strconv.Itoa(sn.ClassGroup.NumStudents),
			},
		})
	}
	sort.Slice(collected, func(i, j int) bool {
		if collected[i].day != collected[j].day {
			return collected[i].day < collected[j].day
		}
		return collected[i].timeslot < collected[j].timeslot
	})
	for _, r := range collected {
		rows = append(rows, r.m)
	}

	return Dataset{Headers: headers, Rows: rows}
}

// RenderPDF renders data into a basic tabular PDF document, the same
// CellFormat-per-header approach as noah-isme's PDFExporter.Render.
func RenderPDF(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("report: pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePDF renders sol to filename as a PDF schedule report.
func WritePDF(sol *solution.Solution, result *preprocessor.Result, filename, title string) error {
	data, err := RenderPDF(BuildDataset(sol, result), title)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
