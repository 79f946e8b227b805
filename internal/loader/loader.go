// Package loader reads the on-disk JSON data directory and links it into a
// catalogue.Catalogue, collecting every structural and referential problem
// into one ValidationErrors rather than failing on the first bad record —
// matching the teacher's validator.go philosophy of a single fix-everything
// pass over a bad dataset.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/config"
)

// Load reads every JSON file the catalogue needs from dataDir and returns a
// fully linked, reindexed Catalogue. cfg is folded in as Catalogue.Config
// so every downstream stage reaches configuration through the catalogue.
func Load(dataDir string, cfg *config.Config) (*catalogue.Catalogue, error) {
	b := newBuilder()

	var roomFeatures []roomFeatureRaw
	if err := readJSON(dataDir, "room_features.json", &roomFeatures); err != nil {
		return nil, err
	}
	b.addRoomFeatures(roomFeatures)

	var divisions []divisionRaw
	if err := readJSON(dataDir, "divisions.json", &divisions); err != nil {
		return nil, err
	}
	b.addDivisions(divisions)
	b.cat.Reindex()

	var degrees []degreeRaw
	if err := readJSON(dataDir, "degrees.json", &degrees); err != nil {
		return nil, err
	}
	b.addDegrees(degrees)
	b.cat.Reindex()

	var rooms []roomRaw
	if err := readJSON(dataDir, "rooms.json", &rooms); err != nil {
		return nil, err
	}
	b.addRooms(rooms)

	var teachers []teacherRaw
	if err := readJSON(dataDir, "teachers.json", &teachers); err != nil {
		return nil, err
	}
	b.addTeachers(teachers)
	b.cat.Reindex()

	var courses []courseRaw
	if err := readJSON(dataDir, "courses.json", &courses); err != nil {
		return nil, err
	}
	byName := b.addCourses(courses)
	b.linkCourses(byName)
	b.cat.Reindex()

	var plans []studyPlanRaw
	if err := readJSON(dataDir, "study_plans.json", &plans); err != nil {
		return nil, err
	}
	planIndex := b.addStudyPlans(plans)

	var studentGroups []studentGroupRaw
	if err := readJSON(dataDir, "student_groups.json", &studentGroups); err != nil {
		return nil, err
	}
	groupsByID := b.addStudentGroups(studentGroups, planIndex)

	var geElectives []subStudentGroupRaw
	if err := readJSON(dataDir, "regular_student_ges_electives.json", &geElectives); err != nil {
		return nil, err
	}
	b.addSubGroups(geElectives, groupsByID, "regular_student_ges_electives.json")

	var irregular []subStudentGroupRaw
	if err := readJSON(dataDir, "irregular_student_groups.json", &irregular); err != nil {
		return nil, err
	}
	b.addSubGroups(irregular, groupsByID, "irregular_student_groups.json")

	b.cat.Reindex()

	b.cat.Config = &catalogue.Configuration{
		Semester:                   cfg.Semester,
		NumUniqueDays:              cfg.NumUniqueDays,
		DaysWithDoubleTimeslots:    cfg.DaysWithDoubleTimeslotsSet(),
		NumTimeslots:               cfg.NumTimeslots,
		MaxLectureCapacity:         cfg.MaxLectureCapacity,
		MaxLabCapacity:             cfg.MaxLabCapacity,
		MaxAnnualTeacherLoad:       cfg.MaxAnnualTeacherLoad,
		MaxSemestralTeacherLoad:    cfg.MaxSemestralTeacherLoad,
		NumGenerations:             cfg.NumGenerations,
		NumOffspringsPerGeneration: cfg.NumOffspringsPerGeneration,
		CrossoverRate:              cfg.CrossoverRate,
		MutationRate:               cfg.MutationRate,
		TournamentSelectionMode:    cfg.TournamentSelectionMode,
		SimpleMoveRedrawMode:       cfg.SimpleMoveRedrawMode,
	}

	if len(b.cat.Divisions) == 0 {
		b.errs.add(&InvalidContents{File: "divisions.json", Record: "*", Reason: "no divisions loaded"})
	}
	if len(b.cat.Courses) == 0 {
		b.errs.add(&InvalidContents{File: "courses.json", Record: "*", Reason: "no courses loaded"})
	}
	if len(b.cat.Rooms) == 0 {
		b.errs.add(&InvalidContents{File: "rooms.json", Record: "*", Reason: "no rooms loaded"})
	}
	if len(b.cat.Teachers) == 0 {
		b.errs.add(&InvalidContents{File: "teachers.json", Record: "*", Reason: "no teachers loaded"})
	}

	if err := b.errs.errOrNil(); err != nil {
		return nil, err
	}
	return b.cat, nil
}

func readJSON(dataDir, file string, into any) error {
	path := filepath.Join(dataDir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return nil
}
