package loader

import (
	"strconv"

	"coursetimetabler/internal/catalogue"
)

// builder links raw JSON records into a catalogue.Catalogue in two passes:
// pass one creates every entity with its scalar fields populated, pass two
// resolves name references (prerequisites, candidate teachers, room
// features, lab pairings, study-plan course lists) now that every name is
// known. This mirrors the teacher's DomainBuilder, generalized from the
// teacher's course/section/teacher trio to the full spec data model.
type builder struct {
	cat    *catalogue.Catalogue
	errs   *ValidationErrors
	source string // current file, for error messages
}

func newBuilder() *builder {
	return &builder{cat: catalogue.New(), errs: &ValidationErrors{}}
}

func (b *builder) addRoomFeatures(raws []roomFeatureRaw) {
	b.source = "room_features.json"
	for _, r := range raws {
		b.cat.RoomFeatures = append(b.cat.RoomFeatures, &catalogue.RoomFeature{Name: r.Name})
	}
}

func (b *builder) addDivisions(raws []divisionRaw) {
	b.source = "divisions.json"
	for _, r := range raws {
		b.cat.Divisions = append(b.cat.Divisions, &catalogue.Division{Name: r.Name})
	}
}

func (b *builder) addDegrees(raws []degreeRaw) {
	b.source = "degrees.json"
	for _, r := range raws {
		degree := &catalogue.Degree{Name: r.Name}
		b.cat.Degrees = append(b.cat.Degrees, degree)
		if div, ok := b.cat.DivisionByName(r.Division); ok {
			div.Degrees = append(div.Degrees, degree)
		} else {
			b.errs.add(&catalogue.ReferenceMissing{EntityKind: "division", Name: r.Division, From: "degree " + r.Name})
		}
	}
}

func (b *builder) addRooms(raws []roomRaw) {
	b.source = "rooms.json"
	for _, r := range raws {
		if r.Capacity <= 0 {
			b.errs.add(&InvalidContents{File: b.source, Record: r.Name, Reason: "capacity must be positive"})
			continue
		}
		room := &catalogue.Room{Name: r.Name, Capacity: r.Capacity, Features: map[string]*catalogue.RoomFeature{}}
		for _, fname := range r.Features {
			if f, ok := b.cat.RoomFeatureByName(fname); ok {
				room.Features[fname] = f
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "room feature", Name: fname, From: "room " + r.Name})
			}
		}
		b.cat.Rooms = append(b.cat.Rooms, room)
		if div, ok := b.cat.DivisionByName(r.Division); ok {
			div.Rooms = append(div.Rooms, room)
		} else {
			b.errs.add(&catalogue.ReferenceMissing{EntityKind: "division", Name: r.Division, From: "room " + r.Name})
		}
	}
}

func (b *builder) addTeachers(raws []teacherRaw) {
	b.source = "teachers.json"
	for _, r := range raws {
		unpreferred := make(map[catalogue.UnpreferredTimeslot]bool, len(r.UnpreferredTimeslots))
		for _, u := range r.UnpreferredTimeslots {
			unpreferred[catalogue.UnpreferredTimeslot{Day: u.Day, Timeslot: u.Timeslot}] = true
		}
		b.cat.Teachers = append(b.cat.Teachers, &catalogue.Teacher{
			Name:                 r.Name,
			PreviousLoad:         r.PreviousLoad,
			UnpreferredTimeslots: unpreferred,
		})
	}
}

// addCourses creates every Course with scalars populated but leaves
// Prerequisites/CandidateTeachers/RoomRequirements/LabOf for linkCourses,
// since a course may reference a course defined later in the same file.
func (b *builder) addCourses(raws []courseRaw) map[string]courseRaw {
	b.source = "courses.json"
	byName := make(map[string]courseRaw, len(raws))
	for _, r := range raws {
		if r.NumTimeslots <= 0 {
			b.errs.add(&InvalidContents{File: b.source, Record: r.Name, Reason: "num_timeslots must be positive"})
			continue
		}
		course := &catalogue.Course{
			Name:              r.Name,
			HasLab:            r.HasLab,
			IsLab:             r.IsLab,
			NumTimeslots:      r.NumTimeslots,
			NumUnits:          r.NumUnits,
			Prerequisites:     map[string]*catalogue.Course{},
			CandidateTeachers: map[string]*catalogue.Teacher{},
			RoomRequirements:  map[string]*catalogue.RoomFeature{},
		}
		if div, ok := b.cat.DivisionByName(r.Division); ok {
			course.Division = div
			div.Courses = append(div.Courses, course)
		} else {
			b.errs.add(&catalogue.ReferenceMissing{EntityKind: "division", Name: r.Division, From: "course " + r.Name})
		}
		b.cat.Courses = append(b.cat.Courses, course)
		byName[r.Name] = r
	}
	b.cat.Reindex()
	return byName
}

func (b *builder) linkCourses(byName map[string]courseRaw) {
	b.source = "courses.json"
	for name, r := range byName {
		course, ok := b.cat.CourseByName(name)
		if !ok {
			continue // already reported as invalid in addCourses
		}
		for _, p := range r.Prerequisites {
			if prereq, ok := b.cat.CourseByName(p); ok {
				course.Prerequisites[p] = prereq
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "course", Name: p, From: "course " + name + " prerequisites"})
			}
		}
		for _, t := range r.CandidateTeachers {
			if teacher, ok := b.cat.TeacherByName(t); ok {
				course.CandidateTeachers[t] = teacher
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "teacher", Name: t, From: "course " + name + " candidate_teachers"})
			}
		}
		for _, f := range r.RoomRequirements {
			if feature, ok := b.cat.RoomFeatureByName(f); ok {
				course.RoomRequirements[f] = feature
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "room feature", Name: f, From: "course " + name + " room_requirements"})
			}
		}
		if r.HasLab && r.LabOf == "" {
			if lab, ok := b.cat.CourseByName(name + " Lab"); ok {
				b.cat.LabOf[course] = lab
			} else {
				b.errs.add(&InvalidContents{File: b.source, Record: name, Reason: "has_lab is true but no matching lab course found"})
			}
		}
		if r.LabOf != "" {
			if lecture, ok := b.cat.CourseByName(r.LabOf); ok {
				b.cat.LabOf[lecture] = course
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "course", Name: r.LabOf, From: "course " + name + " lab_of"})
			}
		}
	}

	// derive Teacher.PotentialCourses now that every course's candidate
	// list is resolved — the parameter passed in here is the actual
	// derived set, never the teacher's own stale field (see DESIGN.md).
	potential := make(map[*catalogue.Teacher]map[string]*catalogue.Course, len(b.cat.Teachers))
	for _, t := range b.cat.Teachers {
		potential[t] = map[string]*catalogue.Course{}
	}
	for _, course := range b.cat.Courses {
		for tname, teacher := range course.CandidateTeachers {
			_ = tname
			potential[teacher][course.Name] = course
		}
	}
	for _, t := range b.cat.Teachers {
		t.SetPotentialCourses(potential[t])
	}
}

func (b *builder) addStudyPlans(raws []studyPlanRaw) map[string][]string {
	b.source = "study_plans.json"
	plans := make(map[string][]string, len(raws))
	for _, r := range raws {
		key := studyPlanKey(r.Degree, r.YearLevel)
		plans[key] = r.AssignedCourses
	}
	return plans
}

func studyPlanKey(degree string, yearLevel int) string {
	return degree + "#" + strconv.Itoa(yearLevel)
}

func (b *builder) addStudentGroups(raws []studentGroupRaw, plans map[string][]string) map[string]*catalogue.StudentGroup {
	b.source = "student_groups.json"
	byID := make(map[string]*catalogue.StudentGroup, len(raws))
	for _, r := range raws {
		degree, ok := b.cat.DegreeByName(r.Degree)
		if !ok {
			b.errs.add(&catalogue.ReferenceMissing{EntityKind: "degree", Name: r.Degree, From: "student group " + r.ID})
			continue
		}
		group := &catalogue.StudentGroup{
			ID:              r.ID,
			Degree:          degree,
			YearLevel:       r.YearLevel,
			AssignedCourses: map[string]*catalogue.Course{},
		}
		for _, cname := range plans[studyPlanKey(r.Degree, r.YearLevel)] {
			if course, ok := b.cat.CourseByName(cname); ok {
				group.AssignedCourses[cname] = course
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "course", Name: cname, From: "study plan " + studyPlanKey(r.Degree, r.YearLevel)})
			}
		}
		group.SetNumMembers(r.NumMembers)
		b.cat.StudentGroups = append(b.cat.StudentGroups, group)
		byID[r.ID] = group
	}
	return byID
}

// addSubGroups links both GE/elective carve-outs and irregular cohorts onto
// their parent StudentGroup. Per the spec's preserved Preprocessor Step A
// anomaly, a sub-group's AssignedCourses is counted *in addition to* the
// parent's full roster rather than subtracted from it — intentionally,
// see DESIGN.md.
func (b *builder) addSubGroups(raws []subStudentGroupRaw, byID map[string]*catalogue.StudentGroup, file string) {
	b.source = file
	for _, r := range raws {
		parent, ok := byID[r.Parent]
		if !ok {
			b.errs.add(&catalogue.ReferenceMissing{EntityKind: "student group", Name: r.Parent, From: file})
			continue
		}
		sub := &catalogue.SubStudentGroup{
			Parent:          parent,
			AssignedCourses: map[string]*catalogue.Course{},
			NumMembers:      r.NumMembers,
		}
		for _, cname := range r.AssignedCourses {
			if course, ok := b.cat.CourseByName(cname); ok {
				sub.AssignedCourses[cname] = course
			} else {
				b.errs.add(&catalogue.ReferenceMissing{EntityKind: "course", Name: cname, From: file + " (" + r.Parent + ")"})
			}
		}
		parent.SubGroups = append(parent.SubGroups, sub)
	}
}
