// Package catalogue holds the immutable, fully-resolved bundle of academic
// entities the scheduler pipeline reads from. Everything here is built once
// by the loader and never mutated again; a Solution (internal/solution)
// owns its own Sessions, but the Course/Teacher/Room values they point to
// stay shared by identity.
package catalogue

// RoomFeature is a named physical attribute a Room may offer and a Course
// may require (e.g. "projector", "fume hood").
type RoomFeature struct {
	Name string
}

// Room is a physical space classes can be scheduled into.
type Room struct {
	Name     string
	Capacity int
	Features map[string]*RoomFeature
}

// Division owns a set of Courses, Degrees and Rooms. Ownership here is
// informational (derived from the loaded data); the Catalogue is still the
// sole allocator.
type Division struct {
	Name    string
	Courses []*Course
	Degrees []*Degree
	Rooms   []*Room
}

// Degree is a named program of study (e.g. "BS Computer Science").
type Degree struct {
	Name string
}

// Course is one subject in the catalogue. A lab session of a lecture course
// is itself represented as a Course (IsLab true), linked 1:1 from its
// lecture parent via Catalogue.LabOf.
type Course struct {
	Name             string
	Division         *Division
	HasLab           bool
	IsLab            bool
	NumTimeslots     int
	NumUnits         float64
	Prerequisites    map[string]*Course
	CandidateTeachers map[string]*Teacher
	RoomRequirements map[string]*RoomFeature
}

// UnpreferredTimeslot is a (day, timeslot) pair a Teacher would rather not
// teach in. It contributes to SC0 in the cost evaluator but never blocks an
// assignment outright.
type UnpreferredTimeslot struct {
	Day      int
	Timeslot int
}

// Teacher is a person who can be assigned to ClassGroups whose Course lists
// them as a candidate.
type Teacher struct {
	Name                 string
	PreviousLoad         float64
	UnpreferredTimeslots map[UnpreferredTimeslot]bool
	// PotentialCourses is derived after the catalogue is fully linked: the
	// set of courses that list this teacher as a candidate. It is computed
	// once, from the parameter the loader passes in — never left as a
	// self-assignment (see DESIGN.md, "Other Open Question decisions").
	PotentialCourses map[string]*Course
}

// SetPotentialCourses installs the derived candidate-course set for a
// teacher. It exists as an explicit setter (rather than letting callers
// poke the map directly) so the derivation step is a single, auditable
// call site in the loader.
func (t *Teacher) SetPotentialCourses(courses map[string]*Course) {
	t.PotentialCourses = courses
}

// StudentGroup is a cohort of students following one Degree/yearLevel's
// assigned courses, with NumMembers settable exactly once (see SetNumMembers).
type StudentGroup struct {
	ID              string
	Degree          *Degree
	YearLevel       int
	AssignedCourses map[string]*Course
	SubGroups       []*SubStudentGroup

	numMembers int
	numSet     bool
}

// SetNumMembers assigns the group's member count. It may only be called
// once; a second call is a programmer error and panics, matching the
// write-once invariant in the data model.
func (sg *StudentGroup) SetNumMembers(n int) {
	if sg.numSet {
		panic("catalogue: StudentGroup.numMembers assigned more than once for " + sg.ID)
	}
	sg.numMembers = n
	sg.numSet = true
}

// NumMembers returns the group's member count.
func (sg *StudentGroup) NumMembers() int {
	return sg.numMembers
}

// RegularCount returns the number of members not accounted for by any
// SubStudentGroup — the "regular" block in Preprocessor Step A.
func (sg *StudentGroup) RegularCount() int {
	sub := 0
	for _, s := range sg.SubGroups {
		sub += s.NumMembers
	}
	regular := sg.numMembers - sub
	if regular < 0 {
		return 0
	}
	return regular
}

// SubStudentGroup is a GE/elective or irregular sub-cohort carved out of a
// parent StudentGroup. It inherits the parent's assigned courses in
// addition to its own (see Preprocessor Step A for the resulting
// double-counting anomaly the spec asks us to preserve).
type SubStudentGroup struct {
	Parent          *StudentGroup
	AssignedCourses map[string]*Course
	NumMembers      int
}

// Configuration is the typed, already-validated application configuration.
// It mirrors internal/config.Config field-for-field; the catalogue holds a
// pointer to it so every component downstream reaches config through the
// Catalogue rather than importing internal/config directly.
type Configuration struct {
	Semester                   int
	NumUniqueDays              int
	DaysWithDoubleTimeslots    map[int]bool
	NumTimeslots               int
	MaxLectureCapacity         int
	MaxLabCapacity             int
	MaxAnnualTeacherLoad       float64
	MaxSemestralTeacherLoad    float64
	NumGenerations             int
	NumOffspringsPerGeneration int
	CrossoverRate              float64
	MutationRate               float64
	TournamentSelectionMode    string
	SimpleMoveRedrawMode       string
}
