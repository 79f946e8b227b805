package catalogue

import "fmt"

// Catalogue is the read-only, fully-resolved bundle every other pipeline
// stage consumes. It is built once by internal/loader and never mutated
// after that — every lookup below reads from slices/maps populated during
// construction.
type Catalogue struct {
	Divisions     []*Division
	Degrees       []*Degree
	Courses       []*Course
	Rooms         []*Room
	RoomFeatures  []*RoomFeature
	Teachers      []*Teacher
	StudentGroups []*StudentGroup

	// LabOf maps a lecture Course to its paired lab Course. A course with
	// HasLab true must have an entry here; the loader enforces this.
	LabOf map[*Course]*Course

	Config *Configuration

	divisionByName map[string]*Division
	degreeByName   map[string]*Degree
	courseByName   map[string]*Course
	roomByName     map[string]*Room
	featureByName  map[string]*RoomFeature
	teacherByName  map[string]*Teacher
}

// New builds an empty Catalogue with its lookup indexes initialised. The
// loader appends to the exported slices and calls Reindex after each
// loading stage and once more when construction is complete.
func New() *Catalogue {
	return &Catalogue{
		LabOf:          make(map[*Course]*Course),
		divisionByName: make(map[string]*Division),
		degreeByName:   make(map[string]*Degree),
		courseByName:   make(map[string]*Course),
		roomByName:     make(map[string]*Room),
		featureByName:  make(map[string]*RoomFeature),
		teacherByName:  make(map[string]*Teacher),
	}
}

// Reindex (re)builds the name-indexed lookups from the current slices. The
// loader calls this after each batch of entities is appended, so lookups used
// during cross-reference resolution (e.g. resolving a prerequisite by name)
// stay accurate.
func (c *Catalogue) Reindex() {
	c.divisionByName = make(map[string]*Division, len(c.Divisions))
	for _, d := range c.Divisions {
		c.divisionByName[d.Name] = d
	}
	c.degreeByName = make(map[string]*Degree, len(c.Degrees))
	for _, d := range c.Degrees {
		c.degreeByName[d.Name] = d
	}
	c.courseByName = make(map[string]*Course, len(c.Courses))
	for _, course := range c.Courses {
		c.courseByName[course.Name] = course
	}
	c.roomByName = make(map[string]*Room, len(c.Rooms))
	for _, r := range c.Rooms {
		c.roomByName[r.Name] = r
	}
	c.featureByName = make(map[string]*RoomFeature, len(c.RoomFeatures))
	for _, f := range c.RoomFeatures {
		c.featureByName[f.Name] = f
	}
	c.teacherByName = make(map[string]*Teacher, len(c.Teachers))
	for _, t := range c.Teachers {
		c.teacherByName[t.Name] = t
	}
}

func (c *Catalogue) DivisionByName(name string) (*Division, bool) {
	d, ok := c.divisionByName[name]
	return d, ok
}

func (c *Catalogue) DegreeByName(name string) (*Degree, bool) {
	d, ok := c.degreeByName[name]
	return d, ok
}

func (c *Catalogue) CourseByName(name string) (*Course, bool) {
	course, ok := c.courseByName[name]
	return course, ok
}

func (c *Catalogue) RoomByName(name string) (*Room, bool) {
	r, ok := c.roomByName[name]
	return r, ok
}

func (c *Catalogue) RoomFeatureByName(name string) (*RoomFeature, bool) {
	f, ok := c.featureByName[name]
	return f, ok
}

func (c *Catalogue) TeacherByName(name string) (*Teacher, bool) {
	t, ok := c.teacherByName[name]
	return t, ok
}

// LabFor returns the paired lab Course for a lecture course, if any.
func (c *Catalogue) LabFor(lecture *Course) (*Course, bool) {
	lab, ok := c.LabOf[lecture]
	return lab, ok
}

// ReferenceMissing is returned by loader validation whenever a named
// reference (prerequisite, candidate teacher, room feature, division,
// degree, course) does not resolve to an entity already in the Catalogue.
type ReferenceMissing struct {
	EntityKind string // e.g. "course", "teacher", "room feature"
	Name       string
	From       string // what was referencing it, for a useful message
}

func (e *ReferenceMissing) Error() string {
	return fmt.Sprintf("catalogue: %s %q referenced by %q does not exist", e.EntityKind, e.Name, e.From)
}

// Stats is a small snapshot of catalogue size, used for the load-complete
// log line (see internal/telemetry and cmd/timetabler).
type Stats struct {
	Divisions     int
	Degrees       int
	Courses       int
	Rooms         int
	RoomFeatures  int
	Teachers      int
	StudentGroups int
}

// Stats computes a Stats snapshot of the catalogue.
func (c *Catalogue) Stats() Stats {
	return Stats{
		Divisions:     len(c.Divisions),
		Degrees:       len(c.Degrees),
		Courses:       len(c.Courses),
		Rooms:         len(c.Rooms),
		RoomFeatures:  len(c.RoomFeatures),
		Teachers:      len(c.Teachers),
		StudentGroups: len(c.StudentGroups),
	}
}
