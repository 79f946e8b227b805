package preprocessor

import "coursetimetabler/internal/catalogue"

// ProjectEnrollment is Step A: for every StudentGroup and SubStudentGroup in
// the catalogue, project how many of its members take each assigned
// course. Grounded on original_source/.../preprocessor.cpp's
// numCourseEnrolleesMap loop, generalized from a single fixed cohort to the
// full regular/sub/irregular cohort model.
//
// Deliberately preserved anomaly: a regular StudentGroup's contribution
// uses its full NumMembers(), not RegularCount() (members minus those
// carved into a SubGroup). A student in a SubGroup is therefore projected
// twice — once under the parent's full roster, once under their SubGroup —
// for any course both happen to carry. See DESIGN.md for why this matches
// the source behavior rather than being fixed here.
func ProjectEnrollment(cat *catalogue.Catalogue) []Enrollment {
	var out []Enrollment

	for _, sg := range cat.StudentGroups {
		for _, course := range sg.AssignedCourses {
			out = append(out, Enrollment{Regular: sg, Course: course, Count: sg.NumMembers()})
		}
		for _, sub := range sg.SubGroups {
			for _, course := range sub.AssignedCourses {
				out = append(out, Enrollment{Sub: sub, Course: course, Count: sub.NumMembers})
			}
		}
	}
	return out
}

// byCourse groups enrollments by the course they project onto.
func byCourse(enrollments []Enrollment) map[*catalogue.Course][]Enrollment {
	m := make(map[*catalogue.Course][]Enrollment)
	for _, e := range enrollments {
		m[e.Course] = append(m[e.Course], e)
	}
	return m
}
