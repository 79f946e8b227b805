package preprocessor

import "coursetimetabler/internal/catalogue"

// Run executes Steps A, B and C in sequence and returns the bundle the rest
// of the pipeline (teacher assignment, solution model, cost evaluator)
// consumes.
func Run(cat *catalogue.Catalogue) (*Result, error) {
	enrollments := ProjectEnrollment(cat)

	groups, sessions, err := BuildClassGroups(cat, enrollments)
	if err != nil {
		return nil, err
	}

	conflicts := BuildConflictMap(groups)

	return &Result{
		ClassGroups:   groups,
		ClassSessions: sessions,
		Conflicts:     conflicts,
	}, nil
}
