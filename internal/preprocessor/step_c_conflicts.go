package preprocessor

// BuildConflictMap is Step C: for every student cohort, collect the set of
// distinct class-groups it touches and mark every pair as conflicting,
// since one cohort cannot sit in two classes at once — and, since every
// session of a group shares that group's students, the conflict lives at
// the class-group level, not the individual session. Grounded on the
// teacher's graph/builder.go addSameClassConflicts/addSameSectionConflicts
// passes and its connectAllInClique helper, generalized from section
// numbers to cohort keys spanning regular, sub and irregular groups.
func BuildConflictMap(groups []*ClassGroup) *ConflictMap {
	cohortGroups := make(map[string][]*ClassGroup)
	for _, g := range groups {
		seenCohorts := make(map[string]bool)
		for _, m := range g.Members {
			key := m.cohortKey()
			if seenCohorts[key] {
				continue
			}
			seenCohorts[key] = true
			cohortGroups[key] = append(cohortGroups[key], g)
		}
	}

	m := newConflictMap()
	for _, groupsForCohort := range cohortGroups {
		connectAllInClique(m, groupsForCohort)
	}
	return m
}

// connectAllInClique pairwise-conflicts every class-group in the slice,
// the same clique-builder shape as the teacher's graph.connectAllInClique.
func connectAllInClique(m *ConflictMap, groups []*ClassGroup) {
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			m.add(groups[i], groups[j])
		}
	}
}
