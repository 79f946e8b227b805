package preprocessor

import (
	"sort"
	"strings"
)

// groupKey builds a stable identifier for a ClassGroup from its course name
// and the sorted set of cohort keys feeding it, so rebuilding from the same
// catalogue always yields the same ClassGroup IDs. Adapted from the
// teacher's utils.SectionGroupKey (sort, then join).
func groupKey(courseName string, cohortKeys []string) string {
	if len(cohortKeys) == 0 {
		return courseName + "#empty"
	}
	sorted := make([]string, len(cohortKeys))
	copy(sorted, cohortKeys)
	sort.Strings(sorted)
	return courseName + "#" + strings.Join(sorted, "-")
}
