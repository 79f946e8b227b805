package loader

import (
	"fmt"
	"strings"
)

// InvalidContents reports a structurally-valid-JSON-but-semantically-wrong
// record, e.g. a course with zero timeslots or a room with negative
// capacity. Distinct from catalogue.ReferenceMissing, which is a dangling
// name reference rather than a bad scalar.
type InvalidContents struct {
	File   string
	Record string
	Reason string
}

func (e *InvalidContents) Error() string {
	return fmt.Sprintf("loader: %s: record %q: %s", e.File, e.Record, e.Reason)
}

// ValidationErrors aggregates every problem found while loading and linking
// the catalogue, so a bad data directory is fixed in one pass rather than
// one re-run per error. Mirrors the teacher's ValidationError aggregation,
// generalized to hold structured errors instead of preformatted strings.
type ValidationErrors struct {
	Errors []error
}

func (v *ValidationErrors) Error() string {
	lines := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		lines[i] = e.Error()
	}
	return fmt.Sprintf("loader: %d validation error(s):\n- %s", len(v.Errors), strings.Join(lines, "\n- "))
}

func (v *ValidationErrors) add(err error) {
	v.Errors = append(v.Errors, err)
}

func (v *ValidationErrors) errOrNil() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}
