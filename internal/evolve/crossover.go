package evolve

import (
	"math/rand"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/solution"
)

// crossover produces a child by uniform per-class-group crossover: for
// every group, a coin-flip chooses the parent, and the child inherits
// that parent's (day, startingTimeslot) for the group via
// UpdateDayAndTimeslot, matching §4.6. Room and teacher stay with child's
// base parent — only the placement moves.
func crossover(p1, p2 *solution.Solution, cfg *catalogue.Configuration, rng *rand.Rand) *solution.Solution {
	child := p1.Clone()
	for _, g := range p1.Result.ClassGroups {
		if rng.Intn(2) == 0 {
			continue // keep p1's placement, already present in child
		}
		day, errDay := p2.GetClassDay(g)
		ts, errTs := p2.GetClassStartingTimeslot(g)
		if errDay != nil || errTs != nil {
			continue
		}
		_ = child.UpdateDayAndTimeslot(g, day, ts, cfg)
	}
	return child
}

// clonedParent returns a clone of a coin-flipped parent — the "no
// crossover" branch of §4.6's reproduction step.
func clonedParent(p1, p2 *solution.Solution, rng *rand.Rand) *solution.Solution {
	if rng.Intn(2) == 0 {
		return p1.Clone()
	}
	return p2.Clone()
}
