package evolve

import (
	"math/rand"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// simpleMove redraws one class-group's (day, startingTimeslot) pair,
// re-drawing until the new pair differs from the previous one by the
// configured criterion, then applies it via UpdateDayAndTimeslot so
// double-timeslot-day multiplicity is always reconciled. The source kept
// redrawing while "newDay == prevDay || newTimeslot == prevTimeslot" —
// by De Morgan's law that only exits once BOTH axes have changed
// ("and"); the stated intent was more likely "stop once either axis
// changed" ("or"). Both readings are kept available via
// SimpleMoveRedrawMode rather than picked once and hardcoded — see
// DESIGN.md for why "or" is the default. A bounded attempt count guards
// against a day/timeslot domain too small for the "and" criterion to
// ever be satisfiable.
func simpleMove(sol *solution.Solution, group *preprocessor.ClassGroup, cfg *catalogue.Configuration, redrawMode string, rng *rand.Rand) {
	prevDay, _ := sol.GetClassDay(group)
	prevTs, _ := sol.GetClassStartingTimeslot(group)
	base := group.Course.NumTimeslots

	const maxAttempts = 50
	day, ts := prevDay, prevTs
	for attempt := 0; attempt < maxAttempts; attempt++ {
		day, ts = randomDayAndTimeslot(cfg, base, rng)
		differsDay := day != prevDay
		differsTs := ts != prevTs

		var satisfied bool
		if redrawMode == "and" {
			satisfied = differsDay && differsTs
		} else {
			satisfied = differsDay || differsTs
		}
		if satisfied {
			break
		}
	}
	_ = sol.UpdateDayAndTimeslot(group, day, ts, cfg)
}

// simpleSwap exchanges two class-groups' (day, startingTimeslot) pairs via
// UpdateDayAndTimeslot, leaving rooms and teachers with their owning
// groups — only each group's place in the week moves.
func simpleSwap(sol *solution.Solution, cfg *catalogue.Configuration, a, b *preprocessor.ClassGroup) {
	dayA, errA := sol.GetClassDay(a)
	tsA, errA2 := sol.GetClassStartingTimeslot(a)
	dayB, errB := sol.GetClassDay(b)
	tsB, errB2 := sol.GetClassStartingTimeslot(b)
	if errA != nil || errA2 != nil || errB != nil || errB2 != nil {
		return
	}
	_ = sol.UpdateDayAndTimeslot(a, dayB, tsB, cfg)
	_ = sol.UpdateDayAndTimeslot(b, dayA, tsA, cfg)
}

// mutate applies, with probability rate, exactly one mutator to the
// child — chosen uniformly between SimpleMove and SimpleSwap — acting on
// one (or, for the swap, two) randomly chosen class-groups. §4.6 applies
// a single mutator per child, not one per class-group.
func mutate(sol *solution.Solution, cfg *catalogue.Configuration, rate float64, rng *rand.Rand) {
	if rng.Float64() >= rate {
		return
	}
	groups := sol.Result.ClassGroups
	if len(groups) == 0 {
		return
	}
	if len(groups) < 2 || rng.Intn(2) == 0 {
		g := groups[rng.Intn(len(groups))]
		simpleMove(sol, g, cfg, cfg.SimpleMoveRedrawMode, rng)
		return
	}
	a := groups[rng.Intn(len(groups))]
	b := groups[rng.Intn(len(groups))]
	for b == a {
		b = groups[rng.Intn(len(groups))]
	}
	simpleSwap(sol, cfg, a, b)
}
