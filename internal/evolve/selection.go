package evolve

import (
	"math/rand"

	"coursetimetabler/internal/evaluator"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// costOf evaluates (or reuses the cached cost of) an individual.
func costOf(sol *solution.Solution, conflicts *preprocessor.ConflictMap) int {
	if cost, ok := sol.GetCost(); ok {
		return cost
	}
	return evaluator.Evaluate(sol, conflicts).Total()
}

// tournamentSelect runs a 2-way tournament and returns the winner. mode
// controls which side wins a comparison: "max" (the default, matching the
// source) keeps the HIGHER-cost contender, which is backwards for a
// minimization problem — it is kept as the default to stay faithful to the
// behavior the spec's Open Questions ask us to preserve rather than
// silently fix. Setting tournament_selection_mode to "min" selects the
// lower-cost (actually-better) contender instead. See DESIGN.md.
func tournamentSelect(pop *Population, conflicts *preprocessor.ConflictMap, mode string, rng *rand.Rand) *solution.Solution {
	a := pop.Individuals[rng.Intn(len(pop.Individuals))]
	b := pop.Individuals[rng.Intn(len(pop.Individuals))]
	costA, costB := costOf(a, conflicts), costOf(b, conflicts)

	if mode == "min" {
		if costA <= costB {
			return a
		}
		return b
	}
	// "max" (default): the preserved inversion.
	if costA >= costB {
		return a
	}
	return b
}

// worstIndex returns the index of the highest-cost (worst) individual, the
// one steady-state replacement evicts each generation.
func worstIndex(pop *Population, conflicts *preprocessor.ConflictMap) int {
	worst := 0
	worstCost := costOf(pop.Individuals[0], conflicts)
	for i, ind := range pop.Individuals {
		c := costOf(ind, conflicts)
		if c > worstCost {
			worstCost = c
			worst = i
		}
	}
	return worst
}

// bestIndividual returns whichever individual in the population currently
// has the lowest cost.
func bestIndividual(pop *Population, conflicts *preprocessor.ConflictMap) *solution.Solution {
	best := pop.Individuals[0]
	bestCost := costOf(best, conflicts)
	for _, ind := range pop.Individuals[1:] {
		if c := costOf(ind, conflicts); c < bestCost {
			bestCost = c
			best = ind
		}
	}
	return best
}
