package evolve

import (
	"math/rand"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/evaluator"
	"coursetimetabler/internal/preprocessor"
	"coursetimetabler/internal/solution"
)

// ProgressFunc is called once per generation, letting the CLI print a
// staged progress line the way the teacher's cmd/api/main.go prints its
// [PASO N] stages.
type ProgressFunc func(generation int, bestCost int)

// Run executes the steady-state GA described in SPEC_FULL.md: start from a
// random population of NumOffspringsPerGeneration individuals, then for
// NumGenerations rounds, breed one child via tournament selection and
// crossover-or-clone, mutate it, and replace the current worst individual
// with it — stopping early the moment any individual reaches cost 0.
// Grounded on smeggmann99-Arrango/core/solver/solver.go's Solve loop
// (evaluate, sort, reproduce, early-exit at fitness 0), adapted from
// Arrango's generational truncation-selection to steady-state replacement
// since this model mutates one or two class-groups at a time rather than
// regenerating whole timetables.
// shouldStop, if non-nil, is polled once per generation (in addition to the
// fixed NumGenerations budget) so a caller can impose a wall-clock
// deadline — see the CLI's --max-duration flag — without this package
// importing context or time itself.
func Run(cat *catalogue.Catalogue, result *preprocessor.Result, teacherAssignment map[*preprocessor.ClassGroup]*catalogue.Teacher, rng *rand.Rand, progress ProgressFunc, shouldStop func() bool) *solution.Solution {
	cfg := cat.Config
	pop := InitialPopulation(cat, result, teacherAssignment, cfg.NumOffspringsPerGeneration, rng)
	for _, ind := range pop.Individuals {
		evaluator.Evaluate(ind, result.Conflicts)
	}

	best := bestIndividual(pop, result.Conflicts)
	bestCost, _ := best.GetCost()
	if progress != nil {
		progress(0, bestCost)
	}
	if bestCost == 0 {
		return best
	}

	for gen := 1; gen <= cfg.NumGenerations; gen++ {
		p1 := tournamentSelect(pop, result.Conflicts, cfg.TournamentSelectionMode, rng)
		p2 := tournamentSelect(pop, result.Conflicts, cfg.TournamentSelectionMode, rng)

		var child *solution.Solution
		if rng.Float64() < cfg.CrossoverRate {
			child = crossover(p1, p2, cfg, rng)
		} else {
			child = clonedParent(p1, p2, rng)
		}
		mutate(child, cfg, cfg.MutationRate, rng)
		evaluator.Evaluate(child, result.Conflicts)

		evict := worstIndex(pop, result.Conflicts)
		pop.Individuals[evict] = child

		current := bestIndividual(pop, result.Conflicts)
		currentCost, _ := current.GetCost()
		if currentCost < bestCost {
			bestCost = currentCost
			best = current
		}
		if progress != nil {
			progress(gen, bestCost)
		}
		if bestCost == 0 {
			break
		}
		if shouldStop != nil && shouldStop() {
			break
		}
	}

	return best
}
