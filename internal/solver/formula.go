package solver

import (
	"github.com/guntisx/sat-solver/pkg/sat"
)

// Simplify reduces a clause set under a partial assignment. Clauses
// with a satisfied literal are dropped; falsified literals are
// filtered out of the clauses that remain; unassigned literals pass
// through untouched. Relative clause order is preserved and the input
// is never mutated.
//
// A clause whose literals were all falsified is kept as an empty
// clause rather than dropped: its presence is the unsatisfiability
// signal the search acts on.
func Simplify(clauses []sat.Clause, assignment sat.Assignment) []sat.Clause {
	simplified := make([]sat.Clause, 0, len(clauses))
	for _, clause := range clauses {
		satisfied := false
		kept := make(sat.Clause, 0, len(clause))
		for _, lit := range clause {
			value, bound := assignment[lit.Var()]
			if !bound {
				kept = append(kept, lit)
				continue
			}
			if lit.SatisfiedBy(value) {
				satisfied = true
				break
			}
			// Falsified literal cannot help satisfy the disjunction.
		}
		if !satisfied {
			simplified = append(simplified, kept)
		}
	}
	return simplified
}
