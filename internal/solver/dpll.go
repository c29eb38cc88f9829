package solver

import (
	"github.com/guntisx/sat-solver/pkg/sat"
)

// dpll is the recursive search. Each call owns its assignment copy;
// the clause slice handed down is never mutated, only replaced by the
// result of Simplify on the next level.
func (s *Solver) dpll(clauses []sat.Clause, assignment sat.Assignment) (sat.Assignment, bool) {
	incoming := clauses
	clauses = Simplify(clauses, assignment)

	// Every original clause is satisfied once the set runs empty.
	if len(clauses) == 0 {
		return assignment, true
	}

	// An empty clause survives simplification only when all of its
	// literals evaluated false, so no extension of the assignment can
	// help.
	for _, clause := range clauses {
		if len(clause) == 0 {
			s.stats.Conflicts++
			s.tracer.Trace(searchPosition{assignment: assignment, clauses: incoming})
			return nil, false
		}
	}

	if lit, ok := findUnit(clauses); ok {
		s.stats.UnitPropagations++
		return s.dpll(clauses, assignment.Extend(lit.Var(), lit.Positive()))
	}

	if lit, ok := findPure(clauses); ok {
		s.stats.PureLiterals++
		return s.dpll(clauses, assignment.Extend(lit.Var(), lit.Positive()))
	}

	v, ok := chooseVariable(clauses, assignment)
	if !ok {
		// Nothing left to bind; only reachable when every surviving
		// clause already emptied, which the checks above normally
		// catch first.
		return assignment, true
	}

	s.stats.Decisions++
	for _, value := range [2]bool{true, false} {
		if model, ok := s.dpll(clauses, assignment.Extend(v, value)); ok {
			return model, true
		}
	}
	return nil, false
}

// findUnit returns the forced literal of the first clause of length
// one, in clause order.
func findUnit(clauses []sat.Clause) (sat.Lit, bool) {
	for _, clause := range clauses {
		if len(clause) == 1 {
			return clause[0], true
		}
	}
	return 0, false
}

// findPure returns a literal whose variable occurs with a single
// polarity across all clauses. Candidates are considered in the order
// their variables first appear in the clause scan, so the choice is
// deterministic.
func findPure(clauses []sat.Clause) (sat.Lit, bool) {
	type polarity struct {
		pos, neg bool
	}
	seen := make(map[sat.Var]*polarity)
	var order []sat.Var
	for _, clause := range clauses {
		for _, lit := range clause {
			v := lit.Var()
			p, ok := seen[v]
			if !ok {
				p = &polarity{}
				seen[v] = p
				order = append(order, v)
			}
			if lit.Positive() {
				p.pos = true
			} else {
				p.neg = true
			}
		}
	}
	for _, v := range order {
		p := seen[v]
		if p.pos != p.neg {
			if p.pos {
				return sat.Lit(v), true
			}
			return -sat.Lit(v), true
		}
	}
	return 0, false
}

// chooseVariable picks the unassigned variable with the most literal
// occurrences across the surviving clauses. Ties go to the variable
// encountered first in the scan.
func chooseVariable(clauses []sat.Clause, assignment sat.Assignment) (sat.Var, bool) {
	counts := make(map[sat.Var]int)
	var order []sat.Var
	for _, clause := range clauses {
		for _, lit := range clause {
			v := lit.Var()
			if _, bound := assignment[v]; bound {
				continue
			}
			if _, ok := counts[v]; !ok {
				order = append(order, v)
			}
			counts[v]++
		}
	}
	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, true
}

// searchPosition snapshots the search state for tracing. clauses is
// the clause set before simplification so the falsified clauses are
// reported with their literals intact.
type searchPosition struct {
	assignment sat.Assignment
	clauses    []sat.Clause
}

func (p searchPosition) Assignment() sat.Assignment {
	return p.assignment
}

func (p searchPosition) Conflicts() []sat.Clause {
	var conflicts []sat.Clause
	for _, clause := range p.clauses {
		falsified := true
		for _, lit := range clause {
			value, bound := p.assignment[lit.Var()]
			if !bound || lit.SatisfiedBy(value) {
				falsified = false
				break
			}
		}
		if falsified {
			conflicts = append(conflicts, clause)
		}
	}
	return conflicts
}
