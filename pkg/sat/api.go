package sat

// Var identifies a propositional variable by its 1-based index.
type Var int

// Lit is a literal in the DIMACS convention: a nonzero signed integer
// whose absolute value is the variable index and whose sign is the
// polarity. Zero is reserved as the clause terminator in the text
// format and never appears inside a Clause.
type Lit int

// Var returns the variable the literal refers to.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Positive reports whether the literal is unnegated.
func (l Lit) Positive() bool {
	return l > 0
}

// SatisfiedBy reports whether the literal evaluates true when its
// variable is bound to value.
func (l Lit) SatisfiedBy(value bool) bool {
	return l.Positive() == value
}

// Clause is a disjunction of literals. A clause with no literals is a
// contradiction: it cannot be satisfied under any assignment.
type Clause []Lit

// Formula is a conjunction of clauses over the variables 1..NumVars.
// A Formula is built once from input and never mutated afterwards.
type Formula struct {
	Clauses []Clause
	NumVars int
}

// Satisfied reports whether every clause of the formula has at least
// one literal that evaluates true under the given assignment.
// Unbound variables are treated as false.
func (f Formula) Satisfied(assignment Assignment) bool {
	for _, clause := range f.Clauses {
		satisfied := false
		for _, lit := range clause {
			if lit.SatisfiedBy(assignment.Value(lit.Var())) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Assignment maps variables to truth values. A variable absent from
// the map is unassigned. Assignments are extended by copy, never in
// place, so sibling branches of the search can never observe each
// other's bindings.
type Assignment map[Var]bool

// Extend returns a copy of the assignment with one additional binding.
// The receiver is left untouched.
func (a Assignment) Extend(v Var, value bool) Assignment {
	extended := make(Assignment, len(a)+1)
	for bound, val := range a {
		extended[bound] = val
	}
	extended[v] = value
	return extended
}

// Value returns the truth value bound to v, defaulting to false when
// v is unassigned.
func (a Assignment) Value(v Var) bool {
	return a[v]
}

// NotSatisfiable is returned by Solve when no assignment over the
// formula's variables can satisfy every clause.
type NotSatisfiable struct{}

func (NotSatisfiable) Error() string {
	return "formula not satisfiable"
}

// Stats counts the work performed during a single search.
type Stats struct {
	Decisions        int64
	UnitPropagations int64
	PureLiterals     int64
	Conflicts        int64
}
