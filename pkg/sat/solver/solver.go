package solver

import (
	"context"
	"errors"

	"github.com/guntisx/sat-solver/internal/solver"
	"github.com/guntisx/sat-solver/pkg/sat"
)

// Solution is returned by Solve when the search executed successfully.
// A successful execution can still end in an unsatisfiable verdict,
// reported through Error.
type Solution struct {
	err        error
	assignment sat.Assignment
	numVars    int
	stats      sat.Stats
}

// Error returns sat.NotSatisfiable when the formula has no satisfying
// assignment, and nil otherwise.
func (s *Solution) Error() error {
	return s.err
}

// Value returns the truth value of v in the satisfying assignment.
// Variables the search left unassigned default to false.
func (s *Solution) Value(v sat.Var) bool {
	return s.assignment.Value(v)
}

// Assignment returns a copy of the complete satisfying assignment,
// with a binding for every variable 1..NumVars. It returns nil when
// the formula was unsatisfiable.
func (s *Solution) Assignment() sat.Assignment {
	if s.err != nil {
		return nil
	}
	complete := make(sat.Assignment, s.numVars)
	for v := sat.Var(1); v <= sat.Var(s.numVars); v++ {
		complete[v] = s.assignment.Value(v)
	}
	return complete
}

// Literals returns the satisfying assignment as signed literals in
// ascending variable order, the shape DIMACS-style output expects.
// It returns nil when the formula was unsatisfiable.
func (s *Solution) Literals() []sat.Lit {
	if s.err != nil {
		return nil
	}
	lits := make([]sat.Lit, 0, s.numVars)
	for v := sat.Var(1); v <= sat.Var(s.numVars); v++ {
		lit := sat.Lit(v)
		if !s.assignment.Value(v) {
			lit = -lit
		}
		lits = append(lits, lit)
	}
	return lits
}

// Stats returns the search counters recorded while producing this
// solution.
func (s *Solution) Stats() sat.Stats {
	return s.stats
}

type solveOptions struct {
	tracer sat.Tracer
}

func (o *solveOptions) apply(options ...Option) *solveOptions {
	for _, applyOption := range options {
		applyOption(o)
	}
	return o
}

func defaultSolveOptions() *solveOptions {
	return &solveOptions{
		tracer: sat.DefaultTracer{},
	}
}

type Option func(solveOptions *solveOptions)

// WithTracer is a Solve option that reports every search conflict to
// the given tracer.
func WithTracer(t sat.Tracer) Option {
	return func(solveOptions *solveOptions) {
		solveOptions.tracer = t
	}
}

// Solve runs the DPLL search over the formula and returns a Solution.
// The returned error covers only internal failures; an unsatisfiable
// formula is a valid Solution whose Error method reports
// sat.NotSatisfiable.
func Solve(ctx context.Context, f sat.Formula, options ...Option) (*Solution, error) {
	opts := defaultSolveOptions().apply(options...)

	s, err := solver.New(solver.WithFormula(f), solver.WithTracer(opts.tracer))
	if err != nil {
		return nil, err
	}

	model, err := s.Solve(ctx)
	if err != nil && !errors.As(err, &sat.NotSatisfiable{}) {
		return nil, err
	}

	solution := &Solution{
		assignment: model,
		numVars:    f.NumVars,
		stats:      s.Stats(),
	}
	if err != nil {
		unsatError := sat.NotSatisfiable{}
		errors.As(err, &unsatError)
		solution.err = unsatError
	}
	return solution, nil
}
