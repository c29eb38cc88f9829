package solver

import (
	"context"

	"github.com/guntisx/sat-solver/pkg/sat"
)

// Solver decides satisfiability of a single Formula. It is safe to
// build one per problem; a Solver holds no state between calls other
// than the statistics of the last search.
type Solver struct {
	formula sat.Formula
	tracer  sat.Tracer
	stats   sat.Stats
}

// Solve determines whether the formula is satisfiable and, if it is,
// returns the partial assignment the search ended on. Variables the
// search never had to bind are absent from the result; completing
// them is the caller's concern. If the formula is unsatisfiable the
// returned error is sat.NotSatisfiable.
func (s *Solver) Solve(_ context.Context) (sat.Assignment, error) {
	s.stats = sat.Stats{}
	model, ok := s.dpll(s.formula.Clauses, sat.Assignment{})
	if !ok {
		return nil, sat.NotSatisfiable{}
	}
	return model, nil
}

// Stats returns the counters recorded during the last call to Solve.
func (s *Solver) Stats() sat.Stats {
	return s.stats
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithFormula(f sat.Formula) Option {
	return func(s *Solver) error {
		s.formula = f
		return nil
	}
}

func WithTracer(t sat.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = sat.DefaultTracer{}
		}
		return nil
	},
}
