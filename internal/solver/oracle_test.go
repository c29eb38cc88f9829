package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guntisx/sat-solver/pkg/sat"
)

// randomFormula builds a 3-CNF instance with distinct variables per
// clause and random polarities.
func randomFormula(rng *rand.Rand, numVars, numClauses int) sat.Formula {
	clauses := make([]sat.Clause, 0, numClauses)
	for i := 0; i < numClauses; i++ {
		vars := rng.Perm(numVars)[:3]
		clause := make(sat.Clause, 0, 3)
		for _, v := range vars {
			lit := sat.Lit(v + 1)
			if rng.Intn(2) == 0 {
				lit = -lit
			}
			clause = append(clause, lit)
		}
		clauses = append(clauses, clause)
	}
	return sat.Formula{Clauses: clauses, NumVars: numVars}
}

func solveWithGini(f sat.Formula) bool {
	g := gini.New()
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1
}

// TestSolveAgainstGini cross-checks the verdict on seeded random
// instances against an independent solver. The clause/variable ratio
// is swept across the satisfiability threshold so both verdicts get
// exercised.
func TestSolveAgainstGini(t *testing.T) {
	const (
		numVars   = 12
		instances = 40
		seed      = 9
	)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < instances; i++ {
		numClauses := 24 + rng.Intn(48)
		f := randomFormula(rng, numVars, numClauses)

		s, err := New(WithFormula(f))
		require.NoError(t, err)
		model, err := s.Solve(context.Background())

		want := solveWithGini(f)
		if err != nil {
			assert.False(t, want, "instance %d: reported unsatisfiable but the reference solver found a model", i)
			continue
		}
		assert.True(t, want, "instance %d: reported satisfiable but the reference solver disagrees", i)
		assert.True(t, f.Satisfied(model), "instance %d: returned assignment does not satisfy the formula", i)
	}
}
