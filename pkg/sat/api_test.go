package sat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guntisx/sat-solver/pkg/sat"
)

func TestLit(t *testing.T) {
	assert.Equal(t, sat.Var(3), sat.Lit(3).Var())
	assert.Equal(t, sat.Var(3), sat.Lit(-3).Var())
	assert.True(t, sat.Lit(3).Positive())
	assert.False(t, sat.Lit(-3).Positive())
	assert.True(t, sat.Lit(3).SatisfiedBy(true))
	assert.False(t, sat.Lit(3).SatisfiedBy(false))
	assert.True(t, sat.Lit(-3).SatisfiedBy(false))
	assert.False(t, sat.Lit(-3).SatisfiedBy(true))
}

func TestAssignmentExtendCopies(t *testing.T) {
	parent := sat.Assignment{1: true}
	left := parent.Extend(2, true)
	right := parent.Extend(2, false)

	assert.Equal(t, sat.Assignment{1: true}, parent)
	assert.Equal(t, sat.Assignment{1: true, 2: true}, left)
	assert.Equal(t, sat.Assignment{1: true, 2: false}, right)
}

func TestAssignmentValueDefaultsToFalse(t *testing.T) {
	a := sat.Assignment{1: true}
	assert.True(t, a.Value(1))
	assert.False(t, a.Value(2))
}

func TestFormulaSatisfied(t *testing.T) {
	f := sat.Formula{
		Clauses: []sat.Clause{{1, 2}, {-1, 3}},
		NumVars: 3,
	}
	assert.True(t, f.Satisfied(sat.Assignment{1: true, 3: true}))
	assert.False(t, f.Satisfied(sat.Assignment{1: true, 3: false}))
	assert.False(t, f.Satisfied(sat.Assignment{}))
	assert.True(t, sat.Formula{}.Satisfied(sat.Assignment{}))
}

func TestNotSatisfiableError(t *testing.T) {
	var err error = sat.NotSatisfiable{}
	assert.Equal(t, "formula not satisfiable", err.Error())
	assert.True(t, errors.As(err, &sat.NotSatisfiable{}))
}
