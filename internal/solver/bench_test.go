package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/guntisx/sat-solver/pkg/sat"
)

var benchmarkFormula = func() sat.Formula {
	const (
		numVars    = 18
		numClauses = 72
		seed       = 9
	)
	return randomFormula(rand.New(rand.NewSource(seed)), numVars, numClauses)
}()

func BenchmarkSolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := New(WithFormula(benchmarkFormula))
		if err != nil {
			b.Fatalf("failed to initialize solver: %s", err)
		}
		s.Solve(context.Background())
	}
}

func BenchmarkSolvePigeonhole(b *testing.B) {
	f := pigeonhole(4)
	for i := 0; i < b.N; i++ {
		s, err := New(WithFormula(f))
		if err != nil {
			b.Fatalf("failed to initialize solver: %s", err)
		}
		s.Solve(context.Background())
	}
}
