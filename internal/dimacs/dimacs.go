// Package dimacs reads CNF problems in DIMACS format and renders
// solver results back into text.
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guntisx/sat-solver/pkg/sat"
)

// Problem is a parsed DIMACS instance. Warnings collects the
// non-fatal findings: advisory clause-count mismatches and literals
// outside the declared variable range.
type Problem struct {
	Formula  sat.Formula
	Warnings []string
}

// Parse reads a DIMACS CNF stream. Comment lines ('c') and blank
// lines are ignored wherever they appear; a line containing a single
// '%' ends the input, which some CNF archives use to attach trailers.
// Exactly one problem line 'p cnf <variables> <clauses>' is required
// before the first clause, and each clause line must be terminated by
// a 0.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)

	problem := &Problem{}
	declaredVars := -1
	declaredClauses := 0
	maxVar := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if line == "%" {
			break
		}

		if strings.HasPrefix(line, "p") {
			if declaredVars >= 0 {
				return nil, fmt.Errorf("duplicate problem line (%s)", line)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("invalid problem line (%s): valid format is p cnf <variables> <clauses>", line)
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("unsupported format %q in problem line (%s): only cnf is supported", fields[1], line)
			}
			var err error
			declaredVars, err = strconv.Atoi(fields[2])
			if err != nil || declaredVars < 0 {
				return nil, fmt.Errorf("invalid variable count (%s) in problem line (%s)", fields[2], line)
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil || declaredClauses < 0 {
				return nil, fmt.Errorf("invalid clause count (%s) in problem line (%s)", fields[3], line)
			}
			continue
		}

		if declaredVars < 0 {
			return nil, fmt.Errorf("missing problem line: clause (%s) before p cnf <variables> <clauses>", line)
		}

		fields := strings.Fields(line)
		if fields[len(fields)-1] != "0" {
			return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
		}
		clause := make(sat.Clause, 0, len(fields)-1)
		for _, field := range fields[:len(fields)-1] {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid literal (%s) in clause (%s)", field, line)
			}
			if n == 0 {
				return nil, fmt.Errorf("invalid clause (%s): 0 is only valid as the clause terminator", line)
			}
			lit := sat.Lit(n)
			if int(lit.Var()) > declaredVars {
				problem.Warnings = append(problem.Warnings,
					fmt.Sprintf("literal %d in clause (%s) exceeds the declared variable count %d", n, line, declaredVars))
			}
			if int(lit.Var()) > maxVar {
				maxVar = int(lit.Var())
			}
			clause = append(clause, lit)
		}
		problem.Formula.Clauses = append(problem.Formula.Clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	if declaredVars < 0 {
		return nil, fmt.Errorf("missing problem line: p cnf <variables> <clauses>")
	}

	if len(problem.Formula.Clauses) != declaredClauses {
		problem.Warnings = append(problem.Warnings,
			fmt.Sprintf("problem line declares %d clauses, found %d", declaredClauses, len(problem.Formula.Clauses)))
	}

	// Keep the formula well-formed for the solver even when clauses
	// used variables beyond the declared count.
	problem.Formula.NumVars = declaredVars
	if maxVar > declaredVars {
		problem.Formula.NumVars = maxVar
	}
	return problem, nil
}
